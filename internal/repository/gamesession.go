package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/khollbach/minesweeper/internal/mines"
)

type GameSession struct {
	GameSessionId int64
	PlayerId      *int64
	Height        int
	Width         int
	BombCount     int
	State         []byte
	Won           bool
	Lost          bool
	Forfeited     bool
	StartedAt     time.Time
	EndedAt       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type CreateGameSessionParams struct {
	PlayerId *int64
}

func (q *Queries) CreateGameSession(
	ctx context.Context, game *mines.Game, params CreateGameSessionParams,
) (*GameSession, error) {
	state, err := game.Bytes()
	if err != nil {
		return nil, err
	}

	height, width := game.Dimensions()
	args := pgx.NamedArgs{
		"height":     height,
		"width":      width,
		"bomb_count": game.NumBombs(),
		"state":      state,
	}
	if params.PlayerId != nil {
		args["player_id"] = *params.PlayerId
	} else {
		args["player_id"] = nil
	}

	rows, _ := q.db.Query(
		ctx,
		`INSERT INTO game_session (player_id, height, width, bomb_count, state)
		VALUES (@player_id, @height, @width, @bomb_count, @state)
		RETURNING *;`,
		args,
	)
	return pgx.CollectExactlyOneRow(
		rows, pgx.RowToAddrOfStructByName[GameSession],
	)
}

func (q *Queries) FetchGameSession(
	ctx context.Context, gameSessionId int64,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		"SELECT * FROM game_session WHERE game_session_id = $1",
		gameSessionId,
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}

type UpdateGameSessionParams struct {
	State     []byte
	Won       bool
	Lost      bool
	Forfeited bool
	EndedAt   *time.Time
}

func (q *Queries) UpdateGameSession(
	ctx context.Context, gameSessionId int64, params UpdateGameSessionParams,
) (*GameSession, error) {
	rows, _ := q.db.Query(
		ctx,
		`UPDATE game_session
		SET state = @state,
			won = @won,
			lost = @lost,
			forfeited = @forfeited,
			ended_at = @ended_at,
			updated_at = now()
		WHERE game_session_id = @game_session_id
		RETURNING *;`,
		pgx.NamedArgs{
			"game_session_id": gameSessionId,
			"state":           params.State,
			"won":             params.Won,
			"lost":            params.Lost,
			"forfeited":       params.Forfeited,
			"ended_at":        params.EndedAt,
		},
	)
	return pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[GameSession])
}
