package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"
)

// GameRecord is one row of the won-games leaderboard.
type GameRecord struct {
	GameSessionId int64   `json:"game_session_id"`
	Username      *string `json:"username"`
	Height        int     `json:"height"`
	Width         int     `json:"width"`
	BombCount     int     `json:"bomb_count"`
	PlaytimeMs    float64 `json:"playtime_ms"`
}

type GameRecordFilter struct {
	Username *string
	Height   *int
	Width    *int
}

func (f GameRecordFilter) WhereClause() (string, pgx.NamedArgs) {
	clauses := make([]string, 0)
	args := pgx.NamedArgs{}
	if f.Username != nil {
		clauses = append(clauses, "username = @username")
		args["username"] = *f.Username
	}
	if f.Height != nil {
		clauses = append(clauses, "height = @height")
		args["height"] = *f.Height
	}
	if f.Width != nil {
		clauses = append(clauses, "width = @width")
		args["width"] = *f.Width
	}
	return strings.Join(clauses, " AND "), args
}

func (q *Queries) GetGameRecords(
	ctx context.Context, filter GameRecordFilter,
) ([]GameRecord, error) {
	query := `
	SELECT
		game_session_id,
		username,
		height,
		width,
		bomb_count,
		(
			extract('epoch' from ended_at) -
			extract('epoch' from started_at)
		) * 1000 playtime_ms
	FROM game_session
		LEFT OUTER JOIN player USING (player_id)
	WHERE
		won = true
		AND ended_at IS NOT NULL
	`

	whereClause, args := filter.WhereClause()
	if whereClause != "" {
		query += " AND " + whereClause
	}

	query += " ORDER BY playtime_ms;"

	rows, err := q.db.Query(ctx, query, args)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[GameRecord])
}
