package handlers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khollbach/minesweeper/internal/config"
	"github.com/khollbach/minesweeper/internal/middleware"
	"github.com/khollbach/minesweeper/internal/mines"
	"github.com/khollbach/minesweeper/internal/repository"
)

// maxFieldSize caps the uploaded field description at 1 MiB.
const maxFieldSize = 1 << 20

var (
	ErrGameOver        = fmt.Errorf("game is over")
	ErrOutOfBounds     = fmt.Errorf("tile coordinates out of bounds")
	ErrAlreadyRevealed = fmt.Errorf("tile is already revealed")
	ErrTileFlagged     = fmt.Errorf("tile is flagged")
)

type GameHandler struct {
	logger *slog.Logger
	repo   *repository.Queries
	ws     *config.WebSocket
}

func NewGameHandler(
	logger *slog.Logger, db *pgxpool.Pool, ws *config.WebSocket,
) *GameHandler {
	return &GameHandler{
		logger: logger,
		repo:   repository.New(db),
		ws:     ws,
	}
}

// Create parses a field description from the request body and opens a
// new game session. The session belongs to the authenticated player,
// if any.
func (g *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	game, err := mines.NewGame(io.LimitReader(r.Body, maxFieldSize))
	if errors.Is(err, mines.ErrInvalidGrid) {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to read field upload", slog.Any("error", err))
		return
	}

	var params repository.CreateGameSessionParams
	if claims, ok := middleware.PlayerClaims(r.Context()); ok {
		params.PlayerId = &claims.PlayerId
	}

	session, err := g.repo.CreateGameSession(r.Context(), game, params)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to create game session", slog.Any("error", err))
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

func (g *GameHandler) Fetch(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}
	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// Reveal opens one hidden tile. The engine's Reveal contract demands a
// valid move, so every precondition is checked here first; invalid
// moves map to 4xx responses instead of assertion panics.
func (g *GameHandler) Reveal(w http.ResponseWriter, r *http.Request) {
	dto, err := ParseRevealDTO(r.URL.Query())
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	if err := checkMove(game, dto.Point()); err != nil {
		w.WriteHeader(http.StatusConflict)
		sendJSONOrLog(w, g.logger, wrapError(err))
		return
	}

	game.Reveal(dto.Point())

	if game.Over() {
		game.RevealAll()
		now := time.Now().UTC()
		session.EndedAt = &now
	}

	session, ok = g.saveSession(r.Context(), w, session, game)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// Forfeit ends the session without an outcome and reveals the whole
// grid for a final look.
func (g *GameHandler) Forfeit(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	if session.EndedAt == nil {
		now := time.Now().UTC()
		session.EndedAt = &now
		session.Forfeited = true
	}
	game.RevealAll()

	session, ok = g.saveSession(r.Context(), w, session, game)
	if !ok {
		return
	}

	sendJSONOrLog(w, g.logger, NewGameSessionDTO(session, game))
}

// checkMove enforces the reveal preconditions the driver owes the
// engine.
func checkMove(game *mines.Game, p mines.Point) error {
	if game.Over() {
		return ErrGameOver
	}
	tile, ok := game.At(p)
	if !ok {
		return ErrOutOfBounds
	}
	switch tile.Visibility {
	case mines.Revealed:
		return ErrAlreadyRevealed
	case mines.Flagged:
		return ErrTileFlagged
	}
	return nil
}

func (g *GameHandler) loadSession(
	w http.ResponseWriter, r *http.Request,
) (*repository.GameSession, *mines.Game, bool) {
	sessionId, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return nil, nil, false
	}

	session, err := g.repo.FetchGameSession(r.Context(), sessionId)
	if errors.Is(err, pgx.ErrNoRows) {
		w.WriteHeader(http.StatusNotFound)
		return nil, nil, false
	}
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to fetch session from db", slog.Any("error", err))
		return nil, nil, false
	}

	game, err := mines.DecodeGame(session.State)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("db returned invalid game_session.state", slog.Any("error", err))
		return nil, nil, false
	}

	return session, game, true
}

func (g *GameHandler) saveSession(
	ctx context.Context,
	w http.ResponseWriter,
	session *repository.GameSession,
	game *mines.Game,
) (*repository.GameSession, bool) {
	state, err := game.Bytes()
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to serialize game state", slog.Any("error", err))
		return nil, false
	}

	outcome, _ := game.Outcome()
	updated, err := g.repo.UpdateGameSession(
		ctx, session.GameSessionId, repository.UpdateGameSessionParams{
			State:     state,
			Won:       outcome == mines.Win,
			Lost:      outcome == mines.Loss,
			Forfeited: session.Forfeited,
			EndedAt:   session.EndedAt,
		},
	)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		g.logger.Error("unable to update session in db", slog.Any("error", err))
		return nil, false
	}

	return updated, true
}
