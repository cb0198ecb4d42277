package handlers

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/khollbach/minesweeper/internal/mines"
	"github.com/khollbach/minesweeper/internal/repository"
)

// Maps known commands to number of arguments
var commandNargs = map[string]int{
	"g": 0, // fetch state
	"r": 2, // reveal row col
	"x": 0, // forfeit
}

func parseRowCol(twoStrings []string) (row int, col int, err error) {
	if row, err = strconv.Atoi(twoStrings[0]); err != nil {
		err = fmt.Errorf("first argument must be an int")
		return
	}
	if col, err = strconv.Atoi(twoStrings[1]); err != nil {
		err = fmt.Errorf("second argument must be an int")
		return
	}
	return
}

// executeCommand applies one text command to the game. The session is
// touched only for forfeit bookkeeping; persisting is the caller's job.
func executeCommand(
	game *mines.Game, session *repository.GameSession, c string,
) error {
	parts := strings.Split(c, " ")
	nargs, ok := commandNargs[parts[0]]
	if !ok {
		return fmt.Errorf("unknown command")
	}
	if nargs != len(parts)-1 {
		return fmt.Errorf("invalid number of arguments")
	}

	switch parts[0] {
	case "g":
		return nil
	case "r":
		row, col, err := parseRowCol(parts[1:])
		if err != nil {
			return err
		}
		p := mines.Point{Row: row, Col: col}
		if err := checkMove(game, p); err != nil {
			return err
		}
		game.Reveal(p)
		return nil
	case "x":
		if session.EndedAt == nil {
			now := time.Now().UTC()
			session.EndedAt = &now
			session.Forfeited = true
		}
		game.RevealAll()
		return nil
	}
	return fmt.Errorf("invalid command")
}

// ConnectWS runs a game session over a websocket: one text command per
// line, the full session DTO written back after every message.
func (g *GameHandler) ConnectWS(w http.ResponseWriter, r *http.Request) {
	session, game, ok := g.loadSession(w, r)
	if !ok {
		return
	}

	conn, err := g.ws.Upgrader.Upgrade(w, r, nil) // headers sent here
	if err != nil {
		g.logger.Error("unable to upgrade", slog.Any("error", err))
		return
	}
	defer conn.Close()

	g.logger.Debug("established WS connection",
		slog.Int64("session", session.GameSessionId))

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure) {
				g.logger.Warn("abnormal ws break", slog.Any("error", err))
			}
			return
		}
		if mt != websocket.TextMessage {
			return
		}

		text := strings.TrimSpace(string(message))
		for _, line := range strings.Split(text, "\n") {
			if err := executeCommand(game, session, strings.TrimSpace(line)); err != nil {
				g.logger.Debug("rejected ws command", slog.Any("error", err))
				if err := conn.WriteJSON(wrapError(err)); err != nil {
					return
				}
				continue
			}
			if game.Over() && session.EndedAt == nil {
				now := time.Now().UTC()
				session.EndedAt = &now
				game.RevealAll()
				break
			}
		}

		state, err := game.Bytes()
		if err != nil {
			g.logger.Error("unable to serialize game state", slog.Any("error", err))
			return
		}

		outcome, _ := game.Outcome()
		session, err = g.repo.UpdateGameSession(
			r.Context(), session.GameSessionId, repository.UpdateGameSessionParams{
				State:     state,
				Won:       outcome == mines.Win,
				Lost:      outcome == mines.Loss,
				Forfeited: session.Forfeited,
				EndedAt:   session.EndedAt,
			},
		)
		if err != nil {
			g.logger.Error("unable to update session in db", slog.Any("error", err))
			return
		}

		if err := conn.WriteJSON(NewGameSessionDTO(session, game)); err != nil {
			g.logger.Error("unable to write json", slog.Any("error", err))
			return
		}
	}
}
