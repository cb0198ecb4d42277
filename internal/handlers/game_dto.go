package handlers

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/gorilla/schema"

	"github.com/khollbach/minesweeper/internal/mines"
	"github.com/khollbach/minesweeper/internal/repository"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type RevealDTO struct {
	Row int `schema:"row,required"`
	Col int `schema:"col,required"`
}

func ParseRevealDTO(query url.Values) (RevealDTO, error) {
	var dto RevealDTO
	err := decoder.Decode(&dto, query)
	return dto, err
}

func (dto RevealDTO) Point() mines.Point {
	return mines.Point{Row: dto.Row, Col: dto.Col}
}

type RecordsDTO struct {
	Username *string `schema:"username"`
	Height   *int    `schema:"height"`
	Width    *int    `schema:"width"`
}

func ParseRecordsDTO(query url.Values) (RecordsDTO, error) {
	var dto RecordsDTO
	err := decoder.Decode(&dto, query)
	return dto, err
}

type GameSessionDTO struct {
	GameSessionId string   `json:"game_session_id"`
	Grid          []string `json:"grid"`
	Height        int      `json:"height"`
	Width         int      `json:"width"`
	BombCount     int      `json:"bomb_count"`
	NumRevealed   int      `json:"num_revealed"`
	Outcome       string   `json:"outcome,omitempty"`
	Forfeited     bool     `json:"forfeited"`
	StartedAt     int64    `json:"started_at"`
	EndedAt       *int64   `json:"ended_at,omitempty"`
}

func NewGameSessionDTO(
	session *repository.GameSession, game *mines.Game,
) *GameSessionDTO {
	var endedAt *int64
	if session.EndedAt != nil {
		e := session.EndedAt.UnixMilli()
		endedAt = &e
	}

	var outcome string
	if o, ok := game.Outcome(); ok {
		outcome = o.String()
	}

	height, width := game.Dimensions()
	return &GameSessionDTO{
		GameSessionId: strconv.FormatInt(session.GameSessionId, 10),
		Grid:          strings.Split(game.Render(), "\n"),
		Height:        height,
		Width:         width,
		BombCount:     game.NumBombs(),
		NumRevealed:   game.NumRevealed(),
		Outcome:       outcome,
		Forfeited:     session.Forfeited,
		StartedAt:     session.StartedAt.UnixMilli(),
		EndedAt:       endedAt,
	}
}
