package mines

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"strings"
)

// snapshot is the gob wire form of a Game. The field text is the same
// format [Parse] accepts, so decoding re-runs the parser and never
// stores adjacency counts that could go stale.
type snapshot struct {
	Field       string
	Visibility  []Visibility // row-major
	NumRevealed int
	Outcome     Outcome
}

// Bytes serializes the game for storage.
func (g *Game) Bytes() ([]byte, error) {
	snap := snapshot{
		Field:       g.fieldText(),
		Visibility:  make([]Visibility, 0, g.NumTiles()),
		NumRevealed: g.numRevealed,
		Outcome:     g.outcome,
	}
	for _, row := range g.grid.tiles {
		for _, tile := range row {
			snap.Visibility = append(snap.Visibility, tile.Visibility)
		}
	}

	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(snap); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// DecodeGame reconstructs a game serialized with [Game.Bytes].
func DecodeGame(b []byte) (*Game, error) {
	var snap snapshot
	if err := gob.NewDecoder(bytes.NewReader(b)).Decode(&snap); err != nil {
		return nil, err
	}

	game, err := NewGame(strings.NewReader(snap.Field))
	if err != nil {
		return nil, fmt.Errorf("snapshot holds an invalid field: %w", err)
	}
	if len(snap.Visibility) != game.NumTiles() {
		return nil, fmt.Errorf(
			"snapshot visibility has %d entries, want %d",
			len(snap.Visibility), game.NumTiles(),
		)
	}

	i := 0
	for r := range game.grid.tiles {
		for c := range game.grid.tiles[r] {
			game.grid.tiles[r][c].Visibility = snap.Visibility[i]
			i++
		}
	}
	game.numRevealed = snap.NumRevealed
	game.outcome = snap.Outcome
	return game, nil
}

// fieldText renders bomb placement in the input format: '#' for bombs,
// '.' elsewhere, rows separated by newlines.
func (g *Game) fieldText() string {
	var b strings.Builder
	for i, row := range g.grid.tiles {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, tile := range row {
			if tile.HasBomb {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}
