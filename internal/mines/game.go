package mines

import (
	"fmt"
	"io"
)

// Outcome is the terminal result of a game.
type Outcome int8

const (
	Win Outcome = iota + 1
	Loss
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "invalid"
	}
}

// Game holds one game's mutable state: the grid, the fixed bomb count,
// a running reveal count and the outcome once the game ends.
//
// A Game is driven one call at a time by a single goroutine; it does no
// locking and no I/O of its own.
type Game struct {
	grid        Grid
	numBombs    int
	numRevealed int
	outcome     Outcome // zero while in progress
}

// NewGame parses a grid description from r into a fresh game with no
// revealed tiles. Parse failures propagate unchanged; a failed parse
// never yields a usable Game.
func NewGame(r io.Reader) (*Game, error) {
	parsed, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return &Game{
		grid:     parsed.Grid,
		numBombs: parsed.NumBombs,
	}, nil
}

// Dimensions returns the grid's height and width.
func (g *Game) Dimensions() (height, width int) {
	return g.grid.RowCount(), g.grid.ColCount()
}

// NumTiles is the total number of tiles, height times width.
func (g *Game) NumTiles() int {
	h, w := g.Dimensions()
	return h * w
}

// NumBombs is the total number of bombs in the game.
func (g *Game) NumBombs() int {
	return g.numBombs
}

// NumRevealed is the number of tiles revealed so far. Bomb tiles count
// too; the win condition compares against non-bomb tiles only.
func (g *Game) NumRevealed() int {
	return g.numRevealed
}

// At returns a copy of the tile at p, or false if p is out of bounds.
func (g *Game) At(p Point) (Tile, bool) {
	return g.grid.TileAt(p)
}

// Outcome reports how the game ended. ok is false while the game is in
// progress. Once set, the outcome never changes.
func (g *Game) Outcome() (o Outcome, ok bool) {
	return g.outcome, g.outcome != 0
}

// Over reports whether the game has ended.
func (g *Game) Over() bool {
	return g.outcome != 0
}

// Reveal transitions the tile at p from Hidden to Revealed and updates
// the outcome: revealing a bomb loses the game; revealing the last
// non-bomb tile wins it.
//
// p must be in bounds, the tile must be Hidden, and the game must
// still be in progress — anything else is a bug in the caller and
// panics with [AssertionError]. The driver is responsible for only
// ever proposing valid moves.
func (g *Game) Reveal(p Point) {
	if g.outcome != 0 {
		panic(AssertionError{"reveal after game over"})
	}
	tile := g.grid.at(p)
	if tile == nil {
		panic(AssertionError{fmt.Sprintf("reveal out of bounds: %v", p)})
	}
	if tile.Visibility != Hidden {
		panic(AssertionError{fmt.Sprintf("reveal %s tile: %v", tile.Visibility, p)})
	}

	tile.Visibility = Revealed
	g.numRevealed++

	if tile.HasBomb {
		g.outcome = Loss
	} else if g.numRevealed == g.NumTiles()-g.numBombs {
		g.outcome = Win
	}
}

// RevealAll forces every tile to Revealed, for end-of-game display.
// NumRevealed becomes the full tile count. The outcome is left as-is.
func (g *Game) RevealAll() {
	g.grid.revealAll()
	g.numRevealed = g.NumTiles()
}

// Render draws the grid. See [Grid.Render].
func (g *Game) Render() string {
	return g.grid.Render()
}
