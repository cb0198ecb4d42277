package mines

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGame(t *testing.T, field string) *Game {
	t.Helper()
	game, err := NewGame(strings.NewReader(field))
	require.NoError(t, err)
	return game
}

func TestNewGameAccessors(t *testing.T) {
	game := newGame(t, "#....\n..#..\n.....")

	height, width := game.Dimensions()
	assert.Equal(t, 3, height)
	assert.Equal(t, 5, width)
	assert.Equal(t, 15, game.NumTiles())
	assert.Equal(t, 2, game.NumBombs())
	assert.Equal(t, 0, game.NumRevealed())
	assert.False(t, game.Over())
}

func TestNewGamePropagatesParseError(t *testing.T) {
	_, err := NewGame(strings.NewReader("..\n.?"))
	assert.ErrorIs(t, err, ErrInvalidGrid)
}

func TestAt(t *testing.T) {
	game := newGame(t, "#.")

	tile, ok := game.At(Point{0, 0})
	require.True(t, ok)
	assert.True(t, tile.HasBomb)
	assert.Equal(t, Hidden, tile.Visibility)

	for _, p := range []Point{{0, 2}, {1, 0}, {-1, 0}, {0, -1}} {
		_, ok := game.At(p)
		assert.False(t, ok, "point %v", p)
	}
}

func TestRevealAllNonBombsWins(t *testing.T) {
	game := newGame(t, "..")

	game.Reveal(Point{0, 0})
	assert.False(t, game.Over())

	game.Reveal(Point{0, 1})
	outcome, ok := game.Outcome()
	require.True(t, ok)
	assert.Equal(t, Win, outcome)
}

func TestRevealBombLoses(t *testing.T) {
	game := newGame(t, "#")

	game.Reveal(Point{0, 0})

	outcome, ok := game.Outcome()
	require.True(t, ok)
	assert.Equal(t, Loss, outcome)
	assert.Equal(t, 1, game.NumRevealed())
}

func TestRevealBombLosesRegardlessOfProgress(t *testing.T) {
	game := newGame(t, ".#\n..")

	game.Reveal(Point{0, 0})
	game.Reveal(Point{1, 0})
	require.False(t, game.Over())

	game.Reveal(Point{0, 1})
	outcome, _ := game.Outcome()
	assert.Equal(t, Loss, outcome)
}

// Bombs never count toward the win-eligible total: the game is won on
// revealing the last non-bomb tile, not one sooner.
func TestWinBoundary(t *testing.T) {
	game := newGame(t, ".#\n..")

	nonBombs := []Point{{0, 0}, {1, 0}, {1, 1}}
	for i, p := range nonBombs {
		require.False(t, game.Over(), "game over after %d reveals", i)
		game.Reveal(p)
	}

	outcome, ok := game.Outcome()
	require.True(t, ok)
	assert.Equal(t, Win, outcome)
	assert.Equal(t, len(nonBombs), game.NumRevealed())
}

func TestOutcomeIsStable(t *testing.T) {
	game := newGame(t, "#")
	game.Reveal(Point{0, 0})

	first, _ := game.Outcome()
	second, _ := game.Outcome()
	assert.Equal(t, first, second)
}

func TestRevealAll(t *testing.T) {
	game := newGame(t, "#.\n..")
	game.Reveal(Point{0, 0}) // loss

	game.RevealAll()

	assert.Equal(t, game.NumTiles(), game.NumRevealed())
	rendered := game.Render()
	assert.NotContains(t, rendered, ".")
	outcome, _ := game.Outcome()
	assert.Equal(t, Loss, outcome, "reveal-all must not touch the outcome")
}

func TestRevealContractViolations(t *testing.T) {
	t.Run("out of bounds", func(t *testing.T) {
		game := newGame(t, "..")
		assert.PanicsWithError(t, "reveal out of bounds: (0, 2)", func() {
			game.Reveal(Point{0, 2})
		})
	})

	t.Run("already revealed", func(t *testing.T) {
		game := newGame(t, "..\n..")
		game.Reveal(Point{0, 0})
		assert.Panics(t, func() {
			game.Reveal(Point{0, 0})
		})
	})

	t.Run("after game over", func(t *testing.T) {
		game := newGame(t, "#.")
		game.Reveal(Point{0, 0})
		assert.Panics(t, func() {
			game.Reveal(Point{0, 1})
		})
	})
}

func TestRenderProgress(t *testing.T) {
	game := newGame(t, "#.\n..")

	assert.Equal(t, "..\n..", game.Render())

	game.Reveal(Point{1, 1})
	assert.Equal(t, "..\n.1", game.Render())
}

// Parsing a grid and revealing everything renders one character per
// tile with no hidden markers left.
func TestRenderRevealed(t *testing.T) {
	game := newGame(t, "#....\n..#..\n.....")

	game.RevealAll()

	expected := "#211 \n12#1 \n 111 "
	assert.Equal(t, expected, game.Render())
}

func TestRenderFlagged(t *testing.T) {
	tile := Tile{Visibility: Flagged}
	assert.Equal(t, '*', tile.Rune())
}
