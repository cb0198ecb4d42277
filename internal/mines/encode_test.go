package mines

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	game := newGame(t, "#....\n..#..\n.....")
	game.Reveal(Point{2, 0})
	game.Reveal(Point{0, 4})

	b, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGame(b)
	require.NoError(t, err)

	assert.Equal(t, game.Render(), decoded.Render())
	assert.Equal(t, game.NumBombs(), decoded.NumBombs())
	assert.Equal(t, game.NumRevealed(), decoded.NumRevealed())
	assert.Equal(t, game.Over(), decoded.Over())
}

func TestSnapshotRoundTripFinished(t *testing.T) {
	game := newGame(t, "#.")
	game.Reveal(Point{0, 0})
	game.RevealAll()

	b, err := game.Bytes()
	require.NoError(t, err)

	decoded, err := DecodeGame(b)
	require.NoError(t, err)

	outcome, ok := decoded.Outcome()
	require.True(t, ok)
	assert.Equal(t, Loss, outcome)
	assert.Equal(t, decoded.NumTiles(), decoded.NumRevealed())
}

func TestDecodeGameRejectsGarbage(t *testing.T) {
	_, err := DecodeGame([]byte("not a gob stream"))
	assert.Error(t, err)
}
