package mines

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseString(t *testing.T, field string) *ParseResult {
	t.Helper()
	parsed, err := Parse(strings.NewReader(field))
	require.NoError(t, err)
	return parsed
}

func TestParseDimensions(t *testing.T) {
	parsed := parseString(t, "#....\n..#..\n.....")
	assert.Equal(t, 3, parsed.Grid.RowCount())
	assert.Equal(t, 5, parsed.Grid.ColCount())
	assert.Equal(t, 2, parsed.NumBombs)
}

func TestParseCountsBombs(t *testing.T) {
	parsed := parseString(t, "##\n#.")

	assert.Equal(t, 3, parsed.NumBombs)

	counted := 0
	for row := range parsed.Grid.RowCount() {
		for col := range parsed.Grid.ColCount() {
			tile, ok := parsed.Grid.TileAt(Point{row, col})
			require.True(t, ok)
			if tile.HasBomb {
				counted++
			}
		}
	}
	assert.Equal(t, parsed.NumBombs, counted)
}

func TestParseSingleTile(t *testing.T) {
	bomb := parseString(t, "#")
	assert.Equal(t, 1, bomb.NumBombs)

	empty := parseString(t, ".")
	assert.Equal(t, 0, empty.NumBombs)
}

func TestParseSingleRowAndColumn(t *testing.T) {
	row := parseString(t, ".#.")
	assert.Equal(t, 1, row.Grid.RowCount())
	assert.Equal(t, 3, row.Grid.ColCount())

	col := parseString(t, ".\n#\n.")
	assert.Equal(t, 3, col.Grid.RowCount())
	assert.Equal(t, 1, col.Grid.ColCount())
}

// Adjacency counts scan the 3x3 neighborhood clipped to the grid, and
// never include the center tile's own bomb.
func TestParseAdjacency(t *testing.T) {
	parsed := parseString(t, "...\n.#.\n...")

	for row := range 3 {
		for col := range 3 {
			tile, ok := parsed.Grid.TileAt(Point{row, col})
			require.True(t, ok)

			if row == 1 && col == 1 {
				assert.True(t, tile.HasBomb)
				assert.Equal(t, 0, tile.AdjBombs, "bomb must not count itself")
			} else {
				assert.Equal(t, 1, tile.AdjBombs, "tile at %d,%d", row, col)
			}
		}
	}
}

func TestParseAdjacencyCorners(t *testing.T) {
	parsed := parseString(t, "##\n##")
	for row := range 2 {
		for col := range 2 {
			tile, _ := parsed.Grid.TileAt(Point{row, col})
			assert.Equal(t, 3, tile.AdjBombs)
		}
	}
}

func TestParseInvalidChar(t *testing.T) {
	_, err := Parse(strings.NewReader("..\n.x"))

	assert.ErrorIs(t, err, ErrInvalidGrid)

	var charErr InvalidCharError
	require.True(t, errors.As(err, &charErr))
	assert.Equal(t, 'x', charErr.Char)
}

func TestParseJaggedRow(t *testing.T) {
	_, err := Parse(strings.NewReader("..\n."))

	assert.ErrorIs(t, err, ErrInvalidGrid)

	var jaggedErr JaggedRowError
	require.True(t, errors.As(err, &jaggedErr))
	assert.Equal(t, 2, jaggedErr.Expected)
	assert.Equal(t, 1, jaggedErr.Row)
	assert.Equal(t, 1, jaggedErr.Actual)
}

func TestParseEmpty(t *testing.T) {
	for _, input := range []string{"", "\n", "\n\n"} {
		_, err := Parse(strings.NewReader(input))
		assert.ErrorIs(t, err, ErrInvalidGrid)

		var emptyErr EmptyGridError
		assert.True(t, errors.As(err, &emptyErr), "input %q", input)
	}
}

// A blank line inside the grid body is a zero-length row.
func TestParseBlankLineInBody(t *testing.T) {
	_, err := Parse(strings.NewReader("..\n\n.."))

	var jaggedErr JaggedRowError
	require.True(t, errors.As(err, &jaggedErr))
	assert.Equal(t, 0, jaggedErr.Actual)
}
