package mines

import (
	"bufio"
	"io"
)

// ParseResult is the output of a successful [Parse].
type ParseResult struct {
	Grid     Grid
	NumBombs int
}

// Parse reads newline-separated rows of '#' (bomb) and '.' (no bomb)
// characters into a validated rectangular grid, counting bombs along
// the way and filling in each tile's adjacent-bomb count.
//
// The whole input is rejected on the first violation: an unexpected
// character, a row whose length differs from the first row's, or an
// empty grid. All such errors unwrap to [ErrInvalidGrid].
func Parse(r io.Reader) (*ParseResult, error) {
	var (
		tiles    [][]Tile
		numBombs int
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		var row []Tile
		for _, c := range scanner.Text() {
			switch c {
			case '#':
				numBombs++
				row = append(row, Tile{HasBomb: true})
			case '.':
				row = append(row, Tile{})
			default:
				return nil, InvalidCharError{c}
			}
		}

		if len(tiles) > 0 && len(row) != len(tiles[0]) {
			return nil, JaggedRowError{
				Expected: len(tiles[0]),
				Row:      len(tiles),
				Actual:   len(row),
			}
		}

		tiles = append(tiles, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	if len(tiles) == 0 || len(tiles[0]) == 0 {
		return nil, EmptyGridError{}
	}

	computeAdjBombs(tiles)

	return &ParseResult{
		Grid:     Grid{tiles},
		NumBombs: numBombs,
	}, nil
}

// computeAdjBombs fills in the tiles' AdjBombs values. The grid must
// already be rectangular and non-empty.
func computeAdjBombs(tiles [][]Tile) {
	for i := range tiles {
		for j := range tiles[i] {
			tiles[i][j].AdjBombs = adjBombs(tiles, i, j)
		}
	}
}

// adjBombs counts the bombs in the 8-neighborhood of (i, j), clipped
// to the grid bounds. The tile itself is not counted, even if it has a
// bomb.
func adjBombs(tiles [][]Tile, i, j int) int {
	bombs := 0
	for di := -1; di <= 1; di++ {
		for dj := -1; dj <= 1; dj++ {
			if di == 0 && dj == 0 {
				continue
			}
			x, y := i+di, j+dj
			if x < 0 || x >= len(tiles) || y < 0 || y >= len(tiles[0]) {
				continue
			}
			if tiles[x][y].HasBomb {
				bombs++
			}
		}
	}
	return bombs
}
