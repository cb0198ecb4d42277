package mines

import "strings"

// Grid is a non-empty rectangular matrix of tiles. It owns its tiles;
// the only read paths are [Grid.TileAt] and [Grid.Render], both of
// which hand out copies.
type Grid struct {
	tiles [][]Tile
}

// RowCount is the height of the grid.
func (g *Grid) RowCount() int {
	return len(g.tiles)
}

// ColCount is the width of the grid.
func (g *Grid) ColCount() int {
	return len(g.tiles[0])
}

// TileAt returns a copy of the tile at p, or false if p is out of
// bounds. This is the only bounds-checked read path; callers holding a
// possibly-invalid point must go through it.
func (g *Grid) TileAt(p Point) (Tile, bool) {
	t := g.at(p)
	if t == nil {
		return Tile{}, false
	}
	return *t, true
}

// at returns a pointer into the grid, or nil if p is out of bounds.
func (g *Grid) at(p Point) *Tile {
	if p.Row < 0 || p.Row >= len(g.tiles) {
		return nil
	}
	if p.Col < 0 || p.Col >= len(g.tiles[p.Row]) {
		return nil
	}
	return &g.tiles[p.Row][p.Col]
}

// Render draws the grid one character per tile, rows separated by
// newlines, with no trailing newline. See [Tile.Rune] for the mapping.
func (g *Grid) Render() string {
	var b strings.Builder
	for i, row := range g.tiles {
		if i != 0 {
			b.WriteByte('\n')
		}
		for _, tile := range row {
			b.WriteRune(tile.Rune())
		}
	}
	return b.String()
}

func (g *Grid) revealAll() {
	for i := range g.tiles {
		for j := range g.tiles[i] {
			g.tiles[i][j].Visibility = Revealed
		}
	}
}
