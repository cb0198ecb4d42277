package mines

// Visibility is a tile's display state.
type Visibility int8

const (
	Hidden Visibility = iota
	Flagged
	Revealed
)

func (v Visibility) String() string {
	switch v {
	case Hidden:
		return "hidden"
	case Flagged:
		return "flagged"
	case Revealed:
		return "revealed"
	default:
		return "invalid"
	}
}

// Tile is one cell of the grid.
//
// HasBomb and AdjBombs are fixed at parse time; only Visibility
// changes over the lifetime of a game.
type Tile struct {
	HasBomb    bool
	AdjBombs   int
	Visibility Visibility
}

// Rune is the character a tile renders as.
//
//   - hidden tiles render as '.'
//   - flagged tiles render as '*'
//   - a revealed bomb renders as '#'
//   - a revealed tile with no adjacent bombs renders as ' '
//   - otherwise the adjacent bomb count, '1' through '8'
func (t Tile) Rune() rune {
	switch t.Visibility {
	case Flagged:
		return '*'
	case Revealed:
		if t.HasBomb {
			return '#'
		}
		if t.AdjBombs == 0 {
			return ' '
		}
		if t.AdjBombs > 8 {
			panic(AssertionError{"adjacent bomb count out of range"})
		}
		return rune('0' + t.AdjBombs)
	default:
		return '.'
	}
}
