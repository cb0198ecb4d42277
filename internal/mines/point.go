package mines

import "fmt"

// Point addresses a tile by zero-based row and column. A Point carries
// no validity of its own; bounds are checked against a Grid at the
// point of use.
type Point struct {
	Row, Col int
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.Row, p.Col)
}
