package lonpos

import (
	"fmt"
	"sort"
)

type Coordinate struct {
	Row int
	Col int
}

func (c Coordinate) String() string {
	return fmt.Sprintf("(r%d, c%d)", c.Row, c.Col)
}

func (c Coordinate) Translate(dr int, dc int) Coordinate {
	return Coordinate{c.Row + dr, c.Col + dc}
}

type CoordinateSlice []Coordinate

func (c CoordinateSlice) Len() int      { return len(c) }
func (c CoordinateSlice) Swap(i, j int) { c[i], c[j] = c[j], c[i] }
func (c CoordinateSlice) Less(i, j int) bool {
	return c[i].Row < c[j].Row || (c[i].Row == c[j].Row && c[i].Col < c[j].Col)
}

// Matrix is a 2x2 integer transformation applied to cell offsets.
type Matrix [2][2]int

func (m Matrix) Transform(c Coordinate) Coordinate {
	return Coordinate{
		m[0][0]*c.Row + m[0][1]*c.Col,
		m[1][0]*c.Row + m[1][1]*c.Col,
	}
}

func (m Matrix) Mult(m2 Matrix) Matrix {
	return Matrix{
		{m[0][0]*m2[0][0] + m[0][1]*m2[1][0], m[0][0]*m2[0][1] + m[0][1]*m2[1][1]},
		{m[1][0]*m2[0][0] + m[1][1]*m2[1][0], m[1][0]*m2[0][1] + m[1][1]*m2[1][1]},
	}
}

var Identity = Matrix{
	{1, 0},
	{0, 1},
}

var Rot90 = Matrix{
	{0, -1},
	{1, 0},
}

var Mirror = Matrix{
	{-1, 0},
	{0, 1},
}

// rotations are the four rotations of the square symmetry group;
// reflections are those four composed with a mirror. Generation order is
// fixed so that orientation indexes are stable across runs.
var rotations = []Matrix{
	Identity,
	Rot90,
	Rot90.Mult(Rot90),
	Rot90.Mult(Rot90).Mult(Rot90),
}

var reflections = []Matrix{
	Mirror,
	Rot90.Mult(Mirror),
	Rot90.Mult(Rot90).Mult(Mirror),
	Rot90.Mult(Rot90).Mult(Rot90).Mult(Mirror),
}

// Orientation is one rotated/reflected variant of a piece's cell layout,
// normalized so the minimum row and column offsets are zero and sorted
// row-major. Two orientations are equal iff their Keys are equal.
type Orientation []Coordinate

func normalize(cells []Coordinate) Orientation {
	minR, minC := cells[0].Row, cells[0].Col
	for _, c := range cells[1:] {
		if c.Row < minR {
			minR = c.Row
		}
		if c.Col < minC {
			minC = c.Col
		}
	}
	out := make(Orientation, len(cells))
	for i, c := range cells {
		out[i] = Coordinate{c.Row - minR, c.Col - minC}
	}
	sort.Sort(CoordinateSlice(out))
	return out
}

func (o Orientation) Key() string {
	return fmt.Sprintf("%v", []Coordinate(o))
}

func (o Orientation) String() string {
	maxR, maxC := 0, 0
	covered := make(map[Coordinate]bool, len(o))
	for _, c := range o {
		covered[c] = true
		if c.Row > maxR {
			maxR = c.Row
		}
		if c.Col > maxC {
			maxC = c.Col
		}
	}
	s := ""
	for r := 0; r <= maxR; r++ {
		for c := 0; c <= maxC; c++ {
			if covered[Coordinate{r, c}] {
				s += "#"
			} else {
				s += " "
			}
		}
		s += "\n"
	}
	return s
}

// Orientations generates every distinct orientation of the given offsets
// reachable by rotation, plus reflection unless noReflections is set.
// Orientations that normalize to an identical offset set (symmetric pieces)
// are collapsed, keeping the first one generated.
func Orientations(cells []Coordinate, noReflections bool) ([]Orientation, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("%w: piece has no cells", ErrInvalidPieceDefinition)
	}
	seenCell := make(map[Coordinate]bool, len(cells))
	for _, c := range cells {
		if seenCell[c] {
			return nil, fmt.Errorf("%w: duplicate offset %v", ErrInvalidPieceDefinition, c)
		}
		seenCell[c] = true
	}
	tx := rotations
	if !noReflections {
		tx = append(append([]Matrix{}, rotations...), reflections...)
	}
	var out []Orientation
	seen := make(map[string]bool, len(tx))
	for _, m := range tx {
		img := make([]Coordinate, len(cells))
		for i, c := range cells {
			img[i] = m.Transform(c)
		}
		o := normalize(img)
		if key := o.Key(); !seen[key] {
			seen[key] = true
			out = append(out, o)
		}
	}
	return out, nil
}
