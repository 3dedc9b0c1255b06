package lonpos

import "fmt"

// Cell holds the occupancy of one board position: Empty, Blocked (a hole
// that must never be covered), or the 1-based ID of the piece covering it.
type Cell int

const Empty Cell = 0
const Blocked Cell = -1

// BoardDef describes a board: its dimensions and the cells excluded from
// play. The preset non-rectangular trays are all hole masks over their
// bounding grids.
type BoardDef struct {
	Width  int
	Height int
	Holes  []Coordinate
}

func (d BoardDef) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d", ErrInvalidBoardConfiguration, d.Height, d.Width)
	}
	for _, h := range d.Holes {
		if h.Row < 0 || h.Col < 0 || h.Row >= d.Height || h.Col >= d.Width {
			return fmt.Errorf("%w: hole %v outside %dx%d board", ErrInvalidBoardConfiguration, h, d.Height, d.Width)
		}
	}
	return nil
}

// Board is the mutable occupancy grid. OpenCells counts the coverable
// cells still empty; it hits zero exactly when the board is solved.
type Board struct {
	Def       BoardDef
	Grid      [][]Cell
	OpenCells int

	// Names maps piece ID-1 to a display name. NewSolver fills it in from
	// the inventory so board, shell, and solution grids all render the
	// same letters; without it CharAt falls back to numeric IDs.
	Names []string
}

func NewGrid(w int, h int) [][]Cell {
	cells := make([][]Cell, h)
	for i := 0; i < h; i++ {
		cells[i] = make([]Cell, w)
	}
	return cells
}

func NewBoard(def BoardDef) (*Board, error) {
	if err := def.Validate(); err != nil {
		return nil, err
	}
	b := Board{Def: def, Grid: NewGrid(def.Width, def.Height), OpenCells: def.Width * def.Height}
	for _, h := range def.Holes {
		if b.Grid[h.Row][h.Col] == Blocked {
			continue
		}
		b.Grid[h.Row][h.Col] = Blocked
		b.OpenCells--
	}
	return &b, nil
}

func (b *Board) IsInBounds(c Coordinate) bool {
	return c.Row >= 0 && c.Col >= 0 && c.Row < b.Def.Height && c.Col < b.Def.Width
}

func (b *Board) Get(c Coordinate) Cell {
	return b.Grid[c.Row][c.Col]
}

func (b *Board) IsEmpty(c Coordinate) bool {
	return b.IsInBounds(c) && b.Grid[c.Row][c.Col] == Empty
}

// CanPlace reports whether every cell the placement covers is in bounds
// and currently empty. No side effects.
func (b *Board) CanPlace(p Placement) bool {
	for _, c := range p.Cells {
		if !b.IsEmpty(c) {
			return false
		}
	}
	return true
}

// Place marks every covered cell with the placement's piece ID. The caller
// must have checked CanPlace immediately before; a cell found occupied or
// out of bounds here means the search walked onto corrupted state, so the
// whole solve aborts with ErrInvariantViolation.
func (b *Board) Place(p Placement) error {
	id := Cell(p.Piece.ID + 1)
	for _, c := range p.Cells {
		if !b.IsInBounds(c) || b.Grid[c.Row][c.Col] != Empty {
			return fmt.Errorf("%w: placing %s over %v", ErrInvariantViolation, p.Piece.Name, c)
		}
		b.Grid[c.Row][c.Col] = id
	}
	b.OpenCells -= len(p.Cells)
	return nil
}

// Remove is the inverse of Place.
func (b *Board) Remove(p Placement) error {
	id := Cell(p.Piece.ID + 1)
	for _, c := range p.Cells {
		if !b.IsInBounds(c) || b.Grid[c.Row][c.Col] != id {
			return fmt.Errorf("%w: removing %s from %v", ErrInvariantViolation, p.Piece.Name, c)
		}
		b.Grid[c.Row][c.Col] = Empty
	}
	b.OpenCells += len(p.Cells)
	return nil
}

// EmptyNeighborCount counts the orthogonally adjacent cells that are in
// bounds and empty.
func (b *Board) EmptyNeighborCount(c Coordinate) int {
	ct := 0
	for d := -1; d < 2; d += 2 {
		if b.IsEmpty(c.Translate(d, 0)) {
			ct++
		}
		if b.IsEmpty(c.Translate(0, d)) {
			ct++
		}
	}
	return ct
}

// MostConstrainedEmptyCell returns the empty cell with the fewest empty
// neighbors, scanning row-major so ties break deterministically. The
// second return is false iff the board is fully covered.
func (b *Board) MostConstrainedEmptyCell() (Coordinate, bool) {
	best := Coordinate{}
	bestCt := -1
	for r := 0; r < b.Def.Height; r++ {
		for c := 0; c < b.Def.Width; c++ {
			if b.Grid[r][c] != Empty {
				continue
			}
			coord := Coordinate{r, c}
			ct := b.EmptyNeighborCount(coord)
			if ct == 0 {
				return coord, true
			}
			if bestCt == -1 || ct < bestCt {
				best = coord
				bestCt = ct
			}
		}
	}
	return best, bestCt != -1
}

func (b *Board) CharAt(r int, c int) string {
	switch cell := b.Grid[r][c]; {
	case cell == Blocked:
		return "#"
	case cell == Empty:
		return "_"
	default:
		if id := int(cell); id <= len(b.Names) && b.Names[id-1] != "" {
			return b.Names[id-1][:1]
		}
		return pieceChar(int(cell))
	}
}

func (b *Board) String() string {
	s := ""
	for r := 0; r < b.Def.Height; r++ {
		for c := 0; c < b.Def.Width; c++ {
			s += b.CharAt(r, c)
		}
		s += "\n"
	}
	return s
}
