package lonpos

import "fmt"

// PieceDef is the external definition of a piece: a name, a display color
// for callers that render solutions, the canonical cell offsets, and how
// many copies of the piece the inventory holds (0 means the default of 1).
type PieceDef struct {
	Name  string
	Color string
	Cells []Coordinate
	Count int
}

// Piece is a compiled piece: its definition plus the deduplicated set of
// orientations. ID is the piece's index in the compiled piece list; the
// board stores Cell(ID+1) in covered cells.
type Piece struct {
	ID           int
	Name         string
	Color        string
	Size         int
	Orientations []Orientation

	// shapeKey is identical for pieces with geometrically identical
	// orientation sets, regardless of which canonical offsets defined them.
	shapeKey string
}

func (p *Piece) String() string {
	return fmt.Sprintf("%s (%d cells, %d orientations)", p.Name, p.Size, len(p.Orientations))
}

// CompilePieces validates the definitions and generates orientations.
func CompilePieces(defs []PieceDef, noReflections bool) ([]*Piece, error) {
	Watch.Start("orientations")
	defer Watch.Stop("orientations")
	if len(defs) == 0 {
		return nil, fmt.Errorf("%w: no pieces defined", ErrInvalidPieceDefinition)
	}
	pieces := make([]*Piece, 0, len(defs))
	names := make(map[string]bool, len(defs))
	for i, def := range defs {
		if def.Name == "" {
			return nil, fmt.Errorf("%w: piece %d has no name", ErrInvalidPieceDefinition, i)
		}
		if names[def.Name] {
			return nil, fmt.Errorf("%w: duplicate piece name %q", ErrInvalidPieceDefinition, def.Name)
		}
		names[def.Name] = true
		orients, err := Orientations(def.Cells, noReflections)
		if err != nil {
			return nil, fmt.Errorf("piece %q: %w", def.Name, err)
		}
		pieces = append(pieces, &Piece{
			ID:           i,
			Name:         def.Name,
			Color:        def.Color,
			Size:         len(def.Cells),
			Orientations: orients,
			shapeKey:     shapeKey(orients),
		})
	}
	return pieces, nil
}

// shapeKey picks the lexicographically smallest orientation key, which is
// the same for every piece with the same geometry no matter how its
// canonical offsets were written down.
func shapeKey(orients []Orientation) string {
	best := orients[0].Key()
	for _, o := range orients[1:] {
		if k := o.Key(); k < best {
			best = k
		}
	}
	return best
}

// Inventory tracks how many copies of each piece are still available.
type Inventory struct {
	Pieces    []*Piece
	remaining []int
}

func NewInventory(pieces []*Piece, defs []PieceDef) *Inventory {
	remaining := make([]int, len(pieces))
	for i := range pieces {
		remaining[i] = 1
		if i < len(defs) && defs[i].Count > 0 {
			remaining[i] = defs[i].Count
		}
	}
	return &Inventory{pieces, remaining}
}

func (inv *Inventory) Available(id int) bool {
	return inv.remaining[id] > 0
}

func (inv *Inventory) Remaining(id int) int {
	return inv.remaining[id]
}

func (inv *Inventory) Use(id int) {
	inv.remaining[id]--
}

func (inv *Inventory) Restore(id int) {
	inv.remaining[id]++
}

// TotalCells is the number of board cells the remaining pieces would cover.
func (inv *Inventory) TotalCells() int {
	total := 0
	for i, p := range inv.Pieces {
		total += p.Size * inv.remaining[i]
	}
	return total
}

// MinPieceSize is the size of the smallest remaining piece, or 0 if the
// inventory is exhausted.
func (inv *Inventory) MinPieceSize() int {
	min := 0
	for i, p := range inv.Pieces {
		if inv.remaining[i] == 0 {
			continue
		}
		if min == 0 || p.Size < min {
			min = p.Size
		}
	}
	return min
}

// IsDuplicateOfAvailable reports whether an earlier piece with the same
// geometry is still available. The enumerator skips such pieces: trying the
// later twin at the same search node would only relabel solutions already
// reachable through the earlier one.
func (inv *Inventory) IsDuplicateOfAvailable(id int) bool {
	for j := 0; j < id; j++ {
		if inv.remaining[j] > 0 && inv.Pieces[j].shapeKey == inv.Pieces[id].shapeKey {
			return true
		}
	}
	return false
}
