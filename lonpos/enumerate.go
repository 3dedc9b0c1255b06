package lonpos

import "fmt"

// Placement is one candidate assignment: a piece, one of its orientations,
// and the anchor cell its origin offset maps to. Cells holds the absolute
// board cells it covers and is never mutated after construction.
type Placement struct {
	Piece       *Piece
	Orientation int
	Anchor      Coordinate
	Cells       []Coordinate
}

func NewPlacement(piece *Piece, orientation int, anchor Coordinate) Placement {
	o := piece.Orientations[orientation]
	cells := make([]Coordinate, len(o))
	for i, off := range o {
		cells[i] = anchor.Translate(off.Row, off.Col)
	}
	return Placement{piece, orientation, anchor, cells}
}

func (p Placement) String() string {
	return fmt.Sprintf("%s o%d at %v", p.Piece.Name, p.Orientation, p.Anchor)
}

// PlacementsAt builds every valid placement that covers the target cell
// using some orientation of some available piece. For each orientation,
// each of its offsets is anchored onto the target in turn, so the target
// ends up under every cell of every piece exactly once. The slice is
// rebuilt on each call and its order is deterministic: inventory order,
// then orientation generation order, then offset order.
//
// Pieces whose geometry duplicates an earlier still-available piece are
// skipped; see Inventory.IsDuplicateOfAvailable.
func (b *Board) PlacementsAt(target Coordinate, inv *Inventory) []Placement {
	var out []Placement
	for id, piece := range inv.Pieces {
		if !inv.Available(id) || inv.IsDuplicateOfAvailable(id) {
			continue
		}
		for oi, o := range piece.Orientations {
			for _, off := range o {
				anchor := target.Translate(-off.Row, -off.Col)
				p := NewPlacement(piece, oi, anchor)
				if b.CanPlace(p) {
					out = append(out, p)
				}
			}
		}
	}
	return out
}
