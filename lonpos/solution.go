package lonpos

import "strings"

// Solution is an immutable snapshot of a fully covered board: the piece
// name covering each cell plus the placements the search made to get
// there. The solver never reads it back; it exists for callers to render
// or assert against.
type Solution struct {
	Width      int
	Height     int
	Names      map[Coordinate]string
	Blocked    map[Coordinate]bool
	Placements []Placement
}

// snapshotSolution reads the whole grid, not just the search path, so
// pieces placed by hand before the search started are captured too.
func snapshotSolution(b *Board, inv *Inventory, path []Placement) Solution {
	sol := Solution{
		Width:      b.Def.Width,
		Height:     b.Def.Height,
		Names:      make(map[Coordinate]string, b.Def.Width*b.Def.Height),
		Blocked:    make(map[Coordinate]bool, len(b.Def.Holes)),
		Placements: make([]Placement, len(path)),
	}
	copy(sol.Placements, path)
	for r := 0; r < b.Def.Height; r++ {
		for c := 0; c < b.Def.Width; c++ {
			coord := Coordinate{r, c}
			switch cell := b.Grid[r][c]; {
			case cell == Blocked:
				sol.Blocked[coord] = true
			case cell > Empty:
				sol.Names[coord] = inv.Pieces[int(cell)-1].Name
			}
		}
	}
	return sol
}

// PieceAt returns the name of the piece covering the cell, or "" if the
// cell is blocked or uncovered.
func (sol Solution) PieceAt(c Coordinate) string {
	return sol.Names[c]
}

func (sol Solution) String() string {
	var sb strings.Builder
	for r := 0; r < sol.Height; r++ {
		for c := 0; c < sol.Width; c++ {
			coord := Coordinate{r, c}
			switch {
			case sol.Blocked[coord]:
				sb.WriteString("#")
			case sol.Names[coord] == "":
				sb.WriteString("_")
			default:
				sb.WriteString(sol.Names[coord][:1])
			}
		}
		sb.WriteString("\n")
	}
	return sb.String()
}
