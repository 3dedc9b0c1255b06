package lonpos

import (
	"fmt"
	"sort"
	"strings"
)

// StandardPieces is the classic Lonpos set: twelve pieces, 55 cells total,
// each available once.
func StandardPieces() []PieceDef {
	return []PieceDef{
		{Name: "A", Color: "orange", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}, {1, 2}}},
		{Name: "B", Color: "red", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {1, 2}}},
		{Name: "C", Color: "blue", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {1, 3}}},
		{Name: "D", Color: "pink", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}, {1, 2}, {1, -1}}},
		{Name: "E", Color: "green", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}}},
		{Name: "F", Color: "whitesmoke", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}}},
		{Name: "G", Color: "cyan", Cells: []Coordinate{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {2, 2}}},
		{Name: "H", Color: "magenta", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}, {2, 1}, {2, 2}}},
		{Name: "I", Color: "yellow", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {2, 0}, {2, 1}}},
		{Name: "J", Color: "darkviolet", Cells: []Coordinate{{0, 0}, {0, 1}, {0, 2}, {0, 3}}},
		{Name: "K", Color: "lime", Cells: []Coordinate{{0, 0}, {0, 1}, {1, 0}, {1, 1}}},
		{Name: "L", Color: "gray", Cells: []Coordinate{{0, 0}, {1, 0}, {1, 1}, {1, -1}, {2, 0}}},
	}
}

// PieceSubset filters the standard set down to the named pieces, keeping
// standard order.
func PieceSubset(names []string) ([]PieceDef, error) {
	all := StandardPieces()
	byName := make(map[string]PieceDef, len(all))
	for _, def := range all {
		byName[def.Name] = def
	}
	want := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToUpper(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		if _, ok := byName[n]; !ok {
			return nil, fmt.Errorf("%w: unknown piece %q", ErrInvalidPieceDefinition, n)
		}
		want[n] = true
	}
	out := make([]PieceDef, 0, len(want))
	for _, def := range all {
		if want[def.Name] {
			out = append(out, def)
		}
	}
	return out, nil
}

// The preset trays all hold exactly 55 open cells, one per cell of the
// standard piece set.
var presetBoards = map[string]string{
	"rectangle": `
		...........
		...........
		...........
		...........
		...........`,
	"triangle": `
		xxxxxxxxx.
		xxxxxxxx..
		xxxxxxx...
		xxxxxx....
		xxxxx.....
		xxxx......
		xxx.......
		xx........
		x.........
		..........`,
	"arrowhead": `
		xxxx..xxx
		xxxx...xx
		xxx.....x
		xx.......
		.........
		.........
		x....x...
		xx.......
		xxx......`,
	"butterfly": `
		xxxx....x
		xxxx.....
		xx.......
		xx.......
		.........
		.......xx
		.......xx
		.....xxxx
		x....xxxx`,
}

func PresetBoard(name string) (BoardDef, error) {
	text, ok := presetBoards[name]
	if !ok {
		return BoardDef{}, fmt.Errorf("%w: unknown preset board %q (have %s)",
			ErrInvalidBoardConfiguration, name, strings.Join(PresetBoardNames(), ", "))
	}
	return DefFromString(text)
}

func PresetBoardNames() []string {
	names := make([]string, 0, len(presetBoards))
	for name := range presetBoards {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// StandardConfig is the classic game: the named preset tray and the full
// twelve-piece set.
func StandardConfig(board string) (Config, error) {
	def, err := PresetBoard(board)
	if err != nil {
		return Config{}, err
	}
	return Config{Board: def, Pieces: StandardPieces()}, nil
}
