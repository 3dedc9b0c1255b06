package lonpos

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var ErrInvalidPieceDefinition = errors.New("invalid piece definition")
var ErrInvalidBoardConfiguration = errors.New("invalid board configuration")
var ErrInvariantViolation = errors.New("invariant violation")

// Config is one puzzle instance: a board definition and the piece
// inventory to tile it with.
type Config struct {
	Board         BoardDef
	Pieces        []PieceDef
	NoReflections bool
}

func (cfg Config) Validate() error {
	if err := cfg.Board.Validate(); err != nil {
		return err
	}
	if len(cfg.Pieces) == 0 {
		return fmt.Errorf("%w: no pieces defined", ErrInvalidPieceDefinition)
	}
	return nil
}

// pieceChar maps a 1-based piece ID to a single display character for
// Board.String, which has no access to piece names.
func pieceChar(id int) string {
	if id < 10 {
		return string(rune(id + '0'))
	}
	if id < 36 {
		return string(rune((id - 10) + 'a'))
	}
	if id < 62 {
		return string(rune((id - 36) + 'A'))
	}
	return "?"
}

// DefFromString parses a board definition from a character grid: '.' for
// an open cell, 'x' or '#' for a blocked one. Rows must all be the same
// width.
func DefFromString(input string) (BoardDef, error) {
	var def BoardDef
	lines := make([]string, 0)
	for _, txt := range strings.Split(input, "\n") {
		txt = strings.Trim(txt, "\r\n\t ")
		if len(txt) > 0 {
			lines = append(lines, txt)
		}
	}
	if len(lines) == 0 {
		return def, fmt.Errorf("%w: empty board text", ErrInvalidBoardConfiguration)
	}
	def.Width = len(lines[0])
	def.Height = len(lines)
	for ri, row := range lines {
		if len(row) != def.Width {
			return def, fmt.Errorf("%w: row %d has width %d, want %d", ErrInvalidBoardConfiguration, ri, len(row), def.Width)
		}
		for ci, cell := range row {
			switch cell {
			case '.':
			case 'x', '#':
				def.Holes = append(def.Holes, Coordinate{ri, ci})
			default:
				return def, fmt.Errorf("%w: unexpected character %q at (r%d, c%d)", ErrInvalidBoardConfiguration, cell, ri, ci)
			}
		}
	}
	return def, nil
}

func BoardFromString(input string) (*Board, error) {
	def, err := DefFromString(input)
	if err != nil {
		return nil, err
	}
	return NewBoard(def)
}

func BoardFromFile(f string) (*Board, error) {
	data, err := os.ReadFile(f)
	if err != nil {
		return nil, fmt.Errorf("reading board file: %w", err)
	}
	return BoardFromString(string(data))
}

func DefFromFile(f string) (BoardDef, error) {
	data, err := os.ReadFile(f)
	if err != nil {
		return BoardDef{}, fmt.Errorf("reading board file: %w", err)
	}
	return DefFromString(string(data))
}
