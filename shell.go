package main

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/bismuthsalamander/lonpos/lonpos"
)

func init() {
	shellCmd := &cobra.Command{
		Use:   "shell",
		Short: "Interactive session: place pieces by hand, then solve from the current position",
		RunE:  runShell,
	}
	shellCmd.Flags().StringVarP(&boardName, "board", "b", "rectangle", "Preset board to start with")
	shellCmd.Flags().BoolVar(&noMirror, "no-mirror", false, "Disallow reflected piece orientations")
	rootCmd.AddCommand(shellCmd)
}

// session is the state behind one shell: a board, the piece inventory, and
// the placements made by hand so they can be unplaced by name.
type session struct {
	board  *lonpos.Board
	inv    *lonpos.Inventory
	placed map[string]lonpos.Placement
}

func newSession(board string) (*session, error) {
	cfg, err := lonpos.StandardConfig(board)
	if err != nil {
		return nil, err
	}
	cfg.NoReflections = noMirror
	s, err := lonpos.NewSolverFromConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &session{s.Board(), s.Inventory(), make(map[string]lonpos.Placement)}, nil
}

func (ses *session) pieceByName(name string) (*lonpos.Piece, bool) {
	for _, p := range ses.inv.Pieces {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}
	return nil, false
}

// NewSolver seeded the board's piece names, so the board renders with the
// same letters the solutions use.
func (ses *session) render() string {
	return ses.board.String()
}

func (ses *session) place(args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: place <piece> <row> <col> [orientation]")
	}
	piece, ok := ses.pieceByName(args[0])
	if !ok {
		return fmt.Errorf("unknown piece %q", args[0])
	}
	if !ses.inv.Available(piece.ID) {
		return fmt.Errorf("piece %s is already on the board", piece.Name)
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("bad row %q", args[1])
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("bad col %q", args[2])
	}
	orient := 0
	if len(args) > 3 {
		orient, err = strconv.Atoi(args[3])
		if err != nil || orient < 0 || orient >= len(piece.Orientations) {
			return fmt.Errorf("piece %s has orientations 0-%d", piece.Name, len(piece.Orientations)-1)
		}
	}
	p := lonpos.NewPlacement(piece, orient, lonpos.Coordinate{Row: row, Col: col})
	if !ses.board.CanPlace(p) {
		return fmt.Errorf("cannot place %v there", p)
	}
	if err := ses.board.Place(p); err != nil {
		return err
	}
	ses.inv.Use(piece.ID)
	ses.placed[piece.Name] = p
	return nil
}

func (ses *session) unplace(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("usage: unplace <piece>")
	}
	piece, ok := ses.pieceByName(args[0])
	if !ok {
		return fmt.Errorf("unknown piece %q", args[0])
	}
	p, ok := ses.placed[piece.Name]
	if !ok {
		return fmt.Errorf("piece %s was not placed by hand", piece.Name)
	}
	if err := ses.board.Remove(p); err != nil {
		return err
	}
	ses.inv.Restore(piece.ID)
	delete(ses.placed, piece.Name)
	return nil
}

// solve searches from the current position. The solver's undo discipline
// leaves the hand-placed position intact afterwards.
func (ses *session) solve(args []string) error {
	mode := lonpos.First
	s := lonpos.NewSolver(ses.board, ses.inv)
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "all":
			mode = lonpos.All
		case "limit":
			if i+1 >= len(args) {
				return fmt.Errorf("usage: solve [all] [limit <n>]")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil {
				return fmt.Errorf("bad limit %q", args[i+1])
			}
			s.Limit = n
			mode = lonpos.All
			i++
		default:
			return fmt.Errorf("unknown solve argument %q", args[i])
		}
	}
	solutions, stats, err := s.Solve(context.Background(), mode)
	if err != nil {
		return err
	}
	for i, sol := range solutions {
		fmt.Printf("Solution %d:\n%s\n", i+1, sol)
	}
	fmt.Printf("%d solution(s), %d nodes, %.4fs\n", stats.Solutions, stats.Nodes, stats.Duration.Seconds())
	return nil
}

func (ses *session) pieces() string {
	s := ""
	for _, p := range ses.inv.Pieces {
		state := "available"
		if !ses.inv.Available(p.ID) {
			state = "placed"
		}
		s += fmt.Sprintf("%v [%s] %s\n", p, p.Color, state)
	}
	return s
}

func (ses *session) orient(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: orient <piece>")
	}
	piece, ok := ses.pieceByName(args[0])
	if !ok {
		return "", fmt.Errorf("unknown piece %q", args[0])
	}
	s := ""
	for i, o := range piece.Orientations {
		s += fmt.Sprintf("orientation %d:\n%s", i, o)
	}
	return s, nil
}

const shellHelp = `Commands:
  board <preset|file>        load a board (discards placements)
  show                       print the current board
  pieces                     list pieces and availability
  orient <piece>             print a piece's orientations
  place <piece> <r> <c> [o]  place a piece anchored at (r, c)
  unplace <piece>            take a hand-placed piece back off
  solve [all] [limit <n>]    search from the current position
  reset                      clear the board
  exit                       leave the shell
`

func runShell(cmd *cobra.Command, args []string) error {
	ses, err := newSession(boardName)
	if err != nil {
		return err
	}
	completer := readline.NewPrefixCompleter(
		readline.PcItem("board"),
		readline.PcItem("show"),
		readline.PcItem("pieces"),
		readline.PcItem("orient"),
		readline.PcItem("place"),
		readline.PcItem("unplace"),
		readline.PcItem("solve"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("exit"),
	)
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "lonpos> ",
		HistoryFile:     "/tmp/lonpos_history",
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Print(ses.render())
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err == io.EOF {
			return nil
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		verb, rest := fields[0], fields[1:]
		switch verb {
		case "board":
			if len(rest) < 1 {
				fmt.Println("usage: board <preset|file>")
				continue
			}
			next, err := newSession(rest[0])
			if err != nil {
				if def, ferr := lonpos.DefFromFile(rest[0]); ferr == nil {
					cfg := lonpos.Config{Board: def, Pieces: lonpos.StandardPieces(), NoReflections: noMirror}
					if s, serr := lonpos.NewSolverFromConfig(cfg); serr == nil {
						next = &session{s.Board(), s.Inventory(), make(map[string]lonpos.Placement)}
						err = nil
					}
				}
			}
			if err != nil {
				fmt.Println(err)
				continue
			}
			ses = next
			fmt.Print(ses.render())
		case "show":
			fmt.Print(ses.render())
		case "pieces":
			fmt.Print(ses.pieces())
		case "orient":
			s, err := ses.orient(rest)
			if err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(s)
		case "place":
			if err := ses.place(rest); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(ses.render())
		case "unplace":
			if err := ses.unplace(rest); err != nil {
				fmt.Println(err)
				continue
			}
			fmt.Print(ses.render())
		case "solve":
			if err := ses.solve(rest); err != nil {
				fmt.Println(err)
			}
		case "reset":
			for name := range ses.placed {
				if err := ses.unplace([]string{name}); err != nil {
					fmt.Println(err)
				}
			}
			fmt.Print(ses.render())
		case "help":
			fmt.Print(shellHelp)
		case "exit", "quit":
			return nil
		default:
			fmt.Printf("unknown command %q (try help)\n", verb)
		}
	}
}
