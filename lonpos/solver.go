package lonpos

import (
	"context"
	"time"
)

// Mode selects whether Solve stops at the first complete tiling or keeps
// searching for every one.
type Mode int

const (
	First Mode = iota
	All
)

// Stats describes how much work a solve did.
type Stats struct {
	Nodes      int
	Placements int
	Solutions  int
	Duration   time.Duration
}

type ProgressUpdate struct {
	CellsCovered int
	GridSize     int
	Nodes        int
	Solutions    int
}

// Solver owns a board and inventory for the duration of one search. Both
// are mutated in place along the search path and restored by the undo
// half of every place/undo pair, so after Solve returns (including on
// cancellation) they are back in their pre-search state.
type Solver struct {
	b   *Board
	inv *Inventory

	// Limit stops an All-mode search after that many solutions; 0 means
	// unbounded.
	Limit int

	// Progress, if set, receives updates as the search runs. Sends never
	// block; a slow consumer just misses intermediate updates.
	Progress chan ProgressUpdate

	gridSize  int
	path      []Placement
	solutions []Solution
	stats     Stats
}

func NewSolver(b *Board, inv *Inventory) *Solver {
	if b.Names == nil {
		names := make([]string, len(inv.Pieces))
		for i, p := range inv.Pieces {
			names[i] = p.Name
		}
		b.Names = names
	}
	return &Solver{b: b, inv: inv, gridSize: b.OpenCells}
}

// NewSolverFromConfig validates the configuration and builds a solver for
// it. All configuration errors surface here, before any search work.
func NewSolverFromConfig(cfg Config) (*Solver, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	pieces, err := CompilePieces(cfg.Pieces, cfg.NoReflections)
	if err != nil {
		return nil, err
	}
	b, err := NewBoard(cfg.Board)
	if err != nil {
		return nil, err
	}
	return NewSolver(b, NewInventory(pieces, cfg.Pieces)), nil
}

func (s *Solver) Board() *Board {
	return s.b
}

func (s *Solver) Inventory() *Inventory {
	return s.inv
}

// Solve runs the backtracking search. No solution is not an error: the
// returned slice is just empty. The context cancels the search; all stack
// frames unwind through the normal undo path first.
func (s *Solver) Solve(ctx context.Context, mode Mode) ([]Solution, Stats, error) {
	Watch.Start("search")
	defer Watch.Stop("search")
	s.solutions = nil
	s.path = s.path[:0]
	s.stats = Stats{}
	start := time.Now()
	// Cheap infeasibility checks so a hopeless search dies before it
	// starts: not enough piece cells to cover the board, or every piece
	// too big to fit what's left.
	if s.b.OpenCells > 0 {
		if s.inv.TotalCells() < s.b.OpenCells || s.inv.MinPieceSize() > s.b.OpenCells {
			s.stats.Duration = time.Since(start)
			return nil, s.stats, nil
		}
	}
	_, err := s.search(ctx, mode)
	s.stats.Duration = time.Since(start)
	s.stats.Solutions = len(s.solutions)
	return s.solutions, s.stats, err
}

// search returns stop=true when the caller should unwind the whole stack:
// first solution found in First mode, solution limit reached, cancellation,
// or a corrupted-state error.
func (s *Solver) search(ctx context.Context, mode Mode) (bool, error) {
	if err := ctx.Err(); err != nil {
		return true, err
	}
	s.stats.Nodes++
	target, ok := s.b.MostConstrainedEmptyCell()
	if !ok {
		s.record()
		s.sendProgress()
		return mode == First || (s.Limit > 0 && len(s.solutions) >= s.Limit), nil
	}
	// A target cell always exists here; if nothing can cover it this loop
	// body never runs and the branch dies immediately.
	for _, p := range s.b.PlacementsAt(target, s.inv) {
		s.stats.Placements++
		if err := s.b.Place(p); err != nil {
			return true, err
		}
		s.inv.Use(p.Piece.ID)
		s.path = append(s.path, p)
		s.sendProgress()

		stop, err := s.search(ctx, mode)

		s.path = s.path[:len(s.path)-1]
		s.inv.Restore(p.Piece.ID)
		if rerr := s.b.Remove(p); rerr != nil {
			return true, rerr
		}
		if stop || err != nil {
			return stop, err
		}
	}
	return false, nil
}

func (s *Solver) record() {
	s.solutions = append(s.solutions, snapshotSolution(s.b, s.inv, s.path))
}

func (s *Solver) sendProgress() {
	if s.Progress == nil {
		return
	}
	update := ProgressUpdate{
		CellsCovered: s.gridSize - s.b.OpenCells,
		GridSize:     s.gridSize,
		Nodes:        s.stats.Nodes,
		Solutions:    len(s.solutions),
	}
	select {
	case s.Progress <- update:
	default:
	}
}

// Solve is the package entry point: validate the configuration, build the
// board and inventory, and run the search.
func Solve(ctx context.Context, cfg Config, mode Mode) ([]Solution, Stats, error) {
	s, err := NewSolverFromConfig(cfg)
	if err != nil {
		return nil, Stats{}, err
	}
	return s.Solve(ctx, mode)
}
