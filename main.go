package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/bismuthsalamander/lonpos/lonpos"
)

var rootCmd = &cobra.Command{
	Use:          "lonpos",
	Short:        "Solve Lonpos-style polyomino packing puzzles",
	SilenceUsage: true,
}

var (
	boardName    string
	boardFile    string
	pieceNames   string
	solveAll     bool
	limit        int
	timeout      time.Duration
	noMirror     bool
	showProgress bool
	showTiming   bool
	profileMode  string
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve",
		Short: "Search for complete tilings of a board",
		Long: `Search for complete tilings of a board.

Examples:
  lonpos solve
  lonpos solve --board butterfly --all --limit 10
  lonpos solve --board-file tray.txt --pieces A,B,C,F,J,K
  lonpos solve --profile cpu --timeout 30s`,
		RunE: runSolve,
	}
	solveCmd.Flags().StringVarP(&boardName, "board", "b", "rectangle",
		fmt.Sprintf("Preset board (%s)", strings.Join(lonpos.PresetBoardNames(), ", ")))
	solveCmd.Flags().StringVar(&boardFile, "board-file", "", "Board file ('.' open, 'x' blocked); overrides --board")
	solveCmd.Flags().StringVarP(&pieceNames, "pieces", "p", "", "Comma-separated piece subset (default: all twelve)")
	solveCmd.Flags().BoolVarP(&solveAll, "all", "a", false, "Find every solution instead of the first")
	solveCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Stop after this many solutions (0 = unbounded)")
	solveCmd.Flags().DurationVar(&timeout, "timeout", 0, "Give up after this long (0 = no limit)")
	solveCmd.Flags().BoolVar(&noMirror, "no-mirror", false, "Disallow reflected piece orientations")
	solveCmd.Flags().BoolVar(&showProgress, "progress", false, "Show a progress bar while searching")
	solveCmd.Flags().BoolVar(&showTiming, "timing", false, "Print per-phase timing after the search")
	solveCmd.Flags().StringVar(&profileMode, "profile", "", "Write a profile (cpu, mem, clock, trace)")
	rootCmd.AddCommand(solveCmd)

	piecesCmd := &cobra.Command{
		Use:   "pieces",
		Short: "Print the standard piece set and its orientations",
		RunE:  runPieces,
	}
	piecesCmd.Flags().BoolVar(&noMirror, "no-mirror", false, "Disallow reflected piece orientations")
	rootCmd.AddCommand(piecesCmd)
}

func buildConfig() (lonpos.Config, error) {
	var cfg lonpos.Config
	var err error
	if boardFile != "" {
		cfg.Board, err = lonpos.DefFromFile(boardFile)
	} else {
		cfg.Board, err = lonpos.PresetBoard(boardName)
	}
	if err != nil {
		return cfg, err
	}
	if pieceNames == "" {
		cfg.Pieces = lonpos.StandardPieces()
	} else {
		cfg.Pieces, err = lonpos.PieceSubset(strings.Split(pieceNames, ","))
		if err != nil {
			return cfg, err
		}
	}
	cfg.NoReflections = noMirror
	return cfg, nil
}

func startProfile(mode string) (interface{ Stop() }, error) {
	switch mode {
	case "":
		return nil, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath(".")), nil
	case "mem":
		return profile.Start(profile.MemProfile, profile.ProfilePath(".")), nil
	case "clock":
		return profile.Start(profile.ClockProfile, profile.ProfilePath(".")), nil
	case "trace":
		return profile.Start(profile.TraceProfile, profile.ProfilePath(".")), nil
	}
	return nil, fmt.Errorf("unknown profile mode %q (want cpu, mem, clock, or trace)", mode)
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	s, err := lonpos.NewSolverFromConfig(cfg)
	if err != nil {
		return err
	}
	s.Limit = limit

	prof, err := startProfile(profileMode)
	if err != nil {
		return err
	}
	if prof != nil {
		defer prof.Stop()
	}

	ctx := context.Background()
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var wg sync.WaitGroup
	if showProgress {
		s.Progress = make(chan lonpos.ProgressUpdate, 64)
		wg.Add(1)
		go PrintUpdates(s.Progress, &wg)
	}

	mode := lonpos.First
	if solveAll || limit > 0 {
		mode = lonpos.All
	}
	solutions, stats, err := s.Solve(ctx, mode)
	if s.Progress != nil {
		close(s.Progress)
		wg.Wait()
	}
	if err != nil && len(solutions) == 0 {
		return err
	}

	for i, sol := range solutions {
		fmt.Printf("Solution %d:\n%s\n", i+1, sol)
	}
	if len(solutions) == 0 {
		fmt.Println("No solution found")
	}
	fmt.Printf("%d solution(s), %d nodes, %d placements, %.4fs\n",
		stats.Solutions, stats.Nodes, stats.Placements, stats.Duration.Seconds())
	if showTiming {
		fmt.Printf("Stopwatch:\n%s", lonpos.Watch.Results())
	}
	if err != nil {
		fmt.Printf("Search stopped early: %v\n", err)
	}
	return nil
}

func runPieces(cmd *cobra.Command, args []string) error {
	pieces, err := lonpos.CompilePieces(lonpos.StandardPieces(), noMirror)
	if err != nil {
		return err
	}
	for _, p := range pieces {
		fmt.Printf("%v [%s]\n%s\n", p, p.Color, p.Orientations[0])
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
