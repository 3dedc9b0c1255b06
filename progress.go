package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/bismuthsalamander/lonpos/lonpos"
)

// PrintUpdates renders a progress bar from solver updates until the
// channel closes. Updates arrive on every placement but are sent
// non-blocking, so missing some under load is fine; we redraw at most
// every 50ms anyway.
func PrintUpdates(updates chan lonpos.ProgressUpdate, wg *sync.WaitGroup) {
	defer wg.Done()
	if updates == nil {
		return
	}
	fmt.Println("Searching...")
	last := time.Time{}
	for update := range updates {
		if time.Since(last) < 50*time.Millisecond {
			continue
		}
		last = time.Now()
		s := ""
		pct := float64(update.CellsCovered) / float64(update.GridSize)
		for i := 0.05; i <= 1.0; i += 0.05 {
			if pct >= i {
				s += "="
			} else {
				s += "."
			}
		}
		s = "[" + s + "]"
		s += fmt.Sprintf(" %d/%d cells, %d nodes, %d solution(s)",
			update.CellsCovered, update.GridSize, update.Nodes, update.Solutions)
		fmt.Print("\033[1A\033[K")
		fmt.Printf("%s\n", s)
	}
}
