package lonpos

import (
	"fmt"
	"sort"
	"time"
)

// Watch accumulates wall time per named phase ("orientations", "search").
// It is package-level scratch state for diagnostics, not part of the
// solver's correctness; a caller wanting clean numbers resets it first.
var Watch Stopwatch

type Stopwatch struct {
	Buckets      map[string]time.Duration
	BucketStarts map[string]time.Time
}

func init() {
	Watch.Reset()
}

func (s *Stopwatch) Reset() {
	s.Buckets = make(map[string]time.Duration)
	s.BucketStarts = make(map[string]time.Time)
}

func (s *Stopwatch) Start(b string) {
	s.BucketStarts[b] = time.Now()
	if _, ok := s.Buckets[b]; !ok {
		s.Buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	start, ok := s.BucketStarts[b]
	if !ok {
		return
	}
	s.Buckets[b] += time.Since(start)
	delete(s.BucketStarts, b)
}

func (s *Stopwatch) Results() string {
	keys := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := ""
	for _, k := range keys {
		out += fmt.Sprintf("%s: %.4fs\n", k, s.Buckets[k].Seconds())
	}
	return out
}
