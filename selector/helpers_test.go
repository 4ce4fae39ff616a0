package selector

import (
	"log/slog"
	"time"
)

func testLogger() *slog.Logger {
	return slog.Default()
}

// seqRand returns the given values in order (modulo n), repeating the
// last one when it runs out.
type seqRand struct {
	vals []int
	i    int
}

func (r *seqRand) IntN(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[min(r.i, len(r.vals)-1)]
	r.i++
	return v % n
}

func zeroRand() *seqRand {
	return &seqRand{vals: []int{0}}
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 18, 0, 0, 0, time.UTC)
}

func candidates(ids ...int64) []Candidate {
	pool := make([]Candidate, 0, len(ids))
	for _, id := range ids {
		pool = append(pool, Candidate{
			ID:         id,
			Name:       string(rune('A' + id - 1)),
			Experience: 2,
			BaseWeight: defaultBaseWeight,
			Weight:     defaultBaseWeight,
		})
	}
	return pool
}
