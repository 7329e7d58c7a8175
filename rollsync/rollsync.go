/*
Package rollsync adds thread safety and concurrent batch rolling on top of
github.com/travis-g/diceroll's Solver.
*/
package rollsync

import (
	"context"
	"sync"

	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/travis-g/diceroll"
)

// Solver wraps a *diceroll.Solver with a mutex so the same query can be
// shared and rolled concurrently from multiple goroutines (e.g. a bot
// handling several chat channels against one cached Solver per macro).
type Solver struct {
	l      sync.Mutex
	solver *diceroll.Solver
}

// Wrap returns a Solver guarding s.
func Wrap(s *diceroll.Solver) *Solver {
	return &Solver{solver: s}
}

// Solve rolls the wrapped Solver with thread safety.
func (s *Solver) Solve() (*diceroll.RollResult, error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.solver.Solve()
}

// SolveWithSource rolls the wrapped Solver against source with thread
// safety.
func (s *Solver) SolveWithSource(source diceroll.RandomSource) (*diceroll.RollResult, error) {
	s.l.Lock()
	defer s.l.Unlock()
	return s.solver.SolveWithSource(source)
}

// AsStr locks the wrapped Solver and returns its query string.
func (s *Solver) AsStr() string {
	s.l.Lock()
	defer s.l.Unlock()
	return s.solver.AsStr()
}

// Lock locks the underlying mutex, letting a caller batch several
// operations (e.g. TrimReason then Solve) atomically.
func (s *Solver) Lock() { s.l.Lock() }

// Unlock unlocks the underlying mutex.
func (s *Solver) Unlock() { s.l.Unlock() }

// BatchResult pairs one query in a Pool.RollAll call with its outcome.
type BatchResult struct {
	Query  string
	Result *diceroll.RollResult
	Err    error
}

// Pool rolls many independent queries concurrently against the package's
// default RandomSource, tracking how many individual dice throws were made
// across the whole batch.
type Pool struct {
	Thrown *atomic.Uint64
}

// NewPool returns a ready-to-use Pool.
func NewPool() *Pool {
	return &Pool{Thrown: atomic.NewUint64(0)}
}

// countingSource wraps a diceroll.RandomSource, incrementing a shared
// counter on every throw so a Pool can report total dice thrown across a
// concurrent batch without each query's Solver knowing about the others.
type countingSource struct {
	inner   diceroll.RandomSource
	counter *atomic.Uint64
}

func (c countingSource) Throw(sides uint64) uint64 {
	c.counter.Inc()
	return c.inner.Throw(sides)
}

// RollAll solves every query in queries concurrently, stopping early if
// ctx is canceled. Unlike an errgroup.Group used for all-or-nothing work,
// one query failing does not abort the others: every query gets a
// BatchResult, in the same order queries was given.
func (p *Pool) RollAll(ctx context.Context, queries []string) ([]BatchResult, error) {
	results := make([]BatchResult, len(queries))
	eg, egCtx := errgroup.WithContext(ctx)

	source := countingSource{inner: diceroll.DefaultRandomSource, counter: p.Thrown}

	for i, query := range queries {
		i, query := i, query
		eg.Go(func() error {
			select {
			case <-egCtx.Done():
				results[i] = BatchResult{Query: query, Err: egCtx.Err()}
				return nil
			default:
			}
			result, err := diceroll.NewSolver(query).SolveWithSource(source)
			results[i] = BatchResult{Query: query, Result: result, Err: err}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return results, err
	}
	return results, nil
}
