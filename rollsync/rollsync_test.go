package rollsync

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travis-g/diceroll"
)

// ensure Solver can be locked like a plain mutex for thread safety
var _ sync.Locker = (*Solver)(nil)

func TestSolver_ConcurrentSolve(t *testing.T) {
	s := Wrap(diceroll.NewSolver("3d6 + 2"))

	var wg sync.WaitGroup
	errs := make([]error, 20)
	for i := 0; i < 20; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.Solve()
			errs[i] = err
		}()
	}
	wg.Wait()

	for _, err := range errs {
		assert.NoError(t, err)
	}
}

func TestPool_RollAll(t *testing.T) {
	pool := NewPool()
	queries := []string{"1d20", "2d6 + 3", "4d6kh3", "not dice"}

	results, err := pool.RollAll(context.Background(), queries)
	require.NoError(t, err)
	require.Len(t, results, len(queries))

	assert.NoError(t, results[0].Err)
	assert.NoError(t, results[1].Err)
	assert.NoError(t, results[2].Err)
	assert.Error(t, results[3].Err)

	assert.True(t, pool.Thrown.Load() > 0)
}
