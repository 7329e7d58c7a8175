package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSolver_SolveWithSource(t *testing.T) {
	solver := NewSolver("2d6 + 6")
	result, err := solver.SolveWithSource(newSequenceSource(6, 4))
	require.NoError(t, err)

	single := result.AsSingle()
	require.NotNil(t, single)
	assert.Equal(t, float64(16), single.Total)
	assert.Equal(t, "`[6, 4] + 6` = **16**", result.String())
}

func TestSolver_ReasonSuffix(t *testing.T) {
	solver := NewSolver("2d6 + 6 : fireball damage")
	result, err := solver.SolveWithSource(newSequenceSource(6, 4))
	require.NoError(t, err)

	assert.Equal(t, "fireball damage", result.Reason)
	assert.Equal(t, "`[6, 4] + 6` = **16** *reason* `fireball damage`", result.String())
}

func TestSolver_TrimReason(t *testing.T) {
	solver := NewSolver("1d20 : attack roll")
	reason := solver.TrimReason()

	assert.Equal(t, "attack roll", reason)
	assert.Equal(t, "1d20", solver.AsStr())
	assert.Equal(t, "", solver.TrimReason())
}

func TestSolver_RepeatSum(t *testing.T) {
	solver := NewSolver("1d6 ^+ 3")
	result, err := solver.SolveWithSource(newSequenceSource(2, 3, 4))
	require.NoError(t, err)

	multi := result.AsMulti()
	require.NotNil(t, multi)
	require.NotNil(t, multi.Total)
	assert.Equal(t, float64(9), *multi.Total)
	assert.Len(t, multi.Rolls, 3)
}

func TestSolver_RepeatSort(t *testing.T) {
	solver := NewSolver("1d6 ^# 3")
	result, err := solver.SolveWithSource(newSequenceSource(2, 6, 4))
	require.NoError(t, err)

	multi := result.AsMulti()
	require.NotNil(t, multi)
	assert.Nil(t, multi.Total)
	require.Len(t, multi.Rolls, 3)
	assert.Equal(t, float64(2), multi.Rolls[0].Total)
	assert.Equal(t, float64(4), multi.Rolls[1].Total)
	assert.Equal(t, float64(6), multi.Rolls[2].Total)
}

func TestSolver_BadRepeatCount(t *testing.T) {
	solver := NewSolver("1d6 ^ 0")
	_, err := solver.SolveWithSource(newSequenceSource(1))
	assert.ErrorIs(t, err, ErrBadRepeatCount)
}

func TestSolver_Dices(t *testing.T) {
	solver := NewSolver("2d6 + 1d4 + 3")
	dices, err := solver.Dices()
	require.NoError(t, err)
	require.Len(t, dices, 2)

	assert.Equal(t, uint64(2), *dices[0].Amount)
	assert.Equal(t, uint64(6), *dices[0].Sides)
	assert.Equal(t, uint64(4), *dices[1].Sides)
}

func TestSolver_GrammarError(t *testing.T) {
	solver := NewSolver("2d")
	_, err := solver.Solve()
	require.Error(t, err)

	var grammarErr *GrammarError
	assert.ErrorAs(t, err, &grammarErr)
}
