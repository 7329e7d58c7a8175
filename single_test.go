package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSingleInt_SeedsConstantHistory(t *testing.T) {
	s := NewSingleInt(6)
	require.Len(t, s.History, 1)
	assert.Equal(t, HistConstant, s.History[0].Kind)
	assert.Equal(t, float64(6), s.History[0].Value)
	assert.Equal(t, "`6` = **6**", s.String())
}

func TestSingle_Add_MergesHistoryWithOperator(t *testing.T) {
	dice := NewSingleRoll(DieResults{
		NewDieResult(6, 6),
		NewDieResult(4, 6),
		NewDieResult(2, 6),
	})
	constant := NewSingleInt(6)

	sum := dice.Add(constant)

	assert.Equal(t, float64(18), sum.Total)
	assert.Equal(t, "`[6, 4, 2] + 6` = **18**", sum.String())
}

func TestSingle_Div_ByZero(t *testing.T) {
	lhs := NewSingleInt(10)
	rhs := NewSingleInt(0)

	_, err := lhs.Div(rhs)
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestSingle_EvalTotal_KeepHighest(t *testing.T) {
	s := NewSingleRoll(DieResults{
		NewDieResult(6, 6),
		NewDieResult(4, 6),
		NewDieResult(2, 6),
		NewDieResult(5, 6),
	})

	total, err := s.EvalTotal(Modifier{Kind: ModKeepHigh, Count: 2})
	require.NoError(t, err)
	assert.Equal(t, float64(11), total) // 6 + 5
}

func TestSingle_EvalTotal_DropLow_NotEnoughDice(t *testing.T) {
	s := NewSingleRoll(DieResults{NewDieResult(3, 6)})

	_, err := s.EvalTotal(Modifier{Kind: ModDropLow, Count: 2})
	assert.ErrorIs(t, err, ErrNotEnoughDice)
}

func TestSingle_EvalTotal_TargetDoubleFailure(t *testing.T) {
	s := NewSingleRoll(DieResults{
		NewDieResult(10, 10), // target + double
		NewDieResult(7, 10),  // target only
		NewDieResult(1, 10),  // failure
		NewDieResult(4, 10),  // neither
	})

	modifier := Modifier{
		Kind:      ModTargetDoubleFailure,
		HasTarget: true, Cmp: CmpGreaterEqual, Target: 7,
		HasDouble: true, DoubleCmp: CmpGreaterEqual, Double: 10,
		HasFailure: true, FailureCmp: CmpEqual, Failure: 1,
	}

	total, err := s.EvalTotal(modifier)
	require.NoError(t, err)
	// 10 -> +2 (target+double), 7 -> +1, 1 -> -1, 4 -> 0
	assert.Equal(t, float64(2), total)
}

func TestMergeTargetModifier_OnlyOverwritesOwnSlot(t *testing.T) {
	base := Modifier{Kind: ModTargetDoubleFailure, HasTarget: true, Cmp: CmpGreaterEqual, Target: 7}
	next := Modifier{Kind: ModTargetDoubleFailure, HasFailure: true, FailureCmp: CmpEqual, Failure: 1}

	merged := mergeTargetModifier(base, next)

	assert.True(t, merged.HasTarget)
	assert.Equal(t, int64(7), merged.Target)
	assert.True(t, merged.HasFailure)
	assert.Equal(t, int64(1), merged.Failure)
	assert.False(t, merged.HasDouble)
}
