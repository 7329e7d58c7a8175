package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalQuery(t *testing.T, query string, values ...uint64) (*Single, error) {
	t.Helper()
	cmd, err := NewParser().Parse(query)
	require.NoError(t, err)
	eval := NewEvaluator(newSequenceSource(values...))
	return eval.Eval(cmd.Expr)
}

func TestEvaluator_PlainArithmetic(t *testing.T) {
	single, err := evalQuery(t, "2 + 3 * 4")
	require.NoError(t, err)
	assert.Equal(t, float64(14), single.Total)
}

func TestEvaluator_DiceTermWithConstant(t *testing.T) {
	single, err := evalQuery(t, "2d6 + 6", 6, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(16), single.Total)
	assert.Equal(t, "[6, 4] + 6", single.History.String())
}

func TestEvaluator_ExplodeOnce(t *testing.T) {
	single, err := evalQuery(t, "1d6!", 6, 3)
	require.NoError(t, err)
	assert.Equal(t, float64(9), single.Total)
}

func TestEvaluator_ExplodeIndefinite(t *testing.T) {
	single, err := evalQuery(t, "1d6!!", 6, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(14), single.Total) // 6 + 6 + 2
}

func TestEvaluator_Reroll(t *testing.T) {
	single, err := evalQuery(t, "1d6r1", 1, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(4), single.Total)
}

func TestEvaluator_RerollIndefinite(t *testing.T) {
	single, err := evalQuery(t, "1d6rr1", 1, 1, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(5), single.Total)
}

func TestEvaluator_KeepHigh(t *testing.T) {
	single, err := evalQuery(t, "4d6kh3", 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(9), single.Total) // 2+3+4
}

func TestEvaluator_DropLow(t *testing.T) {
	single, err := evalQuery(t, "4d6dl1", 1, 2, 3, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(9), single.Total) // 2+3+4
}

func TestEvaluator_TargetAndFailure(t *testing.T) {
	single, err := evalQuery(t, "2d10 t7 f1", 10, 1)
	require.NoError(t, err)
	assert.Equal(t, float64(0), single.Total) // +1 (target) - 1 (failure)
}

func TestEvaluator_TargetDouble(t *testing.T) {
	single, err := evalQuery(t, "1d10 t7 tt10", 10)
	require.NoError(t, err)
	assert.Equal(t, float64(2), single.Total)
}

func TestEvaluator_TargetEnum(t *testing.T) {
	single, err := evalQuery(t, "3d6 t[2,3,5]", 2, 4, 5)
	require.NoError(t, err)
	assert.Equal(t, float64(2), single.Total)
}

func TestEvaluator_Fudge(t *testing.T) {
	single, err := evalQuery(t, "4dF", 1, 3, 6, 2)
	require.NoError(t, err)
	assert.Equal(t, float64(-1), single.Total) // -1, 0, +1, -1
	assert.Equal(t, "[-, □, +, -]", single.History.String())
}

func TestEvaluator_ParensWrapHistory(t *testing.T) {
	single, err := evalQuery(t, "(2d6 + 6) * 2", 6, 4)
	require.NoError(t, err)
	assert.Equal(t, float64(32), single.Total)
	assert.Equal(t, "([6, 4] + 6) * 2", single.History.String())
}

func TestEvaluator_DivideByZero(t *testing.T) {
	_, err := evalQuery(t, "4 / (2 - 2)")
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestEvaluator_TooManyDice(t *testing.T) {
	_, err := evalQuery(t, "5001d6")
	var tooMany *ErrTooManyDice
	assert.ErrorAs(t, err, &tooMany)
}

func TestEvaluator_ZeroSidedDie(t *testing.T) {
	_, err := evalQuery(t, "1d0")
	assert.ErrorIs(t, err, ErrZeroSidedDie)
}

func TestEvaluator_SignedLiterals(t *testing.T) {
	single, err := evalQuery(t, "20 * -1.5")
	require.NoError(t, err)
	assert.Equal(t, float64(-30), single.Total)

	single, err = evalQuery(t, "20 + +5")
	require.NoError(t, err)
	assert.Equal(t, float64(25), single.Total)
}
