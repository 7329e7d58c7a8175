package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitReason(t *testing.T) {
	expr, reason, has := splitReason("2d6 + 6 : fireball damage")
	assert.Equal(t, "2d6 + 6", expr)
	assert.Equal(t, "fireball damage", reason)
	assert.True(t, has)

	expr, reason, has = splitReason("2d6 + 6")
	assert.Equal(t, "2d6 + 6", expr)
	assert.Equal(t, "", reason)
	assert.False(t, has)
}

func TestParser_Parse_DiceTermBounds(t *testing.T) {
	cmd, err := NewParser().Parse("2d6kh1")
	require.NoError(t, err)
	require.NotNil(t, cmd.Expr.Left.Dice)

	dt := cmd.Expr.Left.Dice
	assert.Equal(t, uint64(2), *dt.Amount)
	assert.Equal(t, uint64(6), *dt.Sides)
	require.Len(t, dt.Modifiers, 1)
	require.NotNil(t, dt.Modifiers[0].KeepDrop)
	assert.True(t, dt.Modifiers[0].KeepDrop.KeepHigh)
}

func TestParser_Parse_RejectsGarbage(t *testing.T) {
	_, err := NewParser().Parse("2d")
	assert.Error(t, err)

	var grammarErr *GrammarError
	assert.ErrorAs(t, err, &grammarErr)
}
