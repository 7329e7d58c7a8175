package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHistory_String_RollsAndOperators(t *testing.T) {
	h := History{
		rollEntry(DieResults{NewDieResult(6, 6), NewDieResult(4, 6), NewDieResult(2, 6)}),
		operatorEntry("+"),
		constantEntry(6),
	}
	assert.Equal(t, "[6, 4, 2] + 6", h.String())
}

func TestHistory_String_Parens(t *testing.T) {
	h := History{
		openParenEntry(),
		constantEntry(2),
		operatorEntry("+"),
		constantEntry(3),
		closeParenEntry(),
	}
	assert.Equal(t, "(2 + 3)", h.String())
}

func TestHistory_String_Fudge(t *testing.T) {
	h := History{fudgeEntry([]int{-1, 0, 1})}
	assert.Equal(t, "[-, □, +]", h.String())
}

func TestFormatFloat(t *testing.T) {
	assert.Equal(t, "6", formatFloat(6))
	assert.Equal(t, "1.5", formatFloat(1.5))
}
