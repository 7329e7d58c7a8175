package diceroll

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDieResult_Critic(t *testing.T) {
	assert.Equal(t, CriticMax, NewDieResult(6, 6).Critic)
	assert.Equal(t, CriticMin, NewDieResult(1, 6).Critic)
	assert.Equal(t, CriticNot, NewDieResult(3, 6).Critic)
}

func TestDieResults_Sort(t *testing.T) {
	results := DieResults{NewDieResult(4, 6), NewDieResult(1, 6), NewDieResult(6, 6)}
	sort.Sort(results)
	assert.Equal(t, []uint64{1, 4, 6}, results.Values())
}
