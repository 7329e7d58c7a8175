package diceroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClimber_TwoPrecedenceBands(t *testing.T) {
	cases := []struct {
		query string
		want  float64
	}{
		{"2 + 3 * 4", 14},
		{"2 * 3 + 4", 10},
		{"10 - 4 - 2", 4},
		{"20 / 4 / 2", 2.5},
		{"2 + 3 - 1", 4},
		{"2 * 3 * 2", 12},
	}

	for _, tc := range cases {
		single, err := evalQuery(t, tc.query)
		require.NoError(t, err, tc.query)
		assert.Equal(t, tc.want, single.Total, tc.query)
	}
}
