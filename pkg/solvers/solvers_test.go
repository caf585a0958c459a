package solvers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_DayOrder(t *testing.T) {
	all := All()
	require.NotEmpty(t, all)

	for i, p := range all {
		assert.Equal(t, i+1, p.Day)
		assert.NotNil(t, p.Solver, "day %d has no solver", p.Day)
		assert.NotEmpty(t, p.Input, "day %d has no embedded input", p.Day)
	}
}

func TestAll_EmbeddedInputsSolve(t *testing.T) {
	for _, p := range All() {
		_, err := p.Solver.Part1(p.Input)
		assert.NoError(t, err, "day %d part 1", p.Day)
		_, err = p.Solver.Part2(p.Input)
		assert.NoError(t, err, "day %d part 2", p.Day)
	}
}

func TestLookup(t *testing.T) {
	p, ok := Lookup(3)
	require.True(t, ok)
	assert.Equal(t, 3, p.Day)

	_, ok = Lookup(26)
	assert.False(t, ok)
}
