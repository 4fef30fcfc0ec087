package nullmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateFrom_NonGraphicalFailsWithoutAttempts(t *testing.T) {
	t.Parallel()
	// {3,1} cannot come from a simple graph; a Source built by hand is the only
	// way to reach this branch.
	src := &Source{
		ids:       []string{"a", "b"},
		degrees:   []int{3, 1},
		seq:       []int{3, 1},
		graphical: false,
	}
	res, err := NewGenerator().GenerateFrom(src, 3, 7)
	require.ErrorIs(t, err, ErrDegreeSequenceUnrealizable)
	require.NotNil(t, res.Failure)
	assert.Equal(t, FailureUnrealizable, res.Failure.Kind)
	assert.Zero(t, res.Failure.Attempts)
	assert.Equal(t, 3, res.Failure.Index)
	assert.Contains(t, res.Failure.Detail, "Erdős–Gallai")
}
