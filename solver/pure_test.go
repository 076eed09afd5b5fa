package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPureLiteralAssignsSinglePolarity(t *testing.T) {
	s := prepared(3, [][]int{{1, 2}, {1, 3}})

	require.True(t, s.pureLiteralPass())

	assert.True(t, s.assigns[1].True())
	assert.True(t, s.assigns[2].True())
	assert.True(t, s.assigns[3].True())
	assert.True(t, s.clauses[0].satisfied)
	assert.True(t, s.clauses[1].satisfied)
	assert.Equal(t, 3, s.NPureAssignments())
}

func TestPureLiteralNegativePolarity(t *testing.T) {
	s := prepared(2, [][]int{{-1, 2}})

	require.True(t, s.pureLiteralPass())

	assert.True(t, s.assigns[1].False())
	assert.True(t, s.assigns[2].True())
	assert.True(t, s.clauses[0].satisfied)
}

func TestPureLiteralSkipsMixedPolarity(t *testing.T) {
	s := prepared(3, [][]int{{1, 2}, {-1, 3}})

	require.True(t, s.pureLiteralPass())

	assert.True(t, s.assigns[1].Undef())
	assert.True(t, s.assigns[2].True())
	assert.True(t, s.assigns[3].True())
}

func TestPureLiteralIgnoresSatisfiedClauses(t *testing.T) {
	s := prepared(2, [][]int{{1, 2}, {-1}})

	// With the first clause already satisfied, variable 2 has no live
	// occurrence left and variable 1 is pure negative.
	s.clauses[0].satisfied = true
	s.pushClauseSatisfy(0)

	require.True(t, s.pureLiteralPass())

	assert.True(t, s.assigns[1].False())
	assert.True(t, s.assigns[2].Undef())
}

func TestPureLiteralIgnoresAssignedVariables(t *testing.T) {
	s := prepared(3, [][]int{{1}, {2, -3}, {2, 3}})

	require.True(t, s.propagate())
	require.True(t, s.pureLiteralPass())

	// Variable 1 was assigned by propagation; variable 2 is pure positive
	// and variable 3 occurs with both polarities.
	assert.True(t, s.assigns[1].True())
	assert.True(t, s.assigns[2].True())
	assert.True(t, s.assigns[3].Undef())
	assert.Equal(t, 1, s.NPureAssignments())
}

func TestPureLiteralEffectsRewind(t *testing.T) {
	s := prepared(3, [][]int{{1, 2}, {1, 3}})
	snap := takeSnapshot(s)

	require.True(t, s.pureLiteralPass())
	s.rewindTo(0)

	requireSnapshot(t, s, snap)
}
