package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/ibex/dfs"
)

// TestIsRotation_SameCycleDifferentStart verifies that two cyclic sequences
// covering the same loop, but recorded starting from a different vertex,
// are recognized as the same rotation — the case HazardousCycles hits when
// DFS discovers a loop by a different entry point across two runs.
func TestIsRotation_SameCycleDifferentStart(t *testing.T) {
	a := []string{"x", "y", "z"}
	b := []string{"y", "z", "x"}
	assert.True(t, dfs.IsRotation(a, b))
	assert.True(t, dfs.IsRotation(b, a))
}

// TestIsRotation_ReversedIsNotRotation ensures a reversed traversal of the
// same loop is NOT treated as a rotation: direction matters for a directed
// cycle, only cyclic shift is permitted.
func TestIsRotation_ReversedIsNotRotation(t *testing.T) {
	a := []string{"x", "y", "z"}
	b := []string{"z", "y", "x"}
	assert.False(t, dfs.IsRotation(a, b))
}

// TestIsRotation_DifferentLengths verifies slices of unequal length are
// never rotations of one another.
func TestIsRotation_DifferentLengths(t *testing.T) {
	assert.False(t, dfs.IsRotation([]string{"x", "y"}, []string{"x", "y", "z"}))
}

// TestIsRotation_UnrelatedCycles verifies two cycles sharing no rotation
// are correctly rejected.
func TestIsRotation_UnrelatedCycles(t *testing.T) {
	a := []string{"x", "y", "z"}
	b := []string{"x", "z", "y"}
	assert.False(t, dfs.IsRotation(a, b))
}

// TestIsRotation_EmptyBothTrue verifies two empty cycles are trivially
// rotations of each other.
func TestIsRotation_EmptyBothTrue(t *testing.T) {
	assert.True(t, dfs.IsRotation(nil, nil))
}

// TestIsRotation_SingleVertexSelfLoop verifies a length-1 cycle is only a
// rotation of an identical single vertex.
func TestIsRotation_SingleVertexSelfLoop(t *testing.T) {
	assert.True(t, dfs.IsRotation([]string{"x"}, []string{"x"}))
	assert.False(t, dfs.IsRotation([]string{"x"}, []string{"y"}))
}
