package sapda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSynchroniseOnce_CollapsesAgreeingEmptyStackLeaves(t *testing.T) {
	tree := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q1", "b", []string{Epsilon}, []string{"Z"}, 1),
		NewLeaf("q1", "b", []string{Epsilon}, []string{"Z"}, 1),
	})

	next, changed := synchroniseOnce(tree)
	assert.True(t, changed)

	leaf, ok := next.(*Leaf)
	assert.True(t, ok)
	assert.Equal(t, "q1", leaf.State)
	assert.Equal(t, "b", leaf.RemainingInput)
	assert.Equal(t, []string{"Z"}, leaf.Stack())
}

func TestSynchroniseOnce_DisagreeingLeavesAreLeftAlone(t *testing.T) {
	tree := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q1", "b", []string{Epsilon}, []string{"Z"}, 1),
		NewLeaf("q2", "b", []string{Epsilon}, []string{"Z"}, 1),
	})

	_, changed := synchroniseOnce(tree)
	assert.False(t, changed)
}

func TestSynchroniseOnce_NonEmptyStackLeavesAreLeftAlone(t *testing.T) {
	tree := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q1", "b", []string{"A"}, []string{"Z"}, 1),
		NewLeaf("q1", "b", []string{Epsilon}, []string{"Z"}, 1),
	})

	_, changed := synchroniseOnce(tree)
	assert.False(t, changed)
}

func TestSynchroniseToFixpoint_RecursesIntoNestedTrees(t *testing.T) {
	inner := NewTree([]string{"A"}, []Structure{
		NewLeaf("q1", "c", []string{Epsilon}, []string{"A"}, 2),
		NewLeaf("q1", "c", []string{Epsilon}, []string{"A"}, 2),
	})
	outer := NewTree([]string{"Z"}, []Structure{
		inner,
		NewLeaf("q0", "c", []string{"A"}, []string{"Z"}, 1),
	})

	next := SynchroniseToFixpoint(outer)
	outerTree, ok := next.(*Tree)
	assert.True(t, ok)
	innerLeaf, ok := outerTree.Children[0].(*Leaf)
	assert.True(t, ok, "the inner tree should have collapsed into a leaf")
	assert.Equal(t, "q1", innerLeaf.State)
}
