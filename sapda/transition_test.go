package sapda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStackTransition_PopAndPush(t *testing.T) {
	next, err := stackTransition([]string{"A", "Z"}, "A", "BC")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "Z"}, next)
}

func TestStackTransition_PoppingLastSymbolLeavesSentinel(t *testing.T) {
	next, err := stackTransition([]string{"Z"}, "Z", Epsilon)
	require.NoError(t, err)
	assert.Equal(t, []string{Epsilon}, next)
}

func TestStackTransition_PushingOntoSentinelStripsTrailingEpsilon(t *testing.T) {
	next, err := stackTransition([]string{Epsilon}, Epsilon, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, next)
}

func TestStackTransition_MismatchedPopSymbolIsAnInvariantViolation(t *testing.T) {
	_, err := stackTransition([]string{"Z"}, "A", Epsilon)
	require.ErrorIs(t, err, ErrInvariantViolation)
}

func TestApplyLeafTransition_Ordinary(t *testing.T) {
	leaf := NewLeaf("q0", "ab", []string{"Z"}, nil, 0)
	next, err := ApplyLeafTransition(leaf, "a", Conjunction{{NextState: "q1", Push: "AZ"}})
	require.NoError(t, err)

	got, ok := next.(*Leaf)
	require.True(t, ok)
	assert.Equal(t, "q1", got.State)
	assert.Equal(t, "b", got.RemainingInput)
	assert.Equal(t, []string{"A", "Z"}, got.Stack())
}

func TestApplyLeafTransition_ConjunctiveSplitsIntoTree(t *testing.T) {
	leaf := NewLeaf("q0", Epsilon, []string{"A"}, nil, 0)
	next, err := ApplyLeafTransition(leaf, Epsilon, Conjunction{
		{NextState: "q1", Push: "AC"},
		{NextState: "q1", Push: "BB"},
	})
	require.NoError(t, err)

	tree, ok := next.(*Tree)
	require.True(t, ok)
	assert.Equal(t, []string{Epsilon}, tree.Stack())
	require.Len(t, tree.Children, 2)

	first := tree.Children[0].(*Leaf)
	assert.Equal(t, []string{"A", "C"}, first.Stack())
	assert.Equal(t, 1, first.Depth())

	second := tree.Children[1].(*Leaf)
	assert.Equal(t, []string{"B", "B"}, second.Stack())
}

func TestApplyAt_RewritesOnlyTheTargetedLeaf(t *testing.T) {
	left := NewLeaf("q0", "a", []string{"Z"}, []string{Epsilon}, 1)
	right := NewLeaf("q0", "b", []string{"Z"}, []string{Epsilon}, 1)
	tree := NewTree([]string{Epsilon}, []Structure{left, right})

	next, err := ApplyAt(tree, left, "a", Conjunction{{NextState: "q1", Push: "Z"}})
	require.NoError(t, err)

	rewritten := next.(*Tree)
	gotLeft := rewritten.Children[0].(*Leaf)
	gotRight := rewritten.Children[1].(*Leaf)
	assert.Equal(t, "q1", gotLeft.State)
	assert.Equal(t, "q0", gotRight.State, "the untargeted sibling must be left untouched")
}
