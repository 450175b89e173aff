package sapda

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaf_HasEmptyStack(t *testing.T) {
	assert.True(t, NewLeaf("q0", "a", []string{Epsilon}, nil, 0).HasEmptyStack())
	assert.False(t, NewLeaf("q0", "a", []string{"Z"}, nil, 0).HasEmptyStack())
}

func TestEqual_LeavesCompareByFullIdentity(t *testing.T) {
	a := NewLeaf("q0", "ab", []string{"Z"}, nil, 0)
	b := NewLeaf("q0", "ab", []string{"Z"}, nil, 0)
	c := NewLeaf("q0", "ab", []string{"A"}, nil, 0)

	assert.True(t, Equal(a, b))
	assert.False(t, Equal(a, c))
}

func TestEqual_TreesCompareChildrenInOrder(t *testing.T) {
	left := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q0", "a", []string{"A"}, nil, 1),
		NewLeaf("q0", "b", []string{"A"}, nil, 1),
	})
	right := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q0", "a", []string{"A"}, nil, 1),
		NewLeaf("q0", "b", []string{"A"}, nil, 1),
	})
	swapped := NewTree([]string{"Z"}, []Structure{
		NewLeaf("q0", "b", []string{"A"}, nil, 1),
		NewLeaf("q0", "a", []string{"A"}, nil, 1),
	})

	assert.True(t, Equal(left, right))
	assert.False(t, Equal(left, swapped))
}

func TestTreeDepth_IsOneMoreThanDeepestChild(t *testing.T) {
	inner := NewTree([]string{"A"}, []Structure{
		NewLeaf("q0", "a", []string{"B"}, nil, 2),
		NewLeaf("q0", "a", []string{"B"}, nil, 2),
	})
	outer := NewTree([]string{"Z"}, []Structure{
		inner,
		NewLeaf("q0", "a", []string{"B"}, nil, 1),
	})

	assert.Equal(t, 0, TreeDepth(NewLeaf("q0", "a", []string{"Z"}, nil, 0)))
	assert.Equal(t, 1, TreeDepth(inner))
	assert.Equal(t, 2, TreeDepth(outer))
}

func TestHasValidTransition_FalseOnEmptyStack(t *testing.T) {
	a, err := NewAutomaton("single").
		State("q0").
		InputSymbols("a").
		StackSymbols("Z").
		Initial("q0", "Z").
		Transition("q0", "Z", "a", Conjunct{NextState: "q0", Push: Epsilon}).
		Build()
	require.NoError(t, err)

	emptied := NewLeaf("q0", "a", []string{Epsilon}, nil, 0)
	assert.False(t, emptied.HasValidTransition(a))

	active := NewLeaf("q0", "a", []string{"Z"}, nil, 0)
	assert.True(t, active.HasValidTransition(a))
}

func TestAllLeaves_FlattensNestedTrees(t *testing.T) {
	inner := NewTree([]string{"A"}, []Structure{
		NewLeaf("q0", "a", []string{"B"}, nil, 2),
		NewLeaf("q0", "b", []string{"B"}, nil, 2),
	})
	outer := NewTree([]string{"Z"}, []Structure{
		inner,
		NewLeaf("q0", "c", []string{"B"}, nil, 1),
	})

	leaves := AllLeaves(outer)
	require.Len(t, leaves, 3)
	assert.Equal(t, "a", leaves[0].RemainingInput)
	assert.Equal(t, "b", leaves[1].RemainingInput)
	assert.Equal(t, "c", leaves[2].RemainingInput)
}
