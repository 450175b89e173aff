package sapda

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func deterministicAutomaton(t *testing.T) *Automaton {
	t.Helper()
	a, err := NewAutomaton("single forced path").
		State("q0", "q1").
		InputSymbols("a").
		StackSymbols("Z").
		Initial("q0", "Z").
		Transition("q0", "Z", "a", Conjunct{NextState: "q1", Push: "Z"}).
		Transition("q1", "Z", Epsilon, Conjunct{NextState: "q1", Push: Epsilon}).
		Build()
	require.NoError(t, err)
	return a
}

func TestComputation_RunDeterministicTransitionsDrivesForcedMovesToAcceptance(t *testing.T) {
	a := deterministicAutomaton(t)
	c := newComputation(a, "a")

	accept, reject, err := c.runDeterministicTransitions(context.Background())
	require.NoError(t, err)
	assert.True(t, accept)
	assert.False(t, reject)
}

func TestComputation_IsRejectingWhenNoActiveBranchesRemain(t *testing.T) {
	a, err := NewAutomaton("dead end").
		State("q0").
		InputSymbols("a").
		StackSymbols("Z").
		Initial("q0", "Z").
		Transition("q0", "Z", "a", Conjunct{NextState: "q0", Push: Epsilon}).
		Build()
	require.NoError(t, err)

	c := newComputation(a, "aa")
	accept, reject, err := c.runDeterministicTransitions(context.Background())
	require.NoError(t, err)
	assert.False(t, accept)
	assert.True(t, reject, "consuming the first 'a' leaves a non-empty remaining input with an empty stack and no transitions")
}

func TestComputation_RunDeterministicTransitionsHonoursContextOnANoProgressSelfLoop(t *testing.T) {
	a, err := NewAutomaton("no-progress self loop").
		State("q0").
		InputSymbols("a").
		StackSymbols("Z").
		Initial("q0", "Z").
		Transition("q0", "Z", Epsilon, Conjunct{NextState: "q0", Push: "Z"}).
		Build()
	require.NoError(t, err)

	c := newComputation(a, Epsilon)
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	_, _, err = c.runDeterministicTransitions(ctx)
	require.Error(t, err, "a transition that leaves state, stack, and input unchanged must not spin forever")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOrderedTransitions_PrefersNonEpsilonAndSingleConjunctFirst(t *testing.T) {
	a, err := NewAutomaton("ordering").
		State("q0").
		InputSymbols("a").
		StackSymbols("Z").
		Initial("q0", "Z").
		Transition("q0", "Z", Epsilon,
			Conjunct{NextState: "q0", Push: "Z"},
			Conjunct{NextState: "q0", Push: "Z"}).
		Transition("q0", "Z", "a", Conjunct{NextState: "q0", Push: "Z"}).
		Build()
	require.NoError(t, err)

	c := newComputation(a, "a")
	leaf := c.structure.(*Leaf)
	ordered := c.orderedTransitions(leaf)
	require.Len(t, ordered, 2)
	assert.Equal(t, "a", ordered[0].Letter, "the single-conjunct letter-consuming transition should be tried first")
	assert.Equal(t, Epsilon, ordered[1].Letter)
}
