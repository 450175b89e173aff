package sapda

import (
	"context"
	"sort"
)

// Computation tracks one candidate SAPDA run: its current Structure, the
// ordered trace of Structures produced so far, and the cached active-leaf
// transition dictionary.
type Computation struct {
	automaton   *Automaton
	inputString string
	structure   Structure
	trace       []Structure
	dict        *transitionDict
	isLeaf      bool
}

// newComputation starts a Computation from the initial configuration
// (q0, input, [Z0]).
func newComputation(a *Automaton, input string) *Computation {
	root := NewLeaf(a.InitialState, input, []string{a.InitialStackSymbol}, nil, 0)
	c := &Computation{
		automaton:   a,
		inputString: input,
		structure:   root,
		trace:       []Structure{root},
		dict:        newTransitionDict(),
		isLeaf:      true,
	}
	c.dict.populate(a, root)
	return c
}

// clone returns an independent copy suitable for speculative exploration:
// the trace and dictionary are copied, but immutable Structures are
// shared by reference.
func (c *Computation) clone() *Computation {
	return &Computation{
		automaton:   c.automaton,
		inputString: c.inputString,
		structure:   c.structure,
		trace:       append([]Structure(nil), c.trace...),
		dict:        c.dict.clone(),
		isLeaf:      c.isLeaf,
	}
}

// update records next as the current configuration and appends it to the
// trace.
func (c *Computation) update(next Structure) {
	c.trace = append(c.trace, next)
	c.structure = next
	_, c.isLeaf = next.(*Leaf)
	c.dict.populate(c.automaton, next)
}

// synchroniseToFixpoint repeatedly synchronises the current structure,
// recording every intermediate rewrite.
func (c *Computation) synchroniseToFixpoint() {
	for {
		next, changed := synchroniseOnce(c.structure)
		if !changed {
			return
		}
		c.update(next)
	}
}

// isAccepting reports whether the current configuration is a single leaf
// with no remaining input and an empty stack.
func (c *Computation) isAccepting() bool {
	leaf, ok := c.structure.(*Leaf)
	return c.isLeaf && ok && leaf.RemainingInput == Epsilon && leaf.HasEmptyStack()
}

// isRejecting reports whether the current configuration satisfies any of
// the rejection predicates.
func (c *Computation) isRejecting() bool {
	if c.isAccepting() {
		return false
	}
	if len(ActiveBranches(c.structure, c.automaton)) == 0 {
		return true
	}
	if TreeDepth(c.structure) > len(c.inputString) {
		return true
	}
	if c.dict.hasEmptyEntry() {
		return true
	}
	for _, leaf := range AllLeaves(c.structure) {
		if !leaf.HasValidTransition(c.automaton) && !leaf.HasEmptyStack() {
			return true
		}
	}
	return false
}

// orderedActiveBranches returns the active leaves ordered by ascending
// len(remaining input) + len(stack) -- shortest work first. Remaining
// input is scored by its literal length, so a fully-consumed leaf (the
// one-character "e" sentinel) scores 1, the same as a leaf with exactly
// one real symbol left -- matching the reference's order_active_branches.
func (c *Computation) orderedActiveBranches() []*Leaf {
	active := ActiveBranches(c.structure, c.automaton)
	type scoredLeaf struct {
		leaf  *Leaf
		score int
	}
	scored := make([]scoredLeaf, 0, len(active))
	for _, leaf := range active {
		if _, ok := c.dict.get(leaf.key()); !ok {
			continue
		}
		scored = append(scored, scoredLeaf{leaf, len(leaf.RemainingInput) + len(leaf.stack)})
	}
	sort.SliceStable(scored, func(i, j int) bool { return scored[i].score < scored[j].score })
	out := make([]*Leaf, len(scored))
	for i, s := range scored {
		out[i] = s.leaf
	}
	return out
}

// hasDeterministicTransition reports whether any active leaf currently has
// exactly one enabled transition.
func (c *Computation) hasDeterministicTransition() bool {
	for _, leaf := range ActiveBranches(c.structure, c.automaton) {
		if avail, ok := c.dict.get(leaf.key()); ok && len(avail) == 1 {
			return true
		}
	}
	return false
}

// firstPushSymbol returns the top symbol a push string would leave on the
// stack, or Epsilon if the push string is empty.
func firstPushSymbol(push string) string {
	if push == Epsilon || push == "" {
		return Epsilon
	}
	return string(push[0])
}

// orderedTransitions returns leaf's candidate transitions ordered so that
// non-ε and single-conjunct options come first; ε-transitions whose
// conjuncts would push back the same (state, stack_top) are moved to the
// back of their own conjunct list, deprioritising self-loops.
func (c *Computation) orderedTransitions(leaf *Leaf) []availableTransition {
	avail, _ := c.dict.get(leaf.key())

	var ordered []availableTransition
	for _, t := range avail {
		if t.Letter != Epsilon || len(t.Conjuncts) == 1 {
			ordered = append(ordered, t)
		}
	}
	for _, t := range avail {
		if t.Letter != Epsilon || len(t.Conjuncts) == 1 {
			continue
		}
		var front, back Conjunction
		for _, conj := range t.Conjuncts {
			if conj.NextState != leaf.State || firstPushSymbol(conj.Push) != leaf.stack[0] {
				front = append(front, conj)
			}
		}
		for _, conj := range t.Conjuncts {
			if conj.NextState == leaf.State && firstPushSymbol(conj.Push) == leaf.stack[0] {
				back = append(back, conj)
			}
		}
		ordered = append(ordered, availableTransition{Letter: Epsilon, Conjuncts: append(front, back...)})
	}
	return ordered
}

// runDeterministicTransitions chases forced moves (synchronisation and
// single-option transitions) until a terminal verdict is reached or no
// forced move remains. A no-progress ε self-loop (a transition that
// leaves state, stack, and remaining input unchanged) can otherwise keep
// hasDeterministicTransition true forever, so ctx is checked every
// iteration, the same suspension point dfs and runBFS already honour.
func (c *Computation) runDeterministicTransitions(ctx context.Context) (accept, reject bool, err error) {
	c.synchroniseToFixpoint()
	for c.hasDeterministicTransition() {
		if err := cancelled(ctx); err != nil {
			return false, false, err
		}
		c.synchroniseToFixpoint()
		if c.isAccepting() {
			return true, false, nil
		}
		if c.isRejecting() {
			return false, true, nil
		}
		applied := false
		for _, leaf := range ActiveBranches(c.structure, c.automaton) {
			avail, ok := c.dict.get(leaf.key())
			if !ok || len(avail) != 1 {
				continue
			}
			t := avail[0]
			next, aerr := ApplyAt(c.structure, leaf, t.Letter, t.Conjuncts)
			if aerr != nil {
				return false, false, aerr
			}
			c.update(next)
			c.synchroniseToFixpoint()
			applied = true
			break
		}
		if !applied {
			break
		}
	}
	if c.isAccepting() {
		return true, false, nil
	}
	if c.isRejecting() {
		return false, true, nil
	}
	return false, false, nil
}
