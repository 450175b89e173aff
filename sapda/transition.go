package sapda

import "fmt"

// ApplyLeafTransition applies a chosen transition to leaf. A single
// conjunct performs an ordinary pop/push and state change; two or more
// conjuncts split leaf into a Tree, one child per conjunct.
func ApplyLeafTransition(leaf *Leaf, letter string, conjuncts Conjunction) (Structure, error) {
	if len(conjuncts) == 0 {
		return nil, fmt.Errorf("%w: transition has no conjuncts", ErrInvariantViolation)
	}
	if len(conjuncts) > 1 {
		return splitLeaf(leaf, letter, conjuncts)
	}
	next, err := applyOrdinaryTransition(leaf, letter, conjuncts[0])
	if err != nil {
		return nil, err
	}
	return next, nil
}

// applyOrdinaryTransition consumes letter (if not Epsilon), moves to the
// conjunct's next state, and rewrites the stack by popping its top symbol
// and pushing the conjunct's push string.
func applyOrdinaryTransition(leaf *Leaf, letter string, conjunct Conjunct) (*Leaf, error) {
	if leaf.HasEmptyStack() {
		return nil, fmt.Errorf("%w: leaf with empty stack has no transition to apply", ErrInvariantViolation)
	}
	popSymbol := leaf.stack[0]
	nextStack, err := stackTransition(leaf.stack, popSymbol, conjunct.Push)
	if err != nil {
		return nil, err
	}
	return &Leaf{
		State:          conjunct.NextState,
		RemainingInput: consume(leaf.RemainingInput, letter),
		stack:          nextStack,
		InternalStack:  append([]string(nil), leaf.InternalStack...),
		depth:          leaf.depth,
	}, nil
}

// consume returns the remaining input after reading letter: unchanged if
// letter is Epsilon, Epsilon if that was the last symbol, else the tail.
func consume(remainingInput, letter string) string {
	if letter == Epsilon {
		return remainingInput
	}
	if len(remainingInput) <= 1 {
		return Epsilon
	}
	return remainingInput[1:]
}

// stackTransition pops popSymbol from the head of stack and pushes
// pushString on top, leftmost symbol ending up on top. A trailing Epsilon
// left over from pushing onto an emptied stack is stripped.
func stackTransition(stack []string, popSymbol, pushString string) ([]string, error) {
	if len(stack) == 0 {
		return nil, fmt.Errorf("%w: stack is empty", ErrInvariantViolation)
	}
	if stack[0] != popSymbol {
		return nil, fmt.Errorf("%w: stack top %q does not match pop symbol %q", ErrInvariantViolation, stack[0], popSymbol)
	}
	var next []string
	if len(stack) == 1 {
		next = []string{Epsilon}
	} else {
		next = append([]string(nil), stack[1:]...)
	}
	if pushString != Epsilon {
		for i := len(pushString) - 1; i >= 0; i-- {
			next = append([]string{string(pushString[i])}, next...)
		}
	}
	if len(next) > 1 && next[len(next)-1] == Epsilon {
		next = next[:len(next)-1]
	}
	return next, nil
}

// splitLeaf turns leaf into a Tree for a conjunctive transition. The
// tree's stack is the internal stack below leaf's top symbol; each
// conjunct becomes a child Leaf pushing its own push string as a fresh
// stack.
func splitLeaf(leaf *Leaf, letter string, conjuncts Conjunction) (Structure, error) {
	if leaf.HasEmptyStack() {
		return nil, fmt.Errorf("%w: cannot split a leaf with an empty stack", ErrInvariantViolation)
	}
	if letter != Epsilon && (leaf.RemainingInput == Epsilon || string(leaf.RemainingInput[0]) != letter) {
		return nil, fmt.Errorf("%w: transition letter %q does not match remaining input %q", ErrInvariantViolation, letter, leaf.RemainingInput)
	}

	var internalStack []string
	if len(leaf.stack) == 1 {
		internalStack = []string{Epsilon}
	} else {
		internalStack = append([]string(nil), leaf.stack[1:]...)
	}

	childInput := consume(leaf.RemainingInput, letter)

	children := make([]Structure, 0, len(conjuncts))
	for _, c := range conjuncts {
		children = append(children, NewLeaf(c.NextState, childInput, stackFromPush(c.Push), internalStack, leaf.depth+1))
	}
	return &Tree{stack: internalStack, Children: children}, nil
}

// stackFromPush turns a push string into a fresh stack, top symbol first.
func stackFromPush(push string) []string {
	if push == Epsilon || push == "" {
		return []string{Epsilon}
	}
	out := make([]string, len(push))
	for i := range push {
		out[i] = string(push[i])
	}
	return out
}

// ApplyAt finds the leaf within s matching target's identity and applies
// the given transition to it, returning the rewritten root Structure. If
// s is itself a Leaf, it is necessarily the active branch being updated.
func ApplyAt(s Structure, target *Leaf, letter string, conjuncts Conjunction) (Structure, error) {
	switch v := s.(type) {
	case *Leaf:
		return ApplyLeafTransition(v, letter, conjuncts)
	case *Tree:
		newChildren := make([]Structure, len(v.Children))
		targetKey := target.key()
		for i, child := range v.Children {
			if leaf, ok := child.(*Leaf); ok {
				if leaf.key() == targetKey {
					rewritten, err := ApplyLeafTransition(leaf, letter, conjuncts)
					if err != nil {
						return nil, err
					}
					newChildren[i] = rewritten
					continue
				}
				newChildren[i] = leaf
				continue
			}
			rewritten, err := ApplyAt(child, target, letter, conjuncts)
			if err != nil {
				return nil, err
			}
			newChildren[i] = rewritten
		}
		return &Tree{stack: v.stack, Children: newChildren}, nil
	default:
		return nil, fmt.Errorf("%w: unknown structure type %T", ErrInvariantViolation, s)
	}
}

// conjunctsEqual reports whether a and b hold the same conjuncts in any
// order, so that backtracking recognises a tried candidate whose conjuncts
// orderedTransitions reordered.
func conjunctsEqual(a, b Conjunction) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[Conjunct]int, len(a))
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		if count[c]--; count[c] < 0 {
			return false
		}
	}
	return true
}
