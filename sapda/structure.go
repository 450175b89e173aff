package sapda

import "strings"

// Structure is the tagged Leaf|Tree configuration structure. A Structure
// is either a *Leaf (a single branch's state, remaining input, and stack)
// or a *Tree (a branching point: an internal stack plus two or more child
// Structures). There is no third variant; callers distinguish the two
// with a type switch.
type Structure interface {
	// Stack returns the node's own stack: the full stack for a Leaf, or
	// the internal stack (the portion below the branching symbol) for a
	// Tree.
	Stack() []string
	// Depth returns, for a Leaf, its depth as recorded at creation (its
	// distance from the original root); for a Tree, the number of
	// branching levels from this node down to its deepest leaf.
	Depth() int
}

// HasEmptyStack reports whether s's stack is the emptied sentinel ['e'].
func HasEmptyStack(s Structure) bool {
	stack := s.Stack()
	return len(stack) == 1 && stack[0] == Epsilon
}

// AllLeaves returns every Leaf reachable from s, left to right.
func AllLeaves(s Structure) []*Leaf {
	switch v := s.(type) {
	case *Leaf:
		return v.AllLeaves()
	case *Tree:
		return v.AllLeaves()
	default:
		return nil
	}
}

// ActiveBranches returns the leaves of s that currently have at least one
// enabled transition under a.
func ActiveBranches(s Structure, a *Automaton) []*Leaf {
	var active []*Leaf
	for _, leaf := range AllLeaves(s) {
		if leaf.HasValidTransition(a) {
			active = append(active, leaf)
		}
	}
	return active
}

// TreeDepth returns the depth of s: 0 for a Leaf, one more than the
// deepest child otherwise.
func TreeDepth(s Structure) int {
	if _, ok := s.(*Leaf); ok {
		return 0
	}
	return s.Depth()
}

// Equal reports whether two Structures denote the same configuration.
func Equal(a, b Structure) bool {
	switch av := a.(type) {
	case *Leaf:
		bv, ok := b.(*Leaf)
		return ok && av.Equal(bv)
	case *Tree:
		bv, ok := b.(*Tree)
		if !ok || len(av.Children) != len(bv.Children) || !equalStrings(av.stack, bv.stack) {
			return false
		}
		for i := range av.Children {
			if !Equal(av.Children[i], bv.Children[i]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

func stackString(stack []string) string {
	return strings.Join(stack, "")
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Leaf is a SAPDA leaf: a triple of (state, remaining input, stack),
// together with the bookkeeping needed to disambiguate it from identical
// siblings elsewhere in the tree.
type Leaf struct {
	State          string
	RemainingInput string // Epsilon once consumed, else a non-empty string over Σ
	stack          []string
	// InternalStack is the parent Tree's stack suffix at the moment this
	// leaf was created; it plays no role in transition eligibility, only
	// in identity.
	InternalStack []string
	depth         int
}

// NewLeaf constructs a Leaf. stack and internalStack are copied so the
// caller's slices may be reused or mutated afterward.
func NewLeaf(state, remainingInput string, stack, internalStack []string, depth int) *Leaf {
	return &Leaf{
		State:          state,
		RemainingInput: remainingInput,
		stack:          append([]string(nil), stack...),
		InternalStack:  append([]string(nil), internalStack...),
		depth:          depth,
	}
}

// Stack returns the leaf's own stack.
func (l *Leaf) Stack() []string { return l.stack }

// Depth returns the leaf's depth, as recorded at creation.
func (l *Leaf) Depth() int { return l.depth }

// HasEmptyStack reports whether the leaf's stack is the emptied sentinel.
func (l *Leaf) HasEmptyStack() bool {
	return len(l.stack) == 1 && l.stack[0] == Epsilon
}

// StackString renders the leaf's stack as a plain concatenated string.
func (l *Leaf) StackString() string { return stackString(l.stack) }

// Denotation returns the leaf's defining triple.
func (l *Leaf) Denotation() (state, remainingInput string, stack []string) {
	return l.State, l.RemainingInput, append([]string(nil), l.stack...)
}

// Equal reports full structural equality, including the disambiguating
// InternalStack and depth fields.
func (l *Leaf) Equal(other *Leaf) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.State == other.State &&
		l.RemainingInput == other.RemainingInput &&
		equalStrings(l.stack, other.stack) &&
		equalStrings(l.InternalStack, other.InternalStack) &&
		l.depth == other.depth
}

// leafKey is the full local identity of a leaf, used to key the
// active-leaf transition dictionary. depth and InternalStack do not
// influence whether a transition is enabled, but they disambiguate
// otherwise-identical leaves occupying different positions of a tree.
type leafKey struct {
	state          string
	remainingInput string
	stack          string
	internalStack  string
	depth          int
}

func (l *Leaf) key() leafKey {
	return leafKey{
		state:          l.State,
		remainingInput: l.RemainingInput,
		stack:          strings.Join(l.stack, "\x00"),
		internalStack:  strings.Join(l.InternalStack, "\x00"),
		depth:          l.depth,
	}
}

// firstInputSymbol returns the next letter to be read, or Epsilon if the
// input has been fully consumed.
func (l *Leaf) firstInputSymbol() string {
	if l.RemainingInput == Epsilon || l.RemainingInput == "" {
		return Epsilon
	}
	return string(l.RemainingInput[0])
}

// HasValidTransition reports whether the leaf has at least one enabled
// transition: its state and stack top must have a δ entry, and that
// entry must list either the next input letter or an ε-move.
func (l *Leaf) HasValidTransition(a *Automaton) bool {
	if l.HasEmptyStack() {
		return false
	}
	top := l.stack[0]
	letter := l.firstInputSymbol()
	if _, ok := a.Transitions(l.State, top, letter); ok {
		return true
	}
	if letter != Epsilon {
		if _, ok := a.Transitions(l.State, top, Epsilon); ok {
			return true
		}
	}
	return false
}

// ActiveBranches returns [l] if l has an enabled transition, else nil.
func (l *Leaf) ActiveBranches(a *Automaton) []*Leaf {
	if l.HasValidTransition(a) {
		return []*Leaf{l}
	}
	return nil
}

// AllLeaves returns the single-element slice [l].
func (l *Leaf) AllLeaves() []*Leaf { return []*Leaf{l} }

// Tree is a SAPDA configuration tree: an internal stack (the symbols
// below the branching point) plus two or more ordered children, each
// itself a Structure.
type Tree struct {
	stack    []string
	Children []Structure
}

// NewTree constructs a Tree. Per the structure invariants, children must
// number at least two.
func NewTree(stack []string, children []Structure) *Tree {
	return &Tree{stack: append([]string(nil), stack...), Children: children}
}

// Stack returns the tree's internal stack.
func (t *Tree) Stack() []string { return t.stack }

// Depth returns one more than the deepest child Tree's depth; Leaf
// children count as 0.
func (t *Tree) Depth() int {
	max := 0
	for _, c := range t.Children {
		if sub, ok := c.(*Tree); ok {
			if d := sub.Depth(); d > max {
				max = d
			}
		}
	}
	return 1 + max
}

// StackString renders the tree's internal stack as a plain string.
func (t *Tree) StackString() string { return stackString(t.stack) }

// AllLeaves returns every Leaf reachable from the tree, left to right.
func (t *Tree) AllLeaves() []*Leaf {
	var leaves []*Leaf
	for _, c := range t.Children {
		switch v := c.(type) {
		case *Leaf:
			leaves = append(leaves, v)
		case *Tree:
			leaves = append(leaves, v.AllLeaves()...)
		}
	}
	return leaves
}

// ActiveBranches returns every leaf under the tree that has an enabled
// transition.
func (t *Tree) ActiveBranches(a *Automaton) []*Leaf {
	var active []*Leaf
	for _, leaf := range t.AllLeaves() {
		if leaf.HasValidTransition(a) {
			active = append(active, leaf)
		}
	}
	return active
}
