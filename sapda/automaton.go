// Package sapda implements the execution engine of a Synchronised
// Alternating Pushdown Automaton: the configuration tree, its transition
// algebra, and the backtracking search that explores nondeterministic and
// conjunctive choices until the tree synchronises into a single accepting
// leaf.
package sapda

import (
	"errors"
	"fmt"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Epsilon is the empty word "e", used both as a no-read input marker and
// as the empty push/empty stack marker. It is reserved and may not appear
// in either the input or stack alphabet.
const Epsilon = "e"

// Conjunct is one (next_state, push_string) pair of a transition. A
// transition with a single conjunct is ordinary; two or more conjuncts
// make it conjunctive, splitting the leaf it applies to into a Tree.
type Conjunct struct {
	NextState string
	Push      string
}

// Conjunction is one alternative right-hand side of a transition: the set
// of conjuncts that must all fire together.
type Conjunction []Conjunct

type letterTable = *orderedmap.OrderedMap[string, []Conjunction]
type symbolTable = *orderedmap.OrderedMap[string, letterTable]
type stateTable = *orderedmap.OrderedMap[string, symbolTable]

// Automaton is an immutable SAPDA description (Q, Σ, Γ, δ, q0, Z0).
// Build one with NewAutomaton.
type Automaton struct {
	Name               string
	States             map[string]struct{}
	InputAlphabet      map[string]struct{}
	StackAlphabet      map[string]struct{}
	InitialState       string
	InitialStackSymbol string

	transitions stateTable
}

// HasState reports whether state is one of the automaton's declared states.
func (a *Automaton) HasState(state string) bool {
	_, ok := a.States[state]
	return ok
}

// Transitions looks up δ(state, stackTop, letter). The second return value
// is false when no key exists at any level — absence of a key at any
// level means "no transition".
func (a *Automaton) Transitions(state, stackTop, letter string) ([]Conjunction, bool) {
	symbols, ok := a.transitions.Get(state)
	if !ok {
		return nil, false
	}
	letters, ok := symbols.Get(stackTop)
	if !ok {
		return nil, false
	}
	conjunctions, ok := letters.Get(letter)
	return conjunctions, ok
}

// AcceptsInput reports whether input is the empty-word sentinel or
// consists entirely of symbols drawn from the input alphabet.
func (a *Automaton) AcceptsInput(input string) bool {
	if input == Epsilon {
		return true
	}
	for _, r := range input {
		if _, ok := a.InputAlphabet[string(r)]; !ok {
			return false
		}
	}
	return true
}

// AutomatonBuilder provides a fluent API for constructing an Automaton.
// Errors encountered while building are deferred and surfaced from Build.
type AutomatonBuilder struct {
	a    *Automaton
	err  error
	used bool
}

// NewAutomaton starts building a new Automaton with the given display name.
func NewAutomaton(name string) *AutomatonBuilder {
	return &AutomatonBuilder{
		a: &Automaton{
			Name:          name,
			States:        map[string]struct{}{},
			InputAlphabet: map[string]struct{}{},
			StackAlphabet: map[string]struct{}{},
			transitions:   orderedmap.New[string, symbolTable](),
		},
	}
}

// State declares one or more states as members of Q.
func (b *AutomatonBuilder) State(states ...string) *AutomatonBuilder {
	for _, s := range states {
		b.a.States[s] = struct{}{}
	}
	return b
}

// InputSymbols declares one or more symbols as members of Σ.
func (b *AutomatonBuilder) InputSymbols(symbols ...string) *AutomatonBuilder {
	for _, s := range symbols {
		b.a.InputAlphabet[s] = struct{}{}
	}
	return b
}

// StackSymbols declares one or more symbols as members of Γ.
func (b *AutomatonBuilder) StackSymbols(symbols ...string) *AutomatonBuilder {
	for _, s := range symbols {
		b.a.StackAlphabet[s] = struct{}{}
	}
	return b
}

// Initial sets q0 and Z0.
func (b *AutomatonBuilder) Initial(state, stackSymbol string) *AutomatonBuilder {
	b.a.InitialState = state
	b.a.InitialStackSymbol = stackSymbol
	return b
}

// Transition adds one alternative transition (a single conjunction of one
// or more conjuncts) to δ(state, stackTop, letter). Calling Transition
// again with the same (state, stackTop, letter) adds another alternative
// rather than replacing the first.
func (b *AutomatonBuilder) Transition(state, stackTop, letter string, conjuncts ...Conjunct) *AutomatonBuilder {
	if b.err != nil {
		return b
	}
	if len(conjuncts) == 0 {
		b.err = fmt.Errorf("sapda: transition %s/%s/%s: at least one conjunct is required", state, stackTop, letter)
		return b
	}
	symbols, ok := b.a.transitions.Get(state)
	if !ok {
		symbols = orderedmap.New[string, letterTable]()
		b.a.transitions.Set(state, symbols)
	}
	letters, ok := symbols.Get(stackTop)
	if !ok {
		letters = orderedmap.New[string, []Conjunction]()
		symbols.Set(stackTop, letters)
	}
	existing, _ := letters.Get(letter)
	letters.Set(letter, append(existing, Conjunction(conjuncts)))
	return b
}

// Build validates and returns the constructed Automaton. Calling Build
// more than once on the same builder is a programmer error, not a data
// error, and panics rather than returning it.
func (b *AutomatonBuilder) Build() (*Automaton, error) {
	if b.used {
		panic(fmt.Sprintf("sapda: automaton %q builder: invalid attempt to use the same builder twice", b.a.Name))
	}
	b.used = true
	if b.err != nil {
		return nil, b.err
	}
	a := b.a
	if a.InitialState == "" {
		return nil, errors.New("sapda: initial state not set")
	}
	if !a.HasState(a.InitialState) {
		return nil, fmt.Errorf("sapda: initial state %q is not a declared state", a.InitialState)
	}
	if a.InitialStackSymbol == "" {
		return nil, errors.New("sapda: initial stack symbol not set")
	}
	if _, ok := a.StackAlphabet[a.InitialStackSymbol]; !ok {
		return nil, fmt.Errorf("sapda: initial stack symbol %q is not in the stack alphabet", a.InitialStackSymbol)
	}
	if _, bad := a.InputAlphabet[Epsilon]; bad {
		return nil, errors.New(`sapda: input alphabet may not contain the reserved empty-word symbol "e"`)
	}
	if _, bad := a.StackAlphabet[Epsilon]; bad {
		return nil, errors.New(`sapda: stack alphabet may not contain the reserved empty-stack symbol "e"`)
	}
	return a, nil
}
