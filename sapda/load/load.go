// Package load deserialises an Automaton from JSON, giving the CLI and
// future callers a file format for automata that doesn't require writing
// Go code against the builder.
package load

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/odrh20/sapda/sapda"
)

// ConjunctSpec is the wire shape of a single conjunct of a transition.
type ConjunctSpec struct {
	NextState string `json:"next_state"`
	Push      string `json:"push"`
}

// TransitionSpec is one row of the automaton's transition table. The
// table is modelled as a flat, ordered list rather than nested objects
// because encoding/json does not preserve object key order when
// unmarshalling into a map, and transition order is significant to the
// search driver.
type TransitionSpec struct {
	State     string         `json:"state"`
	StackTop  string         `json:"stack_top"`
	Letter    string         `json:"letter"`
	Conjuncts []ConjunctSpec `json:"conjuncts"`
}

// AutomatonSpec is the document an automaton definition file unmarshals
// into.
type AutomatonSpec struct {
	Name               string           `json:"name"`
	States             []string         `json:"states"`
	InputAlphabet      []string         `json:"input_alphabet"`
	StackAlphabet      []string         `json:"stack_alphabet"`
	InitialState       string           `json:"initial_state"`
	InitialStackSymbol string           `json:"initial_stack_symbol"`
	Transitions        []TransitionSpec `json:"transitions"`
}

// Automaton reads an AutomatonSpec document from r and builds the
// Automaton it describes.
func Automaton(r io.Reader) (*sapda.Automaton, error) {
	var spec AutomatonSpec
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&spec); err != nil {
		return nil, fmt.Errorf("sapda/load: decoding automaton: %w", err)
	}
	return FromSpec(spec)
}

// FromSpec builds an Automaton from an already-decoded AutomatonSpec.
func FromSpec(spec AutomatonSpec) (*sapda.Automaton, error) {
	b := sapda.NewAutomaton(spec.Name).
		State(spec.States...).
		InputSymbols(spec.InputAlphabet...).
		StackSymbols(spec.StackAlphabet...).
		Initial(spec.InitialState, spec.InitialStackSymbol)

	for _, t := range spec.Transitions {
		conjuncts := make([]sapda.Conjunct, len(t.Conjuncts))
		for i, c := range t.Conjuncts {
			conjuncts[i] = sapda.Conjunct{NextState: c.NextState, Push: c.Push}
		}
		b = b.Transition(t.State, t.StackTop, t.Letter, conjuncts...)
	}

	a, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("sapda/load: building automaton %q: %w", spec.Name, err)
	}
	return a, nil
}
