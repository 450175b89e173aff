// Package fixtures builds the reference SAPDAs used throughout the sapda
// package's tests and documented as the engine's worked examples.
package fixtures

import "github.com/odrh20/sapda/sapda"

// AnBnCn builds the SAPDA accepting { a^n b^n c^n | n > 0 } by running two
// conjunctive branches in lock-step: one matching b's against c's, the
// other matching a's against c's.
func AnBnCn() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("blocks of a's, b's and c's of equal length: { a^n b^n c^n | n > 0 }").
		State("q0", "qbc+", "qbc-", "qac+", "qac-", "qb").
		InputSymbols("a", "b", "c").
		StackSymbols("Z", "A").
		Initial("q0", "Z").
		Transition("q0", "Z", e,
			sapda.Conjunct{NextState: "qbc+", Push: "Z"},
			sapda.Conjunct{NextState: "qac+", Push: "Z"}).
		Transition("qbc+", "Z", "a", sapda.Conjunct{NextState: "qbc+", Push: "Z"}).
		Transition("qbc+", "Z", "b", sapda.Conjunct{NextState: "qbc+", Push: "AZ"}).
		Transition("qbc+", "A", "b", sapda.Conjunct{NextState: "qbc+", Push: "AA"}).
		Transition("qbc+", "A", "c", sapda.Conjunct{NextState: "qbc-", Push: e}).
		Transition("qbc-", "A", "c", sapda.Conjunct{NextState: "qbc-", Push: e}).
		Transition("qbc-", "Z", e, sapda.Conjunct{NextState: "q0", Push: e}).
		Transition("qac+", "Z", "a", sapda.Conjunct{NextState: "qac+", Push: "AZ"}).
		Transition("qac+", "A", "a", sapda.Conjunct{NextState: "qac+", Push: "AA"}).
		Transition("qac+", "A", "b", sapda.Conjunct{NextState: "qb", Push: "A"}).
		Transition("qb", "A", "b", sapda.Conjunct{NextState: "qb", Push: "A"}).
		Transition("qb", "A", "c", sapda.Conjunct{NextState: "qac-", Push: e}).
		Transition("qac-", "A", "c", sapda.Conjunct{NextState: "qac-", Push: e}).
		Transition("qac-", "Z", e, sapda.Conjunct{NextState: "q0", Push: e}).
		Build()
}

// EqualCounts builds the SAPDA accepting { w in {a,b,c}* : |w|_a = |w|_b = |w|_c }.
func EqualCounts() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("equal number of a's, b's and c's").
		State("q0", "q1", "q2").
		InputSymbols("a", "b", "c").
		StackSymbols("Z", "a", "b", "c").
		Initial("q0", "Z").
		Transition("q0", "Z", e,
			sapda.Conjunct{NextState: "q1", Push: "Z"},
			sapda.Conjunct{NextState: "q2", Push: "Z"}).
		Transition("q1", "Z", "a", sapda.Conjunct{NextState: "q1", Push: "aZ"}).
		Transition("q1", "Z", "b", sapda.Conjunct{NextState: "q1", Push: "bZ"}).
		Transition("q1", "Z", "c", sapda.Conjunct{NextState: "q1", Push: "Z"}).
		Transition("q1", "Z", e, sapda.Conjunct{NextState: "q0", Push: e}).
		Transition("q1", "a", "a", sapda.Conjunct{NextState: "q1", Push: "aa"}).
		Transition("q1", "a", "b", sapda.Conjunct{NextState: "q1", Push: e}).
		Transition("q1", "a", "c", sapda.Conjunct{NextState: "q1", Push: "a"}).
		Transition("q1", "b", "a", sapda.Conjunct{NextState: "q1", Push: e}).
		Transition("q1", "b", "b", sapda.Conjunct{NextState: "q1", Push: "bb"}).
		Transition("q1", "b", "c", sapda.Conjunct{NextState: "q1", Push: "b"}).
		Transition("q2", "Z", "a", sapda.Conjunct{NextState: "q2", Push: "Z"}).
		Transition("q2", "Z", "b", sapda.Conjunct{NextState: "q2", Push: "bZ"}).
		Transition("q2", "Z", "c", sapda.Conjunct{NextState: "q2", Push: "cZ"}).
		Transition("q2", "Z", e, sapda.Conjunct{NextState: "q0", Push: e}).
		Transition("q2", "b", "a", sapda.Conjunct{NextState: "q2", Push: "b"}).
		Transition("q2", "b", "b", sapda.Conjunct{NextState: "q2", Push: "bb"}).
		Transition("q2", "b", "c", sapda.Conjunct{NextState: "q2", Push: e}).
		Transition("q2", "c", "a", sapda.Conjunct{NextState: "q2", Push: "c"}).
		Transition("q2", "c", "b", sapda.Conjunct{NextState: "q2", Push: e}).
		Transition("q2", "c", "c", sapda.Conjunct{NextState: "q2", Push: "cc"}).
		Build()
}

// Reduplication builds the SAPDA accepting { w$w : w in {a,b}* }, the
// reduplication language with an explicit centre marker.
func Reduplication() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("reduplication with centre marker: { w$w | w in {a,b}* }").
		State("q0", "ql", "q", "qw", "qe", "qa1", "qa2", "qb1", "qb2").
		InputSymbols("a", "b", "$").
		StackSymbols("Z", "#").
		Initial("q0", "Z").
		Transition("q0", "Z", e,
			sapda.Conjunct{NextState: "ql", Push: "Z"},
			sapda.Conjunct{NextState: "q", Push: "Z"}).
		Transition("ql", "Z", "a", sapda.Conjunct{NextState: "ql", Push: "#Z"}).
		Transition("ql", "Z", "b", sapda.Conjunct{NextState: "ql", Push: "#Z"}).
		Transition("ql", "Z", "$", sapda.Conjunct{NextState: "qe", Push: "Z"}).
		Transition("ql", "#", "a", sapda.Conjunct{NextState: "ql", Push: "##"}).
		Transition("ql", "#", "b", sapda.Conjunct{NextState: "ql", Push: "##"}).
		Transition("ql", "#", "$", sapda.Conjunct{NextState: "qe", Push: "#"}).
		Transition("q", "Z", "a",
			sapda.Conjunct{NextState: "qa1", Push: "Z"},
			sapda.Conjunct{NextState: "q", Push: "Z"}).
		Transition("q", "Z", "b",
			sapda.Conjunct{NextState: "qb1", Push: "Z"},
			sapda.Conjunct{NextState: "q", Push: "Z"}).
		Transition("q", "Z", "$", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qa1", "Z", "a", sapda.Conjunct{NextState: "qa1", Push: "#Z"}).
		Transition("qa1", "Z", "b", sapda.Conjunct{NextState: "qa1", Push: "#Z"}).
		Transition("qa1", "Z", "$", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa1", "#", "a", sapda.Conjunct{NextState: "qa1", Push: "##"}).
		Transition("qa1", "#", "b", sapda.Conjunct{NextState: "qa1", Push: "##"}).
		Transition("qa1", "#", "$", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qb1", "Z", "a", sapda.Conjunct{NextState: "qb1", Push: "#Z"}).
		Transition("qb1", "Z", "b", sapda.Conjunct{NextState: "qb1", Push: "#Z"}).
		Transition("qb1", "Z", "$", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb1", "#", "a", sapda.Conjunct{NextState: "qb1", Push: "##"}).
		Transition("qb1", "#", "b", sapda.Conjunct{NextState: "qb1", Push: "##"}).
		Transition("qb1", "#", "$", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qa2", "Z", "a", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa2", "Z", "a", sapda.Conjunct{NextState: "qe", Push: "Z"}).
		Transition("qa2", "Z", "b", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa2", "#", "a", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qa2", "#", "a", sapda.Conjunct{NextState: "qe", Push: "#"}).
		Transition("qa2", "#", "b", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qb2", "Z", "a", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb2", "Z", "b", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb2", "Z", "b", sapda.Conjunct{NextState: "qe", Push: "Z"}).
		Transition("qb2", "#", "a", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qb2", "#", "b", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qb2", "#", "b", sapda.Conjunct{NextState: "qe", Push: "#"}).
		Transition("qw", "Z", "a", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qw", "Z", "a", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qw", "Z", "b", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qw", "Z", "b", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qw", "Z", e, sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "Z", e, sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "#", "a", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "#", "b", sapda.Conjunct{NextState: "qe", Push: e}).
		Build()
}

// ReduplicationNoMarker builds the reduplication-without-centre-marker
// SAPDA referenced, but never wired into search, by the original source.
// It is kept only as a test fixture: spec.md treats it as a defunct
// variant rather than a feature to expose through the CLI. Its branches
// still reach their final state only through a "$" transition, so an
// input without "$" is rejected.
func ReduplicationNoMarker() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("reduplication without centre marker (unwired test fixture)").
		State("q0", "qw", "qe", "qa1", "qa2", "qb1", "qb2").
		InputSymbols("a", "b", "$").
		StackSymbols("Z", "#").
		Initial("q0", "Z").
		Transition("q0", "Z", "a",
			sapda.Conjunct{NextState: "qa1", Push: "Z"},
			sapda.Conjunct{NextState: "q0", Push: "Z"}).
		Transition("q0", "Z", "b",
			sapda.Conjunct{NextState: "qb1", Push: "Z"},
			sapda.Conjunct{NextState: "q0", Push: "Z"}).
		Transition("q0", "Z", "$", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qa1", "Z", "a", sapda.Conjunct{NextState: "qa1", Push: "#Z"}).
		Transition("qa1", "Z", "b", sapda.Conjunct{NextState: "qa1", Push: "#Z"}).
		Transition("qa1", "Z", "$", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa1", "#", "a", sapda.Conjunct{NextState: "qa1", Push: "##"}).
		Transition("qa1", "#", "b", sapda.Conjunct{NextState: "qa1", Push: "##"}).
		Transition("qa1", "#", "$", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qb1", "Z", "a", sapda.Conjunct{NextState: "qb1", Push: "#Z"}).
		Transition("qb1", "Z", "b", sapda.Conjunct{NextState: "qb1", Push: "#Z"}).
		Transition("qb1", "Z", "$", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb1", "#", "a", sapda.Conjunct{NextState: "qb1", Push: "##"}).
		Transition("qb1", "#", "b", sapda.Conjunct{NextState: "qb1", Push: "##"}).
		Transition("qb1", "#", "$", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qa2", "Z", "a", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa2", "Z", "a", sapda.Conjunct{NextState: "qe", Push: "Z"}).
		Transition("qa2", "Z", "b", sapda.Conjunct{NextState: "qa2", Push: "Z"}).
		Transition("qa2", "#", "a", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qa2", "#", "a", sapda.Conjunct{NextState: "qe", Push: "#"}).
		Transition("qa2", "#", "b", sapda.Conjunct{NextState: "qa2", Push: "#"}).
		Transition("qb2", "Z", "a", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb2", "Z", "b", sapda.Conjunct{NextState: "qb2", Push: "Z"}).
		Transition("qb2", "Z", "b", sapda.Conjunct{NextState: "qe", Push: "Z"}).
		Transition("qb2", "#", "a", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qb2", "#", "b", sapda.Conjunct{NextState: "qb2", Push: "#"}).
		Transition("qb2", "#", "b", sapda.Conjunct{NextState: "qe", Push: "#"}).
		Transition("qw", "Z", "a", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qw", "Z", "a", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qw", "Z", "b", sapda.Conjunct{NextState: "qw", Push: "Z"}).
		Transition("qw", "Z", "b", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "Z", e, sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "#", "a", sapda.Conjunct{NextState: "qe", Push: e}).
		Transition("qe", "#", "b", sapda.Conjunct{NextState: "qe", Push: e}).
		Build()
}

// PowersOfFour builds the SAPDA accepting { 0^(4^n) | n >= 0 } by
// repeatedly quartering the run of zeros through conjunctive splits.
func PowersOfFour() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("0^(4^n) | n >= 0").
		State("q").
		InputSymbols("0").
		StackSymbols("A", "B", "C", "D", "0").
		Initial("q", "A").
		Transition("q", "A", e,
			sapda.Conjunct{NextState: "q", Push: "AC"},
			sapda.Conjunct{NextState: "q", Push: "BB"}).
		Transition("q", "A", e, sapda.Conjunct{NextState: "q", Push: "0"}).
		Transition("q", "B", e,
			sapda.Conjunct{NextState: "q", Push: "AA"},
			sapda.Conjunct{NextState: "q", Push: "BD"}).
		Transition("q", "B", e, sapda.Conjunct{NextState: "q", Push: "00"}).
		Transition("q", "C", e,
			sapda.Conjunct{NextState: "q", Push: "AB"},
			sapda.Conjunct{NextState: "q", Push: "DD"}).
		Transition("q", "C", e, sapda.Conjunct{NextState: "q", Push: "000"}).
		Transition("q", "D", e,
			sapda.Conjunct{NextState: "q", Push: "AB"},
			sapda.Conjunct{NextState: "q", Push: "CC"}).
		Transition("q", "0", "0", sapda.Conjunct{NextState: "q", Push: e}).
		Build()
}

// MirrorOrCopy builds the SAPDA from the source's "sapda5" fixture: each
// letter consumed may be mirrored or copied across two stack branches, or
// read directly, giving a mixed PDA/SAPDA example over {a,b}*.
func MirrorOrCopy() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("mirror-or-copy stack growth over {a,b}*").
		State("q").
		InputSymbols("a", "b").
		StackSymbols("S", "a", "b").
		Initial("q", "S").
		Transition("q", "S", e,
			sapda.Conjunct{NextState: "q", Push: "aaS"},
			sapda.Conjunct{NextState: "q", Push: "aSa"}).
		Transition("q", "S", e,
			sapda.Conjunct{NextState: "q", Push: "bbS"},
			sapda.Conjunct{NextState: "q", Push: "bSb"}).
		Transition("q", "S", e, sapda.Conjunct{NextState: "q", Push: "a"}).
		Transition("q", "S", e, sapda.Conjunct{NextState: "q", Push: "b"}).
		Transition("q", "a", "a", sapda.Conjunct{NextState: "q", Push: e}).
		Transition("q", "b", "b", sapda.Conjunct{NextState: "q", Push: e}).
		Build()
}

// AnBn builds a plain (non-conjunctive) PDA accepting { a^n b^n | n >= 0 },
// included as the degenerate case where conjunctive branching never fires.
func AnBn() (*sapda.Automaton, error) {
	e := sapda.Epsilon
	return sapda.NewAutomaton("a^n b^n (n >= 0), a plain PDA").
		State("q0", "q1", "q2", "q3").
		InputSymbols("a", "b").
		StackSymbols("Z", "A").
		Initial("q0", "Z").
		Transition("q0", "Z", "a", sapda.Conjunct{NextState: "q1", Push: "AZ"}).
		Transition("q0", "Z", e, sapda.Conjunct{NextState: "q0", Push: e}).
		Transition("q1", "A", "a", sapda.Conjunct{NextState: "q1", Push: "AA"}).
		Transition("q1", "A", "b", sapda.Conjunct{NextState: "q2", Push: e}).
		Transition("q2", "A", "b", sapda.Conjunct{NextState: "q2", Push: e}).
		Transition("q2", "Z", e, sapda.Conjunct{NextState: "q3", Push: e}).
		Build()
}
