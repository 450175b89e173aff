package sapda

import orderedmap "github.com/wk8/go-ordered-map/v2"

// availableTransition is one enabled transition for a leaf: the letter it
// reads (possibly Epsilon) and the conjunction it fires.
type availableTransition struct {
	Letter    string
	Conjuncts Conjunction
}

// transitionDict is the active-leaf dictionary: a cache from a leaf's full
// local identity to its currently enabled transitions. Entries are
// populated once per leaf and never recomputed, since the key already
// encodes every field that can change an entry's contents; they are only
// ever narrowed (by the DFS candidate restriction) or drained one
// transition at a time (by backtracking).
type transitionDict struct {
	entries *orderedmap.OrderedMap[leafKey, []availableTransition]
}

func newTransitionDict() *transitionDict {
	return &transitionDict{entries: orderedmap.New[leafKey, []availableTransition]()}
}

func (d *transitionDict) clone() *transitionDict {
	nd := newTransitionDict()
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		nd.entries.Set(pair.Key, append([]availableTransition(nil), pair.Value...))
	}
	return nd
}

// populate adds a dictionary entry for every active leaf of s that is not
// already present.
func (d *transitionDict) populate(a *Automaton, s Structure) {
	for _, leaf := range ActiveBranches(s, a) {
		key := leaf.key()
		if _, ok := d.entries.Get(key); ok {
			continue
		}
		d.entries.Set(key, enabledTransitions(a, leaf))
	}
}

// enabledTransitions lists every (letter, conjunction) enabled for leaf:
// transitions reading the next input letter, then (if the input is not
// already exhausted) ε-moves, which coexist with letter-moves.
func enabledTransitions(a *Automaton, leaf *Leaf) []availableTransition {
	top := leaf.stack[0]
	letter := leaf.firstInputSymbol()

	var avail []availableTransition
	if conjunctions, ok := a.Transitions(leaf.State, top, letter); ok {
		for _, c := range conjunctions {
			avail = append(avail, availableTransition{Letter: letter, Conjuncts: c})
		}
	}
	if letter != Epsilon {
		if conjunctions, ok := a.Transitions(leaf.State, top, Epsilon); ok {
			for _, c := range conjunctions {
				avail = append(avail, availableTransition{Letter: Epsilon, Conjuncts: c})
			}
		}
	}
	return avail
}

func (d *transitionDict) get(key leafKey) ([]availableTransition, bool) {
	return d.entries.Get(key)
}

func (d *transitionDict) set(key leafKey, v []availableTransition) {
	d.entries.Set(key, v)
}

// remove drops the first occurrence of (letter, conjuncts) from key's
// entry, used when backtracking to rule out an already-tried candidate.
func (d *transitionDict) remove(key leafKey, letter string, conjuncts Conjunction) {
	avail, ok := d.entries.Get(key)
	if !ok {
		return
	}
	out := make([]availableTransition, 0, len(avail))
	removed := false
	for _, t := range avail {
		if !removed && t.Letter == letter && conjunctsEqual(t.Conjuncts, conjuncts) {
			removed = true
			continue
		}
		out = append(out, t)
	}
	d.entries.Set(key, out)
}

// hasEmptyEntry reports whether any leaf's entry has no enabled
// transitions left, one of the rejection predicates.
func (d *transitionDict) hasEmptyEntry() bool {
	for pair := d.entries.Oldest(); pair != nil; pair = pair.Next() {
		if len(pair.Value) == 0 {
			return true
		}
	}
	return false
}
