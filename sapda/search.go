package sapda

import (
	"context"
	"errors"
)

// maxSearchDepth bounds DFS recursion as a backstop for the reference
// engine's "internal recursion limit" behaviour: a run that descends this
// deep without reaching a verdict is treated the same as a deadline.
const maxSearchDepth = 4096

// backtrackFrame records a choice point so DFS can undo it: the leaf and
// transition tried, and a snapshot of the Computation as it stood just
// before that transition was restricted to a single candidate.
type backtrackFrame struct {
	leaf      *Leaf
	letter    string
	conjuncts Conjunction
	snapshot  *Computation
}

// Run explores the automaton's computations on input depth-first and
// returns the trace of an accepting run, nil on rejection (including
// malformed input), or []string{"timeout"} if the search exhausted ctx's
// deadline or an internal recursion limit.
func Run(ctx context.Context, a *Automaton, input string) []string {
	return run(ctx, a, input, false)
}

// RunBFS is identical to Run but explores breadth-first, finding the
// shallowest accepting computation at the cost of more memory.
func RunBFS(ctx context.Context, a *Automaton, input string) []string {
	return run(ctx, a, input, true)
}

func run(ctx context.Context, a *Automaton, input string, bfs bool) []string {
	if !a.AcceptsInput(input) {
		return nil
	}

	comp := newComputation(a, input)
	accept, reject, err := comp.runDeterministicTransitions(ctx)
	if err != nil {
		return verdictForError(err)
	}
	if accept {
		return formatTrace(comp.trace)
	}
	if reject {
		return nil
	}

	var (
		trace    []Structure
		accepted bool
		runErr   error
	)
	if bfs {
		trace, accepted, runErr = comp.runBFS(ctx)
	} else {
		path := make([]backtrackFrame, 0, 16)
		trace, accepted, runErr = comp.dfs(ctx, 0, &path)
	}
	if runErr != nil {
		return verdictForError(runErr)
	}
	if !accepted {
		return nil
	}
	return formatTrace(trace)
}

// verdictForError converts a terminal search error into the trace
// contract: a deadline, cancellation, or recursion-limit error surfaces
// as the single "timeout" element, anything else is an internal
// invariant violation that degrades to an empty (rejecting) trace.
func verdictForError(err error) []string {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) || errors.Is(err, errRecursionLimit) {
		return []string{"timeout"}
	}
	logInvariantViolation(err)
	return nil
}

func cancelled(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
		return nil
	}
}

// dfs is the primary driver: it tries the ordered transitions of the
// ordered active leaves, descending into the first indeterminate
// candidate and backtracking once a leaf's last candidate rejects.
func (c *Computation) dfs(ctx context.Context, depth int, path *[]backtrackFrame) ([]Structure, bool, error) {
	if depth > maxSearchDepth {
		return nil, false, errRecursionLimit
	}
	if err := cancelled(ctx); err != nil {
		return nil, false, err
	}

	for _, leaf := range c.orderedActiveBranches() {
		transitions := c.orderedTransitions(leaf)
		for index, t := range transitions {
			if err := cancelled(ctx); err != nil {
				return nil, false, err
			}

			trial := c.clone()
			trial.dict.set(leaf.key(), []availableTransition{t})
			accept, reject, err := trial.runDeterministicTransitions(ctx)
			if err != nil {
				return nil, false, err
			}
			if accept {
				return trial.trace, true, nil
			}
			if reject {
				if index+1 == len(transitions) {
					if depth == 0 {
						return nil, false, nil
					}
					return c.backtrack(ctx, path, depth)
				}
				continue
			}

			// Indeterminate: descend, remembering how to undo this choice.
			*path = append(*path, backtrackFrame{leaf: leaf, letter: t.Letter, conjuncts: t.Conjuncts, snapshot: c})
			return trial.dfs(ctx, depth+1, path)
		}
	}

	// No leaf/transition pair produced a verdict or a descent: per the
	// engine's documented fall-through policy, this is a rejection.
	return nil, false, nil
}

func (c *Computation) backtrack(ctx context.Context, path *[]backtrackFrame, depth int) ([]Structure, bool, error) {
	if len(*path) == 0 {
		return nil, false, nil
	}
	frame := (*path)[len(*path)-1]
	*path = (*path)[:len(*path)-1]

	restored := frame.snapshot.clone()
	restored.dict.remove(frame.leaf.key(), frame.letter, frame.conjuncts)
	return restored.dfs(ctx, depth-1, path)
}

// runBFS maintains a FIFO of Computations, exploring the same ordered
// (leaf, transition) pairs as dfs but without backtracking: a rejected
// branch is simply dropped, and an indeterminate one is enqueued.
func (c *Computation) runBFS(ctx context.Context) ([]Structure, bool, error) {
	queue := []*Computation{c}
	for len(queue) > 0 {
		if err := cancelled(ctx); err != nil {
			return nil, false, err
		}
		current := queue[0]
		queue = queue[1:]

		for _, leaf := range current.orderedActiveBranches() {
			for _, t := range current.orderedTransitions(leaf) {
				if err := cancelled(ctx); err != nil {
					return nil, false, err
				}

				trial := current.clone()
				next, err := ApplyAt(trial.structure, leaf, t.Letter, t.Conjuncts)
				if err != nil {
					return nil, false, err
				}
				trial.update(next)
				accept, reject, err := trial.runDeterministicTransitions(ctx)
				if err != nil {
					return nil, false, err
				}
				if accept {
					return trial.trace, true, nil
				}
				if reject {
					continue
				}
				queue = append(queue, trial)
			}
		}
	}
	return nil, false, nil
}
