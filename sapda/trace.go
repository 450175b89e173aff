package sapda

import (
	"fmt"

	"github.com/odrh20/sapda/render"
)

// formatTrace turns a sequence of Structures into the engine's observable
// output: one "Step i\n\n<tree render>" entry per recorded rewrite.
func formatTrace(trace []Structure) []string {
	out := make([]string, len(trace))
	for i, s := range trace {
		out[i] = fmt.Sprintf("Step %d\n\n%s", i+1, render.Tree(toRenderNode(s)))
	}
	return out
}

// toRenderNode converts a Structure into the render package's generic
// node shape: a Leaf renders as its (state, remaining input, stack)
// triple, a Tree as its internal stack with one child per branch.
func toRenderNode(s Structure) render.Node {
	switch v := s.(type) {
	case *Leaf:
		return render.Node{Label: fmt.Sprintf("(%s, %s, %s)", v.State, v.RemainingInput, v.StackString())}
	case *Tree:
		children := make([]render.Node, len(v.Children))
		for i, c := range v.Children {
			children[i] = toRenderNode(c)
		}
		return render.Node{Label: v.StackString(), Children: children}
	default:
		return render.Node{Label: "?"}
	}
}
