package sapda

// synchroniseOnce rewrites a Tree whose children are all empty-stack
// leaves agreeing on (state, remaining input) into a single Leaf carrying
// the tree's internal stack. If the top-level children are not all
// synchronised, it recurses into any child that is itself a Tree and
// rewrites that child in place. It reports whether any rewrite occurred.
func synchroniseOnce(s Structure) (Structure, bool) {
	tree, ok := s.(*Tree)
	if !ok {
		return s, false
	}

	if len(tree.Children) > 0 {
		if first, ok := tree.Children[0].(*Leaf); ok && first.HasEmptyStack() {
			synced := true
			for _, c := range tree.Children[1:] {
				leaf, ok := c.(*Leaf)
				if !ok || !leaf.HasEmptyStack() ||
					leaf.RemainingInput != first.RemainingInput || leaf.State != first.State {
					synced = false
					break
				}
			}
			if synced {
				return NewLeaf(first.State, first.RemainingInput, tree.stack, nil, 0), true
			}
		}
	}

	changed := false
	newChildren := make([]Structure, len(tree.Children))
	for i, c := range tree.Children {
		if child, ok := c.(*Tree); ok {
			rewritten, did := synchroniseOnce(child)
			newChildren[i] = rewritten
			if did {
				changed = true
			}
			continue
		}
		newChildren[i] = c
	}
	if !changed {
		return tree, false
	}
	return &Tree{stack: tree.stack, Children: newChildren}, true
}

// SynchroniseToFixpoint applies synchroniseOnce repeatedly until the
// Structure stops changing.
func SynchroniseToFixpoint(s Structure) Structure {
	for {
		next, changed := synchroniseOnce(s)
		if !changed {
			return next
		}
		s = next
	}
}
