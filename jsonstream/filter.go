package jsonstream

type pathNode struct {
	children map[string]*pathNode
	whole    bool
}

func newPathTree(paths []string) (*pathNode, error) {
	root := &pathNode{children: map[string]*pathNode{}}

	for _, path := range paths {
		keys, err := SplitPath(path)
		if err != nil {
			return nil, err
		}

		node := root

		for _, key := range keys {
			child, ok := node.children[key]
			if !ok {
				child = &pathNode{children: map[string]*pathNode{}}
				node.children[key] = child
			}

			node = child
		}

		node.whole = true
	}

	return root, nil
}

// Filter keeps the members of v reached by paths and drops everything else, preserving member order.
// A path such as ".owner" keeps the whole member, while ".owner.login" keeps owner only if it is an object,
// trimmed down to its login member. Values other than objects are returned unchanged.
//
// Non-nil returned error wraps [ErrPath].
func Filter(v Value, paths ...string) (Value, error) {
	tree, err := newPathTree(paths)
	if err != nil {
		return Value{}, err
	}

	if v.Kind != Object {
		return v, nil
	}

	return tree.apply(v), nil
}

func (n *pathNode) apply(obj Value) Value {
	kept := Value{Kind: Object, Members: make([]Member, 0, len(n.children))}

	for _, member := range obj.Members {
		child, ok := n.children[member.Key]

		switch {
		case !ok:
			continue
		case child.whole:
			kept.Members = append(kept.Members, member)
		case member.Value.Kind == Object:
			kept.Members = append(kept.Members, Member{Key: member.Key, Value: child.apply(member.Value)})
		}
	}

	return kept
}
