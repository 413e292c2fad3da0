package scene

// Tree is a linked scene: parents are set, instances point at their main
// component and every node is indexed by id.
type Tree struct {
	Name      string
	Roots     []*Node
	Selection []string

	index map[string]*Node
}

var _ Resolver = (*Tree)(nil)

// NewTree links the supplied roots. Duplicate ids keep the first node seen in
// pre-order. Instances whose MainComponent is already set keep it; otherwise
// MainComponentID is looked up in the index.
func NewTree(name string, roots []*Node, selection []string) *Tree {
	t := &Tree{
		Name:      name,
		Roots:     roots,
		Selection: append([]string(nil), selection...),
		index:     make(map[string]*Node),
	}

	var link func(parent *Node, nodes []*Node)
	link = func(parent *Node, nodes []*Node) {
		for _, node := range nodes {
			if node == nil {
				continue
			}
			node.Parent = parent
			if _, exists := t.index[node.ID]; !exists && node.ID != "" {
				t.index[node.ID] = node
			}
			link(node, node.Children)
		}
	}
	link(nil, roots)

	Walk(roots, func(node *Node) bool {
		if node.MainComponent == nil && node.MainComponentID != "" {
			node.MainComponent = t.index[node.MainComponentID]
		}
		return true
	})

	return t
}

// Resolve returns the node indexed under id.
func (t *Tree) Resolve(id string) (*Node, bool) {
	if t == nil {
		return nil, false
	}
	node, ok := t.index[id]
	return node, ok
}

// Len reports how many nodes are indexed.
func (t *Tree) Len() int {
	if t == nil {
		return 0
	}
	return len(t.index)
}

// Relevant returns the nodes the builder should process. When the document
// names a selection those nodes are returned in selection order (unknown ids
// are skipped). Otherwise every component set, standalone component and
// instance is returned in document order. The walk does not descend into the
// nodes it returns, so variants are covered by their set and instances nested
// inside a definition are not returned separately.
func (t *Tree) Relevant() []*Node {
	if t == nil {
		return nil
	}
	if len(t.Selection) > 0 {
		out := make([]*Node, 0, len(t.Selection))
		for _, id := range t.Selection {
			if node, ok := t.index[id]; ok {
				out = append(out, node)
			}
		}
		return out
	}

	var out []*Node
	Walk(t.Roots, func(node *Node) bool {
		switch node.Type {
		case NodeTypeComponentSet, NodeTypeComponent, NodeTypeInstance:
			out = append(out, node)
			return false
		}
		return true
	})
	return out
}

// Walk visits nodes in pre-order. Returning false from fn skips the node's
// children.
func Walk(nodes []*Node, fn func(*Node) bool) {
	for _, node := range nodes {
		if node == nil {
			continue
		}
		if fn(node) {
			Walk(node.Children, fn)
		}
	}
}
