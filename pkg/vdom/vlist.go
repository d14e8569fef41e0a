package vdom

// VList is an ordered sequence of virtual nodes reconciled by position.
//
// Matching is purely positional, index for index: there is no keyed path,
// so reordering logically-identical children is indistinguishable from
// replacing them all and repaints every shifted position. That is a
// documented limitation of this reconciler, not a bug.
type VList struct {
	// NoSiblings marks a list that can never sit next to a sibling node.
	// Only such a list may stay truly empty; any other empty list
	// materializes a placeholder so a later non-empty render does not
	// shift position relative to its siblings.
	NoSiblings bool

	// Children are exclusively owned by this list.
	Children []VNode
}

// NewList creates an empty list.
func NewList(noSiblings bool) *VList {
	return &VList{NoSiblings: noSiblings}
}

// Add appends children to the list.
func (l *VList) Add(children ...VNode) {
	l.Children = append(l.Children, children...)
}

// Apply reconciles the list against its ancestor. An ancestor list
// contributes its children as the old sequence (ownership transfers);
// any other ancestor is treated as a one-element sequence and handled by
// the element's own Apply; no ancestor means every child is a pure insert.
func (l *VList) Apply(parent Element, previousSibling Node, ancestor VNode, parentScope Sender) Node {
	var rights []VNode
	switch anc := ancestor.(type) {
	case nil:
	case *VList:
		rights = anc.Children
		anc.Children = nil
	default:
		rights = []VNode{ancestor}
	}

	if len(l.Children) == 0 && !l.NoSiblings {
		// An empty list still needs one host node to stake out its
		// place, otherwise the next sibling becomes first and a later
		// non-empty render corrupts the order.
		l.Children = append(l.Children, NewText(""))
	}

	prev := previousSibling
	for i := 0; i < len(l.Children) || i < len(rights); i++ {
		switch {
		case i < len(l.Children) && i < len(rights):
			prev = l.Children[i].Apply(parent, prev, rights[i], parentScope)
		case i < len(l.Children):
			prev = l.Children[i].Apply(parent, prev, nil, parentScope)
		default:
			// Old sequence is longer: pure removal. The result is
			// discarded, removal does not establish an anchor for the
			// next new element.
			rights[i].Detach(parent)
		}
	}
	return prev
}

// Detach removes every child in order and returns the last child's splice
// point.
func (l *VList) Detach(parent Element) Node {
	var last Node
	for _, child := range l.Children {
		last = child.Detach(parent)
	}
	l.Children = nil
	return last
}
