package vdom

// Node is a handle to one node in the host tree.
type Node interface {
	// NextSibling returns the node immediately following this one under
	// the same parent, or nil if this is the last child or the node is
	// not attached.
	NextSibling() Node
}

// TextNode is a host text node whose content can be updated in place.
type TextNode interface {
	Node

	// SetText replaces the node's text content.
	SetText(text string)
}

// Element is the host-tree mutation surface the engine reconciles against.
// Implementations must panic when asked to mutate a node that is not
// present in the tree: that means the virtual tree and the host tree have
// already diverged, which is a bug, not a recoverable condition.
type Element interface {
	Node

	// InsertBefore inserts node immediately before sibling.
	InsertBefore(node, sibling Node)

	// AppendChild appends node as the last child.
	AppendChild(node Node)

	// RemoveChild removes a direct child from the tree.
	RemoveChild(node Node)

	// CreateTextNode creates a detached text node owned by this tree.
	CreateTextNode(text string) TextNode
}

// insertNode places node at the splice point: before an explicit anchor if
// one is known, otherwise after previousSibling, otherwise appended at the
// end of parent.
func insertNode(parent Element, node, previousSibling, before Node) {
	if before != nil {
		parent.InsertBefore(node, before)
		return
	}
	var next Node
	if previousSibling != nil {
		next = previousSibling.NextSibling()
	}
	if next != nil {
		parent.InsertBefore(node, next)
	} else {
		parent.AppendChild(node)
	}
}
