package vdom

// VNode is the contract every virtual node kind implements.
//
// Apply reconciles this node against ancestor, the virtual node that
// previously occupied the same position, and returns the last host node
// this node occupies. previousSibling is the last host node placed by the
// preceding sibling, used to compute the insertion point when there is no
// ancestor to replace. parentScope is the enclosing component's message
// sender, handed down so embedded components can activate their callbacks.
//
// Detach removes this node (and recursively everything it owns) from the
// host tree and returns its former next sibling as a splice point.
type VNode interface {
	Apply(parent Element, previousSibling Node, ancestor VNode, parentScope Sender) Node
	Detach(parent Element) Node
}

// Sender delivers messages to a component's mailbox.
type Sender interface {
	Send(msg any)
}

// Kind identifies which component implementation a VComp instantiates.
// It is only ever compared for equality during the reuse check; state
// access always goes through the instance handle.
type Kind string

// NodeRef is a shared cell naming the host node a component currently
// occupies. It is created empty and filled once the component mounts.
type NodeRef struct {
	node Node
}

// Get returns the referenced host node, or nil before mount.
func (r *NodeRef) Get() Node {
	return r.node
}

// Set records the referenced host node.
func (r *NodeRef) Set(n Node) {
	r.node = n
}

// VText is a plain text leaf.
type VText struct {
	Text string

	node TextNode
}

// NewText creates a text node.
func NewText(text string) *VText {
	return &VText{Text: text}
}

// Apply reuses the ancestor's host node when the ancestor is also text,
// updating the content in place; any other ancestor is detached and a
// fresh text node is inserted at the splice point.
func (t *VText) Apply(parent Element, previousSibling Node, ancestor VNode, _ Sender) Node {
	if anc, ok := ancestor.(*VText); ok && anc.node != nil {
		t.node = anc.node
		anc.node = nil
		if anc.Text != t.Text {
			t.node.SetText(t.Text)
		}
		return t.node
	}

	var before Node
	if ancestor != nil {
		before = ancestor.Detach(parent)
	}
	node := parent.CreateTextNode(t.Text)
	insertNode(parent, node, previousSibling, before)
	t.node = node
	return node
}

// Detach removes the text node from the host tree.
func (t *VText) Detach(parent Element) Node {
	if t.node == nil {
		return nil
	}
	sibling := t.node.NextSibling()
	parent.RemoveChild(t.node)
	t.node = nil
	return sibling
}

// VRef adopts an existing host node as a virtual leaf. Its main use is as
// the ancestor for a component's first render: the mount placeholder is
// wrapped in a VRef so the rendered root replaces it through the ordinary
// reconciliation path.
type VRef struct {
	Node Node
}

// Apply inserts the referenced host node at the splice point, detaching
// any ancestor first. Applying over a VRef of the same node is a no-op.
func (r *VRef) Apply(parent Element, previousSibling Node, ancestor VNode, _ Sender) Node {
	if anc, ok := ancestor.(*VRef); ok && anc.Node == r.Node {
		return r.Node
	}
	var before Node
	if ancestor != nil {
		before = ancestor.Detach(parent)
	}
	insertNode(parent, r.Node, previousSibling, before)
	return r.Node
}

// Detach removes the referenced host node from the host tree.
func (r *VRef) Detach(parent Element) Node {
	if r.Node == nil {
		return nil
	}
	sibling := r.Node.NextSibling()
	parent.RemoveChild(r.Node)
	return sibling
}
