package dom

import (
	"fmt"
	"html"
	"strings"

	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/vdom"
)

// Element is a host element node. It implements vdom.Element.
type Element struct {
	doc      *Document
	nid      string
	Tag      string
	parent   *Element
	children []treeNode
}

// ID returns the element's node ID.
func (e *Element) ID() string { return e.nid }

// NextSibling returns the node following this element under its parent.
func (e *Element) NextSibling() vdom.Node {
	return nextSibling(e)
}

// InsertBefore inserts node immediately before sibling. Both must belong
// to this document and sibling must be a child of this element. A node
// that is already attached elsewhere is moved.
func (e *Element) InsertBefore(node, sibling vdom.Node) {
	child := e.doc.adopt(node)
	ref := e.doc.adopt(sibling)
	idx := e.childIndex(ref)
	if idx < 0 {
		panic(fmt.Sprintf("dom: insertBefore: sibling %s is not a child of %s", ref.id(), e.nid))
	}
	detachIfAttached(child)
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = child
	child.setParent(e)

	kind, tag, value := child.creation()
	e.doc.record(protocol.Mutation{
		Op:     protocol.MutationInsert,
		Node:   child.id(),
		Parent: e.nid,
		Ref:    ref.id(),
		Kind:   kind,
		Tag:    tag,
		Value:  value,
	})
}

// AppendChild appends node as the last child.
func (e *Element) AppendChild(node vdom.Node) {
	child := e.doc.adopt(node)
	detachIfAttached(child)
	e.children = append(e.children, child)
	child.setParent(e)

	kind, tag, value := child.creation()
	e.doc.record(protocol.Mutation{
		Op:     protocol.MutationAppend,
		Node:   child.id(),
		Parent: e.nid,
		Kind:   kind,
		Tag:    tag,
		Value:  value,
	})
}

// RemoveChild removes a direct child. Panics if node is not a child of
// this element.
func (e *Element) RemoveChild(node vdom.Node) {
	child := e.doc.adopt(node)
	idx := e.childIndex(child)
	if idx < 0 {
		panic(fmt.Sprintf("dom: removeChild: node %s is not a child of %s", child.id(), e.nid))
	}
	e.children = append(e.children[:idx], e.children[idx+1:]...)
	child.setParent(nil)

	e.doc.record(protocol.Mutation{
		Op:   protocol.MutationRemove,
		Node: child.id(),
	})
}

// CreateTextNode creates a detached text node owned by this document.
func (e *Element) CreateTextNode(text string) vdom.TextNode {
	return &Text{doc: e.doc, nid: e.doc.newID(), text: text}
}

// Children returns the element's children in order.
func (e *Element) Children() []vdom.Node {
	out := make([]vdom.Node, len(e.children))
	for i, c := range e.children {
		out[i] = c
	}
	return out
}

// HTML renders the element and its subtree.
func (e *Element) HTML() string {
	var sb strings.Builder
	e.html(&sb)
	return sb.String()
}

func (e *Element) id() string             { return e.nid }
func (e *Element) parentElement() *Element { return e.parent }
func (e *Element) setParent(p *Element)   { e.parent = p }

func (e *Element) creation() (string, string, string) {
	return "element", e.Tag, ""
}

func (e *Element) html(sb *strings.Builder) {
	fmt.Fprintf(sb, `<%s data-loom-id=%q>`, e.Tag, e.nid)
	for _, child := range e.children {
		child.html(sb)
	}
	fmt.Fprintf(sb, "</%s>", e.Tag)
}

func (e *Element) childIndex(n treeNode) int {
	for i, c := range e.children {
		if c == n {
			return i
		}
	}
	return -1
}

// Text is a host text node. It implements vdom.TextNode.
type Text struct {
	doc    *Document
	nid    string
	text   string
	parent *Element
}

// ID returns the text node's ID.
func (t *Text) ID() string { return t.nid }

// NextSibling returns the node following this text node under its parent.
func (t *Text) NextSibling() vdom.Node {
	return nextSibling(t)
}

// SetText replaces the node's content in place.
func (t *Text) SetText(text string) {
	if t.text == text {
		return
	}
	t.text = text
	t.doc.record(protocol.Mutation{
		Op:    protocol.MutationSetText,
		Node:  t.nid,
		Value: text,
	})
}

// Text returns the node's content.
func (t *Text) Text() string { return t.text }

func (t *Text) id() string              { return t.nid }
func (t *Text) parentElement() *Element { return t.parent }
func (t *Text) setParent(p *Element)    { t.parent = p }

func (t *Text) creation() (string, string, string) {
	return "text", "", t.text
}

func (t *Text) html(sb *strings.Builder) {
	sb.WriteString(html.EscapeString(t.text))
}

// nextSibling finds the node after n under its parent, or nil.
func nextSibling(n treeNode) vdom.Node {
	parent := n.parentElement()
	if parent == nil {
		return nil
	}
	idx := parent.childIndex(n)
	if idx < 0 || idx+1 >= len(parent.children) {
		return nil
	}
	return parent.children[idx+1]
}

// detachIfAttached silently unlinks an attached node so it can be
// re-inserted. The journal only carries the insertion; the client treats
// an insert of a known ID as a move.
func detachIfAttached(n treeNode) {
	parent := n.parentElement()
	if parent == nil {
		return
	}
	idx := parent.childIndex(n)
	if idx >= 0 {
		parent.children = append(parent.children[:idx], parent.children[idx+1:]...)
	}
	n.setParent(nil)
}
