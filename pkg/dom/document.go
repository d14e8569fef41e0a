package dom

import (
	"fmt"
	"strings"

	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/vdom"
)

// Document owns an in-memory host tree and records every mutation applied
// to it.
type Document struct {
	root    *Element
	nextID  int
	journal []protocol.Mutation
}

// NewDocument creates a document with an empty root element.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.CreateElement("root")
	return d
}

// Root returns the document's root element.
func (d *Document) Root() *Element {
	return d.root
}

// CreateElement creates a detached element node.
func (d *Document) CreateElement(tag string) *Element {
	return &Element{doc: d, nid: d.newID(), Tag: tag}
}

// Flush returns the mutations journaled since the last call and clears
// the journal.
func (d *Document) Flush() []protocol.Mutation {
	j := d.journal
	d.journal = nil
	return j
}

// Pending returns the number of unflushed mutations.
func (d *Document) Pending() int {
	return len(d.journal)
}

// HTML renders the children of the root element.
func (d *Document) HTML() string {
	var sb strings.Builder
	for _, child := range d.root.children {
		child.html(&sb)
	}
	return sb.String()
}

func (d *Document) newID() string {
	d.nextID++
	return fmt.Sprintf("n%d", d.nextID)
}

func (d *Document) record(m protocol.Mutation) {
	d.journal = append(d.journal, m)
}

// treeNode is the document-internal view of a node.
type treeNode interface {
	vdom.Node

	id() string
	parentElement() *Element
	setParent(p *Element)
	html(sb *strings.Builder)
	creation() (kind, tag, value string)
}

// adopt asserts that n is a node of this document.
func (d *Document) adopt(n any) treeNode {
	switch t := n.(type) {
	case *Element:
		if t.doc != d {
			panic("dom: node belongs to a different document")
		}
		return t
	case *Text:
		if t.doc != d {
			panic("dom: node belongs to a different document")
		}
		return t
	default:
		panic(fmt.Sprintf("dom: foreign node type %T", n))
	}
}
