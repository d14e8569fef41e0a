package dom

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/protocol"
)

func TestAppendChildJournalsCreation(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	tn := root.CreateTextNode("hi")
	root.AppendChild(tn)

	muts := doc.Flush()
	if len(muts) != 1 {
		t.Fatalf("mutations = %d, want 1", len(muts))
	}
	m := muts[0]
	if m.Op != protocol.MutationAppend {
		t.Errorf("op = %v, want %v", m.Op, protocol.MutationAppend)
	}
	if m.Parent != root.ID() {
		t.Errorf("parent = %q, want %q", m.Parent, root.ID())
	}
	if m.Kind != "text" || m.Value != "hi" {
		t.Errorf("creation info = (%q, %q), want (text, hi)", m.Kind, m.Value)
	}
}

func TestInsertBeforeOrdersChildren(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	a := root.CreateTextNode("a")
	c := root.CreateTextNode("c")
	root.AppendChild(a)
	root.AppendChild(c)
	doc.Flush()

	b := root.CreateTextNode("b")
	root.InsertBefore(b, c)

	if got := doc.HTML(); got != "abc" {
		t.Errorf("HTML = %q, want %q", got, "abc")
	}
	muts := doc.Flush()
	if len(muts) != 1 {
		t.Fatalf("mutations = %d, want 1", len(muts))
	}
	if muts[0].Op != protocol.MutationInsert || muts[0].Ref != c.(*Text).ID() {
		t.Errorf("mutation = %+v, want insert before %s", muts[0], c.(*Text).ID())
	}
}

func TestInsertBeforeAbsentSiblingPanics(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	orphan := root.CreateTextNode("orphan")
	node := root.CreateTextNode("n")

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic on absent sibling")
		}
		if msg, ok := r.(string); !ok || !strings.Contains(msg, "not a child") {
			t.Errorf("panic = %v, want not-a-child message", r)
		}
	}()
	root.InsertBefore(node, orphan)
}

func TestRemoveChild(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	a := root.CreateTextNode("a")
	b := root.CreateTextNode("b")
	root.AppendChild(a)
	root.AppendChild(b)
	doc.Flush()

	root.RemoveChild(a)
	if got := doc.HTML(); got != "b" {
		t.Errorf("HTML = %q, want %q", got, "b")
	}
	muts := doc.Flush()
	if len(muts) != 1 || muts[0].Op != protocol.MutationRemove {
		t.Errorf("mutations = %v, want one remove", muts)
	}
}

func TestRemoveChildAbsentPanics(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	orphan := root.CreateTextNode("orphan")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic removing an absent node")
		}
	}()
	root.RemoveChild(orphan)
}

func TestNextSibling(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	a := root.CreateTextNode("a")
	b := root.CreateTextNode("b")
	root.AppendChild(a)
	root.AppendChild(b)

	if got := a.NextSibling(); got != b {
		t.Errorf("a.NextSibling = %v, want b", got)
	}
	if got := b.NextSibling(); got != nil {
		t.Errorf("b.NextSibling = %v, want nil", got)
	}
	if got := doc.Root().NextSibling(); got != nil {
		t.Errorf("root.NextSibling = %v, want nil", got)
	}
}

func TestInsertBeforeMovesAttachedNode(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	a := root.CreateTextNode("a")
	b := root.CreateTextNode("b")
	root.AppendChild(a)
	root.AppendChild(b)

	// Re-inserting an attached node moves it rather than duplicating it.
	root.InsertBefore(b, a)
	if got := doc.HTML(); got != "ba" {
		t.Errorf("HTML = %q, want %q", got, "ba")
	}
	if got := len(root.Children()); got != 2 {
		t.Errorf("children = %d, want 2", got)
	}
}

func TestSetTextJournalsOnChangeOnly(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	tn := root.CreateTextNode("x")
	root.AppendChild(tn)
	doc.Flush()

	tn.SetText("x")
	if got := doc.Pending(); got != 0 {
		t.Errorf("pending after no-op SetText = %d, want 0", got)
	}

	tn.SetText("y")
	muts := doc.Flush()
	if len(muts) != 1 || muts[0].Op != protocol.MutationSetText || muts[0].Value != "y" {
		t.Errorf("mutations = %v, want one set-text to y", muts)
	}
}

func TestForeignDocumentNodePanics(t *testing.T) {
	doc1 := NewDocument()
	doc2 := NewDocument()
	alien := doc2.Root().CreateTextNode("alien")

	defer func() {
		if recover() == nil {
			t.Fatal("expected panic adopting a node from another document")
		}
	}()
	doc1.Root().AppendChild(alien)
}

func TestElementHTMLEscapesText(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()

	div := doc.CreateElement("div")
	root.AppendChild(div)
	tn := root.CreateTextNode("<b> & co")
	div.AppendChild(tn)

	got := div.HTML()
	if !strings.Contains(got, "&lt;b&gt; &amp; co") {
		t.Errorf("HTML = %q, want escaped text content", got)
	}
	if !strings.HasPrefix(got, `<div data-loom-id=`) {
		t.Errorf("HTML = %q, want div wrapper with node id", got)
	}
}

func TestFlushClearsJournal(t *testing.T) {
	doc := NewDocument()
	root := doc.Root()
	root.AppendChild(root.CreateTextNode("a"))

	if got := doc.Pending(); got != 1 {
		t.Fatalf("pending = %d, want 1", got)
	}
	if got := len(doc.Flush()); got != 1 {
		t.Fatalf("flush = %d mutations, want 1", got)
	}
	if got := doc.Pending(); got != 0 {
		t.Errorf("pending after flush = %d, want 0", got)
	}
	if got := len(doc.Flush()); got != 0 {
		t.Errorf("second flush = %d mutations, want 0", got)
	}
}
