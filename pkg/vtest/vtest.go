package vtest

import (
	"strings"
	"testing"

	"github.com/loom-ui/loom/pkg/comp"
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/protocol"
)

// Harness drives one mounted component tree.
type Harness struct {
	t     *testing.T
	doc   *dom.Document
	scope *comp.Scope
}

// Mount mounts a root component into a fresh host tree. The mount journal
// is discarded so the first Flush returns only mutations caused by the
// test itself.
func Mount(t *testing.T, rt *comp.Runtime, props any) *Harness {
	t.Helper()
	doc := dom.NewDocument()
	scope := rt.MountRoot(doc.Root(), props)
	doc.Flush()
	return &Harness{t: t, doc: doc, scope: scope}
}

// Send delivers a message to the root component's mailbox.
func (h *Harness) Send(msg any) {
	h.scope.Send(msg)
}

// Event delivers a client event to the root component.
func (h *Harness) Event(name, target, value string) {
	h.Send(&protocol.Event{Name: name, Target: target, Value: value})
}

// Click delivers a click event with no target.
func (h *Harness) Click() {
	h.Event("click", "", "")
}

// Input delivers an input event carrying value.
func (h *Harness) Input(value string) {
	h.Event("input", "", value)
}

// HTML returns the rendered host tree.
func (h *Harness) HTML() string {
	return h.doc.HTML()
}

// Flush returns the mutations journaled since the last call.
func (h *Harness) Flush() []protocol.Mutation {
	return h.doc.Flush()
}

// Document returns the underlying host tree.
func (h *Harness) Document() *dom.Document {
	return h.doc
}

// Scope returns the mounted root scope.
func (h *Harness) Scope() *comp.Scope {
	return h.scope
}

// ExpectContains asserts that the rendered output contains expected.
func ExpectContains(t *testing.T, h *Harness, expected string) {
	t.Helper()
	html := h.HTML()
	if !strings.Contains(html, expected) {
		t.Errorf("expected rendered output to contain %q, got:\n%s", expected, truncate(html, 500))
	}
}

// ExpectNotContains asserts that the rendered output does not contain
// unexpected.
func ExpectNotContains(t *testing.T, h *Harness, unexpected string) {
	t.Helper()
	html := h.HTML()
	if strings.Contains(html, unexpected) {
		t.Errorf("expected rendered output to not contain %q, got:\n%s", unexpected, truncate(html, 500))
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
