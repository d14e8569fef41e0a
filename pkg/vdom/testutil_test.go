package vdom_test

import (
	"github.com/loom-ui/loom/pkg/dom"
	"github.com/loom-ui/loom/pkg/vdom"
)

// stubInstance is a minimal live component: a single text node showing
// its properties.
type stubInstance struct {
	node  vdom.TextNode
	props string
}

// stubRuntime is a vdom.Runtime test double that counts lifecycle events.
// Mounting claims the placeholder as the instance's root and writes the
// properties into it; adopting rewrites the text in place.
type stubRuntime struct {
	kind      vdom.Kind
	mounts    int
	adopts    int
	teardowns int

	lastHandle *stubInstance
	onTeardown func()
}

func newStubRuntime(kind vdom.Kind) *stubRuntime {
	return &stubRuntime{kind: kind}
}

func (r *stubRuntime) Kind() vdom.Kind { return r.kind }

func (r *stubRuntime) Mount(_ vdom.Element, placeholder vdom.Node, ref *vdom.NodeRef, props any) (any, func()) {
	r.mounts++
	tn := placeholder.(vdom.TextNode)
	inst := &stubInstance{node: tn, props: props.(string)}
	tn.SetText(inst.props)
	ref.Set(tn)
	r.lastHandle = inst
	return inst, r.teardown
}

func (r *stubRuntime) Adopt(handle any, ref *vdom.NodeRef, props any) (any, func()) {
	r.adopts++
	inst := handle.(*stubInstance)
	inst.props = props.(string)
	inst.node.SetText(inst.props)
	ref.Set(inst.node)
	r.lastHandle = inst
	return inst, r.teardown
}

func (r *stubRuntime) teardown() {
	r.teardowns++
	if r.onTeardown != nil {
		r.onTeardown()
	}
}

// newComp builds a component node for a stub runtime with fresh plumbing.
func newComp(rt vdom.Runtime, props string) *vdom.VComp {
	return vdom.NewComp(rt, props, vdom.NewScopeHolder(), &vdom.NodeRef{})
}

// recorder captures messages sent to a parent scope.
type recorder struct {
	msgs []any
}

func (r *recorder) Send(msg any) {
	r.msgs = append(r.msgs, msg)
}

// newHost creates a document and returns its root as the host parent.
func newHost() (*dom.Document, *dom.Element) {
	doc := dom.NewDocument()
	return doc, doc.Root()
}

// countOps tallies journal entries by operation.
func countOps(doc *dom.Document) map[string]int {
	counts := make(map[string]int)
	for _, m := range doc.Flush() {
		counts[m.Op.String()]++
	}
	return counts
}
