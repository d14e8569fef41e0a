package comp

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/vdom"
)

// Observer receives lifecycle notifications for instances of a runtime.
// Servers use it to feed metrics; tests use it to probe reuse behavior.
type Observer interface {
	Mounted(kind vdom.Kind)
	Adopted(kind vdom.Kind)
	Destroyed(kind vdom.Kind)
}

// Runtime creates component scopes of a single kind. It implements
// vdom.Runtime.
type Runtime struct {
	kind     vdom.Kind
	factory  func() Component
	observer Observer
}

// RuntimeOption configures a Runtime.
type RuntimeOption func(*Runtime)

// WithObserver attaches a lifecycle observer to every instance the
// runtime creates.
func WithObserver(obs Observer) RuntimeOption {
	return func(r *Runtime) {
		r.observer = obs
	}
}

// NewRuntime creates a runtime for one component kind.
func NewRuntime(kind vdom.Kind, factory func() Component, opts ...RuntimeOption) *Runtime {
	r := &Runtime{kind: kind, factory: factory}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Kind returns the identity token for the component implementation.
func (r *Runtime) Kind() vdom.Kind { return r.kind }

// Mount implements vdom.Runtime: construct an instance and render it over
// the placeholder.
func (r *Runtime) Mount(parent vdom.Element, placeholder vdom.Node, ref *vdom.NodeRef, props any) (any, func()) {
	s := &Scope{kind: r.kind, comp: r.factory(), observer: r.observer}
	s.mountInPlace(parent, placeholder, ref, props)
	if r.observer != nil {
		r.observer.Mounted(r.kind)
	}
	return s, s.destroy
}

// Adopt implements vdom.Runtime: reuse a live instance, pushing new
// properties through its update protocol. This is the one place the
// erased handle is cast back to a concrete scope, and it runs under the
// kind check the engine performed before handing the handle over.
func (r *Runtime) Adopt(handle any, ref *vdom.NodeRef, props any) (any, func()) {
	s, ok := handle.(*Scope)
	if !ok || s.kind != r.kind {
		panic(fmt.Sprintf("comp: adopted handle is not a %q instance", r.kind))
	}
	s.updateProps(ref, props)
	if r.observer != nil {
		r.observer.Adopted(r.kind)
	}
	return s, s.destroy
}

// MountRoot mounts a root instance directly into parent, appended at the
// end. Embeddings use it for the top of the tree, where there is no
// enclosing component to reconcile against.
func (r *Runtime) MountRoot(parent vdom.Element, props any) *Scope {
	placeholder := parent.CreateTextNode("")
	parent.AppendChild(placeholder)
	ref := &vdom.NodeRef{}
	handle, _ := r.Mount(parent, placeholder, ref, props)
	return handle.(*Scope)
}
