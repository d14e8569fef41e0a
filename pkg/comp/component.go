package comp

import "github.com/loom-ui/loom/pkg/vdom"

// Component is a stateful unit embedded as a subtree.
//
// Init receives the initial properties once, before the first View.
// Update handles one mailbox message and reports whether the view must
// re-render. ChangeProps receives new properties when a parent rerender
// reuses the instance, likewise reporting whether to re-render. View
// produces the component's virtual tree; it must have a single root.
type Component interface {
	Init(props any)
	Update(msg any) bool
	ChangeProps(props any) bool
	View() vdom.VNode
}

// Scope drives one live component instance. It implements vdom.Sender,
// so it can be handed to child nodes as their parent scope.
type Scope struct {
	kind   vdom.Kind
	comp   Component
	parent vdom.Element

	tree vdom.VNode // Last rendered virtual tree
	root vdom.Node  // Host node the tree currently occupies
	ref  *vdom.NodeRef

	queue      []any
	processing bool
	destroyed  bool

	observer Observer
}

// Send enqueues a message and, unless a dispatch is already running,
// drains the mailbox synchronously. Messages sent from within Update
// (directly or through a child callback) are queued and handled before
// Send returns to the outermost caller. Messages to a destroyed instance
// are dropped.
func (s *Scope) Send(msg any) {
	if s.destroyed {
		return
	}
	s.queue = append(s.queue, msg)
	if s.processing {
		return
	}
	s.processing = true
	defer func() { s.processing = false }()

	// Rendering can enqueue more messages (child callbacks fire during
	// reconciliation), so keep draining until the mailbox stays empty.
	for len(s.queue) > 0 {
		dirty := false
		for len(s.queue) > 0 {
			m := s.queue[0]
			s.queue = s.queue[1:]
			if s.comp.Update(m) {
				dirty = true
			}
		}
		if dirty {
			s.render()
		}
	}
}

// Kind returns the component kind this scope was created for.
func (s *Scope) Kind() vdom.Kind { return s.kind }

// Root returns the host node the instance currently occupies.
func (s *Scope) Root() vdom.Node { return s.root }

// mountInPlace runs the component's first render over the placeholder the
// parent staked out, replacing it with the real rendered root.
func (s *Scope) mountInPlace(parent vdom.Element, placeholder vdom.Node, ref *vdom.NodeRef, props any) {
	s.parent = parent
	s.ref = ref
	s.comp.Init(props)

	view := s.comp.View()
	s.root = view.Apply(parent, nil, &vdom.VRef{Node: placeholder}, s)
	s.tree = view
	ref.Set(s.root)
}

// updateProps pushes new properties onto the live instance. ref is the
// new virtual node's reference cell; it now names this instance's root.
func (s *Scope) updateProps(ref *vdom.NodeRef, props any) {
	s.ref = ref
	if s.comp.ChangeProps(props) {
		s.render()
	}
	ref.Set(s.root)
}

// render reconciles a fresh view against the last rendered tree.
func (s *Scope) render() {
	next := s.comp.View()
	s.root = next.Apply(s.parent, nil, s.tree, s)
	s.tree = next
	if s.ref != nil {
		s.ref.Set(s.root)
	}
}

// destroy releases the instance. Host nodes are removed by the virtual
// node that owns this instance, not here.
func (s *Scope) destroy() {
	if s.destroyed {
		return
	}
	s.destroyed = true
	s.queue = nil
	if s.observer != nil {
		s.observer.Destroyed(s.kind)
	}
}
