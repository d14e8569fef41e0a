package vdom

// ScopeHolder is a single-assignment cell deferring access to "the
// parent's message sender". It is created empty when a child node is
// declared, shared between the child's generator and every callback built
// from the child's properties, and populated when the generator runs at
// mount or reuse time.
//
// The single-write/multiple-read discipline matters: a callback that fires
// before population means a component was asked to notify a parent that
// has not finished mounting it, which is a bug in tree construction.
type ScopeHolder struct {
	sender Sender
}

// NewScopeHolder creates an empty holder.
func NewScopeHolder() *ScopeHolder {
	return &ScopeHolder{}
}

// activate populates the holder. Called exactly once per declared child,
// by the child's generator.
func (h *ScopeHolder) activate(s Sender) {
	h.sender = s
}

// Send routes a message to the parent's mailbox. Panics if the holder has
// not been activated yet.
func (h *ScopeHolder) Send(msg any) {
	if h.sender == nil {
		panic("vdom: callback fired before its parent scope was activated")
	}
	h.sender.Send(msg)
}

// Activated reports whether the parent sender has been populated.
func (h *ScopeHolder) Activated() bool {
	return h.sender != nil
}
