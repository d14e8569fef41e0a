package vdom

// Transformers convert parent-authored property values into the shapes a
// child component consumes. Plain values pass through; closures producing
// parent messages become callbacks wired to the parent's mailbox through
// the child's ScopeHolder, which may still be empty at construction time.

// Callback routes a child event payload back to the parent's mailbox.
type Callback[IN any] func(IN)

// Invoke is a nil-safe call.
func (c Callback[IN]) Invoke(in IN) {
	if c != nil {
		c(in)
	}
}

// Identity passes a value through unchanged.
func Identity[T any](_ *ScopeHolder, from T) T {
	return from
}

// Deref copies a borrowed value into an owned one.
func Deref[T any](_ *ScopeHolder, from *T) T {
	return *from
}

// OwnedString copies borrowed text into an owned string.
func OwnedString(_ *ScopeHolder, from []byte) string {
	return string(from)
}

// Func wraps a plain event-to-message function into a callback. When the
// callback fires, the produced message is enqueued on the parent's mailbox
// via the holder; firing before the holder is activated panics, since the
// message would have nowhere to go.
func Func[IN any](holder *ScopeHolder, from func(IN) any) Callback[IN] {
	return func(in IN) {
		holder.Send(from(in))
	}
}

// FuncOption behaves like Func around an optional callback slot.
func FuncOption[IN any](holder *ScopeHolder, from func(IN) any) *Callback[IN] {
	cb := Func(holder, from)
	return &cb
}
