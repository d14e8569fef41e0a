package vdom

import "fmt"

// Runtime is the protocol a component implementation exposes to the
// engine. A Runtime creates live instances of exactly one component kind.
//
// Mount constructs a fresh instance: it must replace placeholder with the
// instance's real rendered root and fill ref with the host node the
// instance ends up occupying. Adopt reuses a live instance produced
// earlier by this same runtime, pushing new properties through the
// instance's own update protocol; the type assertion from the erased
// handle back to the concrete instance happens inside Adopt and nowhere
// else. Both return the (possibly new) erased handle and a one-shot
// teardown that destroys the instance.
type Runtime interface {
	Kind() Kind
	Mount(parent Element, placeholder Node, ref *NodeRef, props any) (handle any, teardown func())
	Adopt(handle any, ref *NodeRef, props any) (newHandle any, teardown func())
}

// mountPhase is the lifecycle state of an embedded component.
type mountPhase uint8

const (
	phaseUnmounted   mountPhase = iota // Deferred constructor not yet consumed
	phaseMounting                      // Transient guard during Apply
	phaseMounted                       // Live instance attached to the host tree
	phaseDetached                      // Removed from the host tree, terminal
	phaseOverwritten                   // Payload handed off to a newer VComp, terminal
)

// String returns the string representation of the mountPhase.
func (p mountPhase) String() string {
	switch p {
	case phaseUnmounted:
		return "Unmounted"
	case phaseMounting:
		return "Mounting"
	case phaseMounted:
		return "Mounted"
	case phaseDetached:
		return "Detached"
	case phaseOverwritten:
		return "Overwritten"
	default:
		return "Unknown"
	}
}

// genMode selects how a generator resolves: by mounting a fresh instance
// or by overwriting (adopting) an existing one.
type genMode uint8

const (
	genMount genMode = iota
	genOverwrite
)

// genArgs carries the inputs of a single generator invocation.
type genArgs struct {
	mode genMode

	// genMount
	parent      Element
	placeholder Node

	// genOverwrite
	kind   Kind
	handle any
}

// generator is a one-shot deferred constructor. It captures the
// component's initial properties at declaration time and runs exactly once
// during Apply, either mounting a fresh instance or adopting a reused one.
type generator func(args genArgs, parentScope Sender) *mounted

// unmounted is the payload of an Unmounted component node.
type unmounted struct {
	generator generator
}

// mount consumes the generator to create a fresh instance anchored at
// placeholder.
func (u unmounted) mount(parent Element, placeholder Node, parentScope Sender) *mounted {
	return u.generator(genArgs{mode: genMount, parent: parent, placeholder: placeholder}, parentScope)
}

// overwrite consumes the generator to adopt the live instance extracted
// from a same-kind ancestor.
func (u unmounted) overwrite(kind Kind, old *mounted, parentScope Sender) *mounted {
	return u.generator(genArgs{mode: genOverwrite, kind: kind, handle: old.handle}, parentScope)
}

// mounted is the payload of a Mounted component node. It is moved, never
// shared: when a same-kind ancestor is reused its mounted payload is
// extracted and the ancestor transitions to Overwritten.
type mounted struct {
	ref      *NodeRef
	handle   any
	teardown func()
}

// mountState is the tagged lifecycle state of a VComp. Exactly one payload
// field is set, matching the phase.
type mountState struct {
	phase     mountPhase
	unmounted *unmounted
	mounted   *mounted
}

// VComp embeds one stateful component instance inside a parent's tree.
// The instance is held behind a type-erased handle; the kind token exists
// only so reconciliation can tell "same logical component, new properties"
// apart from "different component".
type VComp struct {
	kind  Kind
	state mountState
}

// NewComp prepares a deferred constructor for one embedded component.
// props are captured now; the actual mount or reuse happens when the node
// is applied. holder is activated with the parent's sender at that moment,
// arming every callback built from this node's properties. ref will name
// the host node the instance occupies once mounted.
func NewComp(rt Runtime, props any, holder *ScopeHolder, ref *NodeRef) *VComp {
	kind := rt.Kind()
	gen := func(args genArgs, parentScope Sender) *mounted {
		holder.activate(parentScope)
		switch args.mode {
		case genMount:
			handle, teardown := rt.Mount(args.parent, args.placeholder, ref, props)
			return &mounted{ref: ref, handle: handle, teardown: teardown}
		default:
			if args.kind != rt.Kind() {
				panic(fmt.Sprintf("vdom: overwrote component of kind %q with kind %q", args.kind, rt.Kind()))
			}
			handle, teardown := rt.Adopt(args.handle, ref, props)
			return &mounted{ref: ref, handle: handle, teardown: teardown}
		}
	}
	return &VComp{
		kind: kind,
		state: mountState{
			phase:     phaseUnmounted,
			unmounted: &unmounted{generator: gen},
		},
	}
}

// swapState installs next and returns the previous state, moving any
// payload out with it.
func (c *VComp) swapState(next mountState) mountState {
	prev := c.state
	c.state = next
	return prev
}

// Apply mounts the component or adopts a same-kind ancestor's instance.
//
// If the node is not Unmounted the call is a no-op returning nil: either
// an ancestor already claimed it, or this is a re-entrant call from user
// code running inside the mount itself, which observes the transient
// Mounting guard.
func (c *VComp) Apply(parent Element, previousSibling Node, ancestor VNode, parentScope Sender) Node {
	prev := c.swapState(mountState{phase: phaseMounting})
	if prev.phase != phaseUnmounted {
		c.state = prev
		return nil
	}
	pending := prev.unmounted

	// Classify the ancestor: reuse a same-kind component's live instance,
	// or detach whatever else occupied the position.
	var reuse *mounted
	var before Node
	switch anc := ancestor.(type) {
	case nil:
	case *VComp:
		if anc.kind == c.kind {
			old := anc.swapState(mountState{phase: phaseOverwritten})
			if old.phase == phaseMounted {
				reuse = old.mounted
			}
		} else {
			before = anc.Detach(parent)
		}
	default:
		before = ancestor.Detach(parent)
	}

	var m *mounted
	if reuse != nil {
		// Same kind: push a properties update onto the live instance.
		m = pending.overwrite(c.kind, reuse, parentScope)
	} else {
		// Temporary stand-in the host tree can anchor to until the
		// component's mounting protocol swaps in its real root.
		placeholder := parent.CreateTextNode("")
		insertNode(parent, placeholder, previousSibling, before)
		m = pending.mount(parent, placeholder, parentScope)
	}

	node := m.ref.Get()
	c.state = mountState{phase: phaseMounted, mounted: m}
	return node
}

// Detach removes the component from the host tree. The node transitions
// to Detached regardless of its prior state; only a Mounted node has work
// to do: run its teardown, remove the occupied host node, and return the
// former next sibling.
func (c *VComp) Detach(parent Element) Node {
	prev := c.swapState(mountState{phase: phaseDetached})
	if prev.phase != phaseMounted {
		return nil
	}
	m := prev.mounted
	m.teardown()
	node := m.ref.Get()
	if node == nil {
		return nil
	}
	sibling := node.NextSibling()
	parent.RemoveChild(node)
	return sibling
}
