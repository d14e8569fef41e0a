// Package vdom provides the virtual node reconciliation engine for Loom.
//
// A virtual tree is an in-memory description of a host-rendered tree. On
// every rerender the engine walks the old and new trees in lock-step and
// applies the minimal set of host mutations to move from one to the other.
//
// # The two-operation contract
//
// Every virtual node kind implements VNode:
//
//	Apply(parent, previousSibling, ancestor, parentScope) Node
//	Detach(parent) Node
//
// Apply reconciles the node against the ancestor that previously occupied
// its position and returns the last host node it occupies, so the next
// sibling can be positioned after it. Detach removes the node from the host
// tree and returns its former next sibling as a splice point. A nil return
// means "no node".
//
// # Node kinds
//
// VText is a plain text leaf. VRef adopts an existing host node. VComp
// embeds a stateful component instance behind a type-erased handle and owns
// its mount lifecycle. VList reconciles an ordered sequence of children by
// position.
//
// # Host tree
//
// The engine never creates or mutates host nodes directly; it goes through
// the Element and Node interfaces. Mutating a node that is not actually in
// the tree is a programming error and the host implementation is expected
// to panic.
//
// Reconciliation is single-threaded and synchronous. Apply and Detach run
// to completion; the only re-entrancy comes from user code called during
// mount or teardown, which the VComp state machine guards against.
package vdom
