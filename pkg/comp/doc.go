// Package comp provides Loom's component runtime.
//
// A Component is a stateful unit with its own properties, internal state,
// and update protocol, embedded as a subtree of a parent's render output.
// Each live instance is driven by a Scope: a synchronous mailbox plus the
// component's last rendered virtual tree. Sending a message runs Update
// to completion and, if the state changed, re-renders and reconciles in
// place. Everything is single-threaded and cooperative; a Scope must only
// be used from the goroutine that owns its host tree.
//
// A Runtime adapts a component constructor to the vdom mount protocol so
// parents can embed it with vdom.NewComp.
package comp
