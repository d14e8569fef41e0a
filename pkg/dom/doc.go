// Package dom provides the in-memory host tree Loom reconciles against.
//
// A Document owns a tree of Element and Text nodes and satisfies the
// vdom host interfaces. Every mutation applied through those interfaces
// is journaled as a protocol.Mutation so a server can replay the changes
// on a remote client; Flush drains the journal.
//
// Mutating a node that is not in the tree panics. By the time that
// happens the virtual tree and the host tree have already diverged, so
// the error surfaces immediately instead of being papered over.
package dom
