// Package protocol defines the wire format between a Loom server and its
// thin client.
//
// The server keeps the authoritative host tree in memory; every mutation
// the reconciler applies to it is journaled as a Mutation and streamed to
// the client inside a Frame over the WebSocket channel. The client sends
// Event frames back, which the server dispatches into component mailboxes.
//
// Frames are encoded as JSON. Mutation and frame type discriminators are
// small integers so the format stays compact and stable across versions.
package protocol
