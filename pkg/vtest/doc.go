// Package vtest provides a test harness for Loom components.
//
// A Harness mounts a component runtime into a fresh host tree and drives
// it the way a session would, without any transport:
//
//	h := vtest.Mount(t, myRuntime, myProps)
//	h.Click()
//	vtest.ExpectContains(t, h, "clicks: 1")
//
// The harness exposes the rendered HTML, the mutation journal, and the
// mounted scope for direct message sends.
package vtest
