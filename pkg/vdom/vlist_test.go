package vdom_test

import (
	"fmt"
	"testing"

	"github.com/loom-ui/loom/pkg/vdom"
)

// textList builds a list of text nodes labeled prefix0..prefixN-1.
func textList(prefix string, n int) *vdom.VList {
	l := vdom.NewList(false)
	for i := 0; i < n; i++ {
		l.Add(vdom.NewText(fmt.Sprintf("%s%d", prefix, i)))
	}
	return l
}

func TestListInsertAll(t *testing.T) {
	doc, host := newHost()

	l := textList("a", 3)
	l.Apply(host, nil, nil, &recorder{})

	if got := doc.HTML(); got != "a0a1a2" {
		t.Errorf("HTML = %q, want %q", got, "a0a1a2")
	}
}

func TestListLengthInvariance(t *testing.T) {
	cases := []struct {
		oldLen, newLen int
	}{
		{0, 3},
		{3, 0},
		{3, 3},
		{2, 5},
		{5, 2},
		{1, 1},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%d_to_%d", tc.oldLen, tc.newLen)
		t.Run(name, func(t *testing.T) {
			doc, host := newHost()

			old := textList("x", tc.oldLen)
			old.Apply(host, nil, nil, &recorder{})
			doc.Flush()

			next := textList("y", tc.newLen)
			next.Apply(host, nil, old, &recorder{})
			ops := countOps(doc)

			// An empty new list materializes one placeholder, which
			// counts as the single surviving child.
			effectiveNew := tc.newLen
			if effectiveNew == 0 {
				effectiveNew = 1
			}
			effectiveOld := tc.oldLen
			if effectiveOld == 0 {
				effectiveOld = 1
			}

			wantRemoves := effectiveOld - effectiveNew
			if wantRemoves < 0 {
				wantRemoves = 0
			}
			wantInserts := effectiveNew - effectiveOld
			if wantInserts < 0 {
				wantInserts = 0
			}

			if got := ops["Remove"]; got != wantRemoves {
				t.Errorf("removes = %d, want %d (ops: %v)", got, wantRemoves, ops)
			}
			if got := ops["Insert"]+ops["Append"]; got != wantInserts {
				t.Errorf("inserts = %d, want %d (ops: %v)", got, wantInserts, ops)
			}

			want := ""
			for i := 0; i < tc.newLen; i++ {
				want += fmt.Sprintf("y%d", i)
			}
			if got := doc.HTML(); got != want {
				t.Errorf("HTML = %q, want %q", got, want)
			}
		})
	}
}

func TestListUpdateInPlace(t *testing.T) {
	doc, host := newHost()

	old := textList("x", 3)
	old.Apply(host, nil, nil, &recorder{})
	doc.Flush()

	next := textList("x", 3)
	next.Apply(host, nil, old, &recorder{})

	// Identical positions update in place: no structural mutations and
	// no text changes.
	if muts := doc.Flush(); len(muts) != 0 {
		t.Errorf("mutations = %v, want none", muts)
	}
}

func TestListEmptyStability(t *testing.T) {
	_, host := newHost()

	l := vdom.NewList(false)
	l.Apply(host, nil, nil, &recorder{})

	if got := len(host.Children()); got != 1 {
		t.Fatalf("children = %d, want exactly 1 stabilizing placeholder", got)
	}

	// Empty over empty: the placeholder survives, one child before and
	// after.
	next := vdom.NewList(false)
	next.Apply(host, nil, l, &recorder{})
	if got := len(host.Children()); got != 1 {
		t.Errorf("children after reapply = %d, want 1", got)
	}
}

func TestListNoSiblingsStaysEmpty(t *testing.T) {
	_, host := newHost()

	l := vdom.NewList(true)
	l.Apply(host, nil, nil, &recorder{})

	if got := len(host.Children()); got != 0 {
		t.Errorf("children = %d, want 0 for a no-siblings list", got)
	}
}

func TestListEmptyThenNonEmptyKeepsOrder(t *testing.T) {
	doc, host := newHost()

	empty := vdom.NewList(false)
	empty.Apply(host, nil, nil, &recorder{})

	// A sibling appears after the (placeholder-stabilized) empty list.
	tail := host.CreateTextNode("!")
	host.AppendChild(tail)

	// A later non-empty render must stay in front of the sibling: the
	// first item reuses the placeholder's position.
	next := textList("a", 2)
	next.Apply(host, nil, empty, &recorder{})

	if got := doc.HTML(); got != "a0a1!" {
		t.Errorf("HTML = %q, want %q", got, "a0a1!")
	}
}

func TestListAncestorSingleNode(t *testing.T) {
	doc, host := newHost()

	old := vdom.NewText("solo")
	old.Apply(host, nil, nil, &recorder{})

	next := textList("a", 2)
	next.Apply(host, nil, old, &recorder{})

	if got := doc.HTML(); got != "a0a1" {
		t.Errorf("HTML = %q, want %q", got, "a0a1")
	}
}

func TestListDetachRemovesEverything(t *testing.T) {
	doc, host := newHost()

	l := textList("a", 3)
	l.Apply(host, nil, nil, &recorder{})
	l.Detach(host)

	if got := doc.HTML(); got != "" {
		t.Errorf("HTML = %q, want empty", got)
	}
	if got := len(host.Children()); got != 0 {
		t.Errorf("children = %d, want 0", got)
	}
}

func TestListDetachReturnsLastSplicePoint(t *testing.T) {
	_, host := newHost()
	tail := host.CreateTextNode("!")
	host.AppendChild(tail)

	l := textList("a", 2)
	l.Apply(host, nil, nil, &recorder{})
	// Items were appended after the tail, so the last child's next
	// sibling is nil.
	if got := l.Detach(host); got != nil {
		t.Errorf("splice point = %v, want nil", got)
	}
}

func TestListRoundTripApplyDetach(t *testing.T) {
	doc, host := newHost()

	l := textList("a", 2)
	l.Apply(host, nil, nil, &recorder{})
	l.Detach(host)
	if got := doc.HTML(); got != "" {
		t.Fatalf("HTML after detach = %q, want empty", got)
	}

	again := textList("a", 2)
	again.Apply(host, nil, nil, &recorder{})
	if got := doc.HTML(); got != "a0a1" {
		t.Errorf("HTML after reapply = %q, want %q", got, "a0a1")
	}
}

func TestListScenarioReuseAndReplace(t *testing.T) {
	doc, host := newHost()
	rt1 := newStubRuntime("kind1")
	rt2 := newStubRuntime("kind2")
	rt3 := newStubRuntime("kind3")

	old := vdom.NewList(false)
	old.Add(newComp(rt1, "A"), newComp(rt2, "B"))
	old.Apply(host, nil, nil, &recorder{})
	if got := doc.HTML(); got != "AB" {
		t.Fatalf("setup HTML = %q, want %q", got, "AB")
	}
	instA := rt1.lastHandle

	next := vdom.NewList(false)
	next.Add(newComp(rt1, "A'"), newComp(rt3, "C"))
	next.Apply(host, nil, old, &recorder{})

	// Position 0: same kind, reused in place without teardown.
	if rt1.teardowns != 0 {
		t.Errorf("kind1 teardowns = %d, want 0", rt1.teardowns)
	}
	if rt1.adopts != 1 {
		t.Errorf("kind1 adopts = %d, want 1", rt1.adopts)
	}
	if rt1.lastHandle != instA {
		t.Error("kind1 instance identity changed across reuse")
	}

	// Position 1: kind changed, old torn down and new freshly mounted.
	if rt2.teardowns != 1 {
		t.Errorf("kind2 teardowns = %d, want 1", rt2.teardowns)
	}
	if rt3.mounts != 1 {
		t.Errorf("kind3 mounts = %d, want 1", rt3.mounts)
	}

	if got := doc.HTML(); got != "A'C" {
		t.Errorf("HTML = %q, want %q", got, "A'C")
	}
}

func TestListShrinkDetachesComponents(t *testing.T) {
	doc, host := newHost()
	rt := newStubRuntime("counter")

	old := vdom.NewList(false)
	old.Add(newComp(rt, "A"), newComp(rt, "B"), newComp(rt, "C"))
	old.Apply(host, nil, nil, &recorder{})

	next := vdom.NewList(false)
	next.Add(newComp(rt, "A'"))
	next.Apply(host, nil, old, &recorder{})

	if rt.teardowns != 2 {
		t.Errorf("teardowns = %d, want 2", rt.teardowns)
	}
	if rt.adopts != 1 {
		t.Errorf("adopts = %d, want 1", rt.adopts)
	}
	if got := doc.HTML(); got != "A'" {
		t.Errorf("HTML = %q, want %q", got, "A'")
	}
}
