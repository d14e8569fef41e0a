package main

import (
	"fmt"

	"github.com/loom-ui/loom/pkg/comp"
	"github.com/loom-ui/loom/pkg/protocol"
	"github.com/loom-ui/loom/pkg/vdom"
)

// The demo application: a click counter whose view embeds two child
// components. The "counter" child is reused in place on every rerender
// (same kind, new properties) and notifies the parent through a
// transformed callback whenever the count hits a multiple of five. The
// parity child alternates between two component kinds on every click, so
// each click tears one instance down and mounts the other.

const (
	kindApp     vdom.Kind = "app"
	kindCounter vdom.Kind = "counter"
	kindEven    vdom.Kind = "even"
	kindOdd     vdom.Kind = "odd"
)

// milestoneMsg is sent from the counter child to the app's mailbox.
type milestoneMsg struct {
	total int
}

// counterProps are the counter child's properties.
type counterProps struct {
	Count       int
	OnMilestone vdom.Callback[int]
}

type counterComponent struct {
	props counterProps
}

func newCounter() comp.Component { return &counterComponent{} }

func (c *counterComponent) Init(props any) {
	c.props = props.(counterProps)
}

func (c *counterComponent) Update(any) bool { return false }

func (c *counterComponent) ChangeProps(props any) bool {
	next := props.(counterProps)
	changed := next.Count != c.props.Count
	c.props = next
	if changed && c.props.Count > 0 && c.props.Count%5 == 0 {
		c.props.OnMilestone.Invoke(c.props.Count)
	}
	return changed
}

func (c *counterComponent) View() vdom.VNode {
	return vdom.NewText(fmt.Sprintf(" | counter sees %d", c.props.Count))
}

// parityComponent renders a fixed label; its identity comes from the kind
// it is registered under.
type parityComponent struct {
	label string
}

func (p *parityComponent) Init(props any)      { p.label = props.(string) }
func (p *parityComponent) Update(any) bool     { return false }
func (p *parityComponent) ChangeProps(props any) bool {
	next := props.(string)
	changed := next != p.label
	p.label = next
	return changed
}
func (p *parityComponent) View() vdom.VNode {
	return vdom.NewText(" | " + p.label)
}

// appComponent is the root: it owns the click count and re-renders its
// children on every click.
type appComponent struct {
	counter *comp.Runtime
	even    *comp.Runtime
	odd     *comp.Runtime

	clicks     int
	milestones int
}

func (a *appComponent) Init(any) {}

func (a *appComponent) Update(msg any) bool {
	switch m := msg.(type) {
	case *protocol.Event:
		if m.Name == "click" {
			a.clicks++
			return true
		}
		return false
	case milestoneMsg:
		a.milestones++
		return true
	default:
		return false
	}
}

func (a *appComponent) ChangeProps(any) bool { return false }

func (a *appComponent) View() vdom.VNode {
	list := vdom.NewList(false)
	list.Add(vdom.NewText(fmt.Sprintf("clicks: %d, milestones: %d", a.clicks, a.milestones)))

	// Counter child: same kind every render, so reconciliation reuses the
	// live instance and pushes new properties through it.
	holder := vdom.NewScopeHolder()
	props := counterProps{
		Count: vdom.Identity(holder, a.clicks),
		OnMilestone: vdom.Func(holder, func(total int) any {
			return milestoneMsg{total: total}
		}),
	}
	list.Add(vdom.NewComp(a.counter, props, holder, &vdom.NodeRef{}))

	// Parity child: the kind flips on every click, forcing a teardown of
	// the old instance and a fresh mount.
	rt, label := a.even, "even"
	if a.clicks%2 != 0 {
		rt, label = a.odd, "odd"
	}
	parityHolder := vdom.NewScopeHolder()
	list.Add(vdom.NewComp(rt, vdom.Identity(parityHolder, label), parityHolder, &vdom.NodeRef{}))

	return list
}

// newAppRuntime wires the demo component runtimes, reporting lifecycle
// events to obs (which may be nil).
func newAppRuntime(obs comp.Observer) *comp.Runtime {
	var opts []comp.RuntimeOption
	if obs != nil {
		opts = append(opts, comp.WithObserver(obs))
	}
	counter := comp.NewRuntime(kindCounter, newCounter, opts...)
	even := comp.NewRuntime(kindEven, func() comp.Component { return &parityComponent{} }, opts...)
	odd := comp.NewRuntime(kindOdd, func() comp.Component { return &parityComponent{} }, opts...)

	return comp.NewRuntime(kindApp, func() comp.Component {
		return &appComponent{counter: counter, even: even, odd: odd}
	}, opts...)
}
