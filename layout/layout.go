// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout defines the measure/arrange protocol shared by all
layout nodes.

A layout tree is computed in two top-down passes. The measurement
pass gives every node a max-size budget and asks it how large it
wants to be; the arrangement pass places the measured sizes into
concrete frames. Both passes are pure: a node may be measured and
arranged from any goroutine, repeatedly, with different budgets.

Only MakeView and ConfigureView touch view objects. They must run on
the thread that owns the view hierarchy.
*/
package layout

import (
	"github.com/prelayout/prelayout/f32"
)

// Measurable computes the size a layout needs within a budget.
type Measurable interface {
	// Measure returns the measurement for the layout constrained by
	// within. The measured size never exceeds within in either
	// dimension. Measure is pure and safe for concurrent use.
	Measure(within f32.Size) *Measurement
}

// Arrangeable places a previously measured layout into a rect.
type Arrangeable interface {
	// Arrange combines the layout's alignment with a measurement
	// produced by an earlier Measure call. The measurement's budget
	// must be no smaller than the rect; the frame of the result is
	// contained in within. Arrange is pure and safe for concurrent
	// use.
	Arrange(within f32.Rectangle, m *Measurement) *Arrangement
}

// ViewBinder produces and configures the view a layout renders as.
// Both methods are effectful and main-thread-only.
type ViewBinder interface {
	// MakeView instantiates the layout's view.
	MakeView() View

	// ConfigureView applies the layout's configuration to a possibly
	// reused view. It is idempotent.
	ConfigureView(View)

	// ReuseID keys view reuse across layout passes. Views made by
	// layouts with equal non-empty reuse IDs are interchangeable.
	ReuseID() string
}

// Layout is a complete layout node.
type Layout interface {
	Measurable
	Arrangeable
	ViewBinder

	// Flexibility reports how the node competes for space. Parents
	// consume it; leaf nodes only report it.
	Flexibility() Flexibility
}

// Measurement is the result of a measurement pass over one node.
// It is immutable once produced.
type Measurement struct {
	// Layout is the node that produced the measurement.
	Layout Layout

	// Size is the size the node claims. It never exceeds MaxSize.
	Size f32.Size

	// MaxSize is the budget Size was computed against.
	MaxSize f32.Size

	// Sublayouts holds the measurements of the node's children,
	// in layout order.
	Sublayouts []*Measurement
}

// Arrange places the measurement within a rect.
func (m *Measurement) Arrange(within f32.Rectangle) *Arrangement {
	return m.Layout.Arrange(within, m)
}

// Arrangement is the placed geometry of a node and its children.
// It is immutable once produced.
type Arrangement struct {
	// Layout is the node that produced the arrangement.
	Layout Layout

	// Frame is the node's rect in its parent view's coordinate
	// space.
	Frame f32.Rectangle

	// Sublayouts holds the arrangements of the node's children, with
	// frames relative to this node's view.
	Sublayouts []*Arrangement
}

// View is the surface of a native view that the binding layer
// drives. Concrete handle types live in package view.
type View interface {
	Frame() f32.Rectangle
	SetFrame(f32.Rectangle)
	AddSubview(View)
}

// Compute measures l against the size of within and arranges it
// there. It is the single-pass convenience for callers that do not
// reuse measurements.
func Compute(l Layout, within f32.Rectangle) *Arrangement {
	return l.Arrange(within, l.Measure(within.Size()))
}

// BindViews creates, configures and places the view hierarchy for
// the arrangement tree rooted at a. It must be called on the thread
// that owns the view hierarchy.
func (a *Arrangement) BindViews() View {
	v := a.Layout.MakeView()
	a.Layout.ConfigureView(v)
	v.SetFrame(a.Frame)
	for _, sub := range a.Sublayouts {
		v.AddSubview(sub.BindViews())
	}
	return v
}
