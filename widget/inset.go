// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/view"
)

// Inset is a composite node adding space around a single child.
type Inset struct {
	Top, Right, Bottom, Left float32

	// Child is the wrapped node.
	Child layout.Layout

	// Reuse keys view reuse. Empty disables reuse.
	Reuse string
}

// UniformInset returns an Inset with a single inset applied to all
// edges.
func UniformInset(v float32, child layout.Layout) *Inset {
	return &Inset{Top: v, Right: v, Bottom: v, Left: v, Child: child}
}

// Measure implements layout.Measurable. The child is measured with
// the budget shrunk by the insets; the inset claims the child's size
// plus the insets, clamped to the budget.
func (in *Inset) Measure(within f32.Size) *layout.Measurement {
	inner := f32.Sz(
		maxf(within.Width-in.Left-in.Right, 0),
		maxf(within.Height-in.Top-in.Bottom, 0),
	)
	child := in.Child.Measure(inner)
	size := f32.Sz(
		child.Size.Width+in.Left+in.Right,
		child.Size.Height+in.Top+in.Bottom,
	).Min(within)
	return &layout.Measurement{
		Layout:     in,
		Size:       size,
		MaxSize:    within,
		Sublayouts: []*layout.Measurement{child},
	}
}

// Arrange implements layout.Arrangeable. The inset fills the rect
// and places the child inside the insets, in the inset view's
// coordinate space.
func (in *Inset) Arrange(within f32.Rectangle, m *layout.Measurement) *layout.Arrangement {
	frame := m.Size.Rect(within.Min)
	inner := f32.Rect(
		in.Left,
		in.Top,
		maxf(frame.Dx()-in.Left-in.Right, 0),
		maxf(frame.Dy()-in.Top-in.Bottom, 0),
	)
	var subs []*layout.Arrangement
	if len(m.Sublayouts) > 0 {
		subs = []*layout.Arrangement{m.Sublayouts[0].Arrange(inner)}
	}
	return &layout.Arrangement{Layout: in, Frame: frame, Sublayouts: subs}
}

// MakeView implements layout.ViewBinder.
func (in *Inset) MakeView() layout.View {
	return view.NewContainer()
}

// ConfigureView implements layout.ViewBinder. The inset view has no
// configuration of its own.
func (in *Inset) ConfigureView(layout.View) {}

// ReuseID implements layout.ViewBinder.
func (in *Inset) ReuseID() string {
	return in.Reuse
}

// Flexibility implements layout.Layout. Insets are as flexible as
// their child.
func (in *Inset) Flexibility() layout.Flexibility {
	return in.Child.Flexibility()
}
