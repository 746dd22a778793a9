// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"testing"

	"github.com/prelayout/prelayout/f32"
)

// stubView is a minimal View for exercising the binding walk.
type stubView struct {
	frame f32.Rectangle
	subs  []View
}

func (v *stubView) Frame() f32.Rectangle { return v.frame }

func (v *stubView) SetFrame(f f32.Rectangle) { v.frame = f }

func (v *stubView) AddSubview(s View) { v.subs = append(v.subs, s) }

// stubLayout is a fixed-size leaf node.
type stubLayout struct {
	size       f32.Size
	align      Alignment
	configured int
}

func (l *stubLayout) Measure(within f32.Size) *Measurement {
	return &Measurement{Layout: l, Size: l.size.Min(within), MaxSize: within}
}

func (l *stubLayout) Arrange(within f32.Rectangle, m *Measurement) *Arrangement {
	return &Arrangement{Layout: l, Frame: l.align.Position(m.Size, within)}
}

func (l *stubLayout) MakeView() View { return new(stubView) }

func (l *stubLayout) ConfigureView(View) { l.configured++ }

func (l *stubLayout) ReuseID() string { return "" }

func (l *stubLayout) Flexibility() Flexibility { return FlexDefault }

func TestCompute(t *testing.T) {
	l := &stubLayout{size: f32.Sz(40, 20), align: Center}
	a := Compute(l, f32.Rect(0, 0, 100, 100))
	if got, want := a.Frame, f32.Rect(30, 40, 40, 20); got != want {
		t.Errorf("frame %v, want %v", got, want)
	}
}

func TestMeasurementArrange(t *testing.T) {
	l := &stubLayout{size: f32.Sz(500, 500)}
	m := l.Measure(f32.Sz(100, 80))
	if got, want := m.Size, f32.Sz(100, 80); got != want {
		t.Errorf("clamped size %v, want %v", got, want)
	}
	a := m.Arrange(f32.Rect(10, 10, 100, 80))
	if a.Layout != Layout(l) {
		t.Error("arrangement owned by the wrong layout")
	}
}

func TestBindViews(t *testing.T) {
	child := &stubLayout{size: f32.Sz(10, 10)}
	parent := &stubLayout{size: f32.Sz(50, 50)}
	a := &Arrangement{
		Layout: parent,
		Frame:  f32.Rect(0, 0, 50, 50),
		Sublayouts: []*Arrangement{{
			Layout: child,
			Frame:  f32.Rect(5, 5, 10, 10),
		}},
	}
	root := a.BindViews().(*stubView)
	if got := root.Frame(); got != a.Frame {
		t.Errorf("root frame %v, want %v", got, a.Frame)
	}
	if len(root.subs) != 1 {
		t.Fatalf("%d subviews, want 1", len(root.subs))
	}
	if parent.configured != 1 || child.configured != 1 {
		t.Errorf("configure counts %d/%d, want 1/1", parent.configured, child.configured)
	}
}
