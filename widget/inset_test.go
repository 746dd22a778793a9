// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/view"
)

func TestInsetMeasureRecursion(t *testing.T) {
	child := &Button{Type: view.System, Title: text.Plain("OK")}
	in := UniformInset(10, child)
	within := f32.Sz(200, 100)
	m := in.Measure(within)
	if len(m.Sublayouts) != 1 {
		t.Fatalf("%d sublayout measurements, want 1", len(m.Sublayouts))
	}
	sub := m.Sublayouts[0]
	if got, want := sub.MaxSize, f32.Sz(180, 80); got != want {
		t.Errorf("child budget %v, want %v", got, want)
	}
	want := f32.Sz(sub.Size.Width+20, sub.Size.Height+20).Min(within)
	if m.Size != want {
		t.Errorf("inset size %v, want %v", m.Size, want)
	}
}

func TestInsetDegenerateBudget(t *testing.T) {
	child := &Button{Type: view.System, Title: text.Plain("OK")}
	in := UniformInset(50, child)
	within := f32.Sz(60, 40)
	m := in.Measure(within)
	if !m.Size.Fits(within) {
		t.Errorf("size %v exceeds budget %v", m.Size, within)
	}
	if got, want := m.Sublayouts[0].MaxSize, f32.Sz(0, 0); got != want {
		t.Errorf("child budget %v, want %v", got, want)
	}
}

func TestInsetArrangePlacesChild(t *testing.T) {
	child := &Button{Type: view.System, Title: text.Plain("OK")}
	in := &Inset{Top: 5, Right: 10, Bottom: 15, Left: 20, Child: child}
	r := f32.Rect(0, 0, 200, 100)
	a := layout.Compute(in, r)
	if len(a.Sublayouts) != 1 {
		t.Fatalf("%d sublayout arrangements, want 1", len(a.Sublayouts))
	}
	inner := f32.Rect(20, 5, a.Frame.Dx()-30, a.Frame.Dy()-20)
	if got := a.Sublayouts[0].Frame; !inner.Contains(got) {
		t.Errorf("child frame %v escapes inset interior %v", got, inner)
	}
}

func TestInsetBindViews(t *testing.T) {
	child := &Button{Type: view.System, Title: text.Plain("OK")}
	in := UniformInset(8, child)
	a := layout.Compute(in, f32.Rect(0, 0, 200, 100))
	root := a.BindViews()
	c, ok := root.(*view.Container)
	if !ok {
		t.Fatalf("root view is %T, want *view.Container", root)
	}
	if got := c.Frame(); got != a.Frame {
		t.Errorf("root frame %v, want %v", got, a.Frame)
	}
	subs := c.Subviews()
	if len(subs) != 1 {
		t.Fatalf("%d subviews, want 1", len(subs))
	}
	b, ok := subs[0].(*view.Button)
	if !ok {
		t.Fatalf("subview is %T, want *view.Button", subs[0])
	}
	if b.Title != "OK" {
		t.Errorf("button title %q, want %q", b.Title, "OK")
	}
}

func TestInsetFlexibilityPassesThrough(t *testing.T) {
	child := &Button{Type: view.System, Title: text.Plain("OK"), Flex: layout.FlexHigh}
	in := UniformInset(4, child)
	if got := in.Flexibility(); got != layout.FlexHigh {
		t.Errorf("flexibility %+v, want %+v", got, layout.FlexHigh)
	}
}
