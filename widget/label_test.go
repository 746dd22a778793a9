// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/view"
)

func TestLabelClamp(t *testing.T) {
	l := &Label{Text: text.Plain("some wrapping label text")}
	budgets := []f32.Size{
		{Width: 0, Height: 0},
		{Width: 40, Height: 1e6},
		{Width: 1e6, Height: 8},
	}
	for _, within := range budgets {
		m := l.Measure(within)
		if !m.Size.Fits(within) {
			t.Errorf("within %v: size %v exceeds budget", within, m.Size)
		}
	}
}

func TestLabelWholePointSize(t *testing.T) {
	l := &Label{Text: text.Plain("abc")}
	m := l.Measure(unbounded)
	if m.Size != m.Size.Ceil() {
		t.Errorf("label size %v is not whole points", m.Size)
	}
}

func TestLabelConfigureIdempotent(t *testing.T) {
	l := &Label{Text: text.Plain("caption"), MaxLines: 2}
	once := l.MakeView()
	l.ConfigureView(once)
	twice := l.MakeView()
	l.ConfigureView(twice)
	l.ConfigureView(twice)
	if diff := cmp.Diff(once, twice, cmpopts.IgnoreUnexported(view.Base{})); diff != "" {
		t.Errorf("double configure diverged (-once +twice):\n%s", diff)
	}
}

func TestLabelConfigureSetsVariant(t *testing.T) {
	attr := &text.Attributed{String: "rich"}
	l := &Label{Text: text.Rich(attr)}
	v := l.MakeView().(*view.Label)
	l.ConfigureView(v)
	if v.Attributed != attr || v.Text != "" {
		t.Errorf("configured view %+v, want attributed variant only", v)
	}
}
