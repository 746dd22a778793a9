// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/view"
)

// defaultShaper measures text for nodes that are not given one.
var defaultShaper = text.NewShaper()

// Label is a leaf node for static text.
type Label struct {
	// Text is the label content.
	Text text.Text

	// Font overrides the platform default face.
	Font text.Font

	// MaxLines limits the number of lines. Zero means no limit.
	MaxLines int

	// Platform selects the default font table. Zero is the current
	// Phone platform.
	Platform Platform

	// Align positions the measured size during arrangement. The
	// zero value is top leading.
	Align layout.Alignment

	// Flex is reported to parent layouts.
	Flex layout.Flexibility

	// Reuse keys view reuse. Empty disables reuse.
	Reuse string

	// Shaper measures the text. Nil uses a shared default.
	Shaper *text.Shaper

	// Configure runs last when the view is configured.
	Configure func(*view.Label)
}

func (l *Label) shaper() *text.Shaper {
	if l.Shaper != nil {
		return l.Shaper
	}
	return defaultShaper
}

func (l *Label) font() text.Font {
	if l.Font.Valid() {
		return l.Font
	}
	return l.Platform.labelFont()
}

// Measure implements layout.Measurable.
func (l *Label) Measure(within f32.Size) *layout.Measurement {
	size := l.shaper().Measure(l.Text, l.font(), within, l.MaxLines).Ceil().Min(within)
	return &layout.Measurement{Layout: l, Size: size, MaxSize: within}
}

// Arrange implements layout.Arrangeable.
func (l *Label) Arrange(within f32.Rectangle, m *layout.Measurement) *layout.Arrangement {
	return &layout.Arrangement{Layout: l, Frame: l.Align.Position(m.Size, within)}
}

// MakeView implements layout.ViewBinder.
func (l *Label) MakeView() layout.View {
	return view.NewLabel()
}

// ConfigureView implements layout.ViewBinder.
func (l *Label) ConfigureView(v layout.View) {
	lv := v.(*view.Label)
	lv.Font = l.Font
	lv.MaxLines = l.MaxLines
	if a := l.Text.Attributed(); a != nil {
		lv.Attributed = a
		lv.Text = ""
	} else {
		lv.Text = l.Text.String()
		lv.Attributed = nil
	}
	if l.Configure != nil {
		l.Configure(lv)
	}
}

// ReuseID implements layout.ViewBinder.
func (l *Label) ReuseID() string {
	return l.Reuse
}

// Flexibility implements layout.Layout.
func (l *Label) Flexibility() layout.Flexibility {
	return l.Flex
}
