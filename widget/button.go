// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"math"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/unit"
	"github.com/prelayout/prelayout/view"
)

// Button is a leaf node that measures and arranges as a native
// push-button. The per-type sizing formulas and padding tables in
// platform.go reproduce the native widget's intrinsic content size,
// including its empty-title behavior: a button with an empty title
// still reports the height of a single space, with width zero.
type Button struct {
	// Type selects the native button style and its sizing table.
	Type view.ButtonType

	// Title is the button text, plain or attributed.
	Title text.Text

	// Font overrides the default measurement face. Icon types
	// ignore it and always measure with the platform system font.
	Font text.Font

	// Platform selects the constant tables. Zero is the current
	// Phone platform.
	Platform Platform

	// Metric rounds attributed title heights to device pixel
	// boundaries. The zero Metric rounds to whole points.
	Metric unit.Metric

	// Align positions the measured size during arrangement. The
	// zero value is top leading.
	Align layout.Alignment

	// Flex is reported to parent layouts.
	Flex layout.Flexibility

	// Reuse keys view reuse. Empty disables reuse.
	Reuse string

	// Shaper measures the title. Nil uses a shared default.
	Shaper *text.Shaper

	// Configure runs last when the view is configured.
	Configure func(*view.Button)
}

func (b *Button) shaper() *text.Shaper {
	if b.Shaper != nil {
		return b.Shaper
	}
	return defaultShaper
}

// measurementFont resolves the face the title is measured with.
// Icon types use the fixed system face; otherwise a configured font
// wins over the per-type platform default.
func (b *Button) measurementFont() text.Font {
	if b.Type.IsIcon() {
		return b.Platform.systemFont()
	}
	if b.Font.Valid() {
		return b.Font
	}
	return b.Platform.buttonFont(b.Type)
}

// Measure implements layout.Measurable.
func (b *Button) Measure(within f32.Size) *layout.Measurement {
	return &layout.Measurement{Layout: b, Size: b.sizeOf(within), MaxSize: within}
}

// sizeOf computes the intrinsic size of the button within the
// budget.
func (b *Button) sizeOf(within f32.Size) f32.Size {
	empty := b.Title.Empty()
	title := b.Title
	if empty {
		// Native buttons keep their height with no title. Measure a
		// single space for the height; the width is forced to zero
		// below.
		title = text.Plain(" ")
	}
	ts := b.shaper().Measure(title, b.measurementFont(), within, 0)

	m := b.Platform.metrics()
	var size f32.Size
	switch {
	case b.Type.IsIcon():
		pad := m.iconVPadEmpty
		if !empty {
			pad = m.iconVPadTitled
		}
		size.Width = ceil(m.iconSize.Width + ts.Width)
		size.Height = m.iconSize.Height + pad
	case b.Type == view.Custom && !b.Platform.customActsAsSystem():
		size.Width = maxf(ceil(ts.Width), m.minWidth)
		size.Height = b.roundHeight(ts.Height + m.vPad)
	default:
		size.Width = maxf(ceil(ts.Width+m.systemHPad), m.minWidth)
		size.Height = b.roundHeight(ts.Height + m.vPad)
	}
	if empty {
		size.Width = 0
	}
	return size.Min(within)
}

// roundHeight rounds a padded title height up. Attributed titles
// round to the next device pixel boundary; plain titles to the next
// whole point.
func (b *Button) roundHeight(h float32) float32 {
	if b.Title.IsAttributed() && !b.Title.Empty() {
		return b.Metric.CeilPt(h)
	}
	return ceil(h)
}

// Arrange implements layout.Arrangeable.
func (b *Button) Arrange(within f32.Rectangle, m *layout.Measurement) *layout.Arrangement {
	return &layout.Arrangement{Layout: b, Frame: b.Align.Position(m.Size, within)}
}

// MakeView implements layout.ViewBinder.
func (b *Button) MakeView() layout.View {
	return view.NewButton(b.Type)
}

// ConfigureView implements layout.ViewBinder.
func (b *Button) ConfigureView(v layout.View) {
	bv := v.(*view.Button)
	bv.Font = b.Font
	if a := b.Title.Attributed(); a != nil {
		bv.SetAttributedTitle(a)
	} else {
		bv.SetTitle(b.Title.String())
	}
	if b.Configure != nil {
		b.Configure(bv)
	}
}

// ReuseID implements layout.ViewBinder.
func (b *Button) ReuseID() string {
	return b.Reuse
}

// Flexibility implements layout.Layout.
func (b *Button) Flexibility() layout.Flexibility {
	return b.Flex
}

func ceil(v float32) float32 {
	return float32(math.Ceil(float64(v)))
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}
