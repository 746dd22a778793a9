// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/view"
)

// ScrollEngine is the external scrolling-list collaborator backing a
// Carousel. It lays out item views lazily as they scroll into view
// and manages the container's item data source.
type ScrollEngine interface {
	// Attach configures a freshly made container to scroll with the
	// engine.
	Attach(*view.ScrollContainer)

	// Reload hands the engine the pre-arranged item groups to
	// (re)bind. The engine builds or reuses item views on demand.
	Reload(items []*layout.Arrangement)
}

// Carousel is a composite node wrapping a horizontally scrolling
// strip of pre-arranged items. The items are laid out by the
// ScrollEngine, not by this node: the carousel only sizes itself to
// the tallest item and the full available width, and hands the item
// arrangements to the engine when its view is configured.
//
// The caller must keep the Carousel alive for as long as the
// produced view is in use. The view's item data source is supplied
// through the engine by this node; if the node is released, item
// views lose their backing data on reuse.
type Carousel struct {
	// Engine is the scrolling collaborator. Required for view
	// binding; measurement works without it.
	Engine ScrollEngine

	// Items are the pre-arranged item groups, in display order.
	Items []*layout.Arrangement

	// Align positions the measured size during arrangement. The
	// zero value is top leading.
	Align layout.Alignment

	// Flex is reported to parent layouts.
	Flex layout.Flexibility

	// Reuse keys view reuse. Empty disables reuse.
	Reuse string

	// Configure runs last when the view is configured.
	Configure func(*view.ScrollContainer)
}

// Measure implements layout.Measurable. The carousel claims the
// full width of the budget and the height of its tallest item. The
// items are pre-arranged, so no sublayout measurements are
// produced.
func (c *Carousel) Measure(within f32.Size) *layout.Measurement {
	var height float32
	for _, item := range c.Items {
		if h := item.Frame.Dy(); h > height {
			height = h
		}
	}
	size := f32.Sz(within.Width, height).Min(within)
	return &layout.Measurement{Layout: c, Size: size, MaxSize: within}
}

// ContentSize returns the extent of the scrollable content: the
// bounds of all pre-arranged item frames, measured from the content
// origin. Scroll engines size the container's content with it.
func (c *Carousel) ContentSize() f32.Size {
	if len(c.Items) == 0 {
		return f32.Size{}
	}
	bounds := c.Items[0].Frame
	for _, item := range c.Items[1:] {
		bounds = bounds.Union(item.Frame)
	}
	return f32.Sz(bounds.Max.X, bounds.Max.Y)
}

// Visible returns the items whose frames intersect the container's
// viewport, in display order. bounds is the container's visible rect
// in its own coordinate space and offset its current content offset.
// Scroll engines use it to realize only on-screen item views.
func (c *Carousel) Visible(bounds f32.Rectangle, offset f32.Point) []*layout.Arrangement {
	viewport := bounds.Add(offset)
	var vis []*layout.Arrangement
	for _, item := range c.Items {
		if !item.Frame.Intersect(viewport).Empty() {
			vis = append(vis, item)
		}
	}
	return vis
}

// Arrange implements layout.Arrangeable. The item arrangements are
// consumed by the scroll engine, not walked by the arrangement
// tree, so the result has no sublayout arrangements.
func (c *Carousel) Arrange(within f32.Rectangle, m *layout.Measurement) *layout.Arrangement {
	return &layout.Arrangement{Layout: c, Frame: c.Align.Position(m.Size, within)}
}

// MakeView implements layout.ViewBinder. The container scrolls on
// one axis only, and taps register immediately instead of waiting
// out the scroll-start delay.
func (c *Carousel) MakeView() layout.View {
	sc := view.NewScrollContainer()
	sc.ShowsCrossAxisIndicator = false
	sc.DelaysContentTouches = false
	if c.Engine != nil {
		c.Engine.Attach(sc)
	}
	return sc
}

// ConfigureView implements layout.ViewBinder.
func (c *Carousel) ConfigureView(v layout.View) {
	sc := v.(*view.ScrollContainer)
	if c.Engine != nil {
		c.Engine.Reload(c.Items)
	}
	if c.Configure != nil {
		c.Configure(sc)
	}
}

// ReuseID implements layout.ViewBinder.
func (c *Carousel) ReuseID() string {
	return c.Reuse
}

// Flexibility implements layout.Layout.
func (c *Carousel) Flexibility() layout.Flexibility {
	return c.Flex
}
