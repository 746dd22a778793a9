// SPDX-License-Identifier: Unlicense OR MIT

// Package view provides retained-mode view handles that the binding
// layer configures and positions. They stand in for the platform's
// native widgets: layout nodes create and configure them, an
// external reuse layer keys them by the owning node's reuse ID.
//
// Views are not safe for concurrent use. All access belongs on the
// thread that owns the view hierarchy.
package view

import (
	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/text"
)

// Base implements the frame and subview bookkeeping shared by all
// views. Embed it to define a concrete view.
type Base struct {
	frame    f32.Rectangle
	subviews []layout.View
}

// Frame returns the view's rect in its parent's coordinate space.
func (b *Base) Frame() f32.Rectangle {
	return b.frame
}

// SetFrame places the view within its parent.
func (b *Base) SetFrame(f f32.Rectangle) {
	b.frame = f
}

// AddSubview appends v to the view's children.
func (b *Base) AddSubview(v layout.View) {
	b.subviews = append(b.subviews, v)
}

// Subviews returns the view's children in addition order.
func (b *Base) Subviews() []layout.View {
	return b.subviews
}

// ButtonType mirrors the closed set of native push-button styles.
type ButtonType uint8

const (
	Custom ButtonType = iota
	System
	ContactAdd
	InfoLight
	InfoDark
	DetailDisclosure
)

// IsIcon reports whether the type renders a fixed glyph instead of a
// bordered title.
func (t ButtonType) IsIcon() bool {
	switch t {
	case ContactAdd, InfoLight, InfoDark, DetailDisclosure:
		return true
	}
	return false
}

func (t ButtonType) String() string {
	switch t {
	case Custom:
		return "Custom"
	case System:
		return "System"
	case ContactAdd:
		return "ContactAdd"
	case InfoLight:
		return "InfoLight"
	case InfoDark:
		return "InfoDark"
	case DetailDisclosure:
		return "DetailDisclosure"
	default:
		panic("unreachable")
	}
}

// Button is a push-button handle.
type Button struct {
	Base

	// Type is fixed at creation, like the native widget's.
	Type ButtonType

	// Title holds the plain title; AttributedTitle the rich one.
	// Setting one clears the other.
	Title           string
	AttributedTitle *text.Attributed

	// Font is the title font, if set.
	Font text.Font
}

// NewButton returns a button of the given type.
func NewButton(t ButtonType) *Button {
	return &Button{Type: t}
}

// SetTitle sets a plain title, clearing any attributed title.
func (b *Button) SetTitle(s string) {
	b.Title = s
	b.AttributedTitle = nil
}

// SetAttributedTitle sets a rich title, clearing any plain title.
func (b *Button) SetAttributedTitle(a *text.Attributed) {
	b.AttributedTitle = a
	b.Title = ""
}

// Label is a static text handle.
type Label struct {
	Base

	Text       string
	Attributed *text.Attributed
	Font       text.Font
	MaxLines   int
}

// NewLabel returns an empty label.
func NewLabel() *Label {
	return new(Label)
}

// Container is a plain view that only hosts subviews.
type Container struct {
	Base
}

// NewContainer returns an empty container.
func NewContainer() *Container {
	return new(Container)
}

// ScrollContainer is a horizontally scrolling item container. Its
// item views are built lazily by an external scrolling-list engine;
// the container itself only carries the scrolling configuration.
type ScrollContainer struct {
	Base

	// ShowsCrossAxisIndicator toggles the scroll indicator on the
	// non-scrolling axis.
	ShowsCrossAxisIndicator bool

	// DelaysContentTouches postpones touch delivery while a scroll
	// may be starting. Disabled containers deliver taps immediately.
	DelaysContentTouches bool
}

// NewScrollContainer returns a container with the native defaults:
// indicators shown and touch delivery delayed.
func NewScrollContainer() *ScrollContainer {
	return &ScrollContainer{
		ShowsCrossAxisIndicator: true,
		DelaysContentTouches:    true,
	}
}
