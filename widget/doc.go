// SPDX-License-Identifier: Unlicense OR MIT

// Package widget implements the layout node kinds: leaf nodes that
// reproduce native widget sizing (Label, Button), the scrolling
// Carousel composite, and the Inset wrapper.
//
// Nodes are value-configured structs. Their Measure and Arrange
// methods are pure and may run on any goroutine; MakeView and
// ConfigureView belong on the thread that owns the view hierarchy.
package widget
