// SPDX-License-Identifier: Unlicense OR MIT

/*
Package f32 is a float32 implementation of package image's
Point and Rectangle, extended with a Size type for layout
measurement.

The coordinate space has the origin in the top left
corner with the axes extending right and down.
*/
package f32

import "math"

// A Point is a two dimensional point.
type Point struct {
	X, Y float32
}

// A Size is a width and a height.
type Size struct {
	Width, Height float32
}

// A Rectangle contains the points (X, Y) where Min.X <= X < Max.X,
// Min.Y <= Y < Max.Y.
type Rectangle struct {
	Min, Max Point
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Sz is shorthand for Size{Width: w, Height: h}.
func Sz(w, h float32) Size {
	return Size{Width: w, Height: h}
}

// Rect is shorthand for a Rectangle with the given origin and size.
func Rect(x, y, w, h float32) Rectangle {
	return Rectangle{
		Min: Point{X: x, Y: y},
		Max: Point{X: x + w, Y: y + h},
	}
}

// Min returns the component-wise minimum of s and s2.
func (s Size) Min(s2 Size) Size {
	if s2.Width < s.Width {
		s.Width = s2.Width
	}
	if s2.Height < s.Height {
		s.Height = s2.Height
	}
	return s
}

// Max returns the component-wise maximum of s and s2.
func (s Size) Max(s2 Size) Size {
	if s2.Width > s.Width {
		s.Width = s2.Width
	}
	if s2.Height > s.Height {
		s.Height = s2.Height
	}
	return s
}

// Ceil rounds both dimensions up to the nearest integer.
func (s Size) Ceil() Size {
	return Size{
		Width:  float32(math.Ceil(float64(s.Width))),
		Height: float32(math.Ceil(float64(s.Height))),
	}
}

// Fits reports whether s is no larger than s2 in either dimension.
func (s Size) Fits(s2 Size) bool {
	return s.Width <= s2.Width && s.Height <= s2.Height
}

// Rect returns the rectangle with origin p and size s.
func (s Size) Rect(p Point) Rectangle {
	return Rectangle{
		Min: p,
		Max: Point{X: p.X + s.Width, Y: p.Y + s.Height},
	}
}

// Size returns r's width and height.
func (r Rectangle) Size() Size {
	return Size{Width: r.Dx(), Height: r.Dy()}
}

// Dx returns r's width.
func (r Rectangle) Dx() float32 {
	return r.Max.X - r.Min.X
}

// Dy returns r's height.
func (r Rectangle) Dy() float32 {
	return r.Max.Y - r.Min.Y
}

// Intersect returns the intersection of r and s.
func (r Rectangle) Intersect(s Rectangle) Rectangle {
	if r.Min.X < s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y < s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X > s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y > s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Union returns the union of r and s.
func (r Rectangle) Union(s Rectangle) Rectangle {
	if r.Min.X > s.Min.X {
		r.Min.X = s.Min.X
	}
	if r.Min.Y > s.Min.Y {
		r.Min.Y = s.Min.Y
	}
	if r.Max.X < s.Max.X {
		r.Max.X = s.Max.X
	}
	if r.Max.Y < s.Max.Y {
		r.Max.Y = s.Max.Y
	}
	return r
}

// Empty reports whether r represents the empty area.
func (r Rectangle) Empty() bool {
	return r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y
}

// Contains reports whether s lies entirely within r.
func (r Rectangle) Contains(s Rectangle) bool {
	return s.Min.X >= r.Min.X && s.Min.Y >= r.Min.Y &&
		s.Max.X <= r.Max.X && s.Max.Y <= r.Max.Y
}

// Add offsets r with the vector p.
func (r Rectangle) Add(p Point) Rectangle {
	return Rectangle{
		Point{r.Min.X + p.X, r.Min.Y + p.Y},
		Point{r.Max.X + p.X, r.Max.Y + p.Y},
	}
}
