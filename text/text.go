// SPDX-License-Identifier: Unlicense OR MIT

// Package text provides the text content model and the measurement
// service shared by all text-bearing layout nodes.
package text

import (
	"golang.org/x/image/font"
)

// Font is a sized typeface. The zero Font is unset.
type Font struct {
	// Face is the concrete face, created at Size.
	Face font.Face
	// Size is the point size Face was created at.
	Size float32
}

// Valid reports whether the font carries a face.
func (f Font) Valid() bool {
	return f.Face != nil
}

// A Run styles a half-open byte range [Start, End) of an attributed
// string. A zero Font leaves the base font in effect.
type Run struct {
	Start, End int
	Font       Font
}

// Attributed is a string with styled runs.
type Attributed struct {
	// String is the backing store.
	String string
	// Runs hold the style spans, non-overlapping and in order.
	Runs []Run
}

// Text is the content of a text-bearing layout node. It is a tagged
// union: exactly one of the plain string or the attributed string is
// populated.
type Text struct {
	plain string
	attr  *Attributed
}

// Plain returns the plain-string variant of Text.
func Plain(s string) Text {
	return Text{plain: s}
}

// Rich returns the attributed variant of Text.
func Rich(a *Attributed) Text {
	return Text{attr: a}
}

// IsAttributed reports whether the attributed variant is populated.
func (t Text) IsAttributed() bool {
	return t.attr != nil
}

// Attributed returns the attributed string, or nil for the plain
// variant.
func (t Text) Attributed() *Attributed {
	return t.attr
}

// String returns the backing store of either variant.
func (t Text) String() string {
	if t.attr != nil {
		return t.attr.String
	}
	return t.plain
}

// Empty reports whether the backing store is empty.
func (t Text) Empty() bool {
	return t.String() == ""
}

// fontAt returns the font in effect at byte offset i, falling back
// to base.
func (a *Attributed) fontAt(i int, base Font) Font {
	for _, r := range a.Runs {
		if i >= r.Start && i < r.End && r.Font.Valid() {
			return r.Font
		}
	}
	return base
}
