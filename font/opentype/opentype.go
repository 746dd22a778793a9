// SPDX-License-Identifier: Unlicense OR MIT

// Package opentype parses OpenType and TrueType font data into
// measurable faces.
package opentype

import (
	"fmt"

	"golang.org/x/image/font/opentype"

	"github.com/prelayout/prelayout/text"
)

// Typeface is a parsed font ready to produce faces at concrete
// sizes.
type Typeface struct {
	fnt *opentype.Font
}

// Parse the font data in src.
func Parse(src []byte) (*Typeface, error) {
	fnt, err := opentype.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("opentype: parse font: %w", err)
	}
	return &Typeface{fnt: fnt}, nil
}

// Face returns a face for measuring text at the given point size.
// One point maps to one pixel; display density is applied by the
// layout metric, not the face.
func (t *Typeface) Face(size float32) (text.Font, error) {
	face, err := opentype.NewFace(t.fnt, &opentype.FaceOptions{
		Size: float64(size),
		DPI:  72,
	})
	if err != nil {
		return text.Font{}, fmt.Errorf("opentype: create face: %w", err)
	}
	return text.Font{Face: face, Size: size}, nil
}
