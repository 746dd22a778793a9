// SPDX-License-Identifier: Unlicense OR MIT

// Package gofont exposes the built-in typefaces used for default
// widget fonts: the Go fonts from golang.org/x/image/font/gofont and
// Roboto Regular.
//
// See https://blog.golang.org/go-fonts for a description of the Go
// fonts.
package gofont

import (
	"fmt"
	"sync"

	"eliasnaur.com/font/roboto/robotoregular"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/prelayout/prelayout/font/opentype"
	"github.com/prelayout/prelayout/text"
)

var (
	once    sync.Once
	regular *opentype.Typeface
	medium  *opentype.Typeface
	roboto  *opentype.Typeface
)

func load() {
	once.Do(func() {
		regular = parse(goregular.TTF)
		medium = parse(gomedium.TTF)
		roboto = parse(robotoregular.TTF)
	})
}

func parse(ttf []byte) *opentype.Typeface {
	t, err := opentype.Parse(ttf)
	if err != nil {
		panic(fmt.Errorf("failed to parse font: %v", err))
	}
	return t
}

// Regular returns the Go regular face at the given point size.
func Regular(size float32) text.Font {
	load()
	return face(regular, size)
}

// Medium returns the Go medium face at the given point size.
func Medium(size float32) text.Font {
	load()
	return face(medium, size)
}

// Roboto returns the Roboto regular face at the given point size.
func Roboto(size float32) text.Font {
	load()
	return face(roboto, size)
}

func face(t *opentype.Typeface, size float32) text.Font {
	f, err := t.Face(size)
	if err != nil {
		panic(fmt.Errorf("failed to create face: %v", err))
	}
	return f
}
