// SPDX-License-Identifier: Unlicense OR MIT

package text

import (
	"strings"
	"sync"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/prelayout/prelayout/f32"
)

// Shaper measures text against a max-size budget. Font faces are not
// safe for concurrent use, so Shaper serializes access to them; a
// single Shaper may be shared by measurement passes running on
// multiple goroutines.
type Shaper struct {
	mu sync.Mutex
}

// NewShaper returns a Shaper ready for use.
func NewShaper() *Shaper {
	return new(Shaper)
}

// word is a wrappable unit together with the face that styles it.
type word struct {
	str  string
	font Font
}

// Measure returns the extent of t rendered with base within the
// budget. Lines wrap greedily at spaces to the budget width;
// maxLines caps the number of lines, zero meaning no limit. The
// result is fractional and clamped to within on both axes.
//
// Measurement degrades gracefully: unknown glyphs measure with the
// face's replacement glyph and a word wider than the budget is kept
// on its own line and clamped.
func (s *Shaper) Measure(t Text, base Font, within f32.Size, maxLines int) f32.Size {
	if !base.Valid() || t.Empty() {
		return f32.Size{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	maxW := fixed.I(int(within.Width))
	if within.Width <= 0 {
		// Degenerate budgets wrap nothing; the final clamp zeroes
		// the result.
		maxW = fixed.I(1 << 20)
	}

	var (
		width  fixed.Int26_6
		height float32
		lines  int
		off    int
	)
	for _, para := range strings.Split(t.String(), "\n") {
		pw, ph, pl := s.measureParagraph(t, base, para, off, maxW, maxLines, lines)
		if pw > width {
			width = pw
		}
		height += ph
		lines += pl
		off += len(para) + 1
		if maxLines > 0 && lines >= maxLines {
			break
		}
	}
	size := f32.Size{
		Width:  float32(width) / 64,
		Height: height,
	}
	return size.Min(within)
}

// measureParagraph wraps a single paragraph and returns its widest
// line, total height and line count. paraOff is the paragraph's byte
// offset into the backing store; used is the number of lines already
// consumed by earlier paragraphs.
func (s *Shaper) measureParagraph(t Text, base Font, para string, paraOff int, maxW fixed.Int26_6, maxLines, used int) (fixed.Int26_6, float32, int) {
	words := splitWords(t, base, para, paraOff)
	var (
		width   fixed.Int26_6
		height  float32
		lineW   fixed.Int26_6
		lineF   []Font
		lines   int
		flush   func()
		overrun = func() bool { return maxLines > 0 && used+lines >= maxLines }
	)
	flush = func() {
		if lineW > width {
			width = lineW
		}
		height += lineHeight(lineF, base)
		lines++
		lineW = 0
		lineF = lineF[:0]
	}
	for _, w := range words {
		ww := font.MeasureString(w.font.Face, w.str)
		sp := font.MeasureString(w.font.Face, " ")
		switch {
		case lineW == 0:
			lineW = ww
		case lineW+sp+ww > maxW:
			flush()
			if overrun() {
				return width, height, lines
			}
			lineW = ww
		default:
			lineW += sp + ww
		}
		lineF = append(lineF, w.font)
	}
	flush()
	return width, height, lines
}

// splitWords breaks a paragraph into wrappable words, attaching the
// attributed run font in effect at each word's start.
func splitWords(t Text, base Font, para string, off int) []word {
	var words []word
	attr := t.Attributed()
	for _, str := range strings.Split(para, " ") {
		if str != "" {
			f := base
			if attr != nil {
				f = attr.fontAt(off, base)
			}
			words = append(words, word{str: str, font: f})
		}
		off += len(str) + 1
	}
	if len(words) == 0 {
		// A paragraph of pure spaces still occupies a line.
		words = append(words, word{str: "", font: base})
	}
	return words
}

// lineHeight is the ascent plus descent of the tallest face on the
// line.
func lineHeight(fonts []Font, base Font) float32 {
	var h fixed.Int26_6
	if len(fonts) == 0 {
		fonts = []Font{base}
	}
	for _, f := range fonts {
		m := f.Face.Metrics()
		if lh := m.Ascent + m.Descent; lh > h {
			h = lh
		}
	}
	return float32(h) / 64
}
