// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"math"

	"github.com/prelayout/prelayout/f32"
)

// Axis is the Horizontal or Vertical direction.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// AxisAlignment positions a length within an available extent on a
// single axis.
type AxisAlignment uint8

const (
	// Leading aligns to the minimum edge.
	Leading AxisAlignment = iota
	// Middle centers in the available extent.
	Middle
	// Trailing aligns to the maximum edge.
	Trailing
	// Stretch expands to the full available extent.
	Stretch
)

// Alignment positions a measured size within an available rect.
// It is a pure policy: Position never mutates and never produces a
// frame larger than the size it is given, except on a Stretch axis
// where the frame takes the rect's full extent.
type Alignment struct {
	Vertical, Horizontal AxisAlignment
}

// Common alignments.
var (
	Fill           = Alignment{Stretch, Stretch}
	Center         = Alignment{Middle, Middle}
	TopLeading     = Alignment{Leading, Leading}
	TopCenter      = Alignment{Leading, Middle}
	TopTrailing    = Alignment{Leading, Trailing}
	TopFill        = Alignment{Leading, Stretch}
	BottomLeading  = Alignment{Trailing, Leading}
	BottomCenter   = Alignment{Trailing, Middle}
	BottomTrailing = Alignment{Trailing, Trailing}
	BottomFill     = Alignment{Trailing, Stretch}
	CenterLeading  = Alignment{Middle, Leading}
	CenterTrailing = Alignment{Middle, Trailing}
	FillLeading    = Alignment{Stretch, Leading}
	FillCenter     = Alignment{Stretch, Middle}
	FillTrailing   = Alignment{Stretch, Trailing}
)

// Position places size within rect according to the alignment.
func (a Alignment) Position(size f32.Size, within f32.Rectangle) f32.Rectangle {
	x, w := alignSpan(a.Horizontal, size.Width, within.Min.X, within.Dx())
	y, h := alignSpan(a.Vertical, size.Height, within.Min.Y, within.Dy())
	return f32.Rect(x, y, w, h)
}

func alignSpan(a AxisAlignment, length, min, avail float32) (origin, extent float32) {
	switch a {
	case Middle:
		return min + (avail-length)/2, length
	case Trailing:
		return min + avail - length, length
	case Stretch:
		return min, avail
	default:
		return min, length
	}
}

func (a AxisAlignment) String() string {
	switch a {
	case Leading:
		return "Leading"
	case Middle:
		return "Middle"
	case Trailing:
		return "Trailing"
	case Stretch:
		return "Stretch"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// Priority orders layouts competing for space. Higher priorities
// shrink last and grow first.
type Priority int32

const (
	// Inflexible marks an axis whose measured size must not change.
	Inflexible Priority = math.MinInt32
	// PriorityLow yields space before default-priority siblings.
	PriorityLow Priority = -1000
	// PriorityDefault is the priority of the zero Flexibility.
	PriorityDefault Priority = 0
	// PriorityHigh claims space before default-priority siblings.
	PriorityHigh Priority = 1000
	// PriorityMax absorbs all slack before any sibling.
	PriorityMax Priority = math.MaxInt32
)

// Flexibility is a node's per-axis space priority. Parent layouts
// use it to decide how to distribute slack or shrink children; leaf
// nodes report it without consuming it. The zero value is default
// flexibility on both axes.
type Flexibility struct {
	Horizontal, Vertical Priority
}

// Common flexibilities.
var (
	FlexDefault    = Flexibility{}
	FlexLow        = Flexibility{PriorityLow, PriorityLow}
	FlexHigh       = Flexibility{PriorityHigh, PriorityHigh}
	FlexMax        = Flexibility{PriorityMax, PriorityMax}
	FlexInflexible = Flexibility{Inflexible, Inflexible}
)

// Priority returns the priority for the given axis.
func (f Flexibility) Priority(axis Axis) Priority {
	if axis == Horizontal {
		return f.Horizontal
	}
	return f.Vertical
}

// IsFlexible reports whether the axis may deviate from its measured
// size.
func (f Flexibility) IsFlexible(axis Axis) bool {
	return f.Priority(axis) != Inflexible
}
