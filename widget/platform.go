// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/font/gofont"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/view"
)

// Family selects a platform constant table. Widget sizing quirks are
// reproduced from per-family lookup tables instead of querying a
// live widget, which keeps measurement pure.
type Family uint8

const (
	// Phone is the compact touch family.
	Phone Family = iota
	// TV is the remote-control family with larger default metrics.
	TV
)

// Platform identifies the platform revision widgets measure
// against. The zero value is the current Phone platform.
type Platform struct {
	Family Family
	// Version is the platform revision. Zero means current.
	Version int
}

// currentVersion stands in for the newest supported revision.
const currentVersion = 17

// customAsSystemBefore is the revision below which Custom buttons
// measure like System buttons. Kept for parity with the historical
// widget behavior on old revisions.
const customAsSystemBefore = 9

func (p Platform) version() int {
	if p.Version == 0 {
		return currentVersion
	}
	return p.Version
}

// customActsAsSystem reports whether the revision predates separate
// Custom sizing.
func (p Platform) customActsAsSystem() bool {
	return p.version() < customAsSystemBefore
}

// buttonMetrics is one family's button sizing table.
type buttonMetrics struct {
	// minWidth floors the width of titled button types.
	minWidth float32
	// systemHPad is added to the title width of System buttons.
	systemHPad float32
	// vPad is added to the title height of Custom and System
	// buttons.
	vPad float32
	// iconSize is the fixed glyph extent of icon button types.
	iconSize f32.Size
	// iconVPadEmpty and iconVPadTitled are added to the icon height
	// depending on whether the title is empty.
	iconVPadEmpty  float32
	iconVPadTitled float32
}

var buttonTables = [...]buttonMetrics{
	Phone: {
		minWidth:       30,
		systemHPad:     30,
		vPad:           12,
		iconSize:       f32.Sz(22, 22),
		iconVPadEmpty:  0,
		iconVPadTitled: 15,
	},
	TV: {
		minWidth:       30,
		systemHPad:     80,
		vPad:           30,
		iconSize:       f32.Sz(37, 37),
		iconVPadEmpty:  0,
		iconVPadTitled: 20,
	},
}

// metrics returns the family's button table.
func (p Platform) metrics() buttonMetrics {
	if int(p.Family) < len(buttonTables) {
		return buttonTables[p.Family]
	}
	return buttonTables[Phone]
}

// systemFont is the face System buttons measure with by default.
// Icon types always use it, even when a custom font is configured.
func (p Platform) systemFont() text.Font {
	if p.Family == TV {
		return gofont.Medium(38)
	}
	return gofont.Roboto(15)
}

// buttonFont is the default measurement face for the button type.
func (p Platform) buttonFont(t view.ButtonType) text.Font {
	if t == view.Custom && p.Family == Phone {
		return gofont.Regular(18)
	}
	return p.systemFont()
}

// labelFont is the default face of Label nodes.
func (p Platform) labelFont() text.Font {
	if p.Family == TV {
		return gofont.Medium(29)
	}
	return gofont.Regular(17)
}
