// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/unit"
	"github.com/prelayout/prelayout/widget"
)

var (
	kindStyle  = lipgloss.NewStyle().Bold(true)
	frameStyle = lipgloss.NewStyle().Faint(true)
)

// RenderTree formats an arrangement tree, one node per line,
// indented by depth. On displays denser than one pixel per point the
// frame sizes are annotated with their device pixel extents.
func RenderTree(a *layout.Arrangement, m unit.Metric) string {
	var sb strings.Builder
	renderNode(&sb, a, m, 0)
	return sb.String()
}

func renderNode(sb *strings.Builder, a *layout.Arrangement, m unit.Metric, depth int) {
	f := a.Frame
	frame := fmt.Sprintf("(%g, %g) %g×%g", f.Min.X, f.Min.Y, f.Dx(), f.Dy())
	if m.PxPerPt > 1 {
		frame += fmt.Sprintf(" [%d×%d px]", m.Px(f.Dx()), m.Px(f.Dy()))
	}
	fmt.Fprintf(sb, "%s%s %s\n",
		strings.Repeat("  ", depth),
		kindStyle.Render(nodeName(a.Layout)),
		frameStyle.Render(frame),
	)
	for _, sub := range a.Sublayouts {
		renderNode(sb, sub, m, depth+1)
	}
}

func nodeName(l layout.Layout) string {
	switch n := l.(type) {
	case *widget.Button:
		return fmt.Sprintf("button[%s] %q", n.Type, n.Title.String())
	case *widget.Label:
		return fmt.Sprintf("label %q", n.Text.String())
	case *widget.Carousel:
		cs := n.ContentSize()
		return fmt.Sprintf("carousel (%d items, content %g×%g)", len(n.Items), cs.Width, cs.Height)
	case *widget.Inset:
		return "inset"
	default:
		return fmt.Sprintf("%T", l)
	}
}
