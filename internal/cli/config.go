// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"golang.org/x/exp/slices"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/font/gofont"
	"github.com/prelayout/prelayout/layout"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/unit"
	"github.com/prelayout/prelayout/view"
	"github.com/prelayout/prelayout/widget"
)

// Config describes a layout tree and the budgets to compute it in.
type Config struct {
	// Widths are the budget widths to lay the tree out at.
	Widths []float32 `toml:"widths"`

	// Height is the budget height shared by all widths.
	Height float32 `toml:"height"`

	// Family selects the platform constant tables: "phone" or "tv".
	// Empty means phone.
	Family string `toml:"family"`

	// Scale is the display density in device pixels per point. Zero
	// means 1.
	Scale float32 `toml:"scale"`

	// Root is the tree to compute.
	Root Node `toml:"root"`
}

// Node describes one layout node. Kind selects the node type; the
// remaining fields apply to the kinds that use them.
type Node struct {
	Kind string `toml:"kind"`

	// Button and label fields.
	Type     string  `toml:"type"`
	Title    string  `toml:"title"`
	Size     float32 `toml:"size"`
	Align    string  `toml:"align"`
	MaxLines int     `toml:"maxlines"`

	// Inset fields.
	Inset float32 `toml:"inset"`
	Child *Node   `toml:"child"`

	// Carousel fields. Items are pre-arranged side by side, each in
	// its own width × height cell.
	Items  []Node  `toml:"items"`
	Width  float32 `toml:"width"`
	Height float32 `toml:"height"`
}

var families = []string{"", "phone", "tv"}

// LoadConfig reads and validates a config file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if len(c.Widths) == 0 {
		return fmt.Errorf("no widths given")
	}
	if c.Height <= 0 {
		return fmt.Errorf("height must be positive, got %v", c.Height)
	}
	if !slices.Contains(families, c.Family) {
		return fmt.Errorf("unknown family %q", c.Family)
	}
	if c.Scale < 0 {
		return fmt.Errorf("scale must not be negative, got %v", c.Scale)
	}
	return nil
}

// Platform returns the platform the config selects.
func (c *Config) Platform() widget.Platform {
	if c.Family == "tv" {
		return widget.Platform{Family: widget.TV}
	}
	return widget.Platform{}
}

// Metric returns the pixel metric the config selects.
func (c *Config) Metric() unit.Metric {
	return unit.Metric{PxPerPt: c.Scale}
}

// Build converts the root node description into a layout tree.
func (c *Config) Build() (layout.Layout, error) {
	return c.Root.build(c.Platform(), c.Metric())
}

var buttonTypes = map[string]view.ButtonType{
	"":                 view.System,
	"custom":           view.Custom,
	"system":           view.System,
	"contactAdd":       view.ContactAdd,
	"infoLight":        view.InfoLight,
	"infoDark":         view.InfoDark,
	"detailDisclosure": view.DetailDisclosure,
}

var alignments = map[string]layout.Alignment{
	"":               layout.TopLeading,
	"fill":           layout.Fill,
	"center":         layout.Center,
	"topLeading":     layout.TopLeading,
	"topCenter":      layout.TopCenter,
	"topTrailing":    layout.TopTrailing,
	"topFill":        layout.TopFill,
	"bottomLeading":  layout.BottomLeading,
	"bottomCenter":   layout.BottomCenter,
	"bottomTrailing": layout.BottomTrailing,
	"bottomFill":     layout.BottomFill,
	"centerLeading":  layout.CenterLeading,
	"centerTrailing": layout.CenterTrailing,
	"fillLeading":    layout.FillLeading,
	"fillCenter":     layout.FillCenter,
	"fillTrailing":   layout.FillTrailing,
}

func (n *Node) build(p widget.Platform, m unit.Metric) (layout.Layout, error) {
	align, ok := alignments[n.Align]
	if !ok {
		return nil, fmt.Errorf("unknown alignment %q", n.Align)
	}
	switch n.Kind {
	case "button":
		typ, ok := buttonTypes[n.Type]
		if !ok {
			return nil, fmt.Errorf("unknown button type %q", n.Type)
		}
		b := &widget.Button{
			Type:     typ,
			Title:    text.Plain(n.Title),
			Platform: p,
			Metric:   m,
			Align:    align,
		}
		if n.Size > 0 {
			b.Font = gofont.Regular(n.Size)
		}
		return b, nil
	case "label":
		l := &widget.Label{
			Text:     text.Plain(n.Title),
			Platform: p,
			Align:    align,
			MaxLines: n.MaxLines,
		}
		if n.Size > 0 {
			l.Font = gofont.Regular(n.Size)
		}
		return l, nil
	case "inset":
		if n.Child == nil {
			return nil, fmt.Errorf("inset node needs a child")
		}
		child, err := n.Child.build(p, m)
		if err != nil {
			return nil, err
		}
		return widget.UniformInset(n.Inset, child), nil
	case "carousel":
		items, err := n.buildItems(p, m)
		if err != nil {
			return nil, err
		}
		return &widget.Carousel{Items: items, Align: align}, nil
	default:
		return nil, fmt.Errorf("unknown node kind %q", n.Kind)
	}
}

// buildItems pre-arranges the carousel items side by side, each in
// its own cell.
func (n *Node) buildItems(p widget.Platform, m unit.Metric) ([]*layout.Arrangement, error) {
	var (
		items []*layout.Arrangement
		x     float32
	)
	for i := range n.Items {
		item := &n.Items[i]
		w, h := item.Width, item.Height
		if w <= 0 {
			w = 100
		}
		if h <= 0 {
			h = 44
		}
		l, err := item.build(p, m)
		if err != nil {
			return nil, fmt.Errorf("carousel item %d: %w", i, err)
		}
		items = append(items, layout.Compute(l, f32.Rect(x, 0, w, h)))
		x += w
	}
	return items, nil
}
