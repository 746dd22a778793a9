// SPDX-License-Identifier: Unlicense OR MIT

package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prelayout/prelayout/unit"
	"github.com/prelayout/prelayout/widget"
)

const sampleConfig = `
widths = [320, 414]
height = 480
family = "phone"
scale = 2

[root]
kind = "inset"
inset = 12

[root.child]
kind = "carousel"

[[root.child.items]]
kind = "button"
type = "system"
title = "One"
width = 120
height = 44

[[root.child.items]]
kind = "button"
type = "custom"
title = "Two"
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "layout.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Widths) != 2 || cfg.Widths[0] != 320 {
		t.Errorf("widths = %v, want [320 414]", cfg.Widths)
	}
	if got := cfg.Metric().PxPerPt; got != 2 {
		t.Errorf("metric scale = %v, want 2", got)
	}
	if cfg.Root.Kind != "inset" || cfg.Root.Child == nil {
		t.Fatalf("root decoded as %+v", cfg.Root)
	}
	if got := len(cfg.Root.Child.Items); got != 2 {
		t.Errorf("%d carousel items, want 2", got)
	}
}

func TestLoadConfigRejectsBadInput(t *testing.T) {
	tests := []struct {
		name, content string
	}{
		{"no widths", "height = 100\n[root]\nkind = \"label\"\n"},
		{"bad height", "widths = [100]\nheight = 0\n[root]\nkind = \"label\"\n"},
		{"bad family", "widths = [100]\nheight = 10\nfamily = \"watch\"\n[root]\nkind = \"label\"\n"},
		{"bad scale", "widths = [100]\nheight = 10\nscale = -1\n[root]\nkind = \"label\"\n"},
		{"bad toml", "widths = ["},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if _, err := LoadConfig(writeConfig(t, test.content)); err == nil {
				t.Error("LoadConfig accepted invalid config")
			}
		})
	}
}

func TestBuildTree(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, sampleConfig))
	if err != nil {
		t.Fatal(err)
	}
	root, err := cfg.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	in, ok := root.(*widget.Inset)
	if !ok {
		t.Fatalf("root built as %T, want *widget.Inset", root)
	}
	car, ok := in.Child.(*widget.Carousel)
	if !ok {
		t.Fatalf("child built as %T, want *widget.Carousel", in.Child)
	}
	if len(car.Items) != 2 {
		t.Errorf("%d pre-arranged items, want 2", len(car.Items))
	}
	if car.Items[1].Frame.Min.X != 120 {
		t.Errorf("second item starts at %v, want 120", car.Items[1].Frame.Min.X)
	}
	b, ok := car.Items[0].Layout.(*widget.Button)
	if !ok {
		t.Fatalf("first item built as %T, want *widget.Button", car.Items[0].Layout)
	}
	if b.Metric.PxPerPt != 2 {
		t.Errorf("button metric scale = %v, want 2", b.Metric.PxPerPt)
	}
}

func TestBuildRejectsUnknownKind(t *testing.T) {
	n := Node{Kind: "slider"}
	if _, err := n.build(widget.Platform{}, unit.Metric{}); err == nil {
		t.Error("build accepted unknown node kind")
	}
}
