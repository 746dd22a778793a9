// SPDX-License-Identifier: Unlicense OR MIT

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/prelayout/prelayout/f32"
	"github.com/prelayout/prelayout/text"
	"github.com/prelayout/prelayout/view"
	"github.com/prelayout/prelayout/widget"
)

func TestRunPreservesOrder(t *testing.T) {
	shaper := text.NewShaper()
	var reqs []Request
	for i := 0; i < 40; i++ {
		reqs = append(reqs, Request{
			Layout: &widget.Button{
				Type:   view.System,
				Title:  text.Plain(fmt.Sprintf("row %d", i)),
				Shaper: shaper,
			},
			Within: f32.Rect(0, float32(i)*44, 320, 44),
		})
	}
	r := &Runner{Workers: 4}
	arrs, err := r.Run(context.Background(), reqs)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(arrs) != len(reqs) {
		t.Fatalf("%d arrangements, want %d", len(arrs), len(reqs))
	}
	for i, a := range arrs {
		if a.Layout != reqs[i].Layout {
			t.Errorf("arrangement %d owned by the wrong layout", i)
		}
		if !reqs[i].Within.Contains(a.Frame) {
			t.Errorf("arrangement %d frame %v escapes %v", i, a.Frame, reqs[i].Within)
		}
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	r := &Runner{}
	reqs := []Request{{
		Layout: &widget.Button{Type: view.System, Title: text.Plain("x")},
		Within: f32.Rect(0, 0, 100, 44),
	}}
	if _, err := r.Run(ctx, reqs); !errors.Is(err, context.Canceled) {
		t.Errorf("Run after cancel returned %v, want context.Canceled", err)
	}
}

func TestRunEmptyBatch(t *testing.T) {
	r := &Runner{}
	arrs, err := r.Run(context.Background(), nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(arrs) != 0 {
		t.Errorf("%d arrangements, want 0", len(arrs))
	}
}
