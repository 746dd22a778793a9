// SPDX-License-Identifier: Unlicense OR MIT

package unit

import "testing"

func TestCeilPt(t *testing.T) {
	tests := []struct {
		scale float32
		v     float32
		want  float32
	}{
		{1, 12.1, 13},
		{1, 12, 12},
		{2, 12.1, 12.5},
		{2, 12.5, 12.5},
		{2, 12.6, 13},
		{3, 10.1, float32(10 + 1.0/3.0)},
		{0, 7.2, 8}, // zero scale behaves as 1
	}
	for _, test := range tests {
		m := Metric{PxPerPt: test.scale}
		if got := m.CeilPt(test.v); got != test.want {
			t.Errorf("Metric{%v}.CeilPt(%v) = %v, want %v", test.scale, test.v, got, test.want)
		}
	}
}

func TestPx(t *testing.T) {
	m := Metric{PxPerPt: 2}
	if got, want := m.Px(12.3), 25; got != want {
		t.Errorf("Px: got %v, want %v", got, want)
	}
}
