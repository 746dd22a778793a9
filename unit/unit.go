// SPDX-License-Identifier: Unlicense OR MIT

/*
Package unit implements device pixel metrics.

A Metric converts between device independent points and the
physical pixels of a concrete display. Layout math runs in
points; rounding a measured extent up to the next physical
pixel boundary keeps frames from landing between pixels.
*/
package unit

import "math"

// Metric converts points to device pixels.
type Metric struct {
	// PxPerPt is the number of device pixels per point.
	// A zero PxPerPt is treated as 1.
	PxPerPt float32
}

// scale returns the effective pixel density.
func (m Metric) scale() float32 {
	if m.PxPerPt <= 0 {
		return 1
	}
	return m.PxPerPt
}

// Px converts a point value to a whole number of device pixels,
// rounding to nearest.
func (m Metric) Px(v float32) int {
	return int(math.Round(float64(v * m.scale())))
}

// CeilPt rounds v up to the nearest fractional point that falls on a
// device pixel boundary. At PxPerPt 2, 12.1 rounds to 12.5; at
// PxPerPt 1 it is an ordinary ceiling.
func (m Metric) CeilPt(v float32) float32 {
	s := float64(m.scale())
	return float32(math.Ceil(float64(v)*s) / s)
}
