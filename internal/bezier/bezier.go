// seehuhn.de/go/raster - a 2D rendering library
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package bezier implements the quadratic and cubic Bézier kernel: point
// evaluation, dense sampling, de Casteljau splitting, and tangent
// (derivative) evaluation. These are the only curved primitives the
// pipeline deals with; elliptical arcs are rejected earlier, at input
// validation (spec 4.3).
package bezier

import "kittycad.io/pathregions/internal/geom"

// Quad is a quadratic Bézier curve with control points P0, P1, P2.
type Quad struct {
	P0, P1, P2 geom.Point
}

// Cubic is a cubic Bézier curve with control points P0, P1, P2, P3.
type Cubic struct {
	P0, P1, P2, P3 geom.Point
}

// Evaluate returns the point at parameter t using the quadratic Bernstein
// form (1-t)^2*P0 + 2(1-t)t*P1 + t^2*P2.
func (q Quad) Evaluate(t float64) geom.Point {
	u := 1 - t
	a := u * u
	b := 2 * u * t
	c := t * t
	return geom.Point{
		X: a*q.P0.X + b*q.P1.X + c*q.P2.X,
		Y: a*q.P0.Y + b*q.P1.Y + c*q.P2.Y,
	}
}

// Evaluate returns the point at parameter t using the cubic Bernstein form.
func (c Cubic) Evaluate(t float64) geom.Point {
	u := 1 - t
	a := u * u * u
	b := 3 * u * u * t
	cc := 3 * u * t * t
	d := t * t * t
	return geom.Point{
		X: a*c.P0.X + b*c.P1.X + cc*c.P2.X + d*c.P3.X,
		Y: a*c.P0.Y + b*c.P1.Y + cc*c.P2.Y + d*c.P3.Y,
	}
}

// Tangent returns the (unnormalized) derivative direction at t, used for
// angular ordering of half-edges at a shared vertex (spec 4.7).
func (q Quad) Tangent(t float64) geom.Point {
	u := 1 - t
	d1 := q.P1.Sub(q.P0).Mul(2 * u)
	d2 := q.P2.Sub(q.P1).Mul(2 * t)
	return d1.Add(d2)
}

// Tangent returns the (unnormalized) derivative direction at t.
func (c Cubic) Tangent(t float64) geom.Point {
	u := 1 - t
	d1 := c.P1.Sub(c.P0).Mul(3 * u * u)
	d2 := c.P2.Sub(c.P1).Mul(6 * u * t)
	d3 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d1.Add(d2).Add(d3)
}

// Sample returns n inclusive points at uniform t, from P0 (t=0) to the
// endpoint (t=1).
func (q Quad) Sample(n int) []geom.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = q.Evaluate(t)
	}
	return pts
}

// Sample returns n inclusive points at uniform t.
func (c Cubic) Sample(n int) []geom.Point {
	if n < 2 {
		n = 2
	}
	pts := make([]geom.Point, n)
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n-1)
		pts[i] = c.Evaluate(t)
	}
	return pts
}

// SplitAt splits q at parameter t via de Casteljau's algorithm, returning
// the two resulting sub-curves, which together exactly reproduce q.
func (q Quad) SplitAt(t float64) (left, right Quad) {
	p01 := q.P0.Interpolate(q.P1, t)
	p12 := q.P1.Interpolate(q.P2, t)
	p012 := p01.Interpolate(p12, t)
	return Quad{q.P0, p01, p012}, Quad{p012, p12, q.P2}
}

// SplitAt splits c at parameter t via de Casteljau's algorithm.
func (c Cubic) SplitAt(t float64) (left, right Cubic) {
	p01 := c.P0.Interpolate(c.P1, t)
	p12 := c.P1.Interpolate(c.P2, t)
	p23 := c.P2.Interpolate(c.P3, t)
	p012 := p01.Interpolate(p12, t)
	p123 := p12.Interpolate(p23, t)
	p0123 := p012.Interpolate(p123, t)
	return Cubic{c.P0, p01, p012, p0123}, Cubic{p0123, p123, p23, c.P3}
}

// SplitRange returns the sub-curve corresponding to the parameter interval
// [tMin, tMax], by splitting at tMin and then at the rescaled position of
// tMax within the tail (spec 4.2).
func (q Quad) SplitRange(tMin, tMax float64) Quad {
	_, tail := q.SplitAt(tMin)
	if tMax >= 1-geom.Epsilon {
		return tail
	}
	tRel := (tMax - tMin) / (1 - tMin)
	head, _ := tail.SplitAt(tRel)
	return head
}

// SplitRange returns the sub-curve corresponding to [tMin, tMax].
func (c Cubic) SplitRange(tMin, tMax float64) Cubic {
	_, tail := c.SplitAt(tMin)
	if tMax >= 1-geom.Epsilon {
		return tail
	}
	tRel := (tMax - tMin) / (1 - tMin)
	head, _ := tail.SplitAt(tRel)
	return head
}
