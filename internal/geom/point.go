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

// Package geom provides the geometry primitives the path-to-regions
// pipeline is built on: points, bounding boxes, and the winding/crossing
// tests used by the region classifier.
package geom

import "math"

// Epsilon is the coincidence tolerance used throughout the pipeline:
// points, t-values, and segment endpoints closer than this are treated
// as identical.
const Epsilon = 1e-4

// StrictEpsilon is used where a tighter tolerance is required, such as
// bounding-box containment checks during region classification.
const StrictEpsilon = 1e-10

// Point is a finite 2D point (or vector; the two are not distinguished,
// matching the teacher's vec.Vec2 and tdewolff/canvas's Point).
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Sub returns p-q.
func (p Point) Sub(q Point) Point { return Point{p.X - q.X, p.Y - q.Y} }

// Mul returns p scaled by s.
func (p Point) Mul(s float64) Point { return Point{p.X * s, p.Y * s} }

// Dot returns the dot product of p and q.
func (p Point) Dot(q Point) float64 { return p.X*q.X + p.Y*q.Y }

// PerpDot returns the 2D "cross product" p.X*q.Y - p.Y*q.X, i.e. the z
// component of the 3D cross product of p and q extended with z=0.
func (p Point) PerpDot(q Point) float64 { return p.X*q.Y - p.Y*q.X }

// Length returns the Euclidean norm of p.
func (p Point) Length() float64 { return math.Hypot(p.X, p.Y) }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 { return p.Sub(q).Length() }

// Angle returns the angle of p relative to the positive x-axis, in
// (-pi, pi].
func (p Point) Angle() float64 { return math.Atan2(p.Y, p.X) }

// Interpolate returns the point a fraction t of the way from p to q.
func (p Point) Interpolate(q Point, t float64) Point {
	return Point{p.X + t*(q.X-p.X), p.Y + t*(q.Y-p.Y)}
}

// Equals reports whether p and q are within Epsilon of each other.
func (p Point) Equals(q Point) bool {
	return Distance(p, q) < Epsilon
}

// IsLeft returns the sign of the 2D cross product (p1-p0)x(p2-p0): positive
// when p2 is to the left of the directed line p0->p1, negative when to the
// right, zero when collinear.
func IsLeft(p0, p1, p2 Point) float64 {
	return p1.Sub(p0).PerpDot(p2.Sub(p0))
}
