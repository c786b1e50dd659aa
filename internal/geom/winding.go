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

package geom

import "math"

// IsPointOnSegment reports whether p lies on the closed segment a-b, using
// a cross-product collinearity check and a dot-product range check.
func IsPointOnSegment(p, a, b Point) bool {
	ab := b.Sub(a)
	ap := p.Sub(a)
	cross := ab.PerpDot(ap)
	if math.Abs(cross) >= Epsilon {
		return false
	}
	dot := ab.Dot(ap)
	if dot < 0 {
		return false
	}
	lenSq := ab.Dot(ab)
	return dot <= lenSq
}

// IsPointInsidePolygon reports whether point lies inside polygon (a closed
// ordered vertex list, first and last vertex need not coincide) using the
// nonzero winding rule via a horizontal ray cast and IsLeft for crossing
// direction.
func IsPointInsidePolygon(point Point, polygon []Point) bool {
	n := len(polygon)
	if n < 3 {
		return false
	}
	winding := 0
	for i := 0; i < n; i++ {
		p0 := polygon[i]
		p1 := polygon[(i+1)%n]
		if p0.Y <= point.Y {
			if p1.Y > point.Y && IsLeft(p0, p1, point) > 0 {
				winding++
			}
		} else {
			if p1.Y <= point.Y && IsLeft(p0, p1, point) < 0 {
				winding--
			}
		}
	}
	return winding != 0
}

// IsPolygonInsidePolygon reports whether every vertex of inner is inside or
// on the boundary of outer, the containment test used by the region
// classifier (spec 4.8).
func IsPolygonInsidePolygon(inner, outer []Point) bool {
	for _, p := range inner {
		if IsPointInsidePolygon(p, outer) {
			continue
		}
		onBoundary := false
		n := len(outer)
		for i := 0; i < n; i++ {
			if IsPointOnSegment(p, outer[i], outer[(i+1)%n]) {
				onBoundary = true
				break
			}
		}
		if !onBoundary {
			return false
		}
	}
	return true
}

// ShoelaceWinding returns +1 if polygon is wound counter-clockwise, -1 if
// clockwise, and 0 for a degenerate (zero-area) polygon.
func ShoelaceWinding(polygon []Point) int {
	area := SignedArea(polygon)
	switch {
	case area > Epsilon*Epsilon:
		return 1
	case area < -Epsilon*Epsilon:
		return -1
	default:
		return 0
	}
}

// SignedArea returns the shoelace signed area of polygon: positive for
// counter-clockwise traversal, negative for clockwise.
func SignedArea(polygon []Point) float64 {
	n := len(polygon)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		p0 := polygon[i]
		p1 := polygon[(i+1)%n]
		sum += p0.X*p1.Y - p1.X*p0.Y
	}
	return sum / 2
}

// Interval reports whether x lies between a and b (inclusive, regardless
// of which of a, b is larger), allowing Epsilon of slack beyond either
// end. Grounded on tdewolff/canvas's Interval
// helper used throughout its line-intersection routines.
func Interval(x, a, b float64) bool {
	if a > b {
		a, b = b, a
	}
	return a-Epsilon <= x && x <= b+Epsilon
}
