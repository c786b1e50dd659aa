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

// Package intersect finds self- and inter-subpath intersections on the
// straight segments of a sampled polyline, using Cramer's rule on segment
// direction vectors (spec 4.5). The line-line solver is grounded on
// tdewolff/canvas's path_intersection_util.go LineLine, simplified to the
// pure-polyline case: this package never sees curve control points, only
// the flattened samples sample.Sample produced.
package intersect

import "kittycad.io/pathregions/internal/geom"

// Intersection records where two polyline segments cross. ISegmentA and
// ISegmentB are segment indices (segment i spans [points[i], points[i+1]])
// plus the offset the caller passed for that polyline. TA and TB are the local fractions along
// each segment, both strictly within (geom.Epsilon, 1-geom.Epsilon).
type Intersection struct {
	Point              geom.Point
	ISegmentA, ISegmentB int
	TA, TB             float64
}

// Self finds every self-intersection within one subpath's polyline.
// segOffset is added to resulting segment indices to place them in the
// global (whole-path) sample sequence. Adjacent segments (j == i+1) are
// skipped since they share an endpoint by construction.
func Self(points []geom.Point, segOffset int) []Intersection {
	n := len(points) - 1
	var result []Intersection
	for i := 0; i < n; i++ {
		for j := i + 2; j < n; j++ {
			if it, ok := segment(points[i], points[i+1], points[j], points[j+1]); ok {
				it.ISegmentA = segOffset + i
				it.ISegmentB = segOffset + j
				result = append(result, it)
			}
		}
	}
	return result
}

// Pair finds every intersection between segments of pointsA and segments
// of pointsB, two distinct subpaths' polylines. offsetA and offsetB place
// the resulting segment indices in the global sample sequence.
func Pair(pointsA []geom.Point, offsetA int, pointsB []geom.Point, offsetB int) []Intersection {
	nA := len(pointsA) - 1
	nB := len(pointsB) - 1
	var result []Intersection
	for i := 0; i < nA; i++ {
		for j := 0; j < nB; j++ {
			if it, ok := segment(pointsA[i], pointsA[i+1], pointsB[j], pointsB[j+1]); ok {
				it.ISegmentA = offsetA + i
				it.ISegmentB = offsetB + j
				result = append(result, it)
			}
		}
	}
	return result
}

// segment solves the two-line intersection of a0-a1 against b0-b1 via
// Cramer's rule, accepting only when both local parameters lie strictly
// within (geom.Epsilon, 1-geom.Epsilon); endpoint touches and parallel
// segments are rejected (ok = false).
func segment(a0, a1, b0, b1 geom.Point) (Intersection, bool) {
	da := a1.Sub(a0)
	db := b1.Sub(b0)
	div := da.PerpDot(db)
	if div == 0 {
		return Intersection{}, false
	}

	d := b0.Sub(a0)
	ta := d.PerpDot(db) / div
	tb := d.PerpDot(da) / div

	if ta <= geom.Epsilon || ta >= 1-geom.Epsilon || tb <= geom.Epsilon || tb >= 1-geom.Epsilon {
		return Intersection{}, false
	}

	return Intersection{
		Point: a0.Interpolate(a1, ta),
		TA:    ta,
		TB:    tb,
	}, true
}
