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

// Package classify computes each face's winding, establishes the
// containment hierarchy via bounding-box-filtered polygon-in-polygon
// tests, and resolves fill/hole under the requested fill rule (spec 4.8).
package classify

import (
	"math"
	"sort"

	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/fragment"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/planargraph"
)

// BoundarySampleCount is the sample density used to flatten a region's
// fragments into a polyline for point-in-polygon and bounding-box
// purposes. It is a fixed count of 64 inclusive points per curved
// fragment (lines always use their two endpoints); the flattening is not
// adaptive and no chord tolerance is checked. Every curve here has
// already been split at all of its intersections before it is sampled.
const BoundarySampleCount = 64

// Region is a Face together with its classification metadata.
type Region struct {
	Fragments          []planargraph.FragmentRef
	Polyline           []geom.Point
	Box                geom.Box
	TestPoint          geom.Point
	BasicWindingNumber int
	TotalWindingNumber int
	IsHole             bool
	ParentIndex        int // -1 if no parent
}

// Classify turns faces into classified Regions under rule.
func Classify(frags []fragment.Fragment, faces []planargraph.Face, rule pathregions.FillRule) ([]Region, error) {
	if len(faces) == 0 {
		return nil, &pathregions.DegenerateGeometryError{Message: "no region could be extracted"}
	}

	regions := make([]Region, len(faces))
	for i, f := range faces {
		poly := polylineOf(frags, f)
		regions[i] = Region{
			Fragments:          f.Fragments,
			Polyline:           poly,
			Box:                geom.BoundingBox(poly),
			TestPoint:          testPoint(poly),
			BasicWindingNumber: basicWinding(frags, f),
			ParentIndex:        -1,
		}
	}

	assignParents(regions)

	for i := range regions {
		switch rule {
		case pathregions.EvenOdd:
			regions[i].IsHole = nestingDepth(regions, i)%2 == 1
		default: // NonZero
			total := cumulativeWinding(regions, i)
			regions[i].TotalWindingNumber = total
			regions[i].IsHole = total == 0
		}
	}
	return regions, nil
}

// polylineOf concatenates f's fragments' dense samples in face order,
// reversing each fragment's samples where the face traverses it End to
// Start, and dropping the duplicate point shared between consecutive
// fragments.
func polylineOf(frags []fragment.Fragment, f planargraph.Face) []geom.Point {
	var poly []geom.Point
	for _, ref := range f.Fragments {
		pts := frags[ref.Fragment].Sample(BoundarySampleCount)
		if ref.Reversed {
			reversePoints(pts)
		}
		if len(poly) > 0 {
			pts = pts[1:]
		}
		poly = append(poly, pts...)
	}
	return poly
}

func reversePoints(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// basicWinding is the sign of the shoelace sum of f's fragments, each
// evaluated in its own stored Start->End direction regardless of how the
// face traverses it. This recovers the orientation of the *original*
// input loop the fragments came from even when the face-walk had to
// reverse some of them to produce a consistently-bounded traversal (spec
// 9 DESIGN NOTES: "under mixed orientations, use the signed-area sum of
// directed fragments").
func basicWinding(frags []fragment.Fragment, f planargraph.Face) int {
	sum := 0.0
	for _, ref := range f.Fragments {
		s, e := frags[ref.Fragment].Start, frags[ref.Fragment].End
		sum += s.X*e.Y - e.X*s.Y
	}
	switch {
	case sum > 0:
		return 1
	case sum < 0:
		return -1
	default:
		return 0
	}
}

// testPoint returns a point known (or assumed) to lie inside poly: the
// bounding-box centroid if that lies inside, otherwise an inward-offset
// midpoint of a boundary segment, otherwise the centroid unverified
// (spec 4.8).
func testPoint(poly []geom.Point) geom.Point {
	box := geom.BoundingBox(poly)
	centroid := geom.Point{X: (box.Min.X + box.Max.X) / 2, Y: (box.Min.Y + box.Max.Y) / 2}
	if geom.IsPointInsidePolygon(centroid, poly) {
		return centroid
	}

	n := len(poly)
	for i := 0; i < n; i++ {
		a, b := poly[i], poly[(i+1)%n]
		edge := b.Sub(a)
		normal := geom.Point{X: -edge.Y, Y: edge.X} // left of the edge; interior side for a CCW polygon
		length := normal.Length()
		if length < geom.Epsilon {
			continue
		}
		inward := normal.Mul(1 / length)
		candidate := a.Interpolate(b, 0.5).Add(inward.Mul(10 * geom.Epsilon))
		if geom.IsPointInsidePolygon(candidate, poly) {
			return candidate
		}
	}
	return centroid
}

// assignParents sets each region's ParentIndex to the smallest-area
// region whose bounding box strictly contains it and whose polygon
// contains it, processing candidates in descending bounding-box-area
// order (spec 4.8).
func assignParents(regions []Region) {
	order := make([]int, len(regions))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return regions[order[a]].Box.Area() > regions[order[b]].Box.Area()
	})

	for _, i := range order {
		parent := -1
		parentArea := math.Inf(1)
		for _, j := range order {
			if j == i {
				continue
			}
			if !regions[j].Box.StrictlyContains(regions[i].Box) {
				continue
			}
			if !geom.IsPolygonInsidePolygon(regions[i].Polyline, regions[j].Polyline) {
				continue
			}
			area := regions[j].Box.Area()
			if area < parentArea {
				parentArea = area
				parent = j
			}
		}
		regions[i].ParentIndex = parent
	}
}

func nestingDepth(regions []Region, i int) int {
	depth := 0
	for p := regions[i].ParentIndex; p >= 0; p = regions[p].ParentIndex {
		depth++
	}
	return depth
}

func cumulativeWinding(regions []Region, i int) int {
	total := regions[i].BasicWindingNumber
	for p := regions[i].ParentIndex; p >= 0; p = regions[p].ParentIndex {
		total += regions[p].BasicWindingNumber
	}
	return total
}
