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

// Box is an axis-aligned bounding box. An empty Box has Min.X > Max.X.
type Box struct {
	Min, Max Point
}

// EmptyBox returns a Box containing no points.
func EmptyBox() Box {
	return Box{
		Min: Point{X: math.Inf(1), Y: math.Inf(1)},
		Max: Point{X: math.Inf(-1), Y: math.Inf(-1)},
	}
}

// IsEmpty reports whether b contains no points.
func (b Box) IsEmpty() bool {
	return b.Min.X > b.Max.X || b.Min.Y > b.Max.Y
}

// Add grows b to include p, returning the result.
func (b Box) Add(p Point) Box {
	if b.IsEmpty() {
		return Box{Min: p, Max: p}
	}
	return Box{
		Min: Point{X: min(b.Min.X, p.X), Y: min(b.Min.Y, p.Y)},
		Max: Point{X: max(b.Max.X, p.X), Y: max(b.Max.Y, p.Y)},
	}
}

// Union returns the smallest Box containing both b and c.
func (b Box) Union(c Box) Box {
	if b.IsEmpty() {
		return c
	}
	if c.IsEmpty() {
		return b
	}
	return Box{
		Min: Point{X: min(b.Min.X, c.Min.X), Y: min(b.Min.Y, c.Min.Y)},
		Max: Point{X: max(b.Max.X, c.Max.X), Y: max(b.Max.Y, c.Max.Y)},
	}
}

// Area returns (xMax-xMin)*(yMax-yMin).
func (b Box) Area() float64 {
	if b.IsEmpty() {
		return 0
	}
	return (b.Max.X - b.Min.X) * (b.Max.Y - b.Min.Y)
}

// StrictlyContains reports whether c lies strictly inside b, using
// StrictEpsilon slack, as required by the containment step of region
// classification (spec 4.8).
func (b Box) StrictlyContains(c Box) bool {
	return b.Min.X < c.Min.X-StrictEpsilon && b.Min.Y < c.Min.Y-StrictEpsilon &&
		b.Max.X > c.Max.X+StrictEpsilon && b.Max.Y > c.Max.Y+StrictEpsilon
}

// BoundingBox returns the bounding box of a slice of points.
func BoundingBox(points []Point) Box {
	b := EmptyBox()
	for _, p := range points {
		b = b.Add(p)
	}
	return b
}
