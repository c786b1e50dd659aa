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

package pathregions

import "kittycad.io/pathregions/internal/geom"

// FragmentRef is one directed step of a region's boundary: the index of a
// fragment in the path-wide fragment list Process built internally, and
// whether the region traverses it End to Start.
type FragmentRef struct {
	FragmentID int
	Reversed   bool
}

// Region is one closed, non-self-overlapping region extracted from a path:
// its ordered, directed fragment boundary, its precomputed polyline and
// bounding box, and its classification under the path's fill rule (spec 3).
type Region struct {
	ID                 int
	Fragments          []FragmentRef
	Polyline           []geom.Point
	Box                geom.Box
	TestPoint          geom.Point
	BasicWindingNumber int
	TotalWindingNumber int
	IsHole             bool

	// ParentRegionID is nil for a top-level region, otherwise the ID of its
	// immediate enclosing region.
	ParentRegionID *int
}

// idGen hands out sequential region IDs within a single Process call. It
// carries no state beyond one invocation, per the core's no-global-state
// requirement (spec 5).
type idGen struct{ n int }

func (g *idGen) next() int {
	id := g.n
	g.n++
	return id
}
