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

// Package order removes redundant fill regions and flattens the remainder
// into parent-first order (spec 4.9).
package order

import (
	"sort"

	"kittycad.io/pathregions/internal/classify"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/planargraph"
)

// Region is a classified region after redundancy removal, with ParentIndex
// reindexed into the returned slice.
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

// Clean drops every non-hole region whose polygon lies fully inside a
// non-hole immediate parent (the parent already covers it), then returns
// the rest in parent-first order: every region precedes its children.
func Clean(regions []classify.Region) []Region {
	n := len(regions)
	removed := make([]bool, n)
	for i, r := range regions {
		if !r.IsHole && r.ParentIndex >= 0 && !regions[r.ParentIndex].IsHole {
			removed[i] = true
		}
	}

	depth := make([]int, n)
	for i := range regions {
		depth[i] = originalDepth(regions, i)
	}

	var kept []int
	for i := 0; i < n; i++ {
		if !removed[i] {
			kept = append(kept, i)
		}
	}
	sort.SliceStable(kept, func(a, b int) bool { return depth[kept[a]] < depth[kept[b]] })

	newIndex := make(map[int]int, len(kept))
	for newI, oldI := range kept {
		newIndex[oldI] = newI
	}

	out := make([]Region, len(kept))
	for newI, oldI := range kept {
		r := regions[oldI]
		parent := effectiveParent(regions, removed, oldI)
		pIdx := -1
		if parent >= 0 {
			pIdx = newIndex[parent]
		}
		out[newI] = Region{
			Fragments:          r.Fragments,
			Polyline:           r.Polyline,
			Box:                r.Box,
			TestPoint:          r.TestPoint,
			BasicWindingNumber: r.BasicWindingNumber,
			TotalWindingNumber: r.TotalWindingNumber,
			IsHole:             r.IsHole,
			ParentIndex:        pIdx,
		}
	}
	return out
}

func originalDepth(regions []classify.Region, i int) int {
	depth := 0
	for p := regions[i].ParentIndex; p >= 0; p = regions[p].ParentIndex {
		depth++
	}
	return depth
}

// effectiveParent walks up i's original parent chain, skipping any removed
// ancestor, so a surviving region's parent link never points at a dropped
// one.
func effectiveParent(regions []classify.Region, removed []bool, i int) int {
	p := regions[i].ParentIndex
	for p >= 0 && removed[p] {
		p = regions[p].ParentIndex
	}
	return p
}
