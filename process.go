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

import (
	"kittycad.io/pathregions/internal/classify"
	"kittycad.io/pathregions/internal/fragment"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/intersect"
	"kittycad.io/pathregions/internal/normalize"
	"kittycad.io/pathregions/internal/order"
	"kittycad.io/pathregions/internal/planargraph"
	"kittycad.io/pathregions/internal/sample"
)

// Process converts one filled path into its ordered list of classified
// regions (spec 1-9). It is a pure function of path: no I/O, no logging,
// no process-wide state. Geometry commands (arcs excepted, which fail with
// *UnsupportedCommandError) are sampled and absolutized, self- and
// inter-subpath intersections are located on the sampled polylines, every
// command is split at its intersections into fragments, the fragments are
// assembled into a planar graph whose faces are extracted and classified
// under path.FillRule, and finally redundant fills are dropped and the
// result is flattened into parent-first order.
func Process(path PathElement) ([]Region, error) {
	subpaths, err := normalize.Normalize(path.Commands)
	if err != nil {
		return nil, err
	}

	type subpathWork struct {
		points   []geom.Point
		enriched []sample.EnrichedCommand
		cuts     []fragment.CutPoint
	}

	work := make([]subpathWork, len(subpaths))
	for i, sp := range subpaths {
		pts, enriched, err := sample.Sample(sp)
		if err != nil {
			return nil, err
		}
		work[i] = subpathWork{points: pts, enriched: enriched}
	}

	for i := range work {
		for _, it := range intersect.Self(work[i].points, 0) {
			work[i].cuts = append(work[i].cuts,
				fragment.CutPoint{ISegment: it.ISegmentA, T: it.TA},
				fragment.CutPoint{ISegment: it.ISegmentB, T: it.TB},
			)
		}
	}
	for i := 0; i < len(work); i++ {
		for j := i + 1; j < len(work); j++ {
			for _, it := range intersect.Pair(work[i].points, 0, work[j].points, 0) {
				work[i].cuts = append(work[i].cuts, fragment.CutPoint{ISegment: it.ISegmentA, T: it.TA})
				work[j].cuts = append(work[j].cuts, fragment.CutPoint{ISegment: it.ISegmentB, T: it.TB})
			}
		}
	}

	var allFragments []fragment.Fragment
	for i := range work {
		plan := fragment.Plan(work[i].enriched, work[i].cuts)
		frags, err := fragment.Build(work[i].enriched, plan)
		if err != nil {
			return nil, err
		}
		allFragments = append(allFragments, frags...)
	}

	graph, err := planargraph.Build(allFragments)
	if err != nil {
		return nil, err
	}
	faces, err := graph.Faces()
	if err != nil {
		return nil, err
	}

	classified, err := classify.Classify(allFragments, faces, path.FillRule)
	if err != nil {
		return nil, err
	}

	cleaned := order.Clean(classified)
	return finalize(cleaned), nil
}

// finalize assigns stable sequential IDs to cleaned's parent-first order
// and resolves ParentIndex references into ParentRegionID pointers.
func finalize(cleaned []order.Region) []Region {
	gen := &idGen{}
	regions := make([]Region, len(cleaned))
	for i, r := range cleaned {
		refs := make([]FragmentRef, len(r.Fragments))
		for j, ref := range r.Fragments {
			refs[j] = FragmentRef{FragmentID: ref.Fragment, Reversed: ref.Reversed}
		}
		regions[i] = Region{
			ID:                 gen.next(),
			Fragments:          refs,
			Polyline:           r.Polyline,
			Box:                r.Box,
			TestPoint:          r.TestPoint,
			BasicWindingNumber: r.BasicWindingNumber,
			TotalWindingNumber: r.TotalWindingNumber,
			IsHole:             r.IsHole,
		}
	}
	for i, r := range cleaned {
		if r.ParentIndex < 0 {
			continue
		}
		pid := regions[r.ParentIndex].ID
		regions[i].ParentRegionID = &pid
	}
	return regions
}
