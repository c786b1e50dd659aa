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

// Package fragment maps polyline-local intersection parameters back onto
// command-local t-values, then splits each command at its cut points to
// produce Fragments: the atomic geometric units the planar graph is built
// from (spec 4.6).
package fragment

import (
	"sort"

	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/bezier"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/sample"
)

// CutPoint is one intersection's contribution to a single subpath's split
// plan: a local segment index (local to that subpath's sample sequence)
// and the local parameter along it.
type CutPoint struct {
	ISegment int
	T        float64
}

// Fragment is a maximal sub-arc of one command lying between consecutive
// cut points: one of {Line, QuadBez, CubicBez}. ICommand back-references
// the command it was cut from, subpath-local as in AbsCommand.
type Fragment struct {
	Kind         pathregions.CommandKind
	ICommand     int
	Start, End   geom.Point
	Ctrl1, Ctrl2 geom.Point
}

// Plan groups cut points by the command whose sample range contains their
// segment, converting each to a command-local t and sorting/deduping the
// per-command bucket (spec 4.6 step 1-2).
func Plan(enriched []sample.EnrichedCommand, cuts []CutPoint) map[int][]float64 {
	buckets := make(map[int][]float64)
	for _, c := range cuts {
		iCmd, tCmd, ok := mapToCommand(enriched, c.ISegment, c.T)
		if !ok {
			continue
		}
		buckets[iCmd] = append(buckets[iCmd], tCmd)
	}
	for k, ts := range buckets {
		sort.Float64s(ts)
		buckets[k] = dedupe(ts)
	}
	return buckets
}

// mapToCommand finds the enriched command whose [IFirstPoint, ILastPoint]
// spans iSegment and converts the polyline-local t into that command's
// own parameter space. For a Line the span is exactly one segment, so the
// local t carries over unchanged; for a Bézier it is the linear map from
// spec 4.6 step 1.
func mapToCommand(enriched []sample.EnrichedCommand, iSegment int, tLocal float64) (iCommand int, tCmd float64, ok bool) {
	for _, cmd := range enriched {
		if cmd.IFirstPoint < 0 {
			continue // Move contributes no samples
		}
		if iSegment < cmd.IFirstPoint || iSegment >= cmd.ILastPoint {
			continue
		}
		span := cmd.ILastPoint - cmd.IFirstPoint
		if span == 1 {
			return cmd.ICommand, tLocal, true
		}
		t := (float64(iSegment-cmd.IFirstPoint) + tLocal) / float64(span)
		return cmd.ICommand, t, true
	}
	return 0, 0, false
}

// dedupe drops values within geom.Epsilon of their predecessor in an
// ascending-sorted slice, compacting in place.
func dedupe(ts []float64) []float64 {
	out := ts[:0]
	for i, t := range ts {
		if i > 0 && t-out[len(out)-1] < geom.Epsilon {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Build splits every geometry command in enriched at its planned cut
// points, producing one Fragment per interval wider than geom.Epsilon. If
// the resulting chain does not close back to the subpath's start, a
// straight closing Fragment is appended as a last resort (spec 4.6).
func Build(enriched []sample.EnrichedCommand, plan map[int][]float64) ([]Fragment, error) {
	var frags []Fragment
	var subpathStart geom.Point
	haveStart := false

	for _, cmd := range enriched {
		if cmd.Kind == pathregions.Move {
			subpathStart = cmd.Start
			haveStart = true
			continue
		}
		ts := make([]float64, 0, len(plan[cmd.ICommand])+2)
		ts = append(ts, 0)
		ts = append(ts, plan[cmd.ICommand]...)
		ts = append(ts, 1)
		for i := 0; i+1 < len(ts); i++ {
			tMin, tMax := ts[i], ts[i+1]
			if tMax-tMin <= geom.Epsilon {
				continue
			}
			frag, err := splitCommand(cmd, tMin, tMax)
			if err != nil {
				return nil, err
			}
			frags = append(frags, frag)
		}
	}

	if len(frags) == 0 {
		return nil, &pathregions.DegenerateGeometryError{Message: "command list produced no fragments"}
	}

	if haveStart && geom.Distance(frags[len(frags)-1].End, subpathStart) > geom.Epsilon {
		frags = append(frags, Fragment{
			Kind:  pathregions.Line,
			Start: frags[len(frags)-1].End,
			End:   subpathStart,
		})
	}
	return frags, nil
}

func splitCommand(cmd sample.EnrichedCommand, tMin, tMax float64) (Fragment, error) {
	switch cmd.Kind {
	case pathregions.Line, pathregions.Close:
		return Fragment{
			Kind:     pathregions.Line,
			ICommand: cmd.ICommand,
			Start:    cmd.Start.Interpolate(cmd.End, tMin),
			End:      cmd.Start.Interpolate(cmd.End, tMax),
		}, nil

	case pathregions.QuadBez:
		q := bezier.Quad{P0: cmd.Start, P1: cmd.Ctrl1, P2: cmd.End}
		sub := q.SplitRange(tMin, tMax)
		return Fragment{
			Kind: pathregions.QuadBez, ICommand: cmd.ICommand,
			Start: sub.P0, End: sub.P2, Ctrl1: sub.P1,
		}, nil

	case pathregions.CubicBez:
		c := bezier.Cubic{P0: cmd.Start, P1: cmd.Ctrl1, P2: cmd.Ctrl2, P3: cmd.End}
		sub := c.SplitRange(tMin, tMax)
		return Fragment{
			Kind: pathregions.CubicBez, ICommand: cmd.ICommand,
			Start: sub.P0, End: sub.P3, Ctrl1: sub.P1, Ctrl2: sub.P2,
		}, nil

	default:
		return Fragment{}, &pathregions.InternalInvariantViolationError{
			Message: "fragment: unexpected command kind " + cmd.Kind.String(),
		}
	}
}

// Sample returns n inclusive points along the fragment's own geometry,
// used for face-boundary polylines during face extraction and region
// classification.
func (f Fragment) Sample(n int) []geom.Point {
	switch f.Kind {
	case pathregions.QuadBez:
		return bezier.Quad{P0: f.Start, P1: f.Ctrl1, P2: f.End}.Sample(n)
	case pathregions.CubicBez:
		return bezier.Cubic{P0: f.Start, P1: f.Ctrl1, P2: f.Ctrl2, P3: f.End}.Sample(n)
	default:
		return []geom.Point{f.Start, f.End}
	}
}

// Tangent returns the (unnormalized) derivative direction at t in [0, 1].
func (f Fragment) Tangent(t float64) geom.Point {
	switch f.Kind {
	case pathregions.QuadBez:
		return bezier.Quad{P0: f.Start, P1: f.Ctrl1, P2: f.End}.Tangent(t)
	case pathregions.CubicBez:
		return bezier.Cubic{P0: f.Start, P1: f.Ctrl1, P2: f.Ctrl2, P3: f.End}.Tangent(t)
	default:
		return f.End.Sub(f.Start)
	}
}
