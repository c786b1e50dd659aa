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

// Package sample converts an absolutized subpath into a dense polyline
// suitable for intersection testing, recording which range of polyline
// samples each command contributed (spec 4.4).
package sample

import (
	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/bezier"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/normalize"
)

// IntersectionSampleCount is the number of inclusive samples taken per
// Bézier command for intersection detection (spec 6).
const IntersectionSampleCount = 50

// EnrichedCommand is an AbsCommand annotated with the range of sample
// points, local to one subpath, that it contributed. IFirstPoint and
// ILastPoint are -1 for commands that contribute no samples (Move).
type EnrichedCommand struct {
	normalize.AbsCommand
	IFirstPoint, ILastPoint int
}

// Sample returns the dense polyline for sub and one EnrichedCommand per
// input command. Adjacent geometry commands share their boundary sample
// index by design, so the boundary point between two commands appears
// only once in the polyline.
func Sample(sub normalize.Subpath) ([]geom.Point, []EnrichedCommand, error) {
	var points []geom.Point
	enriched := make([]EnrichedCommand, 0, len(sub.Commands))

	for _, cmd := range sub.Commands {
		switch cmd.Kind {
		case pathregions.Move:
			enriched = append(enriched, EnrichedCommand{AbsCommand: cmd, IFirstPoint: -1, ILastPoint: -1})

		case pathregions.Line, pathregions.Close:
			first, last := appendSamples(&points, []geom.Point{cmd.Start, cmd.End})
			enriched = append(enriched, EnrichedCommand{AbsCommand: cmd, IFirstPoint: first, ILastPoint: last})

		case pathregions.QuadBez:
			q := bezier.Quad{P0: cmd.Start, P1: cmd.Ctrl1, P2: cmd.End}
			first, last := appendSamples(&points, q.Sample(IntersectionSampleCount))
			enriched = append(enriched, EnrichedCommand{AbsCommand: cmd, IFirstPoint: first, ILastPoint: last})

		case pathregions.CubicBez:
			c := bezier.Cubic{P0: cmd.Start, P1: cmd.Ctrl1, P2: cmd.Ctrl2, P3: cmd.End}
			first, last := appendSamples(&points, c.Sample(IntersectionSampleCount))
			enriched = append(enriched, EnrichedCommand{AbsCommand: cmd, IFirstPoint: first, ILastPoint: last})

		default:
			return nil, nil, &pathregions.InternalInvariantViolationError{
				Message: "sample: unexpected command kind " + cmd.Kind.String() + " in normalized subpath",
			}
		}
	}

	if len(points) == 0 {
		return nil, nil, &pathregions.MalformedSubpathError{Index: 0, Message: "sampling produced zero points"}
	}
	return points, enriched, nil
}

// appendSamples appends pts to points, reusing the last existing point as
// pts[0] when points is non-empty (the shared boundary point between
// adjacent commands), and returns the (first, last) index range in points
// that now represents pts.
func appendSamples(points *[]geom.Point, pts []geom.Point) (first, last int) {
	if len(*points) == 0 {
		*points = append(*points, pts...)
		return 0, len(*points) - 1
	}
	first = len(*points) - 1
	*points = append(*points, pts[1:]...)
	last = len(*points) - 1
	return first, last
}
