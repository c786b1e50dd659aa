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

// Package pathregions converts a set of filled vector paths into an ordered
// list of closed, non-self-overlapping regions with a parent/hole
// hierarchy, for consumption by a downstream CAD sketch emitter.
//
// The input is raw path commands, e.g. the result of tokenizing an SVG-like
// "d" attribute; arcs are not supported and are rejected during
// normalization. The XML front end, the command tokenizer, and the sketch
// emitter are all external collaborators and live outside this module.
package pathregions

// CommandKind identifies which of the closed set of path command variants a
// Command carries. The set is closed: Arc exists only so the normalizer can
// recognize and reject it, never to be produced past normalization.
type CommandKind uint8

const (
	Move CommandKind = iota
	Line
	HLine
	VLine
	QuadBez
	QuadBezSmooth
	CubicBez
	CubicBezSmooth
	Close
	Arc
)

func (k CommandKind) String() string {
	switch k {
	case Move:
		return "Move"
	case Line:
		return "Line"
	case HLine:
		return "HLine"
	case VLine:
		return "VLine"
	case QuadBez:
		return "QuadBez"
	case QuadBezSmooth:
		return "QuadBezSmooth"
	case CubicBez:
		return "CubicBez"
	case CubicBezSmooth:
		return "CubicBezSmooth"
	case Close:
		return "Close"
	case Arc:
		return "Arc"
	default:
		return "Unknown"
	}
}

// Command is a single raw path command, absolute or relative, as produced
// by an (external) path-string tokenizer. Field use depends on Kind:
//
//   - Move, Line: X, Y is the endpoint.
//   - HLine: X is the endpoint, Y is unused.
//   - VLine: Y is the endpoint, X is unused.
//   - QuadBez: X1, Y1 is the control point; X, Y is the endpoint.
//   - QuadBezSmooth: X, Y is the endpoint; the control point is derived.
//   - CubicBez: X1, Y1 and X2, Y2 are the control points; X, Y the endpoint.
//   - CubicBezSmooth: X2, Y2 is the second control point, X, Y the
//     endpoint; the first control point is derived.
//   - Close: no fields used.
//   - Arc: unsupported; present only for rejection.
type Command struct {
	Kind     CommandKind
	Relative bool
	X, Y     float64
	X1, Y1   float64
	X2, Y2   float64
}

// FillRule selects how nested regions resolve to fill or hole.
type FillRule uint8

const (
	NonZero FillRule = iota
	EvenOdd
)

func (r FillRule) String() string {
	if r == EvenOdd {
		return "evenodd"
	}
	return "nonzero"
}

// PathElement is the input contract to the core pipeline: one filled path,
// its fill rule, and its raw (not yet absolutized) command list.
type PathElement struct {
	FillRule FillRule
	Commands []Command
}
