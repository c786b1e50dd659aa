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

// Package normalize splits a raw command list into subpaths and absolutizes
// every command within them: relative commands become absolute, H/V lines
// expand to full endpoints, smooth curve commands get explicit control
// points, and every subpath ends exactly where it started (spec 4.3).
package normalize

import (
	"fmt"

	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/geom"
)

// AbsCommand is a Command after absolutization. Kind is collapsed to one of
// pathregions.Move, Line, QuadBez, CubicBez, Close — H/V lines and smooth
// curves have been resolved into their canonical explicit form. OriginalKind
// preserves what the input actually said, for diagnostics.
type AbsCommand struct {
	Kind         pathregions.CommandKind
	OriginalKind pathregions.CommandKind
	ICommand     int
	Start, End   geom.Point
	Ctrl1, Ctrl2 geom.Point

	// PrevControlPoint is the control point used to resolve a smooth
	// reflection (or, for non-smooth curves, simply Ctrl1), kept for
	// diagnosing a bad fragment back to the reflection that produced it.
	PrevControlPoint geom.Point
}

// DebugString reports the resolved geometry of the command, for use when a
// caller needs to trace an InternalInvariantViolationError back to its
// source command.
func (c AbsCommand) DebugString() string {
	return fmt.Sprintf("cmd[%d] %s (from %s): %v -> %v ctrl1=%v ctrl2=%v reflectedFrom=%v",
		c.ICommand, c.Kind, c.OriginalKind, c.Start, c.End, c.Ctrl1, c.Ctrl2, c.PrevControlPoint)
}

// Subpath is an ordered sequence of AbsCommands beginning with Move and
// ending at an explicit Close or a synthetic closing Line. Invariant:
// Start of the first command equals End of the last command, within
// geom.Epsilon.
type Subpath struct {
	Commands []AbsCommand
}

// Normalize splits cmds at Move commands and absolutizes every command in
// each resulting subpath. It fails with *pathregions.UnsupportedCommandError
// on an elliptical arc, and with *pathregions.MalformedSubpathError if cmds
// does not begin with a Move.
func Normalize(cmds []pathregions.Command) ([]Subpath, error) {
	if len(cmds) == 0 || cmds[0].Kind != pathregions.Move {
		return nil, &pathregions.MalformedSubpathError{Index: 0, Message: "command list does not begin with Move"}
	}

	var subpaths []Subpath
	var current []AbsCommand
	var cur, subpathStart geom.Point
	var prevCtrl geom.Point
	prevKind := pathregions.CommandKind(255) // sentinel: no previous command

	flush := func() error {
		if len(current) == 0 {
			return nil
		}
		closeIfNeeded(&current, cur, subpathStart)
		if err := checkClosed(current, len(subpaths), subpathStart); err != nil {
			return err
		}
		subpaths = append(subpaths, Subpath{Commands: current})
		current = nil
		return nil
	}

	for i, raw := range cmds {
		switch raw.Kind {
		case pathregions.Arc:
			return nil, &pathregions.UnsupportedCommandError{Index: i, Kind: raw.Kind}

		case pathregions.Move:
			if err := flush(); err != nil {
				return nil, err
			}
			pt := absolutize(raw.Relative, raw.X, raw.Y, cur)
			cur = pt
			subpathStart = pt
			current = append(current, AbsCommand{
				Kind: pathregions.Move, OriginalKind: pathregions.Move,
				ICommand: len(current), Start: pt, End: pt,
			})
			prevKind = pathregions.Move

		case pathregions.Line, pathregions.HLine, pathregions.VLine:
			end := lineEnd(raw, cur)
			current = append(current, AbsCommand{
				Kind: pathregions.Line, OriginalKind: raw.Kind,
				ICommand: len(current), Start: cur, End: end,
			})
			cur = end
			prevKind = pathregions.Line

		case pathregions.QuadBez, pathregions.QuadBezSmooth:
			var ctrl, reflectedFrom geom.Point
			if raw.Kind == pathregions.QuadBezSmooth {
				ctrl = smoothReflect(prevKind == pathregions.QuadBez, prevCtrl, cur)
				reflectedFrom = geom.Point{X: 2*cur.X - ctrl.X, Y: 2*cur.Y - ctrl.Y}
			} else {
				ctrl = absolutize(raw.Relative, raw.X1, raw.Y1, cur)
				reflectedFrom = ctrl
			}
			end := absolutize(raw.Relative, raw.X, raw.Y, cur)
			current = append(current, AbsCommand{
				Kind: pathregions.QuadBez, OriginalKind: raw.Kind,
				ICommand: len(current), Start: cur, End: end, Ctrl1: ctrl,
				PrevControlPoint: reflectedFrom,
			})
			prevCtrl = ctrl
			cur = end
			prevKind = pathregions.QuadBez

		case pathregions.CubicBez, pathregions.CubicBezSmooth:
			var ctrl1, reflectedFrom geom.Point
			if raw.Kind == pathregions.CubicBezSmooth {
				ctrl1 = smoothReflect(prevKind == pathregions.CubicBez, prevCtrl, cur)
				reflectedFrom = geom.Point{X: 2*cur.X - ctrl1.X, Y: 2*cur.Y - ctrl1.Y}
			} else {
				ctrl1 = absolutize(raw.Relative, raw.X1, raw.Y1, cur)
				reflectedFrom = ctrl1
			}
			ctrl2 := absolutize(raw.Relative, raw.X2, raw.Y2, cur)
			end := absolutize(raw.Relative, raw.X, raw.Y, cur)
			current = append(current, AbsCommand{
				Kind: pathregions.CubicBez, OriginalKind: raw.Kind,
				ICommand: len(current), Start: cur, End: end, Ctrl1: ctrl1, Ctrl2: ctrl2,
				PrevControlPoint: reflectedFrom,
			})
			prevCtrl = ctrl2
			cur = end
			prevKind = pathregions.CubicBez

		case pathregions.Close:
			current = append(current, AbsCommand{
				Kind: pathregions.Close, OriginalKind: pathregions.Close,
				ICommand: len(current), Start: cur, End: subpathStart,
			})
			cur = subpathStart
			prevKind = pathregions.Close

		default:
			return nil, &pathregions.UnsupportedCommandError{Index: i, Kind: raw.Kind}
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if len(subpaths) == 0 {
		return nil, &pathregions.MalformedSubpathError{Index: 0, Message: "no geometry commands found"}
	}
	return subpaths, nil
}

// closeIfNeeded appends a synthetic closing Line if the subpath's current
// end point differs from its Move start by more than geom.Epsilon.
func closeIfNeeded(current *[]AbsCommand, cur, subpathStart geom.Point) {
	if geom.Distance(cur, subpathStart) <= geom.Epsilon {
		return
	}
	*current = append(*current, AbsCommand{
		Kind: pathregions.Line, OriginalKind: pathregions.Line,
		ICommand: len(*current), Start: cur, End: subpathStart,
	})
}

// checkClosed asserts the invariant closeIfNeeded exists to establish: the
// subpath's last command must end at subpathStart. A violation here means
// the normalizer's own bookkeeping broke, not a malformed input, and is
// reported via *pathregions.NotClosedError (spec 7) rather than panicking.
func checkClosed(current []AbsCommand, subpathIndex int, subpathStart geom.Point) error {
	last := current[len(current)-1]
	if gap := geom.Distance(last.End, subpathStart); gap > geom.Epsilon {
		return &pathregions.NotClosedError{Index: subpathIndex, Gap: gap}
	}
	return nil
}

func absolutize(relative bool, x, y float64, origin geom.Point) geom.Point {
	if relative {
		return geom.Point{X: origin.X + x, Y: origin.Y + y}
	}
	return geom.Point{X: x, Y: y}
}

func lineEnd(raw pathregions.Command, cur geom.Point) geom.Point {
	switch raw.Kind {
	case pathregions.HLine:
		if raw.Relative {
			return geom.Point{X: cur.X + raw.X, Y: cur.Y}
		}
		return geom.Point{X: raw.X, Y: cur.Y}
	case pathregions.VLine:
		if raw.Relative {
			return geom.Point{X: cur.X, Y: cur.Y + raw.Y}
		}
		return geom.Point{X: cur.X, Y: raw.Y}
	default: // Line
		return absolutize(raw.Relative, raw.X, raw.Y, cur)
	}
}

// smoothReflect derives a smooth command's leading control point by
// reflecting the previous control point across the current point, or
// collapses to the current point when the previous command was not a
// matching curve kind.
func smoothReflect(havePrev bool, prevCtrl, cur geom.Point) geom.Point {
	if !havePrev {
		return cur
	}
	return geom.Point{X: 2*cur.X - prevCtrl.X, Y: 2*cur.Y - prevCtrl.Y}
}
