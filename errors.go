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

import "fmt"

// UnsupportedCommandError reports a command kind the pipeline cannot
// process, most commonly an elliptical arc.
type UnsupportedCommandError struct {
	Index int
	Kind  CommandKind
}

func (e *UnsupportedCommandError) Error() string {
	return fmt.Sprintf("pathregions: command %d: unsupported command kind %s", e.Index, e.Kind)
}

// MalformedSubpathError reports a subpath with no leading Move, or one
// whose sampling produced zero points.
type MalformedSubpathError struct {
	Index   int
	Message string
}

func (e *MalformedSubpathError) Error() string {
	return fmt.Sprintf("pathregions: subpath %d: malformed: %s", e.Index, e.Message)
}

// NotClosedError reports that a subpath's start and end still differ after
// normalization, which should never happen and indicates a logic error.
type NotClosedError struct {
	Index int
	Gap   float64
}

func (e *NotClosedError) Error() string {
	return fmt.Sprintf("pathregions: subpath %d: not closed after normalization, gap %g", e.Index, e.Gap)
}

// DegenerateGeometryError reports that a path collapsed into zero-length
// fragments, or that no region could be extracted from its planar graph.
type DegenerateGeometryError struct {
	Message string
}

func (e *DegenerateGeometryError) Error() string {
	return fmt.Sprintf("pathregions: degenerate geometry: %s", e.Message)
}

// InternalInvariantViolationError reports a broken internal invariant, such
// as an intersection parameter outside [0, 1] or a half-edge cycle that
// never closes. It is never recovered from silently.
type InternalInvariantViolationError struct {
	Message string
}

func (e *InternalInvariantViolationError) Error() string {
	return fmt.Sprintf("pathregions: internal invariant violated: %s", e.Message)
}
