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

package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/geom"
)

func square() []pathregions.Command {
	return []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 10},
		{Kind: pathregions.Line, X: 0, Y: 10},
		{Kind: pathregions.Close},
	}
}

func TestNormalizeSquareClosed(t *testing.T) {
	subs, err := Normalize(square())
	require.NoError(t, err)
	require.Len(t, subs, 1)
	cmds := subs[0].Commands
	require.Len(t, cmds, 5)
	assert.Equal(t, pathregions.Move, cmds[0].Kind)
	assert.Equal(t, pathregions.Close, cmds[4].Kind)
	assert.True(t, cmds[0].Start.Equals(cmds[len(cmds)-1].End))
}

func TestNormalizeImplicitClosure(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 10},
		// no Close, no returning line
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	last := subs[0].Commands[len(subs[0].Commands)-1]
	assert.Equal(t, pathregions.Line, last.Kind)
	assert.True(t, last.End.Equals(geom.Point{X: 0, Y: 0}))
}

func TestNormalizeSplitsAtMove(t *testing.T) {
	cmds := append(square(), append([]pathregions.Command{
		{Kind: pathregions.Move, X: 2, Y: 2},
		{Kind: pathregions.Line, X: 2, Y: 8},
		{Kind: pathregions.Line, X: 8, Y: 8},
		{Kind: pathregions.Line, X: 8, Y: 2},
		{Kind: pathregions.Close},
	}...)...)
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	require.Len(t, subs, 2)
}

func TestNormalizeHLineVLine(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.HLine, X: 10},
		{Kind: pathregions.VLine, Y: 10},
		{Kind: pathregions.Close},
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	cmds2 := subs[0].Commands
	assert.True(t, cmds2[1].End.Equals(geom.Point{X: 10, Y: 0}))
	assert.True(t, cmds2[2].End.Equals(geom.Point{X: 10, Y: 10}))
}

func TestNormalizeRelativeCommands(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 5, Y: 5},
		{Kind: pathregions.Line, Relative: true, X: 5, Y: 0},
		{Kind: pathregions.HLine, Relative: true, X: -5},
		{Kind: pathregions.Close},
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	cmds2 := subs[0].Commands
	assert.True(t, cmds2[1].End.Equals(geom.Point{X: 10, Y: 5}))
	assert.True(t, cmds2[2].End.Equals(geom.Point{X: 5, Y: 5}))
}

func TestNormalizeQuadSmoothReflection(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.QuadBez, X1: 5, Y1: 10, X: 10, Y: 0},
		{Kind: pathregions.QuadBezSmooth, X: 20, Y: 0},
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	cmds2 := subs[0].Commands
	// reflected control point across (10,0) from (5,10) is (15,-10)
	assert.True(t, cmds2[2].Ctrl1.Equals(geom.Point{X: 15, Y: -10}))
}

func TestNormalizeSmoothWithoutPriorCurveCollapses(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 0},
		{Kind: pathregions.QuadBezSmooth, X: 20, Y: 0},
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	cmds2 := subs[0].Commands
	assert.True(t, cmds2[2].Ctrl1.Equals(geom.Point{X: 10, Y: 0}))
}

func TestNormalizeCubicSmoothReflection(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.CubicBez, X1: 0, Y1: 10, X2: 10, Y2: 10, X: 10, Y: 0},
		{Kind: pathregions.CubicBezSmooth, X2: 20, Y2: -10, X: 20, Y: 0},
	}
	subs, err := Normalize(cmds)
	require.NoError(t, err)
	cmds2 := subs[0].Commands
	// reflected across (10,0) from (10,10) is (10,-10)
	assert.True(t, cmds2[2].Ctrl1.Equals(geom.Point{X: 10, Y: -10}))
}

func TestNormalizeRejectsArc(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.Arc, X: 10, Y: 10},
	}
	_, err := Normalize(cmds)
	require.Error(t, err)
	var unsupported *pathregions.UnsupportedCommandError
	assert.ErrorAs(t, err, &unsupported)
	assert.Equal(t, 1, unsupported.Index)
}

// TestCheckClosedDetectsGap exercises the post-closure sanity assertion
// directly: closeIfNeeded always forces a subpath's End to equal
// subpathStart, so a real gap can never reach checkClosed through
// Normalize's own flow. This crafts the broken-invariant case by hand, the
// way the check's "should never happen" contract calls for.
func TestCheckClosedDetectsGap(t *testing.T) {
	current := []AbsCommand{
		{Kind: pathregions.Line, Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 5, Y: 5}},
	}
	err := checkClosed(current, 3, geom.Point{X: 0, Y: 0})
	require.Error(t, err)
	var notClosed *pathregions.NotClosedError
	require.ErrorAs(t, err, &notClosed)
	assert.Equal(t, 3, notClosed.Index)
	assert.InDelta(t, geom.Point{X: 5, Y: 5}.Sub(geom.Point{X: 0, Y: 0}).Length(), notClosed.Gap, 1e-9)
}

func TestCheckClosedAcceptsExactClosure(t *testing.T) {
	current := []AbsCommand{
		{Kind: pathregions.Line, Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 0, Y: 0}},
	}
	assert.NoError(t, checkClosed(current, 0, geom.Point{X: 0, Y: 0}))
}

func TestNormalizeRequiresLeadingMove(t *testing.T) {
	cmds := []pathregions.Command{
		{Kind: pathregions.Line, X: 10, Y: 0},
	}
	_, err := Normalize(cmds)
	require.Error(t, err)
	var malformed *pathregions.MalformedSubpathError
	assert.ErrorAs(t, err, &malformed)
}
