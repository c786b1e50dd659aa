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

package fragment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/geom"
	"kittycad.io/pathregions/internal/normalize"
	"kittycad.io/pathregions/internal/sample"
)

func squareEnriched(t *testing.T) []sample.EnrichedCommand {
	t.Helper()
	subs, err := normalize.Normalize([]pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 0},
		{Kind: pathregions.Line, X: 10, Y: 10},
		{Kind: pathregions.Line, X: 0, Y: 10},
		{Kind: pathregions.Close},
	})
	require.NoError(t, err)
	_, enriched, err := sample.Sample(subs[0])
	require.NoError(t, err)
	return enriched
}

func TestBuildNoCutsProducesOneFragmentPerCommand(t *testing.T) {
	enriched := squareEnriched(t)
	frags, err := Build(enriched, map[int][]float64{})
	require.NoError(t, err)
	assert.Len(t, frags, 4)
	assert.True(t, frags[0].Start.Equals(geom.Point{X: 0, Y: 0}))
	assert.True(t, frags[len(frags)-1].End.Equals(geom.Point{X: 0, Y: 0}))
}

func TestBuildWithCutSplitsOneCommandInTwo(t *testing.T) {
	enriched := squareEnriched(t)
	plan := map[int][]float64{1: {0.5}} // the second command (first Line, local index 1) cut at its midpoint
	frags, err := Build(enriched, plan)
	require.NoError(t, err)
	assert.Len(t, frags, 5)
}

func TestDedupeDropsCloseValues(t *testing.T) {
	got := dedupe([]float64{0.1, 0.1 + geom.Epsilon/2, 0.5, 0.9})
	assert.Equal(t, []float64{0.1, 0.5, 0.9}, got)
}

func TestMapToCommandLineSingleSegment(t *testing.T) {
	enriched := squareEnriched(t)
	iCmd, tCmd, ok := mapToCommand(enriched, 0, 0.5)
	require.True(t, ok)
	assert.Equal(t, enriched[1].ICommand, iCmd)
	assert.InDelta(t, 0.5, tCmd, 1e-9)
}

func TestPlanSortsAndDedupes(t *testing.T) {
	enriched := squareEnriched(t)
	cuts := []CutPoint{{ISegment: 0, T: 0.8}, {ISegment: 0, T: 0.2}, {ISegment: 0, T: 0.8}}
	plan := Plan(enriched, cuts)
	assert.Equal(t, []float64{0.2, 0.8}, plan[enriched[1].ICommand])
}

func TestCubicSelfIntersectionFragmentCount(t *testing.T) {
	// M 0 0 C 20 30 -10 30 10 0 -- one self-intersection on the curve.
	subs, err := normalize.Normalize([]pathregions.Command{
		{Kind: pathregions.Move, X: 0, Y: 0},
		{Kind: pathregions.CubicBez, X1: 20, Y1: 30, X2: -10, Y2: 30, X: 10, Y: 0},
	})
	require.NoError(t, err)
	points, enriched, err := sample.Sample(subs[0])
	require.NoError(t, err)
	assert.NotEmpty(t, points)

	cubic := enriched[1]
	span := cubic.ILastPoint - cubic.IFirstPoint
	// the curve crosses itself at t~0.113 and t~0.887; rather than
	// re-running the intersection finder, this cuts it at its midpoint
	// sample, to keep this a focused fragment-builder test.
	mid := span / 2
	tCmd := (float64(mid) + 0.0) / float64(span)
	plan := map[int][]float64{cubic.ICommand: {tCmd}}
	frags, err := Build(enriched, plan)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, len(frags), 2)
}
