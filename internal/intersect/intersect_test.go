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

package intersect

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kittycad.io/pathregions/internal/geom"
)

func TestSelfBowtie(t *testing.T) {
	// M 0 0 L 10 10 L 10 0 L 0 10 Z
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 10}, {X: 10, Y: 0}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	result := Self(points, 0)
	require.Len(t, result, 1)
	assert.InDelta(t, 5.0, result[0].Point.X, 1e-9)
	assert.InDelta(t, 5.0, result[0].Point.Y, 1e-9)
	assert.Equal(t, 0, result[0].ISegmentA)
	assert.Equal(t, 2, result[0].ISegmentB)
}

func TestSelfSkipsAdjacentSegments(t *testing.T) {
	// A square's consecutive edges meet at a corner; that must not register
	// as a self-intersection.
	points := []geom.Point{
		{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10}, {X: 0, Y: 0},
	}
	result := Self(points, 0)
	assert.Empty(t, result)
}

func TestPairOffsetsIntoGlobalIndex(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 5}, {X: 10, Y: 5}}
	b := []geom.Point{{X: 5, Y: 0}, {X: 5, Y: 10}}
	result := Pair(a, 100, b, 200)
	require.Len(t, result, 1)
	assert.Equal(t, 100, result[0].ISegmentA)
	assert.Equal(t, 200, result[0].ISegmentB)
	assert.InDelta(t, 5.0, result[0].Point.X, 1e-9)
	assert.InDelta(t, 5.0, result[0].Point.Y, 1e-9)
}

func TestSegmentRejectsParallel(t *testing.T) {
	_, ok := segment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 0, Y: 1}, geom.Point{X: 10, Y: 1})
	assert.False(t, ok)
}

func TestSegmentRejectsEndpointTouch(t *testing.T) {
	// The two segments meet exactly at an endpoint (t=0 on the second),
	// which the edge policy in spec 4.1 excludes.
	_, ok := segment(geom.Point{X: 0, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 10, Y: 0}, geom.Point{X: 10, Y: 10})
	assert.False(t, ok)
}

func TestIntersectionSymmetry(t *testing.T) {
	a := []geom.Point{{X: 0, Y: 5}, {X: 10, Y: 5}}
	b := []geom.Point{{X: 5, Y: 0}, {X: 5, Y: 10}}
	ab := Pair(a, 0, b, 0)
	ba := Pair(b, 0, a, 0)
	require.Len(t, ab, 1)
	require.Len(t, ba, 1)
	assert.InDelta(t, ab[0].TA, ba[0].TB, 1e-9)
	assert.InDelta(t, ab[0].TB, ba[0].TA, 1e-9)
	assert.True(t, ab[0].Point.Equals(ba[0].Point))
}
