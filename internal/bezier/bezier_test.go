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

package bezier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"kittycad.io/pathregions/internal/geom"
)

func TestQuadEvaluateEndpoints(t *testing.T) {
	q := Quad{geom.Point{0, 0}, geom.Point{5, 10}, geom.Point{10, 0}}
	assert.Equal(t, q.P0, q.Evaluate(0))
	assert.Equal(t, q.P2, q.Evaluate(1))
}

func TestCubicEvaluateEndpoints(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{0, 10}, geom.Point{10, 10}, geom.Point{10, 0}}
	assert.Equal(t, c.P0, c.Evaluate(0))
	assert.Equal(t, c.P3, c.Evaluate(1))
}

func TestQuadSplitAtReproducesCurve(t *testing.T) {
	q := Quad{geom.Point{0, 0}, geom.Point{5, 10}, geom.Point{10, 0}}
	left, right := q.SplitAt(0.5)
	mid := q.Evaluate(0.5)
	assert.InDelta(t, mid.X, left.P2.X, 1e-9)
	assert.InDelta(t, mid.Y, left.P2.Y, 1e-9)
	assert.InDelta(t, mid.X, right.P0.X, 1e-9)
	assert.InDelta(t, mid.Y, right.P0.Y, 1e-9)

	// sampling the left sub-curve over [0,1] should reproduce sampling the
	// original over [0,0.5]
	for _, t2 := range []float64{0.0, 0.25, 0.5, 0.75, 1.0} {
		want := q.Evaluate(t2 * 0.5)
		got := left.Evaluate(t2)
		assert.InDelta(t, want.X, got.X, 1e-9)
		assert.InDelta(t, want.Y, got.Y, 1e-9)
	}
}

func TestCubicSplitRangeMatchesDirectEvaluation(t *testing.T) {
	c := Cubic{geom.Point{0, 0}, geom.Point{0, 10}, geom.Point{10, 10}, geom.Point{10, 0}}
	sub := c.SplitRange(0.25, 0.75)
	for _, t2 := range []float64{0.0, 0.5, 1.0} {
		want := c.Evaluate(0.25 + t2*0.5)
		got := sub.Evaluate(t2)
		assert.InDelta(t, want.X, got.X, 1e-6)
		assert.InDelta(t, want.Y, got.Y, 1e-6)
	}
}

func TestQuadSplitRangeFullRange(t *testing.T) {
	q := Quad{geom.Point{0, 0}, geom.Point{5, 10}, geom.Point{10, 0}}
	sub := q.SplitRange(0, 1)
	assert.InDelta(t, q.P0.X, sub.P0.X, 1e-9)
	assert.InDelta(t, q.P2.X, sub.P2.X, 1e-9)
}

func TestQuadTangentDirection(t *testing.T) {
	q := Quad{geom.Point{0, 0}, geom.Point{5, 0}, geom.Point{10, 0}}
	tan := q.Tangent(0.5)
	assert.Greater(t, tan.X, 0.0)
	assert.InDelta(t, 0.0, tan.Y, 1e-9)
}

func TestSamplePointCount(t *testing.T) {
	q := Quad{geom.Point{0, 0}, geom.Point{5, 10}, geom.Point{10, 0}}
	pts := q.Sample(50)
	assert.Len(t, pts, 50)
	assert.Equal(t, q.P0, pts[0])
	assert.Equal(t, q.P2, pts[len(pts)-1])
}
