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

package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"kittycad.io/pathregions/internal/classify"
)

func TestCleanDropsRedundantFillInsideFillParent(t *testing.T) {
	regions := []classify.Region{
		{IsHole: false, ParentIndex: -1},
		{IsHole: false, ParentIndex: 0}, // non-hole fully inside non-hole parent: redundant
	}
	out := Clean(regions)
	require.Len(t, out, 1)
	assert.Equal(t, -1, out[0].ParentIndex)
}

func TestCleanKeepsAlternatingEvenOddNesting(t *testing.T) {
	regions := []classify.Region{
		{IsHole: false, ParentIndex: -1},
		{IsHole: true, ParentIndex: 0},
		{IsHole: false, ParentIndex: 1},
	}
	out := Clean(regions)
	require.Len(t, out, 3)
	assert.Equal(t, -1, out[0].ParentIndex)
	assert.Equal(t, 0, out[1].ParentIndex)
	assert.Equal(t, 1, out[2].ParentIndex)
}

func TestCleanEmitsParentFirstOrderEvenFromScrambledInput(t *testing.T) {
	// index 0 is the deepest child, index 2 is the root.
	regions := []classify.Region{
		{IsHole: false, ParentIndex: 1},
		{IsHole: true, ParentIndex: 2},
		{IsHole: false, ParentIndex: -1},
	}
	out := Clean(regions)
	require.Len(t, out, 3)
	for i, r := range out {
		if r.ParentIndex >= 0 {
			assert.Less(t, r.ParentIndex, i, "parent must be emitted before its child")
		}
	}
}

func TestCleanReparentsChildOfRemovedRedundantRegion(t *testing.T) {
	regions := []classify.Region{
		{IsHole: false, ParentIndex: -1}, // 0: root fill
		{IsHole: false, ParentIndex: 0},  // 1: redundant fill inside root
		{IsHole: true, ParentIndex: 1},   // 2: hole whose immediate parent is the redundant region
	}
	out := Clean(regions)
	require.Len(t, out, 2)
	root := out[0]
	hole := out[1]
	assert.False(t, root.IsHole)
	assert.True(t, hole.IsHole)
	assert.Equal(t, 0, hole.ParentIndex)
}
