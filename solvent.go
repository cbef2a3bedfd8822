// Copyright 2022  Il Sub Bang
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package h3go

// SolventOptions configures DissolveCells.
type SolventOptions struct {
	// Dedup, when true, silently drops duplicate input cells instead of
	// failing with CompactionError.
	Dedup bool
}

// DissolveCells outlines a set of cells, possibly at heterogeneous
// resolutions, as a multi-polygon per spec §4.J: directed edges are
// cancelled where they appear in both directions (shared internal
// boundary), and the remaining edges are stitched into closed rings,
// classified outer (CCW) or hole (CW) by signed planar (lng, lat) area
// (not spherical area; see signedArea), and holes
// are paired with their enclosing outer ring.
//
// Grounded in vertexgraph.go's directed-edge hash-bucket substrate: edges
// are stored the same way (buckets hashed by the "from" vertex), but
// cancellation and ring classification are new.
func DissolveCells(cells []CellIndex, opts SolventOptions) ([]Polygon, error) {
	seenCell := make(map[CellIndex]bool, len(cells))
	graph := &VertexGraph{}
	initVertexGraph(graph, nextPow2(len(cells)*6+1), 0)

	for _, c := range cells {
		if seenCell[c] {
			if opts.Dedup {
				continue
			}
			return nil, &CompactionError{Kind: CompactionDuplicateInput, Index: H3Index(c)}
		}
		seenCell[c] = true

		boundary := c.Boundary()
		n := len(boundary)
		for i := 0; i < n; i++ {
			from := boundary[i]
			to := boundary[(i+1)%n]
			if existing := findNodeForEdge(graph, &GeoCoord{lat: to.Lat, lon: to.Lng}, &GeoCoord{lat: from.Lat, lon: from.Lng}); existing != nil {
				// The reverse edge is already present: this boundary is
				// shared with a neighboring cell in the set. Cancel both.
				removeVertexNode(graph, existing)
				continue
			}
			addVertexNode(graph, &GeoCoord{lat: from.Lat, lon: from.Lng}, &GeoCoord{lat: to.Lat, lon: to.Lng})
		}
	}

	var rings []Ring
	for {
		start := firstVertexNode(graph)
		if start == nil {
			break
		}
		ring, err := stitchRing(graph, start)
		if err != nil {
			return nil, err
		}
		rings = append(rings, ring)
	}

	return classifyRings(rings)
}

// stitchRing follows edges from start's "to" vertex to the edge starting
// there, closing a ring, per spec §4.J step 4.
func stitchRing(graph *VertexGraph, start *VertexNode) (Ring, error) {
	var ring Ring
	ring = append(ring, geoCoordToLatLng(start.from))
	current := start
	removeVertexNode(graph, start)

	for i := 0; i < graph.size+len(ring)+1; i++ {
		if geoAlmostEqual(&current.to, &start.from) {
			// Closed the ring; the closing vertex duplicates ring[0], so
			// it is not appended again.
			return ring, nil
		}
		ring = append(ring, geoCoordToLatLng(current.to))
		next := findNodeForVertex(graph, &current.to)
		if next == nil {
			return nil, &DissolveError{Kind: DissolveNonContiguous}
		}
		removeVertexNode(graph, next)
		current = next
	}
	return nil, &DissolveError{Kind: DissolveNonContiguous}
}

// classifyRings sorts stitched rings into outer (CCW, positive signed
// area) rings and holes (CW), then pairs each hole with the smallest
// enclosing outer ring by a point-in-ring test.
func classifyRings(rings []Ring) ([]Polygon, error) {
	var outers []Ring
	var holes []Ring
	for _, r := range rings {
		if len(r) < 3 {
			return nil, &DissolveError{Kind: DissolveDegenerateRing}
		}
		if signedArea(r) > 0 {
			outers = append(outers, r)
		} else {
			holes = append(holes, r)
		}
	}

	polys := make([]Polygon, len(outers))
	for i, o := range outers {
		polys[i] = Polygon{Outer: o}
	}

	for _, h := range holes {
		owner := -1
		for i, p := range polys {
			if pointInRing(h[0], p.Outer) &&
				(owner < 0 || signedArea(p.Outer) < signedArea(polys[owner].Outer)) {
				owner = i
			}
		}
		if owner < 0 {
			return nil, &DissolveError{Kind: DissolveNonContiguous}
		}
		polys[owner].Holes = append(polys[owner].Holes, h)
	}

	return polys, nil
}

// signedArea computes twice the planar (lng, lat) signed area of a ring;
// positive for CCW, negative for CW. Adequate for ring classification
// since H3 cell boundaries are always small relative to the sphere.
func signedArea(r Ring) float64 {
	var sum float64
	n := len(r)
	for i := 0; i < n; i++ {
		a := r[i]
		b := r[(i+1)%n]
		sum += a.Lng*b.Lat - b.Lng*a.Lat
	}
	return sum
}

func nextPow2(n int) int {
	p := 1
	for p < n {
		p *= 2
	}
	if p == 0 {
		p = 1
	}
	return p
}
