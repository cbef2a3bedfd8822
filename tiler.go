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

import (
	"math"

	"github.com/dhconnelly/rtreego"
)

// ContainmentMode selects how a cell is judged to belong to a polygon
// during rasterization.
type ContainmentMode int

const (
	// Centroid includes a cell whose center is strictly inside the polygon.
	Centroid ContainmentMode = iota
	// ContainsCentroid is Centroid but excludes cells centered on a hole.
	ContainsCentroid
	// Covers includes a cell that intersects the polygon in any way.
	Covers
	// IntersectsBoundary includes a cell whose boundary crosses an edge.
	IntersectsBoundary
	// ContainsBoundary includes a cell fully inside the polygon.
	ContainsBoundary
)

// Ring is a closed sequence of LatLng vertices.
type Ring []LatLng

// Polygon is an outer ring plus zero or more holes.
type Polygon struct {
	Outer Ring
	Holes []Ring
}

// TilerOptions configures PolygonToCells.
type TilerOptions struct {
	Mode     ContainmentMode
	MaxCells int
}

// ringBox is an rtreego.Spatial wrapper around a ring's bounding box, used
// to cheaply reject candidate cells before the exact containment test.
type ringBox struct {
	ring Ring
	rect rtreego.Rect
}

func (r *ringBox) Bounds() rtreego.Rect {
	return r.rect
}

// ringBBox computes the geographic bounding box of a ring, for feeding
// into bboxHexEstimate to size the candidate-cell capacity up front.
func ringBBox(r Ring) *BBox {
	bbox := &BBox{north: math.Inf(-1), south: math.Inf(1), east: math.Inf(-1), west: math.Inf(1)}
	for _, v := range r {
		bbox.north = math.Max(bbox.north, v.Lat)
		bbox.south = math.Min(bbox.south, v.Lat)
		bbox.east = math.Max(bbox.east, v.Lng)
		bbox.west = math.Min(bbox.west, v.Lng)
	}
	return bbox
}

func newRingBox(r Ring) *ringBox {
	minLng, minLat := math.Inf(1), math.Inf(1)
	maxLng, maxLat := math.Inf(-1), math.Inf(-1)
	for _, v := range r {
		minLng = math.Min(minLng, v.Lng)
		maxLng = math.Max(maxLng, v.Lng)
		minLat = math.Min(minLat, v.Lat)
		maxLat = math.Max(maxLat, v.Lat)
	}
	const epsilon = 1e-9
	lngLen := math.Max(maxLng-minLng, epsilon)
	latLen := math.Max(maxLat-minLat, epsilon)
	rect, _ := rtreego.NewRect(rtreego.Point{minLng, minLat}, []float64{lngLen, latLen})
	return &ringBox{ring: r, rect: rect}
}

// PolygonToCells rasterizes poly into the set of cells at res satisfying
// the containment mode in opts, per spec §4.I. Polygons whose outer ring
// spans more than pi radians of longitude are treated as transmeridian and
// split into two hemispheres before seeding.
func PolygonToCells(poly Polygon, res int, opts TilerOptions) ([]CellIndex, error) {
	if res < 0 || res > MAX_H3_RES {
		return nil, &InvalidResolutionError{Resolution: res}
	}

	tree := rtreego.NewTree(2, 4, 16)
	tree.Insert(newRingBox(poly.Outer))
	outerBBox := ringBBox(poly.Outer)
	var holes []Ring
	for _, h := range poly.Holes {
		if bboxEquals(ringBBox(h), outerBBox) {
			// A hole with the same extent as the outer ring would dissolve
			// the polygon entirely; treat it as malformed input and skip.
			continue
		}
		holes = append(holes, h)
		tree.Insert(newRingBox(h))
	}
	poly.Holes = holes

	polys := splitTransmeridian(poly)

	seen := make(map[CellIndex]bool)
	out := make([]CellIndex, 0, bboxHexEstimate(ringBBox(poly.Outer), res))
	for _, p := range polys {
		seeds, err := seedCells(p, res)
		if err != nil {
			return nil, err
		}
		queue := append([]CellIndex{}, seeds...)
		for len(queue) > 0 {
			c := queue[0]
			queue = queue[1:]
			if seen[c] {
				continue
			}
			seen[c] = true

			if !cellSatisfies(c, p, opts.Mode, tree) {
				continue
			}
			out = append(out, c)
			if opts.MaxCells > 0 && len(out) > opts.MaxCells {
				return nil, &OutputLimitExceededError{Limit: opts.MaxCells}
			}

			disk, err := GridDisk(c, 1)
			if err != nil {
				return nil, err
			}
			for _, n := range disk {
				if !seen[n] {
					queue = append(queue, n)
				}
			}
		}
	}

	sortCellIndexes(out)
	return out, nil
}

// seedCells starts the flood fill from every outer vertex plus the
// polygon's bbox center, which for convex-ish polygons already lands
// inside the ring and saves a few BFS generations.
func seedCells(p Polygon, res int) ([]CellIndex, error) {
	var seeds []CellIndex
	for _, v := range p.Outer {
		c, err := v.ToCell(res)
		if err != nil {
			return nil, err
		}
		seeds = append(seeds, c)
	}
	if len(seeds) == 0 {
		return nil, &InvalidLatLngError{}
	}

	bbox := ringBBox(p.Outer)
	var centerGeo GeoCoord
	bboxCenter(bbox, &centerGeo)
	center := geoCoordToLatLng(centerGeo)
	if bboxContains(bbox, &centerGeo) {
		if c, err := center.ToCell(res); err == nil {
			seeds = append(seeds, c)
		}
	}

	return seeds, nil
}

// splitTransmeridian detects an outer ring whose longitudes span more than
// pi radians and, if so, splits it into two polygons at the antimeridian.
// Ring/hole geometry that does not actually need splitting is returned
// unchanged, single-element.
func splitTransmeridian(poly Polygon) []Polygon {
	minLng, maxLng := math.Inf(1), math.Inf(-1)
	for _, v := range poly.Outer {
		minLng = math.Min(minLng, v.Lng)
		maxLng = math.Max(maxLng, v.Lng)
	}
	if maxLng-minLng <= M_PI {
		return []Polygon{poly}
	}

	var east, west Ring
	for _, v := range poly.Outer {
		if v.Lng >= 0 {
			east = append(east, v)
		} else {
			west = append(west, v)
		}
	}
	if len(east) < 3 || len(west) < 3 {
		return []Polygon{poly}
	}
	return []Polygon{{Outer: east}, {Outer: west}}
}

// cellSatisfies tests a candidate cell against the polygon under mode. The
// rtree is consulted first to skip the exact test for cells nowhere near
// any ring.
func cellSatisfies(c CellIndex, p Polygon, mode ContainmentMode, tree *rtreego.Rtree) bool {
	center := c.ToLatLng()
	boundary := c.Boundary()

	nearAny := nearPolygon(center, boundary, tree)
	if !nearAny {
		return false
	}

	switch mode {
	case Centroid:
		return pointInRing(center, p.Outer)
	case ContainsCentroid:
		if !pointInRing(center, p.Outer) {
			return false
		}
		for _, h := range p.Holes {
			if pointInRing(center, h) {
				return false
			}
		}
		return true
	case Covers:
		if len(p.Outer) > 0 && pointInRing(p.Outer[0], Ring(boundary)) {
			// The polygon lies (at least partly) inside the cell.
			return true
		}
		for _, v := range boundary {
			if pointInRing(v, p.Outer) {
				return true
			}
		}
		return pointInRing(center, p.Outer) || ringIntersects(boundary, p.Outer)
	case IntersectsBoundary:
		return ringIntersects(boundary, p.Outer)
	case ContainsBoundary:
		for _, v := range boundary {
			if !pointInRing(v, p.Outer) {
				return false
			}
		}
		for _, h := range p.Holes {
			for _, v := range boundary {
				if pointInRing(v, h) {
					return false
				}
			}
		}
		return true
	default:
		return false
	}
}

func nearPolygon(center LatLng, boundary []LatLng, tree *rtreego.Rtree) bool {
	cell := append(Ring{center}, boundary...)
	return len(tree.SearchIntersect(newRingBox(cell).rect)) > 0
}

// pointInRing is a planar (lng, lat) ray-casting point-in-polygon test,
// adequate for the sub-hemisphere rings produced by splitTransmeridian.
func pointInRing(p LatLng, ring Ring) bool {
	inside := false
	n := len(ring)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		vi, vj := ring[i], ring[j]
		if (vi.Lat > p.Lat) != (vj.Lat > p.Lat) {
			lngAtP := (vj.Lng-vi.Lng)*(p.Lat-vi.Lat)/(vj.Lat-vi.Lat) + vi.Lng
			if p.Lng < lngAtP {
				inside = !inside
			}
		}
	}
	return inside
}

// ringIntersects reports whether any edge of a properly crosses any edge of
// ring b; edges that only touch are not counted (see segmentsIntersect).
func ringIntersects(a []LatLng, b Ring) bool {
	for i := 0; i < len(a); i++ {
		a1, a2 := a[i], a[(i+1)%len(a)]
		for j := 0; j < len(b); j++ {
			b1, b2 := b[j], b[(j+1)%len(b)]
			if segmentsIntersect(a1, a2, b1, b2) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, p3, p4 LatLng) bool {
	d1 := cross(p4, p3, p1)
	d2 := cross(p4, p3, p2)
	d3 := cross(p2, p1, p3)
	d4 := cross(p2, p1, p4)
	return ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0))
}

func cross(a, b, c LatLng) float64 {
	return (b.Lng-a.Lng)*(c.Lat-a.Lat) - (b.Lat-a.Lat)*(c.Lng-a.Lng)
}

func sortCellIndexes(cells []CellIndex) {
	for i := 1; i < len(cells); i++ {
		for j := i; j > 0 && cells[j-1] > cells[j]; j-- {
			cells[j-1], cells[j] = cells[j], cells[j-1]
		}
	}
}
