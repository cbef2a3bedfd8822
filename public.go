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

import "math"

// CellIndex is a 64-bit hexagon (or pentagon) cell address, mode 1.
type CellIndex H3Index

// DirectedEdgeIndex is a 64-bit directed-edge address, mode 2: a cell
// origin plus one of its six neighbor directions.
type DirectedEdgeIndex H3Index

// VertexIndex is a 64-bit vertex address, mode 4: a cell origin plus one
// of its five or six boundary vertex numbers.
type VertexIndex H3Index

// LatLng is a geographic coordinate in radians.
type LatLng struct {
	Lat float64
	Lng float64
}

// NewLatLng builds a LatLng from radians, validating range.
func NewLatLng(lat, lng float64) (LatLng, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || lat < -M_PI_2 || lat > M_PI_2 {
		return LatLng{}, &InvalidLatLngError{Lat: lat, Lng: lng}
	}
	return LatLng{Lat: lat, Lng: lng}, nil
}

func (ll LatLng) geoCoord() GeoCoord {
	return GeoCoord{lat: ll.Lat, lon: constrainLng(ll.Lng)}
}

func geoCoordToLatLng(g GeoCoord) LatLng {
	return LatLng{Lat: g.lat, Lng: g.lon}
}

// ToCell projects this coordinate onto the grid at the given resolution.
func (ll LatLng) ToCell(res int) (CellIndex, error) {
	if res < 0 || res > MAX_H3_RES {
		return 0, &InvalidResolutionError{Resolution: res}
	}
	g := ll.geoCoord()
	h := GeoToH3(&g, res)
	if h == H3_NULL {
		return 0, &InvalidLatLngError{Lat: ll.Lat, Lng: ll.Lng}
	}
	return CellIndex(h), nil
}

// Distance returns the great-circle distance in radians between two
// coordinates on the unit sphere.
func (ll LatLng) Distance(other LatLng) float64 {
	a, b := ll.geoCoord(), other.geoCoord()
	return PointDistRads(&a, &b)
}

// IsValid reports whether c satisfies the cell-index invariants (§4.A).
func (c CellIndex) IsValid() bool {
	return H3IsValid(H3Index(c)) && H3_GET_MODE(H3Index(c)) == H3_HEXAGON_MODE
}

// Resolution returns c's resolution, 0..15.
func (c CellIndex) Resolution() int {
	return H3_GET_RESOLUTION(H3Index(c))
}

// BaseCell returns c's resolution-0 base cell, 0..121.
func (c CellIndex) BaseCell() int {
	return H3_GET_BASE_CELL(H3Index(c))
}

// IsPentagon reports whether c is a pentagon: its base cell is one of the
// twelve pentagons and every resolution digit is 0.
func (c CellIndex) IsPentagon() bool {
	return H3IsPentagon(H3Index(c))
}

// String renders c as lowercase hex with no prefix.
func (c CellIndex) String() string {
	return H3Index(c).String()
}

// ParseCellIndex parses the 15/16-character lowercase (or mixed-case) hex
// text form produced by String.
func ParseCellIndex(s string) (CellIndex, error) {
	h := StringToH3(s)
	if h == H3_NULL {
		return 0, &InvalidIndexError{Index: h}
	}
	return CellIndex(h), nil
}

// ToLatLng returns the geographic center of the cell.
func (c CellIndex) ToLatLng() LatLng {
	var g GeoCoord
	H3ToGeo(H3Index(c), &g)
	return geoCoordToLatLng(g)
}

// Boundary returns the cell's boundary vertices in CCW order.
func (c CellIndex) Boundary() []LatLng {
	var gb GeoBoundary
	H3ToGeoBoundary(H3Index(c), &gb)
	out := make([]LatLng, gb.numVerts)
	for i := 0; i < gb.numVerts; i++ {
		out[i] = geoCoordToLatLng(gb.verts[i])
	}
	return out
}

// Parent returns the ancestor of c at the given resolution, which must be
// less than or equal to c's own resolution.
func (c CellIndex) Parent(res int) (CellIndex, error) {
	if res < 0 || res > c.Resolution() {
		return 0, &ResolutionMismatchError{Want: c.Resolution(), Got: res}
	}
	p := H3ToParent(H3Index(c), res)
	if p == H3_NULL {
		return 0, &ResolutionMismatchError{Want: c.Resolution(), Got: res}
	}
	return CellIndex(p), nil
}

// Children returns every descendant of c at the given resolution, which
// must be greater than or equal to c's own resolution.
func (c CellIndex) Children(res int) ([]CellIndex, error) {
	if res < c.Resolution() {
		return nil, &ResolutionMismatchError{Want: c.Resolution(), Got: res}
	}
	var out []H3Index
	H3ToChildren(H3Index(c), res, &out)
	children := make([]CellIndex, len(out))
	for i, h := range out {
		children[i] = CellIndex(h)
	}
	return children, nil
}

// CenterChild returns the single center descendant of c at res.
func (c CellIndex) CenterChild(res int) (CellIndex, error) {
	if res < c.Resolution() {
		return 0, &ResolutionMismatchError{Want: c.Resolution(), Got: res}
	}
	child := H3ToCenterChild(H3Index(c), res)
	if child == H3_NULL {
		return 0, &ResolutionMismatchError{Want: c.Resolution(), Got: res}
	}
	return CellIndex(child), nil
}

// CompactCells replaces runs of seven sibling cells (or six for a
// pentagon) with their parent, recursively, producing the minimal
// equivalent set. Fails with CompactionError on duplicate input.
func CompactCells(cells []CellIndex) ([]CellIndex, error) {
	seen := make(map[CellIndex]bool, len(cells))
	for _, c := range cells {
		if seen[c] {
			return nil, &CompactionError{Kind: CompactionDuplicateInput, Index: H3Index(c)}
		}
		seen[c] = true
	}
	in := make([]H3Index, len(cells))
	for i, c := range cells {
		in[i] = H3Index(c)
	}
	out, err := Compact(in)
	if err != nil {
		dup := H3Index(0)
		if len(in) > 0 {
			dup = in[0]
		}
		return nil, &CompactionError{Kind: CompactionDuplicateInput, Index: dup}
	}
	result := make([]CellIndex, len(out))
	for i, h := range out {
		result[i] = CellIndex(h)
	}
	return result, nil
}

// UncompactCells expands every cell in the input to resolution res,
// failing with OutputLimitExceeded if the result would exceed maxCells.
func UncompactCells(cells []CellIndex, res int, maxCells int) ([]CellIndex, error) {
	in := make([]H3Index, len(cells))
	for i, c := range cells {
		in[i] = H3Index(c)
	}
	size, err := MaxUncompactSize(in, res)
	if err != nil {
		return nil, &InvalidResolutionError{Resolution: res}
	}
	if maxCells > 0 && size > maxCells {
		return nil, &OutputLimitExceededError{Limit: maxCells}
	}
	out, err := Uncompact(in, res)
	if err != nil {
		return nil, &OutputLimitExceededError{Limit: maxCells}
	}
	result := make([]CellIndex, len(out))
	for i, h := range out {
		result[i] = CellIndex(h)
	}
	return result, nil
}

// GridDisk returns every cell within grid distance k of origin, including
// origin itself, in spiral order.
func GridDisk(origin CellIndex, k int) ([]CellIndex, error) {
	if k < 0 {
		return nil, &InvalidResolutionError{Resolution: k}
	}
	raw := KRing(H3Index(origin), k)
	out := make([]CellIndex, 0, len(raw))
	for _, h := range raw {
		if h != H3_NULL {
			out = append(out, CellIndex(h))
		}
	}
	return out, nil
}

// GridDiskDistances behaves like GridDisk but also reports, for each
// returned cell, its grid distance from origin.
func GridDiskDistances(origin CellIndex, k int) ([]CellIndex, []int, error) {
	if k < 0 {
		return nil, nil, &InvalidResolutionError{Resolution: k}
	}
	raw := make([]H3Index, MaxKringSize(k))
	dist := make([]int, MaxKringSize(k))
	kRingDistances(H3Index(origin), k, raw, dist)
	cells := make([]CellIndex, 0, len(raw))
	distances := make([]int, 0, len(raw))
	for i, h := range raw {
		if h != H3_NULL {
			cells = append(cells, CellIndex(h))
			distances = append(distances, dist[i])
		}
	}
	return cells, distances, nil
}

// GridRing returns every cell at exactly grid distance k from origin, in
// the order GridDiskDistances discovers them; the cells are not sorted
// clockwise. It never returns a PentagonError: near a pentagon the ring
// simply holds fewer than 6k cells.
func GridRing(origin CellIndex, k int) ([]CellIndex, error) {
	disk, distances, err := GridDiskDistances(origin, k)
	if err != nil {
		return nil, err
	}
	out := make([]CellIndex, 0, 6*k)
	for i, c := range disk {
		if distances[i] == k {
			out = append(out, c)
		}
	}
	return out, nil
}

// Neighbor steps one unit from origin in the given IJK+ direction (1..6),
// failing with PentagonError if the step crosses a pentagon's deleted
// direction.
func Neighbor(origin CellIndex, dir int) (CellIndex, error) {
	d := Direction(dir)
	if d <= CENTER_DIGIT || d >= Direction(NUM_DIGITS) {
		return 0, &InvalidIndexError{Index: H3Index(origin)}
	}
	if origin.IsPentagon() && d == K_AXES_DIGIT {
		return 0, &PentagonError{Index: H3Index(origin), Op: "neighbor"}
	}
	rotations := 0
	n := h3NeighborRotations(H3Index(origin), d, &rotations)
	if n == H3_NULL {
		return 0, &PentagonError{Index: H3Index(origin), Op: "neighbor"}
	}
	return CellIndex(n), nil
}

// GridDistance returns the number of grid steps between a and b, computed
// via LocalIJ, failing with PentagonError if the cells span a pentagon's
// distortion cone.
func GridDistance(a, b CellIndex) (int, error) {
	if a.Resolution() != b.Resolution() {
		return 0, &ResolutionMismatchError{Want: a.Resolution(), Got: b.Resolution()}
	}
	d := H3Distance(H3Index(a), H3Index(b))
	if d < 0 {
		return 0, &PentagonError{Index: H3Index(a), Op: "grid_distance"}
	}
	return d, nil
}

// GridLine samples cells along the LocalIJ segment from a to b, snapping
// each sample to the nearest cell. Output length is GridDistance(a,b)+1.
func GridLine(a, b CellIndex) ([]CellIndex, error) {
	size := H3LineSize(H3Index(a), H3Index(b))
	if size < 0 {
		return nil, &PentagonError{Index: H3Index(a), Op: "line"}
	}
	out := make([]H3Index, size)
	if rc := H3Line(H3Index(a), H3Index(b), &out); rc != 0 {
		return nil, &PentagonError{Index: H3Index(a), Op: "line"}
	}
	result := make([]CellIndex, len(out))
	for i, h := range out {
		result[i] = CellIndex(h)
	}
	return result, nil
}

// LocalIJ is a signed 2D integer offset from an anchor cell's frame.
type LocalIJ struct {
	Anchor CellIndex
	I, J   int
}

// CellToLocalIJ projects cell into the LocalIJ frame anchored at origin,
// failing with PentagonError when the path crosses an unresolvable
// pentagon distortion.
func CellToLocalIJ(origin, cell CellIndex) (LocalIJ, error) {
	var ij CoordIJ
	if rc := ExperimentalH3ToLocalIj(H3Index(origin), H3Index(cell), &ij); rc != 0 {
		return LocalIJ{}, &PentagonError{Index: H3Index(origin), Op: "local_ij"}
	}
	return LocalIJ{Anchor: origin, I: ij.i, J: ij.j}, nil
}

// LocalIJToCell is the inverse of CellToLocalIJ.
func LocalIJToCell(anchor CellIndex, i, j int) (CellIndex, error) {
	var out H3Index
	if rc := ExperimentalLocalIjToH3(H3Index(anchor), &CoordIJ{i: i, j: j}, &out); rc != 0 {
		return 0, &PentagonError{Index: H3Index(anchor), Op: "local_ij"}
	}
	return CellIndex(out), nil
}

// PentagonCells returns the twelve pentagon cells at the given resolution.
func PentagonCells(res int) ([]CellIndex, error) {
	if res < 0 || res > MAX_H3_RES {
		return nil, &InvalidResolutionError{Resolution: res}
	}
	out := make([]H3Index, NUM_PENTAGONS)
	GetPentagonIndexes(res, &out)
	result := make([]CellIndex, len(out))
	for i, h := range out {
		result[i] = CellIndex(h)
	}
	return result, nil
}

// CellAreaKm2 returns the area of c in square kilometers.
func (c CellIndex) CellAreaKm2() float64 {
	return CellAreaKm2(H3Index(c))
}

// CellAreaM2 returns the area of c in square meters.
func (c CellIndex) CellAreaM2() float64 {
	return CellAreaM2(H3Index(c))
}
