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

// PlotSegments rasterizes a polyline (a sequence of LatLng vertices) to
// cells at res, per spec §4.K: each segment is walked as spherical
// great-circle samples spaced at roughly a third of the cell edge length,
// each sample snapped to its cell, de-duplicated against the previous
// cell, and any gap between non-adjacent consecutive cells is closed with
// GridLine (§4.F).
func PlotSegments(path []LatLng, res int) ([]CellIndex, error) {
	if res < 0 || res > MAX_H3_RES {
		return nil, &InvalidResolutionError{Resolution: res}
	}
	if len(path) < 2 {
		if len(path) == 1 {
			c, err := path[0].ToCell(res)
			if err != nil {
				return nil, err
			}
			return []CellIndex{c}, nil
		}
		return nil, nil
	}

	spacing := EdgeLengthKm(res) / 3.0

	estimate := 0
	for i := 0; i+1 < len(path); i++ {
		a, b := path[i].geoCoord(), path[i+1].geoCoord()
		estimate += lineHexEstimate(&a, &b, res)
	}

	out := make([]CellIndex, 0, estimate)
	for i := 0; i+1 < len(path); i++ {
		segCells, err := plotSegment(path[i], path[i+1], res, spacing)
		if err != nil {
			return nil, err
		}
		for _, c := range segCells {
			out = appendWithGapClosing(out, c)
		}
	}
	return out, nil
}

func plotSegment(a, b LatLng, res int, spacingKm float64) ([]CellIndex, error) {
	ga, gb := a.geoCoord(), b.geoCoord()
	distKm := PointDistKm(&ga, &gb)
	steps := int(distKm/spacingKm) + 1
	if steps < 1 {
		steps = 1
	}

	var out []CellIndex
	for s := 0; s <= steps; s++ {
		t := float64(s) / float64(steps)
		p := interpolateGreatCircle(a, b, t)
		c, err := p.ToCell(res)
		if err != nil {
			return nil, err
		}
		if len(out) == 0 || out[len(out)-1] != c {
			out = append(out, c)
		}
	}
	return out, nil
}

// interpolateGreatCircle returns the point a fraction t of the way from a
// to b along the great circle through them.
func interpolateGreatCircle(a, b LatLng, t float64) LatLng {
	ga, gb := a.geoCoord(), b.geoCoord()
	var p GeoCoord
	_geoAzDistanceRads(&ga, _geoAzimuthRads(&ga, &gb), PointDistRads(&ga, &gb)*t, &p)
	return geoCoordToLatLng(p)
}

// appendWithGapClosing appends next to out, first inserting a GridLine
// bridge if next is not a grid neighbor of the last cell already present.
func appendWithGapClosing(out []CellIndex, next CellIndex) []CellIndex {
	if len(out) == 0 {
		return append(out, next)
	}
	last := out[len(out)-1]
	if last == next {
		return out
	}
	if H3IndexesAreNeighbors(H3Index(last), H3Index(next)) {
		return append(out, next)
	}
	bridge, err := GridLine(last, next)
	if err != nil || len(bridge) == 0 {
		return append(out, next)
	}
	return append(out, bridge[1:]...)
}
