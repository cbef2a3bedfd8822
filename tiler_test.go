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
	"testing"

	"github.com/stretchr/testify/require"
)

func squareDegrees(centerLat, centerLng, halfSide float64) Ring {
	return Ring{
		{Lat: DegsToRads(centerLat - halfSide), Lng: DegsToRads(centerLng - halfSide)},
		{Lat: DegsToRads(centerLat - halfSide), Lng: DegsToRads(centerLng + halfSide)},
		{Lat: DegsToRads(centerLat + halfSide), Lng: DegsToRads(centerLng + halfSide)},
		{Lat: DegsToRads(centerLat + halfSide), Lng: DegsToRads(centerLng - halfSide)},
	}
}

func TestPolygonToCellsCentroidNonEmpty(t *testing.T) {
	poly := Polygon{Outer: squareDegrees(37.77, -122.39, 0.05)}

	cells, err := PolygonToCells(poly, 9, TilerOptions{Mode: Centroid})
	require.NoError(t, err)
	require.NotEmpty(t, cells)

	for _, c := range cells {
		center := c.ToLatLng()
		require.True(t, pointInRing(center, poly.Outer))
	}
}

func TestPolygonToCellsCoversSupersetOfCentroid(t *testing.T) {
	poly := Polygon{Outer: squareDegrees(37.77, -122.39, 0.03)}

	centroidCells, err := PolygonToCells(poly, 9, TilerOptions{Mode: Centroid})
	require.NoError(t, err)

	coversCells, err := PolygonToCells(poly, 9, TilerOptions{Mode: Covers})
	require.NoError(t, err)

	coverSet := make(map[CellIndex]bool, len(coversCells))
	for _, c := range coversCells {
		coverSet[c] = true
	}
	for _, c := range centroidCells {
		require.True(t, coverSet[c])
	}
}

func TestPolygonToCellsRespectsMaxCells(t *testing.T) {
	poly := Polygon{Outer: squareDegrees(37.77, -122.39, 0.5)}

	_, err := PolygonToCells(poly, 9, TilerOptions{Mode: Covers, MaxCells: 3})
	require.Error(t, err)
	var oe *OutputLimitExceededError
	require.ErrorAs(t, err, &oe)
}

func TestPolygonToCellsInvalidResolution(t *testing.T) {
	poly := Polygon{Outer: squareDegrees(0, 0, 0.01)}
	_, err := PolygonToCells(poly, 16, TilerOptions{Mode: Centroid})
	require.Error(t, err)
}

func TestSegmentsIntersectTangentIsNotIntersection(t *testing.T) {
	// Two collinear, touching-but-not-crossing segments: treated as
	// non-intersecting, matching the open tangent-case policy in DESIGN.md.
	a1 := LatLng{Lat: 0, Lng: 0}
	a2 := LatLng{Lat: 0, Lng: 1}
	b1 := LatLng{Lat: 0, Lng: 1}
	b2 := LatLng{Lat: 0, Lng: 2}
	require.False(t, segmentsIntersect(a1, a2, b1, b2))
}
