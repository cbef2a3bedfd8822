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

func TestPlotSegmentsSinglePoint(t *testing.T) {
	p := LatLng{Lat: DegsToRads(37.769377), Lng: DegsToRads(-122.388903)}
	cells, err := PlotSegments([]LatLng{p}, 9)
	require.NoError(t, err)
	require.Len(t, cells, 1)
}

func TestPlotSegmentsEmptyPath(t *testing.T) {
	cells, err := PlotSegments(nil, 9)
	require.NoError(t, err)
	require.Empty(t, cells)
}

func TestPlotSegmentsConsecutiveCellsAreNeighbors(t *testing.T) {
	path := []LatLng{
		{Lat: DegsToRads(37.76), Lng: DegsToRads(-122.41)},
		{Lat: DegsToRads(37.80), Lng: DegsToRads(-122.35)},
	}
	cells, err := PlotSegments(path, 9)
	require.NoError(t, err)
	require.Greater(t, len(cells), 1)

	for i := 1; i < len(cells); i++ {
		require.True(t, H3IndexesAreNeighbors(H3Index(cells[i-1]), H3Index(cells[i])),
			"cells %s and %s are not adjacent", cells[i-1], cells[i])
	}
}
