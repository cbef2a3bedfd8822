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

// The six cases below pin the documented end-to-end contract values
// verbatim: San Francisco at resolution 9 must land on a specific 64-bit
// index, and every derived operation on that index must reproduce its
// specific documented result, not merely a structurally plausible one.
func TestContractLatLngToCell(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)

	cell, err := ll.ToCell(9)
	require.NoError(t, err)
	require.Equal(t, CellIndex(0x8928308280fffff), cell)
}

func TestContractCellParent(t *testing.T) {
	cell := CellIndex(0x8928308280fffff)

	parent, err := cell.Parent(5)
	require.NoError(t, err)
	require.Equal(t, CellIndex(0x852830bffffffff), parent)
}

func TestContractCellChildrenCount(t *testing.T) {
	cell := CellIndex(0x8928308280fffff)

	children, err := cell.Children(10)
	require.NoError(t, err)
	require.Len(t, children, 7)
}

func TestContractCompactSiblings(t *testing.T) {
	parent := CellIndex(0x892a1072b5bffff)

	siblings, err := parent.Children(10)
	require.NoError(t, err)
	require.Len(t, siblings, 7)

	compacted, err := CompactCells(siblings)
	require.NoError(t, err)
	require.Equal(t, []CellIndex{parent}, compacted)
}

func TestContractGridDiskCount(t *testing.T) {
	cell := CellIndex(0x8928308280fffff)

	disk, err := GridDisk(cell, 1)
	require.NoError(t, err)
	require.Len(t, disk, 7)
}

func TestContractGridDistance(t *testing.T) {
	a := CellIndex(0x8928308280fffff)
	b := CellIndex(0x8928308280bffff)

	d, err := GridDistance(a, b)
	require.NoError(t, err)
	require.Equal(t, 1, d)
}

func TestLatLngToCellRoundTrip(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)

	cell, err := ll.ToCell(9)
	require.NoError(t, err)
	require.True(t, cell.IsValid())
	require.Equal(t, 9, cell.Resolution())

	back, err := ParseCellIndex(cell.String())
	require.NoError(t, err)
	require.Equal(t, cell, back)
}

func TestCellIndexParentChildRoundTrip(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	parent, err := cell.Parent(5)
	require.NoError(t, err)
	require.Equal(t, 5, parent.Resolution())

	children, err := parent.Children(9)
	require.NoError(t, err)

	found := false
	for _, c := range children {
		if c == cell {
			found = true
		}
		p, err := c.Parent(5)
		require.NoError(t, err)
		require.Equal(t, parent, p)
	}
	require.True(t, found)
}

func TestCellIndexChildrenCount(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	children, err := cell.Children(10)
	require.NoError(t, err)
	require.Len(t, children, 7)
}

func TestCompactCellsOfSiblings(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	parent, err := ll.ToCell(8)
	require.NoError(t, err)

	siblings, err := parent.Children(9)
	require.NoError(t, err)
	require.Len(t, siblings, 7)

	compacted, err := CompactCells(siblings)
	require.NoError(t, err)
	require.Len(t, compacted, 1)
	require.Equal(t, parent, compacted[0])
}

func TestCompactCellsRejectsDuplicates(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	_, err = CompactCells([]CellIndex{cell, cell})
	require.Error(t, err)
	var ce *CompactionError
	require.ErrorAs(t, err, &ce)
}

func TestUncompactCellsRoundTrip(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	parent, err := ll.ToCell(5)
	require.NoError(t, err)

	expanded, err := UncompactCells([]CellIndex{parent}, 9, 0)
	require.NoError(t, err)

	compacted, err := CompactCells(expanded)
	require.NoError(t, err)
	require.Equal(t, []CellIndex{parent}, compacted)
}

func TestUncompactCellsOutputLimit(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	parent, err := ll.ToCell(5)
	require.NoError(t, err)

	_, err = UncompactCells([]CellIndex{parent}, 9, 10)
	require.Error(t, err)
	var oe *OutputLimitExceededError
	require.ErrorAs(t, err, &oe)
}

func TestGridDiskCardinality(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	disk, err := GridDisk(cell, 1)
	require.NoError(t, err)
	require.Len(t, disk, 7)
}

func TestGridDiskIsUnionOfRings(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	disk, err := GridDisk(cell, 2)
	require.NoError(t, err)

	union := make(map[CellIndex]bool)
	for k := 0; k <= 2; k++ {
		ring, err := GridRing(cell, k)
		require.NoError(t, err)
		for _, c := range ring {
			union[c] = true
		}
	}
	require.Len(t, union, len(disk))
}

func TestGridDistanceAdjacentCells(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	neighbors, err := GridDisk(cell, 1)
	require.NoError(t, err)
	require.Greater(t, len(neighbors), 1)

	for _, n := range neighbors {
		if n == cell {
			continue
		}
		d, err := GridDistance(cell, n)
		require.NoError(t, err)
		require.Equal(t, 1, d)
		break
	}
}

func TestGridLineLength(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	a, err := ll.ToCell(9)
	require.NoError(t, err)

	disk, err := GridDisk(a, 2)
	require.NoError(t, err)
	require.NotEmpty(t, disk)
	b := disk[len(disk)-1]

	line, err := GridLine(a, b)
	require.NoError(t, err)
	dist, err := GridDistance(a, b)
	require.NoError(t, err)
	require.Len(t, line, dist+1)
}

func TestCellToLocalIJRoundTrip(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	origin, err := ll.ToCell(9)
	require.NoError(t, err)

	disk, err := GridDisk(origin, 1)
	require.NoError(t, err)
	require.NotEmpty(t, disk)

	for _, cell := range disk {
		ij, err := CellToLocalIJ(origin, cell)
		if err != nil {
			continue
		}
		back, err := LocalIJToCell(origin, ij.I, ij.J)
		require.NoError(t, err)
		require.Equal(t, cell, back)
	}
}

func TestNewLatLngRejectsOutOfRange(t *testing.T) {
	_, err := NewLatLng(10, 0)
	require.Error(t, err)
	var le *InvalidLatLngError
	require.ErrorAs(t, err, &le)
}

func TestNeighborRejectsPentagonKAxis(t *testing.T) {
	pentagons, err := PentagonCells(1)
	require.NoError(t, err)
	require.Len(t, pentagons, NUM_PENTAGONS)

	_, err = Neighbor(pentagons[0], int(K_AXES_DIGIT))
	require.Error(t, err)
	var pe *PentagonError
	require.ErrorAs(t, err, &pe)
}
