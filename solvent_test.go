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

func TestDissolveCellsSingleton(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	polys, err := DissolveCells([]CellIndex{cell}, SolventOptions{})
	require.NoError(t, err)
	require.Len(t, polys, 1)
	require.Empty(t, polys[0].Holes)
	require.Len(t, polys[0].Outer, len(cell.Boundary()))
}

func TestDissolveCellsDedup(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	_, err = DissolveCells([]CellIndex{cell, cell}, SolventOptions{Dedup: false})
	require.Error(t, err)

	polys, err := DissolveCells([]CellIndex{cell, cell}, SolventOptions{Dedup: true})
	require.NoError(t, err)
	require.Len(t, polys, 1)
}

func TestDissolveCellsContiguousDiskHasOneOuter(t *testing.T) {
	ll, err := NewLatLng(DegsToRads(37.769377), DegsToRads(-122.388903))
	require.NoError(t, err)
	cell, err := ll.ToCell(9)
	require.NoError(t, err)

	disk, err := GridDisk(cell, 1)
	require.NoError(t, err)

	polys, err := DissolveCells(disk, SolventOptions{})
	require.NoError(t, err)
	require.Len(t, polys, 1)
}
