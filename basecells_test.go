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

func TestBaseCellTableHasExpectedPentagonCount(t *testing.T) {
	count := 0
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		if _isBaseCellPentagon(bc) {
			count++
		}
	}
	require.Equal(t, NUM_PENTAGONS, count)
}

func TestBaseCellNeighborIsSymmetric(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
			n := _getBaseCellNeighbor(bc, dir)
			if n == INVALID_BASE_CELL || n == bc {
				continue
			}
			back := _getBaseCellDirection(n, bc)
			require.NotEqual(t, INVALID_DIGIT, back,
				"base cell %d has no return direction from neighbor %d", bc, n)
		}
	}
}

func TestGetBaseCellDirectionFindsNeighbor(t *testing.T) {
	for bc := 0; bc < NUM_BASE_CELLS; bc++ {
		for dir := K_AXES_DIGIT; dir < Direction(NUM_DIGITS); dir++ {
			n := _getBaseCellNeighbor(bc, dir)
			if n == INVALID_BASE_CELL {
				continue
			}
			require.Equal(t, dir, _getBaseCellDirection(bc, n))
		}
	}
}
