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

// H3IndexesAreNeighbors reports whether origin and destination share an edge.
func H3IndexesAreNeighbors(origin H3Index, destination H3Index) bool {
	if H3_GET_MODE(origin) != H3_HEXAGON_MODE ||
		H3_GET_MODE(destination) != H3_HEXAGON_MODE {
		return false
	}

	if origin == destination {
		return false
	}

	if H3_GET_RESOLUTION(origin) != H3_GET_RESOLUTION(destination) {
		return false
	}

	// Cells sharing a parent are very likely neighbors: child 0 borders all
	// six siblings, the rest border only 3 of the other 6. A lookup on the
	// parent's digit pair settles most cases without a full KRing scan.
	parentRes := H3_GET_RESOLUTION(origin) - 1
	if parentRes > 0 && (H3ToParent(origin, parentRes) == H3ToParent(destination, parentRes)) {
		originResDigit := H3_GET_INDEX_DIGIT(origin, parentRes+1)
		destinationResDigit := H3_GET_INDEX_DIGIT(destination, parentRes+1)
		if originResDigit == CENTER_DIGIT || destinationResDigit == CENTER_DIGIT {
			return true
		}
		// These sets are the relevant neighbors in the clockwise
		// and counter-clockwise
		var neighborSetClockwise = []Direction{
			CENTER_DIGIT, JK_AXES_DIGIT, IJ_AXES_DIGIT, J_AXES_DIGIT,
			IK_AXES_DIGIT, K_AXES_DIGIT, I_AXES_DIGIT,
		}
		var neighborSetCounterclockwise = []Direction{
			CENTER_DIGIT, IK_AXES_DIGIT, JK_AXES_DIGIT, K_AXES_DIGIT,
			IJ_AXES_DIGIT, I_AXES_DIGIT, J_AXES_DIGIT,
		}
		if neighborSetClockwise[originResDigit] == destinationResDigit ||
			neighborSetCounterclockwise[originResDigit] == destinationResDigit {
			return true
		}
	}

	// Fall back to a direct 1-ring scan.
	neighborRing := KRing(origin, 1)
	for i := 0; i < 7; i++ {
		if neighborRing[i] == destination {
			return true
		}
	}

	return false
}

// GetH3UnidirectionalEdge builds the directed edge index from origin toward
// destination, or H3_NULL if the two cells are not neighbors.
func GetH3UnidirectionalEdge(origin H3Index, destination H3Index) H3Index {
	if H3IndexesAreNeighbors(origin, destination) == false {
		return H3_NULL
	}

	// Otherwise, determine the IJK direction from the origin to the destination
	output := origin
	H3_SET_MODE(&output, H3_UNIEDGE_MODE)

	isPentagon := H3IsPentagon(origin)

	// Checks each neighbor, in order, to determine which direction the
	// destination neighbor is located. Skips CENTER_DIGIT since that
	// would be this index.
	var neighbor H3Index
	direction := K_AXES_DIGIT
	if isPentagon {
		direction = J_AXES_DIGIT
	}

	for ; direction < Direction(NUM_DIGITS); direction++ {
		rotations := 0
		neighbor = h3NeighborRotations(origin, direction, &rotations)
		if neighbor == destination {
			H3_SET_RESERVED_BITS(&output, int(direction))
			return output
		}
	}

	// Unreachable unless origin/destination pass H3IndexesAreNeighbors but
	// no direction's rotation actually reaches destination.
	return H3_NULL
}

// GetOriginH3IndexFromUnidirectionalEdge returns the origin hexagon from the
// unidirectional edge H3Index.
func GetOriginH3IndexFromUnidirectionalEdge(edge H3Index) H3Index {
	if H3_GET_MODE(edge) != H3_UNIEDGE_MODE {
		return H3_NULL
	}
	origin := edge
	H3_SET_MODE(&origin, H3_HEXAGON_MODE)
	H3_SET_RESERVED_BITS(&origin, 0)
	return origin
}

// GetDestinationH3IndexFromUnidirectionalEdge returns the destination hexagon
// from the unidirectional edge H3Index.
func GetDestinationH3IndexFromUnidirectionalEdge(edge H3Index) H3Index {
	if H3_GET_MODE(edge) != H3_UNIEDGE_MODE {
		return H3_NULL
	}
	direction := H3_GET_RESERVED_BITS(edge)
	rotations := 0
	destination := h3NeighborRotations(
		GetOriginH3IndexFromUnidirectionalEdge(edge), Direction(direction), &rotations)
	return destination
}

// H3UnidirectionalEdgeIsValid determines if the provided H3Index is a valid
// unidirectional edge index.
func H3UnidirectionalEdgeIsValid(edge H3Index) bool {
	if H3_GET_MODE(edge) != H3_UNIEDGE_MODE {
		return false
	}

	neighborDirection := H3_GET_RESERVED_BITS(edge)
	if neighborDirection <= int(CENTER_DIGIT) || neighborDirection >= NUM_DIGITS {
		return false
	}

	origin := GetOriginH3IndexFromUnidirectionalEdge(edge)
	if H3IsPentagon(origin) && neighborDirection == int(K_AXES_DIGIT) {
		return false
	}

	return H3IsValid(origin)
}

// GetH3IndexesFromUnidirectionalEdge returns the origin, destination pair of
// hexagon IDs for the given edge ID.
func GetH3IndexesFromUnidirectionalEdge(edge H3Index, originDestination *[]H3Index) {
	(*originDestination)[0] = GetOriginH3IndexFromUnidirectionalEdge(edge)
	(*originDestination)[1] = GetDestinationH3IndexFromUnidirectionalEdge(edge)
}

// GetH3UnidirectionalEdgesFromHexagon provides all of the unidirectional edges
// from the current H3Index.
func GetH3UnidirectionalEdgesFromHexagon(origin H3Index, edges *[]H3Index) {
	// Determine if the origin is a pentagon and special treatment needed.
	isPentagon := H3IsPentagon(origin)

	// This is actually quite simple. Just modify the bits of the origin
	// slightly for each direction, except the 'k' direction in pentagons,
	// which is zeroed.
	for i := 0; i < 6; i++ {
		if isPentagon && i == 0 {
			(*edges)[i] = H3_NULL
		} else {
			(*edges)[i] = origin
			H3_SET_MODE(&(*edges)[i], H3_UNIEDGE_MODE)
			H3_SET_RESERVED_BITS(&(*edges)[i], i+1)
		}
	}
}

// GetH3UnidirectionalEdgeBoundary provides the coordinates defining the
// unidirectional edge.
func GetH3UnidirectionalEdgeBoundary(edge H3Index, gb *GeoBoundary) {
	// Get the origin and neighbor direction from the edge
	direction := H3_GET_RESERVED_BITS(edge)
	origin := GetOriginH3IndexFromUnidirectionalEdge(edge)

	// Get the start vertex for the edge
	startVertex := vertexNumForDirection(origin, direction)
	if startVertex == INVALID_VERTEX_NUM {
		// This is not actually an edge (i.e. no valid direction),
		// so return no vertices.
		gb.numVerts = 0
		return
	}

	// Get the geo boundary for the appropriate vertexes of the origin. Note
	// that while there are always 2 topological vertexes per edge, the
	// resulting edge boundary may have an additional distortion vertex if it
	// crosses an edge of the icosahedron.
	var fijk FaceIJK
	_h3ToFaceIjk(origin, &fijk)
	res := H3_GET_RESOLUTION(origin)
	isPentagon := H3IsPentagon(origin)

	if isPentagon {
		_faceIjkPentToGeoBoundary(&fijk, res, startVertex, 2, gb)
	} else {
		_faceIjkToGeoBoundary(&fijk, res, startVertex, 2, gb)
	}
}
