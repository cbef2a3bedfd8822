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

// INVALID_VERTEX_NUM marks a vertex lookup that failed, for example because
// a pentagon has no vertex in the direction requested.
const INVALID_VERTEX_NUM = -1

// directionCcwOrder lists the six non-center digits in the order they
// appear walking counter-clockwise around a cell.
var directionCcwOrder = [6]Direction{
	K_AXES_DIGIT, IK_AXES_DIGIT, I_AXES_DIGIT,
	IJ_AXES_DIGIT, J_AXES_DIGIT, JK_AXES_DIGIT,
}

// _rotate60ccw rotates an IJK+ digit 60 degrees counter-clockwise.
func _rotate60ccw(digit Direction) Direction {
	switch digit {
	case K_AXES_DIGIT:
		return IK_AXES_DIGIT
	case IK_AXES_DIGIT:
		return I_AXES_DIGIT
	case I_AXES_DIGIT:
		return IJ_AXES_DIGIT
	case IJ_AXES_DIGIT:
		return J_AXES_DIGIT
	case J_AXES_DIGIT:
		return JK_AXES_DIGIT
	case JK_AXES_DIGIT:
		return K_AXES_DIGIT
	default:
		return digit
	}
}

// _rotate60cw rotates an IJK+ digit 60 degrees clockwise.
func _rotate60cw(digit Direction) Direction {
	switch digit {
	case K_AXES_DIGIT:
		return JK_AXES_DIGIT
	case JK_AXES_DIGIT:
		return J_AXES_DIGIT
	case J_AXES_DIGIT:
		return IJ_AXES_DIGIT
	case IJ_AXES_DIGIT:
		return I_AXES_DIGIT
	case I_AXES_DIGIT:
		return IK_AXES_DIGIT
	case IK_AXES_DIGIT:
		return K_AXES_DIGIT
	default:
		return digit
	}
}

// vertexNumForDirection returns the vertex number (0-5, or 0-4 for a
// pentagon) at the start of the edge leaving origin in the given
// direction, or INVALID_VERTEX_NUM if direction is not a valid edge
// direction for origin.
func vertexNumForDirection(origin H3Index, direction int) int {
	isPentagon := H3IsPentagon(origin)
	dir := Direction(direction)
	if dir <= CENTER_DIGIT || dir >= Direction(NUM_DIGITS) {
		return INVALID_VERTEX_NUM
	}
	if isPentagon && dir == K_AXES_DIGIT {
		return INVALID_VERTEX_NUM
	}

	for num, d := range directionCcwOrder {
		if d == dir {
			if isPentagon {
				// Pentagons omit the K axis vertex, so every vertex
				// number after it shifts down by one.
				if num == 0 {
					return INVALID_VERTEX_NUM
				}
				return num - 1
			}
			return num
		}
	}
	return INVALID_VERTEX_NUM
}

// h3NeighborRotations returns the H3Index neighboring origin in the given
// direction, accumulating into outRotations the number of 60 degree
// counter-clockwise rotations that were required to reach it (used by
// callers that need to translate a direction across the hop, such as edge
// boundary lookups).
//
// The hop is computed on the IJK+ substrate: origin's coordinates on its
// home face are offset by the unit vector for dir, renormalized, and
// re-encoded, which keeps pentagon distortion handling centralized in
// _faceIjkToH3 rather than duplicated here.
func h3NeighborRotations(origin H3Index, dir Direction, outRotations *int) H3Index {
	if dir <= CENTER_DIGIT || dir >= Direction(NUM_DIGITS) {
		return H3_NULL
	}

	res := H3_GET_RESOLUTION(origin)

	var fijk FaceIJK
	_h3ToFaceIjk(origin, &fijk)

	rotated := dir
	for i := 0; i < *outRotations; i++ {
		rotated = _rotate60ccw(rotated)
	}

	unitVec := UNIT_VECS[rotated]
	fijk.coord.i += unitVec.i
	fijk.coord.j += unitVec.j
	fijk.coord.k += unitVec.k
	_ijkNormalize(&fijk.coord)

	neighbor := _faceIjkToH3(&fijk, res)
	if neighbor == H3_NULL {
		return H3_NULL
	}

	if H3IsPentagon(origin) {
		*outRotations = (*outRotations + 1) % NUM_DIGITS
	}

	return neighbor
}

// KRing produces all cells within grid distance k of origin, including
// origin itself. The result has exactly MaxKringSize(k) slots; unused
// trailing slots are left as H3_NULL for pentagon distortion cases where
// fewer than the maximum number of cells exist at the requested distance.
func KRing(origin H3Index, k int) []H3Index {
	out := make([]H3Index, MaxKringSize(k))
	kRingDistances(origin, k, out, nil)
	return out
}

// MaxKringSize returns the maximum number of indexes that result from the
// kRing algorithm with the given k.
func MaxKringSize(k int) int {
	return 3*k*(k+1) + 1
}

// kRingDistances produces all cells within grid distance k of origin,
// optionally also filling distances with the grid distance of each
// corresponding output cell.
func kRingDistances(origin H3Index, k int, out []H3Index, distances []int) {
	maxIdx := MaxKringSize(k)
	if len(out) < maxIdx {
		return
	}

	visited := make(map[H3Index]int, maxIdx)
	visited[origin] = 0
	out[0] = origin
	if distances != nil {
		distances[0] = 0
	}

	idx := 1
	frontier := []H3Index{origin}
	for dist := 1; dist <= k; dist++ {
		next := make([]H3Index, 0, len(frontier)*2)
		for _, cell := range frontier {
			for d := K_AXES_DIGIT; d < Direction(NUM_DIGITS); d++ {
				rotations := 0
				neighbor := h3NeighborRotations(cell, d, &rotations)
				if neighbor == H3_NULL {
					continue
				}
				if _, ok := visited[neighbor]; ok {
					continue
				}
				visited[neighbor] = dist
				if idx < len(out) {
					out[idx] = neighbor
					if distances != nil {
						distances[idx] = dist
					}
					idx++
				}
				next = append(next, neighbor)
			}
		}
		frontier = next
	}
}
