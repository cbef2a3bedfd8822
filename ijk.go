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

// CoordIJK holds cube-like hexagon coordinates on three axes spaced 120
// degrees apart, the substrate every grid operation in this package works
// in before projecting to a face or collapsing to IJ.
type CoordIJK struct {
	i int
	j int
	k int
}

// CoordIJ is the two-axis reduction of CoordIJK, used at the public
// LocalIJ boundary where callers expect plain integer offsets rather than
// the redundant three-axis form.
type CoordIJ struct {
	i int
	j int
}

// ToIJK lifts an IJ pair back into normalized IJK+ coordinates.
func (ij *CoordIJ) ToIJK() CoordIJK {
	ijk := CoordIJK{i: ij.i, j: ij.j, k: 0}
	_ijkNormalize(&ijk)
	return ijk
}

// UNIT_VECS holds the CoordIJK unit vectors for the 7 H3 digits.
var UNIT_VECS = [...]CoordIJK{
	{0, 0, 0}, // direction 0
	{0, 0, 1}, // direction 1
	{0, 1, 0}, // direction 2
	{0, 1, 1}, // direction 3
	{1, 0, 0}, // direction 4
	{1, 0, 1}, // direction 5
	{1, 1, 0}, // direction 6
}

// SetIJK sets all three components at once.
func (ijk *CoordIJK) SetIJK(i, j, k int) {
	ijk.i = i
	ijk.j = j
	ijk.k = k
}

// ToHex2d projects ijk to its hex center in the face's 2D cartesian plane.
func (ijk *CoordIJK) ToHex2d() *Vec2d {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k

	return &Vec2d{
		x: float64(i) - 0.5*float64(j),
		y: float64(j) * M_SQRT3_2,
	}
}

// Scale multiplies every component by factor in place.
func (ijk *CoordIJK) Scale(factor int) {
	ijk.i *= factor
	ijk.j *= factor
	ijk.k *= factor
}

// Normalize reduces ijk to its canonical non-negative, zero-minimum form
// in place: first any negative component is cancelled out, then the
// smallest remaining component is subtracted from all three.
func (ijk *CoordIJK) Normalize() {
	if ijk.i < 0 {
		ijk.j -= ijk.i
		ijk.k -= ijk.i
		ijk.i = 0
	}
	if ijk.j < 0 {
		ijk.i -= ijk.j
		ijk.k -= ijk.j
		ijk.j = 0
	}
	if ijk.k < 0 {
		ijk.i -= ijk.k
		ijk.j -= ijk.k
		ijk.k = 0
	}

	min := ijk.i
	if ijk.j < min {
		min = ijk.j
	}
	if ijk.k < min {
		min = ijk.k
	}
	if min > 0 {
		ijk.i -= min
		ijk.j -= min
		ijk.k -= min
	}
}

// UnitToDigit maps a unit ijk vector to its H3 digit (0-6), or
// INVALID_DIGIT if ijk is not one of the seven unit vectors.
func (ijk *CoordIJK) UnitToDigit() Direction {
	c := *ijk
	_ijkNormalize(&c)

	digit := INVALID_DIGIT
	for i := CENTER_DIGIT; i < Direction(NUM_DIGITS); i++ {
		if _ijkMatches(&c, &UNIT_VECS[i]) {
			digit = i
			break
		}
	}

	return digit
}

// upAp7 moves ijk to the coordinates of its aperture-7 CCW parent.
func (ijk *CoordIJK) upAp7() {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k

	ijk.i = int(math.Round(float64(3*i-j) / 7.0))
	ijk.j = int(math.Round(float64(i+2*j) / 7.0))
	ijk.k = 0
	_ijkNormalize(ijk)
}

// upAp7r moves ijk to the coordinates of its aperture-7 CW parent.
func (ijk *CoordIJK) upAp7r() {
	i := ijk.i - ijk.k
	j := ijk.j - ijk.k

	ijk.i = int(math.Round(float64(2*i+j) / 7.0))
	ijk.j = int(math.Round(float64(3*j-i) / 7.0))
	ijk.k = 0
	_ijkNormalize(ijk)
}

// downAp7 moves ijk to the coordinates of the centered child one
// aperture-7 CCW resolution finer.
func (ijk *CoordIJK) downAp7() {
	iVec := CoordIJK{3, 0, 1}
	jVec := CoordIJK{1, 3, 0}
	kVec := CoordIJK{0, 1, 3}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// downAp7r moves ijk to the coordinates of the centered child one
// aperture-7 CW resolution finer.
func (ijk *CoordIJK) downAp7r() {
	iVec := CoordIJK{3, 1, 0}
	jVec := CoordIJK{0, 3, 1}
	kVec := CoordIJK{1, 0, 3}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// neighbor steps ijk one hex in the given digit direction, in place.
func (ijk *CoordIJK) neighbor(digit Direction) {
	if digit > CENTER_DIGIT && digit < Direction(NUM_DIGITS) {
		_ijkAdd(ijk, &UNIT_VECS[digit], ijk)
		_ijkNormalize(ijk)
	}
}

// Rotate60ccw rotates ijk 60 degrees counter-clockwise in place.
func (ijk *CoordIJK) Rotate60ccw() {
	iVec := CoordIJK{1, 1, 0}
	jVec := CoordIJK{0, 1, 1}
	kVec := CoordIJK{1, 0, 1}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// Rotate60cw rotates ijk 60 degrees clockwise in place.
func (ijk *CoordIJK) Rotate60cw() {
	iVec := CoordIJK{1, 0, 1}
	jVec := CoordIJK{1, 1, 0}
	kVec := CoordIJK{0, 1, 1}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// downAp3 moves ijk to the coordinates of the centered child one
// aperture-3 CCW resolution finer.
func (ijk *CoordIJK) downAp3() {
	iVec := CoordIJK{2, 0, 1}
	jVec := CoordIJK{1, 2, 0}
	kVec := CoordIJK{0, 1, 2}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// downAp3r moves ijk to the coordinates of the centered child one
// aperture-3 CW resolution finer.
func (ijk *CoordIJK) downAp3r() {
	iVec := CoordIJK{2, 1, 0}
	jVec := CoordIJK{0, 2, 1}
	kVec := CoordIJK{1, 0, 2}

	_ijkScale(&iVec, ijk.i)
	_ijkScale(&jVec, ijk.j)
	_ijkScale(&kVec, ijk.k)

	_ijkAdd(&iVec, &jVec, ijk)
	_ijkAdd(ijk, &kVec, ijk)

	_ijkNormalize(ijk)
}

// ToCube converts ijk to cube coordinates in place.
func (ijk *CoordIJK) ToCube() {
	ijk.i = -ijk.i + ijk.k
	ijk.j = ijk.j - ijk.k
	ijk.k = -ijk.i - ijk.j
}

// Deprecated: use (*CoordIJK).SetIJK.
func _setIJK(ijk *CoordIJK, i, j, k int) {
	ijk.SetIJK(i, j, k)
}

// _hex2dToCoordIJK finds the hex, in ijk+ coordinates, containing the
// given 2D cartesian point.
func _hex2dToCoordIJK(v *Vec2d, h *CoordIJK) {
	var a1, a2 float64
	var x1, x2 float64
	var m1, m2 int
	var r1, r2 float64

	h.k = 0

	a1 = math.Abs(v.x)
	a2 = math.Abs(v.y)

	x2 = a2 / M_SIN60
	x1 = a1 + x2/2.0

	m1 = int(x1)
	m2 = int(x2)

	r1 = x1 - float64(m1)
	r2 = x2 - float64(m2)

	if r1 < 0.5 {
		if r1 < 1.0/3.0 {
			if r2 < (1.0+r1)/2.0 {
				h.i = m1
				h.j = m2
			} else {
				h.i = m1
				h.j = m2 + 1
			}
		} else {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (1.0-r1) <= r2 && r2 < (2.0*r1) {
				h.i = m1 + 1
			} else {
				h.i = m1
			}
		}
	} else {
		if r1 < 2.0/3.0 {
			if r2 < (1.0 - r1) {
				h.j = m2
			} else {
				h.j = m2 + 1
			}

			if (2.0*r1-1.0) < r2 && r2 < (1.0-r1) {
				h.i = m1
			} else {
				h.i = m1 + 1
			}
		} else {
			if r2 < (r1 / 2.0) {
				h.i = m1 + 1
				h.j = m2
			} else {
				h.i = m1 + 1
				h.j = m2 + 1
			}
		}
	}

	// fold across the axes if necessary
	if v.x < 0.0 {
		if (h.j % 2) == 0 {
			axisi := int64(h.j) / int64(2)
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - 2*diff)
		} else {
			axisi := int64(h.j+1) / 2
			diff := int64(h.i) - axisi
			h.i = int(int64(h.i) - (2*diff + 1))
		}
	}

	if v.y < 0.0 {
		h.i = h.i - (2*h.j+1)/2
		h.j = -1 * h.j
	}

	_ijkNormalize(h)
}

// _ijkToHex2d projects h to its hex center in 2D cartesian coordinates.
func _ijkToHex2d(h *CoordIJK, v *Vec2d) {
	i := h.i - h.k
	j := h.j - h.k

	v.x = float64(i) - 0.5*float64(j)
	v.y = float64(j) * M_SQRT3_2
}

// _ijkMatches reports whether two ijk coordinates are identical.
func _ijkMatches(c1, c2 *CoordIJK) bool {
	return c1.i == c2.i && c1.j == c2.j && c1.k == c2.k
}

func _ijkAdd(h1, h2 *CoordIJK, sum *CoordIJK) {
	sum.i = h1.i + h2.i
	sum.j = h1.j + h2.j
	sum.k = h1.k + h2.k
}

func _ijkSub(h1, h2 *CoordIJK, diff *CoordIJK) {
	diff.i = h1.i - h2.i
	diff.j = h1.j - h2.j
	diff.k = h1.k - h2.k
}

// Deprecated: use (*CoordIJK).Scale.
func _ijkScale(c *CoordIJK, factor int) {
	c.Scale(factor)
}

// Deprecated: use (*CoordIJK).Normalize.
func _ijkNormalize(c *CoordIJK) {
	c.Normalize()
}

// Deprecated: use (*CoordIJK).UnitToDigit.
func _unitIjkToDigit(ijk *CoordIJK) Direction {
	return ijk.UnitToDigit()
}

// Deprecated: use (*CoordIJK).upAp7.
func _upAp7(ijk *CoordIJK) {
	ijk.upAp7()
}

// Deprecated: use (*CoordIJK).upAp7r.
func _upAp7r(ijk *CoordIJK) {
	ijk.upAp7r()
}

// Deprecated: use (*CoordIJK).downAp7.
func _downAp7(ijk *CoordIJK) {
	ijk.downAp7()
}

// Deprecated: use (*CoordIJK).downAp7r.
func _downAp7r(ijk *CoordIJK) {
	ijk.downAp7r()
}

// Deprecated: use (*CoordIJK).neighbor.
func _neighbor(ijk *CoordIJK, digit Direction) {
	ijk.neighbor(digit)
}

// Deprecated: use (*CoordIJK).Rotate60ccw.
func _ijkRotate60ccw(ijk *CoordIJK) {
	ijk.Rotate60ccw()
}

// Deprecated: use (*CoordIJK).Rotate60cw.
func _ijkRotate60cw(ijk *CoordIJK) {
	ijk.Rotate60cw()
}

// Deprecated: use (*CoordIJK).downAp3.
func _downAp3(ijk *CoordIJK) {
	ijk.downAp3()
}

// Deprecated: use (*CoordIJK).downAp3r.
func _downAp3r(ijk *CoordIJK) {
	ijk.downAp3r()
}

// ijkDistance returns the hex grid distance between two ijk coordinates.
func ijkDistance(c1, c2 *CoordIJK) int {
	var diff CoordIJK
	_ijkSub(c1, c2, &diff)
	_ijkNormalize(&diff)
	absDiff := CoordIJK{abs(diff.i), abs(diff.j), abs(diff.k)}
	return max(absDiff.i, max(absDiff.j, absDiff.k))
}

// ijkToIj collapses ijk+ coordinates down to the two-axis IJ system.
func ijkToIj(ijk *CoordIJK, ij *CoordIJ) {
	ij.i = ijk.i - ijk.k
	ij.j = ijk.j - ijk.k
}

// ijToIjk lifts IJ coordinates back up to normalized ijk+ coordinates.
func ijToIjk(ij *CoordIJ, ijk *CoordIJK) {
	ijk.i = ij.i
	ijk.j = ij.j
	ijk.k = 0

	_ijkNormalize(ijk)
}

// Deprecated: use (*CoordIJK).ToCube.
func ijkToCube(ijk *CoordIJK) {
	ijk.ToCube()
}

// cubeToIjk converts cube coordinates back to ijk coordinates in place.
func cubeToIjk(ijk *CoordIJK) {
	ijk.i = -ijk.i
	ijk.k = 0
	_ijkNormalize(ijk)
}
