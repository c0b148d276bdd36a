// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package renf

import (
	"math"
	"math/big"
	"testing"

	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	"github.com/stretchr/testify/assert"
)

func Test_Double_01(t *testing.T) {
	var (
		f        = phi(t)
		expected = new(big.Float).SetPrec(256).SetInt64(5)
	)
	// (1+√5)/2
	expected.Sqrt(expected)
	expected.Add(expected, big.NewFloat(1))
	expected.Quo(expected, big.NewFloat(2))
	//
	d, _ := expected.Float64()
	assert.Equal(t, d, f.Gen().Float64(Nearest))
}

func Test_Double_02(t *testing.T) {
	f := sqrt2(t)
	//
	checkDouble(t, f.Gen())
	checkDouble(t, f.Gen().Neg())
	checkDouble(t, f.Gen().MulRat(big.NewRat(1, 1<<40)))
	checkDouble(t, f.Gen().AddRat(new(big.Rat).Neg(pell(40))))
	checkDouble(t, phi(t).Gen().Pow(-30))
}

func Test_Double_03(t *testing.T) {
	gen := NewGenerator(3)
	//
	for i := 0; i < 10; i++ {
		f := gen.Field(uint(2+i%3), 6, 32)
		//
		for j := 0; j < 5; j++ {
			checkDouble(t, gen.Element(f, 10))
		}
	}
}

func Test_Double_04(t *testing.T) {
	f := sqrt2(t)
	//
	for _, q := range []*big.Rat{big.NewRat(1, 3), big.NewRat(-2, 7), big.NewRat(1, 1<<62),
		new(big.Rat).SetFrac(big.NewInt(1), new(big.Int).Lsh(big.NewInt(1), 1074)),
		new(big.Rat).SetFloat64(math.MaxFloat64), big.NewRat(123456789, 1000)} {
		expected, _ := q.Float64()
		assert.Equal(t, expected, f.FromRat(q).Float64(Nearest), "%s", q.RatString())
		checkDouble(t, f.FromRat(q))
	}
	//
	assert.Equal(t, 0.0, f.Zero().Float64(Floor))
}

func Test_Double_05(t *testing.T) {
	var (
		f    = sqrt2(t)
		huge = new(big.Rat).SetInt(new(big.Int).Lsh(big.NewInt(1), 1100))
		// 2^1100·√2
		a = f.FromPoly(poly.Monomial(huge, 1))
		b = f.FromRat(huge)
	)
	//
	for _, r := range ROUNDINGS {
		assert.Equal(t, math.Inf(1), a.Float64(r), "%s", r)
		assert.Equal(t, math.Inf(-1), a.Neg().Float64(r), "%s", r)
		assert.Equal(t, math.Inf(1), b.Float64(r), "%s", r)
		assert.Equal(t, math.Inf(-1), b.Neg().Float64(r), "%s", r)
	}
}

func Test_Double_06(t *testing.T) {
	gen := NewGenerator(17)
	//
	for i := 0; i < 30; i++ {
		f := gen.Field(uint(1+i%5), 8, 64)
		//
		for j := 0; j < 10; j++ {
			e := gen.Element(f, 16)
			assert.Equal(t, nearestOf(e), e.Float64(Nearest), "%s", e)
		}
	}
}

func Test_Floor_01(t *testing.T) {
	var (
		f = sqrt2(t)
		a = f.Gen()
	)
	//
	checkFloorCeil(t, a, 1, 2)
	checkFloorCeil(t, a.Neg(), -2, -1)
	checkFloorCeil(t, a.MulRat(big.NewRat(1000, 1)), 1414, 1415)
	checkFloorCeil(t, f.FromRat(big.NewRat(7, 2)), 3, 4)
	checkFloorCeil(t, f.FromRat(big.NewRat(-7, 2)), -4, -3)
	checkFloorCeil(t, f.FromInt(-5), -5, -5)
	// Just below 1
	checkFloorCeil(t, a.AddRat(new(big.Rat).Sub(big.NewRat(1, 1), pell(40))), 0, 1)
}

// Check the various rounding modes agree with each other.
func checkDouble(t *testing.T, e *Element) {
	var (
		sign    = e.Sign()
		nearest = e.Float64(Nearest)
		floor   = e.Float64(Floor)
		ceil    = e.Float64(Ceil)
		down    = e.Float64(TowardZero)
		up      = e.Float64(AwayFromZero)
	)
	//
	if q, ok := e.Rational(); ok && isDouble(q) {
		assert.Equal(t, floor, ceil, "%s", e)
	} else {
		assert.Equal(t, math.Nextafter(floor, math.Inf(1)), ceil, "%s", e)
		assert.Equal(t, -1, e.CmpRat(new(big.Rat).SetFloat64(ceil)))
		assert.Equal(t, 1, e.CmpRat(new(big.Rat).SetFloat64(floor)))
	}
	//
	assert.True(t, nearest == floor || nearest == ceil, "%s", e)
	assert.Equal(t, nearestOf(e), nearest, "%s", e)
	//
	if sign > 0 {
		assert.Equal(t, floor, down)
		assert.Equal(t, ceil, up)
	} else {
		assert.Equal(t, ceil, down)
		assert.Equal(t, floor, up)
	}
}

func Test_Floor_02(t *testing.T) {
	var (
		f = sqrt2(t)
		a = f.Gen()
	)
	//
	checkFloorDiv(t, f.FromInt(10), a, 7)
	checkFloorDiv(t, f.FromInt(-10), a, -8)
	checkFloorDiv(t, a.MulRat(big.NewRat(7, 1)), a, 7)
	checkFloorDiv(t, a.MulRat(big.NewRat(-7, 1)), a, -7)
	checkFloorDiv(t, f.FromInt(7), f.FromInt(-2), -4)
	checkFloorDiv(t, a, a.AddRat(big.NewRat(1, 1)), 0)
	checkFloorDiv(t, a.Neg(), a.AddRat(big.NewRat(1, 1)), -1)
}

// Check the floor and ceiling of an element.
func checkFloorCeil(t *testing.T, e *Element, floor int64, ceil int64) {
	assert.Equal(t, floor, e.Floor().Int64(), "floor(%s)", e)
	assert.Equal(t, ceil, e.Ceil().Int64(), "ceil(%s)", e)
}

// Check whether a rational is exactly representable as a double.
func isDouble(q *big.Rat) bool {
	_, exact := q.Float64()
	return exact
}

// Check the floor of the quotient of two elements.
func checkFloorDiv(t *testing.T, a *Element, b *Element, expected int64) {
	assert.Equal(t, expected, a.FloorDiv(b).Int64(), "floor(%s / %s)", a, b)
}

// Determine the double nearest to an element independently, by rounding the
// midpoint of a highly accurate enclosure.
func nearestOf(e *Element) float64 {
	if q, ok := e.Rational(); ok {
		d, _ := q.Float64()
		return d
	}
	//
	d, _ := e.Ball(400).Mid(400).Float64()
	//
	return d
}
