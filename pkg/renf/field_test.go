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
	"math/big"
	"testing"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_NumberField_01(t *testing.T) {
	checkInvalidField(t, poly.FromInts(5), around(1, 1))
	checkInvalidField(t, poly.FromInts(1, 2, 1), around(-1, 0.5))
	// No roots
	checkInvalidField(t, poly.FromInts(-2, 0, 1), around(0, 0.5))
	// Two roots
	checkInvalidField(t, poly.FromInts(-2, 0, 1), around(0, 2))
	// No precision
	_, err := New(poly.FromInts(-2, 0, 1), around(1.41421356, 1e-6), 0)
	assert.Error(t, err)
}

func Test_NumberField_02(t *testing.T) {
	f := sqrt2(t)
	// Initially refined to twice the precision
	assert.Equal(t, uint(128), f.Precision())
	assert.Equal(t, uint(2), f.Degree())
	assert.GreaterOrEqual(t, f.Root().RelAccuracyBits(), 128)
	checkRoot(t, f)
}

func Test_NumberField_03(t *testing.T) {
	var (
		f     = newField(t, []int64{1, -20, 50, -100, 1}, 0.057258181166, 1.0/4096, 32)
		root  = f.Root()
		count = f.Refinements()
	)
	//
	for _, prec := range []uint{100, 80, 300, 1000, 999, 2000} {
		old := f.Precision()
		f.Refine(prec)
		// Monotonicity
		assert.True(t, f.Root().Within(root), "refinement to %d bits grew enclosure", prec)
		assert.Equal(t, max(old, prec), f.Precision())
		assert.GreaterOrEqual(t, f.Root().RelAccuracyBits(), int(f.Precision()))
		//
		if prec > old {
			count++
		}
		//
		root = f.Root()
	}
	//
	assert.Equal(t, count, f.Refinements())
	checkRoot(t, f)
}

func Test_NumberField_04(t *testing.T) {
	f := sqrt2(t)
	//
	assert.False(t, f.SetImmutable(true))
	assert.True(t, f.IsImmutable())
	assert.Panics(t, func() { f.Refine(1000) })
	// Decisions still work, but do not refine in place
	var (
		count = f.Refinements()
		a     = f.Gen()
		q     = pell(60)
	)
	//
	assert.Equal(t, -1, a.CmpRat(q))
	assert.Equal(t, count, f.Refinements())
	assert.Equal(t, uint(128), f.Precision())
	//
	assert.True(t, f.SetImmutable(false))
	assert.Equal(t, -1, f.Gen().CmpRat(q))
	assert.Greater(t, f.Refinements(), count)
}

func Test_NumberField_05(t *testing.T) {
	f, err := NewNthRoot(big.NewRat(2, 1), 3, 64)
	require.NoError(t, err)
	//
	a := f.Gen()
	//
	assert.True(t, a.Pow(3).EqualRat(big.NewRat(2, 1)))
	assert.Equal(t, 1, a.Sign())
	assert.InDelta(t, 1.2599210498948732, a.Float64(Nearest), 1e-15)
	checkRoot(t, f)
}

func Test_NumberField_06(t *testing.T) {
	checkInvalidNthRoot(t, big.NewRat(4, 1), 2)
	checkInvalidNthRoot(t, big.NewRat(16, 81), 4)
	checkInvalidNthRoot(t, big.NewRat(8, 1), 6)
	checkInvalidNthRoot(t, big.NewRat(-2, 1), 2)
	checkInvalidNthRoot(t, big.NewRat(0, 1), 2)
	checkInvalidNthRoot(t, big.NewRat(2, 1), 0)
}

func Test_NumberField_07(t *testing.T) {
	f, err := NewNthRoot(big.NewRat(3, 7), 1, 64)
	require.NoError(t, err)
	//
	assert.Equal(t, linearFlavour, f.flavour)
	assert.True(t, f.Gen().IsRational())
	assert.Equal(t, -1, f.Gen().CmpRat(big.NewRat(3, 6)))
	assert.Equal(t, 3.0/7, f.Gen().Float64(Nearest))
}

func Test_NumberField_08(t *testing.T) {
	var (
		f = sqrt2(t)
		g = sqrt2(t)
		h = newField(t, []int64{-2, 0, 1}, -1.41421356, 1e-6, 64)
	)
	//
	assert.True(t, f.Equal(g))
	assert.True(t, f.Equal(f))
	assert.False(t, f.Equal(h))
	assert.False(t, f.Equal(phi(t)))
}

func Test_Config_01(t *testing.T) {
	config := GetConfig("PRECISE")
	require.NotNil(t, config)
	assert.Equal(t, PRECISE_CONFIG, *config)
	assert.Nil(t, GetConfig("MISSING"))
	// Every evaluation is checked
	f, err := NewWithConfig(poly.FromInts(-2, 0, 1), around(1.41421356, 1e-6), *config)
	require.NoError(t, err)
	//
	a := f.Gen().AddRat(big.NewRat(1, 3))
	b := a.Mul(a).Sub(a.Inv())
	//
	assert.Equal(t, 1, b.Sign())
	assert.Equal(t, uint(512), f.Precision())
}

// Check constructing a field fails.
func checkInvalidField(t *testing.T, pol *poly.Poly, emb ball.Ball) {
	_, err := New(pol, emb, 64)
	assert.Error(t, err, "constructed field from %s", pol.String("x"))
}

// Check constructing an nth root field fails.
func checkInvalidNthRoot(t *testing.T, d *big.Rat, n uint) {
	_, err := NewNthRoot(d, n, 64)
	assert.Error(t, err, "constructed field x^%d-%s", n, d.RatString())
}

// Check the root enclosure of a field contains exactly one root.
func checkRoot(t *testing.T, f *NumberField) {
	assert.Equal(t, uint(1), countRoots(f.pol, f.Root()))
}

func around(mid float64, rad float64) ball.Ball {
	return ball.FromMidRad(big.NewFloat(mid), big.NewFloat(rad), 64)
}

func newField(t *testing.T, coeffs []int64, mid float64, rad float64, prec uint) *NumberField {
	f, err := New(poly.FromInts(coeffs...), around(mid, rad), prec)
	require.NoError(t, err)
	//
	return f
}

// Q(√2) embedded at the positive root.
func sqrt2(t *testing.T) *NumberField {
	return newField(t, []int64{-2, 0, 1}, 1.41421356, 1e-6, 64)
}

// Q(φ) embedded at the golden ratio.
func phi(t *testing.T) *NumberField {
	return newField(t, []int64{-1, -1, 1}, 1.618, 0.01, 64)
}

// Compute a solution x/y of the Pell equation x^2 - 2y^2 = 1 after n steps.
// This is a rational very slightly above √2.
func pell(n uint) *big.Rat {
	var (
		x   = big.NewInt(3)
		y   = big.NewInt(2)
		tmp big.Int
	)
	//
	for i := uint(0); i < n; i++ {
		// (x,y) -> (3x+4y, 2x+3y)
		nx := new(big.Int).Mul(x, big.NewInt(3))
		nx.Add(nx, tmp.Mul(y, big.NewInt(4)))
		ny := new(big.Int).Mul(x, big.NewInt(2))
		ny.Add(ny, tmp.Mul(y, big.NewInt(3)))
		x, y = nx, ny
	}
	//
	return new(big.Rat).SetFrac(x, y)
}
