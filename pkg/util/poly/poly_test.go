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
package poly

import (
	"math/big"
	"testing"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_PolyStruct_01(t *testing.T) {
	var zero Poly
	//
	assert.True(t, zero.IsZero())
	assert.Equal(t, -1, zero.Degree())
	assert.True(t, FromInts(0, 0, 0).Equal(&zero))
	assert.Equal(t, "0", zero.String("x"))
}

func Test_PolyStruct_02(t *testing.T) {
	p := FromInts(-2, 0, 1)
	assert.Equal(t, 2, p.Degree())
	assert.Equal(t, "x^2-2", p.String("x"))
	assert.Equal(t, "-x^2+x+1", FromInts(1, 1, -1).String("x"))
	assert.Equal(t, "1/2*x", New(new(big.Rat), big.NewRat(1, 2)).String("x"))
}

func Test_PolyArith_01(t *testing.T) {
	var (
		p = FromInts(1, 1)  // x+1
		q = FromInts(-1, 1) // x-1
	)
	//
	assert.True(t, p.Mul(q).Equal(FromInts(-1, 0, 1)))
	assert.True(t, p.Add(q).Equal(FromInts(0, 2)))
	assert.True(t, p.Sub(q).Equal(FromInts(2)))
	assert.True(t, p.Sub(p).IsZero())
	assert.True(t, p.Neg().Add(p).IsZero())
}

func Test_PolyArith_02(t *testing.T) {
	checkDivRem(t, FromInts(-2, 0, 1), FromInts(-1, 1))
	checkDivRem(t, FromInts(5, 3, -7, 2, 1), FromInts(1, 0, 3))
	checkDivRem(t, FromInts(1, 2), FromInts(1, 1, 1, 1))
	checkDivRem(t, New(big.NewRat(1, 3), big.NewRat(-2, 7), big.NewRat(5, 2)), New(big.NewRat(3, 4), big.NewRat(1, 5)))
}

func Test_PolyArith_03(t *testing.T) {
	p := FromInts(7, 3, 0, 5)
	assert.True(t, p.Derivative().Equal(FromInts(3, 0, 15)))
	assert.True(t, FromInts(7).Derivative().IsZero())
}

func Test_PolyArith_04(t *testing.T) {
	var (
		a = FromInts(-1, 0, 1)      // (x-1)(x+1)
		b = FromInts(1, 2, 1)       // (x+1)^2
		g = FromInts(1, 1)          // x+1
		c = FromInts(-2, 0, 0, 1)   // x^3-2
		d = FromInts(1, 1, 0, 0, 1) // x^4+x+1
	)
	//
	checkExtGcd(t, a, b, g)
	checkExtGcd(t, c, d, FromInts(1))
}

func Test_PolyArith_05(t *testing.T) {
	assert.True(t, FromInts(-2, 0, 1).IsSquarefree())
	assert.False(t, FromInts(1, 2, 1).IsSquarefree())
}

func Test_PolyEval_01(t *testing.T) {
	p := FromInts(-2, 0, 1)
	assert.Equal(t, 0, p.Eval(big.NewRat(3, 2)).Cmp(big.NewRat(1, 4)))
	assert.Equal(t, -1, p.Sign(big.NewRat(1, 1)))
	assert.Equal(t, 1, p.Sign(big.NewRat(3, 2)))
}

func Test_PolyEval_02(t *testing.T) {
	var (
		p = New(big.NewRat(1, 3), big.NewRat(-5, 7), big.NewRat(2, 9))
		x = big.NewRat(11, 13)
		b = p.EvalBall(ballOf(x), 80)
	)
	//
	assert.True(t, b.ContainsRat(p.Eval(x)))
	assert.GreaterOrEqual(t, b.RelAccuracyBits(), 60)
}

func Test_PolyEval_03(t *testing.T) {
	nums, den := New(big.NewRat(1, 6), big.NewRat(-3, 4), big.NewRat(2, 1)).Integer()
	//
	assert.Equal(t, int64(12), den.Int64())
	assert.Equal(t, int64(2), nums[0].Int64())
	assert.Equal(t, int64(-9), nums[1].Int64())
	assert.Equal(t, int64(24), nums[2].Int64())
}

func Test_PolyRoots_01(t *testing.T) {
	checkRoots(t, FromInts(-2, 0, 1), 2)
}

func Test_PolyRoots_02(t *testing.T) {
	checkRoots(t, FromInts(1, 0, 1), 0)
}

func Test_PolyRoots_03(t *testing.T) {
	checkRoots(t, FromInts(-6, 11, -6, 1), 3) // (x-1)(x-2)(x-3)
}

func Test_PolyRoots_04(t *testing.T) {
	checkRoots(t, FromInts(1, -20, 50, -100, 1), 2)
}

func Test_PolyRoots_05(t *testing.T) {
	checkRoots(t, FromInts(-3, 2), 1)
}

// Check polynomial long division satisfies p = q*d + r with deg(r) < deg(d).
func checkDivRem(t *testing.T, p *Poly, d *Poly) {
	q, r := p.DivRem(d)
	//
	assert.True(t, q.Mul(d).Add(r).Equal(p), "%s != (%s)*(%s) + %s", p.String("x"), q.String("x"), d.String("x"), r.String("x"))
	assert.Less(t, r.Degree(), d.Degree())
}

// Check the extended gcd satisfies Bezout's identity.
func checkExtGcd(t *testing.T, a, b, expected *Poly) {
	g, s, u := a.ExtGcd(b)
	//
	assert.True(t, g.Equal(expected), "gcd was %s, expected %s", g.String("x"), expected.String("x"))
	assert.True(t, s.Mul(a).Add(u.Mul(b)).Equal(g))
}

// Check the number of isolated roots, and that each interval brackets exactly
// one root with a sign change.
func checkRoots(t *testing.T, p *Poly, expected int) {
	roots := p.IsolateRealRoots()
	seq := NewSturmSequence(p)
	//
	require.Len(t, roots, expected)
	//
	for i, r := range roots {
		if r.Lo.Cmp(r.Hi) == 0 {
			assert.Equal(t, 0, p.Sign(r.Lo))
			continue
		}
		//
		assert.Equal(t, -p.Sign(r.Lo), p.Sign(r.Hi), "no sign change on root %d", i)
		assert.Equal(t, uint(1), seq.CountRoots(r.Lo, r.Hi))
		//
		if i > 0 {
			assert.True(t, roots[i-1].Hi.Cmp(r.Lo) <= 0)
		}
	}
}

func ballOf(q *big.Rat) ball.Ball {
	return ball.FromRat(q, 128)
}
