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
package ball

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Ball_01(t *testing.T) {
	// 1/3 is not a dyadic rational, hence the enclosure cannot be exact.
	third := FromRat(big.NewRat(1, 3), 64)
	assert.False(t, third.IsExact())
	assert.True(t, third.ContainsRat(big.NewRat(1, 3)))
	assert.True(t, third.IsPositive())
	assert.GreaterOrEqual(t, third.RelAccuracyBits(), 60)
}

func Test_Ball_02(t *testing.T) {
	half := FromRat(big.NewRat(1, 2), 8)
	assert.True(t, half.IsExact())
	assert.Equal(t, EXACT_BITS, half.RelAccuracyBits())
}

func Test_Ball_03(t *testing.T) {
	checkOp(t, "add", func(x, y Ball) Ball { return x.Add(y, 53) }, func(x, y *big.Rat) *big.Rat { return new(big.Rat).Add(x, y) })
}

func Test_Ball_04(t *testing.T) {
	checkOp(t, "sub", func(x, y Ball) Ball { return x.Sub(y, 53) }, func(x, y *big.Rat) *big.Rat { return new(big.Rat).Sub(x, y) })
}

func Test_Ball_05(t *testing.T) {
	checkOp(t, "mul", func(x, y Ball) Ball { return x.Mul(y, 53) }, func(x, y *big.Rat) *big.Rat { return new(big.Rat).Mul(x, y) })
}

func Test_Ball_06(t *testing.T) {
	checkOp(t, "div", func(x, y Ball) Ball { return x.Div(y, 53) }, func(x, y *big.Rat) *big.Rat { return new(big.Rat).Quo(x, y) })
}

func Test_Ball_07(t *testing.T) {
	var (
		a = FromInterval(big.NewFloat(-1), big.NewFloat(2))
		b = FromInterval(big.NewFloat(1), big.NewFloat(3))
		c = FromInterval(big.NewFloat(2.5), big.NewFloat(4))
	)
	//
	assert.True(t, a.ContainsZero())
	assert.Equal(t, 0, a.Sign())
	assert.True(t, a.Overlaps(b))
	assert.False(t, a.Overlaps(c))
	assert.True(t, a.Lt(c))
	assert.True(t, c.Gt(a))
	//
	i, ok := a.Intersect(b)
	require.True(t, ok)
	assert.Equal(t, 0, i.Lower().Cmp(big.NewFloat(1)))
	assert.Equal(t, 0, i.Upper().Cmp(big.NewFloat(2)))
	assert.True(t, i.Within(a))
	assert.True(t, i.Within(b))
	//
	_, ok = a.Intersect(c)
	assert.False(t, ok)
}

func Test_Ball_08(t *testing.T) {
	a := FromInterval(big.NewFloat(-3), big.NewFloat(2))
	abs := a.Abs()
	assert.Equal(t, 0, abs.Lower().Sign())
	assert.Equal(t, 0, abs.Upper().Cmp(big.NewFloat(3)))
	assert.Equal(t, 0, a.Neg().Lower().Cmp(big.NewFloat(-2)))
}

func Test_Ball_09(t *testing.T) {
	a := FromInterval(big.NewFloat(-1), big.NewFloat(1))
	assert.Panics(t, func() { FromFloat64(1).Div(a, 53) })
	assert.Panics(t, func() { FromInterval(big.NewFloat(1), big.NewFloat(0)) })
}

func Test_Ball_10(t *testing.T) {
	// Mid point always lies within the ball, even at low precision.
	a := FromInterval(big.NewFloat(1), new(big.Float).SetPrec(200).SetMantExp(big.NewFloat(1), 100))
	assert.True(t, a.ContainsFloat(a.Mid(2)))
	assert.True(t, a.ContainsFloat(a.Mid(300)))
}

func Test_Ball_11(t *testing.T) {
	var zero Ball
	//
	assert.True(t, zero.IsExact())
	assert.True(t, zero.ContainsZero())
	assert.Equal(t, "[0, 0]", zero.String())
}

var samples = []*big.Rat{
	big.NewRat(1, 3),
	big.NewRat(-7, 5),
	big.NewRat(22, 7),
	big.NewRat(-1, 1000003),
	big.NewRat(123456789, 2),
}

// Check a ball operation encloses the corresponding exact rational operation.
func checkOp(t *testing.T, name string, op func(Ball, Ball) Ball, exact func(*big.Rat, *big.Rat) *big.Rat) {
	for _, x := range samples {
		for _, y := range samples {
			var (
				bx = FromRat(x, 53)
				by = FromRat(y, 53)
				r  = op(bx, by)
				e  = exact(x, y)
			)
			//
			if !r.ContainsRat(e) {
				t.Errorf("%s(%s,%s) = %s does not contain %s", name, x, y, r, e)
			}
		}
	}
}
