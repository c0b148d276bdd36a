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

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
)

// EvalBall evaluates this polynomial over a ball at a given working precision.
// The result encloses the value of the polynomial at every point of the ball.
func (p *Poly) EvalBall(x ball.Ball, prec uint) ball.Ball {
	nums, den := p.Integer()
	//
	return EvalIntegerBall(nums, x, prec).DivInt(den, prec)
}

// EvalIntegerBall evaluates the integer polynomial Σ c_i x^i over a ball at a
// given working precision, using Horner's method.
func EvalIntegerBall(coeffs []*big.Int, x ball.Ball, prec uint) ball.Ball {
	res := ball.Zero()
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		res = res.Mul(x, prec)
		res = res.AddInt(coeffs[i], prec)
	}
	//
	return res
}

// MagnitudeBound returns an upper bound on Σ |c_i| r^i where c_i are the given
// integer coefficients and r is a non-negative bound.  The bound is computed
// with upward rounding at the given precision, hence never underestimates.
func MagnitudeBound(coeffs []*big.Int, r *big.Float, prec uint) *big.Float {
	var (
		res = new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf)
		abs big.Int
		c   = new(big.Float).SetPrec(prec).SetMode(big.ToPositiveInf)
	)
	//
	for i := len(coeffs) - 1; i >= 0; i-- {
		res.Mul(res, r)
		res.Add(res, c.SetInt(abs.Abs(coeffs[i])))
	}
	//
	return res
}
