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
)

// Add two balls together at a given precision.
func (p Ball) Add(q Ball, prec uint) Ball {
	return Ball{
		down(prec).Add(p.lower(), q.lower()),
		up(prec).Add(p.upper(), q.upper()),
	}
}

// Sub subtracts another ball from this at a given precision.
func (p Ball) Sub(q Ball, prec uint) Ball {
	return Ball{
		down(prec).Sub(p.lower(), q.upper()),
		up(prec).Sub(p.upper(), q.lower()),
	}
}

// Neg negates this ball.  This is always exact.
func (p Ball) Neg() Ball {
	return Ball{
		new(big.Float).Neg(p.upper()),
		new(big.Float).Neg(p.lower()),
	}
}

// Abs returns the ball enclosing the absolute values of this ball.  This is
// always exact.
func (p Ball) Abs() Ball {
	switch {
	case p.lower().Sign() >= 0:
		return Ball{copyOf(p.lower()), copyOf(p.upper())}
	case p.upper().Sign() <= 0:
		return p.Neg()
	}
	// Straddles zero
	hi := new(big.Float).Neg(p.lower())
	if p.upper().Cmp(hi) > 0 {
		hi.Set(p.upper())
	}
	//
	return Ball{new(big.Float), hi}
}

// Mul multiplies this ball by another at a given precision.
func (p Ball) Mul(q Ball, prec uint) Ball {
	var (
		lo = minOf(prec, (*big.Float).Mul, p, q)
		hi = maxOf(prec, (*big.Float).Mul, p, q)
	)
	//
	return Ball{lo, hi}
}

// Div divides this ball by another at a given precision.  Note this will panic
// if the divisor contains zero.
func (p Ball) Div(q Ball, prec uint) Ball {
	if q.ContainsZero() {
		panic("division by ball containing zero")
	}
	//
	var (
		lo = minOf(prec, (*big.Float).Quo, p, q)
		hi = maxOf(prec, (*big.Float).Quo, p, q)
	)
	//
	return Ball{lo, hi}
}

// AddRat adds a rational onto this ball at a given precision.
func (p Ball) AddRat(q *big.Rat, prec uint) Ball {
	return p.Add(FromRat(q, prec), prec)
}

// MulRat multiplies this ball by a rational at a given precision.
func (p Ball) MulRat(q *big.Rat, prec uint) Ball {
	return p.Mul(FromRat(q, prec), prec)
}

// AddInt adds an integer onto this ball at a given precision.
func (p Ball) AddInt(n *big.Int, prec uint) Ball {
	return p.Add(FromInt(n, prec), prec)
}

// MulInt multiplies this ball by an integer at a given precision.
func (p Ball) MulInt(n *big.Int, prec uint) Ball {
	return p.Mul(FromInt(n, prec), prec)
}

// DivInt divides this ball by a non-zero integer at a given precision.
func (p Ball) DivInt(n *big.Int, prec uint) Ball {
	return p.Div(FromInt(n, prec), prec)
}

// AbsUpper returns an upper bound on the absolute value of every point in this
// ball.
func (p Ball) AbsUpper() *big.Float {
	return p.Abs().Upper()
}

// AbsLower returns a lower bound on the absolute value of every point in this
// ball.  This is zero when the ball contains zero.
func (p Ball) AbsLower() *big.Float {
	return p.Abs().Lower()
}

type binop func(z, x, y *big.Float) *big.Float

// Compute the least of the four endpoint combinations, rounding down.
func minOf(prec uint, op binop, p, q Ball) *big.Float {
	var res *big.Float
	//
	for _, x := range []*big.Float{p.lower(), p.upper()} {
		for _, y := range []*big.Float{q.lower(), q.upper()} {
			if r := op(down(prec), x, y); res == nil || r.Cmp(res) < 0 {
				res = r
			}
		}
	}
	//
	return res
}

// Compute the greatest of the four endpoint combinations, rounding up.
func maxOf(prec uint, op binop, p, q Ball) *big.Float {
	var res *big.Float
	//
	for _, x := range []*big.Float{p.lower(), p.upper()} {
		for _, y := range []*big.Float{q.lower(), q.upper()} {
			if r := op(up(prec), x, y); res == nil || r.Cmp(res) > 0 {
				res = r
			}
		}
	}
	//
	return res
}
