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
	"fmt"
	"math"
	"math/big"
)

// EXACT_BITS is the relative accuracy reported for a ball of radius zero.
const EXACT_BITS = math.MaxInt32

// Ball is a closed real interval [lo, hi] whose endpoints are arbitrary
// precision binary floating point numbers.  A ball is used to enclose some real
// value which may not be representable exactly.  All operations round their
// lower endpoint towards negative infinity and their upper endpoint towards
// positive infinity, hence the result of an operation on balls always contains
// the result of the same operation on any values contained in those balls.
//
// Observe that balls are treated as values: no operation modifies its operands,
// and the endpoints returned from Lower() and Upper() are copies.
type Ball struct {
	lo *big.Float
	hi *big.Float
}

// Zero returns the exact ball containing only zero.
func Zero() Ball {
	return Ball{new(big.Float), new(big.Float)}
}

// Exact constructs a ball of radius zero around a given value.  The value is
// copied.
func Exact(x *big.Float) Ball {
	return Ball{copyOf(x), copyOf(x)}
}

// FromInterval constructs a ball covering exactly the interval [lower,upper].
// Note this will panic if lower is greater than upper.
func FromInterval(lower, upper *big.Float) Ball {
	// sanity check
	if lower.Cmp(upper) > 0 {
		panic("invalid ball")
	}
	//
	return Ball{copyOf(lower), copyOf(upper)}
}

// FromMidRad constructs the smallest ball (at the given precision) enclosing
// [mid-rad, mid+rad].  The radius is treated as an absolute value.
func FromMidRad(mid *big.Float, rad *big.Float, prec uint) Ball {
	var r big.Float
	//
	r.Abs(rad)
	//
	return Ball{down(prec).Sub(mid, &r), up(prec).Add(mid, &r)}
}

// FromRat constructs the smallest ball (at the given precision) enclosing a
// given rational.
func FromRat(q *big.Rat, prec uint) Ball {
	return Ball{down(prec).SetRat(q), up(prec).SetRat(q)}
}

// FromInt constructs the smallest ball (at the given precision) enclosing a
// given integer.
func FromInt(n *big.Int, prec uint) Ball {
	return Ball{down(prec).SetInt(n), up(prec).SetInt(n)}
}

// FromFloat64 constructs an exact ball from a machine double.  This will panic
// if the double is not finite.
func FromFloat64(f float64) Ball {
	if math.IsInf(f, 0) || math.IsNaN(f) {
		panic("cannot enclose a non-finite double")
	}
	//
	return Exact(big.NewFloat(f))
}

// Lower returns a copy of the lower endpoint of this ball.
func (p Ball) Lower() *big.Float {
	return copyOf(p.lower())
}

// Upper returns a copy of the upper endpoint of this ball.
func (p Ball) Upper() *big.Float {
	return copyOf(p.upper())
}

// LowerRat returns the lower endpoint of this ball as an exact rational.
func (p Ball) LowerRat() *big.Rat {
	r, _ := p.lower().Rat(nil)
	return r
}

// UpperRat returns the upper endpoint of this ball as an exact rational.
func (p Ball) UpperRat() *big.Rat {
	r, _ := p.upper().Rat(nil)
	return r
}

// Precision returns the largest precision of either endpoint.
func (p Ball) Precision() uint {
	return max(p.lower().Prec(), p.upper().Prec())
}

// Mid returns a point of this ball which is close to its centre.  The point is
// computed with at least the given precision and, importantly, is always
// contained within the ball.
func (p Ball) Mid(prec uint) *big.Float {
	var (
		mprec = max(prec, p.Precision(), 2)
		mid   = new(big.Float).SetPrec(mprec)
	)
	//
	mid.Add(p.lower(), p.upper())
	//
	return mid.Quo(mid, two)
}

// Radius returns an upper bound on the half-width of this ball.
func (p Ball) Radius() *big.Float {
	var (
		prec  = max(p.Precision(), 2)
		width = up(prec).Sub(p.upper(), p.lower())
	)
	//
	return width.Quo(width, two)
}

// IsExact determines whether this ball has radius zero.
func (p Ball) IsExact() bool {
	return p.lower().Cmp(p.upper()) == 0
}

// ContainsZero determines whether zero lies within this ball.
func (p Ball) ContainsZero() bool {
	return p.lower().Sign() <= 0 && p.upper().Sign() >= 0
}

// IsPositive determines whether every value in this ball is strictly positive.
func (p Ball) IsPositive() bool {
	return p.lower().Sign() > 0
}

// IsNegative determines whether every value in this ball is strictly negative.
func (p Ball) IsNegative() bool {
	return p.upper().Sign() < 0
}

// Sign returns the sign of every value in this ball, or 0 when the ball
// contains zero (i.e. the sign is undecided, or the ball is exactly zero).
func (p Ball) Sign() int {
	switch {
	case p.IsPositive():
		return 1
	case p.IsNegative():
		return -1
	default:
		return 0
	}
}

// ContainsFloat determines whether a given value lies within this ball.
func (p Ball) ContainsFloat(x *big.Float) bool {
	return p.lower().Cmp(x) <= 0 && p.upper().Cmp(x) >= 0
}

// ContainsRat determines (exactly) whether a given rational lies within this
// ball.
func (p Ball) ContainsRat(q *big.Rat) bool {
	return p.LowerRat().Cmp(q) <= 0 && p.UpperRat().Cmp(q) >= 0
}

// Contains determines whether a given ball lies entirely within this ball.
func (p Ball) Contains(q Ball) bool {
	return p.lower().Cmp(q.lower()) <= 0 && p.upper().Cmp(q.upper()) >= 0
}

// Within determines whether this ball lies entirely within a given ball.
func (p Ball) Within(q Ball) bool {
	return q.Contains(p)
}

// Overlaps determines whether this ball and another have at least one point in
// common.
func (p Ball) Overlaps(q Ball) bool {
	return p.lower().Cmp(q.upper()) <= 0 && q.lower().Cmp(p.upper()) <= 0
}

// Lt determines whether every value in this ball is strictly less than every
// value in another.
func (p Ball) Lt(q Ball) bool {
	return p.upper().Cmp(q.lower()) < 0
}

// Gt determines whether every value in this ball is strictly greater than every
// value in another.
func (p Ball) Gt(q Ball) bool {
	return p.lower().Cmp(q.upper()) > 0
}

// Equal determines whether two balls have identical endpoints.
func (p Ball) Equal(q Ball) bool {
	return p.lower().Cmp(q.lower()) == 0 && p.upper().Cmp(q.upper()) == 0
}

// Intersect returns the intersection of two balls, or false if they are
// disjoint.
func (p Ball) Intersect(q Ball) (Ball, bool) {
	if !p.Overlaps(q) {
		return Ball{}, false
	}
	//
	lo, hi := p.lower(), p.upper()
	// Lower bound
	if q.lower().Cmp(lo) > 0 {
		lo = q.lower()
	}
	// Upper bound
	if q.upper().Cmp(hi) < 0 {
		hi = q.upper()
	}
	//
	return Ball{copyOf(lo), copyOf(hi)}, true
}

// RelAccuracyBits returns a lower bound on the number of bits of relative
// accuracy of this ball, i.e. some k such that radius/|mid| < 2^-k.  Exact balls
// report EXACT_BITS, whilst balls containing zero report a non-positive value.
func (p Ball) RelAccuracyBits() int {
	if p.IsExact() {
		return EXACT_BITS
	}
	//
	var (
		mid = p.Mid(0)
		rad = p.Radius()
	)
	//
	if mid.Sign() == 0 {
		return -EXACT_BITS
	}
	// |mid| >= 2^(em-1) and rad < 2^er
	em := mid.MantExp(nil)
	er := rad.MantExp(nil)
	//
	return em - 1 - er
}

func (p Ball) String() string {
	return fmt.Sprintf("[%s, %s]", p.lower().Text('g', 20), p.upper().Text('g', 20))
}

// Observe that the zero value for a Ball is treated as the exact ball
// containing zero.
func (p Ball) lower() *big.Float {
	if p.lo == nil {
		return zero
	}
	//
	return p.lo
}

func (p Ball) upper() *big.Float {
	if p.hi == nil {
		return zero
	}
	//
	return p.hi
}

var (
	zero = new(big.Float)
	two  = big.NewFloat(2)
)

// Construct a fresh float of given precision which rounds towards negative
// infinity.
func down(prec uint) *big.Float {
	return new(big.Float).SetPrec(max(prec, 2)).SetMode(big.ToNegativeInf)
}

// Construct a fresh float of given precision which rounds towards positive
// infinity.
func up(prec uint) *big.Float {
	return new(big.Float).SetPrec(max(prec, 2)).SetMode(big.ToPositiveInf)
}

func copyOf(x *big.Float) *big.Float {
	return new(big.Float).Copy(x)
}
