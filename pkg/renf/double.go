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

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	log "github.com/sirupsen/logrus"
)

// Rounding determines how a real number is converted into a double.
type Rounding uint8

const (
	// Nearest rounds to the nearest double, with ties to even.
	Nearest Rounding = iota
	// TowardZero rounds to the nearest double of no greater magnitude.
	TowardZero
	// AwayFromZero rounds to the nearest double of no smaller magnitude.
	AwayFromZero
	// Floor rounds to the nearest double which is no greater.
	Floor
	// Ceil rounds to the nearest double which is no smaller.
	Ceil
)

// ROUNDINGS lists all rounding modes.
var ROUNDINGS = []Rounding{Nearest, TowardZero, AwayFromZero, Floor, Ceil}

func (r Rounding) String() string {
	switch r {
	case Nearest:
		return "nearest"
	case TowardZero:
		return "toward-zero"
	case AwayFromZero:
		return "away-from-zero"
	case Floor:
		return "floor"
	case Ceil:
		return "ceil"
	default:
		return "unknown"
	}
}

// DOUBLE_ACCURACY is the relative accuracy (in bits) an enclosure needs before
// it can lie within the rounding interval of a single double.
const DOUBLE_ACCURACY = 53 + 2

var maxFloat64 = new(big.Rat).SetFloat64(math.MaxFloat64)

// Float64 converts this element into a double using a given rounding mode.
// Values beyond the largest finite double become ±Inf regardless of the
// rounding mode.
func (e *Element) Float64(r Rounding) float64 {
	if e.value.IsZero() {
		return 0
	} else if q, ok := e.value.Rational(); ok {
		return ratFloat64(q, r)
	}
	//
	r = directed(r, e.Sign())
	//
	if overflow := e.overflows(); overflow != 0 {
		return math.Inf(overflow)
	}
	// Make enclosure accurate enough to contain at most one double.
	if e.enc.RelAccuracyBits() < DOUBLE_ACCURACY {
		prec := e.field.workingPrecision()
		cond := uint(e.ConditionExponent())
		//
		e.refineTo(prec + cond)
		//
		for e.enc.RelAccuracyBits() < DOUBLE_ACCURACY {
			prec *= 2
			e.refineTo(prec + cond)
		}
	}
	// Shrink until both endpoints round the same way.
	prec := max(e.field.Precision(), uint(e.enc.RelAccuracyBits()))
	//
	for {
		lo := floatFloat64(e.enc.Lower(), r)
		//
		if hi := floatFloat64(e.enc.Upper(), r); lo == hi {
			return lo
		}
		//
		prec *= 2
		//
		log.Debugf("escalating %s conversion of %s to %d bits", r, e.value, prec)
		//
		e.refineTo(prec)
	}
}

// Floor returns the largest integer which is no greater than this element.
func (e *Element) Floor() *big.Int {
	return e.round(floorFloat, floorRat)
}

// Ceil returns the smallest integer which is no smaller than this element.
func (e *Element) Ceil() *big.Int {
	return e.round(ceilFloat, ceilRat)
}

// FloorDiv returns the largest integer which is no greater than the quotient of
// this element by a non-zero element of the same field.
func (e *Element) FloorDiv(b *Element) *big.Int {
	return e.Div(b).Floor()
}

// Ball returns an enclosure of this element with at least the given relative
// accuracy (in bits).
func (e *Element) Ball(prec uint) ball.Ball {
	if e.value.IsZero() {
		return ball.Zero()
	} else if q, ok := e.value.Rational(); ok {
		return ball.FromRat(q, prec+2)
	}
	//
	var (
		cond = uint(e.ConditionExponent())
		p    = max(prec, e.field.workingPrecision())
	)
	//
	for e.enc.RelAccuracyBits() < int(prec) {
		e.refineTo(p + cond)
		p *= 2
	}
	//
	return e.enc
}

// Round this element to an integer, given functions rounding the endpoints of
// its enclosure and rounding a rational.
func (e *Element) round(fn func(*big.Float) *big.Int, rfn func(*big.Rat) *big.Int) *big.Int {
	if q, ok := e.value.Rational(); ok {
		return rfn(q)
	}
	// Current enclosure
	if lo := fn(e.enc.Lower()); lo.Cmp(fn(e.enc.Upper())) == 0 {
		return lo
	}
	//
	var (
		cond = uint(e.ConditionExponent())
		prec = e.field.workingPrecision()
	)
	//
	for {
		e.refineTo(prec + cond)
		//
		if lo := fn(e.enc.Lower()); lo.Cmp(fn(e.enc.Upper())) == 0 {
			return lo
		}
		//
		prec *= 2
	}
}

// Determine whether this (irrational) element lies outside the range of finite
// doubles, returning its sign if so and zero otherwise.
func (e *Element) overflows() int {
	var (
		sign = e.Sign()
		abs  = e
	)
	//
	if sign < 0 {
		abs = e.Neg()
	}
	// Cheap check first
	if abs.CmpInt(math.MaxUint32) <= 0 || abs.CmpRat(maxFloat64) <= 0 {
		return 0
	}
	//
	return sign
}

// Reduce rounding modes which depend on the sign to either Floor or Ceil.
func directed(r Rounding, sign int) Rounding {
	switch {
	case r == AwayFromZero && sign > 0, r == TowardZero && sign < 0:
		return Ceil
	case r == AwayFromZero, r == TowardZero:
		return Floor
	default:
		return r
	}
}

// Convert a rational into a double using a given rounding mode.
func ratFloat64(q *big.Rat, r Rounding) float64 {
	var abs big.Rat
	//
	if abs.Abs(q).Cmp(maxFloat64) > 0 {
		return math.Inf(q.Sign())
	}
	//
	f, exact := q.Float64()
	//
	if exact {
		return f
	}
	// Determine which side of q the nearest double lies on
	above := new(big.Rat).SetFloat64(f).Cmp(q) > 0
	//
	return adjust(f, directed(r, q.Sign()), above)
}

// Convert a float into a double using a given rounding mode (which must be
// Floor, Ceil or Nearest).
func floatFloat64(x *big.Float, r Rounding) float64 {
	f, acc := x.Float64()
	//
	if acc == big.Exact {
		return f
	}
	//
	return adjust(f, r, acc == big.Above)
}

// Adjust a double rounded to nearest, given whether it lies above or below the
// value being rounded.
func adjust(f float64, r Rounding, above bool) float64 {
	switch {
	case r == Floor && above:
		return math.Nextafter(f, math.Inf(-1))
	case r == Ceil && !above:
		return math.Nextafter(f, math.Inf(1))
	default:
		return f
	}
}

func floorFloat(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	//
	if acc == big.Above {
		i.Sub(i, big.NewInt(1))
	}
	//
	return i
}

func ceilFloat(x *big.Float) *big.Int {
	i, acc := x.Int(nil)
	//
	if acc == big.Below {
		i.Add(i, big.NewInt(1))
	}
	//
	return i
}

func floorRat(q *big.Rat) *big.Int {
	// Euclidean division rounds down for positive divisors
	return new(big.Int).Div(q.Num(), q.Denom())
}

func ceilRat(q *big.Rat) *big.Int {
	i := floorRat(q)
	//
	if !q.IsInt() {
		i.Add(i, big.NewInt(1))
	}
	//
	return i
}
