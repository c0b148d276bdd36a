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
	"fmt"
	"math/big"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	"github.com/flatsurf/e-antic-sub001/pkg/nf"
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
)

// Element is an element of a real embedded number field.  It combines an exact
// value with an enclosure of its image under the embedding, which always
// contains the true real value.  Arithmetic never modifies its operands, but
// decision procedures (e.g. Sign) may sharpen the enclosure of an element and
// refine its field.  Hence, an element should not be shared between goroutines
// without synchronisation, though its field can be.
type Element struct {
	field *NumberField
	value *nf.Elem
	enc   ball.Ball
}

// Zero returns the zero element of this field.
func (f *NumberField) Zero() *Element {
	return f.element(nf.Zero(f.field))
}

// One returns the unit element of this field.
func (f *NumberField) One() *Element {
	return f.element(nf.One(f.field))
}

// Gen returns the generator of this field, i.e. the chosen root.
func (f *NumberField) Gen() *Element {
	return f.element(nf.Gen(f.field))
}

// FromRat constructs an element of this field with a rational value.
func (f *NumberField) FromRat(q *big.Rat) *Element {
	return f.element(nf.FromRat(f.field, q))
}

// FromInt constructs an element of this field with a small integer value.
func (f *NumberField) FromInt(n int64) *Element {
	return f.element(nf.FromInt(f.field, n))
}

// FromPoly constructs the element of this field given by a polynomial
// expression in the generator.
func (f *NumberField) FromPoly(p *poly.Poly) *Element {
	return f.element(nf.FromPoly(f.field, p))
}

// Construct an element whose enclosure is evaluated at the current working
// precision.
func (f *NumberField) element(value *nf.Elem) *Element {
	e := &Element{f, value, ball.Ball{}}
	e.SetEvaluation(f.Precision())
	//
	return e
}

// Construct an element with a known enclosure.  Rational values are always
// re-evaluated, since their enclosure can be made exact or nearly so.
func (f *NumberField) combine(value *nf.Elem, enc ball.Ball) *Element {
	e := &Element{f, value, enc}
	//
	if value.IsRational() {
		e.SetEvaluation(f.Precision())
	} else if f.config.CheckEmbeddings {
		e.CheckEmbedding(f.Precision())
	}
	//
	return e
}

// Field returns the field to which this element belongs.
func (e *Element) Field() *NumberField {
	return e.field
}

// Value returns the exact value of this element.
func (e *Element) Value() *nf.Elem {
	return e.value
}

// Enclosure returns the current enclosure of this element.
func (e *Element) Enclosure() ball.Ball {
	return e.enc
}

// Add two elements of the same field.
func (e *Element) Add(b *Element) *Element {
	prec := e.check(b)
	return e.field.combine(e.value.Add(b.value), e.enc.Add(b.enc, prec))
}

// Sub two elements of the same field.
func (e *Element) Sub(b *Element) *Element {
	prec := e.check(b)
	return e.field.combine(e.value.Sub(b.value), e.enc.Sub(b.enc, prec))
}

// Mul two elements of the same field.
func (e *Element) Mul(b *Element) *Element {
	prec := e.check(b)
	return e.field.combine(e.value.Mul(b.value), e.enc.Mul(b.enc, prec))
}

// Div divides this element by a non-zero element of the same field.
func (e *Element) Div(b *Element) *Element {
	prec := e.check(b)
	value := e.value.Div(b.value)
	//
	if b.enc.ContainsZero() {
		return e.field.element(value)
	}
	//
	return e.field.combine(value, e.enc.Div(b.enc, prec))
}

// Neg returns the negation of this element.
func (e *Element) Neg() *Element {
	return e.field.combine(e.value.Neg(), e.enc.Neg())
}

// Inv returns the inverse of this (non-zero) element.
func (e *Element) Inv() *Element {
	value := e.value.Inv()
	//
	if e.enc.ContainsZero() {
		return e.field.element(value)
	}
	//
	return e.field.combine(value, ball.FromInt(big.NewInt(1), 2).Div(e.enc, e.field.Precision()))
}

// Pow raises this element to a given power.  Negative powers require a
// non-zero element.
func (e *Element) Pow(n int) *Element {
	return e.field.element(e.value.Pow(n))
}

// AddRat adds a rational onto this element.
func (e *Element) AddRat(q *big.Rat) *Element {
	return e.field.combine(e.value.AddRat(q), e.enc.AddRat(q, e.field.Precision()))
}

// MulRat multiplies this element by a rational.
func (e *Element) MulRat(q *big.Rat) *Element {
	return e.field.combine(e.value.MulRat(q), e.enc.MulRat(q, e.field.Precision()))
}

// IsZero checks whether this element is exactly zero.
func (e *Element) IsZero() bool {
	return e.value.IsZero()
}

// IsOne checks whether this element is exactly one.
func (e *Element) IsOne() bool {
	return e.value.IsOne()
}

// IsRational checks whether this element is a rational number.
func (e *Element) IsRational() bool {
	return e.value.IsRational()
}

// IsInteger checks whether this element is a rational integer.
func (e *Element) IsInteger() bool {
	return e.value.IsInteger()
}

// Rational returns the value of this element when it is rational.  The second
// result indicates whether or not this is the case.
func (e *Element) Rational() (*big.Rat, bool) {
	return e.value.Rational()
}

// Equal checks whether two elements of the same field are exactly equal.
// This never refines anything.
func (e *Element) Equal(b *Element) bool {
	e.check(b)
	return e.value.Equal(b.value)
}

// EqualRat checks whether this element is exactly a given rational.
func (e *Element) EqualRat(q *big.Rat) bool {
	r, ok := e.value.Rational()
	return ok && r.Cmp(q) == 0
}

// Hash returns a fingerprint of the exact value of this element.
func (e *Element) Hash() uint64 {
	return e.value.Hash()
}

func (e *Element) String() string {
	return fmt.Sprintf("%s ~ %s", e.value, e.enc.Mid(64).Text('g', 10))
}

// Check two elements belong to the same field, and return the precision at
// which to combine their enclosures.
func (e *Element) check(b *Element) uint {
	if e.field != b.field {
		panic("elements from different fields")
	}
	//
	return e.field.Precision()
}
