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
package nf

import (
	"math/big"

	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
)

// Elem is an element of a number field, represented by its canonical residue
// modulo the defining polynomial (i.e. a polynomial of degree strictly less
// than the degree of the field).  Elements are values: no operation modifies
// its operands.
type Elem struct {
	field *Field
	res   *poly.Poly
}

// Zero returns the zero element of a given field.
func Zero(f *Field) *Elem {
	return &Elem{f, &poly.Poly{}}
}

// One returns the unit element of a given field.
func One(f *Field) *Elem {
	return FromInt(f, 1)
}

// Gen returns the generator of a given field, i.e. the residue class of x.
func Gen(f *Field) *Elem {
	return FromPoly(f, poly.X())
}

// FromRat constructs the element of a given field with a rational value.
func FromRat(f *Field, q *big.Rat) *Elem {
	return &Elem{f, poly.Constant(q)}
}

// FromInt constructs the element of a given field with a small integer value.
func FromInt(f *Field, n int64) *Elem {
	return &Elem{f, poly.FromInts(n)}
}

// FromPoly constructs the element of a given field represented by an arbitrary
// polynomial in the generator.  The polynomial is reduced.
func FromPoly(f *Field, p *poly.Poly) *Elem {
	return &Elem{f, f.reduce(p.Clone())}
}

// Field returns the field to which this element belongs.
func (a *Elem) Field() *Field {
	return a.field
}

// Add two elements of the same field.
func (a *Elem) Add(b *Elem) *Elem {
	a.check(b)
	return &Elem{a.field, a.res.Add(b.res)}
}

// Sub two elements of the same field.
func (a *Elem) Sub(b *Elem) *Elem {
	a.check(b)
	return &Elem{a.field, a.res.Sub(b.res)}
}

// Neg returns the negation of this element.
func (a *Elem) Neg() *Elem {
	return &Elem{a.field, a.res.Neg()}
}

// Mul two elements of the same field.
func (a *Elem) Mul(b *Elem) *Elem {
	a.check(b)
	return &Elem{a.field, a.field.reduce(a.res.Mul(b.res))}
}

// AddRat adds a rational onto this element.
func (a *Elem) AddRat(q *big.Rat) *Elem {
	return &Elem{a.field, a.res.Add(poly.Constant(q))}
}

// MulRat multiplies this element by a rational.
func (a *Elem) MulRat(q *big.Rat) *Elem {
	return &Elem{a.field, a.res.Scale(q)}
}

// Inv returns the multiplicative inverse of this element.  This panics if the
// element is zero, or if the defining polynomial turns out to be reducible.
func (a *Elem) Inv() *Elem {
	if a.IsZero() {
		panic("inverse of zero")
	}
	//
	g, s, _ := a.res.ExtGcd(a.field.pol)
	//
	if g.Degree() != 0 {
		panic("defining polynomial is reducible")
	}
	// Since g is monic and constant, s*a = 1 (mod p).
	return &Elem{a.field, a.field.reduce(s)}
}

// Div divides this element by a non-zero element of the same field.
func (a *Elem) Div(b *Elem) *Elem {
	return a.Mul(b.Inv())
}

// Pow raises this element to a given (possibly negative) power.  Note that
// zero to the power zero is one.
func (a *Elem) Pow(n int) *Elem {
	var (
		base = a
		res  = FromInt(a.field, 1)
	)
	//
	if n < 0 {
		base, n = a.Inv(), -n
	}
	// Square and multiply
	for ; n > 0; n >>= 1 {
		if n&1 == 1 {
			res = res.Mul(base)
		}
		//
		if n > 1 {
			base = base.Mul(base)
		}
	}
	//
	return res
}

// IsZero checks whether this element is zero.
func (a *Elem) IsZero() bool {
	return a.res.IsZero()
}

// IsOne checks whether this element is one.
func (a *Elem) IsOne() bool {
	return a.res.IsConstant() && a.res.Coeff(0).Cmp(one) == 0
}

// IsRational checks whether this element lies in the base field Q.  Since the
// residue is canonical, this is the case exactly when it is constant.
func (a *Elem) IsRational() bool {
	return a.res.IsConstant()
}

// IsInteger checks whether this element is a rational integer.
func (a *Elem) IsInteger() bool {
	return a.res.IsConstant() && a.res.Coeff(0).IsInt()
}

// Rational returns the value of this element when it is rational.  The second
// result indicates whether or not this is the case.
func (a *Elem) Rational() (*big.Rat, bool) {
	if !a.res.IsConstant() {
		return nil, false
	}
	//
	return a.res.Coeff(0), true
}

// Coeff returns the ith coefficient of the residue of this element.
func (a *Elem) Coeff(i uint) *big.Rat {
	return a.res.Coeff(i)
}

// Poly returns (a copy of) the residue of this element.
func (a *Elem) Poly() *poly.Poly {
	return a.res.Clone()
}

// Integer returns the residue of this element as integer numerators over a
// common positive denominator.
func (a *Elem) Integer() ([]*big.Int, *big.Int) {
	return a.res.Integer()
}

// Equal checks whether two elements of the same field are equal.  Elements of
// different fields are never equal.
func (a *Elem) Equal(b *Elem) bool {
	return a.field == b.field && a.res.Equal(b.res)
}

func (a *Elem) String() string {
	return a.res.String("a")
}

func (a *Elem) check(b *Elem) {
	if a.field != b.field {
		panic("elements from different fields")
	}
}

var one = big.NewRat(1, 1)
