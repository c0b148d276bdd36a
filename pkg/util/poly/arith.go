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
)

// Add another polynomial onto this polynomial.
func (p *Poly) Add(other *Poly) *Poly {
	n := max(len(p.coeffs), len(other.coeffs))
	res := make([]*big.Rat, n)
	//
	for i := range res {
		res[i] = new(big.Rat).Add(p.at(i), other.at(i))
	}
	//
	return normalise(res)
}

// Sub another polynomial from this polynomial.
func (p *Poly) Sub(other *Poly) *Poly {
	n := max(len(p.coeffs), len(other.coeffs))
	res := make([]*big.Rat, n)
	//
	for i := range res {
		res[i] = new(big.Rat).Sub(p.at(i), other.at(i))
	}
	//
	return normalise(res)
}

// Neg returns the negation of this polynomial.
func (p *Poly) Neg() *Poly {
	res := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		res[i] = new(big.Rat).Neg(c)
	}
	//
	return &Poly{res}
}

// Mul this polynomial by another polynomial.
func (p *Poly) Mul(other *Poly) *Poly {
	if p.IsZero() || other.IsZero() {
		return &Poly{}
	}
	//
	var (
		res = make([]*big.Rat, len(p.coeffs)+len(other.coeffs)-1)
		tmp big.Rat
	)
	//
	for i := range res {
		res[i] = new(big.Rat)
	}
	//
	for i, ith := range p.coeffs {
		for j, jth := range other.coeffs {
			res[i+j].Add(res[i+j], tmp.Mul(ith, jth))
		}
	}
	//
	return normalise(res)
}

// Scale multiplies every coefficient of this polynomial by a given rational.
func (p *Poly) Scale(c *big.Rat) *Poly {
	res := make([]*big.Rat, len(p.coeffs))
	//
	for i, ith := range p.coeffs {
		res[i] = new(big.Rat).Mul(ith, c)
	}
	//
	return normalise(res)
}

// Monic returns this polynomial divided by its leading coefficient.  Note this
// will panic for the zero polynomial.
func (p *Poly) Monic() *Poly {
	if p.IsZero() {
		panic("zero polynomial has no leading coefficient")
	}
	//
	return p.Scale(new(big.Rat).Inv(p.coeffs[len(p.coeffs)-1]))
}

// DivRem performs polynomial long division of this polynomial by a non-zero
// divisor, returning the quotient and remainder.  Note this will panic if the
// divisor is zero.
func (p *Poly) DivRem(divisor *Poly) (*Poly, *Poly) {
	if divisor.IsZero() {
		panic("polynomial division by zero")
	}
	//
	var (
		rem  = p.Coeffs()
		dlen = len(divisor.coeffs)
		lead = divisor.coeffs[dlen-1]
		tmp  big.Rat
	)
	//
	if len(rem) < dlen {
		return &Poly{}, normalise(rem)
	}
	//
	quo := make([]*big.Rat, len(rem)-dlen+1)
	//
	for i := len(quo) - 1; i >= 0; i-- {
		q := new(big.Rat).Quo(rem[i+dlen-1], lead)
		quo[i] = q
		//
		if q.Sign() == 0 {
			continue
		}
		//
		for j, jth := range divisor.coeffs {
			rem[i+j].Sub(rem[i+j], tmp.Mul(q, jth))
		}
	}
	//
	return normalise(quo), normalise(rem[:dlen-1])
}

// Rem returns the remainder of this polynomial modulo a non-zero divisor.
func (p *Poly) Rem(divisor *Poly) *Poly {
	_, r := p.DivRem(divisor)
	return r
}

// Derivative returns the formal derivative of this polynomial.
func (p *Poly) Derivative() *Poly {
	if len(p.coeffs) <= 1 {
		return &Poly{}
	}
	//
	res := make([]*big.Rat, len(p.coeffs)-1)
	//
	for i := range res {
		k := big.NewRat(int64(i+1), 1)
		res[i] = k.Mul(k, p.coeffs[i+1])
	}
	//
	return normalise(res)
}

// Gcd returns the monic greatest common divisor of two polynomials, or zero
// if both are zero.
func (p *Poly) Gcd(other *Poly) *Poly {
	g, _, _ := p.ExtGcd(other)
	return g
}

// ExtGcd implements the extended Euclidean algorithm.  It returns the monic
// greatest common divisor g together with cofactors s and t such that
// s*p + t*other = g.
func (p *Poly) ExtGcd(other *Poly) (g *Poly, s *Poly, t *Poly) {
	var (
		r0, r1 = p.Clone(), other.Clone()
		s0, s1 = FromInts(1), &Poly{}
		t0, t1 = &Poly{}, FromInts(1)
	)
	//
	for !r1.IsZero() {
		q, r := r0.DivRem(r1)
		r0, r1 = r1, r
		s0, s1 = s1, s0.Sub(q.Mul(s1))
		t0, t1 = t1, t0.Sub(q.Mul(t1))
	}
	//
	if r0.IsZero() {
		return r0, s0, t0
	}
	// Normalise
	inv := new(big.Rat).Inv(r0.coeffs[len(r0.coeffs)-1])
	//
	return r0.Scale(inv), s0.Scale(inv), t0.Scale(inv)
}

// IsSquarefree checks whether this polynomial has no repeated (complex)
// factors, i.e. whether it is coprime with its derivative.
func (p *Poly) IsSquarefree() bool {
	if p.IsZero() {
		return false
	}
	//
	return p.Gcd(p.Derivative()).Degree() == 0
}

// Eval evaluates this polynomial exactly at a given rational.
func (p *Poly) Eval(x *big.Rat) *big.Rat {
	res := new(big.Rat)
	// Horner's method
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		res.Mul(res, x)
		res.Add(res, p.coeffs[i])
	}
	//
	return res
}

// Sign returns the sign of this polynomial evaluated (exactly) at a given
// rational.
func (p *Poly) Sign(x *big.Rat) int {
	return p.Eval(x).Sign()
}

// Return ith coefficient, or zero if beyond the end.  The result must not be
// modified.
func (p *Poly) at(i int) *big.Rat {
	if i < len(p.coeffs) {
		return p.coeffs[i]
	}
	//
	return zero
}

var zero = new(big.Rat)
