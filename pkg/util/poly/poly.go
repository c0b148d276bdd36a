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
	"bytes"
	"fmt"
	"math/big"
)

// Poly is a dense univariate polynomial with rational coefficients.  The ith
// coefficient is that of x^i and there are never any trailing zero
// coefficients, hence the representation of any polynomial is unique.  Observe
// that an uninitialised Poly variable corresponds with zero.
//
// Polynomials are treated as values: no operation modifies its operands.
type Poly struct {
	coeffs []*big.Rat
}

// New constructs a polynomial from its coefficients, starting with the constant
// term.  The coefficients are copied.
func New(coeffs ...*big.Rat) *Poly {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i] = new(big.Rat).Set(c)
	}
	//
	return normalise(ncoeffs)
}

// FromInts constructs a polynomial with small integer coefficients, starting
// with the constant term.
func FromInts(coeffs ...int64) *Poly {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i] = big.NewRat(c, 1)
	}
	//
	return normalise(ncoeffs)
}

// FromBigInts constructs a polynomial with integer coefficients, starting with
// the constant term.
func FromBigInts(coeffs ...*big.Int) *Poly {
	ncoeffs := make([]*big.Rat, len(coeffs))
	//
	for i, c := range coeffs {
		ncoeffs[i] = new(big.Rat).SetInt(c)
	}
	//
	return normalise(ncoeffs)
}

// Constant constructs the constant polynomial with the given value.
func Constant(c *big.Rat) *Poly {
	return New(c)
}

// Monomial constructs the polynomial c*x^n.
func Monomial(c *big.Rat, n uint) *Poly {
	ncoeffs := make([]*big.Rat, n+1)
	//
	for i := range ncoeffs {
		ncoeffs[i] = new(big.Rat)
	}
	//
	ncoeffs[n].Set(c)
	//
	return normalise(ncoeffs)
}

// X returns the polynomial x.
func X() *Poly {
	return FromInts(0, 1)
}

// Len returns the number of coefficients in this polynomial, which is one more
// than its degree (or zero for the zero polynomial).
func (p *Poly) Len() uint {
	return uint(len(p.coeffs))
}

// Degree returns the degree of this polynomial, or -1 for the zero polynomial.
func (p *Poly) Degree() int {
	return len(p.coeffs) - 1
}

// Coeff returns (a copy of) the coefficient of x^i.  Coefficients beyond the
// degree are zero.
func (p *Poly) Coeff(i uint) *big.Rat {
	if i >= p.Len() {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[i])
}

// Coeffs returns a copy of the coefficients of this polynomial, starting with
// the constant term.
func (p *Poly) Coeffs() []*big.Rat {
	res := make([]*big.Rat, len(p.coeffs))
	//
	for i, c := range p.coeffs {
		res[i] = new(big.Rat).Set(c)
	}
	//
	return res
}

// Leading returns (a copy of) the leading coefficient, or zero for the zero
// polynomial.
func (p *Poly) Leading() *big.Rat {
	if len(p.coeffs) == 0 {
		return new(big.Rat)
	}
	//
	return new(big.Rat).Set(p.coeffs[len(p.coeffs)-1])
}

// IsZero checks whether this is the zero polynomial.
func (p *Poly) IsZero() bool {
	return len(p.coeffs) == 0
}

// IsConstant checks whether this polynomial has degree at most zero.
func (p *Poly) IsConstant() bool {
	return len(p.coeffs) <= 1
}

// Clone performs a deep copy of this polynomial.
func (p *Poly) Clone() *Poly {
	return New(p.coeffs...)
}

// Equal performs structural equality between two polynomials.  Since the
// representation is unique, this coincides with mathematical equality.
func (p *Poly) Equal(other *Poly) bool {
	if len(p.coeffs) != len(other.coeffs) {
		return false
	}
	//
	for i := range p.coeffs {
		if p.coeffs[i].Cmp(other.coeffs[i]) != 0 {
			return false
		}
	}
	//
	return true
}

// Integer returns integer numerators n_0,...,n_k together with a positive
// common denominator d such that this polynomial equals (Σ n_i x^i)/d, and the
// gcd of d with all numerators is one.
func (p *Poly) Integer() ([]*big.Int, *big.Int) {
	var (
		den  = big.NewInt(1)
		nums = make([]*big.Int, len(p.coeffs))
		g    big.Int
	)
	// Determine least common multiple of denominators
	for _, c := range p.coeffs {
		g.GCD(nil, nil, den, c.Denom())
		den.Mul(den, new(big.Int).Quo(c.Denom(), &g))
	}
	// Scale numerators
	for i, c := range p.coeffs {
		n := new(big.Int).Quo(den, c.Denom())
		nums[i] = n.Mul(n, c.Num())
	}
	//
	return nums, den
}

// String constructs a suitable string representation for a given polynomial
// using a given variable name.
func (p *Poly) String(v string) string {
	var buf bytes.Buffer
	//
	if p.IsZero() {
		return "0"
	}
	//
	for i := len(p.coeffs) - 1; i >= 0; i-- {
		ith := p.coeffs[i]
		//
		if ith.Sign() == 0 {
			continue
		} else if buf.Len() != 0 && ith.Sign() > 0 {
			buf.WriteString("+")
		}
		// Various cases to improve readability
		switch {
		case i == 0:
			buf.WriteString(ith.RatString())
		case ith.Cmp(one) == 0:
			buf.WriteString(v)
		case ith.Cmp(minusOne) == 0:
			buf.WriteString("-" + v)
		default:
			buf.WriteString(fmt.Sprintf("%s*%s", ith.RatString(), v))
		}
		//
		if i > 1 {
			buf.WriteString(fmt.Sprintf("^%d", i))
		}
	}
	//
	return buf.String()
}

var (
	one      = big.NewRat(1, 1)
	minusOne = big.NewRat(-1, 1)
)

// Strip trailing zero coefficients.
func normalise(coeffs []*big.Rat) *Poly {
	n := len(coeffs)
	//
	for n > 0 && coeffs[n-1].Sign() == 0 {
		n--
	}
	//
	return &Poly{coeffs[:n]}
}
