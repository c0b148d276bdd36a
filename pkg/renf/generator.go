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
	"math/rand"

	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
)

// EISENSTEIN_PRIMES are the primes used to construct random irreducible
// polynomials.
var EISENSTEIN_PRIMES = []int64{2, 3, 5, 7, 11, 13}

// Generator produces random number fields and elements from an explicit
// source of randomness, such that any sequence of fields and elements can be
// reproduced from its seed.
type Generator struct {
	rand *rand.Rand
}

// NewGenerator constructs a generator from a given seed.
func NewGenerator(seed int64) *Generator {
	return &Generator{rand.New(rand.NewSource(seed))}
}

// Int returns a random integer whose absolute value has at most the given
// number of bits.
func (g *Generator) Int(bits uint) *big.Int {
	limit := new(big.Int).Lsh(big.NewInt(1), bits+1)
	n := new(big.Int).Rand(g.rand, limit)
	// Shift into [-2^bits, 2^bits)
	return n.Sub(n, new(big.Int).Lsh(big.NewInt(1), bits))
}

// Rational returns a random rational whose numerator and denominator have at
// most the given number of bits.
func (g *Generator) Rational(bits uint) *big.Rat {
	den := new(big.Int).Rand(g.rand, new(big.Int).Lsh(big.NewInt(1), bits))
	den.Add(den, big.NewInt(1))
	//
	return new(big.Rat).SetFrac(g.Int(bits), den)
}

// Field returns a random number field of a given degree, whose defining
// polynomial is irreducible by Eisenstein's criterion and has coefficients of
// at most (roughly) the given number of bits.  The embedding is chosen
// uniformly from the real roots.
func (g *Generator) Field(degree uint, bits uint, prec uint) *NumberField {
	if degree == 0 {
		panic("number field of degree zero")
	}
	//
	for {
		pol := g.eisenstein(degree, bits)
		roots := pol.IsolateRealRoots()
		//
		if len(roots) == 0 {
			continue
		}
		//
		root := roots[g.rand.Intn(len(roots))]
		//
		f, err := New(pol, intervalBall(root), prec)
		// Should be unreachable
		if err != nil {
			panic(fmt.Sprintf("random field %s is invalid: %s", pol.String("x"), err))
		}
		//
		return f
	}
}

// Element returns a random element of a given field, whose coefficients have
// at most the given number of bits.
func (g *Generator) Element(f *NumberField, bits uint) *Element {
	coeffs := make([]*big.Rat, f.Degree())
	//
	for i := range coeffs {
		coeffs[i] = g.Rational(bits)
	}
	//
	return f.FromPoly(poly.New(coeffs...))
}

// DistinctElements returns n pairwise distinct random elements of a given
// field.  This requires the number of candidate elements to be sufficiently
// larger than n.
func (g *Generator) DistinctElements(f *NumberField, n uint, bits uint) []*Element {
	var (
		seen     = make(map[uint64][]*Element)
		elements []*Element
	)
	//
	for uint(len(elements)) < n {
		e := g.Element(f, bits)
		h := e.Hash()
		//
		if !containsElement(seen[h], e) {
			seen[h] = append(seen[h], e)
			elements = append(elements, e)
		}
	}
	//
	return elements
}

// Construct a random polynomial satisfying Eisenstein's criterion for a
// randomly chosen prime p: p divides every coefficient except the leading one,
// and p^2 does not divide the constant term.
func (g *Generator) eisenstein(degree uint, bits uint) *poly.Poly {
	var (
		p      = big.NewInt(EISENSTEIN_PRIMES[g.rand.Intn(len(EISENSTEIN_PRIMES))])
		p2     = new(big.Int).Mul(p, p)
		coeffs = make([]*big.Int, degree+1)
		r      big.Int
	)
	// Leading coefficient not divisible by p
	for coeffs[degree] = g.Int(bits); r.Mod(coeffs[degree], p).Sign() == 0; {
		coeffs[degree] = g.Int(bits)
	}
	// Constant coefficient divisible by p, but not p^2
	for coeffs[0] = new(big.Int).Mul(g.Int(bits), p); r.Mod(coeffs[0], p2).Sign() == 0; {
		coeffs[0].Mul(g.Int(bits), p)
	}
	//
	for i := uint(1); i < degree; i++ {
		coeffs[i] = new(big.Int).Mul(g.Int(bits), p)
	}
	//
	return poly.FromBigInts(coeffs...)
}

func containsElement(elements []*Element, e *Element) bool {
	for _, ith := range elements {
		if ith.Equal(e) {
			return true
		}
	}
	//
	return false
}
