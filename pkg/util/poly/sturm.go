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
	"slices"
)

// Interval is a closed interval [Lo,Hi] with rational endpoints.
type Interval struct {
	Lo *big.Rat
	Hi *big.Rat
}

// SturmSequence is the Sturm sequence p, p', -rem(p,p'), ... of a squarefree
// polynomial.  It is used to count distinct real roots exactly.
type SturmSequence []*Poly

// NewSturmSequence constructs the Sturm sequence of a given polynomial.
func NewSturmSequence(p *Poly) SturmSequence {
	seq := SturmSequence{p.Clone()}
	//
	if p.Degree() < 1 {
		return seq
	}
	//
	seq = append(seq, p.Derivative())
	//
	for {
		n := len(seq)
		r := seq[n-2].Rem(seq[n-1])
		//
		if r.IsZero() {
			return seq
		}
		//
		seq = append(seq, r.Neg())
	}
}

// Variations returns the number of sign changes in the sequence evaluated at
// a given rational, ignoring zeros.
func (s SturmSequence) Variations(x *big.Rat) uint {
	var (
		count uint
		last  int
	)
	//
	for _, p := range s {
		sign := p.Sign(x)
		//
		if sign != 0 {
			if last != 0 && sign != last {
				count++
			}
			//
			last = sign
		}
	}
	//
	return count
}

// CountRoots returns the number of distinct real roots in the half-open
// interval (lo,hi].
func (s SturmSequence) CountRoots(lo, hi *big.Rat) uint {
	vlo, vhi := s.Variations(lo), s.Variations(hi)
	//
	if vlo < vhi {
		return 0
	}
	//
	return vlo - vhi
}

// RootBound returns a power of two strictly greater than the absolute value of
// every complex root of a non-constant polynomial (Cauchy's bound).
func (p *Poly) RootBound() *big.Rat {
	var (
		bound = new(big.Rat)
		ratio big.Rat
		lead  = p.Leading()
	)
	//
	for i := 0; i+1 < len(p.coeffs); i++ {
		ratio.Quo(p.coeffs[i], lead)
		ratio.Abs(&ratio)
		//
		if ratio.Cmp(bound) > 0 {
			bound.Set(&ratio)
		}
	}
	// Cauchy: 1 + max |c_i / c_n|
	bound.Add(bound, one)
	// Round up to power of two
	pow := big.NewRat(1, 1)
	for pow.Cmp(bound) <= 0 {
		pow.Mul(pow, two)
	}
	//
	return pow
}

// IsolateRealRoots returns a sorted list of disjoint intervals, each
// containing exactly one real root of a squarefree polynomial.  Every endpoint
// is a dyadic rational.  An interval is degenerate (Lo == Hi) only when it
// pins down a rational root exactly; otherwise the polynomial is non-zero at
// both endpoints.
func (p *Poly) IsolateRealRoots() []Interval {
	if p.Degree() < 1 {
		return nil
	}
	//
	var (
		seq      = NewSturmSequence(p)
		bound    = p.RootBound()
		worklist = []Interval{{new(big.Rat).Neg(bound), bound}}
		roots    []Interval
	)
	//
	for len(worklist) > 0 {
		n := len(worklist) - 1
		ith := worklist[n]
		worklist = worklist[:n]
		//
		switch count := seq.CountRoots(ith.Lo, ith.Hi); {
		case count == 0:
			continue
		case count == 1 && p.Sign(ith.Hi) == 0:
			roots = append(roots, Interval{ith.Hi, ith.Hi})
		case count == 1 && p.Sign(ith.Lo) != 0:
			roots = append(roots, ith)
		default:
			mid := new(big.Rat).Add(ith.Lo, ith.Hi)
			mid.Quo(mid, two)
			worklist = append(worklist, Interval{ith.Lo, mid}, Interval{mid, ith.Hi})
		}
	}
	//
	slices.SortFunc(roots, func(a, b Interval) int {
		return a.Lo.Cmp(b.Lo)
	})
	//
	return roots
}

var two = big.NewRat(2, 1)
