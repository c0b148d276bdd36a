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
	"sync"
	"sync/atomic"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	"github.com/flatsurf/e-antic-sub001/pkg/nf"
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	"github.com/pkg/errors"
)

// NumberField is a real embedded number field, that is an algebraic number
// field Q[x]/(p) together with a chosen real root of p.  The root is known
// through an enclosure which is refined on demand, and which shrinks
// monotonically over the lifetime of the field.  A NumberField is shared by
// all of its elements and may be used concurrently: the enclosure and its
// working precision are guarded as one unit.
type NumberField struct {
	config Config
	// Exact arithmetic
	field *nf.Field
	// Primitive integer multiple of the defining polynomial, and its
	// derivative.
	pol  *poly.Poly
	ipol []*big.Int
	ider []*big.Int
	// Evaluation strategy for elements.
	flavour flavour
	// Guards the root enclosure and working precision.
	mux sync.Mutex
	// Enclosure of the embedding.
	emb ball.Ball
	// Working precision at which emb was last computed.  This is only ever
	// written whilst holding mux, but can be read without it.
	prec atomic.Uint64
	// Refinement is forbidden for an immutable field.
	immutable bool
	// Number of published refinements.
	refinements uint64
}

// New constructs a real embedded number field from a defining polynomial, an
// enclosure of the chosen root and an initial working precision.  Other
// settings are taken from DEFAULT_CONFIG.
func New(pol *poly.Poly, emb ball.Ball, prec uint) (*NumberField, error) {
	return NewWithConfig(pol, emb, DEFAULT_CONFIG.WithPrecision(prec))
}

// NewWithConfig constructs a real embedded number field from a defining
// polynomial and an enclosure of the chosen root using a given configuration.
// The polynomial must be non-constant and squarefree, and the enclosure must
// contain exactly one of its real roots.  The polynomial is assumed to be
// irreducible, which is not checked.  The enclosure is initially refined to
// twice the configured precision.
func NewWithConfig(pol *poly.Poly, emb ball.Ball, config Config) (*NumberField, error) {
	if config.Precision == 0 {
		return nil, errors.New("working precision must be positive")
	}
	//
	field, err := nf.NewField(pol)
	if err != nil {
		return nil, errors.Wrap(err, "invalid number field")
	}
	// Clear denominators
	ipol, _ := pol.Integer()
	ider, _ := poly.FromBigInts(ipol...).Derivative().Integer()
	ppol := poly.FromBigInts(ipol...)
	//
	if n := countRoots(ppol, emb); n != 1 {
		return nil, errors.Errorf("enclosure %s contains %d real roots of %s (expected 1)", emb, n, pol.String("x"))
	}
	//
	f := &NumberField{
		config:  config,
		field:   field,
		pol:     ppol,
		ipol:    ipol,
		ider:    ider,
		flavour: flavourOf(field.Degree()),
		emb:     emb,
	}
	f.prec.Store(uint64(config.Precision))
	//
	f.Refine(2 * config.Precision)
	//
	return f, nil
}

// NewNthRoot constructs the number field Q(d^(1/n)) embedded at the positive
// real root of x^n - d, for a positive rational d and positive n.  This fails
// if x^n - d is reducible.
func NewNthRoot(d *big.Rat, n uint, prec uint) (*NumberField, error) {
	if d.Sign() <= 0 {
		return nil, errors.Errorf("cannot take root of non-positive rational %s", d.RatString())
	} else if n == 0 {
		return nil, errors.New("cannot take zeroth root")
	}
	// Capelli: for d > 0, x^n - d is irreducible unless d is a pth power for
	// some prime p dividing n.
	for _, p := range primeFactors(n) {
		if isPerfectPower(d.Num(), p) && isPerfectPower(d.Denom(), p) {
			return nil, errors.Errorf("x^%d-%s is reducible (%s is a perfect %dth power)", n, d.RatString(), d.RatString(), p)
		}
	}
	//
	pol := poly.Monomial(big.NewRat(1, 1), n).Sub(poly.Constant(d))
	//
	if n == 1 {
		return New(pol, ball.FromRat(d, prec), prec)
	}
	// Largest real root is the positive one.
	roots := pol.IsolateRealRoots()
	//
	return New(pol, intervalBall(roots[len(roots)-1]), prec)
}

// Degree returns the degree of this field over Q.
func (f *NumberField) Degree() uint {
	return f.field.Degree()
}

// Polynomial returns (a copy of) the primitive integer defining polynomial of
// this field.
func (f *NumberField) Polynomial() *poly.Poly {
	return f.pol.Clone()
}

// Config returns the configuration of this field.
func (f *NumberField) Config() Config {
	return f.config
}

// Precision returns the current working precision of the root enclosure.
func (f *NumberField) Precision() uint {
	return uint(f.prec.Load())
}

// Root returns the current enclosure of the embedding.
func (f *NumberField) Root() ball.Ball {
	emb, _ := f.snapshot()
	return emb
}

// Refinements returns the number of times the root enclosure of this field has
// been refined (including its initial refinement on construction).
func (f *NumberField) Refinements() uint64 {
	f.mux.Lock()
	defer f.mux.Unlock()
	//
	return f.refinements
}

// IsImmutable checks whether this field is immutable.
func (f *NumberField) IsImmutable() bool {
	f.mux.Lock()
	defer f.mux.Unlock()
	//
	return f.immutable
}

// SetImmutable marks this field as (im)mutable and returns the previous
// setting.  The root enclosure of an immutable field is never refined in
// place, instead decision procedures work on private refinements.
func (f *NumberField) SetImmutable(immutable bool) bool {
	f.mux.Lock()
	defer f.mux.Unlock()
	//
	old := f.immutable
	f.immutable = immutable
	//
	return old
}

// Equal checks whether two fields represent the same embedded number field,
// i.e. they have the same defining polynomial and their root enclosures
// overlap.
func (f *NumberField) Equal(g *NumberField) bool {
	if f == g {
		return true
	} else if !f.pol.Equal(g.pol) {
		return false
	}
	//
	femb, gemb := f.Root(), g.Root()
	//
	return femb.Overlaps(gemb)
}

func (f *NumberField) String() string {
	return fmt.Sprintf("NumberField(%s, %s)", f.pol.String("x"), f.Root())
}

// Take a consistent snapshot of the root enclosure and its working precision.
func (f *NumberField) snapshot() (ball.Ball, uint) {
	f.mux.Lock()
	defer f.mux.Unlock()
	//
	return f.emb, f.Precision()
}

// Determine the precision from which an escalation should start, i.e. the
// larger of the working precision and the actual accuracy of the root
// enclosure.
func (f *NumberField) workingPrecision() uint {
	emb, prec := f.snapshot()
	//
	if acc := emb.RelAccuracyBits(); acc > int(prec) && acc < ball.EXACT_BITS {
		return uint(acc)
	}
	//
	return prec
}

// Count the distinct real roots of a polynomial within a closed ball.
func countRoots(p *poly.Poly, b ball.Ball) uint {
	var (
		lo, hi = b.LowerRat(), b.UpperRat()
		n      = poly.NewSturmSequence(p).CountRoots(lo, hi)
	)
	// Sturm counts roots in (lo,hi]
	if p.Sign(lo) == 0 {
		n++
	}
	//
	return n
}

// Construct a ball whose endpoints are exactly those of a dyadic interval.
func intervalBall(iv poly.Interval) ball.Ball {
	return ball.FromInterval(dyadic(iv.Lo), dyadic(iv.Hi))
}

// Convert a dyadic rational into a float without loss.
func dyadic(q *big.Rat) *big.Float {
	prec := max(uint(q.Num().BitLen()), 2)
	//
	return new(big.Float).SetPrec(prec).SetRat(q)
}

// Distinct prime factors of a positive integer.
func primeFactors(n uint) []uint {
	var factors []uint
	//
	for p := uint(2); p*p <= n; p++ {
		if n%p == 0 {
			factors = append(factors, p)
			//
			for n%p == 0 {
				n /= p
			}
		}
	}
	//
	if n > 1 {
		factors = append(factors, n)
	}
	//
	return factors
}

// Check whether a non-negative integer is a perfect kth power.
func isPerfectPower(x *big.Int, k uint) bool {
	var (
		lo  = big.NewInt(0)
		hi  = new(big.Int).Lsh(big.NewInt(1), uint(x.BitLen())/k+1)
		mid big.Int
		pow big.Int
		exp = big.NewInt(int64(k))
	)
	// Binary search for the kth root
	for lo.Cmp(hi) <= 0 {
		mid.Add(lo, hi)
		mid.Rsh(&mid, 1)
		//
		switch pow.Exp(&mid, exp, nil).Cmp(x) {
		case 0:
			return true
		case -1:
			lo.Add(&mid, big.NewInt(1))
		default:
			hi.Sub(&mid, big.NewInt(1))
		}
	}
	//
	return false
}
