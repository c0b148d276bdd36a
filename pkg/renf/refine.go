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
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	log "github.com/sirupsen/logrus"
)

// GUARD_BITS is the number of additional bits of working precision used when
// contracting the root enclosure, beyond the requested accuracy.
const GUARD_BITS = 16

// Refine the root enclosure of this field so that it has at least the given
// precision.  This is a no-op if the working precision is already sufficient.
// Refinement may be requested concurrently: the precision is re-checked and
// the enclosure contracted and published whilst holding the lock, hence
// concurrent requests for the same precision contract only once.  This panics
// if the field is immutable.
func (f *NumberField) Refine(prec uint) {
	// Fast path
	if f.Precision() >= prec {
		return
	}
	//
	f.mux.Lock()
	defer f.mux.Unlock()
	// Check again
	if f.Precision() >= prec {
		return
	} else if f.immutable {
		msg := fmt.Sprintf("cannot refine immutable field %s to %d bits", f.pol.String("x"), prec)
		log.Error(msg)
		panic(msg)
	}
	//
	f.publish(f.contract(f.emb, prec), prec)
}

// Ensure an enclosure of the root with at least the given precision is
// available.  For a mutable field this refines the field itself, whilst for an
// immutable field a private refinement is returned instead.
func (f *NumberField) rootAt(prec uint) ball.Ball {
	f.mux.Lock()
	emb, cur, immutable := f.emb, f.Precision(), f.immutable
	f.mux.Unlock()
	//
	switch {
	case cur >= prec:
		return emb
	case immutable:
		return f.contract(emb, prec)
	}
	//
	f.Refine(prec)
	//
	return f.Root()
}

// Publish a refined enclosure of the root at a given precision.  This must be
// called whilst holding the lock.
func (f *NumberField) publish(emb ball.Ball, prec uint) {
	old := f.Precision()
	// Both contain the root, so they must intersect.
	nemb, ok := emb.Intersect(f.emb)
	//
	if !ok {
		msg := fmt.Sprintf("refined enclosure %s of %s is disjoint from %s", emb, f.pol.String("x"), f.emb)
		log.Error(msg)
		panic(msg)
	}
	//
	f.emb = nemb
	f.prec.Store(uint64(prec))
	f.refinements++
	//
	log.Debugf("refined root of %s from %d to %d bits (%d bits accurate)", f.pol.String("x"), old, prec,
		nemb.RelAccuracyBits())
}

// Contract an enclosure containing exactly one root of the defining polynomial
// until it has the given relative accuracy, using interval Newton steps and
// falling back to bisection whenever these make insufficient progress.  The
// result is always contained in the given enclosure.
func (f *NumberField) contract(x ball.Ball, prec uint) ball.Ball {
	w := prec + GUARD_BITS
	//
	for !x.IsExact() && x.RelAccuracyBits() < int(prec) {
		var progress bool
		// A zero root is found immediately
		if x.ContainsZero() && f.ipol[0].Sign() == 0 {
			return ball.Zero()
		}
		//
		if x, progress = f.newtonStep(x, w); progress {
			continue
		}
		//
		log.Debugf("bisecting root enclosure %s of %s at %d bits", x, f.pol.String("x"), w)
		//
		x, w = f.bisectionStep(x, w)
	}
	//
	return x
}

// Perform an interval Newton step N(X) = m - p(m)/p'(X), intersected with X, at
// a given working precision.  The result is contained in the given enclosure,
// and is accompanied by a flag indicating whether the step at least halved its
// radius.
func (f *NumberField) newtonStep(x ball.Ball, w uint) (ball.Ball, bool) {
	var (
		m  = ball.Exact(x.Mid(w))
		pm = poly.EvalIntegerBall(f.ipol, m, w)
		dx = poly.EvalIntegerBall(f.ider, x, w)
	)
	// Hit the root exactly
	if pm.IsExact() && pm.ContainsZero() {
		return m, true
	} else if dx.ContainsZero() {
		return x, false
	}
	//
	n := m.Sub(pm.Div(dx, w), w)
	y, ok := n.Intersect(x)
	//
	if !ok {
		msg := fmt.Sprintf("newton step on %s lost root of %s", x, f.pol.String("x"))
		log.Error(msg)
		panic(msg)
	}
	//
	halved := new(big.Float).Mul(y.Radius(), big.NewFloat(2))
	//
	return y, halved.Cmp(x.Radius()) <= 0
}

// Perform a bisection step on an enclosure using exact signs of the defining
// polynomial.  If the midpoint is not distinct from the endpoints at the
// given working precision, the working precision is doubled instead.
func (f *NumberField) bisectionStep(x ball.Ball, w uint) (ball.Ball, uint) {
	var (
		lo, hi = x.Lower(), x.Upper()
		m      = x.Mid(w)
	)
	//
	if m.Cmp(lo) == 0 || m.Cmp(hi) == 0 {
		return x, 2 * w
	}
	//
	slo, shi, sm := f.signAt(lo), f.signAt(hi), f.signAt(m)
	//
	switch {
	case slo == 0:
		return ball.Exact(lo), w
	case shi == 0:
		return ball.Exact(hi), w
	case sm == 0:
		return ball.Exact(m), w
	case sm == slo:
		return ball.FromInterval(m, hi), w
	default:
		return ball.FromInterval(lo, m), w
	}
}

// Determine the exact sign of the defining polynomial at a given point.
func (f *NumberField) signAt(x *big.Float) int {
	q, _ := x.Rat(nil)
	return f.pol.Sign(q)
}
