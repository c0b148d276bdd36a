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
	"math/big"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	log "github.com/sirupsen/logrus"
)

// Sign returns the sign (-1, 0 or 1) of this element.  Rational elements are
// decided exactly.  Otherwise, the enclosure is sharpened (refining the field
// as necessary) until it excludes zero, which must eventually happen since an
// irrational element is never zero.
func (e *Element) Sign() int {
	if q, ok := e.value.Rational(); ok {
		return q.Sign()
	} else if s := e.enc.Sign(); s != 0 {
		return s
	}
	//
	var (
		cond = uint(e.ConditionExponent())
		prec = e.field.workingPrecision()
	)
	//
	e.refineTo(prec + cond)
	//
	for e.enc.ContainsZero() {
		prec *= 2
		//
		log.Debugf("escalating sign of %s to %d bits", e.value, prec+cond)
		//
		e.refineTo(prec + cond)
	}
	//
	return e.enc.Sign()
}

// Cmp compares two elements of the same field, returning -1, 0 or 1 when this
// element is respectively less than, equal to or greater than the other.
// Exactly equal elements are decided without any refinement.
func (e *Element) Cmp(b *Element) int {
	e.check(b)
	//
	if e.value.Equal(b.value) {
		return 0
	} else if c, ok := cmpEnclosures(e.enc, b.enc); ok {
		return c
	}
	// Both rational
	q, qok := e.value.Rational()
	r, rok := b.value.Rational()
	//
	if qok && rok {
		return q.Cmp(r)
	}
	// Jump to a precision where both enclosures should be accurate
	prec := e.field.workingPrecision()
	//
	e.refineTo(prec + uint(e.ConditionExponent()))
	b.refineTo(prec + uint(b.ConditionExponent()))
	//
	if c, ok := cmpEnclosures(e.enc, b.enc); ok {
		return c
	}
	//
	log.Debugf("comparing %s and %s via their difference", e.value, b.value)
	//
	return e.Sub(b).Sign()
}

// CmpRat compares this element against a rational, returning -1, 0 or 1 when
// this element is respectively less than, equal to or greater than it.
func (e *Element) CmpRat(q *big.Rat) int {
	if r, ok := e.value.Rational(); ok {
		return r.Cmp(q)
	}
	//
	qb := ball.FromRat(q, max(e.enc.Precision(), e.field.Precision()))
	//
	if c, ok := cmpEnclosures(e.enc, qb); ok {
		return c
	}
	//
	return e.AddRat(new(big.Rat).Neg(q)).Sign()
}

// CmpInt compares this element against a small integer.
func (e *Element) CmpInt(n int64) int {
	return e.CmpRat(big.NewRat(n, 1))
}

// CmpBigInt compares this element against an arbitrary integer.
func (e *Element) CmpBigInt(n *big.Int) int {
	return e.CmpRat(new(big.Rat).SetInt(n))
}

// Compare two enclosures, indicating whether or not they were disjoint.
func cmpEnclosures(a, b ball.Ball) (int, bool) {
	switch {
	case a.Lt(b):
		return -1, true
	case a.Gt(b):
		return 1, true
	default:
		return 0, false
	}
}
