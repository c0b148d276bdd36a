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
	log "github.com/sirupsen/logrus"
)

// flavour determines how the elements of a field are evaluated, and is fixed
// when the field is constructed.
type flavour uint8

const (
	// Degree one: every element is rational.
	linearFlavour flavour = iota
	// Degree two: every element has the form (a + b*x)/d.
	quadraticFlavour
	// Everything else.
	generalFlavour
)

func flavourOf(degree uint) flavour {
	switch degree {
	case 1:
		return linearFlavour
	case 2:
		return quadraticFlavour
	default:
		return generalFlavour
	}
}

func (p flavour) String() string {
	switch p {
	case linearFlavour:
		return "linear"
	case quadraticFlavour:
		return "quadratic"
	default:
		return "general"
	}
}

// Evaluate the image of an exact value under the embedding, given an enclosure
// of the root and a working precision.  All flavours agree mathematically, and
// any flavour can evaluate any element whose residue it can represent.
func evaluate(fl flavour, value *nf.Elem, emb ball.Ball, prec uint) ball.Ball {
	switch fl {
	case linearFlavour:
		return ball.FromRat(value.Coeff(0), prec)
	case quadraticFlavour:
		nums, den := value.Integer()
		res := emb.MulInt(coeff(nums, 1), prec)
		//
		return res.AddInt(coeff(nums, 0), prec).DivInt(den, prec)
	default:
		nums, den := value.Integer()
		//
		return poly.EvalIntegerBall(nums, emb, prec).DivInt(den, prec)
	}
}

// SetEvaluation recomputes the enclosure of this element from its exact value
// and the current root enclosure of its field, at a given working precision.
// This never refines the field.
func (e *Element) SetEvaluation(prec uint) {
	emb, _ := e.field.snapshot()
	e.setEnclosure(evaluate(e.field.flavour, e.value, emb, prec), prec)
}

// Refine the field (or a private copy of its root enclosure, for immutable
// fields) to a given precision and re-evaluate this element against it.
func (e *Element) refineTo(prec uint) {
	emb := e.field.rootAt(prec)
	e.setEnclosure(evaluate(e.field.flavour, e.value, emb, prec), prec)
}

func (e *Element) setEnclosure(enc ball.Ball, prec uint) {
	e.enc = enc
	//
	if e.field.config.CheckEmbeddings {
		e.CheckEmbedding(prec)
	}
}

// CheckEmbedding recomputes an enclosure of this element independently (using
// the general evaluation strategy) at a given precision and panics if it does
// not overlap the stored enclosure.  This indicates an internal error.
func (e *Element) CheckEmbedding(prec uint) {
	emb, _ := e.field.snapshot()
	fresh := evaluate(generalFlavour, e.value, emb, prec)
	//
	if !fresh.Overlaps(e.enc) {
		msg := fmt.Sprintf("embedding of %s set to %s but got %s", e.value, e.enc, fresh)
		log.Error(msg)
		panic(msg)
	}
}

// Return ith coefficient, or zero if beyond the end.
func coeff(nums []*big.Int, i int) *big.Int {
	if i < len(nums) {
		return nums[i]
	}
	//
	return new(big.Int)
}
