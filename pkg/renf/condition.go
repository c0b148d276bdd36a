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

	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
)

// ConditionExponent estimates the number of bits of relative accuracy lost when
// evaluating this element from an enclosure of the root.  Writing the element
// as (Σ n_i x^i)/d, evaluating at a root enclosure with a relative error of
// 2^-k gives a relative error of at most 2^(c-k) where
//
//	c = log2((deg+1) Σ |n_i||α|^i) - log2|Σ n_i α^i|
//
// The second term is only known once the enclosure excludes zero, and is
// otherwise omitted.  The result is rounded up, clamped at zero and saturates
// at the configured maximum.  Rational elements have exponent zero.  This does
// not refine anything.
func (e *Element) ConditionExponent() int {
	if e.value.IsRational() {
		return 0
	}
	//
	var (
		nums, den = e.value.Integer()
		emb, prec = e.field.snapshot()
		w         = max(prec, 64)
		alpha     = emb.AbsUpper()
		bound     = poly.MagnitudeBound(nums, alpha, w)
		limit     = int(e.field.config.MaxConditionExponent)
	)
	// Account for the number of terms
	bound.Mul(bound, new(big.Float).SetInt64(int64(len(nums))))
	// bound < 2^cond
	cond := bound.MantExp(nil)
	//
	if !e.enc.ContainsZero() {
		// |Σ n_i α^i| >= 2^(exp-1)
		lower := e.enc.MulInt(den, w).AbsLower()
		cond -= lower.MantExp(nil) - 1
	}
	//
	return min(max(cond, 0), limit)
}
