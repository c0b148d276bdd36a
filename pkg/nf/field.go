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
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	"github.com/pkg/errors"
)

// Field is an algebraic number field Q[x]/(p) given by its defining
// polynomial p.  A field is immutable after construction and may be shared
// freely.  Elements of the same field must be constructed from the same Field
// pointer in order to be combined.
type Field struct {
	// Defining polynomial (never mutated)
	pol *poly.Poly
}

// NewField constructs a number field from a defining polynomial, which must
// have degree at least one and be squarefree.  Irreducibility is not checked;
// the caller is responsible for this, and inversion panics if it encounters a
// non-trivial factor.
func NewField(pol *poly.Poly) (*Field, error) {
	if pol.Degree() < 1 {
		return nil, errors.Errorf("defining polynomial %s is constant", pol.String("x"))
	} else if !pol.IsSquarefree() {
		return nil, errors.Errorf("defining polynomial %s is not squarefree", pol.String("x"))
	}
	//
	return &Field{pol.Clone()}, nil
}

// Degree returns the degree of this field over Q.
func (f *Field) Degree() uint {
	return uint(f.pol.Degree())
}

// Polynomial returns (a copy of) the defining polynomial of this field.
func (f *Field) Polynomial() *poly.Poly {
	return f.pol.Clone()
}

// Reduce a polynomial modulo the defining polynomial.
func (f *Field) reduce(p *poly.Poly) *poly.Poly {
	if p.Len() <= uint(f.pol.Degree()) {
		return p
	}
	//
	return p.Rem(f.pol)
}
