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
	"encoding/binary"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// FINGERPRINT_POINT is the (arbitrary) point of the BLS12-377 scalar field at
// which residues are evaluated to compute their fingerprint.
var FINGERPRINT_POINT = fr.NewElement(0x9e3779b97f4a7c15)

// Hash returns a fingerprint of this element, obtained by reducing its residue
// modulo the BLS12-377 scalar prime and evaluating it at FINGERPRINT_POINT.
// Equal elements always have equal fingerprints, whilst distinct elements
// collide with negligible probability.
func (a *Elem) Hash() uint64 {
	var (
		nums, den = a.res.Integer()
		acc       fr.Element
		coeff     fr.Element
		inv       fr.Element
	)
	// Horner's method
	for i := len(nums) - 1; i >= 0; i-- {
		acc.Mul(&acc, &FINGERPRINT_POINT)
		acc.Add(&acc, coeff.SetBigInt(nums[i]))
	}
	//
	inv.SetBigInt(den)
	acc.Mul(&acc, inv.Inverse(&inv))
	//
	bytes := acc.Bytes()
	//
	return binary.BigEndian.Uint64(bytes[fr.Bytes-8:])
}

// Modulus returns the prime modulus used for fingerprinting.
func Modulus() *big.Int {
	return fr.Modulus()
}
