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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Generator_01(t *testing.T) {
	var (
		g1 = NewGenerator(42)
		g2 = NewGenerator(42)
	)
	// Reproducible from the seed
	for degree := uint(1); degree <= 5; degree++ {
		f1, f2 := g1.Field(degree, 8, 64), g2.Field(degree, 8, 64)
		//
		assert.Equal(t, degree, f1.Degree())
		assert.True(t, f1.Polynomial().Equal(f2.Polynomial()))
		assert.True(t, f1.Equal(f2))
		assert.True(t, g1.Element(f1, 8).Value().Poly().Equal(g2.Element(f2, 8).Value().Poly()))
		checkRoot(t, f1)
	}
}

func Test_Generator_02(t *testing.T) {
	var (
		g        = NewGenerator(7)
		f        = g.Field(3, 6, 64)
		elements = g.DistinctElements(f, 20, 2)
	)
	//
	require.Len(t, elements, 20)
	//
	for i := range elements {
		for j := range elements {
			assert.Equal(t, i == j, elements[i].Equal(elements[j]))
		}
	}
}

func Test_Generator_03(t *testing.T) {
	g := NewGenerator(11)
	//
	for i := 0; i < 100; i++ {
		q := g.Rational(4)
		//
		assert.LessOrEqual(t, q.Num().BitLen(), 5)
		assert.LessOrEqual(t, q.Denom().BitLen(), 5)
		assert.Equal(t, 1, q.Denom().Sign())
	}
}
