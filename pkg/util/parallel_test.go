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
package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_ParMap_01(t *testing.T) {
	var items []int
	//
	for i := 0; i < 1000; i++ {
		items = append(items, i)
	}
	//
	results := ParMap(items, func(i int) int { return i * i })
	//
	for i, r := range results {
		assert.Equal(t, i*i, r)
	}
}

func Test_ParMap_02(t *testing.T) {
	assert.Empty(t, ParMap([]string{}, func(s string) int { return len(s) }))
}
