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

// DEFAULT_CONFIG is used by constructors which are not given an explicit
// configuration.
var DEFAULT_CONFIG = Config{"DEFAULT", 64, 1 << 16, false}

// PRECISE_CONFIG starts from a higher working precision and checks every
// evaluated enclosure against an independent evaluation.  This is only really
// useful for debugging.
var PRECISE_CONFIG = Config{"PRECISE", 256, 1 << 20, true}

// CONFIGS determines the set of named configurations.
var CONFIGS = []Config{
	DEFAULT_CONFIG,
	PRECISE_CONFIG,
}

// Config provides a simple mechanism for configuring how a number field
// refines its embedding and decides questions about its elements.
type Config struct {
	// Name suitable for identifying the config.  This is only really used for
	// improving error reporting, etc.
	Name string
	// Initial working precision (in bits) of the root enclosure.
	Precision uint
	// Upper bound on the relative condition exponent of any element.  Estimates
	// beyond this are saturated.
	MaxConditionExponent uint
	// Check every evaluated enclosure against an independent evaluation.
	CheckEmbeddings bool
}

// WithPrecision returns a copy of this configuration with a different initial
// working precision.
func (c Config) WithPrecision(prec uint) Config {
	c.Precision = prec
	return c
}

// GetConfig returns the configuration corresponding with the given name, or nil
// no such config exists.
func GetConfig(name string) *Config {
	for i := range CONFIGS {
		if CONFIGS[i].Name == name {
			return &CONFIGS[i]
		}
	}
	//
	return nil
}
