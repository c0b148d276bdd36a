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
package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/flatsurf/e-antic-sub001/pkg/ball"
	"github.com/flatsurf/e-antic-sub001/pkg/renf"
	"github.com/flatsurf/e-antic-sub001/pkg/util/poly"
	"github.com/flatsurf/e-antic-sub001/pkg/util/termio"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Get an expected flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned integer, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Report an error and exit.
func fail(err error) {
	fmt.Println(err)
	os.Exit(2)
}

// Determine the configuration selected by the persistent flags, and configure
// the log level.
func readConfig(cmd *cobra.Command) renf.Config {
	if getFlag(cmd, "debug") {
		log.SetLevel(log.DebugLevel)
	}
	//
	name := getString(cmd, "config")
	config := renf.GetConfig(name)
	//
	if config == nil {
		fail(errors.Errorf("unknown configuration %q", name))
	}
	//
	cfg := *config
	//
	if prec := getUint(cmd, "prec"); prec != 0 {
		cfg.Precision = prec
	}
	//
	cfg.CheckEmbeddings = cfg.CheckEmbeddings || getFlag(cmd, "check")
	//
	return cfg
}

// Construct the number field described by the persistent flags.
func readField(cmd *cobra.Command) *renf.NumberField {
	var (
		config = readConfig(cmd)
		field  *renf.NumberField
		err    error
	)
	//
	field, err = buildField(getString(cmd, "poly"), getString(cmd, "root"), getString(cmd, "radius"), config)
	//
	if err != nil {
		fail(err)
	}
	//
	log.Debugf("constructed %s", field)
	//
	return field
}

// Construct the elements of a field described by the given arguments.
func readElements(field *renf.NumberField, args []string) []*renf.Element {
	elements := make([]*renf.Element, len(args))
	//
	for i, arg := range args {
		coeffs, err := parseRationals(arg)
		//
		if err != nil {
			fail(errors.Wrapf(err, "invalid element %q", arg))
		}
		//
		elements[i] = field.FromPoly(poly.New(coeffs...))
	}
	//
	return elements
}

// Construct a number field from the textual representation of its defining
// polynomial, and an approximation of its root.
func buildField(pol string, root string, radius string, config renf.Config) (*renf.NumberField, error) {
	coeffs, err := parseRationals(pol)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid polynomial %q", pol)
	}
	//
	mid, _, err := big.ParseFloat(root, 10, 128, big.ToNearestEven)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid root %q", root)
	}
	//
	rad, _, err := big.ParseFloat(radius, 10, 128, big.ToPositiveInf)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid radius %q", radius)
	}
	//
	return renf.NewWithConfig(poly.New(coeffs...), ball.FromMidRad(mid, rad, 128), config)
}

// Parse a comma-separated list of rationals, such as "-1/2,0,3".
func parseRationals(text string) ([]*big.Rat, error) {
	var coeffs []*big.Rat
	//
	for _, s := range strings.Split(text, ",") {
		q, ok := new(big.Rat).SetString(strings.TrimSpace(s))
		//
		if !ok {
			return nil, errors.Errorf("invalid rational %q", s)
		}
		//
		coeffs = append(coeffs, q)
	}
	//
	return coeffs, nil
}

// Parse the name of a rounding mode.
func parseRounding(name string) (renf.Rounding, error) {
	for _, r := range renf.ROUNDINGS {
		if r.String() == name {
			return r, nil
		}
	}
	//
	return renf.Nearest, errors.Errorf("unknown rounding mode %q", name)
}

// Construct a highlighter for standard output.
func highlighter(cmd *cobra.Command) termio.Highlighter {
	if getFlag(cmd, "no-colour") {
		return termio.NewFixedHighlighter(false)
	}
	//
	return termio.NewHighlighter(int(os.Stdout.Fd()))
}

// Highlight a sign (or comparison) with an appropriate colour.
func highlightSign(h termio.Highlighter, text string, sign int) string {
	escape := termio.NewAnsiEscape().Bold()
	//
	switch {
	case sign > 0:
		escape = escape.FgColour(termio.GREEN)
	case sign < 0:
		escape = escape.FgColour(termio.RED)
	default:
		escape = escape.FgColour(termio.YELLOW)
	}
	//
	return h.Apply(text, escape)
}
