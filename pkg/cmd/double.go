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
	"os"
	"strconv"

	"github.com/flatsurf/e-antic-sub001/pkg/renf"
	"github.com/flatsurf/e-antic-sub001/pkg/util"
	"github.com/spf13/cobra"
)

var doubleCmd = &cobra.Command{
	Use:   "double [flags] element...",
	Short: "Convert one or more elements into doubles.",
	Long: `Convert one or more elements of a number field into IEEE doubles, using a given
	rounding mode (nearest, toward-zero, away-from-zero, floor or ceil).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		rounding, err := parseRounding(getString(cmd, "rounding"))
		if err != nil {
			fail(err)
		}
		//
		var (
			field    = readField(cmd)
			elements = readElements(field, args)
			stats    = util.NewPerfStats()
		)
		//
		doubles := util.ParMap(elements, func(e *renf.Element) float64 {
			return e.Float64(rounding)
		})
		//
		for i, d := range doubles {
			fmt.Printf("%s\t%s\n", args[i], strconv.FormatFloat(d, 'g', -1, 64))
		}
		//
		stats.Log("Converting elements")
	},
}

func init() {
	rootCmd.AddCommand(doubleCmd)
	doubleCmd.Flags().String("rounding", "nearest", "rounding mode")
}
