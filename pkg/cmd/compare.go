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

	"github.com/flatsurf/e-antic-sub001/pkg/util"
	"github.com/spf13/cobra"
)

var compareCmd = &cobra.Command{
	Use:   "compare [flags] lhs rhs",
	Short: "Compare two elements.",
	Long: `Compare two elements of a number field.  Each element is given as comma-separated
	rational coefficients in the generator, constant term first.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			field    = readField(cmd)
			elements = readElements(field, args)
			stats    = util.NewPerfStats()
			c        = elements[0].Cmp(elements[1])
			rel      = "=="
		)
		//
		if c < 0 {
			rel = "<"
		} else if c > 0 {
			rel = ">"
		}
		//
		fmt.Printf("%s %s %s\n", args[0], highlightSign(highlighter(cmd), rel, c), args[1])
		//
		stats.Log("Comparing elements")
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
