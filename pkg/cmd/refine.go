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

	"github.com/flatsurf/e-antic-sub001/pkg/util"
	"github.com/flatsurf/e-antic-sub001/pkg/util/termio"
	"github.com/spf13/cobra"
)

var refineCmd = &cobra.Command{
	Use:   "refine [flags] precision...",
	Short: "Refine the root enclosure of a number field.",
	Long: `Refine the root enclosure of a number field to one or more precisions (in bits),
	reporting the enclosure obtained each time.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			field = readField(cmd)
			h     = highlighter(cmd)
			bold  = termio.NewAnsiEscape().Bold()
		)
		//
		for _, arg := range args {
			prec, err := strconv.ParseUint(arg, 10, 32)
			if err != nil {
				fail(err)
			}
			//
			stats := util.NewPerfStats()
			field.Refine(uint(prec))
			stats.Log(fmt.Sprintf("Refining to %d bits", prec))
			//
			root := field.Root()
			fmt.Printf("%s bits\t%s\t(%d bits accurate)\n", h.Apply(arg, bold), root, root.RelAccuracyBits())
		}
		//
		fmt.Printf("%d refinements\n", field.Refinements())
	},
}

func init() {
	rootCmd.AddCommand(refineCmd)
}
