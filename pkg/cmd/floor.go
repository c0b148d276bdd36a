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

	"github.com/spf13/cobra"
)

var floorCmd = &cobra.Command{
	Use:   "floor [flags] element...",
	Short: "Determine the floor and ceiling of one or more elements.",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		field := readField(cmd)
		//
		for i, e := range readElements(field, args) {
			fmt.Printf("%s\t%s\t%s\n", args[i], e.Floor(), e.Ceil())
		}
	},
}

func init() {
	rootCmd.AddCommand(floorCmd)
}
