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
	"runtime/debug"

	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "eantic",
	Short: "Certified arithmetic in real embedded number fields.",
	Long: `Decide signs, comparisons and conversions of elements in a real embedded number field.
	A field is given by its defining polynomial (as comma-separated rational coefficients, constant
	term first) together with an approximation of the chosen real root.  Elements are given the same
	way, as polynomials in the generator.`,
	Run: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "version") {
			fmt.Print("eantic ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("config", "DEFAULT", "named configuration (DEFAULT or PRECISE)")
	rootCmd.PersistentFlags().Uint("prec", 0, "initial working precision in bits (0 for the configured default)")
	rootCmd.PersistentFlags().Bool("check", false, "check every evaluated enclosure independently")
	rootCmd.PersistentFlags().Bool("no-colour", false, "disable highlighting even when writing to a terminal")
	rootCmd.PersistentFlags().StringP("poly", "p", "-2,0,1", "defining polynomial, constant term first")
	rootCmd.PersistentFlags().StringP("root", "r", "1.4142135623", "approximation of the chosen root")
	rootCmd.PersistentFlags().String("radius", "1e-6", "radius of the root enclosure around the approximation")
}
