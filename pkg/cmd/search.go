// Copyright the go-intcode authors.
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

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adventvm/go-intcode/pkg/vm"
)

var searchCmd = &cobra.Command{
	Use:   "search [flags] program_file",
	Short: "Search for the noun/verb pair producing a target value.",
	Long: `Search the noun/verb parameter space of a gravity-assist style program:
for each pair, a fresh copy of the program is patched at addresses 1 (noun)
and 2 (verb), run to completion, and the value left at address 0 compared
against the target.  The combined answer 100 * noun + verb is reported for
the first matching pair.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg    = loadConfig(cmd)
			source = readProgramFile(cfg.resolveProgram(args[0]))
			target = getInt64(cmd, "target")
			limit  = getInt64(cmd, "limit")
		)
		//
		for noun := int64(0); noun <= limit; noun++ {
			for verb := int64(0); verb <= limit; verb++ {
				program, err := vm.FromString(source)
				if err != nil {
					log.Error(err)
					os.Exit(1)
				}
				//
				program.Patch(1, noun)
				program.Patch(2, verb)
				//
				if _, err := program.Execute(); err != nil {
					// Some parameter pairs drive the program into
					// invalid opcodes; those are simply not the answer.
					log.Debugf("noun=%d verb=%d faulted: %v", noun, verb, err)
					continue
				}
				//
				if program.Peek(0) == target {
					log.Debugf("found noun=%d verb=%d", noun, verb)
					printAnswer("100 * noun + verb", 100*noun+verb)
					//
					return
				}
			}
		}
		//
		log.Errorf("no noun/verb pair in [0,%d] produces %d", limit, target)
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Int64P("target", "t", 19690720, "value which must end up at address 0")
	searchCmd.Flags().Int64("limit", 99, "inclusive upper bound for both noun and verb")
}
