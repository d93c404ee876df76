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

	"github.com/adventvm/go-intcode/pkg/util"
	"github.com/adventvm/go-intcode/pkg/vm"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] program_file",
	Short: "Run an Intcode program to completion.",
	Long: `Run an Intcode program to completion and print its output log.
Initial parameters can be patched into memory with --patch, and inputs
supplied with --input (stdin is scanned for integers otherwise).`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		cfg := loadConfig(cmd)
		source := readProgramFile(cfg.resolveProgram(args[0]))
		//
		program, err := vm.FromString(source)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		// Apply patches (e.g. gravity-assist noun/verb)
		for _, spec := range getStringArray(cmd, "patch") {
			address, value, err := parsePatch(spec)
			if err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			log.Debugf("patching address %d with %d", address, value)
			program.Patch(address, value)
		}
		//
		if inputs := getInt64Slice(cmd, "input"); len(inputs) > 0 {
			program.SetInput(vm.SliceInput(inputs...))
		}
		//
		stats := util.NewPerfStats()
		//
		output, err := program.Execute()
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Running program")
		//
		for _, value := range output {
			fmt.Println(value)
		}
		// Report a memory cell when requested (day-2 style answers live
		// at address 0 rather than in the output log).
		if address := getInt(cmd, "peek"); address >= 0 {
			printAnswer(fmt.Sprintf("Memory at address %d", address), program.Peek(uint(address)))
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringArrayP("patch", "p", nil, "overwrite an address before running (address=value)")
	runCmd.Flags().Int64SliceP("input", "i", nil, "values handed to the program's input opcode, in order")
	runCmd.Flags().Int("peek", -1, "print the value at this address after the run")
}
