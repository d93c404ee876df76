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

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/adventvm/go-intcode/pkg/vm"
)

var pumpCmd = &cobra.Command{
	Use:   "pump [flags] program_file",
	Short: "Run an Intcode program one output at a time.",
	Long: `Run an Intcode program through its suspend/resume interface: execute
until the next output, print it, and resume, until the program halts.
Each printed line therefore appears as soon as it is produced.`,
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
		//
		if inputs := getInt64Slice(cmd, "input"); len(inputs) > 0 {
			program.SetInput(vm.SliceInput(inputs...))
		}
		//
		for {
			value, err := program.ExecuteUntilOutput()
			//
			if errors.Is(err, vm.ErrNoOutput) {
				log.Debugf("program halted after %d outputs", len(program.Output()))
				break
			} else if err != nil {
				log.Error(err)
				os.Exit(1)
			}
			//
			fmt.Println(value)
		}
	},
}

func init() {
	rootCmd.AddCommand(pumpCmd)
	pumpCmd.Flags().Int64SliceP("input", "i", nil, "values handed to the program's input opcode, in order")
}
