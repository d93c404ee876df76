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

	"github.com/adventvm/go-intcode/pkg/pipeline"
	"github.com/adventvm/go-intcode/pkg/util"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [flags] program_file",
	Short: "Find the best amplifier phase setting for a program.",
	Long: `Run one copy of the program per phase setting, wired output-to-input,
and search all permutations of the settings for the highest final signal.
By default the amplifiers form a feedback ring, each running on its own
worker and pausing between outputs; with --serial they are chained once,
start to finish.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			cfg    = loadConfig(cmd)
			source = readProgramFile(cfg.resolveProgram(args[0]))
			serial = getFlag(cmd, "serial")
			phases = getInt64Slice(cmd, "phases")
		)
		// Resolve default phase settings: flag, then config, then the
		// conventional ranges.
		if len(phases) == 0 {
			phases = cfg.Feedback.Phases
		}
		//
		if len(phases) == 0 {
			if serial {
				phases = []int64{0, 1, 2, 3, 4}
			} else {
				phases = []int64{5, 6, 7, 8, 9}
			}
		}
		//
		stats := util.NewPerfStats()
		//
		signal, order, err := pipeline.MaxSignal(source, phases, !serial)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		stats.Log("Searching phase settings")
		log.Debugf("best ordering %v", order)
		//
		printAnswer("Highest output signal", signal)
	},
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.Flags().Bool("serial", false, "chain the amplifiers once instead of looping")
	feedbackCmd.Flags().Int64Slice("phases", nil, "phase settings to permute")
}
