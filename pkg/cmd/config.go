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

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"
)

// defaultConfigFile is picked up from the working directory when no
// explicit --config flag is given.
const defaultConfigFile = "intcode.toml"

// Config carries harness defaults loaded from an intcode.toml file: named
// program aliases resolving to source files, and default phase settings for
// the feedback command.
type Config struct {
	// Program aliases, e.g. boost = "inputs/day9.txt", allowing
	// "go-intcode run boost" instead of spelling out the path.
	Programs map[string]string `toml:"programs"`
	// Defaults for the feedback command.
	Feedback FeedbackConfig `toml:"feedback"`
}

// FeedbackConfig holds defaults for the feedback command.
type FeedbackConfig struct {
	// Default phase settings to permute.
	Phases []int64 `toml:"phases"`
}

// loadConfig reads the configuration for the current invocation.  An
// explicit --config file must exist; the implicit intcode.toml in the
// working directory is optional.
func loadConfig(cmd *cobra.Command) *Config {
	var cfg Config
	//
	filename := getString(cmd, "config")
	//
	if filename == "" {
		filename = defaultConfigFile
		// The implicit config is optional
		if _, err := os.Stat(filename); err != nil {
			return &cfg
		}
	}
	//
	if _, err := toml.DecodeFile(filename, &cfg); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return &cfg
}

// resolveProgram maps a command-line program argument through the config's
// alias table, falling back to treating it as a file path.
func (p *Config) resolveProgram(arg string) string {
	if filename, ok := p.Programs[arg]; ok {
		return filename
	}
	//
	return arg
}
