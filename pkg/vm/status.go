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
package vm

// Status describes where a program stands in its execution lifecycle.  A
// program is created Idle, moves to Running when execution starts, may
// oscillate between Running and Paused while being pumped for outputs, and
// ends Halted (terminal).  Transitions are owned exclusively by the
// execution engine.
type Status uint8

const (
	// StatusIdle indicates a freshly loaded program which has not started
	// executing.
	StatusIdle Status = iota
	// StatusRunning indicates execution is in progress.
	StatusRunning
	// StatusPaused indicates execution was suspended immediately after an
	// output was produced; resuming continues exactly where it left off.
	StatusPaused
	// StatusHalted indicates the program executed its halt instruction.
	// This state is terminal.
	StatusHalted
)

func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusRunning:
		return "running"
	case StatusPaused:
		return "paused"
	case StatusHalted:
		return "halted"
	default:
		return "unknown"
	}
}
