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

import (
	"github.com/pkg/errors"
)

// Sentinel errors for the VM.  Every failure reported by this package wraps
// exactly one of these, so callers can classify failures with errors.Is
// whilst still seeing positional context (address, opcode, etc) in the
// message.  All of them (bar ErrNoOutput) are fatal to the program instance
// which raised them: there is no recovery path which resumes execution after
// a failed step.
var (
	// ErrMalformedProgram indicates the source text could not be parsed
	// into an initial memory image.
	ErrMalformedProgram = errors.New("malformed program")
	// ErrUnknownOpcode indicates an instruction word whose opcode (low two
	// decimal digits) is outside the supported set.
	ErrUnknownOpcode = errors.New("unknown opcode")
	// ErrInvalidAddress indicates a parameter resolved to a negative
	// address, or an immediate-mode parameter was used as a write target.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrInputUnavailable indicates the input source failed or was
	// exhausted when the program requested a value.
	ErrInputUnavailable = errors.New("input unavailable")
	// ErrNoOutput is reported by ExecuteUntilOutput when the program halts
	// before producing a new output.  It signals a natural halt rather
	// than a fault.
	ErrNoOutput = errors.New("no output produced")
)
