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

// Mode determines how a parameter's raw value maps to an operand.
type Mode uint8

const (
	// Position mode: the parameter's value is the value stored at its
	// data, interpreted as an address.
	Position Mode = iota
	// Immediate mode: the parameter's value is its data, directly.
	// Invalid as a write target.
	Immediate
	// Relative mode: the parameter's value is the value stored at its
	// data offset from the current relative base.
	Relative
)

// Opcode selects the operation performed by an instruction.  It is encoded
// in the low two decimal digits of the instruction word.
type Opcode int64

const (
	// OpAdd writes the sum of its first two parameters to its third.
	OpAdd Opcode = 1
	// OpMul writes the product of its first two parameters to its third.
	OpMul Opcode = 2
	// OpInput requests the next input and writes it to its parameter.
	OpInput Opcode = 3
	// OpOutput appends the value of its parameter to the output log.
	OpOutput Opcode = 4
	// OpJumpIfTrue sets the instruction pointer to its second parameter
	// if its first is non-zero.
	OpJumpIfTrue Opcode = 5
	// OpJumpIfFalse sets the instruction pointer to its second parameter
	// if its first is zero.
	OpJumpIfFalse Opcode = 6
	// OpLessThan writes 1 to its third parameter if its first is strictly
	// less than its second, 0 otherwise.
	OpLessThan Opcode = 7
	// OpEquals writes 1 to its third parameter if its first equals its
	// second, 0 otherwise.
	OpEquals Opcode = 8
	// OpAdjustBase adds the value of its parameter to the relative base.
	OpAdjustBase Opcode = 9
	// OpHalt terminates the program.
	OpHalt Opcode = 99
)

// Parameter is a raw operand word tagged with the addressing mode used to
// resolve it.
type Parameter struct {
	// Raw operand word.
	Data int64
	// Addressing mode.
	Mode Mode
}

// Instruction is an ephemeral decoding of the word at the instruction
// pointer: an opcode together with its fixed-arity parameter list.  It is
// reconstructed on every cycle and never stored back.
type Instruction struct {
	Opcode     Opcode
	Parameters []Parameter
}

// arity returns the number of parameters taken by a given opcode, or an
// ErrUnknownOpcode if the opcode is not part of the instruction set.
func arity(opcode Opcode) (uint, error) {
	switch opcode {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 3, nil
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2, nil
	case OpInput, OpOutput, OpAdjustBase:
		return 1, nil
	case OpHalt:
		return 0, nil
	default:
		return 0, errors.Wrapf(ErrUnknownOpcode, "opcode %d", opcode)
	}
}

// decodeInstruction decodes a raw instruction word, fetching the operand
// words which follow it through the given callback (fetch(i) returns the
// i-th word after the instruction word).  The opcode is the word modulo 100;
// the remaining leading digits give the mode of parameters 1, 2, 3... least
// significant digit first, defaulting to position mode for digits not
// present.  Digits beyond the opcode's arity are ignored.
func decodeInstruction(word int64, fetch func(uint) int64) (Instruction, error) {
	var (
		opcode = Opcode(word % 100)
		modes  = word / 100
	)
	//
	n, err := arity(opcode)
	if err != nil {
		return Instruction{}, err
	}
	//
	parameters := make([]Parameter, n)
	//
	for i := uint(0); i < n; i++ {
		mode := Mode(modes % 10)
		modes /= 10
		// Unrecognised mode digits fall back to position mode.
		if mode > Relative {
			mode = Position
		}
		//
		parameters[i] = Parameter{Data: fetch(i), Mode: mode}
	}
	//
	return Instruction{Opcode: opcode, Parameters: parameters}, nil
}
