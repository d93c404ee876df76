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
	"os"

	"github.com/pkg/errors"
)

// Program is a single Intcode interpreter instance: a self-modifiable
// memory image together with an instruction pointer, a relative base for
// relative-mode addressing, an input source and an append-only output log.
// A program owns its memory exclusively; nothing is shared between
// instances.  A program is not safe for concurrent use: concurrency lives at
// the orchestration layer (see the pipeline package), where independent
// instances communicate over channels.
type Program struct {
	// The program's memory, storing both the instructions to execute and
	// the data they operate on.
	memory Memory
	// Address of the next instruction word to decode.
	pointer uint
	// Current relative base for relative-mode parameters.
	relativeBase int64
	// Source for the input opcode.
	input InputSource
	// Number of inputs requested so far, passed to the input source so
	// each invocation can return the correct ordinal value.
	inputCount uint
	// Values produced by the output opcode, in program order.
	output []int64
	// Where the program stands in its execution lifecycle.
	status Status
}

// FromString parses Intcode source (a single line of comma-separated
// integers) into a fresh, idle program whose input is bound to stdin.
func FromString(source string) (*Program, error) {
	memory, err := ParseMemory(source)
	if err != nil {
		return nil, err
	}
	//
	return &Program{
		memory: memory,
		input:  ReaderInput(os.Stdin),
	}, nil
}

// Patch overwrites the value at a given address, growing memory as needed.
// This is intended for setting up initial parameters before the first run.
func (p *Program) Patch(address uint, value int64) {
	p.memory.Set(address, value)
}

// Peek returns the value stored at a given address.  Addresses beyond the
// current memory read as zero.
func (p *Program) Peek(address uint) int64 {
	return p.memory.Get(address)
}

// SetInput replaces the program's input source.  The default source (set at
// parse time) scans integers from stdin.
func (p *Program) SetInput(input InputSource) {
	p.input = input
}

// Output returns a copy of the values produced so far, in program order.
func (p *Program) Output() []int64 {
	output := make([]int64, len(p.output))
	copy(output, p.output)
	//
	return output
}

// Status reports where the program stands in its execution lifecycle.
func (p *Program) Status() Status {
	return p.status
}

// IsRunning reports whether the program still has work to do, i.e. it is
// mid-execution or paused after an output.  It is false both before the
// first run and after the program halts, letting a caller decide whether to
// keep pumping the instance or stop.
func (p *Program) IsRunning() bool {
	return p.status == StatusRunning || p.status == StatusPaused
}

// Execute runs the program to completion and returns the full output log.
// Executing an already-halted program is a no-op returning the existing
// log.  Any execution fault leaves the instance unusable and is returned
// as-is.
func (p *Program) Execute() ([]int64, error) {
	if p.status != StatusHalted {
		if _, err := p.run(false); err != nil {
			return nil, err
		}
	}
	//
	return p.Output(), nil
}

// ExecuteUntilOutput runs the program until the next output is produced,
// then pauses it and returns that output.  Call it again to resume exactly
// where execution left off (pointer, relative base, memory and input cursor
// are all preserved).  If the program halts before producing a new output —
// including when it has already halted — ErrNoOutput is returned.
func (p *Program) ExecuteUntilOutput() (int64, error) {
	if p.status == StatusHalted {
		return 0, errors.Wrap(ErrNoOutput, "program already halted")
	}
	//
	produced, err := p.run(true)
	//
	if err != nil {
		return 0, err
	} else if !produced {
		return 0, ErrNoOutput
	}
	//
	return p.output[len(p.output)-1], nil
}

// run drives the fetch-decode-execute loop, either to completion or only
// until the output log grows.  It reports whether a new output was produced
// during this call.
func (p *Program) run(untilOutput bool) (bool, error) {
	// Only a fresh start resets the pointer; resuming preserves it.
	if p.status == StatusIdle {
		p.pointer = 0
	}
	//
	p.status = StatusRunning
	//
	for {
		mark := len(p.output)
		//
		more, err := p.forward()
		if err != nil {
			return false, err
		}
		//
		if !more {
			p.status = StatusHalted
			return false, nil
		}
		//
		if untilOutput && len(p.output) > mark {
			p.status = StatusPaused
			return true, nil
		}
	}
}

// forward processes one instruction and moves the instruction pointer to
// the beginning of the next one.  It reports whether more work remains
// (false only on halt).  Failures are fatal: writes applied before the
// failing sub-step are not rolled back.
func (p *Program) forward() (bool, error) {
	insn, err := p.parseInstruction()
	if err != nil {
		return false, err
	}
	//
	switch insn.Opcode {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		lhs, err := p.value(insn.Parameters[0])
		if err != nil {
			return false, err
		}
		//
		rhs, err := p.value(insn.Parameters[1])
		if err != nil {
			return false, err
		}
		//
		target, err := p.address(insn.Parameters[2])
		if err != nil {
			return false, err
		}
		//
		p.memory.Set(target, compute(insn.Opcode, lhs, rhs))
	case OpInput:
		target, err := p.address(insn.Parameters[0])
		if err != nil {
			return false, err
		}
		//
		value, err := p.requestInput()
		if err != nil {
			return false, err
		}
		//
		p.memory.Set(target, value)
	case OpOutput:
		value, err := p.value(insn.Parameters[0])
		if err != nil {
			return false, err
		}
		//
		p.output = append(p.output, value)
	case OpJumpIfTrue, OpJumpIfFalse:
		test, err := p.value(insn.Parameters[0])
		if err != nil {
			return false, err
		}
		// Jump taken: overwrite the default pointer advance.
		if (test != 0) == (insn.Opcode == OpJumpIfTrue) {
			target, err := p.value(insn.Parameters[1])
			//
			if err != nil {
				return false, err
			} else if target < 0 {
				return false, errors.Wrapf(ErrInvalidAddress, "jump to address %d", target)
			}
			//
			p.pointer = uint(target)
		}
	case OpAdjustBase:
		delta, err := p.value(insn.Parameters[0])
		if err != nil {
			return false, err
		}
		//
		p.relativeBase += delta
	case OpHalt:
		return false, nil
	}
	//
	return true, nil
}

// parseInstruction decodes the instruction at the current pointer position
// and advances the pointer past it (jumps overwrite that advance
// afterwards).
func (p *Program) parseInstruction() (Instruction, error) {
	word := p.memory.Get(p.pointer)
	//
	insn, err := decodeInstruction(word, func(i uint) int64 {
		return p.memory.Get(p.pointer + 1 + i)
	})
	//
	if err != nil {
		return Instruction{}, errors.WithMessagef(err, "at address %d", p.pointer)
	}
	//
	p.pointer += uint(len(insn.Parameters)) + 1
	//
	return insn, nil
}

// value resolves a parameter to its operand value according to its mode.
func (p *Program) value(param Parameter) (int64, error) {
	var address int64
	//
	switch param.Mode {
	case Immediate:
		return param.Data, nil
	case Position:
		address = param.Data
	case Relative:
		address = p.relativeBase + param.Data
	}
	// Negative addresses are a fault, never wrapped silently.
	if address < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "read at address %d", address)
	}
	//
	return p.memory.Get(uint(address)), nil
}

// address resolves a parameter used as a write target.  Immediate mode is
// never a valid write target.
func (p *Program) address(param Parameter) (uint, error) {
	var address int64
	//
	switch param.Mode {
	case Immediate:
		return 0, errors.Wrap(ErrInvalidAddress, "immediate-mode write target")
	case Position:
		address = param.Data
	case Relative:
		address = p.relativeBase + param.Data
	}
	//
	if address < 0 {
		return 0, errors.Wrapf(ErrInvalidAddress, "write at address %d", address)
	}
	//
	return uint(address), nil
}

// requestInput asks the input source for the next value, advancing the
// input cursor whether or not the request succeeds.
func (p *Program) requestInput() (int64, error) {
	value, err := p.input(p.inputCount)
	p.inputCount++
	//
	return value, err
}

// compute evaluates an arithmetic or comparison opcode over its two
// operands.
func compute(opcode Opcode, lhs int64, rhs int64) int64 {
	switch opcode {
	case OpAdd:
		return lhs + rhs
	case OpMul:
		return lhs * rhs
	case OpLessThan:
		if lhs < rhs {
			return 1
		}
		//
		return 0
	default:
		// OpEquals
		if lhs == rhs {
			return 1
		}
		//
		return 0
	}
}
