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
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Memory is the linear address space of a program, holding both code and
// data in one self-modifiable sequence.  It behaves as an infinite
// zero-initialised tape backed by a growable array: reads beyond the current
// length yield zero, and writes beyond the current length grow the array
// (zero-filling the gap) before storing.  Addresses are always
// non-negative; bounds are limited only by available memory.
type Memory []int64

// ParseMemory parses a comma-separated list of (optionally negative) base-10
// integers into a fresh memory image, with the first token at address 0.
// Leading/trailing whitespace and empty tokens are ignored.  Any
// non-integer token, or a source with no tokens at all, yields
// ErrMalformedProgram.
func ParseMemory(source string) (Memory, error) {
	var memory Memory
	//
	for _, token := range strings.Split(source, ",") {
		token = strings.TrimSpace(token)
		// Skip empty tokens (e.g. trailing comma, blank line)
		if token == "" {
			continue
		}
		//
		value, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(ErrMalformedProgram, "invalid number %q", token)
		}
		//
		memory = append(memory, value)
	}
	// An empty image has nothing to execute
	if len(memory) == 0 {
		return nil, errors.Wrap(ErrMalformedProgram, "empty source")
	}
	//
	return memory, nil
}

// Get returns the value stored at the given address.  Reading beyond the
// current length never fails; it simply yields zero.
func (p Memory) Get(address uint) int64 {
	if address >= uint(len(p)) {
		return 0
	}
	//
	return p[address]
}

// Set stores a value at the given address, growing the memory (and
// zero-filling the intervening cells) if the address lies beyond the current
// length.
func (p *Memory) Set(address uint, value int64) {
	if n := uint(len(*p)); address >= n {
		*p = append(*p, make([]int64, address-n+1)...)
	}
	//
	(*p)[address] = value
}
