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
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// InputSource supplies values to the input opcode.  It receives the 0-based
// ordinal of the request (incremented on every call, so each invocation can
// return the correct value in a sequence) and either yields a value or fails
// with an error wrapping ErrInputUnavailable.  A failure is fatal to the
// requesting program.
type InputSource func(n uint) (int64, error)

// SliceInput yields the given values in order, one per request, and fails
// with ErrInputUnavailable once they are exhausted.
func SliceInput(values ...int64) InputSource {
	return func(n uint) (int64, error) {
		if n >= uint(len(values)) {
			return 0, errors.Wrapf(ErrInputUnavailable, "input %d requested but only %d available", n, len(values))
		}
		//
		return values[n], nil
	}
}

// FixedInput yields the same value on every request.
func FixedInput(value int64) InputSource {
	return func(uint) (int64, error) {
		return value, nil
	}
}

// ChannelInput yields values received from the given channel, blocking until
// one is available.  A closed channel fails with ErrInputUnavailable.
func ChannelInput(ch <-chan int64) InputSource {
	return func(uint) (int64, error) {
		value, ok := <-ch
		if !ok {
			return 0, errors.Wrap(ErrInputUnavailable, "input channel closed")
		}
		//
		return value, nil
	}
}

// ReaderInput scans whitespace-separated base-10 integers from the given
// reader, one per request.  This is the default source for a freshly parsed
// program, bound to stdin.
func ReaderInput(r io.Reader) InputSource {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	//
	return func(uint) (int64, error) {
		if !scanner.Scan() {
			return 0, errors.Wrap(ErrInputUnavailable, "input stream exhausted")
		}
		//
		value, err := strconv.ParseInt(scanner.Text(), 10, 64)
		if err != nil {
			return 0, errors.Wrapf(ErrInputUnavailable, "invalid input %q", scanner.Text())
		}
		//
		return value, nil
	}
}
