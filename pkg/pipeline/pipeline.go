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

// Package pipeline wires independent Intcode programs into amplifier
// networks.  Each program is single-threaded and owns its memory
// exclusively; programs communicate only through unidirectional, ordered
// channels carrying integer signals, one channel per directed edge of the
// topology.  The feedback topology is a ring: each amplifier's output feeds
// the next amplifier's input, and the last loops back to the first.
package pipeline

import (
	"math"
	"sync"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/adventvm/go-intcode/pkg/util"
	"github.com/adventvm/go-intcode/pkg/vm"
)

// channelDepth is the buffer capacity of every edge in the pipeline.  A
// worker may legitimately produce one final signal after its receiver has
// already halted; the buffer absorbs that send instead of blocking a
// goroutine forever.
const channelDepth = 16

// Serial runs one fresh program per phase setting, chained so that each
// program receives its phase followed by the previous program's output
// signal (the first receives the seed signal 0).  It returns the last
// program's output signal.
func Serial(source string, phases []int64) (int64, error) {
	var signal int64
	//
	for i, phase := range phases {
		program, err := vm.FromString(source)
		if err != nil {
			return 0, err
		}
		//
		program.SetInput(vm.SliceInput(phase, signal))
		//
		output, err := program.Execute()
		//
		if err != nil {
			return 0, errors.WithMessagef(err, "amplifier %d", i)
		} else if len(output) == 0 {
			return 0, errors.Wrapf(vm.ErrNoOutput, "amplifier %d", i)
		}
		//
		signal = output[0]
	}
	//
	return signal, nil
}

// Feedback runs one fresh program per phase setting, wired in a ring on
// separate goroutines: amplifier i reads from edge i and writes to edge
// i+1, with the last amplifier's output observed by the orchestrator and
// fed back into edge 0.  Each edge is primed with its amplifier's phase
// setting, then the seed signal 0 enters the first edge.  The computation is
// complete when the last amplifier halts; the final signal it transmitted is
// returned.
func Feedback(source string, phases []int64) (int64, error) {
	n := len(phases)
	if n == 0 {
		return 0, errors.New("empty phase setting")
	}
	// One inbound edge per amplifier, plus the edge the orchestrator
	// observes between the last amplifier and the first.
	edges := make([]chan int64, n)
	final := make(chan int64, channelDepth)
	//
	for i, phase := range phases {
		edges[i] = make(chan int64, channelDepth)
		edges[i] <- phase
	}
	// Seed signal
	edges[0] <- 0
	//
	var (
		wg     sync.WaitGroup
		faults = make(chan error, n)
	)
	//
	for i := 0; i < n; i++ {
		program, err := vm.FromString(source)
		if err != nil {
			return 0, err
		}
		//
		program.SetInput(vm.ChannelInput(edges[i]))
		// The last amplifier reports to the orchestrator rather than
		// directly to the first, so the final signal can be captured.
		var out chan<- int64 = final
		if i < n-1 {
			out = edges[i+1]
		}
		//
		wg.Add(1)
		//
		go func(id int, out chan<- int64) {
			defer wg.Done()
			// Closing the observed edge ends the orchestrator loop
			// once the last amplifier exits.
			if id == n-1 {
				defer close(final)
			}
			//
			if err := pump(program, out); err != nil {
				faults <- errors.WithMessagef(err, "amplifier %d", id)
			}
		}(i, out)
	}
	// Observe the last amplifier and feed its signals back into the ring.
	// Once the first amplifier has exited nobody drains edge 0, so the
	// feed-back send is allowed to drop (the final signal has already been
	// captured here).
	var signal int64
	//
	for value := range final {
		signal = value
		//
		select {
		case edges[0] <- value:
		default:
		}
	}
	//
	wg.Wait()
	close(faults)
	//
	if err := <-faults; err != nil {
		return 0, err
	}
	//
	return signal, nil
}

// pump drives a single program as a cooperative step source: run until the
// next output, forward it, and stop once the program halts.
func pump(program *vm.Program, out chan<- int64) error {
	for {
		value, err := program.ExecuteUntilOutput()
		//
		if errors.Is(err, vm.ErrNoOutput) {
			// Natural halt without a further output
			return nil
		} else if err != nil {
			return err
		}
		//
		out <- value
		//
		if !program.IsRunning() {
			return nil
		}
	}
}

// MaxSignal searches every permutation of the given phase settings for the
// one producing the highest output signal, running the amplifiers either
// serially or as a feedback ring.  It returns the best signal together with
// the phase setting which produced it.
func MaxSignal(source string, phases []int64, feedback bool) (int64, []int64, error) {
	var (
		best      int64 = math.MinInt64
		bestOrder []int64
	)
	//
	for _, perm := range util.Permutations(phases) {
		var (
			signal int64
			err    error
		)
		//
		if feedback {
			signal, err = Feedback(source, perm)
		} else {
			signal, err = Serial(source, perm)
		}
		//
		if err != nil {
			return 0, nil, err
		}
		//
		if signal > best {
			best, bestOrder = signal, perm
			log.Debugf("phase setting %v raised the best signal to %d", perm, signal)
		}
	}
	//
	return best, bestOrder, nil
}
