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
package util

// Permutations returns every ordering of the given items.  The input slice
// is not modified; each returned permutation is a fresh slice.  For n items
// this produces n! permutations, so it is only intended for small n (e.g.
// amplifier phase settings).
func Permutations[T any](items []T) [][]T {
	if len(items) <= 1 {
		single := make([]T, len(items))
		copy(single, items)
		//
		return [][]T{single}
	}
	//
	var result [][]T
	//
	for i := range items {
		// Everything except the ith item
		rest := make([]T, 0, len(items)-1)
		rest = append(rest, items[:i]...)
		rest = append(rest, items[i+1:]...)
		//
		for _, perm := range Permutations(rest) {
			ith := make([]T, 0, len(items))
			ith = append(ith, items[i])
			ith = append(ith, perm...)
			//
			result = append(result, ith)
		}
	}
	//
	return result
}
