// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


// Package permute generates all permutations of a slice using Heap's algorithm.
//
// Heap's algorithm produces every permutation from the previous one by a single swap, so the n!
// permutations of n elements are generated with n!-1 swaps in total. The order in which
// permutations are produced is that of Heap's algorithm, it's not lexicographic.
//
// The input slice is never modified. Every permutation returned by [All] or yielded by [Seq] is an
// independent slice that the caller is free to keep and modify.
//
// Elements are not compared. If the input contains duplicates, so does the output.
package permute

import (
	"fmt"
	"iter"
	"math"
	"slices"

	"znkr.io/algo/internal/config"
	"znkr.io/algo/internal/heap"
)

// All returns all permutations of items.
//
// For n = len(items), the output has length n!. An empty input has exactly one permutation, the
// empty one.
//
// The following options are supported: [permute.Recursive], [permute.Iterative]
func All[T any](items []T, opts ...Option) [][]T {
	cfg := config.FromOptions(opts, config.Recursive|config.Iterative)
	n := len(items)
	count := Count(n)

	// All permutations share one backing array. The capacity of every permutation is capped to its
	// length so that appending to one can't overwrite another.
	buf := make([]T, n*count)
	out := make([][]T, 0, count)
	heap.Generate(slices.Clone(items), cfg.Mode, func(a []T) bool {
		p := buf[:n:n]
		copy(p, a)
		out = append(out, p)
		buf = buf[n:]
		return true
	})
	return out
}

// Seq returns an iterator over all permutations of items.
//
// Permutations are generated lazily, breaking out of the loop stops the generation. Every
// iteration over the returned sequence starts from the order of items at the time Seq was called.
//
// The following options are supported: [permute.Recursive], [permute.Iterative]
func Seq[T any](items []T, opts ...Option) iter.Seq[[]T] {
	cfg := config.FromOptions(opts, config.Recursive|config.Iterative)
	items = slices.Clone(items)
	return func(yield func([]T) bool) {
		heap.Generate(slices.Clone(items), cfg.Mode, func(a []T) bool {
			return yield(slices.Clone(a))
		})
	}
}

// Count returns the number of permutations of n distinct elements, n!. It returns 1 for n <= 1.
//
// Count panics if n! doesn't fit into an int.
func Count(n int) int {
	c := 1
	for i := 2; i <= n; i++ {
		if c > math.MaxInt/i {
			panic(fmt.Sprintf("%d! overflows int", n))
		}
		c *= i
	}
	return c
}
