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


// Package heap implements Heap's algorithm to generate all permutations of a slice in place.
//
// Both forms of the algorithm produce the same permutations in the same order and perform exactly
// one swap between two consecutive permutations, that is n!-1 swaps for n > 0 elements.
package heap

import "znkr.io/algo/internal/config"

// Generate permutes a in place and calls visit for every permutation, starting with a itself.
//
// The slice passed to visit is a, it's only valid until visit returns and must not be retained.
// Generation stops as soon as visit returns false. Generate returns the number of swaps performed
// and whether all permutations were visited.
func Generate[T any](a []T, mode config.Mode, visit func([]T) bool) (swaps int, ok bool) {
	switch mode {
	case config.ModeRecursive:
		return Recursive(a, visit)
	case config.ModeIterative:
		return Iterative(a, visit)
	default:
		panic("never reached")
	}
}

// Recursive is the recursive form of Heap's algorithm.
func Recursive[T any](a []T, visit func([]T) bool) (swaps int, ok bool) {
	g := recursive[T]{a: a, visit: visit}
	ok = g.generate(len(a))
	return g.swaps, ok
}

type recursive[T any] struct {
	a     []T
	visit func([]T) bool
	swaps int
}

// generate permutes the prefix a[:k].
func (g *recursive[T]) generate(k int) bool {
	if k <= 1 {
		return g.visit(g.a)
	}

	// Visit all permutations of the prefix that keep a[k-1] in place.
	if !g.generate(k - 1) {
		return false
	}

	// Every iteration moves a different element into position k-1. Which element ends up there
	// depends on the parity of k and on how the recursion above left the prefix.
	a := g.a
	for i := range k - 1 {
		if k%2 == 0 {
			a[i], a[k-1] = a[k-1], a[i]
		} else {
			a[0], a[k-1] = a[k-1], a[0]
		}
		g.swaps++
		if !g.generate(k - 1) {
			return false
		}
	}
	return true
}

// Iterative is the non-recursive form of Heap's algorithm. The counter c[i] takes the role of the
// loop variable at recursion depth k = i+1.
func Iterative[T any](a []T, visit func([]T) bool) (swaps int, ok bool) {
	if !visit(a) {
		return 0, false
	}

	c := make([]int, len(a))
	for i := 1; i < len(a); {
		if c[i] >= i {
			c[i] = 0
			i++
			continue
		}

		if i%2 == 0 {
			a[0], a[i] = a[i], a[0]
		} else {
			a[c[i]], a[i] = a[i], a[c[i]]
		}
		swaps++
		if !visit(a) {
			return swaps, false
		}
		c[i]++
		i = 1
	}
	return swaps, true
}
