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


// Package symdiff computes the symmetric difference of any number of integer sequences.
//
// The symmetric difference of two sets contains the elements that are in exactly one of them.
// Applied pairwise to more than two sets, the result contains the elements that are in an odd
// number of the sets. Sequences are treated as sets, duplicates within a sequence are ignored.
package symdiff

import (
	"slices"

	mapset "github.com/deckarep/golang-set/v2"
)

// Integer is the constraint for element types of [Of].
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr
}

// Of returns the distinct values that appear in an odd number of seqs, sorted in ascending order.
//
// Duplicates within a single sequence count once. A nil sequence is treated like an empty one. If
// fewer than two sequences are given, the result is empty.
//
// Complexity is O(T + R log R) time and O(T) space where T is the total number of elements in seqs
// and R is the length of the result.
func Of[T Integer](seqs ...[]T) []T {
	if len(seqs) < 2 {
		return nil
	}

	// A value is a member of parity iff it has been seen in an odd number of sequences so far.
	parity := mapset.NewThreadUnsafeSet[T]()
	for _, s := range seqs {
		seen := mapset.NewThreadUnsafeSetWithSize[T](len(s))
		for _, v := range s {
			if !seen.Add(v) {
				continue
			}
			if !parity.Add(v) {
				parity.Remove(v)
			}
		}
	}
	if parity.Cardinality() == 0 {
		return nil
	}

	out := parity.ToSlice()
	slices.Sort(out)
	return out
}

// Dedup returns a copy of s with duplicates removed. The first occurrence of every value is kept
// in its original position relative to the other kept values.
func Dedup[T comparable](s []T) []T {
	if s == nil {
		return nil
	}
	seen := mapset.NewThreadUnsafeSetWithSize[T](len(s))
	out := make([]T, 0, len(s))
	for _, v := range s {
		if seen.Add(v) {
			out = append(out, v)
		}
	}
	return slices.Clip(out)
}
