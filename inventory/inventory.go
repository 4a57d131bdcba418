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


// Package inventory merges inventory lists of (count, name) entries.
package inventory

import (
	"maps"
	"slices"
)

// Entry is a single inventory item.
type Entry struct {
	Count int
	Name  string
}

// Merge merges two inventories.
//
// If both a and b are nil, the result is nil. If only one of them is nil, the other one is
// returned as is, it's neither copied nor sorted. Otherwise, the result contains one entry per
// name with the sum of all counts for that name in a and b, sorted by name. Entries with an empty
// name are ignored.
func Merge(a, b []Entry) []Entry {
	switch {
	case a == nil && b == nil:
		return nil
	case a == nil:
		return b
	case b == nil:
		return a
	}
	return sorted(Tally(a, b))
}

// MergeAll is like [Merge] for any number of inventories. Nil inventories are skipped. If exactly
// one inventory remains, it's returned as is.
func MergeAll(lists ...[]Entry) []Entry {
	var present [][]Entry
	for _, l := range lists {
		if l != nil {
			present = append(present, l)
		}
	}
	switch len(present) {
	case 0:
		return nil
	case 1:
		return present[0]
	}
	return sorted(Tally(present...))
}

// Tally sums the counts per name over all entries in lists. Entries with an empty name are
// ignored.
func Tally(lists ...[]Entry) map[string]int {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	totals := make(map[string]int, n)
	for _, l := range lists {
		for _, e := range l {
			if e.Name == "" {
				continue
			}
			totals[e.Name] += e.Count
		}
	}
	return totals
}

func sorted(totals map[string]int) []Entry {
	out := make([]Entry, 0, len(totals))
	for _, name := range slices.Sorted(maps.Keys(totals)) {
		out = append(out, Entry{Count: totals[name], Name: name})
	}
	return out
}
