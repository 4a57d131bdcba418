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


package inventory

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

var (
	current = []Entry{
		{21, "Bowling Ball"},
		{2, "Dirty Sock"},
		{1, "Hair Pin"},
		{5, "Microphone"},
	}
	delivery = []Entry{
		{2, "Hair Pin"},
		{3, "Half-Eaten Apple"},
		{67, "Bowling Ball"},
		{7, "Toothpaste"},
	}
)

func TestMerge(t *testing.T) {
	tests := []struct {
		name string
		a, b []Entry
		want []Entry
	}{
		{
			name: "both-nil",
			want: nil,
		},
		{
			name: "both-empty",
			a:    []Entry{},
			b:    []Entry{},
			want: []Entry{},
		},
		{
			name: "example",
			a:    current,
			b:    delivery,
			want: []Entry{
				{88, "Bowling Ball"},
				{2, "Dirty Sock"},
				{3, "Hair Pin"},
				{3, "Half-Eaten Apple"},
				{5, "Microphone"},
				{7, "Toothpaste"},
			},
		},
		{
			name: "a-nil",
			b:    delivery,
			want: delivery,
		},
		{
			name: "b-nil",
			a:    current,
			want: current,
		},
		{
			name: "b-empty-sorts",
			a:    delivery,
			b:    []Entry{},
			want: []Entry{
				{67, "Bowling Ball"},
				{2, "Hair Pin"},
				{3, "Half-Eaten Apple"},
				{7, "Toothpaste"},
			},
		},
		{
			name: "new-items",
			a:    []Entry{{0, "Bowling Ball"}, {0, "Dirty Sock"}, {0, "Hair Pin"}, {0, "Microphone"}},
			b:    []Entry{{1, "Hair Pin"}, {1, "Half-Eaten Apple"}, {1, "Bowling Ball"}, {1, "Toothpaste"}},
			want: []Entry{
				{1, "Bowling Ball"},
				{0, "Dirty Sock"},
				{1, "Hair Pin"},
				{1, "Half-Eaten Apple"},
				{0, "Microphone"},
				{1, "Toothpaste"},
			},
		},
		{
			name: "sums-within-one-list",
			a:    []Entry{{1, "Pen"}, {2, "Pen"}},
			b:    []Entry{{4, "Pen"}},
			want: []Entry{{7, "Pen"}},
		},
		{
			name: "skips-empty-entries",
			a:    []Entry{{}, {3, "Pen"}},
			b:    []Entry{{5, ""}, {1, "Ink"}},
			want: []Entry{{1, "Ink"}, {3, "Pen"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Merge(tt.a, tt.b)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Merge(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestMergeReturnsOtherUnchanged(t *testing.T) {
	got := Merge(current, nil)
	if len(got) != len(current) || &got[0] != &current[0] {
		t.Errorf("Merge(a, nil) didn't return a")
	}
	got = Merge(nil, delivery)
	if len(got) != len(delivery) || &got[0] != &delivery[0] {
		t.Errorf("Merge(nil, b) didn't return b")
	}
}

func TestMergeAll(t *testing.T) {
	tests := []struct {
		name  string
		lists [][]Entry
		want  []Entry
	}{
		{
			name: "none",
			want: nil,
		},
		{
			name:  "all-nil",
			lists: [][]Entry{nil, nil},
			want:  nil,
		},
		{
			name:  "single",
			lists: [][]Entry{nil, delivery, nil},
			want:  delivery,
		},
		{
			name:  "two",
			lists: [][]Entry{current, delivery},
			want:  Merge(current, delivery),
		},
		{
			name:  "three",
			lists: [][]Entry{current, nil, delivery, {{2, "Toothpaste"}, {1, "Comb"}}},
			want: []Entry{
				{88, "Bowling Ball"},
				{1, "Comb"},
				{2, "Dirty Sock"},
				{3, "Hair Pin"},
				{3, "Half-Eaten Apple"},
				{5, "Microphone"},
				{9, "Toothpaste"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeAll(tt.lists...)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("MergeAll(...) result is different [-want,+got]:\n%s", diff)
			}
		})
	}
}

func TestTally(t *testing.T) {
	got := Tally(current, delivery, []Entry{{}, {4, "Microphone"}})
	want := map[string]int{
		"Bowling Ball":     88,
		"Dirty Sock":       2,
		"Hair Pin":         3,
		"Half-Eaten Apple": 3,
		"Microphone":       9,
		"Toothpaste":       7,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Tally(...) result is different [-want,+got]:\n%s", diff)
	}
}
