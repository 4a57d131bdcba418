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


// demo prints example invocations of the algorithms in this module for manual inspection.
//
// Usage:
//
//	go run ./internal/cmd/demo -perm 1,2,3 -iterative
package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"
	"znkr.io/algo/inventory"
	"znkr.io/algo/permute"
	"znkr.io/algo/symdiff"
)

type config struct {
	perm      string
	iterative bool
}

func main() {
	var cfg config
	flag.StringVar(&cfg.perm, "perm", "1,2,3", "comma separated integers to permute")
	flag.BoolVar(&cfg.iterative, "iterative", false, "use the iterative form of Heap's algorithm")
	flag.Parse()

	if len(flag.CommandLine.Args()) > 0 {
		fmt.Fprintf(os.Stderr, "error: unexpected command line arguments: %v\n", flag.CommandLine.Args())
		os.Exit(1)
	}

	if err := run(os.Stdout, &cfg); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(w io.Writer, cfg *config) error {
	demos := []func(w io.Writer) error{
		func(w io.Writer) error { return permutations(w, cfg) },
		symmetricDifferences,
		inventories,
	}

	// Every demo renders into its own buffer, the buffers are printed in order once all are done.
	out := make([]bytes.Buffer, len(demos))
	var g errgroup.Group
	for i, demo := range demos {
		g.Go(func() error { return demo(&out[i]) })
	}
	if err := g.Wait(); err != nil {
		return err
	}
	for i := range out {
		if _, err := out[i].WriteTo(w); err != nil {
			return fmt.Errorf("writing output: %v", err)
		}
	}
	return nil
}

func permutations(w io.Writer, cfg *config) error {
	items, err := parseInts(cfg.perm)
	if err != nil {
		return fmt.Errorf("parsing -perm: %v", err)
	}
	var opts []permute.Option
	if cfg.iterative {
		opts = append(opts, permute.Iterative())
	}
	perms := permute.All(items, opts...)
	fmt.Fprintf(w, "Permutations of %v (%d):\n", items, len(perms))
	for _, p := range perms {
		fmt.Fprintf(w, "  %v\n", p)
	}
	return nil
}

func symmetricDifferences(w io.Writer) error {
	examples := [][][]int{
		{{1, 2, 3}, {5, 2, 1, 4}},
		{{1, 1, 2, 5}, {2, 2, 3, 5}, {3, 4, 5, 5}},
		{{3, 3, 3, 2, 5}, {2, 1, 5, 7}, {3, 4, 6, 6}, {1, 2, 3}},
	}
	fmt.Fprintln(w, "Symmetric differences:")
	for _, seqs := range examples {
		fmt.Fprintf(w, "  %v -> %v\n", seqs, symdiff.Of(seqs...))
	}
	return nil
}

func inventories(w io.Writer) error {
	current := []inventory.Entry{
		{Count: 21, Name: "Bowling Ball"},
		{Count: 2, Name: "Dirty Sock"},
		{Count: 1, Name: "Hair Pin"},
		{Count: 5, Name: "Microphone"},
	}
	delivery := []inventory.Entry{
		{Count: 2, Name: "Hair Pin"},
		{Count: 3, Name: "Half-Eaten Apple"},
		{Count: 67, Name: "Bowling Ball"},
		{Count: 7, Name: "Toothpaste"},
	}
	fmt.Fprintln(w, "Merged inventory:")
	for _, e := range inventory.Merge(current, delivery) {
		fmt.Fprintf(w, "  %3d %s\n", e.Count, e.Name)
	}
	return nil
}

func parseInts(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	fields := strings.Split(s, ",")
	out := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
