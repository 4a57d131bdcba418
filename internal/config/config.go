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


// Package config provides shared configuration mechanisms for packages this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// permute.Option.
package config

// Mode selects the form of Heap's algorithm used to generate permutations.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode
type Mode int

const (
	// Recurse with a shrinking prefix length, the call stack holds the state.
	ModeRecursive Mode = iota

	// Loop over an explicit counter array instead of recursing.
	ModeIterative
)

// Config collects all configurable parameters for functions in this module.
type Config struct {
	// Permutation algorithm mode.
	Mode Mode
}

// Default is the default configuration.
var Default = Config{
	Mode: ModeRecursive,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by the function they are passed to.
type Flag int

const (
	Recursive Flag = 1 << iota
	Iterative
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Recursive:
		return "permute.Recursive"
	case Iterative:
		return "permute.Iterative"
	default:
		panic("never reached")
	}
}
