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


package permute

import "znkr.io/algo/internal/config"

// Option configures the behavior of permutation functions.
type Option = config.Option

// Recursive generates permutations with the recursive form of Heap's algorithm. This is the
// default.
func Recursive() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeRecursive
		return config.Recursive
	}
}

// Iterative generates permutations with the non-recursive form of Heap's algorithm. The order of
// the permutations is the same as for [Recursive], but the stack depth is constant.
func Iterative() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModeIterative
		return config.Iterative
	}
}
