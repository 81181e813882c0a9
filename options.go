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

package editscript

import "znkr.io/editscript/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// AlgorithmKind selects the algorithm used by [Diff] and [DiffFunc].
type AlgorithmKind = config.Algorithm

const (
	// AlgorithmMyers selects Myers' O(ND) algorithm, see [Myers]. This is the default.
	AlgorithmMyers = config.AlgorithmMyers

	// AlgorithmWu selects Wu's O(NP) algorithm, see [Wu].
	AlgorithmWu = config.AlgorithmWu
)

// Algorithm selects the algorithm used to compute the edit script. Both algorithms find a minimal
// edit script, but they may find different ones if there are several.
func Algorithm(a AlgorithmKind) Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Algorithm = a
		return config.AlgorithmFlag
	}
}
