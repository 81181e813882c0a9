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
// editscript.Option.
package config

import "fmt"

// Algorithm selects the algorithm used to compute an edit script.
type Algorithm int

const (
	// Myers' O(ND) algorithm.
	AlgorithmMyers Algorithm = iota

	// Wu's O(NP) algorithm.
	AlgorithmWu
)

func (a Algorithm) String() string {
	switch a {
	case AlgorithmMyers:
		return "myers"
	case AlgorithmWu:
		return "wu"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// ParseAlgorithm returns the algorithm with the given name as returned by Algorithm.String.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch name {
	case "myers":
		return AlgorithmMyers, nil
	case "wu":
		return AlgorithmWu, nil
	default:
		return 0, fmt.Errorf("unknown algorithm %q, want myers or wu", name)
	}
}

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Algorithm used to compute edit scripts.
	Algorithm Algorithm

	// If set, textdiff compares lines without leading and trailing white space.
	IgnoreSpace bool
}

// Default is the default configuration.
var Default = Config{
	Algorithm:   AlgorithmMyers,
	IgnoreSpace: false,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not supported by a function.
type Flag int

const (
	AlgorithmFlag Flag = 1 << iota
	IgnoreSpace
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
	case AlgorithmFlag:
		return "editscript.Algorithm"
	case IgnoreSpace:
		return "textdiff.IgnoreSpace"
	default:
		panic("never reached")
	}
}
