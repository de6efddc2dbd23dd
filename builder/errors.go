// SPDX-License-Identifier: MIT
// Package: dsviz/builder
//
// errors.go — sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Context is attached by wrapping at the call site, never in the sentinel.
//   • Constructors never panic at runtime; option constructors may.

package builder

import "github.com/cockroachdb/errors"

// ErrNeedRandSource indicates a stochastic constructor ran without an RNG.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrInvalidCount indicates a negative number of values was requested.
var ErrInvalidCount = errors.New("builder: count must be non-negative")

// ErrInvalidRange indicates an empty closed range (lo > hi).
var ErrInvalidRange = errors.New("builder: empty value range")
