// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the PageRank builder.
//
// Defaults are package constants (single source of truth). Option
// constructors validate their arguments and panic on nonsensical values —
// a misconfigured damping factor is a programmer error, not runtime input.
package matrix

import "math"

// DefaultDamping is the PageRank damping factor d used when no
// WithDamping option is supplied. 0.85 is the classical value.
const DefaultDamping = 0.85

// panicDampingInvalid is the fixed message for WithDamping misuse.
const panicDampingInvalid = "matrix: WithDamping: damping must be finite in (0,1]"

// Option mutates the internal builder options. Options are idempotent and
// applied left-to-right.
type Option func(*options)

// options stores the effective configuration after applying Option setters.
// Public entry points accept ...Option; the struct stays unexported.
type options struct {
	damping float64 // (0,1]; DefaultDamping
}

// defaultOptions returns the documented default configuration.
func defaultOptions() options {
	return options{damping: DefaultDamping}
}

// gatherOptions resolves ...Option into a concrete options value.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithDamping sets the PageRank damping factor d.
// d must be finite and in (0,1]; anything else panics (programmer error).
// d == 1 disables teleportation entirely.
func WithDamping(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 || d > 1 {
		panic(panicDampingInvalid)
	}

	return func(o *options) { o.damping = d }
}
