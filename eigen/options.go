// SPDX-License-Identifier: MIT

// Package eigen: functional configuration for the solver wrapper.
// Defaults are package constants; option constructors panic only on
// nonsensical arguments (programmer error).
package eigen

import "math"

// DefaultEpsilon is the non-negative tolerance used by the symmetry check.
const DefaultEpsilon = 1e-9

// panicEpsilonInvalid is the fixed message for WithEpsilon misuse.
const panicEpsilonInvalid = "eigen: WithEpsilon: eps must be finite, non-negative"

// Option mutates the internal solver options; applied left-to-right.
type Option func(*options)

// options stores the effective configuration after applying setters.
type options struct {
	eps           float64 // symmetry tolerance; DefaultEpsilon
	smallestFirst bool    // extremal direction; false ⇒ largest eigenvalues
}

// defaultOptions returns the documented defaults.
func defaultOptions() options {
	return options{eps: DefaultEpsilon}
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

// WithSmallestFirst selects the smallest-eigenvalue end of the spectrum
// instead of the default largest end. The returned sequences stay sorted
// ascending either way; this option only changes which extremal pairs are
// selected.
func WithSmallestFirst() Option {
	return func(o *options) { o.smallestFirst = true }
}

// WithEpsilon sets the symmetry tolerance: |a[i,j] − a[j,i]| ≤ eps.
// eps must be finite and ≥ 0; anything else panics (programmer error).
func WithEpsilon(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *options) { o.eps = eps }
}
