// SPDX-License-Identifier: MIT

// Package builder: sentinel errors. Constructors return ONLY these
// sentinels (with %w context); callers branch via errors.Is.
package builder

import "errors"

// ErrTooFewVertices indicates that n is below the minimum the requested
// topology needs (Complete/Path/Star ≥ 2, Cycle ≥ 3).
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates the orchestrator could not apply the
// constructor sequence (currently: a nil Constructor).
var ErrConstructFailed = errors.New("builder: construction failed")
