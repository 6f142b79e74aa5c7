// SPDX-License-Identifier: MIT
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; implementations attach context with %w.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is smaller
// than the allowed minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed indicates a constructor could not be applied, e.g. a nil
// Constructor was passed to BuildGraph.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation indicates a WithX(...) option received a meaningless
// value (nil IDFn, nil CostFn, empty cost cycle). Option constructors panic
// with this sentinel's message.
var ErrOptionViolation = errors.New("builder: invalid option value")
