// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rangecheck validates integer fields against half-open ranges.
package rangecheck

import (
	"errors"
	"fmt"

	"golang.org/x/exp/constraints"
)

// ErrOutOfRange is matched by every *Error using errors.Is.
var ErrOutOfRange = errors.New("field out of range")

// Error describes a field whose value lies outside [Min, Max).
type Error struct {
	Field string
	Value int64
	Min   int64
	Max   int64
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s %d out of range [%d, %d)", e.Field, e.Value, e.Min, e.Max)
}

// Is reports whether target is ErrOutOfRange.
func (e *Error) Is(target error) bool {
	return target == ErrOutOfRange
}

// Check returns v if min <= v < max and an *Error naming field otherwise.
func Check[T constraints.Integer](field string, v, min, max T) (T, error) {
	if v < min || v >= max {
		return v, &Error{Field: field, Value: int64(v), Min: int64(min), Max: int64(max)}
	}
	return v, nil
}

// Within reports whether min <= v < max.
func Within[T constraints.Integer](v, min, max T) bool {
	return min <= v && v < max
}
