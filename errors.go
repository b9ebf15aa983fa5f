// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package datetime

import (
	"errors"

	"gonih.org/datetime/internal/rangecheck"
)

// OutOfRangeError is returned by constructors when a field lies outside its
// valid range. The range [Min, Max) is half-open.
type OutOfRangeError = rangecheck.Error

// ErrOutOfRange matches every *OutOfRangeError with errors.Is.
var ErrOutOfRange = rangecheck.ErrOutOfRange

// ErrSignMismatch is returned by OffsetOfHoursAndMinutes when the hours and
// minutes have opposite signs.
var ErrSignMismatch = errors.New("offset hours and minutes differ in sign")
