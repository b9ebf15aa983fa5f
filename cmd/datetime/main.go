// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command datetime converts between instants and proleptic Gregorian
// calendar dates and times.
package main

import (
	"os"

	"gonih.org/datetime/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
