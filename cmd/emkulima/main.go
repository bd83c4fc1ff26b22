// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Command emkulima prints crop advice for Sudanese regions from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/Romeombugua/e-mkulima/internal/cli"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	return cli.NewRootCmd(cli.NewApp(nil)).Execute()
}
