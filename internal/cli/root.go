// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package cli provides the emkulima command line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/logging"
)

// NewRootCmd creates the top-level "emkulima" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "emkulima",
		Short:         "Crop suitability and farm advice for Sudan",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !validOutput(app.output) {
				return fmt.Errorf("invalid --output %q (want text, json or auto)", app.output)
			}
			if !logging.ValidLevel(app.logLevel) {
				return fmt.Errorf("invalid --log-level %q", app.logLevel)
			}
			logging.Init(logging.Config{
				Level:  app.logLevel,
				Format: "console",
				Output: cmd.ErrOrStderr(),
			})
			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&app.output, "output", "o", outputAuto, "Output format: text, json or auto (text on a terminal)")
	flags.StringVar(&app.dataDir, "data-dir", "", "Load reference YAML from this directory instead of the built-in tables")
	flags.StringVar(&app.logLevel, "log-level", "warn", "Log level")

	root.AddCommand(
		newAdviseCmd(app),
		newRankCmd(app),
		newCompareCmd(app),
		newRegionsCmd(app),
		newCropsCmd(app),
		newPlanCmd(app),
		newMarketCmd(app),
	)

	return root
}
