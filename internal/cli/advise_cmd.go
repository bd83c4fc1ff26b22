// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/cli/formatter"
)

// farmFlags binds the flags shared by advise, rank and compare.
func farmFlags(cmd *cobra.Command, req *advisory.Request) {
	cmd.Flags().StringVarP(&req.Region, "region", "r", "", "Region (state) name")
	cmd.Flags().StringVarP(&req.Subregion, "subregion", "s", "", "Agro-ecological zone (default: the region's default)")
	cmd.Flags().StringVarP(&req.FarmSize, "farm-size", "f", "", "Farm size: very_small, small, medium, large or very_large")
	cmd.Flags().IntVarP(&req.TopN, "top", "n", 0, "Number of crops to list (0 = default)")
	_ = cmd.MarkFlagRequired("region")
}

func newAdviseCmd(app *App) *cobra.Command {
	var req advisory.Request

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Full advice for a farm: ranking, best crop plans, alternatives and warnings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			bundle, err := svc.Advise(cmd.Context(), req)
			if err != nil {
				return err
			}
			return app.render(cmd, bundle, func() string { return formatter.FormatBundle(bundle) })
		},
	}

	farmFlags(cmd, &req)
	return cmd
}

func newRankCmd(app *App) *cobra.Command {
	var req advisory.Request

	cmd := &cobra.Command{
		Use:   "rank",
		Short: "Rank crops for a farm with the arbitrated strategy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			ranking, err := svc.Rank(cmd.Context(), req)
			if err != nil {
				return err
			}
			return app.render(cmd, ranking, func() string { return formatter.FormatRanking(ranking) })
		},
	}

	farmFlags(cmd, &req)
	return cmd
}

func newCompareCmd(app *App) *cobra.Command {
	var req advisory.Request

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Rank crops with every strategy side by side",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			cmp, err := svc.CompareStrategies(cmd.Context(), req)
			if err != nil {
				return err
			}
			return app.render(cmd, cmp, func() string { return formatter.FormatComparison(cmp) })
		},
	}

	farmFlags(cmd, &req)
	return cmd
}
