// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/cli/formatter"
)

func newMarketCmd(app *App) *cobra.Command {
	var (
		region    string
		subregion string
		crops     []string
	)

	cmd := &cobra.Command{
		Use:   "market [crop-id]",
		Short: "Market analysis for one crop, or a profitability comparison",
		Long: `With a crop id, prints the price, demand and profit outlook for that crop.
Without one, compares the crops given by --crops (all crops when empty),
most profitable first.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}

			if len(args) == 1 {
				analysis, err := svc.MarketAnalysis(region, subregion, args[0])
				if err != nil {
					return err
				}
				return app.render(cmd, analysis, func() string { return formatter.FormatMarket(analysis) })
			}

			analyses, err := svc.CompareMarkets(region, subregion, crops)
			if err != nil {
				return err
			}
			return app.render(cmd, analyses, func() string { return formatter.FormatMarketComparison(analyses) })
		},
	}

	cmd.Flags().StringVarP(&region, "region", "r", "", "Region (state) name")
	cmd.Flags().StringVarP(&subregion, "subregion", "s", "", "Agro-ecological zone")
	cmd.Flags().StringSliceVar(&crops, "crops", nil, "Crop ids to compare (comma separated)")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}
