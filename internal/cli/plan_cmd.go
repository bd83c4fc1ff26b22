// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/cli/formatter"
)

type planFlags struct {
	region    string
	subregion string
	crop      string
}

func (f *planFlags) bind(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.region, "region", "r", "", "Region (state) name")
	cmd.Flags().StringVarP(&f.subregion, "subregion", "s", "", "Agro-ecological zone")
	cmd.Flags().StringVarP(&f.crop, "crop", "c", "", "Crop id")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("crop")
}

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Per-crop irrigation and fertilizer plans",
	}
	cmd.AddCommand(newIrrigationCmd(app), newFertilizerCmd(app))
	return cmd
}

func newIrrigationCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "irrigation",
		Short: "Irrigation method, schedule and seasonal water need for a crop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			plan, err := svc.IrrigationPlan(f.region, f.subregion, f.crop)
			if err != nil {
				return err
			}
			return app.render(cmd, plan, func() string { return formatter.FormatIrrigation(plan) })
		},
	}

	f.bind(cmd)
	return cmd
}

func newFertilizerCmd(app *App) *cobra.Command {
	var f planFlags

	cmd := &cobra.Command{
		Use:   "fertilizer",
		Short: "Fertilizer rates and application schedule for a crop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}
			plan, err := svc.FertilizerPlan(f.region, f.subregion, f.crop)
			if err != nil {
				return err
			}
			return app.render(cmd, plan, func() string { return formatter.FormatFertilizer(plan) })
		},
	}

	f.bind(cmd)
	return cmd
}
