// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/cli/formatter"
	"github.com/Romeombugua/e-mkulima/internal/location"
)

type profileView struct {
	Profile  *location.Profile  `json:"profile"`
	Indices  location.Indices   `json:"indices"`
	Complete bool               `json:"complete"`
	Warnings []advisory.Warning `json:"warnings"`
}

func newRegionsCmd(app *App) *cobra.Command {
	var subregion string

	cmd := &cobra.Command{
		Use:   "regions [region]",
		Short: "List regions, or show the resolved profile of one region",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				regions := svc.Catalog().Regions()
				return app.render(cmd, regions, func() string { return formatter.FormatRegions(regions) })
			}

			if _, ok := svc.Catalog().Region(args[0]); !ok {
				return fmt.Errorf("unknown region %q", args[0])
			}
			profile := svc.Profile(args[0], subregion)
			view := profileView{
				Profile:  profile,
				Indices:  profile.Indices(),
				Complete: profile.Complete(),
				Warnings: advisory.ClimateWarnings(profile),
			}
			return app.render(cmd, view, func() string { return formatter.FormatProfile(profile) })
		},
	}

	cmd.Flags().StringVarP(&subregion, "subregion", "s", "", "Zone within the region (default: the region's default)")
	return cmd
}

func newCropsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "crops [crop-id]",
		Short: "List crops, or show one crop's requirements",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := app.Service()
			if err != nil {
				return err
			}

			if len(args) == 0 {
				crops := svc.Catalog().Crops()
				return app.render(cmd, crops, func() string { return formatter.FormatCrops(crops) })
			}

			crop, ok := svc.Catalog().Crop(args[0])
			if !ok {
				return fmt.Errorf("%w: %s", advisory.ErrUnknownCrop, args[0])
			}
			return app.render(cmd, crop, func() string { return formatter.FormatCrop(&crop) })
		},
	}
}
