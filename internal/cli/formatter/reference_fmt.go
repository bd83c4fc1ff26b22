// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package formatter

import (
	"fmt"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// FormatRegions renders the region table.
func FormatRegions(regions []reference.Region) string {
	rows := make([][]string, len(regions))
	for i, r := range regions {
		rows[i] = []string{r.Name, r.DefaultSubregion, strings.Join(r.Subregions, ", ")}
	}
	return RenderTable([]string{"REGION", "DEFAULT", "SUBREGIONS"}, rows)
}

// FormatProfile renders a resolved location with its indices and warnings.
func FormatProfile(p *location.Profile) string {
	var out strings.Builder
	out.WriteString(Title("%s", locationName(p)))

	idx := p.Indices()
	pairs := [][2]string{
		{"Soil nutrients", fmt.Sprintf("%.2f", idx.SoilNutrient)},
		{"Water", fmt.Sprintf("%.2f", idx.WaterAvailability)},
		{"Climate risk", fmt.Sprintf("%.2f", idx.ClimateRisk)},
	}
	if p.HasSoil() {
		pairs = append(pairs,
			[2]string{"Soil", fmt.Sprintf("%s, pH %.1f, %s drainage", p.Soil.Type, p.Soil.PH, orDash(p.Soil.Drainage))},
		)
	} else {
		pairs = append(pairs, [2]string{"Soil", "unknown"})
	}
	if p.HasClimate() {
		pairs = append(pairs,
			[2]string{"Rainfall", fmt.Sprintf("%.0f mm", p.Climate.AvgRainfall)},
			[2]string{"Temperature", fmt.Sprintf("%.0f-%.0f °C", p.Climate.Temperature.Min, p.Climate.Temperature.Max)},
			[2]string{"Season", orDash(p.Climate.Season)},
		)
	} else {
		pairs = append(pairs, [2]string{"Climate", "unknown"})
	}
	out.WriteString(KeyValues(pairs...))

	if warnings := advisory.ClimateWarnings(p); len(warnings) > 0 {
		out.WriteString(FormatWarnings(warnings))
	}
	return out.String()
}

// FormatCrops renders the crop table.
func FormatCrops(crops []reference.CropRequirement) string {
	rows := make([][]string, len(crops))
	for i, c := range crops {
		rows[i] = []string{
			c.ID,
			c.Name,
			orDash(c.Category),
			orDash(c.WaterRequirement),
			fmt.Sprintf("%d", c.GrowthDays),
			orDash(c.Season),
		}
	}
	return RenderTable([]string{"ID", "NAME", "CATEGORY", "WATER", "DAYS", "SEASON"}, rows)
}

// FormatCrop renders one crop's requirements.
func FormatCrop(c *reference.CropRequirement) string {
	var out strings.Builder
	out.WriteString(Title("%s (%s)", c.Name, c.ID))
	out.WriteString(KeyValues(
		[2]string{"Category", orDash(c.Category)},
		[2]string{"Water", fmt.Sprintf("%s, %.0f mm", orDash(c.WaterRequirement), c.WaterMM)},
		[2]string{"Soils", orDash(strings.Join(c.SoilTypes, ", "))},
		[2]string{"pH", fmt.Sprintf("%.1f-%.1f", c.PH.Min, c.PH.Max)},
		[2]string{"Temperature", fmt.Sprintf("%.0f-%.0f °C", c.Temperature.Min, c.Temperature.Max)},
		[2]string{"Growth", fmt.Sprintf("%d days", c.GrowthDays)},
		[2]string{"NPK", fmt.Sprintf("%s/%s/%s", orDash(c.Nutrients.Nitrogen), orDash(c.Nutrients.Phosphorus), orDash(c.Nutrients.Potassium))},
		[2]string{"Season", orDash(c.Season)},
		[2]string{"Min farm size", orDash(c.MinFarmSize)},
	))
	return out.String()
}
