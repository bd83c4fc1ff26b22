// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package formatter

import (
	"fmt"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/agronomy"
	"github.com/Romeombugua/e-mkulima/internal/market"
)

// FormatIrrigation renders an irrigation plan.
func FormatIrrigation(p *agronomy.IrrigationPlan) string {
	var out strings.Builder
	out.WriteString(StyleHeader.Render("Irrigation") + "\n")

	schedule := string(p.Schedule.Frequency)
	if p.Schedule.Interval != nil {
		schedule += fmt.Sprintf(" (every %d-%d days)", p.Schedule.Interval.From, p.Schedule.Interval.To)
	}
	out.WriteString(KeyValues(
		[2]string{"Water need", fmt.Sprintf("%.0f mm", p.Water.NeedMM)},
		[2]string{"Rainfall", fmt.Sprintf("%.0f mm", p.Water.RainfallMM)},
		[2]string{"Deficit", fmt.Sprintf("%.0f mm (%.0f%%)", p.Water.DeficitMM, p.Water.DeficitPercent)},
		[2]string{"Schedule", schedule},
		[2]string{"Method", fmt.Sprintf("%s (%d-%d%% efficient)", p.Method.Method, p.Method.Efficiency.From, p.Method.Efficiency.To)},
	))

	if len(p.Stages) > 0 {
		rows := make([][]string, len(p.Stages))
		for i, s := range p.Stages {
			rows[i] = []string{s.Stage, fmt.Sprintf("%d-%d", s.Days.From, s.Days.To), string(s.Priority)}
		}
		out.WriteString(RenderTable([]string{"STAGE", "DAYS", "PRIORITY"}, rows))
	}
	for _, a := range p.Advice {
		out.WriteString("  - " + string(a) + "\n")
	}
	return out.String()
}

// FormatFertilizer renders a fertilizer plan.
func FormatFertilizer(p *agronomy.FertilizerPlan) string {
	var out strings.Builder
	out.WriteString(StyleHeader.Render("Fertilizer") + "\n")

	if len(p.Recommendations) == 0 {
		out.WriteString(StyleDim.Render("No nutrient gaps") + "\n")
	} else {
		rows := make([][]string, len(p.Recommendations))
		for i, r := range p.Recommendations {
			rows[i] = []string{
				string(r.Nutrient),
				string(r.Application),
				fmt.Sprintf("%d-%d %s", r.Dosage.Min, r.Dosage.Max, r.Dosage.Unit),
				strings.Join(r.Products, ", "),
			}
		}
		out.WriteString(RenderTable([]string{"NUTRIENT", "APPLICATION", "DOSAGE", "PRODUCTS"}, rows))
	}

	if p.Cost != nil {
		out.WriteString(KeyValues([2]string{"Cost", fmt.Sprintf("%s (%s)", p.Cost.Level, p.Cost.Cost)}))
	}
	for _, o := range p.Organic {
		out.WriteString(fmt.Sprintf("  - %s: %s\n", o.Type, o.Provides))
	}
	return out.String()
}

// FormatMarket renders a market analysis.
func FormatMarket(a *market.Analysis) string {
	var out strings.Builder
	out.WriteString(StyleHeader.Render("Market") + "\n")

	pairs := [][2]string{
		{"Profitability", fmt.Sprintf("%s (%.2f)", a.Profitability.Rating, a.Profitability.Score)},
		{"Risk", fmt.Sprintf("%s (%.2f)", a.Risk.Rating, a.Risk.Score)},
	}
	if a.Seasonal != nil {
		pairs = append(pairs, [2]string{"Seasonal", fmt.Sprintf("%s: %s", a.Seasonal.Advantage, a.Seasonal.Description)})
	}
	if a.Opportunity != nil && a.Opportunity.Opportunity != "" {
		pairs = append(pairs, [2]string{"Opportunity", a.Opportunity.Opportunity})
	}
	out.WriteString(KeyValues(pairs...))

	for _, r := range a.Recommendations {
		out.WriteString("  - " + string(r) + "\n")
	}
	return out.String()
}

// FormatMarketComparison renders analyses as a table in the given order.
func FormatMarketComparison(analyses []*market.Analysis) string {
	rows := make([][]string, len(analyses))
	for i, a := range analyses {
		seasonal := "-"
		if a.Seasonal != nil {
			seasonal = string(a.Seasonal.Advantage)
		}
		rows[i] = []string{
			a.CropName,
			string(a.Profitability.Rating),
			fmt.Sprintf("%.2f", a.Profitability.Score),
			string(a.Risk.Rating),
			seasonal,
		}
	}
	return RenderTable([]string{"CROP", "MARKET", "SCORE", "RISK", "SEASONAL"}, rows)
}
