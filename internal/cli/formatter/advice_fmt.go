// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package formatter

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
)

// FormatBundle renders a full advice bundle.
func FormatBundle(b *advisory.Bundle) string {
	var out strings.Builder

	out.WriteString(formatRankingBody(&b.Ranking))

	if b.Top != nil {
		out.WriteString("\n")
		out.WriteString(Title("Best crop: %s (%s)", b.Top.Suitability.CropName, Percent(b.Top.Suitability.Score)))
		if b.Top.Irrigation != nil {
			out.WriteString(FormatIrrigation(b.Top.Irrigation))
		}
		if b.Top.Fertilizer != nil {
			out.WriteString(FormatFertilizer(b.Top.Fertilizer))
		}
		if b.Top.Market != nil {
			out.WriteString(FormatMarket(b.Top.Market))
		}
	}

	if len(b.Alternates) > 0 {
		out.WriteString("\n")
		out.WriteString(Title("Alternatives"))
		rows := make([][]string, len(b.Alternates))
		for i, a := range b.Alternates {
			rows[i] = []string{a.CropName, Percent(a.Score), string(a.MarketRating), string(a.RiskRating)}
		}
		out.WriteString(RenderTable([]string{"CROP", "SCORE", "MARKET", "RISK"}, rows))
	}

	if len(b.Warnings) > 0 {
		out.WriteString("\n")
		out.WriteString(Title("Climate warnings"))
		out.WriteString(FormatWarnings(b.Warnings))
	}

	return out.String()
}

// FormatWarnings renders one line per climate warning.
func FormatWarnings(warnings []advisory.Warning) string {
	var out strings.Builder
	for _, w := range warnings {
		style := StyleWarn
		if w.Level == advisory.WarningWatchOut {
			style = StyleAlert
		}
		out.WriteString(style.Render(fmt.Sprintf("%-9s", w.Level)))
		out.WriteString(" " + w.Risk + "\n")
	}
	return out.String()
}

// FormatRanking renders a ranking with its location and arbitration header.
func FormatRanking(r *advisory.Ranking) string {
	return formatRankingBody(r)
}

func formatRankingBody(r *advisory.Ranking) string {
	var out strings.Builder
	out.WriteString(Title("%s", locationName(r.Profile)))
	out.WriteString(KeyValues(
		[2]string{"Farm size", r.FarmSize},
		[2]string{"Strategy", r.Justification},
		[2]string{"Confidence", strconv.FormatFloat(r.Decision.Confidence, 'f', 1, 64)},
	))
	out.WriteString("\n")
	out.WriteString(formatResults(r.Ranked))
	return out.String()
}

// FormatComparison renders every strategy's ranking side by side in strategy
// order.
func FormatComparison(c *advisory.StrategyComparison) string {
	var out strings.Builder
	out.WriteString(Title("%s", locationName(c.Profile)))
	out.WriteString(KeyValues(
		[2]string{"Farm size", c.FarmSize},
		[2]string{"Selected", c.Justification},
	))

	ids := make([]string, 0, len(c.Rankings))
	for id := range c.Rankings {
		ids = append(ids, string(id))
	}
	sort.Strings(ids)

	for _, id := range ids {
		out.WriteString("\n")
		out.WriteString(StyleHeader.Render(id) + "\n")
		out.WriteString(formatResults(c.Rankings[recommend.StrategyID(id)]))
	}
	return out.String()
}

func formatResults(results []recommend.SuitabilityResult) string {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			r.CropName,
			Percent(r.Score),
			orDash(string(r.Yield)),
			topFactors(r),
		}
	}
	return RenderTable([]string{"#", "CROP", "SCORE", "YIELD", "FACTORS"}, rows)
}

// topFactors names the strongest breakdown entries, highest first.
func topFactors(r recommend.SuitabilityResult) string {
	if len(r.TopFactors) > 0 {
		names := make([]string, 0, len(r.TopFactors))
		for _, f := range r.TopFactors {
			names = append(names, f.Name)
		}
		return strings.Join(names, ", ")
	}

	names := make([]string, 0, len(r.Breakdown))
	for name := range r.Breakdown {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if r.Breakdown[names[i]] != r.Breakdown[names[j]] {
			return r.Breakdown[names[i]] > r.Breakdown[names[j]]
		}
		return names[i] < names[j]
	})
	if len(names) > 3 {
		names = names[:3]
	}
	return orDash(strings.Join(names, ", "))
}

func locationName(p *location.Profile) string {
	if p == nil {
		return "-"
	}
	if p.Subregion == "" {
		return p.Region
	}
	return p.Region + " / " + p.Subregion
}
