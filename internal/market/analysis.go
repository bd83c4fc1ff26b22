// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package market

import (
	"math"
	"sort"
	"strings"
	"unicode"

	"github.com/Romeombugua/e-mkulima/internal/location"
	"github.com/Romeombugua/e-mkulima/internal/reference"
	"github.com/Romeombugua/e-mkulima/internal/tier"
)

// Lookup finds the market record for a crop id.
type Lookup interface {
	Market(cropID string) (reference.MarketCondition, bool)
}

// Table is an in-memory Lookup keyed by crop id.
type Table map[string]reference.MarketCondition

// Market implements Lookup.
func (t Table) Market(cropID string) (reference.MarketCondition, bool) {
	m, ok := t[reference.Key(cropID)]
	return m, ok
}

// Rating is a profitability rating.
type Rating string

// Profitability ratings.
const (
	RatingExcellent Rating = "excellent"
	RatingVeryGood  Rating = "very_good"
	RatingGood      Rating = "good"
	RatingFair      Rating = "fair"
	RatingPoor      Rating = "poor"
	RatingUnknown   Rating = "unknown"
)

// RiskRating is a market risk rating.
type RiskRating string

// Risk ratings.
const (
	RiskHigh     RiskRating = "high"
	RiskModerate RiskRating = "moderate"
	RiskLow      RiskRating = "low"
)

// Advantage is a seasonal demand advantage.
type Advantage string

// Seasonal advantages.
const (
	AdvantageHigh     Advantage = "high"
	AdvantageGood     Advantage = "good"
	AdvantageModerate Advantage = "moderate"
	AdvantageLow      Advantage = "low"
)

// Recommendation is a machine-readable market recommendation.
type Recommendation string

// Market recommendations, in emission order.
const (
	RecommendGoodOpportunity      Recommendation = "good_opportunity"
	RecommendConsiderAlternatives Recommendation = "consider_alternatives"
	RecommendPlanForRisk          Recommendation = "plan_for_risk"
	RecommendSellQuickly          Recommendation = "sell_quickly"
	RecommendSecureBuyersEarly    Recommendation = "secure_buyers_early"
	RecommendStrongDemand         Recommendation = "strong_demand"
	RecommendEasyBuyers           Recommendation = "easy_buyers"
	RecommendCooperativeSelling   Recommendation = "cooperative_selling"
)

// Profitability component tables, in hundredths.
var (
	demandPoints = map[string]int{
		"very_high": 40,
		"high":      30,
		"medium":    20,
		"low":       10,
	}
	opportunityPoints = map[string]int{
		"good_opportunity":     35,
		"moderate_opportunity": 20,
		"limited_opportunity":  10,
	}
	accessPoints = map[string]int{
		"excellent": 25,
		"good":      18,
		"moderate":  12,
		"poor":      5,
	}
)

const (
	defaultDemandPoints      = 20
	defaultOpportunityPoints = 20
	defaultAccessPoints      = 12

	// unknownProfitability applies to crops without a market record.
	unknownProfitability = 50

	goodOpportunityAt         = 70
	considerAlternativesBelow = 40
)

// Risk components, in thousandths.
const (
	perishableRisk   = 300
	shortStorageRisk = 150
	weakAccessRisk   = 200

	highRiskAt     = 700
	moderateRiskAt = 400
)

// Profitability is a score in [0,1] with its rating.
type Profitability struct {
	Score  float64 `json:"score"`
	Rating Rating  `json:"rating"`
}

// Risk is a risk score with its rating.
type Risk struct {
	Score  float64    `json:"score"`
	Rating RiskRating `json:"rating"`
}

// SeasonalAdvantage rates seasonal demand. Description echoes the record.
type SeasonalAdvantage struct {
	Advantage   Advantage `json:"advantage"`
	Description string    `json:"description"`
}

// Analysis is the market analysis for one crop at one location.
type Analysis struct {
	CropID          string                     `json:"crop_id"`
	CropName        string                     `json:"crop_name"`
	Profitability   Profitability              `json:"profitability"`
	Risk            Risk                       `json:"risk"`
	Opportunity     *reference.MarketCondition `json:"market_opportunity,omitempty"`
	Seasonal        *SeasonalAdvantage         `json:"seasonal_advantage,omitempty"`
	Recommendations []Recommendation           `json:"recommendations"`
}

// BuildAnalysis derives the market analysis for crop at the profile.
func BuildAnalysis(crop *reference.CropRequirement, profile *location.Profile, markets Lookup) *Analysis {
	var record *reference.MarketCondition
	if markets != nil {
		if m, ok := markets.Market(crop.ID); ok {
			record = &m
		}
	}

	profit := profitabilityPoints(record)
	risk := riskPoints(profile, record)

	return &Analysis{
		CropID:   crop.ID,
		CropName: crop.Name,
		Profitability: Profitability{
			Score:  float64(profit) / 100,
			Rating: profitabilityRating(profit, record != nil),
		},
		Risk: Risk{
			Score:  float64(risk) / 1000,
			Rating: riskRating(risk),
		},
		Opportunity:     record,
		Seasonal:        SeasonalAdvantageOf(record),
		Recommendations: recommendations(profit, riskRating(risk), record),
	}
}

func profitabilityPoints(m *reference.MarketCondition) int {
	if m == nil {
		return unknownProfitability
	}
	return pointsOr(demandPoints, m.DemandLevel, defaultDemandPoints) +
		pointsOr(opportunityPoints, m.Opportunity, defaultOpportunityPoints) +
		pointsOr(accessPoints, m.MarketAccess, defaultAccessPoints)
}

func pointsOr(table map[string]int, label string, fallback int) int {
	if p, ok := table[tier.Key(label)]; ok {
		return p
	}
	return fallback
}

func profitabilityRating(points int, known bool) Rating {
	switch {
	case !known:
		return RatingUnknown
	case points >= 80:
		return RatingExcellent
	case points >= 65:
		return RatingVeryGood
	case points >= 50:
		return RatingGood
	case points >= 35:
		return RatingFair
	default:
		return RatingPoor
	}
}

func riskPoints(profile *location.Profile, m *reference.MarketCondition) int {
	// Climate risk is a multiple of 0.01, so half of it is a whole thousandth.
	risk := int(math.Round(profile.ClimateRisk()*1000)) / 2
	if m == nil {
		return risk
	}

	switch {
	case perishable(m):
		risk += perishableRisk
	case strings.Contains(m.StorageLife, "3 months"):
		risk += shortStorageRisk
	}

	if weakAccess(m) {
		risk += weakAccessRisk
	}
	return risk
}

func riskRating(points int) RiskRating {
	switch {
	case points >= highRiskAt:
		return RiskHigh
	case points >= moderateRiskAt:
		return RiskModerate
	default:
		return RiskLow
	}
}

func perishable(m *reference.MarketCondition) bool {
	s := strings.ToLower(m.StorageLife)
	return strings.Contains(s, "week") || strings.Contains(s, "immediate")
}

func weakAccess(m *reference.MarketCondition) bool {
	a := tier.Key(m.MarketAccess)
	return a == "poor" || a == "moderate"
}

func recommendations(profit int, risk RiskRating, m *reference.MarketCondition) []Recommendation {
	recs := []Recommendation{}
	if m != nil {
		switch {
		case profit >= goodOpportunityAt:
			recs = append(recs, RecommendGoodOpportunity)
		case profit < considerAlternativesBelow:
			recs = append(recs, RecommendConsiderAlternatives)
		}
	}
	if risk == RiskHigh {
		recs = append(recs, RecommendPlanForRisk)
	}
	if m == nil {
		return recs
	}

	if strings.Contains(strings.ToLower(m.StorageLife), "week") {
		recs = append(recs, RecommendSellQuickly, RecommendSecureBuyersEarly)
	}
	if tier.Is(m.DemandLevel, tier.VeryHigh) {
		recs = append(recs, RecommendStrongDemand)
	}
	switch tier.Key(m.MarketAccess) {
	case "excellent":
		recs = append(recs, RecommendEasyBuyers)
	case "moderate":
		recs = append(recs, RecommendCooperativeSelling)
	}
	return recs
}

// SeasonalAdvantageOf rates the seasonal demand text of a record, or returns
// nil when there is none.
func SeasonalAdvantageOf(m *reference.MarketCondition) *SeasonalAdvantage {
	if m == nil || strings.TrimSpace(m.SeasonalDemand) == "" {
		return nil
	}

	words := strings.FieldsFunc(strings.ToLower(m.SeasonalDemand), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	adv := AdvantageLow
	switch {
	case hasPhrase(words, "very", "high"):
		adv = AdvantageHigh
	case hasPhrase(words, "high"):
		adv = AdvantageGood
	case hasPhrase(words, "steady"):
		adv = AdvantageModerate
	}
	return &SeasonalAdvantage{Advantage: adv, Description: m.SeasonalDemand}
}

// hasPhrase reports whether phrase occurs as consecutive whole words.
func hasPhrase(words []string, phrase ...string) bool {
	for i := 0; i+len(phrase) <= len(words); i++ {
		match := true
		for j, w := range phrase {
			if words[i+j] != w {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// Compare analyzes every crop at the profile and orders the analyses by
// profitability, highest first. Equal scores keep input order.
func Compare(crops []reference.CropRequirement, profile *location.Profile, markets Lookup) []*Analysis {
	out := make([]*Analysis, 0, len(crops))
	for i := range crops {
		out = append(out, BuildAnalysis(&crops[i], profile, markets))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Profitability.Score > out[j].Profitability.Score
	})
	return out
}
