// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package reference

// Range is a closed numeric interval.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max" validate:"gtefield=Min"`
}

// Contains reports whether v lies in [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// Overlaps reports whether the two closed intervals share at least one point.
func (r Range) Overlaps(o Range) bool {
	return r.Min <= o.Max && r.Max >= o.Min
}

// Width returns Max - Min.
func (r Range) Width() float64 {
	return r.Max - r.Min
}

// Midpoint returns the centre of the interval.
func (r Range) Midpoint() float64 {
	return (r.Min + r.Max) / 2
}

// NutrientNeeds holds N, P and K tier labels.
type NutrientNeeds struct {
	Nitrogen   string `yaml:"nitrogen" json:"nitrogen" validate:"omitempty,tierlabel"`
	Phosphorus string `yaml:"phosphorus" json:"phosphorus" validate:"omitempty,tierlabel"`
	Potassium  string `yaml:"potassium" json:"potassium" validate:"omitempty,tierlabel"`
}

// CropRequirement describes the growing conditions a crop needs.
type CropRequirement struct {
	ID               string        `yaml:"id" json:"id" validate:"required"`
	Name             string        `yaml:"name" json:"name" validate:"required"`
	Category         string        `yaml:"category" json:"category"`
	WaterRequirement string        `yaml:"water_requirement" json:"water_requirement" validate:"omitempty,tierlabel"`
	WaterMM          float64       `yaml:"water_mm" json:"water_mm" validate:"gte=0"`
	SoilTypes        []string      `yaml:"soil_types" json:"soil_types"`
	PH               Range         `yaml:"ph" json:"ph"`
	Temperature      Range         `yaml:"temperature" json:"temperature"`
	GrowthDays       int           `yaml:"growth_days" json:"growth_days" validate:"gte=0"`
	Nutrients        NutrientNeeds `yaml:"nutrients" json:"nutrients"`
	Season           string        `yaml:"season" json:"season"`
	MinFarmSize      string        `yaml:"min_farm_size" json:"min_farm_size" validate:"omitempty,farmsize"`
}

// SoilProfile describes the soil of a subregion.
type SoilProfile struct {
	Type          string  `yaml:"type" json:"type"`
	PH            float64 `yaml:"ph" json:"ph" validate:"gte=0,lte=14"`
	Nitrogen      string  `yaml:"nitrogen" json:"nitrogen"`
	Phosphorus    string  `yaml:"phosphorus" json:"phosphorus"`
	Potassium     string  `yaml:"potassium" json:"potassium"`
	OrganicMatter string  `yaml:"organic_matter" json:"organic_matter"`
	Drainage      string  `yaml:"drainage" json:"drainage"`
}

// ClimateProfile describes the climate of a subregion.
type ClimateProfile struct {
	AvgRainfall float64  `yaml:"avg_rainfall" json:"avg_rainfall" validate:"gte=0"`
	Temperature Range    `yaml:"temperature" json:"temperature"`
	Humidity    float64  `yaml:"humidity" json:"humidity" validate:"gte=0,lte=100"`
	Season      string   `yaml:"season" json:"season"`
	Risks       []string `yaml:"risks" json:"risks"`
}

// Region is an administrative area made up of agro-ecological subregions.
type Region struct {
	Name             string   `yaml:"name" json:"name" validate:"required"`
	DefaultSubregion string   `yaml:"default_subregion" json:"default_subregion" validate:"required"`
	Subregions       []string `yaml:"subregions" json:"subregions" validate:"required,min=1,dive,required"`
}

// Subregion pairs a zone with its soil and climate. Either profile may be nil.
type Subregion struct {
	Name    string          `yaml:"name" json:"name" validate:"required"`
	Soil    *SoilProfile    `yaml:"soil,omitempty" json:"soil,omitempty"`
	Climate *ClimateProfile `yaml:"climate,omitempty" json:"climate,omitempty"`
}

// MarketCondition is the static market record for one crop.
type MarketCondition struct {
	DemandLevel    string `yaml:"demand_level" json:"demand_level"`
	Opportunity    string `yaml:"opportunity" json:"opportunity"`
	MarketAccess   string `yaml:"market_access" json:"market_access"`
	StorageLife    string `yaml:"storage_life" json:"storage_life"`
	SeasonalDemand string `yaml:"seasonal_demand" json:"seasonal_demand"`
	Notes          string `yaml:"notes" json:"notes"`
}
