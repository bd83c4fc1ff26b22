// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package reference

import (
	"fmt"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/tier"
	"github.com/Romeombugua/e-mkulima/internal/validation"
)

// Key normalizes a region, subregion or crop name for lookup.
func Key(name string) string {
	return tier.Key(name)
}

// Catalog is an immutable, indexed set of reference tables.
type Catalog struct {
	crops      []CropRequirement
	regions    []Region
	subregions []Subregion
	markets    map[string]MarketCondition

	cropIndex      map[string]int
	regionIndex    map[string]int
	subregionIndex map[string]int
}

// ValidationError lists every structural problem found in a set of tables.
type ValidationError struct {
	Problems []string
}

// Error joins all problems into one message.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid reference data: %s", strings.Join(e.Problems, "; "))
}

// tables is the combined shape of the three data files, used for validation.
type tables struct {
	Crops      []CropRequirement `json:"crops" validate:"dive"`
	Regions    []Region          `json:"regions" validate:"dive"`
	Subregions []Subregion       `json:"subregions" validate:"dive"`
}

// NewCatalog validates the tables and builds lookup indexes. Crop order is
// preserved. Market entries are keyed by crop id.
func NewCatalog(crops []CropRequirement, regions []Region, subregions []Subregion, markets map[string]MarketCondition) (*Catalog, error) {
	var problems []string

	if verr := validation.ValidateStruct(&tables{Crops: crops, Regions: regions, Subregions: subregions}); verr != nil {
		for _, e := range verr.Errors() {
			problems = append(problems, fmt.Sprintf("%s: %s", e.Field(), e.Error()))
		}
	}

	c := &Catalog{
		crops:          cloneCrops(crops),
		regions:        cloneRegions(regions),
		subregions:     cloneSubregions(subregions),
		markets:        make(map[string]MarketCondition, len(markets)),
		cropIndex:      make(map[string]int, len(crops)),
		regionIndex:    make(map[string]int, len(regions)),
		subregionIndex: make(map[string]int, len(subregions)),
	}

	for i := range c.crops {
		k := Key(c.crops[i].ID)
		if _, dup := c.cropIndex[k]; dup {
			problems = append(problems, fmt.Sprintf("crops[%d]: duplicate crop id %q", i, c.crops[i].ID))
			continue
		}
		c.cropIndex[k] = i
	}

	for i := range c.subregions {
		k := Key(c.subregions[i].Name)
		if _, dup := c.subregionIndex[k]; dup {
			problems = append(problems, fmt.Sprintf("subregions[%d]: duplicate subregion %q", i, c.subregions[i].Name))
			continue
		}
		c.subregionIndex[k] = i
	}

	for i := range c.regions {
		r := &c.regions[i]
		k := Key(r.Name)
		if _, dup := c.regionIndex[k]; dup {
			problems = append(problems, fmt.Sprintf("regions[%d]: duplicate region %q", i, r.Name))
			continue
		}
		c.regionIndex[k] = i
		if r.DefaultSubregion != "" && !containsKey(r.Subregions, r.DefaultSubregion) {
			problems = append(problems, fmt.Sprintf("regions[%d]: default subregion %q is not listed", i, r.DefaultSubregion))
		}
	}

	for id, m := range markets {
		if _, ok := c.cropIndex[Key(id)]; !ok {
			problems = append(problems, fmt.Sprintf("markets.%s: no crop with this id", id))
			continue
		}
		c.markets[Key(id)] = m
	}

	if len(problems) > 0 {
		return nil, &ValidationError{Problems: problems}
	}
	return c, nil
}

// Crops returns the crops in table order. The slice is a copy.
func (c *Catalog) Crops() []CropRequirement {
	return cloneCrops(c.crops)
}

// CropCount returns the number of crops.
func (c *Catalog) CropCount() int {
	return len(c.crops)
}

// Crop looks up a crop by id.
func (c *Catalog) Crop(id string) (CropRequirement, bool) {
	i, ok := c.cropIndex[Key(id)]
	if !ok {
		return CropRequirement{}, false
	}
	return cloneCrop(c.crops[i]), true
}

// Regions returns every region in table order.
func (c *Catalog) Regions() []Region {
	return cloneRegions(c.regions)
}

// Region looks up a region by name.
func (c *Catalog) Region(name string) (Region, bool) {
	i, ok := c.regionIndex[Key(name)]
	if !ok {
		return Region{}, false
	}
	return cloneRegion(c.regions[i]), true
}

// Subregion looks up a subregion by name. Profiles in the result are copies.
func (c *Catalog) Subregion(name string) (Subregion, bool) {
	i, ok := c.subregionIndex[Key(name)]
	if !ok {
		return Subregion{}, false
	}
	return cloneSubregion(c.subregions[i]), true
}

// SubregionCount returns the number of subregions with profile data.
func (c *Catalog) SubregionCount() int {
	return len(c.subregions)
}

// Market returns the market record for a crop id.
func (c *Catalog) Market(cropID string) (MarketCondition, bool) {
	m, ok := c.markets[Key(cropID)]
	return m, ok
}

// Markets returns a copy of the market table keyed by normalized crop id.
func (c *Catalog) Markets() map[string]MarketCondition {
	out := make(map[string]MarketCondition, len(c.markets))
	for k, v := range c.markets {
		out[k] = v
	}
	return out
}

func containsKey(names []string, name string) bool {
	k := Key(name)
	for _, n := range names {
		if Key(n) == k {
			return true
		}
	}
	return false
}

func cloneCrop(cr CropRequirement) CropRequirement {
	cr.SoilTypes = append([]string(nil), cr.SoilTypes...)
	return cr
}

func cloneCrops(in []CropRequirement) []CropRequirement {
	out := make([]CropRequirement, len(in))
	for i := range in {
		out[i] = cloneCrop(in[i])
	}
	return out
}

func cloneRegion(r Region) Region {
	r.Subregions = append([]string(nil), r.Subregions...)
	return r
}

func cloneRegions(in []Region) []Region {
	out := make([]Region, len(in))
	for i := range in {
		out[i] = cloneRegion(in[i])
	}
	return out
}

func cloneSubregion(s Subregion) Subregion {
	if s.Soil != nil {
		soil := *s.Soil
		s.Soil = &soil
	}
	if s.Climate != nil {
		climate := *s.Climate
		climate.Risks = append([]string(nil), climate.Risks...)
		s.Climate = &climate
	}
	return s
}

func cloneSubregions(in []Subregion) []Subregion {
	out := make([]Subregion, len(in))
	for i := range in {
		out[i] = cloneSubregion(in[i])
	}
	return out
}
