// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package location

import (
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// Resolver maps region and subregion names to profiles.
// It is safe for concurrent use.
type Resolver struct {
	catalog *reference.Catalog
}

// NewResolver creates a resolver over the catalog's location tables.
func NewResolver(catalog *reference.Catalog) *Resolver {
	return &Resolver{catalog: catalog}
}

// Resolve returns the profile for a subregion. An empty subregion selects the
// region's default; an unknown region or subregion yields nil soil and climate.
// Profiles are fresh copies and may be modified by the caller.
func (r *Resolver) Resolve(region, subregion string) *Profile {
	p := &Profile{Region: region, Subregion: subregion}

	if reg, ok := r.catalog.Region(region); ok {
		p.Region = reg.Name
		if subregion == "" {
			p.Subregion = reg.DefaultSubregion
		}
	}

	if p.Subregion == "" {
		return p
	}

	sub, ok := r.catalog.Subregion(p.Subregion)
	if !ok {
		return p
	}
	p.Subregion = sub.Name
	p.Soil = sub.Soil
	p.Climate = sub.Climate
	return p
}

// DefaultSubregion returns the default subregion of a region.
func (r *Resolver) DefaultSubregion(region string) (string, bool) {
	reg, ok := r.catalog.Region(region)
	if !ok {
		return "", false
	}
	return reg.DefaultSubregion, true
}

// Subregions lists the subregions of a region, nil when the region is unknown.
func (r *Resolver) Subregions(region string) []string {
	reg, ok := r.catalog.Region(region)
	if !ok {
		return nil
	}
	return reg.Subregions
}

// Regions lists every known region name in table order.
func (r *Resolver) Regions() []string {
	regions := r.catalog.Regions()
	names := make([]string, len(regions))
	for i := range regions {
		names[i] = regions[i].Name
	}
	return names
}
