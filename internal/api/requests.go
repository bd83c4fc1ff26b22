// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
)

// PlanRequest represents the validated query parameters for the per-crop plan
// endpoints (/crops/{cropID}/irrigation, /fertilizer, /market).
type PlanRequest struct {
	Region    string `json:"region" validate:"required,max=100"`
	Subregion string `json:"subregion" validate:"max=100"`
}

// MarketCompareRequest represents the validated query parameters for
// /markets/compare. An empty crop list compares every crop.
type MarketCompareRequest struct {
	Region    string   `json:"region" validate:"required,max=100"`
	Subregion string   `json:"subregion" validate:"max=100"`
	Crops     []string `json:"crops" validate:"max=100,dive,required,max=64"`
}

// farmRequestFromQuery reads region, subregion, farm_size and top_n.
// Field validation is left to the advisory service.
func farmRequestFromQuery(r *http.Request) (advisory.Request, error) {
	q := r.URL.Query()
	req := advisory.Request{
		Region:    strings.TrimSpace(q.Get("region")),
		Subregion: strings.TrimSpace(q.Get("subregion")),
		FarmSize:  strings.TrimSpace(q.Get("farm_size")),
	}

	if v := strings.TrimSpace(q.Get("top_n")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return req, ErrInvalidTopN
		}
		req.TopN = n
	}
	return req, nil
}

// planRequestFromQuery reads region and subregion.
func planRequestFromQuery(r *http.Request) PlanRequest {
	q := r.URL.Query()
	return PlanRequest{
		Region:    strings.TrimSpace(q.Get("region")),
		Subregion: strings.TrimSpace(q.Get("subregion")),
	}
}

// marketCompareRequestFromQuery reads region, subregion and crops.
func marketCompareRequestFromQuery(r *http.Request) MarketCompareRequest {
	q := r.URL.Query()
	return MarketCompareRequest{
		Region:    strings.TrimSpace(q.Get("region")),
		Subregion: strings.TrimSpace(q.Get("subregion")),
		Crops:     parseCommaSeparated(q.Get("crops")),
	}
}
