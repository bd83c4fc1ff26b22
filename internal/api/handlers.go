// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/location"
)

// Handler serves the advisory endpoints.
type Handler struct {
	service   *advisory.Service
	startTime time.Time
}

// NewHandler creates a new API handler over an advisory service.
func NewHandler(service *advisory.Service) *Handler {
	return &Handler{
		service:   service,
		startTime: time.Now(),
	}
}

// LocationView is a resolved location with its derived indices and climate
// warnings.
type LocationView struct {
	Profile  *location.Profile  `json:"profile"`
	Indices  location.Indices   `json:"indices"`
	Complete bool               `json:"complete"`
	Warnings []advisory.Warning `json:"warnings"`
}

// Regions lists every region with its subregions.
func (h *Handler) Regions(w http.ResponseWriter, r *http.Request) {
	regions := h.service.Catalog().Regions()
	NewResponseWriter(w, r).SuccessList(regions, len(regions))
}

// Region returns one region.
func (h *Handler) Region(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name := chi.URLParam(r, "region")

	region, ok := h.service.Catalog().Region(name)
	if !ok {
		rw.NotFound("Unknown region: " + name)
		return
	}
	rw.Success(region)
}

// RegionProfile resolves a region, or ?subregion= within it, to its profile.
func (h *Handler) RegionProfile(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	name := chi.URLParam(r, "region")

	if _, ok := h.service.Catalog().Region(name); !ok {
		rw.NotFound("Unknown region: " + name)
		return
	}

	profile := h.service.Profile(name, r.URL.Query().Get("subregion"))
	rw.Success(LocationView{
		Profile:  profile,
		Indices:  profile.Indices(),
		Complete: profile.Complete(),
		Warnings: advisory.ClimateWarnings(profile),
	})
}

// Crops lists the crop reference table.
func (h *Handler) Crops(w http.ResponseWriter, r *http.Request) {
	crops := h.service.Catalog().Crops()
	NewResponseWriter(w, r).SuccessList(crops, len(crops))
}

// Crop returns one crop.
func (h *Handler) Crop(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	id := chi.URLParam(r, "cropID")

	crop, ok := h.service.Catalog().Crop(id)
	if !ok {
		rw.Error(http.StatusNotFound, ErrCodeUnknownCrop, "Unknown crop: "+id)
		return
	}
	rw.Success(crop)
}

// CropIrrigation builds the irrigation plan for a crop at ?region=&subregion=.
func (h *Handler) CropIrrigation(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := planRequestFromQuery(r)
	if !validateRequest(rw, &req) {
		return
	}

	plan, err := h.service.IrrigationPlan(req.Region, req.Subregion, chi.URLParam(r, "cropID"))
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(plan)
}

// CropFertilizer builds the fertilizer plan for a crop at ?region=&subregion=.
func (h *Handler) CropFertilizer(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := planRequestFromQuery(r)
	if !validateRequest(rw, &req) {
		return
	}

	plan, err := h.service.FertilizerPlan(req.Region, req.Subregion, chi.URLParam(r, "cropID"))
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(plan)
}

// CropMarket builds the market analysis for a crop at ?region=&subregion=.
func (h *Handler) CropMarket(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := planRequestFromQuery(r)
	if !validateRequest(rw, &req) {
		return
	}

	analysis, err := h.service.MarketAnalysis(req.Region, req.Subregion, chi.URLParam(r, "cropID"))
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(analysis)
}

// MarketsCompare analyses ?crops= (default all) at a location, most
// profitable first.
func (h *Handler) MarketsCompare(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req := marketCompareRequestFromQuery(r)
	if !validateRequest(rw, &req) {
		return
	}

	analyses, err := h.service.CompareMarkets(req.Region, req.Subregion, req.Crops)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.SuccessList(analyses, len(analyses))
}

// Rankings ranks every crop with the arbitrated strategy.
func (h *Handler) Rankings(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := farmRequestFromQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	ranking, err := h.service.Rank(r.Context(), req)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(ranking)
}

// RankingsCompare ranks with both strategies side by side.
func (h *Handler) RankingsCompare(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := farmRequestFromQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}

	cmp, err := h.service.CompareStrategies(r.Context(), req)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.Success(cmp)
}

// Advice builds the advice bundle from query parameters.
func (h *Handler) Advice(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	req, err := farmRequestFromQuery(r)
	if err != nil {
		rw.BadRequest(err.Error())
		return
	}
	h.advise(rw, r, req)
}

// AdvicePost builds the advice bundle from a JSON body.
func (h *Handler) AdvicePost(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)

	var req advisory.Request
	if err := decodeJSONBody(w, r, &req); err != nil {
		if errors.Is(err, ErrBodyTooLarge) {
			rw.Error(http.StatusRequestEntityTooLarge, ErrCodeBadRequest, err.Error())
			return
		}
		rw.BadRequest(err.Error())
		return
	}
	h.advise(rw, r, req)
}

func (h *Handler) advise(rw *ResponseWriter, r *http.Request, req advisory.Request) {
	bundle, cached, err := h.service.AdviseCached(r.Context(), req)
	if err != nil {
		respondServiceError(rw, r, err)
		return
	}
	rw.SuccessWithMeta(bundle, &APIMeta{Cached: cached})
}
