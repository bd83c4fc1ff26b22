// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package api

import (
	"net/http"
	"time"

	"github.com/Romeombugua/e-mkulima/internal/cache"
)

// ReadinessStatus is the body of the readiness probe.
type ReadinessStatus struct {
	Ready      bool        `json:"ready_to_serve"`
	Crops      int         `json:"crops"`
	Regions    int         `json:"regions"`
	Subregions int         `json:"subregions"`
	Memo       cache.Stats `json:"memo"`
	Uptime     float64     `json:"uptime"`
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is running
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	NewResponseWriter(w, r).Success(map[string]interface{}{
		"alive":  true,
		"uptime": time.Since(h.startTime).Seconds(),
	})
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only when crop reference data is loaded, 503 otherwise.
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	catalog := h.service.Catalog()
	status := ReadinessStatus{
		Ready:      catalog.CropCount() > 0,
		Crops:      catalog.CropCount(),
		Regions:    len(catalog.Regions()),
		Subregions: catalog.SubregionCount(),
		Memo:       h.service.MemoStats(),
		Uptime:     time.Since(h.startTime).Seconds(),
	}

	statusCode := http.StatusOK
	if !status.Ready {
		statusCode = http.StatusServiceUnavailable
	}
	NewResponseWriter(w, r).WithStatus(statusCode, status, nil)
}
