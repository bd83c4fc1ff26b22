// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package api

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// testEnvelope decodes the response envelope with a raw payload.
type testEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func newTestService(t *testing.T, catalog *reference.Catalog) *advisory.Service {
	t.Helper()

	if catalog == nil {
		var err error
		catalog, err = reference.LoadEmbedded()
		if err != nil {
			t.Fatalf("LoadEmbedded() error = %v", err)
		}
	}

	engine, err := advisory.NewEngine(recommend.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	svc, err := advisory.NewService(catalog, engine, advisory.DefaultConfig(), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return svc
}

// newTestServer builds the full route table with rate limiting disabled.
func newTestServer(t *testing.T, catalog *reference.Catalog) http.Handler {
	t.Helper()

	mw := DefaultChiMiddlewareConfig()
	mw.RateLimitDisabled = true
	return NewRouter(NewHandler(newTestService(t, catalog)), mw).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, target, body string) (*httptest.ResponseRecorder, testEnvelope) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	var env testEnvelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v (body %q)", method, target, err, w.Body.String())
		}
	}
	return w, env
}

func decodeData(t *testing.T, env testEnvelope, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, out); err != nil {
		t.Fatalf("decode data: %v", err)
	}
}
