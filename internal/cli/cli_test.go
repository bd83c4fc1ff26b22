// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/validation"
)

// executeCmd runs the root command with args and returns stdout.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd(app)
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func decodeOutput(t *testing.T, out string, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(out), v), "output: %s", out)
}

func TestAdvise_JSON(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "advise", "--region", "Khartoum", "--farm-size", "medium", "-o", "json")
	require.NoError(t, err)

	var bundle advisory.Bundle
	decodeOutput(t, out, &bundle)
	assert.NotEmpty(t, bundle.ID)
	assert.Equal(t, "Khartoum", bundle.Profile.Region)
	assert.Equal(t, "Nile Valley", bundle.Profile.Subregion)
	assert.Equal(t, "medium", bundle.FarmSize)
	require.NotEmpty(t, bundle.Ranked)
	require.NotNil(t, bundle.Top)
	assert.Equal(t, bundle.Ranked[0].CropID, bundle.Top.Suitability.CropID)
}

func TestAdvise_Text(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "advise", "-r", "Khartoum", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "Khartoum / Nile Valley")
}

func TestAdvise_RequiresRegion(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "advise")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "region")
}

func TestAdvise_InvalidFarmSize(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "advise", "-r", "Khartoum", "-f", "huge", "-o", "json")
	require.Error(t, err)
	var verr *validation.RequestValidationError
	assert.True(t, errors.As(err, &verr), "got %T: %v", err, err)
}

func TestRank_TopN(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "rank", "-r", "Gezira", "-n", "3", "-o", "json")
	require.NoError(t, err)

	var ranking advisory.Ranking
	decodeOutput(t, out, &ranking)
	assert.Len(t, ranking.Ranked, 3)
	assert.Equal(t, "Gezira", ranking.Profile.Region)
	assert.NotEmpty(t, ranking.Justification)
}

func TestCompare(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "compare", "-r", "Khartoum", "-o", "json")
	require.NoError(t, err)

	var cmp advisory.StrategyComparison
	decodeOutput(t, out, &cmp)
	assert.Len(t, cmp.Rankings, 2)
	assert.NotEmpty(t, cmp.Justification)
}

func TestRegions(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "regions", "-o", "json")
	require.NoError(t, err)

	var regions []struct {
		Name string `json:"name"`
	}
	decodeOutput(t, out, &regions)
	require.NotEmpty(t, regions)

	names := make([]string, len(regions))
	for i, r := range regions {
		names[i] = r.Name
	}
	assert.Contains(t, names, "Khartoum")
}

func TestRegions_Profile(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "regions", "North Darfur", "-o", "json")
	require.NoError(t, err)

	var view profileView
	decodeOutput(t, out, &view)
	assert.Equal(t, "Semi-Desert", view.Profile.Subregion)
	assert.True(t, view.Complete)
	assert.Len(t, view.Warnings, 3)
}

func TestRegions_Unknown(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "regions", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestCrops(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "crops", "-o", "text")
	require.NoError(t, err)
	assert.Contains(t, out, "sorghum")
	assert.Contains(t, out, "gumArabic")

	out, err = executeCmd(t, NewApp(nil), "crops", "okra", "-o", "json")
	require.NoError(t, err)
	var crop struct {
		ID string `json:"id"`
	}
	decodeOutput(t, out, &crop)
	assert.Equal(t, "okra", crop.ID)
}

func TestCrops_Unknown(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "crops", "durian")
	assert.ErrorIs(t, err, advisory.ErrUnknownCrop)
}

func TestPlan(t *testing.T) {
	for _, kind := range []string{"irrigation", "fertilizer"} {
		t.Run(kind, func(t *testing.T) {
			out, err := executeCmd(t, NewApp(nil), "plan", kind, "-r", "Gezira", "-c", "cotton", "-o", "json")
			require.NoError(t, err)

			var plan struct {
				CropID string `json:"crop_id"`
			}
			decodeOutput(t, out, &plan)
			assert.Equal(t, "cotton", plan.CropID)
		})
	}
}

func TestPlan_UnknownCrop(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "plan", "irrigation", "-r", "Gezira", "-c", "durian")
	assert.ErrorIs(t, err, advisory.ErrUnknownCrop)
}

func TestMarket(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "market", "sorghum", "-r", "Khartoum", "-o", "json")
	require.NoError(t, err)
	var analysis struct {
		CropID string `json:"crop_id"`
	}
	decodeOutput(t, out, &analysis)
	assert.Equal(t, "sorghum", analysis.CropID)

	out, err = executeCmd(t, NewApp(nil), "market", "-r", "Khartoum", "--crops", "okra,sorghum", "-o", "json")
	require.NoError(t, err)
	var analyses []struct {
		CropID string `json:"crop_id"`
	}
	decodeOutput(t, out, &analyses)
	require.Len(t, analyses, 2)
	assert.Equal(t, "sorghum", analyses[0].CropID)
}

func TestOutput_Invalid(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "crops", "-o", "yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--output")
}

func TestOutput_AutoIsJSONOffTerminal(t *testing.T) {
	out, err := executeCmd(t, NewApp(nil), "crops", "okra")
	require.NoError(t, err)
	assert.True(t, json.Valid([]byte(out)), "output: %s", out)
}

func TestLogLevel_Invalid(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "crops", "--log-level", "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log-level")
}

func TestService_OpenedOnce(t *testing.T) {
	calls := 0
	app := NewApp(func(dataDir string) (*advisory.Service, error) {
		calls++
		return OpenService(dataDir)
	})

	for i := 0; i < 2; i++ {
		_, err := app.Service()
		require.NoError(t, err)
	}
	assert.Equal(t, 1, calls)
}

func TestDataDir(t *testing.T) {
	_, err := executeCmd(t, NewApp(nil), "crops", "--data-dir", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load reference data")

	dir := t.TempDir()
	for _, name := range []string{"crops.yaml", "locations.yaml", "markets.yaml"} {
		data, err := os.ReadFile(filepath.Join("..", "reference", "data", name))
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o600))
	}
	out, err := executeCmd(t, NewApp(nil), "crops", "sesame", "--data-dir", dir, "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, out, `"sesame"`)
}
