// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package reference

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// File names inside a reference data directory.
const (
	CropsFile     = "crops.yaml"
	LocationsFile = "locations.yaml"
	MarketsFile   = "markets.yaml"
)

//go:embed data/*.yaml
var embedded embed.FS

type cropsDoc struct {
	Crops []CropRequirement `yaml:"crops"`
}

type locationsDoc struct {
	Regions    []Region    `yaml:"regions"`
	Subregions []Subregion `yaml:"subregions"`
}

type marketsDoc struct {
	Markets map[string]MarketCondition `yaml:"markets"`
}

// LoadEmbedded loads the tables compiled into the binary.
func LoadEmbedded() (*Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, fmt.Errorf("open embedded data: %w", err)
	}
	return Load(sub)
}

// LoadDir loads the tables from a directory on disk.
func LoadDir(dir string) (*Catalog, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, fmt.Errorf("reference data dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("reference data dir: %s is not a directory", dir)
	}
	return Load(os.DirFS(dir))
}

// Load reads crops.yaml, locations.yaml and markets.yaml from fsys.
// markets.yaml is optional; the other two are required.
func Load(fsys fs.FS) (*Catalog, error) {
	var crops cropsDoc
	if err := decodeFile(fsys, CropsFile, &crops); err != nil {
		return nil, err
	}

	var locations locationsDoc
	if err := decodeFile(fsys, LocationsFile, &locations); err != nil {
		return nil, err
	}

	var markets marketsDoc
	if err := decodeFile(fsys, MarketsFile, &markets); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	return NewCatalog(crops.Crops, locations.Regions, locations.Subregions, markets.Markets)
}

// decodeFile strictly decodes one YAML document; unknown keys are errors.
func decodeFile(fsys fs.FS, name string, out interface{}) error {
	f, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
