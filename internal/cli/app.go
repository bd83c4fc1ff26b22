// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/Romeombugua/e-mkulima/internal/advisory"
	"github.com/Romeombugua/e-mkulima/internal/logging"
	"github.com/Romeombugua/e-mkulima/internal/recommend"
	"github.com/Romeombugua/e-mkulima/internal/reference"
)

// Output formats.
const (
	outputText = "text"
	outputJSON = "json"
	outputAuto = "auto"
)

// OpenFunc builds the advisory service for a reference data directory.
// An empty dir selects the embedded tables.
type OpenFunc func(dataDir string) (*advisory.Service, error)

// App holds the state shared by every command.
type App struct {
	open    OpenFunc
	service *advisory.Service

	// Persistent flags
	output   string
	dataDir  string
	logLevel string
}

// NewApp creates an App. A nil open selects OpenService.
func NewApp(open OpenFunc) *App {
	if open == nil {
		open = OpenService
	}
	return &App{open: open}
}

// OpenService loads reference data and builds an advisory service with
// memoization off; a CLI run builds each bundle once.
func OpenService(dataDir string) (*advisory.Service, error) {
	var (
		catalog *reference.Catalog
		err     error
	)
	if dataDir == "" {
		catalog, err = reference.LoadEmbedded()
	} else {
		catalog, err = reference.LoadDir(dataDir)
	}
	if err != nil {
		return nil, fmt.Errorf("load reference data: %w", err)
	}

	logger := logging.WithComponent("cli")
	engine, err := advisory.NewEngine(recommend.DefaultConfig(), logger)
	if err != nil {
		return nil, err
	}

	cfg := advisory.DefaultConfig()
	cfg.Memoize = false
	return advisory.NewService(catalog, engine, cfg, logger)
}

// Service opens the advisory service on first use.
func (a *App) Service() (*advisory.Service, error) {
	if a.service != nil {
		return a.service, nil
	}
	svc, err := a.open(a.dataDir)
	if err != nil {
		return nil, err
	}
	a.service = svc
	return svc, nil
}

// render writes v as indented JSON or as the text produced by text.
func (a *App) render(cmd *cobra.Command, v interface{}, text func() string) error {
	out := cmd.OutOrStdout()
	if a.format(out) == outputJSON {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	_, err := fmt.Fprint(out, text())
	return err
}

// format resolves auto to text on a terminal and JSON otherwise.
func (a *App) format(w io.Writer) string {
	if a.output != outputAuto {
		return a.output
	}
	if f, ok := w.(*os.File); ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return outputText
	}
	return outputJSON
}

func validOutput(s string) bool {
	switch s {
	case outputText, outputJSON, outputAuto:
		return true
	}
	return false
}
