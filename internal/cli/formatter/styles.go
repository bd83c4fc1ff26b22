// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

// Package formatter renders advisory results as terminal text.
package formatter

import "github.com/charmbracelet/lipgloss"

// Styles. lipgloss drops the colors when output is not a terminal.
var (
	StyleTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	StyleHeader = lipgloss.NewStyle().Bold(true)
	StyleDim    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	StyleWarn   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	StyleAlert  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
