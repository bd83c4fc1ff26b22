// e-Mkulima - Crop Suitability and Farm Advisory Engine
// Copyright 2026 e-Mkulima contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/Romeombugua/e-mkulima

package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const colGap = 2

// RenderTable renders an aligned table with a header separator line.
// Widths are measured on visible characters so styled cells line up.
func RenderTable(headers []string, rows [][]string) string {
	if len(headers) == 0 {
		return ""
	}

	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i := 0; i < len(widths) && i < len(row); i++ {
			widths[i] = max(widths[i], lipgloss.Width(row[i]))
		}
	}

	var b strings.Builder
	writeRow(&b, headers, widths, StyleHeader)

	for i, w := range widths {
		b.WriteString(StyleDim.Render(strings.Repeat("─", w)))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", colGap))
		}
	}
	b.WriteString("\n")

	for _, row := range rows {
		writeRow(&b, row, widths, lipgloss.NewStyle())
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int, style lipgloss.Style) {
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		b.WriteString(style.Render(cell))
		if i < len(widths)-1 {
			b.WriteString(strings.Repeat(" ", widths[i]-lipgloss.Width(cell)+colGap))
		}
	}
	b.WriteString("\n")
}

// Title renders a section heading followed by a newline.
func Title(format string, args ...interface{}) string {
	return StyleTitle.Render(fmt.Sprintf(format, args...)) + "\n"
}

// KeyValues renders aligned "key: value" lines in the given order.
func KeyValues(pairs ...[2]string) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p[0]))
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(StyleDim.Render(p[0] + ":"))
		b.WriteString(strings.Repeat(" ", width-lipgloss.Width(p[0])+1))
		b.WriteString(p[1])
		b.WriteString("\n")
	}
	return b.String()
}

// Percent renders a [0,1] score as a whole percentage.
func Percent(score float64) string {
	return fmt.Sprintf("%.0f%%", score*100)
}

// orDash renders empty strings as "-".
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
