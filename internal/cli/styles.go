// MovieSoup - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/moviesoup

package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6EC4F4")).
			Padding(0, 1)

	cellStyle = lipgloss.NewStyle().Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6EC4F4")).
			Width(22)

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6EF4A1"))

	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F45E6E"))

	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#808080"))
)

// maxCellWidth truncates long cells such as titles.
const maxCellWidth = 48

// headerRow is the row index lipgloss tables pass to StyleFunc for headers.
const headerRow = 0

// renderTable renders rows under headers in a bordered table. Long cells
// are cut at maxCellWidth.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(mutedStyle).
		Headers(headers...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == headerRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range rows {
		cells := make([]string, len(headers))
		for i := range cells {
			if i < len(row) {
				cells[i] = truncate(row[i], maxCellWidth)
			}
		}
		t.Row(cells...)
	}
	return t.String() + "\n"
}

// renderFields renders label/value pairs one per line.
func renderFields(pairs [][2]string) string {
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(labelStyle.Render(p[0]))
		b.WriteString(p[1])
		b.WriteByte('\n')
	}
	return b.String()
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
