package main

import (
	"fmt"

	"pqbench/internal/benchmark"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle   = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle     = lipgloss.NewStyle().Padding(0, 1)
	okStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	skipStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true)
)

// renderRecords formats measurements as a bordered table.
func renderRecords(records []benchmark.Record) string {
	if len(records) == 0 {
		return "(no rows)"
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("FAMILY", "ALGORITHM", "OPERATION", "AVG TIME (s)").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	for _, r := range records {
		t.Row(string(r.Family), r.Algorithm, string(r.Operation), fmt.Sprintf("%.6f", r.AvgTimeS))
	}
	return t.String()
}
