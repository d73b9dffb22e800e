package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rshade/footprint/internal/engine"
)

// Column width constants for the field table.
const (
	fieldLabelWidth   = 26 // Width for field label column
	fieldValueWidth   = 20 // Width for original/modified value columns
	separatorWidth    = 70 // Width for horizontal separator lines
	deltaSeparatorLen = 50 // Width for delta section separator
	minTruncateLen    = 3  // Minimum length before truncation with ellipsis
)

// RenderFootprintDelta renders a signed footprint change with a directional arrow.
// Increases are warnings and reductions are shown as OK; changes that round to
// zero at the configured precision are muted.
func RenderFootprintDelta(delta float64, opts RenderOptions) string {
	scale := math.Pow(10, float64(max(opts.Precision, 0))) //nolint:mnd // Decimal base.
	rounded := math.Round(delta*scale) / scale

	var icon, sign string
	var color lipgloss.Color

	switch {
	case rounded > 0:
		icon = IconArrowUp
		sign = "+"
		color = ColorWarning
	case rounded < 0:
		icon = IconArrowDown
		color = ColorOK
	default:
		icon = IconArrowRight
		color = ColorMuted
		delta = 0
	}

	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(fmt.Sprintf("%s%s %s", sign, opts.FormatQuantity(delta), icon))
}

// RenderWhatIfHeader renders the header of the what-if editor.
func RenderWhatIfHeader(name, factorTable string) string {
	var sb strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorHeader).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	sb.WriteString(titleStyle.Render("What-If Footprint Analysis"))
	sb.WriteString("\n\n")

	if name != "" {
		sb.WriteString(LabelStyle.Render("Household: "))
		sb.WriteString(ValueStyle.Render(name))
		sb.WriteString("\n")
	}
	sb.WriteString(LabelStyle.Render("Factors: "))
	sb.WriteString(ValueStyle.Render(factorTable))

	return sb.String()
}

// RenderFootprintComparison renders baseline and modified monthly totals and the change.
func RenderFootprintComparison(baseline, modified float64, opts RenderOptions) string {
	var sb strings.Builder

	sb.WriteString(LabelStyle.Render("Baseline:  "))
	sb.WriteString(ValueStyle.Render(opts.FormatQuantity(baseline) + "/mo"))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render("Modified:  "))
	sb.WriteString(ValueStyle.Render(opts.FormatQuantity(modified) + "/mo"))
	sb.WriteString("\n\n")

	sb.WriteString(LabelStyle.Render("Change:    "))
	sb.WriteString(RenderFootprintDelta(modified-baseline, opts))
	sb.WriteString("/mo")

	return sb.String()
}

// RenderCategoryDeltas renders the per-category monthly change of a what-if result.
func RenderCategoryDeltas(deltas []engine.CategoryDelta, opts RenderOptions) string {
	if len(deltas) == 0 {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("By Category:"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", deltaSeparatorLen))
	sb.WriteString("\n")

	for _, d := range deltas {
		sb.WriteString(fmt.Sprintf("  %s %s %s %s (%s)\n",
			LabelStyle.Render(fmt.Sprintf("%-10s", d.Category)),
			ValueStyle.Render(opts.FormatValue(d.Baseline)),
			SubtleStyle.Render(IconArrowRight),
			ValueStyle.Render(opts.FormatValue(d.Modified)),
			RenderFootprintDelta(d.Change, opts),
		))
	}
	return sb.String()
}

// RenderFieldTable renders the editable household fields.
func RenderFieldTable(rows []FieldRow, focusedRow int, editing bool) string {
	if len(rows) == 0 {
		return InfoStyle.Render("No fields to edit")
	}

	var sb strings.Builder

	sb.WriteString(HeaderStyle.Render("Household Inputs:"))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", separatorWidth))
	sb.WriteString("\n")

	sb.WriteString(LabelStyle.Render(fmt.Sprintf("  %-*s %-*s %s\n",
		fieldLabelWidth, "Field", fieldValueWidth, "Original", "Modified")))
	sb.WriteString("\n")

	for i, row := range rows {
		sb.WriteString(renderFieldRow(row, i == focusedRow, editing && i == focusedRow))
		sb.WriteString("\n")
	}

	return sb.String()
}

func renderFieldRow(row FieldRow, focused, editing bool) string {
	var sb strings.Builder

	switch {
	case focused && editing:
		sb.WriteString("> ")
	case focused:
		sb.WriteString(IconArrowRight + " ")
	default:
		sb.WriteString("  ")
	}

	modifiedStyle := lipgloss.NewStyle().Foreground(ColorHighlight).Bold(true)

	sb.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", fieldLabelWidth,
		truncate(row.Field.Label, fieldLabelWidth))))
	sb.WriteString(lipgloss.NewStyle().Foreground(ColorValue).Render(
		fmt.Sprintf("%-*s", fieldValueWidth, truncate(row.OriginalValue, fieldValueWidth))))

	current := truncate(row.CurrentValue, fieldValueWidth)
	if row.Changed() {
		sb.WriteString(modifiedStyle.Render(current))
	} else {
		sb.WriteString(lipgloss.NewStyle().Foreground(ColorValue).Render(current))
	}

	if focused && !editing && len(row.Field.Choices) > 0 {
		sb.WriteString(SubtleStyle.Render("  ←/→"))
	}

	return sb.String()
}

// truncate truncates a string to the specified length with ellipsis.
// Uses rune-aware counting to properly handle multi-byte UTF-8 characters.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= minTruncateLen {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-minTruncateLen]) + "..."
}

// RenderWhatIfResultView renders a complete what-if result for non-interactive display.
func RenderWhatIfResultView(result *engine.WhatIfResult, opts RenderOptions, width int) string {
	if result == nil || result.Baseline == nil || result.Modified == nil {
		return InfoStyle.Render("No what-if result available")
	}

	var sb strings.Builder
	sb.WriteString(RenderWhatIfHeader(result.Baseline.Name, result.Baseline.FactorTable))
	sb.WriteString("\n\n")
	sb.WriteString(RenderFootprintComparison(result.Baseline.MonthlyTotal, result.Modified.MonthlyTotal, opts))
	sb.WriteString("\n\n")

	if len(result.Changes) > 0 {
		sb.WriteString(HeaderStyle.Render("Changed Inputs:"))
		sb.WriteString("\n")
		sb.WriteString(strings.Repeat("-", deltaSeparatorLen))
		sb.WriteString("\n")
		for _, c := range result.Changes {
			sb.WriteString(fmt.Sprintf("  %s: %s %s %s\n",
				LabelStyle.Render(c.Field),
				ValueStyle.Render(c.OriginalValue),
				SubtleStyle.Render(IconArrowRight),
				ValueStyle.Render(c.NewValue)))
		}
		sb.WriteString("\n")
	}

	sb.WriteString(RenderCategoryDeltas(result.Deltas, opts))

	if width > 0 {
		return lipgloss.NewStyle().MaxWidth(width).Render(sb.String())
	}
	return sb.String()
}

// RenderWhatIfHelp renders the keyboard shortcut help text.
func RenderWhatIfHelp() string {
	shortcuts := []string{
		"↑/↓: Navigate",
		"Enter: Edit",
		"←/→: Cycle choice",
		"r: Reset",
		"Esc: Cancel edit",
		"q: Quit",
	}
	return SubtleStyle.Render(strings.Join(shortcuts, " | "))
}

// RenderLoadingIndicator renders a loading indicator for recalculation.
func RenderLoadingIndicator() string {
	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorSpinner).
		Bold(true)

	return loadingStyle.Render("Recalculating footprint...")
}
