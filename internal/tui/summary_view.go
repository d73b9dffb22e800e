package tui

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"

	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/greenops"
)

// RenderOptions controls units and rounding of rendered quantities.
type RenderOptions struct {
	Unit      string
	Precision int
}

// DefaultRenderOptions renders kilograms with one decimal.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{Unit: "kg", Precision: 1}
}

// FormatQuantity renders a signed kg CO2e amount in the configured unit, e.g.
// "-2.1 t CO2e". Unknown units fall back to kilograms.
func (o RenderOptions) FormatQuantity(kg float64) string {
	return o.FormatValue(kg) + " " + greenops.UnitLabel(o.unit())
}

// FormatValue renders a kg CO2e amount in the configured unit without a unit label.
func (o RenderOptions) FormatValue(kg float64) string {
	v, err := greenops.FromKg(math.Abs(kg), o.unit())
	if err != nil {
		return greenops.FormatFloat(kg, o.Precision)
	}
	return greenops.FormatFloat(math.Copysign(v, kg), o.Precision)
}

func (o RenderOptions) unit() string {
	if greenops.IsRecognizedUnit(o.Unit) {
		return o.Unit
	}
	return "kg"
}

// RenderFootprintSummary renders a boxed summary of one report: totals, the
// national comparison, category shares and equivalencies.
func RenderFootprintSummary(report *engine.Report, opts RenderOptions, width int) string {
	if report == nil {
		return InfoStyle.Render("No results to display.")
	}

	var content strings.Builder

	title := "CARBON FOOTPRINT"
	if report.Name != "" {
		title += " · " + report.Name
	}
	content.WriteString(HeaderStyle.Render(title))
	content.WriteString("\n")

	content.WriteString(LabelStyle.Render("Monthly: "))
	content.WriteString(ValueStyle.Render(opts.FormatQuantity(report.MonthlyTotal)))
	content.WriteString(LabelStyle.Render("    Annual: "))
	content.WriteString(ValueStyle.Render(opts.FormatQuantity(report.AnnualTotal)))
	content.WriteString(LabelStyle.Render("    National avg: "))
	content.WriteString(ValueStyle.Render(opts.FormatQuantity(report.Comparison.NationalAnnualTotal)))
	content.WriteString("\n")

	if report.PerCapitaAnnual > 0 {
		content.WriteString(LabelStyle.Render("Per person: "))
		content.WriteString(ValueStyle.Render(opts.FormatQuantity(report.PerCapitaAnnual)))
		content.WriteString(LabelStyle.Render(" per year    Members: "))
		content.WriteString(ValueStyle.Render(strconv.Itoa(report.Input.Members)))
		content.WriteString("\n")
	}

	monthly := report.Result.Monthly
	parts := make([]string, 0, len(footprint.Categories()))
	for _, c := range footprint.Categories() {
		parts = append(parts, fmt.Sprintf("%s: %s (%.1f%%)",
			c, opts.FormatValue(monthly.Value(c)), monthly.Share(c)*100)) //nolint:mnd // Percentage.
	}
	content.WriteString(LabelStyle.Render(strings.Join(parts, "  ")))

	if !report.Equivalencies.IsEmpty {
		content.WriteString("\n")
		content.WriteString(SubtleStyle.Render(report.Equivalencies.DisplayText))
	}

	content.WriteString("\n")
	content.WriteString(SubtleStyle.Render(fmt.Sprintf("Factors: %s v%s",
		report.FactorTable, report.FactorVersion)))

	if width <= borderPadding {
		return BoxStyle.Render(content.String())
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}

// NewBreakdownTable creates a table with one row per category: monthly and annual
// values, the national annual reference, the share of the total and the status.
func NewBreakdownTable(report *engine.Report, opts RenderOptions, height int) table.Model {
	columns := []table.Column{
		{Title: "Category", Width: 12}, //nolint:mnd // Column width.
		{Title: "Monthly", Width: 12},  //nolint:mnd // Column width.
		{Title: "Annual", Width: 12},   //nolint:mnd // Column width.
		{Title: "National", Width: 12}, //nolint:mnd // Column width.
		{Title: "Share", Width: 8},     //nolint:mnd // Column width.
		{Title: "Status", Width: 8},    //nolint:mnd // Column width.
	}

	var rows []table.Row
	if report != nil {
		monthly := report.Result.Monthly
		annual := report.Comparison.UserAnnual
		national := report.Comparison.NationalAnnual
		for _, c := range footprint.Categories() {
			rows = append(rows, table.Row{
				string(c),
				opts.FormatValue(monthly.Value(c)),
				opts.FormatValue(annual.Value(c)),
				opts.FormatValue(national.Value(c)),
				fmt.Sprintf("%.1f%%", monthly.Share(c)*100), //nolint:mnd // Percentage.
				statusLabel(annual.Value(c), national.Value(c)),
			})
		}
	}

	return newStyledTable(columns, rows, height)
}

// NewBatchTable creates a table with one row per household of a batch.
func NewBatchTable(items []engine.BatchItem, opts RenderOptions, height int) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},           //nolint:mnd // Column width.
		{Title: "Household", Width: 24},  //nolint:mnd // Column width.
		{Title: "Monthly", Width: 12},    //nolint:mnd // Column width.
		{Title: "Annual", Width: 12},     //nolint:mnd // Column width.
		{Title: "Per person", Width: 12}, //nolint:mnd // Column width.
		{Title: "Status", Width: 30},     //nolint:mnd // Column width.
	}

	rows := make([]table.Row, len(items))
	for i, it := range items {
		name := it.Name
		if name == "" {
			name = fmt.Sprintf("household %d", it.Index+1)
		}
		if it.Report == nil {
			msg := "error"
			if it.Err != nil {
				msg = it.Err.Error()
			}
			rows[i] = table.Row{strconv.Itoa(it.Index + 1), name, "-", "-", "-", msg}
			continue
		}
		perCapita := "-"
		if it.Report.PerCapitaAnnual > 0 {
			perCapita = opts.FormatValue(it.Report.PerCapitaAnnual)
		}
		rows[i] = table.Row{
			strconv.Itoa(it.Index + 1),
			name,
			opts.FormatValue(it.Report.MonthlyTotal),
			opts.FormatValue(it.Report.AnnualTotal),
			perCapita,
			statusLabel(it.Report.AnnualTotal, it.Report.Comparison.NationalAnnualTotal),
		}
	}

	return newStyledTable(columns, rows, height)
}

func newStyledTable(columns []table.Column, rows []table.Row, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

func statusLabel(value, reference float64) string {
	if value > reference {
		return IconArrowUp + " above"
	}
	return IconArrowDown + " below"
}

// RenderRecommendations renders one line per category with its message and,
// for categories above average, the tip.
func RenderRecommendations(recs []footprint.Recommendation) string {
	if len(recs) == 0 {
		return InfoStyle.Render("No recommendations.")
	}

	var sb strings.Builder
	sb.WriteString(HeaderStyle.Render("Recommendations"))
	sb.WriteString("\n")
	for _, r := range recs {
		style := BelowStyle
		icon := IconArrowDown
		if r.AboveAverage {
			style = AboveStyle
			icon = IconArrowUp
		}
		sb.WriteString(fmt.Sprintf("  %s %s %s\n",
			style.Render(icon), LabelStyle.Render(string(r.Category)+":"), r.Message))
		if r.AboveAverage && r.Tip != "" {
			sb.WriteString("      ")
			sb.WriteString(SubtleStyle.Render(r.Tip))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// RenderBatchSummary renders the totals of a batch estimate.
func RenderBatchSummary(s engine.BatchSummary, opts RenderOptions, width int) string {
	var content strings.Builder
	content.WriteString(HeaderStyle.Render("BATCH SUMMARY"))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Households: "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(s.Count)))
	if s.Failed > 0 {
		content.WriteString(LabelStyle.Render("    Failed: "))
		content.WriteString(ErrorStyle.Render(strconv.Itoa(s.Failed)))
	}
	content.WriteString(LabelStyle.Render("    Above national: "))
	content.WriteString(ValueStyle.Render(strconv.Itoa(s.AboveNational)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Total annual: "))
	content.WriteString(ValueStyle.Render(opts.FormatQuantity(s.TotalAnnual)))
	content.WriteString(LabelStyle.Render("    Mean annual: "))
	content.WriteString(ValueStyle.Render(opts.FormatQuantity(s.MeanAnnual)))

	if width <= borderPadding {
		return BoxStyle.Render(content.String())
	}
	return BoxStyle.Width(width - borderPadding).Render(content.String())
}
