package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"github.com/rshade/footprint/internal/config"
	"github.com/rshade/footprint/internal/engine"
	"github.com/rshade/footprint/internal/footprint"
	"github.com/rshade/footprint/internal/tui"
)

const (
	tabPadding         = 2
	defaultBoxWidth    = 76
	minBoxWidth        = 40
	layoutWidthPercent = 0.9
	tableHeightPadding = 1
)

// isWriterTerminal reports whether w is a terminal. Anything but an *os.File,
// such as a bytes.Buffer in tests, is not.
func isWriterTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return isTerminal(f)
	}
	return false
}

// getTerminalWidth returns the terminal width in columns for w, falling back to
// the default box width when it cannot be determined.
func getTerminalWidth(w io.Writer) int {
	if f, ok := w.(*os.File); ok {
		width, _, err := term.GetSize(int(f.Fd()))
		if err == nil && width > 0 {
			return width
		}
	}
	return defaultBoxWidth
}

// calculateBoxWidth uses most of the terminal, within [minBoxWidth, defaultBoxWidth].
func calculateBoxWidth(termWidth int) int {
	boxWidth := int(float64(termWidth) * layoutWidthPercent)
	boxWidth = min(boxWidth, defaultBoxWidth)
	return max(boxWidth, minBoxWidth)
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// renderReport renders a single household report.
func renderReport(w io.Writer, format string, report *engine.Report, opts tui.RenderOptions) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, report)
	case config.OutputFormatNDJSON:
		return json.NewEncoder(w).Encode(report)
	}

	if isWriterTerminal(w) {
		return renderStyledReport(w, report, opts)
	}
	return renderPlainReport(w, report, opts)
}

func renderStyledReport(w io.Writer, report *engine.Report, opts tui.RenderOptions) error {
	width := calculateBoxWidth(getTerminalWidth(w))
	tbl := tui.NewBreakdownTable(report, opts, len(footprint.Categories())+tableHeightPadding)
	tbl.Blur()

	_, err := fmt.Fprintf(w, "%s\n\n%s\n\n%s",
		tui.RenderFootprintSummary(report, opts, width),
		tbl.View(),
		tui.RenderRecommendations(report.Recommendations))
	return err
}

func renderPlainReport(w io.Writer, report *engine.Report, opts tui.RenderOptions) error {
	if report.Name != "" {
		fmt.Fprintf(w, "Household: %s\n", report.Name)
	}
	fmt.Fprintf(w, "Monthly total:  %s\n", opts.FormatQuantity(report.MonthlyTotal))
	fmt.Fprintf(w, "Annual total:   %s\n", opts.FormatQuantity(report.AnnualTotal))
	fmt.Fprintf(w, "National avg:   %s\n", opts.FormatQuantity(report.Comparison.NationalAnnualTotal))
	if report.PerCapitaAnnual > 0 {
		fmt.Fprintf(w, "Per person:     %s per year\n", opts.FormatQuantity(report.PerCapitaAnnual))
	}
	if !report.Equivalencies.IsEmpty {
		fmt.Fprintf(w, "Equivalent to:  %s\n", report.Equivalencies.DisplayText)
	}
	fmt.Fprintf(w, "Factors:        %s v%s\n\n", report.FactorTable, report.FactorVersion)

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "CATEGORY\tMONTHLY\tANNUAL\tNATIONAL\tSHARE\tSTATUS")
	monthly := report.Result.Monthly
	annual := report.Comparison.UserAnnual
	national := report.Comparison.NationalAnnual
	for _, c := range footprint.Categories() {
		status := "below"
		if annual.Value(c) > national.Value(c) {
			status = "above"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f%%\t%s\n",
			c,
			opts.FormatValue(monthly.Value(c)),
			opts.FormatValue(annual.Value(c)),
			opts.FormatValue(national.Value(c)),
			monthly.Share(c)*100, //nolint:mnd // Percentage.
			status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Recommendations:")
	for _, r := range report.Recommendations {
		fmt.Fprintf(w, "  %s: %s\n", r.Category, r.Message)
		if r.AboveAverage && r.Tip != "" {
			fmt.Fprintf(w, "    Tip: %s\n", r.Tip)
		}
	}
	return nil
}

// batchRecord is the JSON shape of one batch item.
type batchRecord struct {
	Index  int            `json:"index"`
	Name   string         `json:"name,omitempty"`
	Report *engine.Report `json:"report,omitempty"`
	Error  string         `json:"error,omitempty"`
}

func toBatchRecord(it engine.BatchItem) batchRecord {
	rec := batchRecord{Index: it.Index, Name: it.Name, Report: it.Report}
	if it.Err != nil {
		rec.Error = it.Err.Error()
	}
	return rec
}

// renderBatch renders the results of a batch estimate.
func renderBatch(
	w io.Writer,
	format string,
	items []engine.BatchItem,
	summary engine.BatchSummary,
	opts tui.RenderOptions,
) error {
	switch format {
	case config.OutputFormatJSON:
		records := make([]batchRecord, len(items))
		for i, it := range items {
			records[i] = toBatchRecord(it)
		}
		return writeJSON(w, struct {
			Households []batchRecord       `json:"households"`
			Summary    engine.BatchSummary `json:"summary"`
		}{records, summary})
	case config.OutputFormatNDJSON:
		enc := json.NewEncoder(w)
		for _, it := range items {
			if err := enc.Encode(toBatchRecord(it)); err != nil {
				return err
			}
		}
		return nil
	}

	if isWriterTerminal(w) {
		tbl := tui.NewBatchTable(items, opts, len(items)+tableHeightPadding)
		tbl.Blur()
		width := calculateBoxWidth(getTerminalWidth(w))
		_, err := fmt.Fprintf(w, "%s\n\n%s\n", tbl.View(), tui.RenderBatchSummary(summary, opts, width))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, tabPadding, ' ', 0)
	fmt.Fprintln(tw, "#\tHOUSEHOLD\tMONTHLY\tANNUAL\tPER PERSON\tSTATUS")
	for _, it := range items {
		name := it.Name
		if name == "" {
			name = fmt.Sprintf("household %d", it.Index+1)
		}
		if it.Report == nil {
			fmt.Fprintf(tw, "%d\t%s\t-\t-\t-\terror: %v\n", it.Index+1, name, it.Err)
			continue
		}
		perCapita := "-"
		if it.Report.PerCapitaAnnual > 0 {
			perCapita = opts.FormatValue(it.Report.PerCapitaAnnual)
		}
		status := "below"
		if it.Report.AnnualTotal > it.Report.Comparison.NationalAnnualTotal {
			status = "above"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n", it.Index+1, name,
			opts.FormatValue(it.Report.MonthlyTotal), opts.FormatValue(it.Report.AnnualTotal), perCapita, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Households: %d  Failed: %d  Above national: %d\n", summary.Count, summary.Failed, summary.AboveNational)
	fmt.Fprintf(w, "Total annual: %s  Mean annual: %s\n",
		opts.FormatQuantity(summary.TotalAnnual), opts.FormatQuantity(summary.MeanAnnual))
	return nil
}

// renderWhatIf renders a what-if comparison.
func renderWhatIf(w io.Writer, format string, result *engine.WhatIfResult, opts tui.RenderOptions) error {
	switch format {
	case config.OutputFormatJSON:
		return writeJSON(w, result)
	case config.OutputFormatNDJSON:
		return json.NewEncoder(w).Encode(result)
	}

	if isWriterTerminal(w) {
		_, err := fmt.Fprintln(w, tui.RenderWhatIfResultView(result, opts, getTerminalWidth(w)))
		return err
	}

	fmt.Fprintln(w, "What-If Footprint Analysis")
	fmt.Fprintln(w, "==========================")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Baseline:  %s/mo\n", opts.FormatQuantity(result.Baseline.MonthlyTotal))
	fmt.Fprintf(w, "Modified:  %s/mo\n", opts.FormatQuantity(result.Modified.MonthlyTotal))
	fmt.Fprintf(w, "Change:    %s/mo\n", signedQuantity(opts, result.TotalChange))
	fmt.Fprintln(w)

	if len(result.Changes) > 0 {
		fmt.Fprintln(w, "Changed Inputs:")
		fmt.Fprintln(w, "---------------")
		for _, c := range result.Changes {
			fmt.Fprintf(w, "  %s: %s -> %s\n", c.Field, c.OriginalValue, c.NewValue)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, "By Category:")
	fmt.Fprintln(w, "------------")
	for _, d := range result.Deltas {
		fmt.Fprintf(w, "  %s: %s -> %s (%s)\n", d.Category,
			opts.FormatValue(d.Baseline), opts.FormatValue(d.Modified), signedQuantity(opts, d.Change))
	}
	return nil
}

// signedQuantity prefixes increases that do not round to zero with "+".
func signedQuantity(opts tui.RenderOptions, kg float64) string {
	s := opts.FormatQuantity(kg)
	if kg > 0 && strings.ContainsAny(opts.FormatValue(kg), "123456789") {
		return "+" + s
	}
	return s
}
