package greenops

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer is the locale-aware message printer for number formatting.
// Uses English locale for consistent thousand separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// FormatNumber formats an integer with thousand separators.
// Example: FormatNumber(18248) returns "18,248".
func FormatNumber(n int64) string {
	return printer.Sprintf("%d", n)
}

// FormatFloat formats f with the given number of decimals and thousand separators.
// Example: FormatFloat(1234.567, 2) returns "1,234.57".
func FormatFloat(f float64, precision int) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	if precision < 0 {
		precision = 0
	}

	// Round half away from zero before formatting; strconv rounds half to even.
	const base = 10
	multiplier := math.Pow(base, float64(precision))
	rounded := math.Round(math.Abs(f)*multiplier) / multiplier

	formatted := strconv.FormatFloat(rounded, 'f', precision, 64)
	intPart, frac, hasFrac := strings.Cut(formatted, ".")

	n, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		// Too large for int64; fall back to the ungrouped form.
		return strconv.FormatFloat(f, 'f', precision, 64)
	}

	out := FormatNumber(n)
	if hasFrac {
		out += "." + frac
	}
	if f < 0 && strings.Trim(formatted, "0.") != "" {
		out = "-" + out
	}
	return out
}

// FormatLarge formats large numbers with abbreviated notation.
//
// Values below LargeNumberThreshold use comma-separated integers, values at or above
// it use "~X.X million" and values at or above BillionThreshold use "~X.X billion".
func FormatLarge(n float64) string {
	if n >= BillionThreshold {
		return fmt.Sprintf("~%.1f billion", n/BillionThreshold)
	}
	if n >= LargeNumberThreshold {
		return fmt.Sprintf("~%.1f million", n/LargeNumberThreshold)
	}
	return FormatNumber(int64(math.Round(n)))
}

// FormatCarbon renders a kg CO2e value in the requested unit, e.g. "2.2 t CO2e".
func FormatCarbon(kg float64, unit string, precision int) (string, error) {
	v, err := FromKg(kg, unit)
	if err != nil {
		return "", err
	}
	return FormatFloat(v, precision) + " " + UnitLabel(unit), nil
}
