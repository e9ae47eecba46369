// Package format turns dataset values into display strings.
package format

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/sells-group/care-dashboard/internal/model"
)

var printer = message.NewPrinter(language.AmericanEnglish)

// Percent renders v with one decimal and a percent sign.
// Empty values render as "" and non-numeric values pass through unchanged.
func Percent(v model.Value) string {
	if v.IsEmpty() {
		return ""
	}
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	return fmt.Sprintf("%.1f%%", f)
}

// WholePercent renders v as a whole percentage, e.g. "75%".
func WholePercent(v model.Value) string {
	if v.IsEmpty() {
		return ""
	}
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	return fmt.Sprintf("%.0f%%", f)
}

// Count renders integers with thousands grouping and everything else with one decimal.
func Count(v model.Value) string {
	if v.IsEmpty() {
		return ""
	}
	f, ok := v.Float()
	if !ok {
		return v.String()
	}
	if isWhole(f) {
		return printer.Sprintf("%d", int64(f))
	}
	return printer.Sprintf("%.1f", f)
}

// IsPercentKPI reports whether a KPI is displayed as a percentage.
// Per-1,000 admit rates carry a % in some exports but are counts.
func IsPercentKPI(kpi string) bool {
	return strings.Contains(kpi, "%") && !strings.Contains(kpi, "Admits")
}

// Metric formats v according to the KPI's display routing.
func Metric(kpi string, v model.Value) string {
	if IsPercentKPI(kpi) {
		return Percent(v)
	}
	return Count(v)
}

func isWhole(f float64) bool {
	return f == math.Trunc(f) && math.Abs(f) < 1e15
}
