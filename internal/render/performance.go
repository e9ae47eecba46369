// Package render builds the display rows of the dashboard and writes them as HTML.
package render

import (
	"github.com/sells-group/care-dashboard/internal/format"
	"github.com/sells-group/care-dashboard/internal/model"
)

// Section titles of the performance table.
const (
	SectionUtilization     = "UTILIZATION"
	SectionClinicalQuality = "CLINICAL QUALITY"
)

// UtilizationKPIs are shown first, in this order, when present.
var UtilizationKPIs = []string{"Readmission Rate (%)", "INP Admits/1,000", "ER Admits/1,000"}

// MetricRow is one formatted performance table row.
type MetricRow struct {
	KPI        string          `json:"kpi"`
	Last3MoAvg string          `json:"last_3_mo_avg"`
	Current    string          `json:"current"`
	Benchmark  string          `json:"benchmark"`
	Variance   format.Variance `json:"variance"`
	YTDAvg     string          `json:"ytd_avg"`
}

// Section is a titled block of performance rows.
type Section struct {
	Title string      `json:"title"`
	Rows  []MetricRow `json:"rows"`
}

// PerformanceSections sorts rows into the UTILIZATION and CLINICAL QUALITY
// sections. Both sections are always returned. When a KPI repeats, the last
// row wins but keeps the position of the first.
func PerformanceSections(rows []model.PerformanceMetric) []Section {
	var order []string
	byKPI := make(map[string]model.PerformanceMetric, len(rows))
	for _, r := range rows {
		kpi := r.KPI.String()
		if _, ok := byKPI[kpi]; !ok {
			order = append(order, kpi)
		}
		byKPI[kpi] = r
	}

	utilization := Section{Title: SectionUtilization, Rows: []MetricRow{}}
	isUtilization := make(map[string]bool, len(UtilizationKPIs))
	for _, kpi := range UtilizationKPIs {
		isUtilization[kpi] = true
		if r, ok := byKPI[kpi]; ok {
			utilization.Rows = append(utilization.Rows, metricRow(r))
		}
	}

	clinical := Section{Title: SectionClinicalQuality, Rows: []MetricRow{}}
	for _, kpi := range order {
		if isUtilization[kpi] {
			continue
		}
		clinical.Rows = append(clinical.Rows, metricRow(byKPI[kpi]))
	}

	return []Section{utilization, clinical}
}

func metricRow(r model.PerformanceMetric) MetricRow {
	kpi := r.KPI.String()
	return MetricRow{
		KPI:        kpi,
		Last3MoAvg: format.Metric(kpi, r.Last3MoAvg),
		Current:    format.Metric(kpi, r.Current),
		Benchmark:  format.Metric(kpi, r.Benchmark),
		Variance:   format.KPIVariance(kpi, r.Current, r.Benchmark),
		YTDAvg:     format.Metric(kpi, r.YTDAvg),
	}
}
