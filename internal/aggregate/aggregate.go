// Package aggregate collapses per-organization rows into a single
// all-organizations view.
package aggregate

import (
	"github.com/sells-group/care-dashboard/internal/model"
)

// Performance groups rows by KPI in first-appearance order and averages
// Current, Benchmark, Last_3_Mo_Avg and YTD_Avg across each group.
// Single-row groups keep their source values.
func Performance(rows []model.PerformanceMetric) []model.PerformanceMetric {
	var order []model.Label
	groups := make(map[model.Label][]model.PerformanceMetric)
	for _, r := range rows {
		if _, ok := groups[r.KPI]; !ok {
			order = append(order, r.KPI)
		}
		groups[r.KPI] = append(groups[r.KPI], r)
	}

	out := make([]model.PerformanceMetric, 0, len(order))
	for _, kpi := range order {
		g := groups[kpi]
		out = append(out, model.PerformanceMetric{
			KPI:        kpi,
			Current:    mean(g, func(r model.PerformanceMetric) model.Value { return r.Current }),
			Benchmark:  mean(g, func(r model.PerformanceMetric) model.Value { return r.Benchmark }),
			Last3MoAvg: mean(g, func(r model.PerformanceMetric) model.Value { return r.Last3MoAvg }),
			YTDAvg:     mean(g, func(r model.PerformanceMetric) model.Value { return r.YTDAvg }),
		})
	}
	return out
}

// Programs groups rows by program code (see model.ProgramCode), sums the
// counts, and recomputes Completion_Pct from the sums (0 when nothing is
// eligible). The program label and benchmark of the first contributing row
// are carried over unchanged.
func Programs(rows []model.ProgramOutcome) []model.ProgramOutcome {
	type acc struct {
		first     model.ProgramOutcome
		eligible  float64
		engaged   float64
		completed float64
	}

	var order []string
	groups := make(map[string]*acc)
	for _, r := range rows {
		code := model.ProgramCode(r.Program.String())
		a, ok := groups[code]
		if !ok {
			a = &acc{first: r}
			groups[code] = a
			order = append(order, code)
		}
		a.eligible += r.Eligible.FloatOr(0)
		a.engaged += r.Engaged.FloatOr(0)
		a.completed += r.Completed.FloatOr(0)
	}

	out := make([]model.ProgramOutcome, 0, len(order))
	for _, code := range order {
		a := groups[code]
		out = append(out, model.ProgramOutcome{
			Program:       a.first.Program,
			Eligible:      model.Num(a.eligible),
			Engaged:       model.Num(a.engaged),
			Completed:     model.Num(a.completed),
			CompletionPct: model.Num(CompletionPct(a.completed, a.eligible)),
			Benchmark:     a.first.Benchmark,
		})
	}
	return out
}

// CompletionPct returns completed/eligible*100, or 0 when eligible is 0.
func CompletionPct(completed, eligible float64) float64 {
	if eligible == 0 {
		return 0
	}
	return completed / eligible * 100
}

func mean(rows []model.PerformanceMetric, col func(model.PerformanceMetric) model.Value) model.Value {
	if len(rows) == 1 {
		return col(rows[0])
	}
	sum := 0.0
	n := 0
	for _, r := range rows {
		if f, ok := col(r).Float(); ok {
			sum += f
			n++
		}
	}
	if n == 0 {
		return model.Value{}
	}
	return model.Num(sum / float64(n))
}
