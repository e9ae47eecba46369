package render

import (
	"github.com/sells-group/care-dashboard/internal/aggregate"
	"github.com/sells-group/care-dashboard/internal/format"
	"github.com/sells-group/care-dashboard/internal/model"
)

// ProgramOrder is the canonical program order. Other programs are not shown.
var ProgramOrder = []string{"TCM", "CCM", "RPM", "AWV", "ACP"}

// ProgramRow is one formatted program outcomes row.
type ProgramRow struct {
	Program        string          `json:"program"`
	Eligible       string          `json:"eligible"`
	Engaged        string          `json:"engaged"`
	Completed      string          `json:"completed"`
	Completion     string          `json:"completion"`
	CompletionTone string          `json:"completion_tone"`
	Benchmark      string          `json:"benchmark"`
	Variance       format.Variance `json:"variance"`
}

// ProgramRows returns the known programs in canonical order. When a code
// appears more than once the last row wins.
func ProgramRows(rows []model.ProgramOutcome) []ProgramRow {
	byCode := make(map[string]model.ProgramOutcome, len(rows))
	for _, r := range rows {
		byCode[model.ProgramCode(r.Program.String())] = r
	}

	out := []ProgramRow{}
	for _, code := range ProgramOrder {
		r, ok := byCode[code]
		if !ok {
			continue
		}
		out = append(out, programRow(r))
	}
	return out
}

func programRow(r model.ProgramOutcome) ProgramRow {
	completion := completionValue(r)
	row := ProgramRow{
		Program:    r.Program.String(),
		Eligible:   format.Count(r.Eligible),
		Engaged:    format.Count(r.Engaged),
		Completed:  format.Count(r.Completed),
		Completion: format.Percent(completion),
		Benchmark:  format.WholePercent(r.Benchmark),
		Variance:   format.PointVariance(completion, r.Benchmark),
	}

	c, okC := completion.Float()
	b, okB := r.Benchmark.Float()
	if okC && okB {
		row.CompletionTone = format.ToneBad
		if c >= b {
			row.CompletionTone = format.ToneGood
		}
	}
	return row
}

// completionValue returns the given Completion_Pct, deriving it from the
// counts when the column is blank.
func completionValue(r model.ProgramOutcome) model.Value {
	if !r.CompletionPct.IsEmpty() {
		return r.CompletionPct
	}
	completed, okC := r.Completed.Float()
	eligible, okE := r.Eligible.Float()
	if !okC || !okE {
		return model.Value{}
	}
	return model.Num(aggregate.CompletionPct(completed, eligible))
}
