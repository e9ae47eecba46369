package model

import (
	"bytes"
	"encoding/json"
	"strings"
)

// PerformanceMetric is one (Org, KPI) row of performance_metrics.json.
type PerformanceMetric struct {
	Org        Label `json:"Org"`
	KPI        Label `json:"KPI"`
	Current    Value `json:"Current"`
	Benchmark  Value `json:"Benchmark"`
	Last3MoAvg Value `json:"Last_3_Mo_Avg"`
	YTDAvg     Value `json:"YTD_Avg"`
}

// ProgramOutcome is one (Org, Program) row of program_outcomes.json.
// Completed <= Engaged <= Eligible is expected but not enforced.
type ProgramOutcome struct {
	Org           Label `json:"Org"`
	Program       Label `json:"Program"`
	Eligible      Value `json:"Eligible"`
	Engaged       Value `json:"Engaged"`
	Completed     Value `json:"Completed"`
	CompletionPct Value `json:"Completion_Pct"`
	Benchmark     Value `json:"Benchmark"`
}

// UtilizationEntry is one clinical event of utilization_log.json.
type UtilizationEntry struct {
	Patient   Label `json:"Patient"`
	Org       Label `json:"Org"`
	Event     Label `json:"Event"`
	Date      Label `json:"Date"`
	Facility  Label `json:"Facility"`
	Diagnosis Label `json:"Diagnosis"`
	ICD10     Label `json:"ICD10"`
	Programs  Tags  `json:"Programs"`
}

// Label is a text column. Non-string JSON scalars are kept as their literal; null is empty.
type Label string

// UnmarshalJSON implements json.Unmarshaler.
func (l *Label) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*l = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*l = Label(s)
		return nil
	}
	*l = Label(b)
	return nil
}

// String returns the label text.
func (l Label) String() string { return string(l) }

// Tags is the program code list of a log entry. It decodes from a JSON array
// or a comma-separated string.
type Tags []string

// UnmarshalJSON implements json.Unmarshaler.
func (t *Tags) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*t = nil
		return nil
	}
	if b[0] == '[' {
		var raw []Label
		if err := json.Unmarshal(b, &raw); err != nil {
			return err
		}
		out := make(Tags, 0, len(raw))
		for _, r := range raw {
			out = append(out, string(r))
		}
		*t = out
		return nil
	}
	var s Label
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	*t = SplitTags(string(s))
	return nil
}

// SplitTags splits a comma-separated tag string, dropping blanks.
func SplitTags(s string) Tags {
	var out Tags
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// ProgramCode is the matching key of a program name or tag: trimmed and
// upper-cased, so "tcm " and "TCM" are the same program.
func ProgramCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
