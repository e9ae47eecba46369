package format

import (
	"fmt"

	"github.com/sells-group/care-dashboard/internal/model"
)

// Tone classes used by the templates.
const (
	ToneGood = "good"
	ToneBad  = "bad"
)

const (
	arrowUp   = "↑"
	arrowDown = "↓"
)

var lowerIsBetter = map[string]bool{
	"Readmission Rate (%)": true,
	"INP Admits/1,000":     true,
	"ER Admits/1,000":      true,
}

// LowerIsBetter reports whether a falling value is an improvement for the KPI.
func LowerIsBetter(kpi string) bool {
	return lowerIsBetter[kpi]
}

// Variance is a signed, favorable-positive difference against a benchmark.
type Variance struct {
	Delta float64 `json:"delta"`
	Text  string  `json:"text"`
	Arrow string  `json:"arrow"`
	Tone  string  `json:"tone"`
}

// IsZero reports whether no variance could be computed.
func (v Variance) IsZero() bool { return v.Text == "" }

// Favorable reports whether the variance is an improvement.
func (v Variance) Favorable() bool { return v.Tone == ToneGood }

// String renders the text followed by the arrow, or "" for an empty variance.
func (v Variance) String() string {
	if v.IsZero() {
		return ""
	}
	return v.Text + " " + v.Arrow
}

// KPIVariance compares current against benchmark for a performance KPI.
// The delta is normalized so positive is favorable, and every favorable
// variance carries ↓ whatever the KPI's polarity.
func KPIVariance(kpi string, current, benchmark model.Value) Variance {
	c, okC := current.Float()
	b, okB := benchmark.Float()
	if !okC || !okB {
		return Variance{}
	}
	delta := c - b
	if LowerIsBetter(kpi) {
		delta = b - c
	}
	return newVariance(delta, arrowDown, arrowUp)
}

// PointVariance compares a higher-is-better percentage against its benchmark.
func PointVariance(current, benchmark model.Value) Variance {
	c, okC := current.Float()
	b, okB := benchmark.Float()
	if !okC || !okB {
		return Variance{}
	}
	return newVariance(c-b, arrowUp, arrowDown)
}

func newVariance(delta float64, favorableArrow, unfavorableArrow string) Variance {
	v := Variance{Delta: delta}
	if delta >= 0 {
		v.Tone = ToneGood
		v.Arrow = favorableArrow
		v.Text = fmt.Sprintf("+%.1f pts", delta)
	} else {
		v.Tone = ToneBad
		v.Arrow = unfavorableArrow
		v.Text = fmt.Sprintf("%.1f pts", delta)
	}
	return v
}
