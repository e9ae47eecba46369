// Package model defines the dashboard datasets and the loosely-typed values they carry.
package model

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Value is a dataset cell that may hold a number, a non-numeric literal, or nothing.
// The raw literal is kept so non-numeric input can be shown unchanged.
type Value struct {
	raw     string
	num     float64
	numeric bool
	present bool
}

// Num returns a numeric Value.
func Num(f float64) Value {
	return Value{
		raw:     strconv.FormatFloat(f, 'f', -1, 64),
		num:     f,
		numeric: true,
		present: true,
	}
}

// Text returns a Value parsed from a string literal. Blank strings are empty.
func Text(s string) Value {
	if strings.TrimSpace(s) == "" {
		return Value{}
	}
	v := Value{raw: s, present: true}
	if f, ok := parseFinite(s); ok {
		v.num = f
		v.numeric = true
	}
	return v
}

// IsEmpty reports whether the cell was null, absent, or blank.
func (v Value) IsEmpty() bool { return !v.present }

// Float returns the numeric interpretation and whether one exists.
func (v Value) Float() (float64, bool) {
	return v.num, v.numeric
}

// FloatOr returns the numeric interpretation or def.
func (v Value) FloatOr(def float64) float64 {
	if !v.numeric {
		return def
	}
	return v.num
}

// String returns the raw literal.
func (v Value) String() string { return v.raw }

// UnmarshalJSON accepts numbers, strings, booleans, and null.
func (v *Value) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*v = Value{}
		return nil
	}

	switch b[0] {
	case '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Text(s)
		return nil
	case '[', '{':
		// Composite values are kept as literals.
		*v = Value{raw: string(b), present: true}
		return nil
	}

	s := string(b)
	if f, ok := parseFinite(s); ok {
		*v = Value{raw: s, num: f, numeric: true, present: true}
		return nil
	}
	*v = Value{raw: s, present: true}
	return nil
}

// MarshalJSON writes numbers as JSON numbers and everything else as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if !v.present {
		return []byte("null"), nil
	}
	if v.numeric {
		return []byte(strconv.FormatFloat(v.num, 'f', -1, 64)), nil
	}
	return json.Marshal(v.raw)
}

func parseFinite(s string) (float64, bool) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
