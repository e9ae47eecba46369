package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtilizationEntry_Programs(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  Tags
	}{
		{name: "array", input: `{"Programs":["TCM","RPM"]}`, want: Tags{"TCM", "RPM"}},
		{name: "comma string", input: `{"Programs":"TCM, CCM ,,SDOH"}`, want: Tags{"TCM", "CCM", "SDOH"}},
		{name: "empty array", input: `{"Programs":[]}`, want: Tags{}},
		{name: "null", input: `{"Programs":null}`, want: nil},
		{name: "absent", input: `{}`, want: nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var e UtilizationEntry
			require.NoError(t, json.Unmarshal([]byte(tt.input), &e))
			assert.Equal(t, tt.want, e.Programs)
		})
	}
}

func TestLabel_NonStringScalars(t *testing.T) {
	t.Parallel()

	var e UtilizationEntry
	input := `{"Patient":"Jane Doe","Org":null,"ICD10":123,"Date":"2025-03-01"}`
	require.NoError(t, json.Unmarshal([]byte(input), &e))

	assert.Equal(t, Label("Jane Doe"), e.Patient)
	assert.Equal(t, Label(""), e.Org)
	assert.Equal(t, "123", e.ICD10.String())
	assert.Equal(t, "2025-03-01", e.Date.String())
}

func TestSplitTags(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Tags{"A", "B"}, SplitTags(" A,B , "))
	assert.Nil(t, SplitTags(""))
}

func TestProgramCode(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "TCM", ProgramCode("TCM"))
	assert.Equal(t, "TCM", ProgramCode(" tcm "))
	assert.Equal(t, "PILOT BH", ProgramCode("Pilot BH"))
	assert.Equal(t, "", ProgramCode("  "))
}
