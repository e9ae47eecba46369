package fetcher

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
)

type testSheet struct {
	name string
	rows [][]string
}

func createTestXLSX(t *testing.T, sheets ...testSheet) string {
	t.Helper()
	f := xlsx.NewFile()
	for _, s := range sheets {
		sheet, err := f.AddSheet(s.name)
		require.NoError(t, err)
		for _, rowData := range s.rows {
			row := sheet.AddRow()
			for _, cellData := range rowData {
				cell := row.AddCell()
				cell.SetString(cellData)
			}
		}
	}
	path := filepath.Join(t.TempDir(), "test.xlsx")
	require.NoError(t, f.Save(path))
	return path
}

func TestReadXLSX_Basic(t *testing.T) {
	path := createTestXLSX(t, testSheet{name: "Sheet1", rows: [][]string{
		{"Org", "KPI", "Current"},
		{"North", "Readmission Rate (%)", "12"},
		{"South", "ER Admits/1,000", "410"},
	}})

	rows, err := ReadXLSX(path, XLSXOptions{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Org", "KPI", "Current"}, rows[0])
	assert.Equal(t, []string{"North", "Readmission Rate (%)", "12"}, rows[1])
	assert.Equal(t, []string{"South", "ER Admits/1,000", "410"}, rows[2])
}

func TestReadXLSX_SkipRows(t *testing.T) {
	path := createTestXLSX(t, testSheet{name: "Sheet1", rows: [][]string{
		{"Header1", "Header2"},
		{"a", "b"},
		{"c", "d"},
	}})

	rows, err := ReadXLSX(path, XLSXOptions{SkipRows: 1})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"a", "b"}, rows[0])
	assert.Equal(t, []string{"c", "d"}, rows[1])
}

func TestReadXLSX_SheetName(t *testing.T) {
	path := createTestXLSX(t,
		testSheet{name: "Performance_Metrics", rows: [][]string{{"a", "b"}}},
		testSheet{name: "Utilization Log", rows: [][]string{{"x", "y"}, {"1", "2"}}},
	)

	rows, err := ReadXLSX(path, XLSXOptions{SheetName: "Utilization Log"})
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"x", "y"}, rows[0])
	assert.Equal(t, []string{"1", "2"}, rows[1])
}

func TestReadXLSX_SheetNameNotFound(t *testing.T) {
	path := createTestXLSX(t, testSheet{name: "Sheet1", rows: [][]string{{"a"}}})

	_, err := ReadXLSX(path, XLSXOptions{SheetName: "Missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestReadXLSX_SheetIndexOutOfRange(t *testing.T) {
	path := createTestXLSX(t, testSheet{name: "Sheet1", rows: [][]string{{"a"}}})

	_, err := ReadXLSX(path, XLSXOptions{SheetIndex: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestReadXLSX_MissingFile(t *testing.T) {
	_, err := ReadXLSX(filepath.Join(t.TempDir(), "nope.xlsx"), XLSXOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "xlsx: open file")
}

func TestWorkbook_SheetNames(t *testing.T) {
	path := createTestXLSX(t,
		testSheet{name: "Performance_Metrics"},
		testSheet{name: "Program_Outcomes"},
	)

	wb, err := OpenXLSX(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Performance_Metrics", "Program_Outcomes"}, wb.SheetNames())
}
