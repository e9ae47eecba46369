// Package importer converts the operations workbook into the dashboard's JSON datasets.
package importer

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/care-dashboard/internal/fetcher"
	"github.com/sells-group/care-dashboard/internal/model"
	"github.com/sells-group/care-dashboard/internal/snapshot"
)

// Sheet describes how one workbook sheet becomes one JSON resource.
type Sheet struct {
	Name     string
	File     string
	Required []string
	Numeric  []string
	// TagColumn is split on commas into a JSON array.
	TagColumn string
}

// Sheets is the workbook layout.
var Sheets = []Sheet{
	{
		Name:     "Performance_Metrics",
		File:     snapshot.PerformanceMetricsFile,
		Required: []string{"Org", "KPI"},
		Numeric:  []string{"Current", "Benchmark", "Last_3_Mo_Avg", "YTD_Avg"},
	},
	{
		Name:     "Program_Outcomes",
		File:     snapshot.ProgramOutcomesFile,
		Required: []string{"Org", "Program"},
		Numeric:  []string{"Eligible", "Engaged", "Completed", "Completion_Pct", "Benchmark"},
	},
	{
		Name:      "Utilization Log",
		File:      snapshot.UtilizationLogFile,
		Required:  []string{"Org", "Event", "Date"},
		TagColumn: "Programs",
	},
}

// Result reports how many records were written per file.
type Result struct {
	Files map[string]int
}

// Convert reads the workbook at path and writes one JSON file per sheet into outDir.
func Convert(path, outDir string) (*Result, error) {
	wb, err := fetcher.OpenXLSX(path)
	if err != nil {
		return nil, eris.Wrap(err, "importer: open workbook")
	}
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, eris.Wrap(err, "importer: create output dir")
	}

	res := &Result{Files: make(map[string]int, len(Sheets))}
	for _, sh := range Sheets {
		rows, err := wb.Rows(fetcher.XLSXOptions{SheetName: sh.Name})
		if err != nil {
			return nil, eris.Wrapf(err, "importer: read sheet %q", sh.Name)
		}
		records, err := sh.Records(rows)
		if err != nil {
			return nil, err
		}
		if err := writeRecords(filepath.Join(outDir, sh.File), records); err != nil {
			return nil, err
		}
		res.Files[sh.File] = len(records)
		zap.L().Info("importer: wrote dataset",
			zap.String("sheet", sh.Name),
			zap.String("resource", sh.File),
			zap.Int("rows", len(records)),
		)
	}
	return res, nil
}

// Records turns sheet rows (header first) into JSON-ready records. String
// cells are trimmed, numeric columns become numbers or null, and fully blank
// rows are skipped.
func (s Sheet) Records(rows [][]string) ([]map[string]any, error) {
	if len(rows) == 0 {
		return nil, eris.Errorf("importer: sheet %q is empty", s.Name)
	}

	header := make([]string, len(rows[0]))
	index := make(map[string]int, len(header))
	for i, h := range rows[0] {
		header[i] = strings.TrimSpace(h)
		index[header[i]] = i
	}
	for _, col := range s.Required {
		if _, ok := index[col]; !ok {
			return nil, eris.Errorf("importer: sheet %q missing column %q", s.Name, col)
		}
	}

	numeric := make(map[string]bool, len(s.Numeric))
	for _, c := range s.Numeric {
		numeric[c] = true
	}

	records := make([]map[string]any, 0, len(rows)-1)
	for _, row := range rows[1:] {
		if blank(row) {
			continue
		}
		rec := make(map[string]any, len(header))
		for i, col := range header {
			if col == "" {
				continue
			}
			cell := ""
			if i < len(row) {
				cell = strings.TrimSpace(row[i])
			}
			switch {
			case col == s.TagColumn:
				rec[col] = splitPrograms(cell)
			case numeric[col]:
				rec[col] = numericCell(cell)
			default:
				rec[col] = cell
			}
		}
		if s.TagColumn != "" {
			if _, ok := rec[s.TagColumn]; !ok {
				rec[s.TagColumn] = []string{}
			}
		}
		records = append(records, rec)
	}
	return records, nil
}

func numericCell(cell string) any {
	v := model.Text(cell)
	if v.IsEmpty() {
		return nil
	}
	if f, ok := v.Float(); ok {
		return f
	}
	return cell
}

func splitPrograms(cell string) []string {
	switch strings.ToLower(cell) {
	case "", "nan", "none":
		return []string{}
	}
	tags := model.SplitTags(cell)
	if tags == nil {
		return []string{}
	}
	return tags
}

func blank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func writeRecords(path string, records []map[string]any) error {
	f, err := os.Create(path)
	if err != nil {
		return eris.Wrap(err, "importer: create file")
	}
	if err := fetcher.EncodeJSONArray(f, records); err != nil {
		_ = f.Close()
		return eris.Wrapf(err, "importer: write %s", filepath.Base(path))
	}
	if err := f.Close(); err != nil {
		return eris.Wrap(err, "importer: close file")
	}
	return nil
}
