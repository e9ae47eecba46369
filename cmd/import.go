package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/care-dashboard/internal/importer"
)

var (
	importXLSXPath string
	importOutDir   string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Convert the operations workbook into the dashboard JSON files",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if importXLSXPath == "" {
			return eris.New("import: --xlsx is required")
		}

		res, err := importer.Convert(importXLSXPath, importOutDir)
		if err != nil {
			return eris.Wrap(err, "import xlsx")
		}

		for file, n := range res.Files {
			zap.L().Info("import complete",
				zap.String("file", file),
				zap.Int("rows", n),
				zap.String("out", importOutDir),
			)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importXLSXPath, "xlsx", "", "path to the workbook (required)")
	importCmd.Flags().StringVar(&importOutDir, "out", "data", "directory to write the JSON files into")
	_ = importCmd.MarkFlagRequired("xlsx")
	rootCmd.AddCommand(importCmd)
}
