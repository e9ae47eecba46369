package main

import (
	"context"
	"io"
	"os"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/care-dashboard/internal/config"
	"github.com/sells-group/care-dashboard/internal/dashboard"
	"github.com/sells-group/care-dashboard/internal/render"
)

// renderOptions selects what the static report shows.
type renderOptions struct {
	Out     string
	Org     string
	OrgSet  bool
	Event   string
	AllOrgs bool
}

var renderOpts renderOptions

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Write the dashboard as a static HTML report",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if err := cfg.Validate("render"); err != nil {
			return err
		}
		opts := renderOpts
		opts.OrgSet = cmd.Flags().Changed("org")
		return runRender(cmd.Context(), cfg, opts, cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderOpts.Out, "out", "", `output file, or "-" for stdout (required)`)
	renderCmd.Flags().StringVar(&renderOpts.Org, "org", "", "organization to show (default from config)")
	renderCmd.Flags().StringVar(&renderOpts.Event, "event", "", "only include log entries with this event")
	renderCmd.Flags().BoolVar(&renderOpts.AllOrgs, "all-orgs", false, "aggregate across all organizations")
	_ = renderCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(renderCmd)
}

// runRender loads the data once and writes the static report. A load failure
// writes nothing and returns the error.
func runRender(ctx context.Context, c *config.Config, opts renderOptions, stdout io.Writer) error {
	if opts.Out == "" {
		return eris.New("render: --out is required")
	}

	_, dash, err := loadDashboard(ctx, c)
	if err != nil {
		return eris.Wrap(err, "render")
	}

	sel := renderSelection(dash, opts)
	page := dash.Apply(sel).Page(c.Dashboard.Title, true)

	if opts.Out == "-" {
		return render.Dashboard(stdout, page)
	}

	f, err := os.Create(opts.Out)
	if err != nil {
		return eris.Wrap(err, "render: create output")
	}
	if err := render.Dashboard(f, page); err != nil {
		_ = f.Close()
		return eris.Wrap(err, "render: write report")
	}
	if err := f.Close(); err != nil {
		return eris.Wrap(err, "render: close output")
	}

	zap.L().Info("render complete",
		zap.String("out", opts.Out),
		zap.String("org", sel.Org),
		zap.String("event", sel.Event),
		zap.String("snapshot_id", dash.SnapshotID()),
	)
	return nil
}

func renderSelection(dash *dashboard.Dashboard, opts renderOptions) dashboard.Selection {
	sel := dash.DefaultSelection()
	switch {
	case opts.AllOrgs:
		sel.Org = ""
	case opts.OrgSet:
		sel.Org = opts.Org
	}
	sel.Event = opts.Event
	return sel
}
