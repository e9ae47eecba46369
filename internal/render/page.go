package render

import (
	"html/template"
	"io"
	"time"

	"github.com/rotisserie/eris"

	"github.com/sells-group/care-dashboard/internal/format"
)

// LoadFailureNotice is shown instead of the dashboard when the data could not be loaded.
const LoadFailureNotice = "Failed to load dashboard data. Check logs for details."

// Option is one entry of a filter select.
type Option struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// Page is everything the dashboard template needs.
type Page struct {
	Title       string
	OrgLabel    string
	Orgs        []Option
	Events      []Option
	Sections    []Section
	Programs    []ProgramRow
	Feed        Feed
	SnapshotID  string
	GeneratedAt time.Time
	// Static pages have no server behind them, so the filter form is omitted.
	Static bool
}

var funcMap = template.FuncMap{
	"variance": func(v format.Variance) string { return v.String() },
	"fmtTime": func(t time.Time) string {
		if t.IsZero() {
			return ""
		}
		return t.Local().Format("Jan 2, 2006 15:04")
	},
}

var (
	pageTmpl  = template.Must(template.New("page").Funcs(funcMap).Parse(tmplBase + tmplDashboard))
	errorTmpl = template.Must(template.New("error").Funcs(funcMap).Parse(tmplBase + tmplFailure))
)

// Dashboard writes the full dashboard page.
func Dashboard(w io.Writer, p Page) error {
	if err := pageTmpl.ExecuteTemplate(w, "base", p); err != nil {
		return eris.Wrap(err, "render: dashboard")
	}
	return nil
}

// Failure writes the load failure notice page.
func Failure(w io.Writer, title string) error {
	data := struct {
		Title  string
		Notice string
	}{Title: title, Notice: LoadFailureNotice}
	if err := errorTmpl.ExecuteTemplate(w, "base", data); err != nil {
		return eris.Wrap(err, "render: failure")
	}
	return nil
}
