// Package dashboard derives filtered and aggregated views of a snapshot.
package dashboard

import (
	"sort"
	"time"

	"github.com/sells-group/care-dashboard/internal/aggregate"
	"github.com/sells-group/care-dashboard/internal/model"
	"github.com/sells-group/care-dashboard/internal/render"
	"github.com/sells-group/care-dashboard/internal/snapshot"
)

// Labels of the "all" filter options.
const (
	AllOrgsLabel   = "All Orgs"
	AllEventsLabel = "All Events"
)

// Selection is the current filter state. Empty fields mean "all".
type Selection struct {
	Org   string `json:"org"`
	Event string `json:"event"`
}

// AllOrgs reports whether the selection spans every organization.
func (s Selection) AllOrgs() bool { return s.Org == "" }

// Dashboard owns a loaded snapshot and computes views for selections.
// It is safe for concurrent use; the snapshot is never modified.
type Dashboard struct {
	snap       *snapshot.Snapshot
	orgs       []string
	events     []string
	defaultOrg string
}

// New builds a Dashboard over a snapshot. defaultOrg is preselected when it
// matches a loaded organization.
func New(snap *snapshot.Snapshot, defaultOrg string) *Dashboard {
	return &Dashboard{
		snap:       snap,
		orgs:       uniqSorted(snap.Orgs()),
		events:     uniqSorted(snap.Events()),
		defaultOrg: defaultOrg,
	}
}

// Orgs returns the sorted distinct organizations across all datasets.
func (d *Dashboard) Orgs() []string { return append([]string(nil), d.orgs...) }

// Events returns the sorted distinct event names of the log.
func (d *Dashboard) Events() []string { return append([]string(nil), d.events...) }

// SnapshotID returns the id of the underlying snapshot.
func (d *Dashboard) SnapshotID() string { return d.snap.ID }

// DefaultSelection selects the configured organization if it was loaded, else all.
func (d *Dashboard) DefaultSelection() Selection {
	for _, o := range d.orgs {
		if o == d.defaultOrg && o != "" {
			return Selection{Org: o}
		}
	}
	return Selection{}
}

// View is the derived state for one selection.
type View struct {
	Selection Selection `json:"selection"`

	Performance []model.PerformanceMetric `json:"performance"`
	Programs    []model.ProgramOutcome    `json:"programs"`
	Log         []model.UtilizationEntry  `json:"log"`

	Sections    []render.Section    `json:"sections"`
	ProgramRows []render.ProgramRow `json:"program_rows"`
	Feed        render.Feed         `json:"feed"`

	Orgs   []render.Option `json:"orgs"`
	Events []render.Option `json:"events"`

	SnapshotID string    `json:"snapshot_id"`
	LoadedAt   time.Time `json:"loaded_at"`
}

// Apply computes the view for sel. Tables are aggregated across organizations
// when no organization is selected; the feed is filtered by organization and
// event and ordered by date descending.
func (d *Dashboard) Apply(sel Selection) View {
	v := View{
		Selection:  sel,
		SnapshotID: d.snap.ID,
		LoadedAt:   d.snap.LoadedAt,
	}

	if sel.AllOrgs() {
		v.Performance = aggregate.Performance(d.snap.Performance)
		v.Programs = aggregate.Programs(d.snap.Programs)
	} else {
		v.Performance = filterOrg(d.snap.Performance, func(r model.PerformanceMetric) model.Label { return r.Org }, sel.Org)
		v.Programs = filterOrg(d.snap.Programs, func(r model.ProgramOutcome) model.Label { return r.Org }, sel.Org)
	}
	v.Log = FilterLog(d.snap.Log, sel)

	v.Sections = render.PerformanceSections(v.Performance)
	v.ProgramRows = render.ProgramRows(v.Programs)
	v.Feed = render.FeedTiles(v.Log)
	v.Orgs = options(d.orgs, sel.Org, AllOrgsLabel)
	v.Events = options(d.events, sel.Event, AllEventsLabel)
	return v
}

// Page turns the view into template data.
func (v View) Page(title string, static bool) render.Page {
	orgLabel := v.Selection.Org
	if v.Selection.AllOrgs() {
		orgLabel = AllOrgsLabel
	}
	if v.Selection.Event != "" {
		orgLabel += " · " + v.Selection.Event
	}
	return render.Page{
		Title:       title,
		OrgLabel:    orgLabel,
		Orgs:        v.Orgs,
		Events:      v.Events,
		Sections:    v.Sections,
		Programs:    v.ProgramRows,
		Feed:        v.Feed,
		SnapshotID:  v.SnapshotID,
		GeneratedAt: v.LoadedAt,
		Static:      static,
	}
}

// FilterLog keeps entries matching the selection and orders them by Date
// descending. Dates compare as plain strings, so ISO dates sort
// chronologically and other formats sort lexically.
func FilterLog(entries []model.UtilizationEntry, sel Selection) []model.UtilizationEntry {
	out := make([]model.UtilizationEntry, 0, len(entries))
	for _, e := range entries {
		if sel.Org != "" && e.Org.String() != sel.Org {
			continue
		}
		if sel.Event != "" && e.Event.String() != sel.Event {
			continue
		}
		out = append(out, e)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date > out[j].Date
	})
	return out
}

func filterOrg[T any](rows []T, org func(T) model.Label, want string) []T {
	out := make([]T, 0, len(rows))
	for _, r := range rows {
		if org(r).String() == want {
			out = append(out, r)
		}
	}
	return out
}

func options(values []string, selected, allLabel string) []render.Option {
	out := make([]render.Option, 0, len(values)+1)
	out = append(out, render.Option{Value: "", Label: allLabel, Selected: selected == ""})
	for _, v := range values {
		out = append(out, render.Option{Value: v, Label: v, Selected: v == selected})
	}
	return out
}

func uniqSorted(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
