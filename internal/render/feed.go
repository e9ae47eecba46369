package render

import (
	"strconv"
	"strings"

	"github.com/sells-group/care-dashboard/internal/model"
)

var tagClasses = map[string]string{
	"TCM":  "tcm",
	"CCM":  "ccm",
	"RPM":  "rpm",
	"AWV":  "awv",
	"ACP":  "acp",
	"SDOH": "sdoh",
}

// TagClass maps a program code to its style class; unknown codes are neutral.
func TagClass(code string) string {
	if c, ok := tagClasses[model.ProgramCode(code)]; ok {
		return c
	}
	return "neutral"
}

// Tag is a decorated program code on a tile.
type Tag struct {
	Code  string `json:"code"`
	Class string `json:"class"`
}

// Tile is one rendered utilization log entry.
type Tile struct {
	Patient    string `json:"patient"`
	Tags       []Tag  `json:"tags"`
	Date       string `json:"date"`
	Org        string `json:"org"`
	Event      string `json:"event"`
	EventClass string `json:"event_class"`
	Facility   string `json:"facility"`
	Diagnosis  string `json:"diagnosis"`
	ICD10      string `json:"icd10"`
}

// Feed is the rendered utilization feed.
type Feed struct {
	Tiles []Tile `json:"tiles"`
	Total string `json:"total"`
}

// FeedTiles builds one tile per entry, keeping the input order.
func FeedTiles(entries []model.UtilizationEntry) Feed {
	tiles := make([]Tile, 0, len(entries))
	for _, e := range entries {
		tags := make([]Tag, 0, len(e.Programs))
		for _, p := range e.Programs {
			tags = append(tags, Tag{Code: p, Class: TagClass(p)})
		}

		event := e.Event.String()
		evClass := ""
		if strings.Contains(strings.ToLower(event), "inp") {
			evClass = "inp"
		}

		tiles = append(tiles, Tile{
			Patient:    e.Patient.String(),
			Tags:       tags,
			Date:       e.Date.String(),
			Org:        e.Org.String(),
			Event:      event,
			EventClass: evClass,
			Facility:   e.Facility.String(),
			Diagnosis:  e.Diagnosis.String(),
			ICD10:      e.ICD10.String(),
		})
	}
	return Feed{Tiles: tiles, Total: TotalLabel(len(tiles))}
}

// TotalLabel renders the feed counter, e.g. "12 Total".
func TotalLabel(n int) string {
	return strconv.Itoa(n) + " Total"
}
