package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"time"

	"github.com/teemow/tabcal/internal/agenda"
	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/settings"
)

//go:embed page.html.tmpl
var pageFS embed.FS

// PageData is everything the new-tab page template needs for one render
// pass.
type PageData struct {
	Title string

	// Days is the full day range in order, including empty days.
	Days  []agenda.DayRenderState
	Today calendar.CivilDate

	// Empty is true when no day has events; the page shows the dedicated
	// empty state instead of the day layout.
	Empty bool

	// ErrorMessage, when non-empty, replaces the day layout with an error
	// panel. A failed fetch must never be rendered as an empty calendar.
	ErrorMessage string

	Settings settings.Settings

	// DaySpans are the selectable horizons for the settings form.
	DaySpans []int

	// SourceName identifies where the events came from ("google", "ics",
	// "sample").
	SourceName string

	GeneratedAt time.Time
}

// HTMLRenderer renders the new-tab calendar page.
type HTMLRenderer struct {
	tmpl *template.Template
}

// NewHTMLRenderer parses the embedded page template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("page.html.tmpl").Funcs(template.FuncMap{
		"dayTitle": dayTitle,
		"weekday": func(d calendar.CivilDate) string {
			return d.Midnight(time.UTC).Format("Mon")
		},
		"monthDay": func(d calendar.CivilDate) string {
			return d.Midnight(time.UTC).Format("Jan 2")
		},
	}).ParseFS(pageFS, "page.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// RenderPage writes the full page for one render pass.
func (r *HTMLRenderer) RenderPage(w io.Writer, data PageData) error {
	if data.Title == "" {
		data.Title = "New Tab"
	}
	if data.DaySpans == nil {
		data.DaySpans = settings.DaySpans()
	}
	if err := r.tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
