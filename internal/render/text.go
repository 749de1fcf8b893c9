package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/teemow/tabcal/internal/agenda"
	"github.com/teemow/tabcal/internal/calendar"
)

const emptyMessage = "No upcoming events"

// dayTitle formats a civil date as a short header line. The weekday is
// derived from the date alone, so any location works.
func dayTitle(d calendar.CivilDate) string {
	return d.Midnight(time.UTC).Format("Mon, Jan 2")
}

// Text renders days as a plain text agenda for terminal output. Days
// without events are skipped; if nothing has events the empty state
// message is returned instead.
func Text(days []agenda.DayRenderState, today calendar.CivilDate) string {
	if agenda.Empty(days) {
		return emptyMessage + "\n"
	}

	var b strings.Builder
	for _, day := range days {
		if !day.HasEvents {
			continue
		}

		title := dayTitle(day.Date)
		if day.Date == today {
			title = "Today · " + title
		}
		fmt.Fprintf(&b, "━━━━ %s ━━━━\n", title)

		for _, entry := range day.Entries {
			line := fmt.Sprintf("  %-20s %s", entry.TimeLabel, entry.Event.Summary)
			if entry.Event.Location != "" {
				line += fmt.Sprintf(" @ %s", entry.Event.Location)
			}
			b.WriteString(line)
			b.WriteByte('\n')
		}
		if day.OverflowLabel != "" {
			fmt.Fprintf(&b, "  %s\n", day.OverflowLabel)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
