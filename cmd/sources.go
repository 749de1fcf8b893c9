package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/server"
	"github.com/teemow/tabcal/internal/settings"
	"github.com/teemow/tabcal/internal/source"
)

// sourceFlags selects the event provider. The default is Google Calendar
// using the account from the settings file.
type sourceFlags struct {
	sample      bool
	icsURL      string
	icsUsername string
	icsPassword string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&f.sample, "sample", false, "Use deterministic sample events instead of a real calendar (no credentials needed)")
	cmd.Flags().StringVar(&f.icsURL, "ics-url", "", "Read events from an ICS/iCal feed URL instead of Google Calendar")
	cmd.Flags().StringVar(&f.icsUsername, "ics-username", "", "HTTP basic auth username for the ICS feed")
	cmd.Flags().StringVar(&f.icsPassword, "ics-password", "", "HTTP basic auth password for the ICS feed")
}

// factory builds the per-fetch source constructor used by both the agenda
// command and the page server.
func (f *sourceFlags) factory(loc *time.Location) server.SourceFactory {
	return func(ctx context.Context, cfg settings.Settings) (source.Source, error) {
		switch {
		case f.sample:
			return source.NewSampleSource(loc), nil
		case f.icsURL != "":
			return source.NewICSSource("ics", f.icsURL, f.icsUsername, f.icsPassword, loc), nil
		default:
			client, err := calendar.NewClientForAccount(ctx, cfg.Account)
			if err != nil {
				return nil, fmt.Errorf("failed to create calendar client for account %s: %w", cfg.Account, err)
			}
			return source.NewGoogleSource(client, cfg.CalendarID), nil
		}
	}
}

// loadSettingsWithPath resolves the settings path (flag value or default
// location) and loads the file.
func loadSettingsWithPath(path string) (settings.Settings, string, error) {
	if path == "" {
		var err error
		path, err = settings.DefaultPath()
		if err != nil {
			return settings.Settings{}, "", err
		}
	}
	cfg, err := settings.Load(path)
	if err != nil {
		return settings.Settings{}, path, fmt.Errorf("failed to load settings from %s: %w", path, err)
	}
	return cfg, path, nil
}
