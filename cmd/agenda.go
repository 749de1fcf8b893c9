package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/teemow/tabcal/internal/agenda"
	"github.com/teemow/tabcal/internal/calendar"
	"github.com/teemow/tabcal/internal/render"
	"github.com/teemow/tabcal/internal/settings"
	"github.com/teemow/tabcal/internal/source"
)

func newAgendaCmd() *cobra.Command {
	var (
		account      string
		calendarID   string
		daySpan      int
		expandAll    bool
		settingsPath string
		srcFlags     sourceFlags
	)

	cmd := &cobra.Command{
		Use:   "agenda",
		Short: "Print the upcoming agenda",
		Long: `Fetch upcoming events and print them as a plain text agenda, one block
per day. Days without events are skipped; with no events at all a single
"No upcoming events" line is printed.

Without flags the Google account and calendar from the settings file are
used. Use --sample to try tabcal without any credentials.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			cfg, _, err := loadSettingsWithPath(settingsPath)
			if err != nil {
				return err
			}
			if account != "" {
				cfg.Account = account
			}
			if calendarID != "" {
				cfg.CalendarID = calendarID
			}
			if daySpan != 0 {
				if !settings.ValidDaySpan(daySpan) {
					return fmt.Errorf("invalid --days %d, choose one of %v", daySpan, settings.DaySpans())
				}
				cfg.DaySpan = daySpan
			}
			if expandAll {
				cfg.ExpandAll = true
			}

			loc := time.Local
			src, err := srcFlags.factory(loc)(ctx, cfg)
			if err != nil {
				return err
			}

			today := calendar.CivilDateOf(time.Now().In(loc))
			from, to := source.Window(today, cfg.DaySpan, loc)
			events, err := src.Events(ctx, from, to)
			if err != nil {
				return fmt.Errorf("failed to fetch events: %w", err)
			}

			days := agenda.BuildDays(events, today, cfg.DaySpan, agenda.Options{
				View:       agenda.ViewAgenda,
				MaxVisible: cfg.MaxVisible,
				ExpandAll:  cfg.ExpandAll,
				Location:   loc,
			})

			fmt.Fprint(cmd.OutOrStdout(), render.Text(days, today))
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "", "Google account name to use (default: from settings)")
	cmd.Flags().StringVar(&calendarID, "calendar", "", "Calendar ID to fetch (default: from settings)")
	cmd.Flags().IntVar(&daySpan, "days", 0, "Number of days to show: 7, 10, 14, 20 or 30 (default: from settings)")
	cmd.Flags().BoolVar(&expandAll, "expand-all", false, "Show every event instead of capping per day")
	cmd.Flags().StringVar(&settingsPath, "settings", "", "Settings file path (default: user config dir)")
	srcFlags.register(cmd)

	return cmd
}
