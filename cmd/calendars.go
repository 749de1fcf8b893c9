package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/teemow/tabcal/internal/calendar"
)

func newCalendarsCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "calendars",
		Short: "List calendars on the authorized account",
		Long: `List the calendars accessible to an authorized Google account.

Use the ID column to fill the calendar field in the settings; the primary
calendar is marked with an asterisk and is used when no ID is configured.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			client, err := calendar.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create calendar client (run 'tabcal auth' first?): %w", err)
			}

			calendars, err := client.ListCalendars(ctx)
			if err != nil {
				return fmt.Errorf("failed to list calendars: %w", err)
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tNAME\tACCESS")
			for _, c := range calendars {
				name := c.Summary
				if c.Primary {
					name += " *"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", c.ID, name, c.AccessRole)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use")
	return cmd
}
