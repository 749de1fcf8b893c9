package cmd

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teemow/tabcal/internal/google"
)

func newAuthCmd() *cobra.Command {
	var account string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize a Google account",
		Long: `Run the OAuth flow for a Google account and store the resulting token.

Requires GOOGLE_CLIENT_ID and GOOGLE_CLIENT_SECRET in the environment;
create OAuth credentials of type "Desktop app" in the Google Cloud console.
Only read access to Google Calendar is requested.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if google.HasTokenForAccount(account) {
				fmt.Fprintf(cmd.OutOrStdout(), "Account %q already has a stored token; continuing will replace it.\n\n", account)
			}

			url := google.GetAuthURL()
			fmt.Fprintf(cmd.OutOrStdout(), "Open this URL in your browser and authorize access:\n\n  %s\n\nThen paste the authorization code here: ", url)

			reader := bufio.NewReader(cmd.InOrStdin())
			code, err := reader.ReadString('\n')
			if err != nil {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}
			code = strings.TrimSpace(code)
			if code == "" {
				return fmt.Errorf("no authorization code provided")
			}

			if err := google.SaveToken(cmd.Context(), account, code); err != nil {
				return fmt.Errorf("failed to save token: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Token for account %q saved.\n", account)
			return nil
		},
	}

	cmd.Flags().StringVar(&account, "account", "default", "Google account name to authorize")
	return cmd
}
