package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the tabcal application
var rootCmd = &cobra.Command{
	Use:   "tabcal",
	Short: "Google Calendar agenda for your browser's new-tab page",
	Long: `tabcal shows your upcoming Google Calendar events, either as a plain
agenda in the terminal or as a local web page meant to be opened as the
browser's new-tab page.

It can run as:
  - A standalone CLI tool printing the agenda (default)
  - A local HTTP server rendering the new-tab calendar page`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "tabcal version %s\n" .Version}}`)

	// If no subcommand is provided, print the agenda by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "agenda")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newAgendaCmd())
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newAuthCmd())
	rootCmd.AddCommand(newCalendarsCmd())
	rootCmd.AddCommand(newVersionCmd())
}
