// Package cmd implements the tabcal command line interface.
//
// Commands:
//   - agenda: print the upcoming agenda to the terminal (default)
//   - serve: run the local server behind the new-tab page
//   - auth: authorize a Google account
//   - version: print the version
package cmd
