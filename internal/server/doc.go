// Package server implements the local HTTP server behind the new-tab
// calendar page.
//
// The main server renders the page on GET /, forces a source refresh on
// POST /refresh, and persists settings changes on POST /settings. Health
// endpoints (/healthz, /readyz) and a dedicated Prometheus metrics server
// support running tabcal as a supervised background service.
//
// Fetched events are cached between page loads; a cron schedule refreshes
// the cache in the background so opening a new tab stays fast.
package server
