// Package render turns per-day render state into output surfaces.
//
// Two renderers exist: an HTML renderer for the new-tab page and a plain
// text renderer for the CLI. Both consume the precomputed
// agenda.DayRenderState slices and never touch event sources or settings
// storage themselves.
package render
