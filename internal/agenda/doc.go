// Package agenda implements the pure calendar-to-day-grid transformation:
// bucketing events into civil days, labeling each event for the specific day
// being rendered, and deciding which events in a full day are shown versus
// collapsed into an overflow count.
//
// Nothing in this package does I/O or reads the clock. Every function takes
// an explicit "today" and timezone, so two calls with the same inputs always
// produce the same output. Callers must not cache results across a day
// boundary, because "today" is part of the input.
package agenda
