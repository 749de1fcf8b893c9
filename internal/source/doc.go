// Package source provides event providers for the agenda pipeline.
//
// A Source fetches raw events for an instant window and returns them in
// the internal calendar representation. Implementations exist for Google
// Calendar, ICS/iCal feeds, and a deterministic sample generator used for
// demos and development without credentials.
package source
