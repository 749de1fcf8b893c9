// Package settings holds the user-tunable widget configuration and its YAML
// file persistence.
//
// The agenda core never reads settings storage directly; callers load a
// Settings value here and pass the individual fields through as plain
// parameters.
package settings
