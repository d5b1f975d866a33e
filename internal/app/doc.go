// Package app wires application dependencies for the CLI.
//
// Config is read from MATHCLASH_* environment variables (see ParseEnv) and
// then overridden by command-line flags. NewWire builds the profile store,
// question generator, answer checker and services from it, exposing them via
// the Wire struct for commands to use.
package app
