// Package model defines the domain types and value objects for the
// sheen CLI.
//
// This package contains pure data structures with no external
// dependencies: RGB color values, shell dialect identifiers, command
// lifecycle phases, and session state. All other packages build on
// these types.
//
// The package also defines exit codes (ExitCode) and a custom error
// type (CLIError) that carries exit codes for proper OS process exit
// handling.
package model
