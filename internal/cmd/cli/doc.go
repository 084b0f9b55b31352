// Package cli implements the chronid command line interface: Cobra command
// constructors used by cmd/chronid. Commands write to cmd.OutOrStdout() so
// tests can capture output.
package cli
