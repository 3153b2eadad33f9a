// Package cli holds the process-level side of argument handling: the parse
// error taxonomy, exit codes, and the pflag values that validate page numbers
// and enumerations before they reach the configuration.
package cli
