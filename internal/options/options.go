// Package options contains the program options.
package options

import "strings"

// Parameters contains file path options.
type Parameters struct {
	Input  string // init sequence script
	Output string // output file (default: stdout)
	Init   string // comma separated ps7_init.c files to scan for field masks
}

// Flags contains behavior options.
type Flags struct {
	Format string // output format: c, tcl
	Dump   bool   // print the register catalog and exit
	Debug  bool
	Quiet  bool
}

// OutputFlags contains output formatting options.
type OutputFlags struct {
	NoComments bool // omit provenance comment lines
	NoMerge    bool // keep adjacent writes to the same register separate
}

// Program options of the generator.
type Program struct {
	Parameters
	Flags
	OutputFlags
}

// Generator defines options to control the write list generation.
type Generator struct {
	Format   string // output encoding name
	Comments bool   // emit one comment line per provenance entry
	Merge    bool   // coalesce adjacent same-address writes
}

// NewGenerator returns generator options with default settings.
func NewGenerator(format string) Generator {
	return Generator{
		Format:   strings.ToLower(format),
		Comments: true,
		Merge:    true,
	}
}
