// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/retroenv/zynqinit/internal/format"
	"github.com/retroenv/zynqinit/internal/options"
)

// ParseFlags parses command line flags and returns program and generator options
func ParseFlags() (options.Program, options.Generator, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	args := flags.Args()
	if err != nil || (len(args) == 0 && !opts.Dump) {
		return opts, options.Generator{}, &UsageError{flags: flags}
	}

	if err := validateArgs(flags, args); err != nil {
		return opts, options.Generator{}, err
	}

	if err := normalizeOptions(&opts); err != nil {
		return opts, options.Generator{}, err
	}

	if len(args) > 0 {
		opts.Input = args[0]
	}

	genOptions := options.NewGenerator(opts.Format)
	genOptions.Comments = !opts.NoComments
	genOptions.Merge = !opts.NoMerge

	return opts, genOptions, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	if e.msg != "" {
		fmt.Println(e.msg)
	}
	fmt.Printf("usage: zynqinit [options] <init sequence script>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
		fmt.Println()
	}
}

// validateArgs checks if arguments are in correct order
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("Potential argument %s found after the init sequence script, please pass the script as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions normalizes and validates option values
func normalizeOptions(opts *options.Program) error {
	opts.Format = strings.ToLower(opts.Format)

	validFormats := []string{format.CSource, format.Tcl}
	for _, valid := range validFormats {
		if opts.Format == valid {
			return nil
		}
	}

	return fmt.Errorf("unsupported output format: %s. Valid options: %s",
		opts.Format, strings.Join(validFormats, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.StringVar(&opts.Output, "o", "", "name of the output file, printed on console if no name given")
	flags.StringVar(&opts.Format, "f", format.CSource, "output format of the generated instructions (c/tcl)")
	flags.StringVar(&opts.Init, "init", "", "comma separated ps7_init.c files to scan for field masks")
	flags.BoolVar(&opts.Dump, "dump", false, "print the register catalog and exit")
	flags.BoolVar(&opts.NoComments, "nocomments", false, "do not output provenance comment lines")
	flags.BoolVar(&opts.NoMerge, "nomerge", false, "do not coalesce adjacent writes to the same register")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
