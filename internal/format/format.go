// Package format defines the available output instruction encodings.
package format

import (
	"io"

	"github.com/retroenv/zynqinit/internal/options"
	"github.com/retroenv/zynqinit/internal/writelist"
)

const (
	CSource = "c"
	Tcl     = "tcl"
)

// Writer defines a shared interface used by the different encoding packages.
// Their constructors need to return this shared interface, having them return
// the actual type instead of the interface results in compiler errors for the
// constructor variable that they are assigned to.
type Writer interface {
	Write() error
}

// NewWriterFunc constructs an encoding writer for the compiled write lists.
type NewWriterFunc func(lists []*writelist.List, opts options.Generator, writer io.Writer) Writer
