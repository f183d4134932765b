// Package tcl writes write lists as XSCT Tcl script commands.
package tcl

import (
	"fmt"
	"io"

	"github.com/retroenv/zynqinit/internal/format"
	"github.com/retroenv/zynqinit/internal/options"
	"github.com/retroenv/zynqinit/internal/writelist"
)

const (
	commentLine   = "puts \"%s %s %s: %#x\"\n"
	maskPollLine  = "mask_poll 0X%08X 0x%08X\n"
	writeLine     = "mwr -force 0X%08X 0x%08X\n"
	maskWriteLine = "mask_write 0X%08X 0x%08X 0x%08X\n"
)

// FileWriter writes the Tcl script file content.
type FileWriter struct {
	lists      []*writelist.List
	options    options.Generator
	mainWriter io.Writer
}

// New creates a new file writer.
// nolint: ireturn
func New(lists []*writelist.List, opts options.Generator, mainWriter io.Writer) format.Writer {
	return FileWriter{
		lists:      lists,
		options:    opts,
		mainWriter: mainWriter,
	}
}

// Write writes all operations of all lists in order.
func (f FileWriter) Write() error {
	for _, list := range f.lists {
		for _, op := range list.Operations() {
			if err := f.writeOperation(op); err != nil {
				return fmt.Errorf("writing list %s: %w", list.Name(), err)
			}
		}
	}
	return nil
}

func (f FileWriter) writeOperation(op writelist.Operation) error {
	if f.options.Comments {
		for _, origin := range op.Origins {
			if _, err := fmt.Fprintf(f.mainWriter, commentLine,
				origin.Block, origin.Entry, origin.Field, origin.Value); err != nil {

				return fmt.Errorf("writing comment: %w", err)
			}
		}
	}

	if op.Poll {
		if _, err := fmt.Fprintf(f.mainWriter, maskPollLine, op.Addr, op.Mask); err != nil {
			return fmt.Errorf("writing mask poll: %w", err)
		}
		return nil
	}

	data, err := op.ShiftedData()
	if err != nil {
		return err
	}

	if op.IsFullWrite() {
		if _, err := fmt.Fprintf(f.mainWriter, writeLine, op.Addr, data); err != nil {
			return fmt.Errorf("writing write: %w", err)
		}
		return nil
	}

	if _, err := fmt.Fprintf(f.mainWriter, maskWriteLine, op.Addr, op.Mask, data); err != nil {
		return fmt.Errorf("writing mask write: %w", err)
	}
	return nil
}
