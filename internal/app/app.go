// Package app provides the main application helpers for the generator.
package app

import (
	"fmt"
	"io"
	"strings"

	"github.com/retroenv/zynqinit/internal/format"
	"github.com/retroenv/zynqinit/internal/format/csource"
	"github.com/retroenv/zynqinit/internal/format/tcl"
	"github.com/retroenv/zynqinit/internal/registry"
)

// InitializeFormatCompatibleMode returns the file writer constructor of the
// chosen output format.
func InitializeFormatCompatibleMode(formatName string) (format.NewWriterFunc, error) {
	switch strings.ToLower(formatName) {
	case format.CSource:
		return csource.New, nil

	case format.Tcl:
		return tcl.New, nil

	default:
		return nil, fmt.Errorf("unsupported output format '%s'", formatName)
	}
}

// DumpCatalog writes the register catalog as an indented listing, one block
// instance per line, registers with their offsets and attached field masks.
func DumpCatalog(writer io.Writer, reg *registry.Registry) error {
	for _, block := range reg.Blocks() {
		if block.Instances() > 1 {
			for idx, base := range block.Bases {
				if _, err := fmt.Fprintf(writer, "%s%d: 0x%08X\n", block.Name, idx, base); err != nil {
					return fmt.Errorf("writing block header: %w", err)
				}
			}
		} else {
			if _, err := fmt.Fprintf(writer, "%s: 0x%08X\n", block.Name, block.Bases[0]); err != nil {
				return fmt.Errorf("writing block header: %w", err)
			}
		}

		for _, descriptor := range block.Descriptors {
			if _, err := fmt.Fprintf(writer, "\t%s, 0x%08x\n", descriptor.Name, descriptor.Offset); err != nil {
				return fmt.Errorf("writing register: %w", err)
			}
			for _, name := range descriptor.Fields() {
				mask, _ := descriptor.FieldMask(name)
				if _, err := fmt.Fprintf(writer, "\t\t%s, 0x%08x\n", name, mask); err != nil {
					return fmt.Errorf("writing field: %w", err)
				}
			}
		}
	}
	return nil
}
