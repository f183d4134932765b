// Package zynq7000 contains the static Zynq-7000 PS register catalog.
package zynq7000

import (
	"fmt"

	"github.com/retroenv/zynqinit/internal/register"
	"github.com/retroenv/zynqinit/internal/registry"
)

type regDef struct {
	name        string
	offset      uint32
	width       int
	access      register.Access
	reset       register.Reset
	description string
}

type blockDef struct {
	name  string
	bases []uint32
	regs  []regDef
}

// noReset marks registers whose reset value depends on strapping pins or
// training results.
var noReset = register.Reset{}

func rv(value uint32) register.Reset {
	return register.ResetValue(value)
}

// New builds the device registry from the catalog tables. Field masks are
// not part of the catalog, they are attached by scanning vendor generated
// initialization sources.
func New() (*registry.Registry, error) {
	defs := []blockDef{slcrBlock, ddrcBlock, devcfgBlock, uartBlock, qspiBlock, sdioBlock}

	blocks := make([]*register.Block, 0, len(defs))
	for _, def := range defs {
		descriptors := make([]*register.Descriptor, 0, len(def.regs))
		for _, reg := range def.regs {
			descriptors = append(descriptors, register.NewDescriptor(
				reg.name, reg.offset, reg.width, reg.access, reg.reset, reg.description))
		}

		block, err := register.NewBlock(def.name, def.bases, descriptors)
		if err != nil {
			return nil, fmt.Errorf("building block %s: %w", def.name, err)
		}
		blocks = append(blocks, block)
	}

	reg, err := registry.New(blocks...)
	if err != nil {
		return nil, fmt.Errorf("building registry: %w", err)
	}
	return reg, nil
}
