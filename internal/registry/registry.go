// Package registry aggregates register blocks and resolves symbolic and
// physical references across them.
package registry

import (
	"errors"
	"fmt"
	"strings"

	"github.com/retroenv/zynqinit/internal/register"
)

var (
	ErrUnknownBlock    = errors.New("unknown register block")
	ErrUnknownEntry    = errors.New("unknown register")
	ErrUnknownField    = errors.New("unknown field")
	ErrUnknownInstance = errors.New("unknown block instance")
)

// Target is a resolved symbolic reference.
type Target struct {
	Addr uint32
	Mask uint32
}

// Registry is the collection of all register blocks of a device. Block
// address ranges are disjoint by construction.
type Registry struct {
	blocks []*register.Block
	byName map[string]*register.Block // lowercased block name
}

// New creates a registry from register blocks. Block names must be unique.
func New(blocks ...*register.Block) (*Registry, error) {
	r := &Registry{
		blocks: blocks,
		byName: make(map[string]*register.Block, len(blocks)),
	}

	for _, block := range blocks {
		key := strings.ToLower(block.Name)
		if _, ok := r.byName[key]; ok {
			return nil, fmt.Errorf("duplicate register block name %s", block.Name)
		}
		r.byName[key] = block
	}

	return r, nil
}

// Blocks returns the registered blocks in registration order.
func (r *Registry) Blocks() []*register.Block {
	return r.blocks
}

// Insert attaches a field discovered at an absolute address to the owning
// register. It returns false if no block or register owns the address,
// unresolved addresses are expected for blocks missing from the catalog.
func (r *Registry) Insert(addr uint32, fieldName string, mask uint32) bool {
	for _, block := range r.blocks {
		if !block.Contains(addr) {
			continue
		}
		descriptor, ok := block.ResolveAddress(addr)
		if !ok {
			return false
		}
		descriptor.AddField(fieldName, mask)
		return true
	}
	return false
}

// FindEntry resolves a block and register name to an absolute address.
// A trailing decimal digit on the block name selects the hardware instance,
// no digit selects instance 0.
func (r *Registry) FindEntry(blockName, entryName string) (uint32, error) {
	name, instance := splitInstance(blockName)

	block, ok := r.byName[strings.ToLower(name)]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownBlock, name)
	}
	if instance >= block.Instances() {
		return 0, fmt.Errorf("%w: %s has %d instances, index %d",
			ErrUnknownInstance, block.Name, block.Instances(), instance)
	}

	descriptor, ok := block.ResolveName(entryName)
	if !ok {
		return 0, fmt.Errorf("%w: %s in block %s", ErrUnknownEntry, entryName, block.Name)
	}

	return block.Bases[instance] + descriptor.Offset, nil
}

// Find resolves a symbolic (block, entry, field) triple to an absolute
// address and field mask.
func (r *Registry) Find(blockName, entryName, fieldName string) (Target, error) {
	addr, err := r.FindEntry(blockName, entryName)
	if err != nil {
		return Target{}, err
	}

	name, _ := splitInstance(blockName)
	block := r.byName[strings.ToLower(name)]
	descriptor, _ := block.ResolveName(entryName)

	mask, ok := descriptor.FieldMask(fieldName)
	if !ok {
		return Target{}, fmt.Errorf("%w: %s in register %s", ErrUnknownField,
			fieldName, descriptor.Name)
	}

	return Target{Addr: addr, Mask: mask}, nil
}

// splitInstance splits a trailing instance digit off a block name.
func splitInstance(blockName string) (string, int) {
	if blockName == "" {
		return blockName, 0
	}
	last := blockName[len(blockName)-1]
	if last < '0' || last > '9' {
		return blockName, 0
	}
	return blockName[:len(blockName)-1], int(last - '0')
}
