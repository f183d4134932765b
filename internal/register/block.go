package register

import (
	"fmt"
	"strings"
)

// DefaultDecodeMask selects the bits of an address that identify the owning
// block, the Zynq-7000 PS maps every block on a 4 KB boundary.
const DefaultDecodeMask = 0xFFFFF000

// Block is a group of registers sharing one layout, replicated once per
// hardware instance. It is immutable after construction except for the
// setup time field attachment pass.
type Block struct {
	Name        string
	DecodeMask  uint32
	Bases       []uint32 // one base address per hardware instance
	Descriptors []*Descriptor

	byName   map[string]*Descriptor // lowercased register name
	byOffset map[uint32]*Descriptor
}

// NewBlock creates a register block. Descriptor offsets must be unique
// within the block.
func NewBlock(name string, bases []uint32, descriptors []*Descriptor) (*Block, error) {
	return NewBlockWithMask(name, DefaultDecodeMask, bases, descriptors)
}

// NewBlockWithMask creates a register block with a custom decode mask.
func NewBlockWithMask(name string, decodeMask uint32, bases []uint32,
	descriptors []*Descriptor) (*Block, error) {

	if len(bases) == 0 {
		return nil, fmt.Errorf("block %s: no base addresses", name)
	}

	b := &Block{
		Name:        name,
		DecodeMask:  decodeMask,
		Bases:       bases,
		Descriptors: descriptors,
		byName:      make(map[string]*Descriptor, len(descriptors)),
		byOffset:    make(map[uint32]*Descriptor, len(descriptors)),
	}

	for _, descriptor := range descriptors {
		if _, ok := b.byOffset[descriptor.Offset]; ok {
			return nil, fmt.Errorf("block %s: duplicate register offset 0x%08x",
				name, descriptor.Offset)
		}
		b.byOffset[descriptor.Offset] = descriptor
		b.byName[strings.ToLower(descriptor.Name)] = descriptor
	}

	return b, nil
}

// Contains returns whether the address belongs to one of the block instances.
func (b *Block) Contains(addr uint32) bool {
	masked := addr & b.DecodeMask
	for _, base := range b.Bases {
		if base == masked {
			return true
		}
	}
	return false
}

// ResolveAddress resolves an absolute address to the owning register
// descriptor. Only exact base+offset addresses resolve.
func (b *Block) ResolveAddress(addr uint32) (*Descriptor, bool) {
	if !b.Contains(addr) {
		return nil, false
	}
	for _, base := range b.Bases {
		if descriptor, ok := b.byOffset[addr-base]; ok {
			return descriptor, true
		}
	}
	return nil, false
}

// ResolveName resolves a register name case-insensitively.
func (b *Block) ResolveName(name string) (*Descriptor, bool) {
	descriptor, ok := b.byName[strings.ToLower(name)]
	return descriptor, ok
}

// Instances returns the number of hardware instances of the block.
func (b *Block) Instances() int {
	return len(b.Bases)
}

// Address returns the absolute address of a descriptor for an instance.
func (b *Block) Address(instance int, descriptor *Descriptor) (uint32, bool) {
	if instance < 0 || instance >= len(b.Bases) {
		return 0, false
	}
	return b.Bases[instance] + descriptor.Offset, true
}
