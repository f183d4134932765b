// Package register describes memory mapped register blocks and their fields.
package register

import (
	"fmt"
	"strings"
)

// Access describes how a register can be accessed.
type Access int

const (
	ReadWrite Access = iota
	WriteOnly
	ReadOnly
	Mixed // register contains fields with different access kinds
	ClearOnWrite
	WriteToClear
)

var accessNames = map[Access]string{
	ReadWrite:    "rw",
	WriteOnly:    "wo",
	ReadOnly:     "ro",
	Mixed:        "mixed",
	ClearOnWrite: "clronwr",
	WriteToClear: "wtc",
}

// String returns the short access kind name as used in the TRM tables.
func (a Access) String() string {
	name, ok := accessNames[a]
	if !ok {
		return fmt.Sprintf("access(%d)", int(a))
	}
	return name
}

// Reset describes the reset value of a register. Registers whose reset value
// depends on strapping pins or training results have no defined value.
type Reset struct {
	Value   uint32
	Defined bool
}

// ResetValue returns a defined reset value.
func ResetValue(value uint32) Reset {
	return Reset{Value: value, Defined: true}
}

// Descriptor describes a single register within a block.
type Descriptor struct {
	Name        string
	Offset      uint32 // offset from the block base address
	Width       int    // width in bits
	Access      Access
	Reset       Reset
	Description string

	fieldNames []string          // insertion order, canonical names
	fields     map[string]uint32 // lowercased field name -> bit mask
}

// NewDescriptor creates a new register descriptor.
func NewDescriptor(name string, offset uint32, width int, access Access,
	reset Reset, description string) *Descriptor {

	return &Descriptor{
		Name:        name,
		Offset:      offset,
		Width:       width,
		Access:      access,
		Reset:       reset,
		Description: description,
		fields:      map[string]uint32{},
	}
}

// AddField attaches a named field mask to the register. Field names are
// matched case-insensitively, adding an existing field updates its mask.
func (d *Descriptor) AddField(name string, mask uint32) {
	key := strings.ToLower(name)
	if _, ok := d.fields[key]; !ok {
		d.fieldNames = append(d.fieldNames, name)
	}
	d.fields[key] = mask
}

// FieldMask looks up the bit mask of a named field. The second return value
// distinguishes an unknown field from a field covering zero bits.
func (d *Descriptor) FieldMask(name string) (uint32, bool) {
	mask, ok := d.fields[strings.ToLower(name)]
	return mask, ok
}

// Fields returns the attached field names in insertion order.
func (d *Descriptor) Fields() []string {
	return d.fieldNames
}
