// Package writelist compiles symbolic register field writes into an ordered
// list of write operations.
package writelist

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/retroenv/retrogolib/log"
	"github.com/retroenv/zynqinit/internal/registry"
)

// ErrZeroMask indicates a zero bit mask reaching a bit index computation.
// This is a bug in the catalog or the caller, not malformed input.
var ErrZeroMask = errors.New("zero bit mask")

// fullMask marks an operation writing all 32 bits of a register.
const fullMask = 0xFFFFFFFF

// Provenance records the symbolic origin of a write operation.
type Provenance struct {
	Block string
	Entry string
	Field string // field name or "fullreg"
	Value uint32 // original value as passed to Add
}

// Operation is a single write or poll at an absolute address. Data is stored
// bit-0-relative, rendering shifts it into the field's bit slot.
type Operation struct {
	Addr    uint32
	Mask    uint32
	Data    uint32
	Poll    bool // wait until masked bits match instead of writing
	Origins []Provenance
}

// ShiftedData returns the data value positioned in its field's bit slot.
func (op Operation) ShiftedData() (uint32, error) {
	shift, err := lowestSetBit(op.Mask)
	if err != nil {
		return 0, fmt.Errorf("operation at 0x%08x: %w", op.Addr, err)
	}
	return op.Data << shift, nil
}

// IsFullWrite returns whether the operation writes the whole register.
func (op Operation) IsFullWrite() bool {
	return op.Mask == fullMask
}

// AddFlags control how Add records an operation.
type AddFlags struct {
	Poll    bool // record a wait-until-match instead of a write
	FullReg bool // write all 32 bits, bypassing the field mask lookup
}

// List is an ordered sequence of write operations owned by one compiler run.
type List struct {
	name     string
	registry *registry.Registry
	logger   *log.Logger

	ops    []Operation
	merged bool
}

// New creates an empty write list resolving symbolic references through the
// given registry.
func New(name string, reg *registry.Registry, logger *log.Logger) *List {
	return &List{
		name:     name,
		registry: reg,
		logger:   logger,
	}
}

// Name returns the list name.
func (l *List) Name() string {
	return l.name
}

// Operations returns the compiled operations in order. The returned slice is
// owned by the list and must not be modified.
func (l *List) Operations() []Operation {
	return l.ops
}

// Add resolves a symbolic reference and appends a write operation storing
// the unshifted value. On a failed lookup it logs a diagnostic, appends
// nothing and returns false.
func (l *List) Add(block, entry, field string, value uint32, flags AddFlags) bool {
	var target registry.Target
	var err error

	if flags.FullReg {
		target.Mask = fullMask
		target.Addr, err = l.registry.FindEntry(block, entry)
	} else {
		target, err = l.registry.Find(block, entry, field)
	}
	if err != nil {
		l.logger.Warn("Skipping unresolved write",
			log.String("list", l.name),
			log.String("block", block),
			log.String("entry", entry),
			log.String("field", field),
			log.Err(err),
		)
		return false
	}

	origin := Provenance{Block: block, Entry: entry, Field: field, Value: value}
	if flags.FullReg {
		origin.Field = "fullreg"
	}

	l.ops = append(l.ops, Operation{
		Addr:    target.Addr,
		Mask:    target.Mask,
		Data:    value,
		Poll:    flags.Poll,
		Origins: []Provenance{origin},
	})
	return true
}

// lowestSetBit returns the bit index of the lowest set bit of a mask.
func lowestSetBit(mask uint32) (int, error) {
	if mask == 0 {
		return 0, ErrZeroMask
	}
	return bits.TrailingZeros32(mask), nil
}
