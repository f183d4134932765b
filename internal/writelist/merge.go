package writelist

import (
	"errors"
	"fmt"
	"slices"
)

// ErrAlreadyMerged indicates a repeated Merge call. The shift transform is
// not idempotent, running it twice would corrupt the data values.
var ErrAlreadyMerged = errors.New("write list already merged")

// Merge coalesces adjacent operations targeting the same address. Values are
// shifted into their field slots, runs of operations with equal address and
// poll flag are OR-combined, then shifted back relative to the widened mask
// so that rendering produces the same bit pattern whether or not Merge ran.
// The original operation order is preserved, operations separated by a write
// to a different address are never combined.
func (l *List) Merge() error {
	if l.merged {
		return ErrAlreadyMerged
	}

	shifted, err := shiftToField(l.ops)
	if err != nil {
		return fmt.Errorf("merging list %s: %w", l.name, err)
	}

	unshifted, err := shiftToBit0(coalesce(shifted))
	if err != nil {
		return fmt.Errorf("merging list %s: %w", l.name, err)
	}

	l.ops = unshifted
	l.merged = true
	return nil
}

// shiftToField positions every data value into its field's bit slot.
func shiftToField(ops []Operation) ([]Operation, error) {
	result := make([]Operation, 0, len(ops))
	for _, op := range ops {
		shift, err := lowestSetBit(op.Mask)
		if err != nil {
			return nil, fmt.Errorf("operation at 0x%08x: %w", op.Addr, err)
		}
		op.Data <<= shift
		result = append(result, op)
	}
	return result, nil
}

// coalesce combines each operation with the immediately preceding output
// operation when both target the same address with the same poll flag.
func coalesce(ops []Operation) []Operation {
	result := make([]Operation, 0, len(ops))
	for _, op := range ops {
		if len(result) > 0 {
			last := &result[len(result)-1]
			if last.Addr == op.Addr && last.Poll == op.Poll {
				last.Mask |= op.Mask
				last.Data |= op.Data
				last.Origins = append(last.Origins, op.Origins...)
				continue
			}
		}
		op.Origins = slices.Clone(op.Origins)
		result = append(result, op)
	}
	return result
}

// shiftToBit0 restores the bit-0-relative data representation, using the
// possibly widened mask of each merged operation.
func shiftToBit0(ops []Operation) ([]Operation, error) {
	result := make([]Operation, 0, len(ops))
	for _, op := range ops {
		shift, err := lowestSetBit(op.Mask)
		if err != nil {
			return nil, fmt.Errorf("operation at 0x%08x: %w", op.Addr, err)
		}
		op.Data >>= shift
		result = append(result, op)
	}
	return result, nil
}
