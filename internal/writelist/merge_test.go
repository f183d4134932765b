package writelist

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestMergeAdjacentSameAddress(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "LOW", 0x12, AddFlags{}))
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "HIGH", 0x34, AddFlags{}))

	assert.NoError(t, list.Merge())

	ops := list.Operations()
	assert.Equal(t, 1, len(ops))
	assert.Equal(t, uint32(0x0000FFFF), ops[0].Mask)

	data, err := ops[0].ShiftedData()
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x12|0x34<<8), data)

	assert.Equal(t, []Provenance{
		{Block: "uart", Entry: "XUARTPS_CR_OFFSET", Field: "LOW", Value: 0x12},
		{Block: "uart", Entry: "XUARTPS_CR_OFFSET", Field: "HIGH", Value: 0x34},
	}, ops[0].Origins)
}

// Operations separated by a write to a different address are never combined,
// even if they target the same register.
func TestMergeAdjacencyOnly(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "LOW", 0x1, AddFlags{}))
	assert.True(t, list.Add("uart", "XUARTPS_MR_OFFSET", "CHRL", 0x2, AddFlags{}))
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "HIGH", 0x3, AddFlags{}))

	assert.NoError(t, list.Merge())

	ops := list.Operations()
	assert.Equal(t, 3, len(ops))
	assert.Equal(t, uint32(0xe0000000), ops[0].Addr)
	assert.Equal(t, uint32(0xe0000004), ops[1].Addr)
	assert.Equal(t, uint32(0xe0000000), ops[2].Addr)
}

func TestMergePollBoundary(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "LOW", 0x1, AddFlags{}))
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "HIGH", 0x2, AddFlags{Poll: true}))

	assert.NoError(t, list.Merge())

	ops := list.Operations()
	assert.Equal(t, 2, len(ops))
	assert.False(t, ops[0].Poll)
	assert.True(t, ops[1].Poll)
}

func TestMergeKeepsRenderedBits(t *testing.T) {
	unmerged := testList(t)
	assert.True(t, unmerged.Add("uart", "XUARTPS_CR_OFFSET", "UP", 0x5, AddFlags{}))

	merged := testList(t)
	assert.True(t, merged.Add("uart", "XUARTPS_CR_OFFSET", "UP", 0x5, AddFlags{}))
	assert.NoError(t, merged.Merge())

	want, err := unmerged.Operations()[0].ShiftedData()
	assert.NoError(t, err)
	got, err := merged.Operations()[0].ShiftedData()
	assert.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, uint32(0x00050000), got)
}

func TestMergeZeroMask(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "ZERO", 0x1, AddFlags{}))

	err := list.Merge()
	assert.True(t, errors.Is(err, ErrZeroMask))
}

func TestMergeRunsAtMostOnce(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("uart", "XUARTPS_CR_OFFSET", "LOW", 0x1, AddFlags{}))

	assert.NoError(t, list.Merge())
	assert.True(t, errors.Is(list.Merge(), ErrAlreadyMerged))
}

func TestMergeEmptyList(t *testing.T) {
	list := testList(t)
	assert.NoError(t, list.Merge())
	assert.Equal(t, 0, len(list.Operations()))
}
