package zynq7000

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestNew(t *testing.T) {
	reg, err := New()
	assert.NoError(t, err)

	blocks := reg.Blocks()
	assert.Equal(t, 6, len(blocks))

	names := make([]string, 0, len(blocks))
	for _, block := range blocks {
		names = append(names, block.Name)
	}
	assert.Equal(t, []string{"slcr", "ddrc", "devcfg", "uart", "qspi", "sdio"}, names)
}

// Every descriptor of every block resolves back from base+offset, for every
// hardware instance.
func TestCatalogAddressRoundTrip(t *testing.T) {
	reg, err := New()
	assert.NoError(t, err)

	for _, block := range reg.Blocks() {
		for _, base := range block.Bases {
			for _, descriptor := range block.Descriptors {
				got, ok := block.ResolveAddress(base + descriptor.Offset)
				assert.True(t, ok)
				assert.Equal(t, descriptor, got)
			}
		}
	}
}

func TestCatalogKnownAddresses(t *testing.T) {
	reg, err := New()
	assert.NoError(t, err)

	tests := []struct {
		name  string
		block string
		entry string
		addr  uint32
	}{
		{name: "slcr unlock", block: "slcr", entry: "SLCR_UNLOCK", addr: 0xf8000008},
		{name: "devcfg control", block: "devcfg", entry: "XDCFG_CTRL_OFFSET", addr: 0xf8007000},
		{name: "uart instance 0", block: "uart", entry: "XUARTPS_CR_OFFSET", addr: 0xe0000000},
		{name: "uart1 instance digit", block: "uart1", entry: "XUARTPS_CR_OFFSET", addr: 0xe0001000},
		{name: "qspi config", block: "qspi", entry: "XQSPIPS_CR_OFFSET", addr: 0xe000d000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			addr, err := reg.FindEntry(tt.block, tt.entry)
			assert.NoError(t, err)
			assert.Equal(t, tt.addr, addr)
		})
	}
}

func TestCatalogReplicatedBlocks(t *testing.T) {
	reg, err := New()
	assert.NoError(t, err)

	for _, block := range reg.Blocks() {
		switch block.Name {
		case "uart", "sdio":
			assert.Equal(t, 2, block.Instances())
		default:
			assert.Equal(t, 1, block.Instances())
		}
	}
}
