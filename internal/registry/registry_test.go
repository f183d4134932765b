package registry

import (
	"errors"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/zynqinit/internal/register"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()

	slcrLock := register.NewDescriptor("SLCR_LOCK", 0x00000004, 32, register.WriteOnly,
		register.ResetValue(0), "SLCR Write Protection Lock")
	slcrUnlock := register.NewDescriptor("SLCR_UNLOCK", 0x00000008, 32, register.WriteOnly,
		register.ResetValue(0), "SLCR Write Protection Unlock")
	slcr, err := register.NewBlock("slcr", []uint32{0xf8000000},
		[]*register.Descriptor{slcrLock, slcrUnlock})
	assert.NoError(t, err)

	uartCR := register.NewDescriptor("XUARTPS_CR_OFFSET", 0x00000000, 32, register.Mixed,
		register.ResetValue(0x128), "UART Control Register")
	uartCR.AddField("RXEN", 0x00000004)
	uart, err := register.NewBlock("uart", []uint32{0xe0000000, 0xe0001000},
		[]*register.Descriptor{uartCR})
	assert.NoError(t, err)

	reg, err := New(slcr, uart)
	assert.NoError(t, err)
	return reg
}

func TestNew(t *testing.T) {
	t.Run("duplicate block name", func(t *testing.T) {
		a, err := register.NewBlock("slcr", []uint32{0xf8000000}, nil)
		assert.NoError(t, err)
		b, err := register.NewBlock("SLCR", []uint32{0xf8001000}, nil)
		assert.NoError(t, err)

		_, err = New(a, b)
		assert.Error(t, err)
	})
}

func TestInsert(t *testing.T) {
	tests := []struct {
		name  string
		addr  uint32
		field string
		mask  uint32
		want  bool
	}{
		{name: "attaches to owning register", addr: 0xf8000008, field: "UNLOCK_KEY", mask: 0x0000ffff, want: true},
		{name: "attaches to second instance", addr: 0xe0001000, field: "TXEN", mask: 0x00000010, want: true},
		{name: "address owned by no block", addr: 0xdeadb000, field: "X", mask: 0x1, want: false},
		{name: "not an exact register offset", addr: 0xf8000006, field: "X", mask: 0x1, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry(t)
			assert.Equal(t, tt.want, reg.Insert(tt.addr, tt.field, tt.mask))
		})
	}

	t.Run("inserted field is findable", func(t *testing.T) {
		reg := testRegistry(t)
		assert.True(t, reg.Insert(0xf8000008, "UNLOCK_KEY", 0x0000ffff))

		target, err := reg.Find("slcr", "slcr_unlock", "unlock_key")
		assert.NoError(t, err)
		assert.Equal(t, uint32(0xf8000008), target.Addr)
		assert.Equal(t, uint32(0x0000ffff), target.Mask)
	})
}

func TestFind(t *testing.T) {
	tests := []struct {
		name    string
		block   string
		entry   string
		field   string
		wantErr error
	}{
		{name: "unknown block", block: "gem", entry: "X", field: "Y", wantErr: ErrUnknownBlock},
		{name: "unknown entry", block: "uart", entry: "XUARTPS_NOPE", field: "RXEN", wantErr: ErrUnknownEntry},
		{name: "unknown field", block: "uart", entry: "XUARTPS_CR_OFFSET", field: "NOPE", wantErr: ErrUnknownField},
		{name: "instance out of range", block: "uart2", entry: "XUARTPS_CR_OFFSET", field: "RXEN", wantErr: ErrUnknownInstance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reg := testRegistry(t)
			_, err := reg.Find(tt.block, tt.entry, tt.field)
			assert.True(t, errors.Is(err, tt.wantErr))
		})
	}

	t.Run("instance digit selects base address", func(t *testing.T) {
		reg := testRegistry(t)

		target, err := reg.Find("uart", "XUARTPS_CR_OFFSET", "RXEN")
		assert.NoError(t, err)
		assert.Equal(t, uint32(0xe0000000), target.Addr)

		target, err = reg.Find("uart1", "XUARTPS_CR_OFFSET", "RXEN")
		assert.NoError(t, err)
		assert.Equal(t, uint32(0xe0001000), target.Addr)
		assert.Equal(t, uint32(0x00000004), target.Mask)
	})

	t.Run("block name is case-insensitive", func(t *testing.T) {
		reg := testRegistry(t)
		_, err := reg.Find("UART1", "xuartps_cr_offset", "rxen")
		assert.NoError(t, err)
	})
}

func TestFindEntry(t *testing.T) {
	reg := testRegistry(t)

	addr, err := reg.FindEntry("slcr", "SLCR_LOCK")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xf8000004), addr)
}
