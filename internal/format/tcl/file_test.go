package tcl

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/zynqinit/internal/config"
	"github.com/retroenv/zynqinit/internal/options"
	"github.com/retroenv/zynqinit/internal/register"
	"github.com/retroenv/zynqinit/internal/registry"
	"github.com/retroenv/zynqinit/internal/writelist"
)

func testList(t *testing.T) *writelist.List {
	t.Helper()

	unlock := register.NewDescriptor("SLCR_UNLOCK", 0x00000008, 32, register.WriteOnly,
		register.ResetValue(0), "SLCR Write Protection Unlock")
	unlock.AddField("UNLOCK_KEY", 0x0000FFFF)

	status := register.NewDescriptor("PLL_STATUS", 0x0000010C, 32, register.ReadOnly,
		register.ResetValue(0x3F), "PLL Status")
	status.AddField("ARM_PLL_LOCK", 0x00000001)

	ctrl := register.NewDescriptor("DDR_PLL_CTRL", 0x00000104, 32, register.ReadWrite,
		register.ResetValue(0x0001A008), "DDR PLL Control")
	ctrl.AddField("PLL_FDIV", 0x00FF0000)

	slcr, err := register.NewBlock("slcr", []uint32{0xf8000000},
		[]*register.Descriptor{unlock, status, ctrl})
	assert.NoError(t, err)

	reg, err := registry.New(slcr)
	assert.NoError(t, err)

	return writelist.New("init", reg, config.CreateLogger(false, true))
}

func TestWrite(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("slcr", "slcr_unlock", "unlock_key", 0xdf0d, writelist.AddFlags{}))
	assert.True(t, list.Add("slcr", "slcr_unlock", "", 0x12345678, writelist.AddFlags{FullReg: true}))
	assert.True(t, list.Add("slcr", "pll_status", "arm_pll_lock", 1, writelist.AddFlags{Poll: true}))

	buf := &strings.Builder{}
	writer := New([]*writelist.List{list}, options.NewGenerator("tcl"), buf)
	assert.NoError(t, writer.Write())

	want := "puts \"slcr slcr_unlock unlock_key: 0xdf0d\"\n" +
		"mask_write 0XF8000008 0x0000FFFF 0x0000DF0D\n" +
		"puts \"slcr slcr_unlock fullreg: 0x12345678\"\n" +
		"mwr -force 0XF8000008 0x12345678\n" +
		"puts \"slcr pll_status arm_pll_lock: 0x1\"\n" +
		"mask_poll 0XF800010C 0x00000001\n"
	assert.Equal(t, want, buf.String())
}

// A field above bit 0 has its value shifted into the field's bit slot.
func TestWriteShiftsFieldData(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("slcr", "ddr_pll_ctrl", "pll_fdiv", 0x5, writelist.AddFlags{}))

	opts := options.NewGenerator("tcl")
	opts.Comments = false

	buf := &strings.Builder{}
	writer := New([]*writelist.List{list}, opts, buf)
	assert.NoError(t, writer.Write())

	assert.Equal(t, "mask_write 0XF8000104 0x00FF0000 0x00050000\n", buf.String())
}

func TestWriteWithoutComments(t *testing.T) {
	list := testList(t)
	assert.True(t, list.Add("slcr", "pll_status", "arm_pll_lock", 1, writelist.AddFlags{Poll: true}))

	opts := options.NewGenerator("tcl")
	opts.Comments = false

	buf := &strings.Builder{}
	writer := New([]*writelist.List{list}, opts, buf)
	assert.NoError(t, writer.Write())

	assert.Equal(t, "mask_poll 0XF800010C 0x00000001\n", buf.String())
}
