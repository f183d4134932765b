package loader

import (
	"strings"
	"testing"

	"github.com/retroenv/retrogolib/assert"
	"github.com/retroenv/zynqinit/internal/register"
	"github.com/retroenv/zynqinit/internal/registry"
)

const ps7InitSnippet = `/*
 * .. UNLOCK_KEY = 0xDF0DU
 *    ==> 0XF8000008[15:0] = 0x0000DF0DU
 *        ==> MASK : 0x0000FFFFU    VAL : 0x0000DF0DU
 *
 * .. PLL_RES = 0x2U
 *    ==> 0XF8000110[7:4] = 0x00000002U
 *        ==> MASK : 0x000000F0U    VAL : 0x00000020U
 *
 * .. SOME_FIELD = 0x1U
 *    ==> 0XDEADB000[0:0] = 0x00000001U
 *        ==> MASK : 0x00000001U    VAL : 0x00000001U
 */
unsigned long ps7_pll_init_data_2_0[] = {
 * .. AFTER_MARKER = 0x1U
 *    ==> 0XF8000008[0:0] = 0x00000001U
 *        ==> MASK : 0x00000001U    VAL : 0x00000001U
};
`

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()

	unlock := register.NewDescriptor("SLCR_UNLOCK", 0x00000008, 32, register.WriteOnly,
		register.ResetValue(0), "SLCR Write Protection Unlock")
	cfg := register.NewDescriptor("ARM_PLL_CFG", 0x00000110, 32, register.ReadWrite,
		register.ResetValue(0x00177EA0), "Arm PLL Configuration")

	slcr, err := register.NewBlock("slcr", []uint32{0xf8000000},
		[]*register.Descriptor{unlock, cfg})
	assert.NoError(t, err)

	reg, err := registry.New(slcr)
	assert.NoError(t, err)
	return reg
}

func TestScan(t *testing.T) {
	reg := testRegistry(t)
	fieldLoader := New(reg)

	stats, err := fieldLoader.Scan(strings.NewReader(ps7InitSnippet))
	assert.NoError(t, err)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 1, stats.Unresolved)

	target, err := reg.Find("slcr", "slcr_unlock", "unlock_key")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0xf8000008), target.Addr)
	assert.Equal(t, uint32(0x0000ffff), target.Mask)

	target, err = reg.Find("slcr", "arm_pll_cfg", "PLL_RES")
	assert.NoError(t, err)
	assert.Equal(t, uint32(0x000000f0), target.Mask)
}

// Everything after the first raw data table is repeated information and must
// not be scanned.
func TestScanStopsAtDataTable(t *testing.T) {
	reg := testRegistry(t)
	fieldLoader := New(reg)

	_, err := fieldLoader.Scan(strings.NewReader(ps7InitSnippet))
	assert.NoError(t, err)

	_, err = reg.Find("slcr", "slcr_unlock", "after_marker")
	assert.Error(t, err)
}

func TestScanMalformedIdiom(t *testing.T) {
	snippet := ` * no field name here
 *    ==> 0XF8000008[15:0] = 0x0000DF0DU
 * no mask here either
`
	fieldLoader := New(testRegistry(t))
	_, err := fieldLoader.Scan(strings.NewReader(snippet))
	assert.Error(t, err)
}

func TestScanEmptySource(t *testing.T) {
	fieldLoader := New(testRegistry(t))
	stats, err := fieldLoader.Scan(strings.NewReader(""))
	assert.NoError(t, err)
	assert.Equal(t, 0, stats.Resolved)
	assert.Equal(t, 0, stats.Unresolved)
}
