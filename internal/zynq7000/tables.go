package zynq7000

import "github.com/retroenv/zynqinit/internal/register"

// Register tables from UG585, the Zynq-7000 TRM. Replicated peripherals
// (uart, sdio) carry one base address per hardware instance.

var slcrBlock = blockDef{
	name:  "slcr",
	bases: []uint32{0xf8000000},
	regs: []regDef{
		{"SCL", 0x00000000, 32, register.ReadWrite, rv(0x00000000), "Secure Configuration Lock"},
		{"SLCR_LOCK", 0x00000004, 32, register.WriteOnly, rv(0x00000000), "SLCR Write Protection Lock"},
		{"SLCR_UNLOCK", 0x00000008, 32, register.WriteOnly, rv(0x00000000), "SLCR Write Protection Unlock"},
		{"SLCR_LOCKSTA", 0x0000000C, 32, register.ReadOnly, rv(0x00000001), "SLCR Write Protection Status"},
		{"ARM_PLL_CTRL", 0x00000100, 32, register.ReadWrite, rv(0x0001A008), "Arm PLL Control"},
		{"DDR_PLL_CTRL", 0x00000104, 32, register.ReadWrite, rv(0x0001A008), "DDR PLL Control"},
		{"IO_PLL_CTRL", 0x00000108, 32, register.ReadWrite, rv(0x0001A008), "IO PLL Control"},
		{"PLL_STATUS", 0x0000010C, 32, register.ReadOnly, rv(0x0000003F), "PLL Status"},
		{"ARM_PLL_CFG", 0x00000110, 32, register.ReadWrite, rv(0x00177EA0), "Arm PLL Configuration"},
		{"DDR_PLL_CFG", 0x00000114, 32, register.ReadWrite, rv(0x00177EA0), "DDR PLL Configuration"},
		{"IO_PLL_CFG", 0x00000118, 32, register.ReadWrite, rv(0x00177EA0), "IO PLL Configuration"},
		{"ARM_CLK_CTRL", 0x00000120, 32, register.ReadWrite, rv(0x1F000400), "CPU Clock Control"},
		{"DDR_CLK_CTRL", 0x00000124, 32, register.ReadWrite, rv(0x18400003), "DDR Clock Control"},
		{"DCI_CLK_CTRL", 0x00000128, 32, register.ReadWrite, rv(0x01E03201), "DCI clock control"},
		{"APER_CLK_CTRL", 0x0000012C, 32, register.ReadWrite, rv(0x01FFCCCD), "AMBA Peripheral Clock Control"},
		{"USB0_CLK_CTRL", 0x00000130, 32, register.ReadWrite, rv(0x00101941), "USB 0 ULPI Clock Control"},
		{"USB1_CLK_CTRL", 0x00000134, 32, register.ReadWrite, rv(0x00101941), "USB 1 ULPI Clock Control"},
		{"GEM0_RCLK_CTRL", 0x00000138, 32, register.ReadWrite, rv(0x00000001), "GigE 0 Rx Clock and Rx Signals Select"},
		{"GEM1_RCLK_CTRL", 0x0000013C, 32, register.ReadWrite, rv(0x00000001), "GigE 1 Rx Clock and Rx Signals Select"},
		{"GEM0_CLK_CTRL", 0x00000140, 32, register.ReadWrite, rv(0x00003C01), "GigE 0 Ref Clock Control"},
		{"GEM1_CLK_CTRL", 0x00000144, 32, register.ReadWrite, rv(0x00003C01), "GigE 1 Ref Clock Control"},
		{"SMC_CLK_CTRL", 0x00000148, 32, register.ReadWrite, rv(0x00003C21), "SMC Ref Clock Control"},
		{"LQSPI_CLK_CTRL", 0x0000014C, 32, register.ReadWrite, rv(0x00002821), "Quad SPI Ref Clock Control"},
		{"SDIO_CLK_CTRL", 0x00000150, 32, register.ReadWrite, rv(0x00001E03), "SDIO Ref Clock Control"},
		{"UART_CLK_CTRL", 0x00000154, 32, register.ReadWrite, rv(0x00003F03), "UART Ref Clock Control"},
		{"SPI_CLK_CTRL", 0x00000158, 32, register.ReadWrite, rv(0x00003F03), "SPI Ref Clock Control"},
		{"CAN_CLK_CTRL", 0x0000015C, 32, register.ReadWrite, rv(0x00501903), "CAN Ref Clock Control"},
		{"CAN_MIOCLK_CTRL", 0x00000160, 32, register.ReadWrite, rv(0x00000000), "CAN MIO Clock Control"},
		{"DBG_CLK_CTRL", 0x00000164, 32, register.ReadWrite, rv(0x00000F03), "SoC Debug Clock Control"},
		{"PCAP_CLK_CTRL", 0x00000168, 32, register.ReadWrite, rv(0x00000F01), "PCAP Clock Control"},
		{"TOPSW_CLK_CTRL", 0x0000016C, 32, register.ReadWrite, rv(0x00000000), "Central Interconnect Clock Control"},
		{"FPGA0_CLK_CTRL", 0x00000170, 32, register.ReadWrite, rv(0x00101800), "PL Clock 0 Output control"},
		{"FPGA0_THR_CTRL", 0x00000174, 32, register.ReadWrite, rv(0x00000000), "PL Clock 0 Throttle control"},
		{"FPGA0_THR_CNT", 0x00000178, 32, register.ReadWrite, rv(0x00000000), "PL Clock 0 Throttle Count control"},
		{"FPGA0_THR_STA", 0x0000017C, 32, register.ReadOnly, rv(0x00010000), "PL Clock 0 Throttle Status read"},
		{"FPGA1_CLK_CTRL", 0x00000180, 32, register.ReadWrite, rv(0x00101800), "PL Clock 1 Output control"},
		{"FPGA1_THR_CTRL", 0x00000184, 32, register.ReadWrite, rv(0x00000000), "PL Clock 1 Throttle control"},
		{"FPGA1_THR_CNT", 0x00000188, 32, register.ReadWrite, rv(0x00000000), "PL Clock 1 Throttle Count"},
		{"FPGA1_THR_STA", 0x0000018C, 32, register.ReadOnly, rv(0x00010000), "PL Clock 1 Throttle Status control"},
		{"FPGA2_CLK_CTRL", 0x00000190, 32, register.ReadWrite, rv(0x00101800), "PL Clock 2 output control"},
		{"FPGA2_THR_CTRL", 0x00000194, 32, register.ReadWrite, rv(0x00000000), "PL Clock 2 Throttle Control"},
		{"FPGA2_THR_CNT", 0x00000198, 32, register.ReadWrite, rv(0x00000000), "PL Clock 2 Throttle Count"},
		{"FPGA2_THR_STA", 0x0000019C, 32, register.ReadOnly, rv(0x00010000), "PL Clock 2 Throttle Status"},
		{"FPGA3_CLK_CTRL", 0x000001A0, 32, register.ReadWrite, rv(0x00101800), "PL Clock 3 output control"},
		{"FPGA3_THR_CTRL", 0x000001A4, 32, register.ReadWrite, rv(0x00000000), "PL Clock 3 Throttle Control"},
		{"FPGA3_THR_CNT", 0x000001A8, 32, register.ReadWrite, rv(0x00000000), "PL Clock 3 Throttle Count"},
		{"FPGA3_THR_STA", 0x000001AC, 32, register.ReadOnly, rv(0x00010000), "PL Clock 3 Throttle Status"},
		{"CLK_621_TRUE", 0x000001C4, 32, register.ReadWrite, rv(0x00000001), "CPU Clock Ratio Mode select"},
		{"PSS_RST_CTRL", 0x00000200, 32, register.ReadWrite, rv(0x00000000), "PS Software Reset Control"},
		{"DDR_RST_CTRL", 0x00000204, 32, register.ReadWrite, rv(0x00000000), "DDR Software Reset Control"},
		{"TOPSW_RST_CTRL", 0x00000208, 32, register.ReadWrite, rv(0x00000000), "Central Interconnect Reset Control"},
		{"DMAC_RST_CTRL", 0x0000020C, 32, register.ReadWrite, rv(0x00000000), "DMAC Software Reset Control"},
		{"USB_RST_CTRL", 0x00000210, 32, register.ReadWrite, rv(0x00000000), "USB Software Reset Control"},
		{"GEM_RST_CTRL", 0x00000214, 32, register.ReadWrite, rv(0x00000000), "Gigabit Ethernet SW Reset Control"},
		{"SDIO_RST_CTRL", 0x00000218, 32, register.ReadWrite, rv(0x00000000), "SDIO Software Reset Control"},
		{"SPI_RST_CTRL", 0x0000021C, 32, register.ReadWrite, rv(0x00000000), "SPI Software Reset Control"},
		{"CAN_RST_CTRL", 0x00000220, 32, register.ReadWrite, rv(0x00000000), "CAN Software Reset Control"},
		{"I2C_RST_CTRL", 0x00000224, 32, register.ReadWrite, rv(0x00000000), "I2C Software Reset Control"},
		{"UART_RST_CTRL", 0x00000228, 32, register.ReadWrite, rv(0x00000000), "UART Software Reset Control"},
		{"GPIO_RST_CTRL", 0x0000022C, 32, register.ReadWrite, rv(0x00000000), "GPIO Software Reset Control"},
		{"LQSPI_RST_CTRL", 0x00000230, 32, register.ReadWrite, rv(0x00000000), "Quad SPI Software Reset Control"},
		{"SMC_RST_CTRL", 0x00000234, 32, register.ReadWrite, rv(0x00000000), "SMC Software Reset Control"},
		{"OCM_RST_CTRL", 0x00000238, 32, register.ReadWrite, rv(0x00000000), "OCM Software Reset Control"},
		{"FPGA_RST_CTRL", 0x00000240, 32, register.ReadWrite, rv(0x01F33F0F), "FPGA Software Reset Control"},
		{"A9_CPU_RST_CTRL", 0x00000244, 32, register.ReadWrite, rv(0x00000000), "CPU Reset and Clock control"},
		{"RS_AWDT_CTRL", 0x0000024C, 32, register.ReadWrite, rv(0x00000000), "Watchdog Timer Reset Control"},
		{"REBOOT_STATUS", 0x00000258, 32, register.ReadWrite, rv(0x00400000), "Reboot Status, persistent"},
		{"BOOT_MODE", 0x0000025C, 32, register.Mixed, noReset, "Boot Mode Strapping Pins"},
		{"APU_CTRL", 0x00000300, 32, register.ReadWrite, rv(0x00000000), "APU Control"},
		{"WDT_CLK_SEL", 0x00000304, 32, register.ReadWrite, rv(0x00000000), "SWDT clock source select"},
		{"TZ_DMA_NS", 0x00000440, 32, register.ReadWrite, rv(0x00000000), "DMAC TrustZone Config"},
		{"TZ_DMA_IRQ_NS", 0x00000444, 32, register.ReadWrite, rv(0x00000000), "DMAC TrustZone Config for Interrupts"},
		{"TZ_DMA_PERIPH_NS", 0x00000448, 32, register.ReadWrite, rv(0x00000000), "DMAC TrustZone Config for Peripherals"},
		{"PSS_IDCODE", 0x00000530, 32, register.ReadOnly, noReset, "PS IDCODE"},
		{"DDR_URGENT", 0x00000600, 32, register.ReadWrite, rv(0x00000000), "DDR Urgent Control"},
		{"DDR_CAL_START", 0x0000060C, 32, register.Mixed, rv(0x00000000), "DDR Calibration Start Triggers"},
		{"DDR_REF_START", 0x00000614, 32, register.Mixed, rv(0x00000000), "DDR Refresh Start Triggers"},
		{"DDR_CMD_STA", 0x00000618, 32, register.Mixed, rv(0x00000000), "DDR Command Store Status"},
		{"DDR_URGENT_SEL", 0x0000061C, 32, register.ReadWrite, rv(0x00000000), "DDR Urgent Select"},
		{"DDR_DFI_STATUS", 0x00000620, 32, register.Mixed, rv(0x00000000), "DDR DFI status"},
		{"MIO_PIN_00", 0x00000700, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 0 Control"},
		{"MIO_PIN_01", 0x00000704, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 1 Control"},
		{"MIO_PIN_02", 0x00000708, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 2 Control"},
		{"MIO_PIN_03", 0x0000070C, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 3 Control"},
		{"MIO_PIN_04", 0x00000710, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 4 Control"},
		{"MIO_PIN_05", 0x00000714, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 5 Control"},
		{"MIO_PIN_06", 0x00000718, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 6 Control"},
		{"MIO_PIN_07", 0x0000071C, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 7 Control"},
		{"MIO_PIN_08", 0x00000720, 32, register.ReadWrite, rv(0x00000601), "MIO Pin 8 Control"},
		{"MIO_PIN_09", 0x00000724, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 9 Control"},
		{"MIO_PIN_10", 0x00000728, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 10 Control"},
		{"MIO_PIN_11", 0x0000072C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 11 Control"},
		{"MIO_PIN_12", 0x00000730, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 12 Control"},
		{"MIO_PIN_13", 0x00000734, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 13 Control"},
		{"MIO_PIN_14", 0x00000738, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 14 Control"},
		{"MIO_PIN_15", 0x0000073C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 15 Control"},
		{"MIO_PIN_16", 0x00000740, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 16 Control"},
		{"MIO_PIN_17", 0x00000744, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 17 Control"},
		{"MIO_PIN_18", 0x00000748, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 18 Control"},
		{"MIO_PIN_19", 0x0000074C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 19 Control"},
		{"MIO_PIN_20", 0x00000750, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 20 Control"},
		{"MIO_PIN_21", 0x00000754, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 21 Control"},
		{"MIO_PIN_22", 0x00000758, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 22 Control"},
		{"MIO_PIN_23", 0x0000075C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 23 Control"},
		{"MIO_PIN_24", 0x00000760, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 24 Control"},
		{"MIO_PIN_25", 0x00000764, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 25 Control"},
		{"MIO_PIN_26", 0x00000768, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 26 Control"},
		{"MIO_PIN_27", 0x0000076C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 27 Control"},
		{"MIO_PIN_28", 0x00000770, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 28 Control"},
		{"MIO_PIN_29", 0x00000774, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 29 Control"},
		{"MIO_PIN_30", 0x00000778, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 30 Control"},
		{"MIO_PIN_31", 0x0000077C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 31 Control"},
		{"MIO_PIN_32", 0x00000780, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 32 Control"},
		{"MIO_PIN_33", 0x00000784, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 33 Control"},
		{"MIO_PIN_34", 0x00000788, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 34 Control"},
		{"MIO_PIN_35", 0x0000078C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 35 Control"},
		{"MIO_PIN_36", 0x00000790, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 36 Control"},
		{"MIO_PIN_37", 0x00000794, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 37 Control"},
		{"MIO_PIN_38", 0x00000798, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 38 Control"},
		{"MIO_PIN_39", 0x0000079C, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 39 Control"},
		{"MIO_PIN_40", 0x000007A0, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 40 Control"},
		{"MIO_PIN_41", 0x000007A4, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 41 Control"},
		{"MIO_PIN_42", 0x000007A8, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 42 Control"},
		{"MIO_PIN_43", 0x000007AC, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 43 Control"},
		{"MIO_PIN_44", 0x000007B0, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 44 Control"},
		{"MIO_PIN_45", 0x000007B4, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 45 Control"},
		{"MIO_PIN_46", 0x000007B8, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 46 Control"},
		{"MIO_PIN_47", 0x000007BC, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 47 Control"},
		{"MIO_PIN_48", 0x000007C0, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 48 Control"},
		{"MIO_PIN_49", 0x000007C4, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 49 Control"},
		{"MIO_PIN_50", 0x000007C8, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 50 Control"},
		{"MIO_PIN_51", 0x000007CC, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 51 Control"},
		{"MIO_PIN_52", 0x000007D0, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 52 Control"},
		{"MIO_PIN_53", 0x000007D4, 32, register.ReadWrite, rv(0x00001601), "MIO Pin 53 Control"},
		{"MIO_LOOPBACK", 0x00000804, 32, register.ReadWrite, rv(0x00000000), "Loopback function within MIO"},
		{"MIO_MST_TRI0", 0x0000080C, 32, register.ReadWrite, rv(0xFFFFFFFF), "MIO pin Tri-state Enables, 31:0"},
		{"MIO_MST_TRI1", 0x00000810, 32, register.ReadWrite, rv(0x003FFFFF), "MIO pin Tri-state Enables, 53:32"},
		{"SD0_WP_CD_SEL", 0x00000830, 32, register.ReadWrite, rv(0x00000000), "SDIO 0 WP CD select"},
		{"SD1_WP_CD_SEL", 0x00000834, 32, register.ReadWrite, rv(0x00000000), "SDIO 1 WP CD select"},
		{"LVL_SHFTR_EN", 0x00000900, 32, register.ReadWrite, rv(0x00000000), "Level Shifters Enable"},
		{"OCM_CFG", 0x00000910, 32, register.ReadWrite, rv(0x00000000), "OCM Address Mapping"},
		{"Reserved", 0x00000A1C, 32, register.ReadWrite, rv(0x00010101), "Reserved"},
		{"GPIOB_CTRL", 0x00000B00, 32, register.ReadWrite, rv(0x00000000), "PS IO Buffer Control"},
		{"GPIOB_CFG_CMOS18", 0x00000B04, 32, register.ReadWrite, rv(0x00000000), "MIO GPIOB CMOS 1.8V config"},
		{"GPIOB_CFG_CMOS25", 0x00000B08, 32, register.ReadWrite, rv(0x00000000), "MIO GPIOB CMOS 2.5V config"},
		{"GPIOB_CFG_CMOS33", 0x00000B0C, 32, register.ReadWrite, rv(0x00000000), "MIO GPIOB CMOS 3.3V config"},
		{"GPIOB_CFG_HSTL", 0x00000B14, 32, register.ReadWrite, rv(0x00000000), "MIO GPIOB HSTL config"},
		{"GPIOB_DRVR_BIAS_CTRL", 0x00000B18, 32, register.Mixed, rv(0x00000000), "MIO GPIOB Driver Bias Control"},
		{"DDRIOB_ADDR0", 0x00000B40, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for ARegister(14:0), CKE and DRST_B"},
		{"DDRIOB_ADDR1", 0x00000B44, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for BARegister(2:0), ODT, CS_B, WE_B, RAS_B and CAS_B"},
		{"DDRIOB_DATA0", 0x00000B48, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for Data 15:0"},
		{"DDRIOB_DATA1", 0x00000B4C, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for Data 31:16"},
		{"DDRIOB_DIFF0", 0x00000B50, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for DQS 1:0"},
		{"DDRIOB_DIFF1", 0x00000B54, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for DQS 3:2"},
		{"DDRIOB_CLOCK", 0x00000B58, 32, register.ReadWrite, rv(0x00000800), "DDR IOB Config for Clock Output"},
		{"DDRIOB_DRIVE_SLEW_ADDR", 0x00000B5C, 32, register.ReadWrite, rv(0x00000000), "Drive and Slew controls for Address and Command pins of the DDR Interface"},
		{"DDRIOB_DRIVE_SLEW_DATA", 0x00000B60, 32, register.ReadWrite, rv(0x00000000), "Drive and Slew controls for DQ pins of the DDR Interface"},
		{"DDRIOB_DRIVE_SLEW_DIFF", 0x00000B64, 32, register.ReadWrite, rv(0x00000000), "Drive and Slew controls for DQS pins of the DDR Interface"},
		{"DDRIOB_DRIVE_SLEW_CLOCK", 0x00000B68, 32, register.ReadWrite, rv(0x00000000), "Drive and Slew controls for Clock pins of the DDR Interface"},
		{"DDRIOB_DDR_CTRL", 0x00000B6C, 32, register.ReadWrite, rv(0x00000000), "DDR IOB Buffer Control"},
		{"DDRIOB_DCI_CTRL", 0x00000B70, 32, register.ReadWrite, rv(0x00000020), "DDR IOB DCI Config"},
		{"DDRIOB_DCI_STATUS", 0x00000B74, 32, register.Mixed, rv(0x00000000), "DDR IO Buffer DCI Status"},
	},
}

var ddrcBlock = blockDef{
	name:  "ddrc",
	bases: []uint32{0xf8006000},
	regs: []regDef{
		{"ddrc_ctrl", 0x00000000, 32, register.ReadWrite, rv(0x00000200), "DDRC Control"},
		{"Two_rank_cfg", 0x00000004, 29, register.ReadWrite, rv(0x000C1076), "Two Rank Configuration"},
		{"HPR_reg", 0x00000008, 26, register.ReadWrite, rv(0x03C0780F), "HPR Queue control"},
		{"LPR_reg", 0x0000000C, 26, register.ReadWrite, rv(0x03C0780F), "LPR Queue control"},
		{"WR_reg", 0x00000010, 26, register.ReadWrite, rv(0x0007F80F), "WR Queue control"},
		{"DRAM_param_reg0", 0x00000014, 21, register.ReadWrite, rv(0x00041016), "DRAM Parameters 0"},
		{"DRAM_param_reg1", 0x00000018, 32, register.ReadWrite, rv(0x351B48D9), "DRAM Parameters 1"},
		{"DRAM_param_reg2", 0x0000001C, 32, register.ReadWrite, rv(0x83015904), "DRAM Parameters 2"},
		{"DRAM_param_reg3", 0x00000020, 32, register.Mixed, rv(0x250882D0), "DRAM Parameters 3"},
		{"DRAM_param_reg4", 0x00000024, 28, register.Mixed, rv(0x0000003C), "DRAM Parameters 4"},
		{"DRAM_init_param", 0x00000028, 14, register.ReadWrite, rv(0x00002007), "DRAM Initialization Parameters"},
		{"DRAM_EMR_reg", 0x0000002C, 32, register.ReadWrite, rv(0x00000008), "DRAM EMR2, EMR3 access"},
		{"DRAM_EMR_MR_reg", 0x00000030, 32, register.ReadWrite, rv(0x00000940), "DRAM EMR, MR access"},
		{"DRAM_burst8_rdwr", 0x00000034, 29, register.Mixed, rv(0x00020034), "DRAM Burst 8 read/write"},
		{"DRAM_disable_DQ", 0x00000038, 13, register.Mixed, rv(0x00000000), "DRAM Disable DQ"},
		{"DRAM_addr_map_bank", 0x0000003C, 20, register.ReadWrite, rv(0x00000F77), "Row/Column address bits"},
		{"DRAM_addr_map_col", 0x00000040, 32, register.ReadWrite, rv(0xFFF00000), "Column address bits"},
		{"DRAM_addr_map_row", 0x00000044, 28, register.ReadWrite, rv(0x0FF55555), "Select DRAM row address bits"},
		{"DRAM_ODT_reg", 0x00000048, 30, register.ReadWrite, rv(0x00000249), "DRAM ODT control"},
		{"phy_dbg_reg", 0x0000004C, 20, register.ReadOnly, rv(0x00000000), "PHY debug"},
		{"phy_cmd_timeout_rddata_cpt", 0x00000050, 32, register.Mixed, rv(0x00010200), "PHY command time out and read data capture FIFO"},
		{"mode_sts_reg", 0x00000054, 21, register.ReadOnly, rv(0x00000000), "Controller operation mode status"},
		{"DLL_calib", 0x00000058, 17, register.ReadWrite, rv(0x00000101), "DLL calibration"},
		{"ODT_delay_hold", 0x0000005C, 16, register.ReadWrite, rv(0x00000023), "ODT delay and ODT hold"},
		{"ctrl_reg1", 0x00000060, 13, register.Mixed, rv(0x0000003E), "Controller 1"},
		{"ctrl_reg2", 0x00000064, 18, register.Mixed, rv(0x00020000), "Controller 2"},
		{"ctrl_reg3", 0x00000068, 26, register.ReadWrite, rv(0x00284027), "Controller 3"},
		{"ctrl_reg4", 0x0000006C, 16, register.ReadWrite, rv(0x00001610), "Controller 4"},
		{"ctrl_reg5", 0x00000078, 32, register.Mixed, rv(0x00455111), "Controller register 5"},
		{"ctrl_reg6", 0x0000007C, 32, register.Mixed, rv(0x00032222), "Controller register 6"},
		{"CHE_REFRESH_TIMER01", 0x000000A0, 24, register.ReadWrite, rv(0x00008000), "CHE_REFRESH_TIMER01"},
		{"CHE_T_ZQ", 0x000000A4, 32, register.ReadWrite, rv(0x10300802), "ZQ parameters"},
		{"CHE_T_ZQ_Short_Interval_Reg", 0x000000A8, 28, register.ReadWrite, rv(0x0020003A), "Misc parameters"},
		{"deep_pwrdwn_reg", 0x000000AC, 9, register.ReadWrite, rv(0x00000000), "Deep powerdown (LPDDR2)"},
		{"reg_2c", 0x000000B0, 29, register.Mixed, rv(0x00000000), "Training control"},
		{"reg_2d", 0x000000B4, 11, register.ReadWrite, rv(0x00000200), "Misc Debug"},
		{"dfi_timing", 0x000000B8, 25, register.ReadWrite, rv(0x00200067), "DFI timing"},
		{"CHE_ECC_CONTROL_REG_OFFSET", 0x000000C4, 2, register.ReadWrite, rv(0x00000000), "ECCerror clear"},
		{"CHE_CORR_ECC_LOG_REG_OFFSET", 0x000000C8, 8, register.Mixed, rv(0x00000000), "ECCerror correction"},
		{"CHE_CORR_ECC_ADDR_REG_OFFSET", 0x000000CC, 31, register.ReadOnly, rv(0x00000000), "ECC error correction address log"},
		{"CHE_CORR_ECC_DATA_31_0_REG_OFFSET", 0x000000D0, 32, register.ReadOnly, rv(0x00000000), "ECC error correction data log low"},
		{"CHE_CORR_ECC_DATA_63_32_REG_OFFSET", 0x000000D4, 32, register.ReadOnly, rv(0x00000000), "ECC error correction data log mid"},
		{"CHE_CORR_ECC_DATA_71_64_REG_OFFSET", 0x000000D8, 8, register.ReadOnly, rv(0x00000000), "ECCerror correction data log high"},
		{"CHE_UNCORR_ECC_LOG_REG_OFFSET", 0x000000DC, 1, register.ClearOnWrite, rv(0x00000000), "ECC unrecoverable error status"},
		{"CHE_UNCORR_ECC_ADDR_REG_OFFSET", 0x000000E0, 31, register.ReadOnly, rv(0x00000000), "ECC unrecoverable error address"},
		{"CHE_UNCORR_ECC_DATA_31_0_REG_OFFSET", 0x000000E4, 32, register.ReadOnly, rv(0x00000000), "ECC unrecoverable error data low"},
		{"CHE_UNCORR_ECC_DATA_63_32_REG_OFFSET", 0x000000E8, 32, register.ReadOnly, rv(0x00000000), "ECC unrecoverable error data middle"},
		{"CHE_UNCORR_ECC_DATA_71_64_REG_OFFSET", 0x000000EC, 8, register.ReadOnly, rv(0x00000000), "ECC unrecoverable error data high"},
		{"CHE_ECC_STATS_REG_OFFSET", 0x000000F0, 16, register.ClearOnWrite, rv(0x00000000), "ECC error count"},
		{"ECC_scrub", 0x000000F4, 4, register.ReadWrite, rv(0x00000008), "ECC mode/scrub"},
		{"CHE_ECC_CORR_BIT_MASK_31_0_REG_OFFSET", 0x000000F8, 32, register.ReadOnly, rv(0x00000000), "ECC data mask low"},
		{"CHE_ECC_CORR_BIT_MASK_63_32_REG_OFFSET", 0x000000FC, 32, register.ReadOnly, rv(0x00000000), "ECC data mask high"},
		{"phy_rcvr_enable", 0x00000114, 8, register.ReadWrite, rv(0x00000000), "Phyreceiver enable register"},
		{"PHY_Config0", 0x00000118, 31, register.ReadWrite, rv(0x40000001), "PHY configuration register for data slice 0."},
		{"PHY_Config1", 0x0000011C, 31, register.ReadWrite, rv(0x40000001), "PHY configuration register for data slice 1."},
		{"PHY_Config2", 0x00000120, 31, register.ReadWrite, rv(0x40000001), "PHY configuration register for data slice 2."},
		{"PHY_Config3", 0x00000124, 31, register.ReadWrite, rv(0x40000001), "PHY configuration register for data slice 3."},
		{"phy_init_ratio0", 0x0000012C, 20, register.ReadWrite, rv(0x00000000), "PHY init ratio register for data slice 0."},
		{"phy_init_ratio1", 0x00000130, 20, register.ReadWrite, rv(0x00000000), "PHY init ratio register for data slice 1."},
		{"phy_init_ratio2", 0x00000134, 20, register.ReadWrite, rv(0x00000000), "PHY init ratio register for data slice 2."},
		{"phy_init_ratio3", 0x00000138, 20, register.ReadWrite, rv(0x00000000), "PHY init ratio register for data slice 3."},
		{"phy_rd_dqs_cfg0", 0x00000140, 20, register.ReadWrite, rv(0x00000040), "PHY read DQS configuration register for data slice 0."},
		{"phy_rd_dqs_cfg1", 0x00000144, 20, register.ReadWrite, rv(0x00000040), "PHY read DQS configuration register for data slice 1."},
		{"phy_rd_dqs_cfg2", 0x00000148, 20, register.ReadWrite, rv(0x00000040), "PHY read DQS configuration register for data slice 2."},
		{"phy_rd_dqs_cfg3", 0x0000014C, 20, register.ReadWrite, rv(0x00000040), "PHY read DQS configuration register for data slice 3."},
		{"phy_wr_dqs_cfg0", 0x00000154, 20, register.ReadWrite, rv(0x00000000), "PHY write DQS configuration register for data slice 0."},
		{"phy_wr_dqs_cfg1", 0x00000158, 20, register.ReadWrite, rv(0x00000000), "PHY write DQS configuration register for data slice 1."},
		{"phy_wr_dqs_cfg2", 0x0000015C, 20, register.ReadWrite, rv(0x00000000), "PHY write DQS configuration register for data slice 2."},
		{"phy_wr_dqs_cfg3", 0x00000160, 20, register.ReadWrite, rv(0x00000000), "PHY write DQS configuration register for data slice 3."},
		{"phy_we_cfg0", 0x00000168, 21, register.ReadWrite, rv(0x00000040), "PHY FIFO write enable configuration for data slice 0."},
		{"phy_we_cfg1", 0x0000016C, 21, register.ReadWrite, rv(0x00000040), "PHY FIFO write enable configuration for data slice 1."},
		{"phy_we_cfg2", 0x00000170, 21, register.ReadWrite, rv(0x00000040), "PHY FIFO write enable configuration for data slice 2."},
		{"phy_we_cfg3", 0x00000174, 21, register.ReadWrite, rv(0x00000040), "PHY FIFO write enable configuration for data slice 3."},
		{"wr_data_slv0", 0x0000017C, 20, register.ReadWrite, rv(0x00000080), "PHY write data slave ratio config for data slice 0."},
		{"wr_data_slv1", 0x00000180, 20, register.ReadWrite, rv(0x00000080), "PHY write data slave ratio config for data slice 1."},
		{"wr_data_slv2", 0x00000184, 20, register.ReadWrite, rv(0x00000080), "PHY write data slave ratio config for data slice 2."},
		{"wr_data_slv3", 0x00000188, 20, register.ReadWrite, rv(0x00000080), "PHY write data slave ratio config for data slice 3."},
		{"reg_64", 0x00000190, 32, register.ReadWrite, rv(0x10020000), "Training control 2"},
		{"reg_65", 0x00000194, 20, register.ReadWrite, rv(0x00000000), "Training control 3"},
		{"reg69_6a0", 0x000001A4, 29, register.ReadOnly, rv(0x00070000), "Training results for data slice 0."},
		{"reg69_6a1", 0x000001A8, 29, register.ReadOnly, rv(0x00060200), "Training results for data slice 1."},
		{"reg6c_6d2", 0x000001B0, 28, register.ReadOnly, rv(0x00040600), "Training results for data slice 2."},
		{"reg6c_6d3", 0x000001B4, 28, register.ReadOnly, rv(0x00000E00), "Training results for data slice 3."},
		{"reg6e_710", 0x000001B8, 30, register.ReadOnly, noReset, "Training results (2) for data slice 0."},
		{"reg6e_711", 0x000001BC, 30, register.ReadOnly, noReset, "Training results (2) for data slice 1."},
		{"reg6e_712", 0x000001C0, 30, register.ReadOnly, noReset, "Training results (2) for data slice 2."},
		{"reg6e_713", 0x000001C4, 30, register.ReadOnly, noReset, "Training results (2) for data slice 3."},
		{"phy_dll_sts0", 0x000001CC, 27, register.ReadOnly, rv(0x00000000), "Slave DLL results for data slice 0."},
		{"phy_dll_sts1", 0x000001D0, 27, register.ReadOnly, rv(0x00000000), "Slave DLL results for data slice 1."},
		{"phy_dll_sts2", 0x000001D4, 27, register.ReadOnly, rv(0x00000000), "Slave DLL results for data slice 2."},
		{"phy_dll_sts3", 0x000001D8, 27, register.ReadOnly, rv(0x00000000), "Slave DLL results for data slice 3."},
		{"dll_lock_sts", 0x000001E0, 24, register.ReadOnly, rv(0x00F00000), "DLL Lock Status, read"},
		{"phy_ctrl_sts", 0x000001E4, 30, register.ReadOnly, noReset, "PHY Control status, read"},
		{"phy_ctrl_sts_reg2", 0x000001E8, 27, register.ReadOnly, rv(0x00000013), "PHY Control status (2), read"},
		{"axi_id", 0x00000200, 26, register.ReadOnly, rv(0x00153042), "ID and revision information"},
		{"page_mask", 0x00000204, 32, register.ReadWrite, rv(0x00000000), "Page mask"},
		{"axi_priority_wr_port0", 0x00000208, 20, register.Mixed, rv(0x000803FF), "AXI Priority control for write port 0."},
		{"axi_priority_wr_port1", 0x0000020C, 20, register.Mixed, rv(0x000803FF), "AXI Priority control for write port 1."},
		{"axi_priority_wr_port2", 0x00000210, 20, register.Mixed, rv(0x000803FF), "AXI Priority control for write port 2."},
		{"axi_priority_wr_port3", 0x00000214, 20, register.Mixed, rv(0x000803FF), "AXI Priority control for write port 3."},
		{"axi_priority_rd_port0", 0x00000218, 20, register.Mixed, rv(0x000003FF), "AXI Priority control for read port 0."},
		{"axi_priority_rd_port1", 0x0000021C, 20, register.Mixed, rv(0x000003FF), "AXI Priority control for read port 1."},
		{"axi_priority_rd_port2", 0x00000220, 20, register.Mixed, rv(0x000003FF), "AXI Priority control for read port 2."},
		{"axi_priority_rd_port3", 0x00000224, 20, register.Mixed, rv(0x000003FF), "AXI Priority control for read port 3."},
		{"excl_access_cfg0", 0x00000294, 18, register.ReadWrite, rv(0x00000000), "Exclusive access configuration for port 0."},
		{"excl_access_cfg1", 0x00000298, 18, register.ReadWrite, rv(0x00000000), "Exclusive access configuration for port 1."},
		{"excl_access_cfg2", 0x0000029C, 18, register.ReadWrite, rv(0x00000000), "Exclusive access configuration for port 2."},
		{"excl_access_cfg3", 0x000002A0, 18, register.ReadWrite, rv(0x00000000), "Exclusive access configuration for port 3."},
		{"mode_reg_read", 0x000002A4, 32, register.ReadOnly, rv(0x00000000), "Mode register read data"},
		{"lpddr_ctrl0", 0x000002A8, 12, register.ReadWrite, rv(0x00000000), "LPDDR2 Control 0"},
		{"lpddr_ctrl1", 0x000002AC, 32, register.ReadWrite, rv(0x00000000), "LPDDR2 Control 1"},
		{"lpddr_ctrl2", 0x000002B0, 22, register.ReadWrite, rv(0x003C0015), "LPDDR2 Control 2"},
		{"lpddr_ctrl3", 0x000002B4, 18, register.ReadWrite, rv(0x00000601), "LPDDR2 Control 3"},
	},
}

var devcfgBlock = blockDef{
	name:  "devcfg",
	bases: []uint32{0xf8007000},
	regs: []regDef{
		{"XDCFG_CTRL_OFFSET", 0x00000000, 32, register.Mixed, rv(0x0C006000), "Control Register"},
		{"XDCFG_LOCK_OFFSET", 0x00000004, 32, register.Mixed, rv(0x00000000), "Locks for the Control Register."},
		{"XDCFG_CFG_OFFSET", 0x00000008, 32, register.ReadWrite, rv(0x00000508), "Configuration Register: This register contains configuration information for the AXI transfers, and other general setup."},
		{"XDCFG_INT_STS_OFFSET", 0x0000000C, 32, register.Mixed, rv(0x00000000), "Interrupt Status"},
		{"XDCFG_INT_MASK_OFFSET", 0x00000010, 32, register.ReadWrite, rv(0xFFFFFFFF), "Interrupt Mask."},
		{"XDCFG_STATUS_OFFSET", 0x00000014, 32, register.Mixed, rv(0x40000820), "Miscellaneous Status."},
		{"XDCFG_DMA_SRC_ADDR_OFFSET", 0x00000018, 32, register.ReadWrite, rv(0x00000000), "DMA Source Address."},
		{"XDCFG_DMA_DEST_ADDR_OFFSET", 0x0000001C, 32, register.ReadWrite, rv(0x00000000), "DMA Destination Address."},
		{"XDCFG_DMA_SRC_LEN_OFFSET", 0x00000020, 32, register.ReadWrite, rv(0x00000000), "DMA Source Transfer Length."},
		{"XDCFG_DMA_DEST_LEN_OFFSET", 0x00000024, 32, register.ReadWrite, rv(0x00000000), "DMA Destination Transfer Length."},
		{"XDCFG_MULTIBOOT_ADDR_OFFSET", 0x0000002C, 13, register.ReadWrite, rv(0x00000000), "Multi-Boot Address Pointer."},
		{"XDCFG_UNLOCK_OFFSET", 0x00000034, 32, register.ReadWrite, rv(0x00000000), "Unlock Control."},
		{"XDCFG_MCTRL_OFFSET", 0x00000080, 32, register.Mixed, noReset, "Miscellaneous Control."},
		{"XADCIF_CFG", 0x00000100, 32, register.ReadWrite, rv(0x00001114), "XADC Interface Configuration."},
		{"XADCIF_INT_STS", 0x00000104, 32, register.Mixed, rv(0x00000200), "XADC Interface Interrupt Status."},
		{"XADCIF_INT_MASK", 0x00000108, 32, register.ReadWrite, rv(0xFFFFFFFF), "XADC Interface Interrupt Mask."},
		{"XADCIF_MSTS", 0x0000010C, 32, register.ReadOnly, rv(0x00000500), "XADC Interface Miscellaneous Status."},
		{"XADCIF_CMDFIFO", 0x00000110, 32, register.WriteOnly, rv(0x00000000), "XADC Interface Command FIFO Data Port"},
		{"XADCIF_RDFIFO", 0x00000114, 32, register.ReadOnly, rv(0x00000000), "XADC Interface Data FIFO Data Port"},
		{"XADCIF_MCTL", 0x00000118, 32, register.ReadWrite, rv(0x00000010), "XADC Interface Miscellaneous Control."},
	},
}

var uartBlock = blockDef{
	name:  "uart",
	bases: []uint32{0xe0000000, 0xe0001000},
	regs: []regDef{
		{"XUARTPS_CR_OFFSET", 0x00000000, 32, register.Mixed, rv(0x00000128), "UART Control Register"},
		{"XUARTPS_MR_OFFSET", 0x00000004, 32, register.Mixed, rv(0x00000000), "UART Mode Register"},
		{"XUARTPS_IER_OFFSET", 0x00000008, 32, register.Mixed, rv(0x00000000), "Interrupt Enable Register"},
		{"XUARTPS_IDR_OFFSET", 0x0000000C, 32, register.Mixed, rv(0x00000000), "Interrupt Disable Register"},
		{"XUARTPS_IMR_OFFSET", 0x00000010, 32, register.ReadOnly, rv(0x00000000), "Interrupt Mask Register"},
		{"XUARTPS_ISR_OFFSET", 0x00000014, 32, register.WriteToClear, rv(0x00000000), "Channel Interrupt Status Register"},
		{"XUARTPS_BAUDGEN_OFFSET", 0x00000018, 32, register.Mixed, rv(0x0000028B), "Baud Rate Generator Register."},
		{"XUARTPS_RXTOUT_OFFSET", 0x0000001C, 32, register.Mixed, rv(0x00000000), "Receiver Timeout Register"},
		{"XUARTPS_RXWM_OFFSET", 0x00000020, 32, register.Mixed, rv(0x00000020), "Receiver FIFO Trigger Level Register"},
		{"XUARTPS_MODEMCR_OFFSET", 0x00000024, 32, register.Mixed, rv(0x00000000), "Modem Control Register"},
		{"XUARTPS_MODEMSR_OFFSET", 0x00000028, 32, register.Mixed, noReset, "Modem Status Register"},
		{"XUARTPS_SR_OFFSET", 0x0000002C, 32, register.ReadOnly, rv(0x00000000), "Channel Status Register"},
		{"XUARTPS_FIFO_OFFSET", 0x00000030, 32, register.Mixed, rv(0x00000000), "Transmit and Receive FIFO"},
		{"Baud_rate_divider_reg0", 0x00000034, 32, register.Mixed, rv(0x0000000F), "Baud Rate Divider Register"},
		{"Flow_delay_reg0", 0x00000038, 32, register.Mixed, rv(0x00000000), "Flow Control Delay Register"},
		{"Tx_FIFO_trigger_level0", 0x00000044, 32, register.Mixed, rv(0x00000020), "Transmitter FIFO Trigger Level Register"},
	},
}

var qspiBlock = blockDef{
	name:  "qspi",
	bases: []uint32{0xe000d000},
	regs: []regDef{
		{"XQSPIPS_CR_OFFSET", 0x00000000, 32, register.Mixed, rv(0x80020000), "QSPI configuration register"},
		{"XQSPIPS_SR_OFFSET", 0x00000004, 32, register.Mixed, rv(0x00000004), "QSPI interrupt status register"},
		{"XQSPIPS_IER_OFFSET", 0x00000008, 32, register.Mixed, rv(0x00000000), "Interrupt Enable register."},
		{"XQSPIPS_IDR_OFFSET", 0x0000000C, 32, register.Mixed, rv(0x00000000), "Interrupt disable register."},
		{"XQSPIPS_IMR_OFFSET", 0x00000010, 32, register.ReadOnly, rv(0x00000000), "Interrupt mask register"},
		{"XQSPIPS_ER_OFFSET", 0x00000014, 32, register.Mixed, rv(0x00000000), "SPI_Enable Register"},
		{"XQSPIPS_DR_OFFSET", 0x00000018, 32, register.ReadWrite, rv(0x00000000), "Delay Register"},
		{"XQSPIPS_TXD_00_OFFSET", 0x0000001C, 32, register.WriteOnly, rv(0x00000000), "Transmit Data Register. Keyhole addresses for the Transmit data FIFO. See also TXD1-3."},
		{"XQSPIPS_RXD_OFFSET", 0x00000020, 32, register.ReadOnly, rv(0x00000000), "Receive Data Register"},
		{"XQSPIPS_SICR_OFFSET", 0x00000024, 32, register.Mixed, rv(0x000000FF), "Slave Idle Count Register"},
		{"XQSPIPS_TXWR_OFFSET", 0x00000028, 32, register.ReadWrite, rv(0x00000001), "TX_FIFO Threshold Register"},
		{"RX_thres_REG", 0x0000002C, 32, register.ReadWrite, rv(0x00000001), "RX FIFO Threshold Register"},
		{"GPIO", 0x00000030, 32, register.ReadWrite, rv(0x00000001), "General Purpose Inputs and Outputs Register for the Quad-SPI Controller core"},
		{"LPBK_DLY_ADJ", 0x00000038, 32, register.ReadWrite, rv(0x0000002D), "Loopback Master Clock Delay Adjustment Register"},
		{"XQSPIPS_TXD_01_OFFSET", 0x00000080, 32, register.WriteOnly, rv(0x00000000), "Transmit Data Register. Keyhole addresses for the Transmit data FIFO."},
		{"XQSPIPS_TXD_10_OFFSET", 0x00000084, 32, register.WriteOnly, rv(0x00000000), "Transmit Data Register. Keyhole addresses for the Transmit data FIFO."},
		{"XQSPIPS_TXD_11_OFFSET", 0x00000088, 32, register.WriteOnly, rv(0x00000000), "Transmit Data Register. Keyhole addresses for the Transmit data FIFO."},
		{"XQSPIPS_LQSPI_CR_OFFSET", 0x000000A0, 32, register.ReadWrite, noReset, "Configuration Register specifically for the Linear Quad-SPI Controller"},
		{"XQSPIPS_LQSPI_SR_OFFSET", 0x000000A4, 9, register.ReadWrite, rv(0x00000000), "Status Register specifically for the Linear Quad-SPI Controller"},
		{"MOD_ID", 0x000000FC, 32, register.ReadWrite, rv(0x01090101), "Module Identification register"},
	},
}

var sdioBlock = blockDef{
	name:  "sdio",
	bases: []uint32{0xe0100000, 0xe0101000},
}

