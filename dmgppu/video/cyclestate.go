package video

// CycleState is the block of registers and counters shared between the MMU
// and the PPU. The MMU owns it; GPU.Step receives a pointer for the duration
// of a single call and must not retain it between calls.
type CycleState struct {
	// CyclesCounter accumulates T-cycles within the current mode (modes
	// 0/2/3) or, in mode 1, across the whole 4,560-cycle VBlank period.
	CyclesCounter int
	// AuxCyclesCounter paces per-scanline LY advances while in VBlank.
	AuxCyclesCounter int
	// WindowLine is the window's own row counter, incremented only on
	// visible scanlines where the window is enabled and intersected.
	WindowLine int
	// PixelCounter is the X coordinate within the current mode-3 scanline.
	PixelCounter int
	// ScreenEnableDelayCycles counts down after the CPU re-enables the
	// display before the PPU resumes normal scanning.
	ScreenEnableDelayCycles int
	// ScreenDisabled is true while LCDC's display-enable bit is clear.
	ScreenDisabled bool
	// LCDStatusMode mirrors STAT's low two bits, 0-3.
	LCDStatusMode int
	// IRQ48Signal is the composite STAT-line bitmask driving the IRQ48 edge
	// discipline: bit0 HBlank, bit1 VBlank, bit2 OAM, bit3 LY==LYC.
	IRQ48Signal uint8
}
