package debug

import (
	"fmt"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// PPUState is a snapshot of every PPU-visible register plus the shared
// cycle block, taken between steps for backend status displays.
type PPUState struct {
	LCDC uint8
	STAT uint8
	SCY  uint8
	SCX  uint8
	LY   uint8
	LYC  uint8
	BGP  uint8
	OBP0 uint8
	OBP1 uint8
	WY   uint8
	WX   uint8

	Mode           int
	WindowLine     int
	ScreenDisabled bool
}

// ExtractPPUState reads the register file and cycle block. Call it only
// between GPU.Step calls; the cycle block is not meant to be observed
// mid-step.
func ExtractPPUState(reader MemoryReader, cs *video.CycleState) PPUState {
	return PPUState{
		LCDC: reader.Read(addr.LCDC),
		STAT: reader.Read(addr.STAT),
		SCY:  reader.Read(addr.SCY),
		SCX:  reader.Read(addr.SCX),
		LY:   reader.Read(addr.LY),
		LYC:  reader.Read(addr.LYC),
		BGP:  reader.Read(addr.BGP),
		OBP0: reader.Read(addr.OBP0),
		OBP1: reader.Read(addr.OBP1),
		WY:   reader.Read(addr.WY),
		WX:   reader.Read(addr.WX),

		Mode:           cs.LCDStatusMode,
		WindowLine:     cs.WindowLine,
		ScreenDisabled: cs.ScreenDisabled,
	}
}

var modeNames = [4]string{"HBlank", "VBlank", "OAM", "Transfer"}

// FormatStatusLine renders the state as a single line for the terminal
// backend's status bar.
func (s PPUState) FormatStatusLine() string {
	if s.ScreenDisabled {
		return fmt.Sprintf("LCDC=%02X STAT=%02X [screen off]", s.LCDC, s.STAT)
	}
	return fmt.Sprintf("LCDC=%02X STAT=%02X LY=%3d LYC=%3d SCX=%3d SCY=%3d mode=%s",
		s.LCDC, s.STAT, s.LY, s.LYC, s.SCX, s.SCY, modeNames[s.Mode&0x03])
}
