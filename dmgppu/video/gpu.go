// Package video implements the DMG pixel-processing unit: the mode state
// machine, the background/window/sprite renderers, and the STAT/LYC
// composite interrupt line. It has no dependency on the CPU, cartridge
// mapping, audio, input, or host presentation; those are supplied through
// the Memory and PixelSink contracts in memory.go and framebuffer.go.
package video

import (
	"fmt"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
)

// PPU modes, matching STAT's low two bits.
const (
	ModeHBlank   = 0
	ModeVBlank   = 1
	ModeOAMScan  = 2
	ModeTransfer = 3
)

// Cycle budgets, in T-cycles, for one scanline with the display on.
const (
	oamScanCycles  = 80
	transferCycles = 172
	hblankCycles   = 204
	scanlineCycles = oamScanCycles + transferCycles + hblankCycles

	vblankLineCycles = 456
	vblankCycles     = 10 * vblankLineCycles
	vblankLastLine   = 153
	vblankWrapCycles = 4104 // point within VBlank where LY 153 wraps to 0

	screenOffFrameCycles = 70224

	pixelPumpCreditCycles = 3 // T-cycles consumed per 4-pixel burst in mode 3
	pixelPumpBurst        = 4
)

// GPU is the PPU-local state machine. It holds only what belongs to the PPU
// exclusively: tile fetch credit, the VBlank
// pseudo-scanline counter, the once-per-line compositor latch, the frame
// suppression counter after a screen re-enable, and the background/window
// color-index shadow used for sprite priority. Everything else (the
// register file and the cycle-accounting block shared with the MMU) is
// passed in by the caller on every Step and is never retained.
type GPU struct {
	tileCyclesCounter   int
	vblankLine          int
	scanLineTransferred bool
	hideFrames          int
	shadow              ColorIndexPlane
}

// NewGPU returns a freshly reset mode machine.
func NewGPU() *GPU {
	return &GPU{}
}

// Step advances the PPU by cycles T-cycles, mutating cs and mem and writing
// pixels into sink as scanlines complete. It returns true exactly when a
// frame just became presentable (VBlank onset, or the synthetic frame
// boundary emitted while the display is off).
func (g *GPU) Step(mem Memory, cs *CycleState, sink PixelSink, cycles int) bool {
	cs.CyclesCounter += cycles

	if cs.ScreenDisabled {
		return g.stepDisabled(mem, cs, cycles)
	}

	switch cs.LCDStatusMode {
	case ModeHBlank:
		return g.stepHBlank(mem, cs)
	case ModeVBlank:
		return g.stepVBlank(mem, cs, cycles)
	case ModeOAMScan:
		g.stepOAMScan(mem, cs)
	case ModeTransfer:
		g.stepTransfer(mem, cs, sink, cycles)
	default:
		panic(fmt.Sprintf("video: impossible LCD status mode %d", cs.LCDStatusMode))
	}
	return false
}

// refreshSTATMode writes cs.LCDStatusMode into STAT's low two bits, leaving
// the rest of the register untouched.
func refreshSTATMode(mem Memory, cs *CycleState) {
	stat := mem.LCDStatus()
	mem.SetLCDStatus((stat &^ byte(statModeLowMask)) | byte(cs.LCDStatusMode)&statModeLowMask)
}

// stepOAMScan handles mode 2 -> mode 3.
func (g *GPU) stepOAMScan(mem Memory, cs *CycleState) {
	if cs.CyclesCounter < oamScanCycles {
		return
	}
	cs.CyclesCounter -= oamScanCycles
	cs.LCDStatusMode = ModeTransfer
	g.scanLineTransferred = false
	cs.IRQ48Signal &= 0x08
	refreshSTATMode(mem, cs)
}

// stepTransfer handles mode 3: the incremental background pixel pump plus,
// once the scanline's 160 pixels are spoken for, the once-per-line window
// and sprite compositor. Transitions to mode 0 at 172 cycles.
func (g *GPU) stepTransfer(mem Memory, cs *CycleState, sink PixelSink, cycles int) {
	line := int(mem.Read(addr.LY))

	if cs.PixelCounter < 160 {
		g.tileCyclesCounter += cycles
		lcdc := readLCDC(mem)
		if lcdc.displayEnabled() {
			for g.tileCyclesCounter >= pixelPumpCreditCycles {
				renderBackgroundPixels(mem, sink, &g.shadow, line, cs.PixelCounter, pixelPumpBurst)
				cs.PixelCounter += pixelPumpBurst
				g.tileCyclesCounter -= pixelPumpCreditCycles
				if cs.PixelCounter >= 160 {
					break
				}
			}
		}
	}

	if cs.CyclesCounter >= 160 && !g.scanLineTransferred {
		g.compositeLine(mem, sink, cs, line)
		g.scanLineTransferred = true
	}

	if cs.CyclesCounter >= transferCycles {
		cs.CyclesCounter -= transferCycles
		cs.PixelCounter = 0
		g.tileCyclesCounter = 0
		cs.LCDStatusMode = ModeHBlank
		refreshSTATMode(mem, cs)
		g.raiseHBlankIRQ(mem, cs)
	}
}

// compositeLine overlays the window and sprite layers on top of the
// background pixels mode 3 already wrote for this scanline. If the display
// is off it paints the row white instead (mirrors the mode-3 background
// path; can only happen if LCDC.display was cleared mid-scanline).
func (g *GPU) compositeLine(mem Memory, sink PixelSink, cs *CycleState, line int) {
	lcdc := readLCDC(mem)
	if !lcdc.displayEnabled() {
		for x := 0; x < FramebufferWidth; x++ {
			sink.MapPixel(Index(line, x), White)
		}
		return
	}
	renderWindowLine(mem, sink, &g.shadow, cs, line)
	renderSpritesLine(mem, sink, &g.shadow, line)
}

// raiseHBlankIRQ implements the "entering mode 0" row of the IRQ48 table:
// pre-mask 0x08, test STAT's mode-0 source, set bit 0 on assertion.
func (g *GPU) raiseHBlankIRQ(mem Memory, cs *CycleState) {
	cs.IRQ48Signal &= 0x08
	stat := mem.LCDStatus()
	if bit.IsSet(statMode0Enable, stat) {
		if cs.IRQ48Signal&0x08 != 0x08 {
			mem.RequestInterrupt(addr.LCDSTATInterrupt)
		}
		cs.IRQ48Signal |= 0x01
	}
}

// stepHBlank handles mode 0 -> mode 1 (VBlank) or mode 2, LY advance and the
// LY==LYC comparison.
func (g *GPU) stepHBlank(mem Memory, cs *CycleState) bool {
	if cs.CyclesCounter < hblankCycles {
		return false
	}
	cs.CyclesCounter -= hblankCycles
	cs.LCDStatusMode = ModeOAMScan

	line := int(mem.Read(addr.LY)) + 1
	mem.Write(addr.LY, byte(line))
	mem.CompareLYToLYC()

	vblank := false
	if line == 144 {
		cs.LCDStatusMode = ModeVBlank
		g.vblankLine = 0
		cs.AuxCyclesCounter = cs.CyclesCounter
		mem.RequestInterrupt(addr.VBlankInterrupt)
		vblank = g.raiseVBlankEntryIRQ(mem, cs)
		cs.WindowLine = 0
	} else {
		g.raiseOAMIRQ(mem, cs, 0x09, 0x0E)
	}
	refreshSTATMode(mem, cs)
	return vblank
}

// raiseVBlankEntryIRQ implements the "entering mode 1" row: pre-mask 0x09,
// test STAT's mode-1 source against the combined hblank/lyc bits already
// retained, set bit 1, post-mask 0x0E. Returns whether the frame should be
// surfaced to the caller (suppressed for the first few frames after a
// screen re-enable).
func (g *GPU) raiseVBlankEntryIRQ(mem Memory, cs *CycleState) bool {
	cs.IRQ48Signal &= 0x09
	stat := mem.LCDStatus()
	if bit.IsSet(statMode1Enable, stat) {
		if cs.IRQ48Signal&0x01 != 0x01 && cs.IRQ48Signal&0x08 != 0x08 {
			mem.RequestInterrupt(addr.LCDSTATInterrupt)
		}
		cs.IRQ48Signal |= 0x02
	}
	cs.IRQ48Signal &= 0x0E

	if g.hideFrames > 0 {
		g.hideFrames--
		return false
	}
	return true
}

// raiseOAMIRQ implements the two "entering mode 2" rows (from HBlank and
// from VBlank), which differ only in their pre/post masks.
func (g *GPU) raiseOAMIRQ(mem Memory, cs *CycleState, preMask, postMask uint8) {
	cs.IRQ48Signal &= preMask
	stat := mem.LCDStatus()
	if bit.IsSet(statMode2Enable, stat) {
		if cs.IRQ48Signal == 0 {
			mem.RequestInterrupt(addr.LCDSTATInterrupt)
		}
		cs.IRQ48Signal |= 0x04
	}
	cs.IRQ48Signal &= postMask
}

// stepVBlank handles the ten pseudo-scanlines of mode 1: pacing LY advances
// off aux_cycles_counter, the LY 153->0 wrap, and the eventual transition
// back to mode 2.
func (g *GPU) stepVBlank(mem Memory, cs *CycleState, cycles int) bool {
	cs.AuxCyclesCounter += cycles

	if cs.AuxCyclesCounter >= vblankLineCycles {
		cs.AuxCyclesCounter -= vblankLineCycles
		g.vblankLine++
		if g.vblankLine <= 9 {
			line := int(mem.Read(addr.LY)) + 1
			mem.Write(addr.LY, byte(line))
			mem.CompareLYToLYC()
		}
	}

	if cs.CyclesCounter >= vblankWrapCycles && cs.AuxCyclesCounter >= 4 && int(mem.Read(addr.LY)) == vblankLastLine {
		mem.Write(addr.LY, 0)
		mem.CompareLYToLYC()
	}

	if cs.CyclesCounter >= vblankCycles {
		cs.CyclesCounter -= vblankCycles
		cs.LCDStatusMode = ModeOAMScan
		refreshSTATMode(mem, cs)
		g.raiseOAMIRQ(mem, cs, 0x0A, 0x0D)
	}
	return false
}

// stepDisabled handles a display turned off: either counting down a pending
// re-enable, or emitting a synthetic frame boundary every 70,224 cycles so
// the host loop keeps pumping.
func (g *GPU) stepDisabled(mem Memory, cs *CycleState, cycles int) bool {
	if cs.ScreenEnableDelayCycles > 0 {
		cs.ScreenEnableDelayCycles -= cycles
		if cs.ScreenEnableDelayCycles <= 0 {
			g.completeScreenEnable(mem, cs)
		}
		return false
	}

	if cs.CyclesCounter >= screenOffFrameCycles {
		cs.CyclesCounter -= screenOffFrameCycles
		return true
	}
	return false
}

// completeScreenEnable finishes a pending display re-enable: the display
// resumes scanning from a clean state, the first three completed frames are
// hidden from the caller, and the LYC source, if enabled, raises an
// unconditional LCD interrupt independent of the mode-transition IRQ48
// discipline above.
func (g *GPU) completeScreenEnable(mem Memory, cs *CycleState) {
	cs.ScreenEnableDelayCycles = 0
	cs.ScreenDisabled = false
	g.hideFrames = 3
	cs.LCDStatusMode = ModeHBlank
	cs.CyclesCounter = 0
	cs.AuxCyclesCounter = 0
	cs.WindowLine = 0
	g.vblankLine = 0
	cs.PixelCounter = 0
	g.tileCyclesCounter = 0
	cs.IRQ48Signal = 0
	mem.Write(addr.LY, 0)

	stat := mem.LCDStatus()
	if bit.IsSet(statLYCEnable, stat) {
		mem.RequestInterrupt(addr.LCDSTATInterrupt)
		cs.IRQ48Signal |= 0x08
	}

	mem.CompareLYToLYC()
}
