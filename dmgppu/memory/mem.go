// Package memory implements the minimal MMU this module owns: VRAM, OAM,
// and the PPU's register file, plus the cycle-accounting block the PPU
// mutates through video.GPU.Step. Cartridge mapping (and its MBC chips),
// audio, timers, serial, and the joypad belong to collaborators outside
// this module's scope and are not modeled here.
package memory

import (
	"log/slog"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// screenEnableDelayCycles gates how long the display takes to resume
// scanning after LCDC.display flips from off to on: 244 T-cycles (61
// machine cycles), short enough that the GPU-side restart sequencing dominates anything a
// program could observe.
const screenEnableDelayCycles = 244

const lcdcDisplayEnableBit = 7

// ioBase/ioSize cover the contiguous PPU register file, LCDC (0xFF40)
// through WX (0xFF4B).
const ioBase = addr.LCDC
const ioSize = int(addr.WX-addr.LCDC) + 1

// MMU is the PPU's host memory. A zero-value MMU is not ready for use; call
// New.
type MMU struct {
	vram [0x2000]byte // 0x8000-0x9FFF
	oam  [0xA0]byte   // 0xFE00-0xFE9F
	io   [ioSize]byte // LCDC..WX

	ifReg byte
	ieReg byte

	cycles video.CycleState
}

// New returns an MMU with the display off, matching a Game Boy at the very
// start of boot before LCDC is first programmed.
func New() *MMU {
	m := &MMU{}
	m.cycles.ScreenDisabled = true
	return m
}

// CycleState returns the cycle-accounting block this MMU owns, for the
// caller to pass alongside the MMU itself to GPU.Step. The two are the same
// object: CompareLYToLYC and the LCDC write handler both reach it directly.
func (m *MMU) CycleState() *video.CycleState {
	return &m.cycles
}

func (m *MMU) Read(address uint16) byte {
	switch {
	case address >= 0x8000 && address < 0xA000:
		return m.vram[address-0x8000]
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		return m.oam[address-addr.OAMStart]
	case address >= ioBase && address <= addr.WX:
		return m.io[address-ioBase]
	case address == addr.IF:
		return m.ifReg
	case address == addr.IE:
		return m.ieReg
	default:
		slog.Debug("memory: read from unmapped address", "address", address)
		return 0xFF
	}
}

func (m *MMU) Write(address uint16, value byte) {
	switch {
	case address >= 0x8000 && address < 0xA000:
		m.vram[address-0x8000] = value
	case address >= addr.OAMStart && address <= addr.OAMEnd:
		m.oam[address-addr.OAMStart] = value
	case address == addr.LCDC:
		m.writeLCDC(value)
	case address == addr.STAT:
		m.writeSTAT(value)
	case address >= ioBase && address <= addr.WX:
		m.io[address-ioBase] = value
	case address == addr.IF:
		m.ifReg = value
	case address == addr.IE:
		m.ieReg = value
	default:
		slog.Debug("memory: write to unmapped address ignored", "address", address, "value", value)
	}
}

// writeLCDC detects the display-enable bit's transitions: clearing it
// disables the screen immediately, setting it after a clear starts the
// enable-delay countdown GPU.Step consumes.
func (m *MMU) writeLCDC(value byte) {
	was := bit.IsSet(lcdcDisplayEnableBit, m.io[addr.LCDC-ioBase])
	now := bit.IsSet(lcdcDisplayEnableBit, value)
	m.io[addr.LCDC-ioBase] = value

	switch {
	case was && !now:
		m.cycles.ScreenDisabled = true
		m.cycles.ScreenEnableDelayCycles = 0
	case !was && now:
		m.cycles.ScreenEnableDelayCycles = screenEnableDelayCycles
	}
}

// writeSTAT masks a CPU write down to the interrupt-source enable bits
// (3-6): the mode bits (0-1) and the coincidence flag (2) are owned by the
// PPU and the LY==LYC comparison respectively, and only reachable through
// LCDStatus/SetLCDStatus.
func (m *MMU) writeSTAT(value byte) {
	current := m.io[addr.STAT-ioBase]
	m.io[addr.STAT-ioBase] = (current & 0x07) | (value &^ 0x07)
}

// LCDStatus and SetLCDStatus give the PPU unmasked access to the full STAT
// byte, including the mode bits and coincidence flag a plain Write would
// preserve rather than overwrite.
func (m *MMU) LCDStatus() byte { return m.io[addr.STAT-ioBase] }

func (m *MMU) SetLCDStatus(status byte) { m.io[addr.STAT-ioBase] = status }

// RequestInterrupt sets the corresponding bit in IF. This module has no
// CPU to service it; IF is exposed read-only (IF/IE accessors below) for a
// host loop or debugger to observe.
func (m *MMU) RequestInterrupt(kind addr.Interrupt) {
	m.ifReg |= byte(kind)
	slog.Debug("memory: interrupt requested", "kind", kind)
}

// CompareLYToLYC sets or clears STAT's coincidence flag (bit 2) and, when
// LY equals LYC and the LYC source is enabled (bit 6), requests the LCD
// interrupt directly. It is invoked once per LY change by GPU.Step, which
// is what gives it edge-like behavior despite not passing through the
// irq48_signal mask discipline GPU.Step applies to the other three sources.
// It does set the LYC bit (bit 3) of the shared IRQ48Signal on a match with
// the source enabled and clears it on a mismatch; GPU.Step's masks retain
// that bit, so a pending coincidence suppresses mode-transition edges.
func (m *MMU) CompareLYToLYC() {
	ly := m.io[addr.LY-ioBase]
	lyc := m.io[addr.LYC-ioBase]
	stat := m.io[addr.STAT-ioBase]

	if ly == lyc {
		stat = bit.Set(2, stat)
		if bit.IsSet(6, stat) {
			m.RequestInterrupt(addr.LCDSTATInterrupt)
			m.cycles.IRQ48Signal |= 0x08
		}
	} else {
		stat = bit.Reset(2, stat)
		m.cycles.IRQ48Signal &^= 0x08
	}

	m.io[addr.STAT-ioBase] = stat
}

// IF and IE expose the interrupt flag/enable registers for a debugger or
// harness; the CPU this module does not implement would normally own their
// servicing.
func (m *MMU) IF() byte { return m.ifReg }
func (m *MMU) IE() byte { return m.ieReg }

// VRAMSnapshot and OAMSnapshot return copies of the PPU's addressable
// memory for the debug package's dump/inspection tooling.
func (m *MMU) VRAMSnapshot() []byte {
	out := make([]byte, len(m.vram))
	copy(out, m.vram[:])
	return out
}

func (m *MMU) OAMSnapshot() []byte {
	out := make([]byte, len(m.oam))
	copy(out, m.oam[:])
	return out
}
