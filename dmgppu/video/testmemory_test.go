package video

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
)

// testMemory is a minimal Memory implementation backing the video package's
// own tests: a flat byte map plus the LY==LYC side effect the real MMU
// performs. It is intentionally small: just enough of the register file,
// VRAM, and OAM space to drive the mode machine and the renderers.
type testMemory struct {
	cells      map[uint16]byte
	interrupts []addr.Interrupt
}

func newTestMemory() *testMemory {
	return &testMemory{cells: make(map[uint16]byte)}
}

func (m *testMemory) Read(address uint16) byte { return m.cells[address] }

func (m *testMemory) Write(address uint16, value byte) { m.cells[address] = value }

func (m *testMemory) RequestInterrupt(kind addr.Interrupt) {
	m.interrupts = append(m.interrupts, kind)
}

func (m *testMemory) LCDStatus() byte { return m.cells[addr.STAT] }

func (m *testMemory) SetLCDStatus(status byte) { m.cells[addr.STAT] = status }

func (m *testMemory) CompareLYToLYC() {
	stat := m.cells[addr.STAT]
	if m.cells[addr.LY] == m.cells[addr.LYC] {
		stat = bit.Set(statCoincidence, stat)
		if bit.IsSet(statLYCEnable, stat) {
			m.RequestInterrupt(addr.LCDSTATInterrupt)
		}
	} else {
		stat = bit.Reset(statCoincidence, stat)
	}
	m.cells[addr.STAT] = stat
}

// countInterrupts returns how many of the recorded interrupts were of the
// given kind.
func (m *testMemory) countInterrupts(kind addr.Interrupt) int {
	n := 0
	for _, k := range m.interrupts {
		if k == kind {
			n++
		}
	}
	return n
}

// writeTile writes a 16-byte tile pattern at tileIndex of the unsigned
// data bank (0x8000), the bank most tests select via LCDC bit 4.
func (m *testMemory) writeTile(tileIndex int, rows [16]byte) {
	base := addr.TileData0 + uint16(tileIndex)*16
	for i, b := range rows {
		m.cells[base+uint16(i)] = b
	}
}
