package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
)

func TestVRAMAndOAMRoundTrip(t *testing.T) {
	m := New()

	m.Write(0x8000, 0xAB)
	m.Write(0x9FFF, 0xCD)
	m.Write(addr.OAMStart, 0x12)
	m.Write(addr.OAMEnd, 0x34)

	assert.Equal(t, byte(0xAB), m.Read(0x8000))
	assert.Equal(t, byte(0xCD), m.Read(0x9FFF))
	assert.Equal(t, byte(0x12), m.Read(addr.OAMStart))
	assert.Equal(t, byte(0x34), m.Read(addr.OAMEnd))
}

func TestUnmappedReadsReturnFF(t *testing.T) {
	m := New()
	assert.Equal(t, byte(0xFF), m.Read(0x0000))
	assert.Equal(t, byte(0xFF), m.Read(0xC000))
}

func TestScreenStartsDisabled(t *testing.T) {
	m := New()
	assert.True(t, m.CycleState().ScreenDisabled)
}

func TestLCDCDisplayBitSequencing(t *testing.T) {
	m := New()

	// Turning the display on from the boot-off state arms the enable delay.
	m.Write(addr.LCDC, 0x91)
	assert.True(t, m.CycleState().ScreenDisabled, "screen stays off until the delay elapses")
	assert.Greater(t, m.CycleState().ScreenEnableDelayCycles, 0)

	// Simulate the GPU completing the enable.
	m.CycleState().ScreenDisabled = false
	m.CycleState().ScreenEnableDelayCycles = 0

	// Clearing the bit disables immediately and cancels any pending enable.
	m.Write(addr.LCDC, 0x11)
	assert.True(t, m.CycleState().ScreenDisabled)
	assert.Equal(t, 0, m.CycleState().ScreenEnableDelayCycles)

	// Writing the same off value again must not re-arm anything.
	m.Write(addr.LCDC, 0x11)
	assert.Equal(t, 0, m.CycleState().ScreenEnableDelayCycles)
}

func TestSTATWriteMasksPPUOwnedBits(t *testing.T) {
	m := New()

	// The PPU sets mode bits and the coincidence flag through SetLCDStatus.
	m.SetLCDStatus(0x07)

	// A CPU-style write may only touch the source-enable bits.
	m.Write(addr.STAT, 0xFF)
	assert.Equal(t, byte(0x07|0x78), m.Read(addr.STAT)&0x7F)

	m.Write(addr.STAT, 0x00)
	assert.Equal(t, byte(0x07), m.Read(addr.STAT)&0x07, "mode and coincidence bits survive a clearing write")
}

func TestCompareLYToLYC(t *testing.T) {
	m := New()
	m.Write(addr.LY, 42)
	m.Write(addr.LYC, 42)

	m.CompareLYToLYC()
	assert.True(t, m.Read(addr.STAT)&0x04 != 0, "coincidence flag set on match")
	assert.Equal(t, byte(0), m.IF()&byte(addr.LCDSTATInterrupt), "no interrupt without the LYC source enabled")

	// Enable the LYC source: the next matching compare requests Lcd.
	m.Write(addr.STAT, 0x40)
	m.CompareLYToLYC()
	assert.NotEqual(t, byte(0), m.IF()&byte(addr.LCDSTATInterrupt))

	// Mismatch clears the flag.
	m.Write(addr.LYC, 50)
	m.CompareLYToLYC()
	assert.True(t, m.Read(addr.STAT)&0x04 == 0)
}

func TestRequestInterruptSetsIF(t *testing.T) {
	m := New()
	require.Equal(t, byte(0), m.IF())

	m.RequestInterrupt(addr.VBlankInterrupt)
	m.RequestInterrupt(addr.LCDSTATInterrupt)

	assert.Equal(t, byte(addr.VBlankInterrupt)|byte(addr.LCDSTATInterrupt), m.IF())
}

func TestSnapshotsCopy(t *testing.T) {
	m := New()
	m.Write(0x8000, 0x55)
	m.Write(addr.OAMStart, 0x66)

	vram := m.VRAMSnapshot()
	oam := m.OAMSnapshot()
	assert.Equal(t, byte(0x55), vram[0])
	assert.Equal(t, byte(0x66), oam[0])

	// Mutating the snapshot must not write through.
	vram[0] = 0x00
	oam[0] = 0x00
	assert.Equal(t, byte(0x55), m.Read(0x8000))
	assert.Equal(t, byte(0x66), m.Read(addr.OAMStart))
}
