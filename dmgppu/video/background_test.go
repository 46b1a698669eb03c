package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
)

// TestBackgroundScrollWrap exercises SCX/SCY at 255: the scroll adds wrap
// mod 256, so screen pixel (0,0) samples map pixel (255,255), the
// bottom-right corner of the map.
func TestBackgroundScrollWrap(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.SCX, 255)
	mem.Write(addr.SCY, 255)

	// Tile map entry (31,31) -> tile 1, everything else stays tile 0.
	// Map pixel (255,255) is the last pixel of that tile.
	mem.Write(addr.TileMap0+31*32+31, 1)
	var solid [16]byte
	for i := range solid {
		solid[i] = 0xFF
	}
	mem.writeTile(1, solid)

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	renderBackgroundPixels(mem, fb, shadow, 0, 0, 4)

	assert.Equal(t, Black, fb.GetPixel(Index(0, 0)), "screen (0,0) samples map (255,255)")
	// One pixel to the right wraps to map x=0 -> tile 0 -> White.
	assert.Equal(t, White, fb.GetPixel(Index(0, 1)))
	assert.Equal(t, uint8(3), shadow.Get(0, 0))
	assert.Equal(t, uint8(0), shadow.Get(0, 1))
}

// TestBackgroundSignedAddressing checks LCDC bit 4 clear: tile-map bytes
// are signed, biased by +128 into the 0x8800 bank, so map entry 0 reads
// tile data at 0x9000.
func TestBackgroundSignedAddressing(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.LCDC, 0x81) // display + BG, tile data select clear

	// Map entry 0 -> signed index 0 -> bank index 128 -> 0x8800+128*16 = 0x9000.
	for i := 0; i < 16; i++ {
		mem.Write(0x9000+uint16(i), 0xFF)
	}

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	renderBackgroundPixels(mem, fb, shadow, 0, 0, 4)

	assert.Equal(t, Black, fb.GetPixel(Index(0, 0)))

	// Map entry 0x80 (-128) resolves to bank index 0 = 0x8800 itself.
	mem2 := newEnabledMemory()
	mem2.Write(addr.LCDC, 0x81)
	mem2.Write(addr.TileMap0, 0x80)
	for i := 0; i < 16; i++ {
		mem2.Write(addr.TileData1+uint16(i), 0xFF)
	}

	shadow2 := &ColorIndexPlane{}
	fb2 := NewFrameBuffer()
	renderBackgroundPixels(mem2, fb2, shadow2, 0, 0, 4)
	assert.Equal(t, Black, fb2.GetPixel(Index(0, 0)))
}

// TestBackgroundDisplayOffPaintsWhite covers the LCDC.display-clear branch:
// the row is painted White and the shadow plane cleared, whatever the tile
// data says.
func TestBackgroundDisplayOffPaintsWhite(t *testing.T) {
	mem := newEnabledMemory()
	var solid [16]byte
	for i := range solid {
		solid[i] = 0xFF
	}
	mem.writeTile(0, solid)
	mem.Write(addr.LCDC, 0x11) // display bit clear

	shadow := &ColorIndexPlane{}
	shadow.Set(0, 0, 3)
	fb := NewFrameBuffer()
	fb.SetPixel(0, 0, Black)

	renderBackgroundPixels(mem, fb, shadow, 0, 0, 4)

	assert.Equal(t, White, fb.GetPixel(Index(0, 0)))
	assert.Equal(t, uint8(0), shadow.Get(0, 0))
}

// TestBackgroundPaletteRemap checks a non-default BGP: with BGP=0x1B the
// index->shade mapping inverts (3->White ... 0->Black).
func TestBackgroundPaletteRemap(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.BGP, 0x1B)

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	renderBackgroundPixels(mem, fb, shadow, 0, 0, 4)

	// All-zero tile data is color index 0 -> shade 3 under 0x1B.
	assert.Equal(t, Black, fb.GetPixel(Index(0, 0)))
	assert.Equal(t, uint8(0), shadow.Get(0, 0), "shadow records the raw index, not the shade")
}
