package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
)

// TestWindowTransparentPixelMapsToWhite pins the window renderer's bitplane
// compose: a tile row with both bitplane bytes zero must produce color
// index 0 (White under the default palette), not 1 (LightGray). A forced-on
// low palette bit in the window path is a classic way to get visibly wrong
// window graphics while the background stays correct.
func TestWindowTransparentPixelMapsToWhite(t *testing.T) {
	mem := newEnabledMemory()
	mem.SetLCDStatus(0)
	mem.Write(addr.LCDC, 0x91|(1<<lcdcWindowEnable))
	mem.Write(addr.WX, 7) // window column 0
	mem.Write(addr.WY, 0)
	// tile 0 at the window tile map (0x9800) is already zero; tile data for
	// tile 0 is all-zero bytes -> color index 0 at every pixel.

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	cs := &CycleState{WindowLine: 0}

	renderWindowLine(mem, fb, shadow, cs, 0)

	assert.Equal(t, White, fb.GetPixel(Index(0, 0)))
	assert.Equal(t, uint8(0), shadow.Get(0, 0))
}

// TestWindowHiddenWhenWYAboveLine runs scenario 4: with WY=100, scanlines
// 0..99 must be untouched by the window (pure background), and scanline
// 100 onward shows the window starting at column WX-7.
func TestWindowHiddenWhenWYAboveLine(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.LCDC, 0x91|(1<<lcdcWindowEnable))
	mem.Write(addr.WX, 7)
	mem.Write(addr.WY, 100)

	var solid [16]byte
	for i := range solid {
		solid[i] = 0xFF
	}
	base := addr.TileMap0
	mem.Write(base, 0) // window tile map entry -> tile 0
	mem.writeTile(0, solid)

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	fb.SetPixel(0, 50, LightGray)
	cs := &CycleState{}

	renderWindowLine(mem, fb, shadow, cs, 50)
	assert.Equal(t, LightGray, fb.GetPixel(Index(50, 0)), "window must not touch a scanline above WY")
	assert.Equal(t, 0, cs.WindowLine, "window row counter must not advance off-screen")

	renderWindowLine(mem, fb, shadow, cs, 100)
	assert.Equal(t, Black, fb.GetPixel(Index(100, 0)), "window visible once line reaches WY")
	assert.Equal(t, 1, cs.WindowLine)
}

// TestWindowColumnClipping checks WX=167 (effective column 160, one past
// the last visible column) hides the window outright via the WX-7 > 159
// early return.
func TestWindowColumnClipping(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.LCDC, 0x91|(1<<lcdcWindowEnable))
	mem.Write(addr.WX, 167)
	mem.Write(addr.WY, 0)

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	fb.SetPixel(159, 0, DarkGray)
	cs := &CycleState{}

	renderWindowLine(mem, fb, shadow, cs, 0)
	assert.Equal(t, DarkGray, fb.GetPixel(Index(0, 159)), "window entirely clipped, background left alone")
}

// TestWindowLastColumn checks WX=166: effective column 159, so exactly one
// window pixel per scanline survives clipping.
func TestWindowLastColumn(t *testing.T) {
	mem := newEnabledMemory()
	mem.Write(addr.LCDC, 0x91|(1<<lcdcWindowEnable))
	mem.Write(addr.WX, 166)
	mem.Write(addr.WY, 0)

	var solid [16]byte
	for i := range solid {
		solid[i] = 0xFF
	}
	mem.writeTile(0, solid)

	shadow := &ColorIndexPlane{}
	fb := NewFrameBuffer()
	cs := &CycleState{}

	renderWindowLine(mem, fb, shadow, cs, 0)
	assert.Equal(t, Black, fb.GetPixel(Index(0, 159)), "column 159 carries the window's first pixel")
	assert.Equal(t, White, fb.GetPixel(Index(0, 158)), "everything left of WX-7 is untouched")
	assert.Equal(t, 1, cs.WindowLine)
}
