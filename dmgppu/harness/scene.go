package harness

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/memory"
)

// Demo tile indices.
const (
	tileBlank = iota
	tileChecker
	tileSolid
	tileRing
)

// LoadDemoScene programs VRAM and OAM with a scene that exercises all
// three layers: a checkered background, a solid-tile window band in the
// lower third of the screen, and two sprites (one plain, one X-flipped
// with background priority).
func LoadDemoScene(mmu *memory.MMU) {
	writeTile(mmu, tileBlank, [8][2]byte{})

	// 4x4 checker inside the tile: rows alternate 0xF0/0x0F on the low
	// plane only, color indices 0 and 1.
	var checker [8][2]byte
	for y := 0; y < 8; y++ {
		if (y/4)%2 == 0 {
			checker[y] = [2]byte{0xF0, 0x00}
		} else {
			checker[y] = [2]byte{0x0F, 0x00}
		}
	}
	writeTile(mmu, tileChecker, checker)

	var solid [8][2]byte
	for y := 0; y < 8; y++ {
		solid[y] = [2]byte{0xFF, 0xFF}
	}
	writeTile(mmu, tileSolid, solid)

	// A hollow ring: solid top/bottom rows, edge pixels elsewhere, on both
	// planes (color index 3).
	var ring [8][2]byte
	for y := 0; y < 8; y++ {
		rowBits := byte(0x81)
		if y == 0 || y == 7 {
			rowBits = 0xFF
		}
		ring[y] = [2]byte{rowBits, rowBits}
	}
	writeTile(mmu, tileRing, ring)

	// Background map: checkered tiles across the whole 32x32 map.
	for i := 0; i < 32*32; i++ {
		mmu.Write(addr.TileMap0+uint16(i), tileChecker)
	}

	// Window map on the other bank: solid tiles.
	for i := 0; i < 32*32; i++ {
		mmu.Write(addr.TileMap1+uint16(i), tileSolid)
	}
	mmu.Write(addr.WY, 96)
	mmu.Write(addr.WX, 7)

	// Sprite 0: ring at mid-screen.
	mmu.Write(addr.OAMStart+0, 16+60)
	mmu.Write(addr.OAMStart+1, 8+40)
	mmu.Write(addr.OAMStart+2, tileRing)
	mmu.Write(addr.OAMStart+3, 0x00)

	// Sprite 1: X-flipped ring behind the background.
	mmu.Write(addr.OAMStart+4, 16+30)
	mmu.Write(addr.OAMStart+5, 8+100)
	mmu.Write(addr.OAMStart+6, tileRing)
	mmu.Write(addr.OAMStart+7, 0xA0)
}

// EnableDemoWindow turns the window layer on, keeping the rest of the
// LCDC bits the harness programmed (window uses tile map 1).
func EnableDemoWindow(mmu *memory.MMU) {
	lcdc := mmu.Read(addr.LCDC)
	mmu.Write(addr.LCDC, lcdc|(1<<5)|(1<<6))
}

// AnimateDemoScene scrolls the background one pixel per frame horizontally
// and one pixel every other frame vertically, so successive frames visibly
// differ.
func AnimateDemoScene(mmu *memory.MMU, frame int) {
	mmu.Write(addr.SCX, byte(frame))
	mmu.Write(addr.SCY, byte(frame/2))
}

func writeTile(mmu *memory.MMU, tileIndex int, rows [8][2]byte) {
	base := addr.TileData0 + uint16(tileIndex)*16
	for y, row := range rows {
		mmu.Write(base+uint16(y*2), row[0])
		mmu.Write(base+uint16(y*2)+1, row[1])
	}
}
