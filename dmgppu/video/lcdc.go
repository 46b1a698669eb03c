package video

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
)

// LCDC bit positions.
const (
	lcdcBGEnable       = 0
	lcdcSpriteEnable   = 1
	lcdcSpriteSize     = 2
	lcdcBGTileMap      = 3
	lcdcTileDataSelect = 4
	lcdcWindowEnable   = 5
	lcdcWindowTileMap  = 6
	lcdcDisplayEnable  = 7
)

// STAT bit positions.
const (
	statMode0Enable = 3
	statMode1Enable = 4
	statMode2Enable = 5
	statLYCEnable   = 6
	statCoincidence = 2
	statModeLowMask = 0x03
)

type lcdControl struct {
	raw byte
}

func readLCDC(mem Memory) lcdControl {
	return lcdControl{raw: mem.Read(addr.LCDC)}
}

func (l lcdControl) displayEnabled() bool     { return bit.IsSet(lcdcDisplayEnable, l.raw) }
func (l lcdControl) windowTileMapHigh() bool  { return bit.IsSet(lcdcWindowTileMap, l.raw) }
func (l lcdControl) windowEnabled() bool      { return bit.IsSet(lcdcWindowEnable, l.raw) }
func (l lcdControl) unsignedAddressing() bool { return bit.IsSet(lcdcTileDataSelect, l.raw) }
func (l lcdControl) bgTileMapHigh() bool      { return bit.IsSet(lcdcBGTileMap, l.raw) }
func (l lcdControl) spriteSize16() bool       { return bit.IsSet(lcdcSpriteSize, l.raw) }
func (l lcdControl) spritesEnabled() bool     { return bit.IsSet(lcdcSpriteEnable, l.raw) }

// tileDataBase returns the base address and whether indices are unsigned,
// per LCDC bit 4: set selects 0x8000 unsigned, clear selects 0x8800 signed.
func (l lcdControl) tileDataBase() (base uint16, unsigned bool) {
	if l.unsignedAddressing() {
		return addr.TileData0, true
	}
	return addr.TileData1, false
}

func (l lcdControl) bgTileMapBase() uint16 {
	if l.bgTileMapHigh() {
		return addr.TileMap1
	}
	return addr.TileMap0
}

func (l lcdControl) windowTileMapBase() uint16 {
	if l.windowTileMapHigh() {
		return addr.TileMap1
	}
	return addr.TileMap0
}
