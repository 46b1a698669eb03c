package video

import "github.com/geoffreyporto/dmgppu/dmgppu/bit"

// TileRow represents one row of a tile pattern (8 pixels).
//
// Game Boy tiles are 8x8 pixels, with 2 bits per pixel allowing 4 colors.
// Each tile row uses 2 bytes in a bit-plane format:
//
//	Byte 1 (Low):  Bit plane 0 - provides bit 0 of each pixel's color
//	Byte 2 (High): Bit plane 1 - provides bit 1 of each pixel's color
//
// Bit 7 represents the leftmost pixel, bit 0 the rightmost.
//
// A complete 8x8 tile occupies 16 bytes (8 rows x 2 bytes/row) in VRAM.
type TileRow struct {
	Low  byte
	High byte
}

// ColorIndex extracts a pixel's 2-bit color index (0-3) from the tile row.
// pixelX is 0-7 with 0 the leftmost pixel, unless flip is true, in which case
// 0 is the rightmost pixel (used by sprite X-flip).
func (t TileRow) ColorIndex(pixelX int, flip bool) uint8 {
	bitIndex := uint8(7 - pixelX)
	if flip {
		bitIndex = uint8(pixelX)
	}

	var idx uint8
	if bit.IsSet(bitIndex, t.Low) {
		idx |= 1
	}
	if bit.IsSet(bitIndex, t.High) {
		idx |= 2
	}

	return idx
}

// MemoryReader is the narrow read-only view tile decoding needs.
type MemoryReader interface {
	Read(addr uint16) byte
}

// FetchTileRow reads the two bitplane bytes for one row of the tile at
// tileIndex within the bank starting at dataBase. fineY is 0-7.
func FetchTileRow(mem MemoryReader, dataBase uint16, tileIndex int, fineY int) TileRow {
	rowAddr := dataBase + uint16(tileIndex)*16 + uint16(fineY)*2
	return TileRow{
		Low:  mem.Read(rowAddr),
		High: mem.Read(rowAddr + 1),
	}
}

// Tile is a fully decoded 8x8 tile pattern, used by the debug inspection
// tooling. The renderers never materialize whole tiles (they fetch single
// rows), so this stays out of the hot path.
type Tile struct {
	Index int
	Rows  [8]TileRow
}

// Pixels expands the tile into raw 2-bit color indices, row-major, with
// (0,0) the top-left pixel.
func (t Tile) Pixels() [8][8]uint8 {
	var px [8][8]uint8
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			px[y][x] = t.Rows[y].ColorIndex(x, false)
		}
	}
	return px
}

// FetchTile reads all 8 rows of the tile at tileIndex within the bank
// starting at dataBase.
func FetchTile(mem MemoryReader, dataBase uint16, tileIndex int) Tile {
	t := Tile{Index: tileIndex}
	for y := 0; y < 8; y++ {
		t.Rows[y] = FetchTileRow(mem, dataBase, tileIndex, y)
	}
	return t
}

// TileNumber resolves a raw tile-map byte to a tile index relative to the
// data base LCDC selects, honoring its addressing mode: unsigned (base
// 0x8000) uses the byte directly, signed (base 0x8800) biases it by +128 so
// the effective data base becomes 0x9000 for indices 0-127.
func TileNumber(raw byte, unsignedAddressing bool) int {
	if unsignedAddressing {
		return int(raw)
	}
	return int(int8(raw)) + 128
}
