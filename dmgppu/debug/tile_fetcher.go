package debug

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// FetchTileForMapEntry resolves a raw tile-map byte through the same
// addressing rule the renderers use (video.TileNumber) and fetches the full
// tile. Debug overlays go through this so what they show matches what the
// background and window renderers actually draw.
func FetchTileForMapEntry(reader MemoryReader, mapEntry byte, unsignedAddressing bool) video.Tile {
	tileIndex := video.TileNumber(mapEntry, unsignedAddressing)

	base := addr.TileData0
	if !unsignedAddressing {
		base = addr.TileData1
	}
	return video.FetchTile(reader, base, tileIndex)
}

// FetchTilemapRow reads one 32-entry row of the given tile map.
func FetchTilemapRow(reader MemoryReader, mapBase uint16, row int) [32]byte {
	var entries [32]byte
	for col := 0; col < 32; col++ {
		entries[col] = reader.Read(mapBase + uint16(row*32+col))
	}
	return entries
}
