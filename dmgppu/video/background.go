package video

import "github.com/geoffreyporto/dmgppu/dmgppu/addr"

// renderBackgroundPixels renders count background pixels starting at screen
// column pixel on scanline line, writing both the final shade into sink and
// the raw color index into shadow (for the sprite background-priority test).
// If LCDC.display is clear the row is painted White instead.
func renderBackgroundPixels(mem Memory, sink PixelSink, shadow *ColorIndexPlane, line, pixel, count int) {
	lcdc := readLCDC(mem)
	if !lcdc.displayEnabled() {
		for x := pixel; x < pixel+count && x < FramebufferWidth; x++ {
			sink.MapPixel(Index(line, x), White)
			shadow.Set(line, x, 0)
		}
		return
	}

	scy := int(mem.Read(addr.SCY))
	scx := int(mem.Read(addr.SCX))
	bgp := mem.Read(addr.BGP)

	mapBase := lcdc.bgTileMapBase()
	dataBase, unsigned := lcdc.tileDataBase()

	mapY := (scy + line) & 0xFF
	tileRowIndex := (mapY / 8) * 32
	fineY := mapY % 8

	for x := pixel; x < pixel+count && x < FramebufferWidth; x++ {
		mapX := (scx + x) & 0xFF
		tileCol := mapX / 8
		fineX := mapX % 8

		tileAddr := mapBase + uint16(tileRowIndex+tileCol)
		tileNumber := TileNumber(mem.Read(tileAddr), unsigned)

		row := FetchTileRow(mem, dataBase, tileNumber, fineY)
		colorIndex := row.ColorIndex(fineX, false)

		sink.MapPixel(Index(line, x), ApplyPalette(bgp, colorIndex))
		shadow.Set(line, x, colorIndex)
	}
}
