package video

import "github.com/geoffreyporto/dmgppu/dmgppu/addr"

// renderWindowLine draws the window overlay for scanline line, once per
// scanline as part of the line compositor. It is a no-op if the window has
// already scrolled past the bottom of the screen, is disabled, or its
// origin places it entirely off the visible scanline.
//
// cs.WindowLine (not line-WY) indexes the window's own tile row, and only
// advances once a row has actually been emitted, so toggling the window off
// and back on resumes at its next logical row rather than re-deriving it
// from LY.
func renderWindowLine(mem Memory, sink PixelSink, shadow *ColorIndexPlane, cs *CycleState, line int) {
	if cs.WindowLine > 143 {
		return
	}

	lcdc := readLCDC(mem)
	if !lcdc.windowEnabled() {
		return
	}

	wx := int(mem.Read(addr.WX)) - 7
	if wx > 159 {
		return
	}

	wy := int(mem.Read(addr.WY))
	if wy > 143 || wy > line {
		return
	}

	dataBase, unsigned := lcdc.tileDataBase()
	mapBase := lcdc.windowTileMapBase()
	bgp := mem.Read(addr.BGP)

	tileRow := (cs.WindowLine / 8) * 32
	fineY := cs.WindowLine % 8

	for tileCol := 0; tileCol < 32; tileCol++ {
		tileAddr := mapBase + uint16(tileRow+tileCol)
		tileNumber := TileNumber(mem.Read(tileAddr), unsigned)
		row := FetchTileRow(mem, dataBase, tileNumber, fineY)

		for px := 0; px < 8; px++ {
			bufferX := tileCol*8 + px + wx
			if bufferX < 0 || bufferX >= FramebufferWidth {
				continue
			}

			// Same two-bit compose as the background path: a blank tile row
			// truly maps to palette index 0, with no forced-on low bit.
			colorIndex := row.ColorIndex(px, false)
			sink.MapPixel(Index(line, bufferX), ApplyPalette(bgp, colorIndex))
			shadow.Set(line, bufferX, colorIndex)
		}
	}

	cs.WindowLine++
}
