package video

import "github.com/geoffreyporto/dmgppu/dmgppu/addr"

// renderSpritesLine draws the object layer for scanline line. Sprites are
// visited from OAM index 39 down to 0 so a lower index overwrites a higher
// one at the same pixel. DMG has no X/index priority mode, just OAM order.
// Sprite-per-line limits and the OAM-fetch bug are out of scope: every
// sprite intersecting the line is drawn.
func renderSpritesLine(mem Memory, sink PixelSink, shadow *ColorIndexPlane, line int) {
	lcdc := readLCDC(mem)
	if !lcdc.spritesEnabled() {
		return
	}

	height := 8
	if lcdc.spriteSize16() {
		height = 16
	}

	for i := 39; i >= 0; i-- {
		s := ReadSprite(mem, i)

		sy := s.ScreenY()
		if line < sy || line >= sy+height {
			continue
		}

		sx := s.ScreenX()
		if sx <= -8 || sx >= FramebufferWidth {
			continue
		}

		tileIndex := int(s.TileIndex)
		if height == 16 {
			tileIndex &^= 1
		}

		py := line - sy
		if s.FlipY {
			py = height - 1 - py
		}
		if height == 16 && py >= 8 {
			tileIndex++
			py -= 8
		}

		row := FetchTileRow(mem, addr.TileData0, tileIndex, py)

		obp := addr.OBP0
		if s.PaletteOBP1 {
			obp = addr.OBP1
		}
		palette := mem.Read(obp)

		for px := 0; px < 8; px++ {
			colorIndex := row.ColorIndex(px, s.FlipX)
			if colorIndex == 0 {
				continue
			}

			bufferX := sx + px
			if bufferX < 0 || bufferX >= FramebufferWidth {
				continue
			}

			if s.BehindBG && shadow.Get(line, bufferX) != 0 {
				continue
			}

			sink.MapPixel(Index(line, bufferX), ApplyPalette(palette, colorIndex))
		}
	}
}
