// Package render holds the terminal backend's cell-level drawing helpers
// and an slog capture buffer for showing logs while tcell owns the screen.
package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// ShadeColor maps a DMG shade to the terminal color used for it, matching
// the grayscale levels the PNG exporter uses.
func ShadeColor(c video.Color) tcell.Color {
	r, g, b := c.RGB()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// HalfBlockCell computes the glyph and style for one terminal cell covering
// two vertically stacked pixels: the upper-half block glyph with the top
// pixel as foreground and the bottom pixel as background. This doubles the
// vertical resolution so a 160x144 frame fits in 160x72 cells.
func HalfBlockCell(top, bottom video.Color) (rune, tcell.Style) {
	style := tcell.StyleDefault.
		Foreground(ShadeColor(top)).
		Background(ShadeColor(bottom))
	return '▀', style
}
