package render

import (
	"strings"

	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// shadeRunes maps a shade to a block glyph, lightest first.
var shadeRunes = [4]rune{' ', '░', '▒', '█'}

// ShadeRune returns the block glyph for a color, with White rendered as a
// space and Black as a full block.
func ShadeRune(c video.Color) rune {
	switch c {
	case video.White:
		return shadeRunes[0]
	case video.LightGray:
		return shadeRunes[1]
	case video.DarkGray:
		return shadeRunes[2]
	default:
		return shadeRunes[3]
	}
}

// FrameToText renders a framebuffer as newline-separated rows of block
// glyphs, top-down, for tests where a visual diff of a frame beats a pile
// of pixel indices.
func FrameToText(fb *video.FrameBuffer) string {
	rows := fb.ToDisplayRows()
	var sb strings.Builder
	sb.Grow((video.FramebufferWidth + 1) * video.FramebufferHeight)
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			sb.WriteRune(ShadeRune(rows[y][x]))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
