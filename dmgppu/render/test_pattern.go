// Package render generates synthetic framebuffer content for exercising
// backends without a programmed VRAM scene, plus small helpers for turning
// frames into text.
package render

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/display"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// Test pattern identifiers, in cycle order.
const (
	PatternCheckerboard = iota
	PatternGradient
	PatternStripes
	PatternDiagonal
)

// PatternName returns the human-readable name of a pattern type.
func PatternName(patternType int) string {
	names := []string{"checkerboard", "gradient", "stripes", "diagonal"}
	return names[patternType%display.TestPatternCount]
}

// GeneratePattern fills fb with the given test pattern. frame advances the
// animation for the patterns that move (stripes scroll, diagonals slide);
// static patterns ignore it.
func GeneratePattern(fb *video.FrameBuffer, patternType, frame int) {
	switch patternType % display.TestPatternCount {
	case PatternCheckerboard:
		generateCheckerboard(fb)
	case PatternGradient:
		generateGradient(fb)
	case PatternStripes:
		generateStripes(fb, frame*display.TestPatternStripeSpeed)
	case PatternDiagonal:
		generateDiagonal(fb, frame*display.TestPatternDiagonalSpeed)
	}
}

func generateCheckerboard(fb *video.FrameBuffer) {
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			c := video.White
			if ((x/display.TestPatternTileSize)+(y/display.TestPatternTileSize))%2 == 1 {
				c = video.Black
			}
			fb.SetPixel(x, y, c)
		}
	}
}

func generateGradient(fb *video.FrameBuffer) {
	// Four vertical bands, lightest on the left.
	bandWidth := video.FramebufferWidth / 4
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			band := x / bandWidth
			if band > 3 {
				band = 3
			}
			fb.SetPixel(x, y, video.Color(band))
		}
	}
}

func generateStripes(fb *video.FrameBuffer, offset int) {
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			c := video.White
			if ((x+offset)/display.TestPatternStripeWidth)%2 == 1 {
				c = video.DarkGray
			}
			fb.SetPixel(x, y, c)
		}
	}
}

func generateDiagonal(fb *video.FrameBuffer, offset int) {
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			c := video.LightGray
			if ((x+y+offset)/display.TestPatternTileSize)%2 == 1 {
				c = video.DarkGray
			}
			fb.SetPixel(x, y, c)
		}
	}
}
