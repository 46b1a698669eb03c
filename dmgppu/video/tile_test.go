package video

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTileRowColorIndex(t *testing.T) {
	tests := []struct {
		name     string
		row      TileRow
		expected [8]uint8
	}{
		{"all zero", TileRow{0x00, 0x00}, [8]uint8{0, 0, 0, 0, 0, 0, 0, 0}},
		{"low plane only", TileRow{0xFF, 0x00}, [8]uint8{1, 1, 1, 1, 1, 1, 1, 1}},
		{"high plane only", TileRow{0x00, 0xFF}, [8]uint8{2, 2, 2, 2, 2, 2, 2, 2}},
		{"both planes", TileRow{0xFF, 0xFF}, [8]uint8{3, 3, 3, 3, 3, 3, 3, 3}},
		{"mixed", TileRow{0xA5, 0xC3}, [8]uint8{3, 2, 1, 0, 0, 1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for x := 0; x < 8; x++ {
				assert.Equal(t, tt.expected[x], tt.row.ColorIndex(x, false), "pixel %d", x)
			}
			for x := 0; x < 8; x++ {
				assert.Equal(t, tt.expected[7-x], tt.row.ColorIndex(x, true), "flipped pixel %d", x)
			}
		})
	}
}

func TestTileNumber(t *testing.T) {
	tests := []struct {
		name     string
		raw      byte
		unsigned bool
		expected int
	}{
		{"unsigned 0", 0x00, true, 0},
		{"unsigned 255", 0xFF, true, 255},
		{"signed 0 biases to 128", 0x00, false, 128},
		{"signed 127", 0x7F, false, 255},
		{"signed -128", 0x80, false, 0},
		{"signed -1", 0xFF, false, 127},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TileNumber(tt.raw, tt.unsigned))
		})
	}
}

func TestFetchTileRow(t *testing.T) {
	mem := newTestMemory()
	// Tile 3, row 5: address 0x8000 + 3*16 + 5*2.
	mem.Write(0x8000+3*16+5*2, 0xAB)
	mem.Write(0x8000+3*16+5*2+1, 0xCD)

	row := FetchTileRow(mem, 0x8000, 3, 5)
	assert.Equal(t, byte(0xAB), row.Low)
	assert.Equal(t, byte(0xCD), row.High)
}

func TestApplyPalette(t *testing.T) {
	// Identity palette: index n -> shade n.
	for i := uint8(0); i < 4; i++ {
		assert.Equal(t, Color(i), ApplyPalette(0xE4, i))
	}

	// Inverted palette.
	assert.Equal(t, Black, ApplyPalette(0x1B, 0))
	assert.Equal(t, White, ApplyPalette(0x1B, 3))

	// All-black palette.
	for i := uint8(0); i < 4; i++ {
		assert.Equal(t, Black, ApplyPalette(0xFF, i))
	}
}

func TestFramebufferIndexConvention(t *testing.T) {
	// Row 0 of the screen is the top scanline but the highest sink rows:
	// (143-0)*160.
	assert.Equal(t, 143*160, Index(0, 0))
	assert.Equal(t, 0, Index(143, 0))
	assert.Equal(t, 159, Index(143, 159))
}

func TestFrameBufferToDisplayRows(t *testing.T) {
	fb := NewFrameBuffer()
	fb.SetPixel(3, 0, Black)     // top row
	fb.SetPixel(159, 143, Black) // bottom-right

	rows := fb.ToDisplayRows()
	assert.Equal(t, Black, rows[0][3])
	assert.Equal(t, Black, rows[143][159])
	assert.Equal(t, White, rows[143][0])
}
