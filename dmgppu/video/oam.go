package video

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
)

// Sprite represents a single object in OAM memory (0xFE00-0xFE9F), 4 bytes each,
// 40 sprites total.
type Sprite struct {
	Y         uint8 // hardware Y, still offset by +16
	X         uint8 // hardware X, still offset by +8
	TileIndex uint8
	Flags     uint8
	OAMIndex  int

	PaletteOBP1 bool // false = OBP0, true = OBP1
	FlipX       bool
	FlipY       bool
	BehindBG    bool // background-priority flag
}

func (s *Sprite) parseFlags() {
	s.PaletteOBP1 = bit.IsSet(4, s.Flags)
	s.FlipX = bit.IsSet(5, s.Flags)
	s.FlipY = bit.IsSet(6, s.Flags)
	s.BehindBG = bit.IsSet(7, s.Flags)
}

// ScreenY returns the sprite's top row in screen space (hardware Y minus 16).
func (s *Sprite) ScreenY() int {
	return int(s.Y) - 16
}

// ScreenX returns the sprite's left column in screen space (hardware X minus 8).
func (s *Sprite) ScreenX() int {
	return int(s.X) - 8
}

// ReadSprite reads the sprite descriptor at the given OAM index (0-39) from memory.
func ReadSprite(mem MemoryReader, index int) Sprite {
	base := addr.OAMStart + uint16(index*4)

	s := Sprite{
		Y:         mem.Read(base),
		X:         mem.Read(base + 1),
		TileIndex: mem.Read(base + 2),
		Flags:     mem.Read(base + 3),
		OAMIndex:  index,
	}
	s.parseFlags()

	return s
}
