package debug

import (
	"fmt"

	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

const (
	OAMBaseAddr       = 0xFE00
	OAMSpriteCount    = 40
	OAMBytesPerSprite = 4
	SpriteYOffset     = 16
	SpriteXOffset     = 8
)

// SpriteInfo pairs a decoded OAM entry with its visibility on the scanline
// the extraction was performed for.
type SpriteInfo struct {
	Index     int
	Sprite    video.Sprite
	IsVisible bool
}

// OAMData is a point-in-time dump of the whole sprite table.
type OAMData struct {
	Sprites       []SpriteInfo
	CurrentLine   int
	ActiveSprites int
	SpriteHeight  int
}

// ExtractOAMData decodes all 40 OAM entries and marks which intersect
// currentLine given the active sprite height (8 or 16).
func ExtractOAMData(reader MemoryReader, currentLine int, spriteHeight int) *OAMData {
	data := &OAMData{
		Sprites:      make([]SpriteInfo, 0, OAMSpriteCount),
		CurrentLine:  currentLine,
		SpriteHeight: spriteHeight,
	}

	for i := 0; i < OAMSpriteCount; i++ {
		s := video.ReadSprite(reader, i)
		sy := s.ScreenY()
		visible := currentLine >= sy && currentLine < sy+spriteHeight

		data.Sprites = append(data.Sprites, SpriteInfo{
			Index:     i,
			Sprite:    s,
			IsVisible: visible,
		})
		if visible {
			data.ActiveSprites++
		}
	}

	return data
}

func (s *SpriteInfo) String() string {
	status := "OFF"
	if s.IsVisible {
		status = "ACTIVE"
	}
	return fmt.Sprintf("Sprite %2d: Y=%3d X=%3d  Tile=0x%02X Flags=0x%02X [%s]",
		s.Index, s.Sprite.Y, s.Sprite.X, s.Sprite.TileIndex, s.Sprite.Flags, status)
}

// GetVisibleSprites filters the dump down to sprites intersecting the
// extraction line.
func (data *OAMData) GetVisibleSprites() []SpriteInfo {
	visible := make([]SpriteInfo, 0, data.ActiveSprites)
	for _, sprite := range data.Sprites {
		if sprite.IsVisible {
			visible = append(visible, sprite)
		}
	}
	return visible
}

func (data *OAMData) FormatSummary() string {
	return fmt.Sprintf("Current Line: %d | Active Sprites: %d/%d | Height: %dpx",
		data.CurrentLine, data.ActiveSprites, OAMSpriteCount, data.SpriteHeight)
}
