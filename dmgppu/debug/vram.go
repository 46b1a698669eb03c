package debug

import (
	"fmt"

	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/bit"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

const (
	VRAMBaseAddr     = 0x8000
	VRAMEndAddr      = 0x97FF
	TileDataSize     = 16
	TilePixelWidth   = 8
	TilePixelHeight  = 8
	TilePatternCount = 384
	TilesPerRow      = 16
	TileRows         = 24

	BackgroundTilemapAddr = 0x9800
	WindowTilemapAddr     = 0x9C00
	TilemapSize           = 0x400
)

// TilemapInfo summarizes which layers LCDC currently drives.
type TilemapInfo struct {
	BackgroundActive bool
	WindowActive     bool
	LCDCValue        uint8
}

// VRAMData is a dump of all 384 tile patterns plus layer state.
type VRAMData struct {
	TilePatterns []video.Tile
	TilemapInfo  TilemapInfo
}

// ExtractVRAMData decodes every tile pattern in 0x8000-0x97FF, indexed
// linearly from the start of VRAM regardless of the addressing mode LCDC
// currently selects.
func ExtractVRAMData(reader MemoryReader) *VRAMData {
	data := &VRAMData{
		TilePatterns: make([]video.Tile, 0, TilePatternCount),
	}

	for i := 0; i < TilePatternCount; i++ {
		data.TilePatterns = append(data.TilePatterns, video.FetchTile(reader, VRAMBaseAddr, i))
	}

	data.TilemapInfo = extractTilemapInfo(reader)
	return data
}

func extractTilemapInfo(reader MemoryReader) TilemapInfo {
	lcdc := reader.Read(addr.LCDC)
	return TilemapInfo{
		BackgroundActive: bit.IsSet(0, lcdc),
		WindowActive:     bit.IsSet(5, lcdc),
		LCDCValue:        lcdc,
	}
}

// GetTileGrid arranges the tile dump as a 24x16 grid, the layout debug
// overlays conventionally render VRAM in.
func (data *VRAMData) GetTileGrid() [][]video.Tile {
	grid := make([][]video.Tile, TileRows)

	for row := 0; row < TileRows; row++ {
		grid[row] = make([]video.Tile, TilesPerRow)
		for col := 0; col < TilesPerRow; col++ {
			tileIndex := row*TilesPerRow + col
			if tileIndex < TilePatternCount {
				grid[row][col] = data.TilePatterns[tileIndex]
			}
		}
	}

	return grid
}

func (info *TilemapInfo) FormatSummary() string {
	bgStatus := "INACTIVE"
	if info.BackgroundActive {
		bgStatus = "ACTIVE"
	}

	winStatus := "INACTIVE"
	if info.WindowActive {
		winStatus = "ACTIVE"
	}

	return fmt.Sprintf("Background Map: 0x%04X [%s] | Window Map: 0x%04X [%s] | LCDC: 0x%02X",
		BackgroundTilemapAddr, bgStatus, WindowTilemapAddr, winStatus, info.LCDCValue)
}
