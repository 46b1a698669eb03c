//go:build sdl2

package backend

import (
	"fmt"
	"log/slog"
	"unsafe"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/geoffreyporto/dmgppu/dmgppu/display"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// SDL2Backend renders frames into an SDL2 window. Building it requires the
// SDL2 development libraries; default builds use the stub in sdl2_stub.go
// instead (build tag sdl2).
type SDL2Backend struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	config   BackendConfig
	pixels   []byte
}

func NewSDL2Backend() *SDL2Backend {
	return &SDL2Backend{}
}

func (s *SDL2Backend) Init(config BackendConfig) error {
	s.config = config

	scale := config.Scale
	if scale <= 0 {
		scale = display.DefaultPixelScale
	}

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("failed to initialize SDL2: %w", err)
	}

	window, err := sdl.CreateWindow(
		config.Title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(video.FramebufferWidth*scale), int32(video.FramebufferHeight*scale),
		sdl.WINDOW_SHOWN,
	)
	if err != nil {
		return fmt.Errorf("failed to create window: %w", err)
	}
	s.window = window

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	s.renderer = renderer

	texture, err := renderer.CreateTexture(
		sdl.PIXELFORMAT_RGBA32, sdl.TEXTUREACCESS_STREAMING,
		int32(video.FramebufferWidth), int32(video.FramebufferHeight),
	)
	if err != nil {
		return fmt.Errorf("failed to create texture: %w", err)
	}
	s.texture = texture

	s.pixels = make([]byte, video.FramebufferWidth*video.FramebufferHeight*4)

	slog.Info("SDL2 backend started", "scale", scale)
	return nil
}

func (s *SDL2Backend) Update(frame *video.FrameBuffer) ([]Action, error) {
	var actions []Action

	for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
		switch ev := event.(type) {
		case *sdl.QuitEvent:
			actions = append(actions, ActionQuit)
		case *sdl.KeyboardEvent:
			if ev.Type != sdl.KEYDOWN {
				continue
			}
			switch ev.Keysym.Sym {
			case sdl.K_ESCAPE, sdl.K_q:
				actions = append(actions, ActionQuit)
			case sdl.K_F12:
				actions = append(actions, ActionSnapshot)
			case sdl.K_p:
				actions = append(actions, ActionCyclePattern)
			}
		}
	}

	rows := frame.ToDisplayRows()
	i := 0
	for y := 0; y < video.FramebufferHeight; y++ {
		for x := 0; x < video.FramebufferWidth; x++ {
			r, g, b := rows[y][x].RGB()
			s.pixels[i] = r
			s.pixels[i+1] = g
			s.pixels[i+2] = b
			s.pixels[i+3] = 0xFF
			i += 4
		}
	}

	if err := s.texture.Update(nil, unsafe.Pointer(&s.pixels[0]), video.FramebufferWidth*4); err != nil {
		return actions, fmt.Errorf("failed to update texture: %w", err)
	}
	if err := s.renderer.Clear(); err != nil {
		return actions, fmt.Errorf("failed to clear renderer: %w", err)
	}
	if err := s.renderer.Copy(s.texture, nil, nil); err != nil {
		return actions, fmt.Errorf("failed to copy texture: %w", err)
	}
	s.renderer.Present()

	return actions, nil
}

func (s *SDL2Backend) Cleanup() error {
	if s.texture != nil {
		s.texture.Destroy()
		s.texture = nil
	}
	if s.renderer != nil {
		s.renderer.Destroy()
		s.renderer = nil
	}
	if s.window != nil {
		s.window.Destroy()
		s.window = nil
	}
	sdl.Quit()
	slog.Info("SDL2 backend stopped")
	return nil
}
