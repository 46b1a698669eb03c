package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/geoffreyporto/dmgppu/dmgppu/backend"
	"github.com/geoffreyporto/dmgppu/dmgppu/backend/terminal"
	"github.com/geoffreyporto/dmgppu/dmgppu/debug"
	"github.com/geoffreyporto/dmgppu/dmgppu/display"
	"github.com/geoffreyporto/dmgppu/dmgppu/harness"
	"github.com/geoffreyporto/dmgppu/dmgppu/render"
	"github.com/geoffreyporto/dmgppu/dmgppu/timing"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

func main() {
	app := cli.NewApp()
	app.Name = "ppudemo"
	app.Description = "Drives the DMG PPU core with a built-in demo scene or test patterns"
	app.Usage = "ppudemo [options]"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "backend",
			Usage: "Presentation backend: terminal, sdl2, or headless",
			Value: "terminal",
		},
		cli.BoolFlag{
			Name:  "pattern",
			Usage: "Display test patterns instead of the PPU-rendered demo scene",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode",
			Value: 60,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Window pixel scale for the sdl2 backend",
			Value: display.DefaultPixelScale,
		},
	}
	app.Action = runDemo

	if err := app.Run(os.Args); err != nil {
		slog.Error("Error running demo", "error", err)
		os.Exit(1)
	}
}

func runDemo(c *cli.Context) error {
	patternMode := c.Bool("pattern")

	baseName := "demo"
	if patternMode {
		baseName = "pattern"
	}
	snapshot, err := backend.CreateSnapshotConfig(c.Int("snapshot-interval"), c.String("snapshot-dir"), baseName)
	if err != nil {
		return err
	}

	h := harness.New()
	if !patternMode {
		harness.LoadDemoScene(h.MMU())
		h.EnableDisplay()
		harness.EnableDemoWindow(h.MMU())
	}

	config := backend.BackendConfig{
		Title:       "ppudemo",
		Scale:       c.Int("scale"),
		TestPattern: patternMode,
		Snapshot:    snapshot,
	}
	if !patternMode {
		config.State = h
	}

	var b backend.Backend
	var limiter timing.Limiter
	switch c.String("backend") {
	case "terminal":
		b = terminal.New()
		limiter = timing.NewAdaptiveLimiter()
	case "sdl2":
		b = backend.NewSDL2Backend()
		limiter = timing.NewAdaptiveLimiter()
	case "headless":
		b = backend.NewHeadlessBackend(c.Int("frames"))
		limiter = timing.NewNoOpLimiter()
	default:
		return fmt.Errorf("unknown backend %q", c.String("backend"))
	}

	if err := b.Init(config); err != nil {
		return err
	}
	defer b.Cleanup()

	patternFrame := video.NewFrameBuffer()
	patternType := render.PatternCheckerboard
	frameNo := 0

	for {
		var frame *video.FrameBuffer
		if patternMode {
			render.GeneratePattern(patternFrame, patternType, frameNo)
			frame = patternFrame
		} else {
			harness.AnimateDemoScene(h.MMU(), frameNo)
			frame = h.RunFrame()
		}
		frameNo++

		actions, err := b.Update(frame)
		if err != nil {
			return err
		}

		for _, action := range actions {
			switch action {
			case backend.ActionQuit:
				return nil
			case backend.ActionSnapshot:
				debug.TakeSnapshot(frame, patternMode, patternType)
			case backend.ActionCyclePattern:
				patternType = (patternType + 1) % display.TestPatternCount
				slog.Info("Pattern changed", "pattern", render.PatternName(patternType))
			}
		}

		limiter.WaitForNextFrame()
	}
}
