// Package backend hosts the presentation layers the demo loop can drive:
// headless (frame counting plus PNG snapshots), terminal (tcell half-block
// rendering), and SDL2 (windowed, behind the sdl2 build tag). Backends
// consume completed framebuffers; they never reach into the PPU itself.
package backend

import (
	"fmt"
	"os"

	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// Action is a request a backend surfaces to the demo loop after polling its
// platform events.
type Action int

const (
	ActionNone Action = iota
	// ActionQuit asks the loop to stop.
	ActionQuit
	// ActionSnapshot asks for the current frame to be saved.
	ActionSnapshot
	// ActionCyclePattern advances to the next test pattern (pattern mode only).
	ActionCyclePattern
)

// StateProvider supplies the PPU status line some backends display. Optional.
type StateProvider interface {
	StatusLine() string
}

// BackendConfig holds configuration for backends.
type BackendConfig struct {
	Title           string
	Scale           int
	TestPattern     bool // frames come from a pattern generator, not the PPU
	TestPatternType int
	Snapshot        SnapshotConfig
	State           StateProvider // optional, backends may ignore it
}

// Backend is a complete presentation platform. Init must be called before
// the first Update; Cleanup releases platform resources and is safe to call
// after a failed Init.
type Backend interface {
	Init(config BackendConfig) error

	// Update renders the frame and returns any actions the platform's
	// events produced since the last call.
	Update(frame *video.FrameBuffer) ([]Action, error)

	Cleanup() error
}

// SnapshotConfig holds configuration for periodic frame snapshots.
type SnapshotConfig struct {
	Enabled   bool
	Interval  int    // save every N frames
	Directory string // output directory
	BaseName  string // filename prefix
}

// CreateSnapshotConfig builds a snapshot configuration from CLI parameters,
// creating the output directory (a temp directory when none is given).
func CreateSnapshotConfig(interval int, directory, baseName string) (SnapshotConfig, error) {
	config := SnapshotConfig{
		Enabled:  interval > 0,
		Interval: interval,
		BaseName: baseName,
	}

	if !config.Enabled {
		return config, nil
	}

	if directory == "" {
		tempDir, err := os.MkdirTemp("", "ppudemo-snapshots-*")
		if err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = tempDir
	} else {
		if err := os.MkdirAll(directory, 0755); err != nil {
			return config, fmt.Errorf("failed to create snapshot directory: %w", err)
		}
		config.Directory = directory
	}

	return config, nil
}
