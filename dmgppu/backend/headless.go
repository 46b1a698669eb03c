package backend

import (
	"fmt"
	"log/slog"

	"github.com/geoffreyporto/dmgppu/dmgppu/debug"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// HeadlessBackend runs without any display, for automated testing and batch
// frame dumps. It counts frames, optionally saving PNG snapshots on an
// interval, and requests quit once the configured frame budget is spent.
type HeadlessBackend struct {
	config     BackendConfig
	frameCount int
	maxFrames  int
}

func NewHeadlessBackend(maxFrames int) *HeadlessBackend {
	return &HeadlessBackend{maxFrames: maxFrames}
}

func (h *HeadlessBackend) Init(config BackendConfig) error {
	h.config = config

	slog.Info("Running headless mode",
		"frames", h.maxFrames,
		"snapshot_interval", config.Snapshot.Interval,
		"snapshot_dir", config.Snapshot.Directory)
	return nil
}

func (h *HeadlessBackend) Update(frame *video.FrameBuffer) ([]Action, error) {
	h.frameCount++

	if h.config.Snapshot.Enabled && h.frameCount%h.config.Snapshot.Interval == 0 {
		h.saveSnapshot(frame)
	}

	if h.frameCount%10 == 0 {
		slog.Debug("Frame progress", "completed", h.frameCount, "total", h.maxFrames)
	}

	if h.frameCount >= h.maxFrames {
		// Final snapshot, unless the interval just produced one.
		if h.config.Snapshot.Enabled && h.frameCount%h.config.Snapshot.Interval != 0 {
			h.saveSnapshot(frame)
		}
		slog.Info("Headless execution completed", "frames", h.maxFrames)
		return []Action{ActionQuit}, nil
	}

	return nil, nil
}

func (h *HeadlessBackend) Cleanup() error {
	return nil
}

// FrameCount returns how many frames Update has consumed.
func (h *HeadlessBackend) FrameCount() int {
	return h.frameCount
}

func (h *HeadlessBackend) saveSnapshot(frame *video.FrameBuffer) {
	baseName := fmt.Sprintf("%s_frame_%d", h.config.Snapshot.BaseName, h.frameCount)

	if err := debug.SaveFramePNGToDir(frame, baseName, h.config.Snapshot.Directory); err != nil {
		slog.Error("Failed to save PNG snapshot", "frame", h.frameCount, "error", err)
	}
}
