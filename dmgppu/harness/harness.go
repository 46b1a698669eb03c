// Package harness plays the CPU's role for a module that has none: it owns
// the MMU, the mode machine, and a framebuffer, and hands the PPU synthetic
// T-cycle bursts the way an emulator loop would after each instruction.
package harness

import (
	"github.com/geoffreyporto/dmgppu/dmgppu/addr"
	"github.com/geoffreyporto/dmgppu/dmgppu/debug"
	"github.com/geoffreyporto/dmgppu/dmgppu/memory"
	"github.com/geoffreyporto/dmgppu/dmgppu/video"
)

// defaultBurst is the T-cycle cost of the shortest instruction, the
// granularity a real CPU loop would step the PPU at.
const defaultBurst = 4

// Harness wires an MMU, a GPU, and a framebuffer together and advances
// them in instruction-sized cycle bursts.
type Harness struct {
	mmu   *memory.MMU
	gpu   *video.GPU
	frame *video.FrameBuffer
	burst int

	frameCount int
}

func New() *Harness {
	return &Harness{
		mmu:   memory.New(),
		gpu:   video.NewGPU(),
		frame: video.NewFrameBuffer(),
		burst: defaultBurst,
	}
}

func (h *Harness) MMU() *memory.MMU          { return h.mmu }
func (h *Harness) Frame() *video.FrameBuffer { return h.frame }
func (h *Harness) FrameCount() int           { return h.frameCount }

// Step advances the PPU by one burst of cycles, returning true when a frame
// just completed.
func (h *Harness) Step(cycles int) bool {
	done := h.gpu.Step(h.mmu, h.mmu.CycleState(), h.frame, cycles)
	if done {
		h.frameCount++
	}
	return done
}

// RunFrame steps until the PPU reports a completed frame, then returns the
// framebuffer holding it. With the display off this returns at the
// synthetic 70,224-cycle boundary instead.
func (h *Harness) RunFrame() *video.FrameBuffer {
	for !h.Step(h.burst) {
	}
	return h.frame
}

// StatusLine implements backend.StateProvider.
func (h *Harness) StatusLine() string {
	state := debug.ExtractPPUState(h.mmu, h.mmu.CycleState())
	return state.FormatStatusLine()
}

// EnableDisplay programs LCDC with display, background, and sprites on
// (tile data 0x8000 unsigned, map 0x9800) plus the default palettes, then
// runs the PPU past the enable delay. The PPU suppresses the first three
// completed frames on its own, so the next RunFrame already returns real
// content.
func (h *Harness) EnableDisplay() {
	h.mmu.Write(addr.BGP, 0xE4)
	h.mmu.Write(addr.OBP0, 0xE4)
	h.mmu.Write(addr.OBP1, 0xE4)
	h.mmu.Write(addr.LCDC, 0x93)

	for h.mmu.CycleState().ScreenDisabled {
		h.Step(h.burst)
	}
	h.frameCount = 0
}
