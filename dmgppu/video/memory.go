package video

import "github.com/geoffreyporto/dmgppu/dmgppu/addr"

// Memory is the contract the PPU needs from its host MMU: byte access to
// VRAM/OAM/the register file, interrupt requests, the LY==LYC side effect,
// and dedicated STAT accessors for the two fields the PPU itself mutates.
//
// A Memory implementation is handed to GPU.Step for the duration of a single
// call and must not be retained past it; the PPU owns no reference to it
// between steps.
type Memory interface {
	Read(address uint16) byte
	Write(address uint16, value byte)
	RequestInterrupt(kind addr.Interrupt)
	CompareLYToLYC()
	LCDStatus() byte
	SetLCDStatus(status byte)
}
