// Package chip8 implements the CHIP-8 virtual machine core.
// It emulates the architectural state and all 36 instructions of the
// interpreter, leaving presentation, input and audio to external callers.
package chip8

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/retrogolib/log"
)

// CHIP-8 memory layout constants.
//
// CHIP-8 memory map (4KB total):
//
//	0x000-0x1FF: Interpreter and font data (512 bytes)
//	0x200-0xFFF: User program space (3584 bytes)
const (
	// MemorySize is the total addressable memory of the machine.
	MemorySize = 4096

	// ProgramStart is the memory address where CHIP-8 programs begin execution.
	ProgramStart = 0x200

	// MaxROMSize is the largest program that fits into the user program space.
	MaxROMSize = MemorySize - ProgramStart

	// DisplayWidth and DisplayHeight describe the monochrome framebuffer.
	DisplayWidth  = 64
	DisplayHeight = 32

	// NumKeys is the number of keys of the hexadecimal keypad.
	NumKeys = 16

	numRegisters = 16
	stackSize    = 16

	// addressMask limits emulated memory accesses to the 4KB address space.
	addressMask = MemorySize - 1
)

var (
	// ErrROMTooLarge is returned when a program exceeds the user program space.
	ErrROMTooLarge = errors.New("ROM exceeds available program memory")

	// ErrEmptyROM is returned when a program contains no data.
	ErrEmptyROM = errors.New("ROM contains no data")

	// ErrInvalidKeyIndex is returned for key indexes outside of the keypad range.
	ErrInvalidKeyIndex = errors.New("invalid key index")
)

// Chip8 holds the complete architectural state of the virtual machine.
// It is exclusively owned by its caller: Step, SetKey and the display
// accessors must be sequenced on a single goroutine.
type Chip8 struct {
	memory [MemorySize]byte
	v      [numRegisters]uint8 // v[0xF] doubles as carry/borrow/collision flag
	i      uint16
	pc     uint16
	sp     uint8
	stack  [stackSize]uint16
	dt     uint8
	st     uint8
	keys   [NumKeys]bool

	display frameBuffer
	draw    bool

	randByte func() byte
	logger   *log.Logger
}

// New creates a machine in its reset state.
func New(logger *log.Logger) *Chip8 {
	c := &Chip8{
		randByte: func() byte {
			return byte(rand.IntN(256))
		},
		logger: logger,
	}
	c.Reset()
	return c
}

// Reset zeroes all machine state, reinstalls the font table at address 0
// and points the program counter at the program start address.
func (c *Chip8) Reset() {
	c.memory = [MemorySize]byte{}
	c.v = [numRegisters]uint8{}
	c.stack = [stackSize]uint16{}
	c.keys = [NumKeys]bool{}
	c.display.clear()

	c.i = 0
	c.sp = 0
	c.dt = 0
	c.st = 0
	c.draw = false
	c.pc = ProgramStart

	copy(c.memory[:], fontset)
}

// Load resets the machine and copies the program into memory at the
// program start address. Programs are never partially loaded: an oversized
// or empty ROM is rejected and leaves the machine in its reset state.
func (c *Chip8) Load(rom []byte) error {
	c.Reset()

	if len(rom) == 0 {
		return ErrEmptyROM
	}
	if len(rom) > MaxROMSize {
		return fmt.Errorf("%w: %d bytes exceed %d bytes", ErrROMTooLarge, len(rom), MaxROMSize)
	}

	copy(c.memory[ProgramStart:], rom)
	return nil
}

// SetKey records the press state of one keypad key. The input collaborator
// calls this between Step calls; key must be in the range [0,16).
func (c *Chip8) SetKey(key uint8, pressed bool) error {
	if key >= NumKeys {
		return fmt.Errorf("%w: %d", ErrInvalidKeyIndex, key)
	}
	c.keys[key] = pressed
	return nil
}

// DrawFlag reports whether the display changed since the flag was last cleared.
func (c *Chip8) DrawFlag() bool {
	return c.draw
}

// ClearDrawFlag is called by the presentation collaborator after it
// consumed a frame.
func (c *Chip8) ClearDrawFlag() {
	c.draw = false
}

// Pixel reports whether the display pixel at the given coordinates is lit.
func (c *Chip8) Pixel(x, y int) bool {
	return c.display.pixel(x, y)
}

// SoundActive reports whether the audio collaborator should emit a tone.
func (c *Chip8) SoundActive() bool {
	return c.st > 0
}

// readByte reads emulated memory. Addresses wrap at the 4KB boundary,
// matching the unchecked accesses of the historical interpreter without
// faulting.
func (c *Chip8) readByte(addr uint16) byte {
	return c.memory[addr&addressMask]
}

func (c *Chip8) writeByte(addr uint16, value byte) {
	c.memory[addr&addressMask] = value
}
