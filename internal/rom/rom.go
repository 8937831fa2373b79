// Package rom loads CHIP-8 ROM files.
// ROMs are raw binary images of big-endian instruction words, loaded
// verbatim at the program start address of the machine.
package rom

import (
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/chip8"
)

// Load reads a ROM file and validates that it fits the user program space.
// The returned buffer is passed unmodified to the machine's Load operation,
// which re-validates the size.
func Load(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading ROM file '%s': %w", path, err)
	}

	if len(data) == 0 {
		return nil, fmt.Errorf("ROM file '%s': %w", path, chip8.ErrEmptyROM)
	}
	if len(data) > chip8.MaxROMSize {
		return nil, fmt.Errorf("ROM file '%s': %w: %d bytes exceed %d bytes",
			path, chip8.ErrROMTooLarge, len(data), chip8.MaxROMSize)
	}

	return data, nil
}
