// Package options contains the program options.
package options

// Default values for flag-controlled settings.
const (
	DefaultClock = 540 // Step calls per second, approximating 60Hz timer decay
	DefaultScale = 10  // window pixels per CHIP-8 pixel
)

// Program options of the emulator.
type Program struct {
	ROM string // path of the ROM file to run

	Clock int // emulation speed in cycles per second
	Scale int // window scale factor

	Debug   bool
	Quiet   bool
	Version bool
}
