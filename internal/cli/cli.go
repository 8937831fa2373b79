// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/options"
)

// ParseFlags parses command line flags and the positional ROM argument.
func ParseFlags() (options.Program, error) {
	flags := flag.NewFlagSet(os.Args[0], flag.ContinueOnError)
	var opts options.Program
	readOptionFlags(flags, &opts)

	err := flags.Parse(os.Args[1:])
	if err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	args := flags.Args()

	if opts.Version {
		return opts, nil
	}
	if len(args) == 0 {
		return opts, &UsageError{flags: flags}
	}

	if err := validateArgs(args); err != nil {
		return opts, err
	}
	if err := normalizeOptions(&opts); err != nil {
		return opts, err
	}

	opts.ROM = args[0]
	return opts, nil
}

// PrintBanner prints the application banner with the version string.
func PrintBanner(version string) {
	fmt.Println("[-------------------------------------]")
	fmt.Println("[ retrochip8 - CHIP-8 virtual machine ]")
	fmt.Printf("[-------------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", version)
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

func (e *UsageError) ShowUsage() {
	fmt.Printf("usage: retrochip8 [options] <ROM file>\n\n")
	if e.flags != nil {
		e.flags.PrintDefaults()
	}
	fmt.Println()
}

// validateArgs checks if arguments are in correct order
func validateArgs(args []string) error {
	for i, arg := range args {
		if i > 0 && arg[0] == '-' {
			return &UsageError{
				msg: fmt.Sprintf("Potential argument %s found after the ROM file, please pass the ROM file as last argument", arg),
			}
		}
	}
	return nil
}

// normalizeOptions validates option values
func normalizeOptions(opts *options.Program) error {
	if opts.Scale < 1 {
		return fmt.Errorf("invalid scale factor %d, must be at least 1", opts.Scale)
	}
	if opts.Clock < 60 {
		return fmt.Errorf("invalid clock %d, must be at least 60 cycles per second", opts.Clock)
	}
	return nil
}

func readOptionFlags(flags *flag.FlagSet, opts *options.Program) {
	flags.IntVar(&opts.Clock, "clock", options.DefaultClock, "emulation speed in cycles per second")
	flags.IntVar(&opts.Scale, "scale", options.DefaultScale, "window scale factor")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
	flags.BoolVar(&opts.Version, "version", false, "print version and exit")
}
