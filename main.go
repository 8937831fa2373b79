// Package main implements a CHIP-8 virtual machine emulator
package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/retroenv/retrochip8/internal/audio"
	"github.com/retroenv/retrochip8/internal/chip8"
	"github.com/retroenv/retrochip8/internal/cli"
	"github.com/retroenv/retrochip8/internal/config"
	"github.com/retroenv/retrochip8/internal/gui"
	"github.com/retroenv/retrochip8/internal/options"
	"github.com/retroenv/retrochip8/internal/rom"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := app.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			cli.PrintBanner(buildinfo.Version(version, commit, date))
			usageErr.ShowUsage()
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("version: %s\n", buildinfo.Version(version, commit, date))
		return
	}

	logger := config.CreateLogger(opts)
	if err := run(ctx, logger, opts); err != nil {
		logger.Fatal("Emulation failed", log.Err(err))
	}
}

func run(ctx context.Context, logger *log.Logger, opts options.Program) error {
	data, err := rom.Load(opts.ROM)
	if err != nil {
		return err
	}

	machine := chip8.New(logger)
	if err := machine.Load(data); err != nil {
		return err
	}

	// a missing audio device degrades to a silent run, it is not fatal
	var beeper gui.Beeper = audio.Nop{}
	player, err := audio.NewBeeper()
	if err != nil {
		logger.Warn("Audio unavailable, continuing without sound", log.Err(err))
	} else {
		beeper = player
	}
	defer func() {
		_ = beeper.Close()
	}()

	if !opts.Quiet {
		logger.Info("Running ROM",
			log.String("file", opts.ROM),
			log.Int("size", len(data)),
			log.Int("clock", opts.Clock),
		)
	}

	return gui.Run(ctx, logger, machine, beeper, data, opts)
}
