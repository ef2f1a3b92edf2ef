package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"github.com/valerio/go-chip8/chip8"
	"github.com/valerio/go-chip8/chip8/backend"
	"github.com/valerio/go-chip8/chip8/backend/headless"
	"github.com/valerio/go-chip8/chip8/backend/terminal"
	"github.com/valerio/go-chip8/chip8/timing"
)

func main() {
	app := cli.NewApp()
	app.Name = "chip8"
	app.Description = "A CHIP-8 virtual machine"
	app.Usage = "chip8 [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file (.ch8 binary, or .txt/.ch8l listing)",
		},
		cli.BoolFlag{
			Name:  "listing",
			Usage: "Treat the ROM file as an address/byte listing regardless of extension",
		},
		cli.IntFlag{
			Name:  "clock",
			Usage: "Instruction clock rate in Hz",
			Value: timing.DefaultClockRate,
		},
		cli.BoolFlag{
			Name:  "strict",
			Usage: "Halt on unknown opcodes instead of skipping them",
		},
		cli.BoolFlag{
			Name:  "headless",
			Usage: "Run the emulator without a graphical interface",
		},
		cli.IntFlag{
			Name:  "frames",
			Usage: "Number of frames to run in headless mode (required for headless)",
			Value: 0,
		},
		cli.IntFlag{
			Name:  "snapshot-interval",
			Usage: "Save frame snapshots every N frames in headless mode (0 = disabled)",
			Value: 0,
		},
		cli.StringFlag{
			Name:  "snapshot-dir",
			Usage: "Directory to save frame snapshots (default: temp directory)",
		},
		cli.BoolFlag{
			Name:  "sdl2",
			Usage: "Use the SDL2 backend (requires a build with -tags sdl2)",
		},
		cli.IntFlag{
			Name:  "scale",
			Usage: "Pixel scale for the SDL2 window",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "Start with the debug panel visible",
		},
		cli.StringFlag{
			Name:  "limiter",
			Usage: "Frame pacing strategy: adaptive, ticker or none",
			Value: "adaptive",
		},
	}
	app.Action = runEmulator

	err := app.Run(os.Args)
	if err != nil {
		slog.Error("Error running emulator", "error", err)
		os.Exit(1)
	}
}

func runEmulator(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	opts := []chip8.Option{chip8.WithClockRate(c.Int("clock"))}
	if c.Bool("strict") {
		opts = append(opts, chip8.WithHaltOnIllegal())
	}

	newMachine := chip8.NewWithFile
	if c.Bool("listing") {
		newMachine = chip8.NewWithListingFile
	}
	emu, err := newMachine(romPath, opts...)
	if err != nil {
		return err
	}

	config := backend.BackendConfig{
		Title:         "CHIP-8",
		Scale:         c.Int("scale"),
		ShowDebug:     c.Bool("debug"),
		DebugProvider: emu,
		Sound:         emu,
	}

	if c.Bool("headless") {
		frames := c.Int("frames")
		if frames <= 0 {
			return errors.New("headless mode requires --frames option with a positive value")
		}

		snapshots, err := headless.CreateSnapshotConfig(
			c.Int("snapshot-interval"), c.String("snapshot-dir"), romPath)
		if err != nil {
			return err
		}

		// Headless runs as fast as possible.
		return chip8.Run(emu, headless.New(frames, snapshots), config, timing.NewNoOpLimiter())
	}

	var b backend.Backend
	if c.Bool("sdl2") {
		b = backend.NewSDL2Backend()
	} else {
		b = terminal.New()
	}

	limiter, err := newLimiter(c.String("limiter"))
	if err != nil {
		return err
	}

	return chip8.Run(emu, b, config, limiter)
}

func newLimiter(name string) (timing.Limiter, error) {
	switch name {
	case "adaptive":
		return timing.NewAdaptiveLimiter(), nil
	case "ticker":
		return timing.NewTickerLimiter(), nil
	case "none":
		return timing.NewNoOpLimiter(), nil
	}
	return nil, fmt.Errorf("unknown limiter %q (expected adaptive, ticker or none)", name)
}
