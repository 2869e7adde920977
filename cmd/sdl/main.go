// Package main runs a CHIP-8 program in an SDL window
package main

import (
	"errors"
	"os"
	"runtime"

	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/mnafees/chopper/v2/pkg/sdl"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func init() {
	// SDL calls must be made from the main thread
	runtime.LockOSThread()
}

func main() {
	opts, err := runner.ParseFlags("chopper", os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	logger := runner.CreateLogger(opts)

	if err := run(opts, logger); err != nil {
		logger.Error("emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func run(opts runner.Options, logger *log.Logger) (err error) {
	session, err := runner.New(opts, logger)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, session.Close())
	}()

	io := sdl.NewIO(session)
	if err := io.SetupWindow("Chopper | CHIP-8 Emulator"); err != nil {
		return err
	}
	defer io.Destroy()

	return io.Loop(app.Context())
}
