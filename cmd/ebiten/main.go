// Package main runs a CHIP-8 program in an ebiten window
package main

import (
	"errors"
	"os"

	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/mnafees/chopper/v2/pkg/ebiten"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := runner.ParseFlags("chopper-ebiten", os.Args[1:])
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

	return ebiten.Run(app.Context(), session, "Chopper | CHIP-8 Emulator")
}
