// Package main runs a CHIP-8 program in the terminal
package main

import (
	"errors"
	"os"

	"github.com/mnafees/chopper/v2/internal/runner"
	"github.com/mnafees/chopper/v2/pkg/tty"
	"github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

func main() {
	opts, err := runner.ParseFlags("chopper-tty", os.Args[1:])
	if err != nil {
		os.Exit(1)
	}
	// log lines would tear the display, keep them to errors unless asked for
	if !opts.Debug && !opts.Trace {
		log.SetDefaultLevel(log.ErrorLevel)
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

	io := tty.NewIO(session)
	if err := io.Open(tty.DefaultDevice); err != nil {
		return err
	}
	defer io.Destroy()

	return io.Loop(app.Context())
}
