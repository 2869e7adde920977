// Package main prints a linear disassembly listing of a CHIP-8 program
package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mnafees/chopper/v2/internal"
	"github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/retrogolib/log"
)

type options struct {
	Output string `flag:"o,output" usage:"name of the output file, printed on console if no name given"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`

	ROM string `arg:"positional" usage:"CHIP-8 program to disassemble" required:"true"`
}

func main() {
	var opts options
	flags := cli.NewFlagSet("chopper-disasm")
	flags.AddSection("Options", &opts)
	flags.AddPositional(&opts)
	if _, err := flags.Parse(os.Args[1:]); err != nil {
		if !errors.Is(err, cli.ErrHelpRequested) {
			fmt.Printf("%v\n\n", err)
		}
		flags.ShowUsage()
		os.Exit(1)
	}

	cfg := log.DefaultConfig()
	if opts.Debug {
		cfg.Level = log.DebugLevel
	}
	logger := log.NewWithConfig(cfg)

	if err := run(opts, logger); err != nil {
		logger.Error("disassembling failed", log.Err(err))
		os.Exit(1)
	}
}

func run(opts options, logger *log.Logger) error {
	data, err := os.ReadFile(opts.ROM)
	if err != nil {
		return fmt.Errorf("reading program: %w", err)
	}
	lines := internal.DisassembleROM(data)
	logger.Debug("program disassembled", log.String("rom", opts.ROM), log.Int("lines", len(lines)))

	if opts.Output == "" {
		return write(os.Stdout, lines)
	}
	f, err := os.Create(opts.Output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	if err := write(f, lines); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

func write(w io.Writer, lines []internal.Line) error {
	buf := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := fmt.Fprintln(buf, line.String()); err != nil {
			return fmt.Errorf("writing listing: %w", err)
		}
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("writing listing: %w", err)
	}
	return nil
}
