package runner

import (
	"errors"
	"fmt"

	"github.com/retroenv/retrogolib/cli"
	"github.com/retroenv/retrogolib/log"
)

// Options are the command line settings shared by the frontend commands
type Options struct {
	Config     string `flag:"c,config" usage:"configuration file"`
	Debug      bool   `flag:"debug" usage:"enable debug logging"`
	Trace      bool   `flag:"trace" usage:"log every executed instruction"`
	Cycles     int    `flag:"cycles" usage:"instructions per frame, overrides the configuration file"`
	Scale      int    `flag:"scale" usage:"display scale, overrides the configuration file"`
	Record     string `flag:"record" usage:"record the beep tone to a WAV file"`
	Screenshot string `flag:"screenshot" usage:"save a BMP of the display on exit"`

	ROM string `arg:"positional" usage:"CHIP-8 program to run" required:"true"`
}

// ErrUsage is returned by ParseFlags after the usage was printed
var ErrUsage = errors.New("invalid usage")

// ParseFlags parses the command line arguments, not including the program
// name
func ParseFlags(name string, args []string) (Options, error) {
	var opts Options
	flags := cli.NewFlagSet(name)
	flags.AddSection("Options", &opts)
	flags.AddPositional(&opts)

	remaining, err := flags.Parse(args)
	if err != nil {
		if !errors.Is(err, cli.ErrHelpRequested) {
			fmt.Printf("%v\n\n", err)
		}
		flags.ShowUsage()
		return opts, ErrUsage
	}
	if len(remaining) > 0 {
		fmt.Printf("unexpected arguments: %v\n\n", remaining)
		flags.ShowUsage()
		return opts, ErrUsage
	}
	return opts, nil
}

// CreateLogger returns the console logger for the selected verbosity
func CreateLogger(opts Options) *log.Logger {
	cfg := log.DefaultConfig()
	switch {
	case opts.Trace:
		cfg.Level = log.TraceLevel
	case opts.Debug:
		cfg.Level = log.DebugLevel
	}
	return log.NewWithConfig(cfg)
}
