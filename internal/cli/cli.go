// Package cli implements the uniseparate command line.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/JonMunkholm/uniseparate/internal/config"
	"github.com/JonMunkholm/uniseparate/internal/core"
	"github.com/JonMunkholm/uniseparate/internal/logging"
	"github.com/jessevdk/go-flags"
)

// app is the state shared by all commands.
type app struct {
	stdout  io.Writer
	stderr  io.Writer
	opts    *Options
	cfg     *config.Config
	service *core.Service
}

// Run parses args, executes the selected command and returns the exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}
	a.opts = newOptions(a)

	parser := flags.NewParser(a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "uniseparate"
	parser.CommandHandler = func(cmd flags.Commander, args []string) error {
		if cmd == nil {
			return nil
		}
		if err := a.init(); err != nil {
			return err
		}
		return cmd.Execute(args)
	}

	if _, err := parser.ParseArgs(args); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) {
			if flagsErr.Type == flags.ErrHelp {
				fmt.Fprintln(stdout, flagsErr.Message)
				return 0
			}
			fmt.Fprintln(stderr, flagsErr.Message)
			return 2
		}
		fmt.Fprintln(stderr, "error:", describe(err))
		return 1
	}
	return 0
}

// init loads configuration and builds the service once a command is chosen.
func (a *app) init() error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}
	load := config.Load
	if a.opts.Config != "" {
		load = func() (*config.Config, error) { return config.LoadFile(a.opts.Config) }
	}
	cfg, err := load()
	if err != nil {
		return err
	}
	a.cfg = cfg

	level := "warn"
	if a.opts.Verbose {
		level = "debug"
	}
	logging.Setup(a.stderr, level, cfg.Logging.Format)

	a.service = core.NewService(nil, cfg.Convert)
	return nil
}

// describe prefers the user-facing message for known errors.
func describe(err error) string {
	if core.IsUserFacing(err) {
		return core.FormatUserError(err) + "\n  " + err.Error()
	}
	return err.Error()
}

// Main runs the command line against the process streams.
func Main() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}
