package main

import (
	"errors"
	"log/slog"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/saylorsolutions/argx/check"
	"github.com/saylorsolutions/argx/env"
	"github.com/saylorsolutions/argx/internal/cli"
	"github.com/saylorsolutions/argx/strcheck"
	"golang.org/x/term"
)

const (
	exitOK = iota
	exitCheckFailed
	exitUsage
)

const (
	EnvLogLevel = "ARGX_LOG_LEVEL"
)

func main() {
	a := &app{
		stdin: os.Stdin,
		out:   os.Stderr,
		isTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd()))
		},
		log: newLogger(),
	}
	os.Exit(a.run(os.Args[1:]))
}

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

func newLogger() *slog.Logger {
	level, err := logLevel()
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	if err != nil {
		log.Warn("Ignoring invalid log level", "error", err)
	}
	return log
}

// logLevel reads the level from EnvLogLevel, returning the warn level with any error.
func logLevel() (slog.Level, error) {
	name, err := env.String(EnvLogLevel, "warn", func(argName string, val string) (string, error) {
		return strcheck.OneOfFold(argName, val, slices.Sorted(maps.Keys(logLevels))...)
	})
	if err != nil {
		return slog.LevelWarn, err
	}
	return logLevels[strings.ToLower(name)], nil
}

func (a *app) run(args []string) int {
	commands := a.commands()
	if commands.RespondUsage(args, "Validates named values, exiting with status %d if a check fails, and %d if argcheck is used incorrectly.", exitCheckFailed, exitUsage) {
		return exitOK
	}
	err := commands.Exec(args)
	return a.exitCode(commands.Printer(), err)
}

func (a *app) exitCode(out *cli.Printer, err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, &cli.UsageError{}):
		out.PrintError(err)
		return exitUsage
	case errors.Is(err, check.ErrArgument):
		out.PrintError(err)
		return exitCheckFailed
	default:
		a.log.Error("Unexpected error", "error", err)
		return exitCheckFailed
	}
}
