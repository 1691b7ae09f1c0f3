package cli

import (
	"math"
	"strings"
	"testing"

	"github.com/saylorsolutions/argx/check"
	flag "github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
)

func quietPrinter() (*Printer, *strings.Builder) {
	var buf strings.Builder
	p := NewPrinter()
	p.Redirect(&buf)
	return p, &buf
}

func TestCommand_Exec(t *testing.T) {
	p, buf := quietPrinter()
	cmd := newCommand("test", "", "test command", p)
	assert.NoError(t, cmd.Exec(nil))
	assert.Contains(t, buf.String(), "test command", "The default action should print usage")

	executed := false
	cmd.Does(func(flags *flag.FlagSet, _ *Printer) error {
		executed = true
		return nil
	})
	assert.NoError(t, cmd.Exec(nil))
	assert.True(t, executed)
}

func TestCommand_Args(t *testing.T) {
	p, _ := quietPrinter()
	var got []string
	cmd := newCommand("test", "", "test command", p).Args(1, 2).Does(func(flags *flag.FlagSet, _ *Printer) error {
		got = flags.Args()
		return nil
	})

	assert.NoError(t, cmd.Exec([]string{"a"}))
	assert.Equal(t, []string{"a"}, got)
	assert.NoError(t, cmd.Exec([]string{"a", "b"}))

	err := cmd.Exec(nil)
	assert.ErrorIs(t, err, &UsageError{})
	assert.ErrorIs(t, err, check.ErrOutOfRange)
	assert.ErrorIs(t, cmd.Exec([]string{"a", "b", "c"}), &UsageError{})
}

func TestCommand_Args_Messages(t *testing.T) {
	tests := map[string]struct {
		min, max int
		args     []string
		expected string
	}{
		"Exact": {
			min: 2, max: 2, args: []string{"a"},
			expected: `usage error in 'argcheck test': argument "arguments": exactly 2 required, got 1`,
		},
		"At least": {
			min: 1, max: math.MaxInt, args: nil,
			expected: `usage error in 'argcheck test': argument "arguments": at least 1 required, got 0`,
		},
		"Range": {
			min: 1, max: 2, args: []string{"a", "b", "c"},
			expected: `usage error in 'argcheck test': argument "arguments": value must be in range [1, 2], got 3`,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			p, _ := quietPrinter()
			cmd := newCommand("test", "argcheck", "test command", p).Args(tc.min, tc.max).Does(func(_ *flag.FlagSet, _ *Printer) error {
				return nil
			})
			err := cmd.Exec(tc.args)
			assert.EqualError(t, err, tc.expected)
			assert.ErrorIs(t, err, check.ErrOutOfRange)
		})
	}
}

func TestCommand_UsageErrorAttribution(t *testing.T) {
	p, _ := quietPrinter()
	cmd := newCommand("test", "argcheck", "test command", p).Does(func(_ *flag.FlagSet, _ *Printer) error {
		return NewUsageError("bad input")
	})
	err := cmd.Exec(nil)
	var usageErr *UsageError
	assert.ErrorAs(t, err, &usageErr)
	assert.Equal(t, "argcheck test", usageErr.Command)
	assert.Equal(t, "Run 'argcheck test --help' for usage information", usageErr.Hint())

	err = cmd.Exec([]string{"--nope"})
	assert.ErrorAs(t, err, &usageErr)
	assert.Equal(t, "argcheck test", usageErr.Command, "Flag errors should name the command")
}

func TestCommand_Args_InvalidBounds(t *testing.T) {
	p, _ := quietPrinter()
	cmd := newCommand("test", "", "test command", p)
	assert.Panics(t, func() {
		cmd.Args(2, 1)
	})
	assert.Panics(t, func() {
		cmd.Args(-1, 1)
	})
}

func TestCommand_Help(t *testing.T) {
	p, buf := quietPrinter()
	executed := false
	cmd := newCommand("test", "", "test command", p).Args(1, 1).Does(func(_ *flag.FlagSet, _ *Printer) error {
		executed = true
		return nil
	})
	cmd.Usage("test NAME")
	assert.NoError(t, cmd.Exec([]string{"-h"}), "Help should not be subject to argument checks")
	assert.False(t, executed)
	assert.Contains(t, buf.String(), "USAGE:\ntest NAME")
}

func TestCommand_BadFlag(t *testing.T) {
	p, _ := quietPrinter()
	cmd := newCommand("test", "", "test command", p)
	assert.ErrorIs(t, cmd.Exec([]string{"--nope"}), &UsageError{})
}

func TestCommandSet_Exec(t *testing.T) {
	set := NewCommandSet()
	set.Printer().Redirect(&strings.Builder{})
	assert.ErrorIs(t, set.Exec(nil), ErrUnknownCommand)

	cmd := set.AddCommand("test", "test command")
	assert.NoError(t, set.Exec([]string{"test"}))

	executed := false
	cmd.Does(func(flags *flag.FlagSet, _ *Printer) error {
		executed = true
		return nil
	})
	assert.NoError(t, set.Exec([]string{"TEST"}))
	assert.True(t, executed)

	err := set.Exec([]string{"Does", "not", "exist"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.ErrorIs(t, err, &UsageError{})
}

func TestCommandSet_AddCommand_Aliases(t *testing.T) {
	set := NewCommandSet("commands")
	set.Printer().Redirect(&strings.Builder{})
	executed := 0
	set.AddCommand("test", "test command", "t", " ", "A").Does(func(_ *flag.FlagSet, _ *Printer) error {
		executed++
		return nil
	})
	assert.NoError(t, set.Exec([]string{"t"}))
	assert.NoError(t, set.Exec([]string{"a"}))
	assert.Equal(t, 2, executed)
	assert.Equal(t, "  test, a, t\ttest command\n", set.CommandUsages())
}

func TestCommandSet_RespondUsage(t *testing.T) {
	set := NewCommandSet("commands")
	var buf strings.Builder
	set.Printer().Redirect(&buf)
	set.AddCommand("test", "test command")

	assert.False(t, set.RespondUsage([]string{"test"}, ""))
	assert.Empty(t, buf.String())

	assert.True(t, set.RespondUsage([]string{HelpPatterns[0], "something", "else"}, "Printed usage"))
	assert.Contains(t, buf.String(), "Printed usage")
	assert.Contains(t, buf.String(), "COMMANDS:\n  test\ttest command")

	buf.Reset()
	assert.True(t, set.RespondUsage(nil, ""), "No arguments should print usage")
}
