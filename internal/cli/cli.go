package cli

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"slices"
	"strings"

	"github.com/saylorsolutions/argx/check"
	flag "github.com/spf13/pflag"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	HelpPatterns      = []string{"--help", "-h", "help"} // HelpPatterns is a slice of arguments that should trigger the output of usage information with the top-level [CommandSet].

	keyCleansePattern = regexp.MustCompile(`\s`)
)

// CommandFunc is a function that may be executed within a [Command].
type CommandFunc = func(flags *flag.FlagSet, printer *Printer) error

// Command is an executable function in a CLI.
type Command struct {
	flags      *flag.FlagSet
	exec       CommandFunc
	key        string
	parent     string
	shortUsage string
	usage      string
	printer    *Printer
	aliases    []string
	minArgs    int
	maxArgs    int
}

func cleanseKey(key string) string {
	return keyCleansePattern.ReplaceAllString(strings.ToLower(key), "")
}

func newCommand(key, parent, shortUsage string, printer *Printer) *Command {
	key = cleanseKey(key)
	fs := flag.NewFlagSet(key, flag.ContinueOnError)
	fs.BoolP("help", "h", false, "Prints this usage information")
	fs.SetInterspersed(false)
	fs.SetOutput(printer)
	cmd := &Command{flags: fs, key: key, parent: parent, shortUsage: shortUsage, printer: printer, maxArgs: math.MaxInt}
	fs.Usage = cmd.printUsage
	cmd.exec = func(_ *flag.FlagSet, _ *Printer) error {
		cmd.printUsage()
		return nil
	}
	return cmd
}

// Does specifies the [CommandFunc] that should be executed by this [Command].
func (c *Command) Does(commandFunc CommandFunc) *Command {
	if commandFunc == nil {
		return c
	}
	c.exec = commandFunc
	return c
}

// Args specifies the minimum and maximum number of positional arguments accepted by this [Command].
// A call outside of this range will return a [UsageError] before the [CommandFunc] is executed.
//
// Passing invalid bounds will panic, since this is a mistake in the CLI definition.
func (c *Command) Args(min, max int) *Command {
	if _, err := check.NotNegative("min", min); err != nil {
		panic(err)
	}
	if err := check.Bounds("args", min, max); err != nil {
		panic(err)
	}
	c.minArgs, c.maxArgs = min, max
	return c
}

// Flags returns the [flag.FlagSet] for this [Command].
func (c *Command) Flags() *flag.FlagSet {
	return c.flags
}

// Usage allows specifying a longer description of the [Command] that will be output when a [HelpPatterns] flag is passed.
//
// The short description and flag usages will be appended to this description.
func (c *Command) Usage(format string, args ...any) *Command {
	text := fmt.Sprintf(format, args...)
	if len(c.parent) > 0 && len(text) > 0 {
		text = c.parent + " " + text
	}
	c.usage = text
	return c
}

func (c *Command) printUsage() {
	var buf strings.Builder
	buf.WriteString(c.shortUsage + "\n")
	if len(c.usage) > 0 {
		buf.WriteString("\nUSAGE:\n" + strings.TrimSuffix(c.usage, "\n") + "\n")
	}
	buf.WriteString("\nFLAGS\n")
	buf.WriteString(c.flags.FlagUsages())
	c.printer.Print(buf.String())
}

// Exec executes the command with given arguments, parsing flags.
// Any [UsageError] returned will name this [Command].
func (c *Command) Exec(args []string) error {
	if err := c.flags.Parse(args); err != nil {
		return &UsageError{Command: c.path(), wrapped: err}
	}
	if val, _ := c.flags.GetBool("help"); val {
		c.printUsage()
		return nil
	}
	if err := c.checkArgs(c.flags.NArg()); err != nil {
		return &UsageError{Command: c.path(), wrapped: err}
	}
	return attribute(c.exec(c.flags, c.printer), c.path())
}

func (c *Command) path() string {
	return strings.TrimSpace(c.parent + " " + c.key)
}

// checkArgs validates the number of positional arguments against the bounds given to [Command.Args].
func (c *Command) checkArgs(n int) error {
	switch {
	case c.minArgs == c.maxArgs:
		if n != c.minArgs {
			return check.Fail("arguments", check.ErrOutOfRange, "exactly %d required, got %d", c.minArgs, n)
		}
		return nil
	case c.maxArgs == math.MaxInt:
		if n < c.minArgs {
			return check.Fail("arguments", check.ErrOutOfRange, "at least %d required, got %d", c.minArgs, n)
		}
		return nil
	default:
		_, err := check.InRange("arguments", n, c.minArgs, c.maxArgs)
		return err
	}
}

// CommandSet is a group of [Command].
type CommandSet struct {
	commands map[string]*Command
	aliases  map[string]*Command
	printer  *Printer
	parent   string
}

// NewCommandSet is used to set up a top level [CommandSet] as the root of a CLI's command structure.
func NewCommandSet(parent ...string) *CommandSet {
	return &CommandSet{printer: NewPrinter(), parent: strings.Join(parent, " ")}
}

// AddCommand adds a sub-command to this [CommandSet].
// The key parameter will be cleansed to remove spaces, and normalize to lower-case.
// Aliases may be added as a way to support shorter variants of the same [Command].
func (s *CommandSet) AddCommand(key, shortUsage string, aliases ...string) *Command {
	key = cleanseKey(key)
	cmd := newCommand(key, s.parent, shortUsage, s.Printer())
	if s.commands == nil {
		s.commands = map[string]*Command{}
		s.aliases = map[string]*Command{}
	}
	s.commands[key] = cmd
	for _, alias := range aliases {
		alias = cleanseKey(alias)
		if len(alias) == 0 {
			continue
		}
		s.aliases[alias] = cmd
		cmd.aliases = append(cmd.aliases, alias)
	}
	slices.Sort(cmd.aliases)
	return cmd
}

// Printer returns the cached [Printer] for this [CommandSet].
func (s *CommandSet) Printer() *Printer {
	if s.printer == nil {
		s.printer = NewPrinter()
	}
	return s.printer
}

// Exec executes this [CommandSet].
// It's expected that the first argument is the key/alias for a sub-command.
func (s *CommandSet) Exec(args []string) error {
	if len(args) == 0 {
		return &UsageError{wrapped: fmt.Errorf("%w: no arguments", ErrUnknownCommand)}
	}
	key := strings.ToLower(args[0])
	cmd, ok := s.commands[key]
	if !ok {
		cmd, ok = s.aliases[key]
		if !ok {
			return &UsageError{wrapped: fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])}
		}
	}
	return cmd.Exec(args[1:])
}

// RespondUsage will print usage information with the [CommandSet]'s [Printer] if there are no arguments, or one of [HelpPatterns] is given as the first argument.
// If usage information was printed, then true will be returned.
func (s *CommandSet) RespondUsage(args []string, format string, vals ...any) bool {
	if len(args) > 0 && !slices.Contains(HelpPatterns, args[0]) {
		return false
	}
	text := fmt.Sprintf(format, vals...)
	if len(text) > 0 {
		text = strings.TrimSuffix("\n\n"+text, "\n")
	}
	s.printer.Printf("%s%s\n\nCOMMANDS:\n%s", s.parent, text, s.CommandUsages())
	return true
}

// CommandUsages returns a string including the usage information for sub-commands in this [CommandSet].
//
// The sub-command keys will be sorted alphabetically before output.
func (s *CommandSet) CommandUsages() string {
	var (
		buf         strings.Builder
		keys        = make([]string, 0, len(s.commands))
		withAliases = make(map[string]string, len(s.commands))
		maxLen      int
	)
	for key, cmd := range s.commands {
		keys = append(keys, key)
		withAliases[key] = strings.Join(append([]string{key}, cmd.aliases...), ", ")
		maxLen = max(maxLen, len(withAliases[key]))
	}
	slices.Sort(keys)
	fmtStr := fmt.Sprintf("  %%-%ds\t%%s\n", maxLen)
	for _, key := range keys {
		buf.WriteString(fmt.Sprintf(fmtStr, withAliases[key], s.commands[key].shortUsage))
	}
	return buf.String()
}
