package main

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/saylorsolutions/argx/check"
	"github.com/saylorsolutions/argx/filecheck"
	"github.com/saylorsolutions/argx/internal/cli"
	"github.com/saylorsolutions/argx/rules"
	"github.com/saylorsolutions/argx/strcheck"
	flag "github.com/spf13/pflag"
)

type app struct {
	stdin      io.Reader
	out        io.Writer
	isTerminal func() bool
	log        *slog.Logger
}

func (a *app) commands() *cli.CommandSet {
	set := cli.NewCommandSet("argcheck")
	set.Printer().Redirect(a.out)

	intCmd := set.AddCommand("int", "Validates that a value is an integer, optionally within bounds", "i")
	intCmd.Usage("int NAME [VALUE] [FLAGS]").Args(1, 2).Does(a.checkInt)
	intCmd.Flags().Int64("min", math.MinInt64, "Minimum allowed value")
	intCmd.Flags().Int64("max", math.MaxInt64, "Maximum allowed value")

	floatCmd := set.AddCommand("float", "Validates that a value is a number, optionally within bounds", "f")
	floatCmd.Usage("float NAME [VALUE] [FLAGS]").Args(1, 2).Does(a.checkFloat)
	floatCmd.Flags().Float64("min", math.Inf(-1), "Minimum allowed value")
	floatCmd.Flags().Float64("max", math.Inf(1), "Maximum allowed value")
	floatCmd.Flags().Bool("finite", false, "Rejects NaN and infinite values")

	strCmd := set.AddCommand("string", "Validates a string value", "str", "s")
	strCmd.Usage("string NAME [VALUE] [FLAGS]").Args(1, 2).Does(a.checkString)
	strCmd.Flags().Bool("not-blank", false, "Requires at least one non-whitespace character")
	strCmd.Flags().Int("min-len", 0, "Minimum length in runes")
	strCmd.Flags().Int("max-len", math.MaxInt, "Maximum length in runes")
	strCmd.Flags().String("pattern", "", "Regular expression the value must match")
	strCmd.Flags().Bool("uuid", false, "Requires a valid UUID")
	strCmd.Flags().Bool("json", false, "Requires a valid JSON document")

	fileCmd := set.AddCommand("file", "Validates that a path is an existing regular file")
	fileCmd.Usage("file NAME [PATH] [FLAGS]").Args(1, 2).Does(a.checkFile)
	fileCmd.Flags().Bool("not-empty", false, "Requires the file to have content")

	dirCmd := set.AddCommand("dir", "Validates that a path is an existing directory", "d")
	dirCmd.Usage("dir NAME [PATH]").Args(1, 2).Does(a.checkDir)

	rulesCmd := set.AddCommand("rules", "Evaluates all checks in a YAML rules document", "r")
	rulesCmd.Usage("rules [FLAGS]").Args(0, 0).Does(a.checkRules)
	rulesCmd.Flags().StringP("file", "f", "", "Rules document to read, instead of STDIN")

	return set
}

// nameAndValue maps positional arguments, reading the value from STDIN if it's not given and STDIN is not a terminal.
func (a *app) nameAndValue(flags *flag.FlagSet) (string, string, error) {
	var name, value string
	if err := cli.MapArgs(flags.Args(), 1, &name, &value); err != nil {
		return "", "", cli.NewUsageError("%w", err)
	}
	if _, err := strcheck.NotBlank("NAME", name); err != nil {
		return "", "", cli.NewUsageError("%w", err)
	}
	if flags.NArg() > 1 {
		return name, value, nil
	}
	if a.isTerminal() {
		return "", "", cli.NewUsageError("no value given for %s, and STDIN is a terminal", name)
	}
	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", "", fmt.Errorf("failed to read value from STDIN: %w", err)
	}
	return name, strings.TrimRight(string(data), "\r\n"), nil
}

func (a *app) passed(name string, value any) error {
	a.log.Debug("Check passed", "name", name, "value", value)
	return nil
}

func (a *app) checkInt(flags *flag.FlagSet, _ *cli.Printer) error {
	name, value, err := a.nameAndValue(flags)
	if err != nil {
		return err
	}
	min, max := cli.MustGet(flags.GetInt64("min")), cli.MustGet(flags.GetInt64("max"))
	if err := check.Bounds("--min/--max", min, max); err != nil {
		return cli.NewUsageError("%w", err)
	}
	n, err := strconv.ParseInt(strings.TrimSpace(value), 10, 64)
	if err != nil {
		return check.Wrap(name, check.ErrFormat, err, "must be an integer")
	}
	if _, err := check.InRange(name, n, min, max); err != nil {
		return err
	}
	return a.passed(name, n)
}

func (a *app) checkFloat(flags *flag.FlagSet, _ *cli.Printer) error {
	name, value, err := a.nameAndValue(flags)
	if err != nil {
		return err
	}
	min, max := cli.MustGet(flags.GetFloat64("min")), cli.MustGet(flags.GetFloat64("max"))
	if err := check.Bounds("--min/--max", min, max); err != nil {
		return cli.NewUsageError("%w", err)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		return check.Wrap(name, check.ErrFormat, err, "must be a number")
	}
	floatRules := []check.Rule[float64]{check.Within(min, max)}
	if cli.MustGet(flags.GetBool("finite")) {
		floatRules = append([]check.Rule[float64]{check.Finite[float64]}, floatRules...)
	}
	if _, err := check.Apply(name, f, floatRules...); err != nil {
		return err
	}
	return a.passed(name, f)
}

func (a *app) checkString(flags *flag.FlagSet, _ *cli.Printer) error {
	name, value, err := a.nameAndValue(flags)
	if err != nil {
		return err
	}
	minLen, maxLen := cli.MustGet(flags.GetInt("min-len")), cli.MustGet(flags.GetInt("max-len"))
	if err := check.Bounds("--min-len/--max-len", minLen, maxLen); err != nil {
		return cli.NewUsageError("%w", err)
	}
	var pattern *regexp.Regexp
	if expr := cli.MustGet(flags.GetString("pattern")); len(expr) > 0 {
		pattern, err = regexp.Compile(expr)
		if err != nil {
			return cli.NewUsageError("invalid --pattern: %w", err)
		}
	}

	c := check.Collect()
	if cli.MustGet(flags.GetBool("not-blank")) {
		c.Check(strcheck.NotBlank(name, value))
	}
	c.Check(strcheck.LengthInRange(name, value, minLen, maxLen))
	if pattern != nil {
		c.Check(strcheck.Matches(name, value, pattern))
	}
	if cli.MustGet(flags.GetBool("uuid")) {
		c.Check(strcheck.UUID(name, value))
	}
	if cli.MustGet(flags.GetBool("json")) {
		c.Check(strcheck.JSON(name, value))
	}
	if err := c.Result(); err != nil {
		return err
	}
	return a.passed(name, value)
}

func (a *app) checkFile(flags *flag.FlagSet, _ *cli.Printer) error {
	name, path, err := a.nameAndValue(flags)
	if err != nil {
		return err
	}
	fileCheck := filecheck.IsFile
	if cli.MustGet(flags.GetBool("not-empty")) {
		fileCheck = filecheck.NotEmptyFile
	}
	if _, err := fileCheck(name, path); err != nil {
		return err
	}
	return a.passed(name, path)
}

func (a *app) checkDir(flags *flag.FlagSet, _ *cli.Printer) error {
	name, path, err := a.nameAndValue(flags)
	if err != nil {
		return err
	}
	if _, err := filecheck.IsDir(name, path); err != nil {
		return err
	}
	return a.passed(name, path)
}

func (a *app) checkRules(flags *flag.FlagSet, _ *cli.Printer) error {
	var in io.Reader
	if path := cli.MustGet(flags.GetString("file")); len(path) > 0 {
		if _, err := filecheck.IsFile("--file", path); err != nil {
			return cli.NewUsageError("%w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer func() {
			_ = f.Close()
		}()
		in = f
	} else {
		if a.isTerminal() {
			return cli.NewUsageError("no rules file given, and STDIN is a terminal")
		}
		in = a.stdin
	}

	doc, err := rules.Load(in)
	if err != nil {
		return cli.NewUsageError("%w", err)
	}
	return doc.EvaluateFunc(func(name string, err error) {
		if err == nil {
			a.log.Debug("Check passed", "name", name)
			return
		}
		a.log.Info("Check failed", "name", name, "error", err)
	})
}
