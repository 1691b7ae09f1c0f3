package rules

import (
	"cmp"
	"strconv"
	"time"

	"github.com/saylorsolutions/argx/check"
	"github.com/saylorsolutions/argx/filecheck"
	"github.com/saylorsolutions/argx/strcheck"
)

var formatChecks = map[Type]check.Rule[string]{
	TypeUUID: strcheck.UUID[string],
	TypeJSON: strcheck.JSON[string],
	TypeFile: filecheck.IsFile,
	TypeDir:  filecheck.IsDir,
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}

func parseFloat(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseDuration(s string) (time.Duration, error) {
	return time.ParseDuration(s)
}

// boundRules parses the min and max of a numeric check.
// Errors refer to the field in the document, since that's where the problem must be fixed.
func boundRules[T cmp.Ordered](field string, chk Check, parse func(string) (T, error)) ([]check.Rule[T], error) {
	var (
		rules    []check.Rule[T]
		min, max T
	)
	if len(chk.Min) > 0 {
		val, err := parse(chk.Min)
		if err != nil {
			return nil, check.Wrap(field+".min", check.ErrFormat, err, "must be a valid %s", chk.Type)
		}
		if err := check.Bounds(field+".min", val, val); err != nil {
			return nil, err
		}
		min = val
		rules = append(rules, check.Min(val))
	}
	if len(chk.Max) > 0 {
		val, err := parse(chk.Max)
		if err != nil {
			return nil, check.Wrap(field+".max", check.ErrFormat, err, "must be a valid %s", chk.Type)
		}
		if err := check.Bounds(field+".max", val, val); err != nil {
			return nil, err
		}
		max = val
		rules = append(rules, check.Max(val))
	}
	if len(chk.Min) > 0 && len(chk.Max) > 0 {
		if err := check.Bounds(field, min, max); err != nil {
			return nil, err
		}
	}
	return rules, nil
}

// parsed creates a validation function that parses the value before applying rules.
func parsed[T any](parse func(string) (T, error), expected string, rules []check.Rule[T]) func(name, val string) error {
	return func(name, val string) error {
		v, err := parse(val)
		if err != nil {
			return check.Wrap(name, check.ErrFormat, err, "must be %s", expected)
		}
		_, err = check.Apply(name, v, rules...)
		return err
	}
}
