package env

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/saylorsolutions/argx/check"
)

func getEnv() map[string]string {
	envMap := map[string]string{}
	for _, kv := range os.Environ() {
		key, val, found := strings.Cut(kv, "=")
		if !found {
			continue
		}
		envMap[strings.ToLower(key)] = val
	}
	return envMap
}

// Lookup returns the trimmed value of an environment variable, and whether it was set to a non-blank value.
// Note that keys are compared case-insensitive.
func Lookup(key string) (string, bool) {
	val, ok := getEnv()[strings.ToLower(key)]
	if !ok {
		return "", false
	}
	val = strings.TrimSpace(val)
	return val, len(val) > 0
}

// Val will attempt to get an environment variable value using the given key.
// If the variable isn't set, or is blank, then the defaultVal will be returned.
func Val(key string, defaultVal string) string {
	if val, ok := Lookup(key); ok {
		return val
	}
	return defaultVal
}

// parse is the shared lookup, parse, and validate sequence for typed variables.
// The defaultVal is returned with any error, so callers may choose to log the error and continue.
func parse[T any](key string, defaultVal T, parseFunc func(string) (T, error), expected string, rules []check.Rule[T]) (T, error) {
	sval, ok := Lookup(key)
	if !ok {
		return defaultVal, nil
	}
	val, err := parseFunc(sval)
	if err != nil {
		return defaultVal, check.Wrap(key, check.ErrFormat, err, "must be %s", expected)
	}
	if _, err := check.Apply(key, val, rules...); err != nil {
		return defaultVal, err
	}
	return val, nil
}

// String gets an environment variable value, validated with the given rules.
// The defaultVal is returned without validation if the variable isn't set or is blank.
func String(key string, defaultVal string, rules ...check.Rule[string]) (string, error) {
	return parse(key, defaultVal, func(s string) (string, error) { return s, nil }, "a string", rules)
}

var (
	DefaultTrue  = []string{"1", "yes", "true", "on"}  // DefaultTrue are the values considered "true" when using [Bool], and can be changed.
	DefaultFalse = []string{"0", "no", "false", "off"} // DefaultFalse are the values considered "false" when using [Bool], and can be changed.
)

// BoolIf allows translating an environment variable string value to a boolean using the given translation map.
// It's expected for the user to populate translation with a set of strings that relate to the map key.
// These values will be compared in a case-insensitive way.
//
// The defaultVal will be returned if the variable isn't set or is blank.
// A value that doesn't match any translation is returned as an error matching [check.ErrFormat].
func BoolIf(key string, defaultVal bool, translation map[bool][]string) (bool, error) {
	return parse(key, defaultVal, func(s string) (bool, error) {
		for _, b := range []bool{true, false} {
			for _, candidate := range translation[b] {
				if strings.EqualFold(s, candidate) {
					return b, nil
				}
			}
		}
		return false, strconv.ErrSyntax
	}, "a boolean", nil)
}

// Bool interprets an environment variable as a boolean, using [DefaultTrue] and [DefaultFalse].
func Bool(key string, defaultVal bool) (bool, error) {
	return BoolIf(key, defaultVal, map[bool][]string{
		true:  DefaultTrue,
		false: DefaultFalse,
	})
}

// Int interprets an environment variable as a base 10 integer, validated with the given rules.
//
//	workers, err := env.Int("WORKERS", 4, check.Within[int64](1, 64))
func Int(key string, defaultVal int64, rules ...check.Rule[int64]) (int64, error) {
	return parse(key, defaultVal, func(s string) (int64, error) {
		return strconv.ParseInt(s, 10, 64)
	}, "an integer", rules)
}

// Float interprets an environment variable as a float64, validated with the given rules.
// NaN and infinite values are always rejected.
func Float(key string, defaultVal float64, rules ...check.Rule[float64]) (float64, error) {
	rules = append([]check.Rule[float64]{check.Finite[float64]}, rules...)
	return parse(key, defaultVal, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	}, "a number", rules)
}

// Duration interprets an environment variable as a [time.Duration], validated with the given rules.
func Duration(key string, defaultVal time.Duration, rules ...check.Rule[time.Duration]) (time.Duration, error) {
	return parse(key, defaultVal, time.ParseDuration, "a duration", rules)
}
