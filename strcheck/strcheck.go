// Package strcheck provides argument checks for strings.
// Lengths are measured in runes, not bytes, except for [Index] which validates a byte offset for slicing.
package strcheck

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/saylorsolutions/argx/check"
	"github.com/tidwall/gjson"
)

// NotEmpty validates that s has at least one character.
func NotEmpty[S ~string](argName string, s S) (S, error) {
	if len(s) == 0 {
		return s, check.Fail(argName, check.ErrEmpty, "must not be empty")
	}
	return s, nil
}

// NotBlank validates that s has at least one character that isn't whitespace, as defined by [unicode.IsSpace].
func NotBlank[S ~string](argName string, s S) (S, error) {
	if strings.IndexFunc(string(s), func(r rune) bool { return !unicode.IsSpace(r) }) < 0 {
		return s, check.Fail(argName, check.ErrBlank, "must not be blank")
	}
	return s, nil
}

// Length validates that s has exactly n runes.
func Length[S ~string](argName string, s S, n int) (S, error) {
	return s, check.Measure(argName, check.UnitLength, utf8.RuneCountInString(string(s)), n, n)
}

// LengthInRange validates that s has between min and max runes, inclusive.
func LengthInRange[S ~string](argName string, s S, min, max int) (S, error) {
	return s, check.Measure(argName, check.UnitLength, utf8.RuneCountInString(string(s)), min, max)
}

// MaxLength validates that s has at most max runes.
func MaxLength[S ~string](argName string, s S, max int) (S, error) {
	return LengthInRange(argName, s, 0, max)
}

// Index validates that i is a valid byte index into s.
func Index[S ~string](argName string, s S, i int) (int, error) {
	return check.Index(argName, i, len(s))
}

// Matches validates that s matches the given pattern.
// A nil pattern is treated as a mistake in the check, and will return [check.ErrInvalidBounds].
func Matches[S ~string](argName string, s S, pattern *regexp.Regexp) (S, error) {
	if pattern == nil {
		return s, check.Fail(argName, check.ErrInvalidBounds, "nil pattern")
	}
	if !pattern.MatchString(string(s)) {
		return s, check.Fail(argName, check.ErrFormat, "must match pattern %q", pattern.String())
	}
	return s, nil
}

// HasPrefix validates that s starts with prefix.
func HasPrefix[S ~string](argName string, s S, prefix string) (S, error) {
	if !strings.HasPrefix(string(s), prefix) {
		return s, check.Fail(argName, check.ErrFormat, "must start with %q", prefix)
	}
	return s, nil
}

// OneOfFold validates that s is equal to one of the allowed values, ignoring case.
func OneOfFold[S ~string](argName string, s S, allowed ...string) (S, error) {
	for _, a := range allowed {
		if strings.EqualFold(string(s), a) {
			return s, nil
		}
	}
	return s, check.Fail(argName, check.ErrMissing, "must be one of %v, got %q", allowed, string(s))
}

// UUID validates that s can be parsed as a UUID.
// Any format accepted by [uuid.Parse] is valid, including the braced and urn prefixed forms.
func UUID[S ~string](argName string, s S) (S, error) {
	if err := uuid.Validate(string(s)); err != nil {
		return s, check.Wrap(argName, check.ErrFormat, err, "must be a UUID")
	}
	return s, nil
}

// JSON validates that s is a well-formed JSON document.
func JSON[S ~string](argName string, s S) (S, error) {
	if !gjson.Valid(string(s)) {
		return s, check.Fail(argName, check.ErrFormat, "must be valid JSON")
	}
	return s, nil
}
