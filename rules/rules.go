/*
Package rules evaluates named argument checks declared in a YAML document.
This allows validating the inputs to a script or deployment in one place, reporting every failure at once.

	checks:
	  - name: port
	    type: int
	    env: PORT
	    value: "8080"
	    min: "1"
	    max: "65535"
	  - name: config
	    type: file
	    value: ./app.yaml

When env is given, the value is read from that environment variable, and value is used as the default.
An empty value fails the check unless optional is true.
*/
package rules

import (
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"

	"github.com/saylorsolutions/argx/check"
	"github.com/saylorsolutions/argx/env"
	"github.com/saylorsolutions/argx/slicecheck"
	"github.com/saylorsolutions/argx/strcheck"
	"gopkg.in/yaml.v3"
)

// Type is the kind of value a [Check] validates.
type Type string

const (
	TypeInt      Type = "int"
	TypeFloat    Type = "float"
	TypeDuration Type = "duration"
	TypeString   Type = "string"
	TypeUUID     Type = "uuid"
	TypeJSON     Type = "json"
	TypeFile     Type = "file"
	TypeDir      Type = "dir"
)

var (
	Types = []Type{TypeInt, TypeFloat, TypeDuration, TypeString, TypeUUID, TypeJSON, TypeFile, TypeDir} // Types are all supported check types.

	ErrInvalidDocument = errors.New("invalid rules document")
)

func (t Type) numeric() bool {
	return t == TypeInt || t == TypeFloat || t == TypeDuration
}

// Document is a set of named checks.
type Document struct {
	Checks []Check `yaml:"checks"`
}

// Check declares the validation of a single named value.
// Min and Max are parsed according to Type, and are only allowed for numeric types.
// The string constraints are only allowed with [TypeString].
type Check struct {
	Name     string   `yaml:"name"`
	Type     Type     `yaml:"type"`
	Value    string   `yaml:"value,omitempty"`
	Env      string   `yaml:"env,omitempty"`
	Optional bool     `yaml:"optional,omitempty"`
	Min      string   `yaml:"min,omitempty"`
	Max      string   `yaml:"max,omitempty"`
	NotBlank bool     `yaml:"notBlank,omitempty"`
	MinLen   *int     `yaml:"minLen,omitempty"`
	MaxLen   *int     `yaml:"maxLen,omitempty"`
	Pattern  string   `yaml:"pattern,omitempty"`
	OneOf    []string `yaml:"oneOf,omitempty"`
}

// Resolve returns the value that will be checked, reading the environment if Env is set.
func (c Check) Resolve() string {
	if len(c.Env) > 0 {
		return env.Val(c.Env, c.Value)
	}
	return c.Value
}

// Load decodes and validates a [Document].
// Unknown fields are rejected, since a misspelled constraint would otherwise be silently ignored.
func Load(r io.Reader) (*Document, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	doc := new(Document)
	if err := dec.Decode(doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidDocument)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	return doc, nil
}

// Validate checks the structure of the Document, without evaluating any checks.
func (d *Document) Validate() error {
	_, err := d.compile()
	return err
}

// Evaluate runs every check in the Document, returning a [*check.Collector] with all failures, or nil if all checks passed.
func (d *Document) Evaluate() error {
	return d.EvaluateFunc(nil)
}

// EvaluateFunc is like [Document.Evaluate], but also calls report with the result of each check in document order.
func (d *Document) EvaluateFunc(report func(name string, err error)) error {
	compiled, err := d.compile()
	if err != nil {
		return err
	}
	c := check.Collect()
	for _, cc := range compiled {
		err := cc.eval()
		if report != nil {
			report(cc.Name, err)
		}
		c.Add(err)
	}
	return c.Result()
}

type compiledCheck struct {
	Check
	eval func() error
}

func (d *Document) compile() ([]compiledCheck, error) {
	var (
		c        = check.Collect()
		names    = make([]string, len(d.Checks))
		compiled = make([]compiledCheck, 0, len(d.Checks))
	)
	for i, chk := range d.Checks {
		field := fmt.Sprintf("checks[%d]", i)
		names[i] = chk.Name
		c.Add(validateCheck(field, chk))
		eval, err := compileCheck(field, chk)
		if err != nil {
			c.Add(err)
			continue
		}
		compiled = append(compiled, compiledCheck{Check: chk, eval: eval})
	}
	_, err := slicecheck.NoDuplicates("checks.name", names)
	c.Add(err)
	if err := c.Result(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}
	return compiled, nil
}

func validateCheck(field string, chk Check) error {
	c := check.Collect()
	c.Add(errOf(strcheck.NotBlank(field+".name", chk.Name)))
	c.Add(errOf(check.OneOf(field+".type", chk.Type, Types...)))
	if !chk.Type.numeric() && (len(chk.Min) > 0 || len(chk.Max) > 0) {
		c.Failf(field, "min and max are not supported for type %q", chk.Type)
	}
	if chk.Type != TypeString && (chk.NotBlank || chk.MinLen != nil || chk.MaxLen != nil || len(chk.Pattern) > 0 || len(chk.OneOf) > 0) {
		c.Failf(field, "string constraints are not supported for type %q", chk.Type)
	}
	return c.Result()
}

func errOf[T any](_ T, err error) error {
	return err
}

func compileCheck(field string, chk Check) (func() error, error) {
	var validate func(name, val string) error
	switch chk.Type {
	case TypeInt:
		rules, err := boundRules(field, chk, parseInt)
		if err != nil {
			return nil, err
		}
		validate = parsed(parseInt, "an integer", rules)
	case TypeFloat:
		rules, err := boundRules(field, chk, parseFloat)
		if err != nil {
			return nil, err
		}
		validate = parsed(parseFloat, "a number", append([]check.Rule[float64]{check.Finite[float64]}, rules...))
	case TypeDuration:
		rules, err := boundRules(field, chk, parseDuration)
		if err != nil {
			return nil, err
		}
		validate = parsed(parseDuration, "a duration", rules)
	case TypeString:
		rules, err := stringRules(field, chk)
		if err != nil {
			return nil, err
		}
		validate = func(name, val string) error {
			_, err := check.Apply(name, val, rules...)
			return err
		}
	default:
		fn, ok := formatChecks[chk.Type]
		if !ok {
			// Reported by validateCheck.
			return func() error { return nil }, nil
		}
		validate = func(name, val string) error {
			_, err := fn(name, val)
			return err
		}
	}

	return func() error {
		val := chk.Resolve()
		if len(val) == 0 {
			if chk.Optional {
				return nil
			}
			if len(chk.Env) > 0 {
				return check.Fail(chk.Name, check.ErrMissing, "must be set with environment variable %s", chk.Env)
			}
			return check.Fail(chk.Name, check.ErrEmpty, "must not be empty")
		}
		return validate(chk.Name, val)
	}, nil
}

func stringRules(field string, chk Check) ([]check.Rule[string], error) {
	var rules []check.Rule[string]
	if chk.NotBlank {
		rules = append(rules, strcheck.NotBlank[string])
	}
	if chk.MinLen != nil || chk.MaxLen != nil {
		minLen, maxLen := 0, math.MaxInt
		if chk.MinLen != nil {
			minLen = *chk.MinLen
		}
		if chk.MaxLen != nil {
			maxLen = *chk.MaxLen
		}
		if _, err := check.NotNegative(field+".minLen", minLen); err != nil {
			return nil, err
		}
		if err := check.Bounds(field, minLen, maxLen); err != nil {
			return nil, err
		}
		rules = append(rules, func(name, val string) (string, error) {
			return strcheck.LengthInRange(name, val, minLen, maxLen)
		})
	}
	if len(chk.Pattern) > 0 {
		pattern, err := regexp.Compile(chk.Pattern)
		if err != nil {
			return nil, check.Wrap(field+".pattern", check.ErrFormat, err, "must be a valid regular expression")
		}
		rules = append(rules, func(name, val string) (string, error) {
			return strcheck.Matches(name, val, pattern)
		})
	}
	if len(chk.OneOf) > 0 {
		allowed := chk.OneOf
		rules = append(rules, func(name, val string) (string, error) {
			return check.OneOf(name, val, allowed...)
		})
	}
	return rules, nil
}
