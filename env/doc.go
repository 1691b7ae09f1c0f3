/*
Package env reads configuration from environment variables, validating values with [check.Rule] functions.

Keys are compared case-insensitive, and values are trimmed of surrounding whitespace.
An unset or blank variable always results in the caller's default value.
A variable that is set but can't be parsed, or fails a rule, results in an [*check.ArgError] named after the key.
*/
package env
