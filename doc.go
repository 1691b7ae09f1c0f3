/*
Package argx provides argument precondition checks.
Each check validates one value against a simple predicate and either returns it unchanged, or returns an error naming the offending argument.

The package layout follows the kind of value being checked:
  - check: the core error type, numeric/ordered/range checks, and the bounds arithmetic the other packages share.
  - strcheck, slicecheck, seqcheck, mapcheck: checks for strings and containers.
  - filecheck: file and directory checks on the OS or any [io/fs.FS].
  - assert: the panicking counterpart of check, which may be compiled out with the 'noassert' build tag.
  - env and rules: validated configuration from environment variables and YAML rule documents.

The argcheck command exposes the same checks to shell scripts.
*/
package argx
