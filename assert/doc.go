/*
Package assert is the panicking counterpart of the check packages, for preconditions that indicate a programming error when violated.

There are a few patterns that are supported:
  - Wrapping a check with [Arg] to get the validated value or panic with a [*Violation].
  - Simple boolean assertions with [True] and [TrueFunc].
  - Log-only mode with [SetLogger], for code paths where a panic would be worse than continuing.
  - Removal of assertions with a build flag to maintain runtime performance.

To turn off assertions build with the 'noassert' flag.
Setting the ARGX_ASSERT environment variable to a false value like "off" disables evaluation at start up.
For temporary changes, the Disable and Enable functions are also provided, but these should likely not be used in production code.
*/
package assert
