/*
Package cli provides the command structure for argcheck.

There are a few reasonable (IMHO) policies for how this operates.

  - User-visible output should go to STDERR by default. This is supported with a configurable [Printer].
  - This package uses [pflag] for posix style flags.
  - Flags should NOT be interspersed by default. This makes flag and argument parsing much more consistent and predictable.
  - Global flags are often confusing and not necessary. Flags apply to the command at hand, while global state may be configured through the environment.
  - Mistakes in invocation are returned as a [UsageError], so they can be distinguished from a failed check.

[pflag]: https://github.com/spf13/pflag
*/
package cli
