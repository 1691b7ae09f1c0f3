/*
Package check provides argument precondition checks that return errors instead of panicking.

Every check takes the name of the argument being validated, and the value itself.
If the value is valid it's returned unchanged along with a nil error, so a check can wrap the expression that produces the value.
Otherwise an [*ArgError] is returned that names the argument and describes the violation.

	func NewPool(size int) (*Pool, error) {
		size, err := check.InRange("size", size, 1, 64)
		if err != nil {
			return nil, err
		}
		// ...
	}

The kind of violation can be identified with [errors.Is], using the sentinel errors in this package like [ErrOutOfRange] or [ErrIndex].
All checks also match [ErrArgument].

# Bounds

The index and range functions ([Index], [Position], [SubRange], [FromSize], [Measure]) hold the bounds arithmetic used by the container check packages, so they can be used to build consistent checks for custom containers too.
A range whose min is greater than its max is reported with [ErrInvalidBounds], since that's a problem with the check rather than the value.

# Collecting errors

Use a [Collector] to run many checks and report every failure at once, rather than returning on the first one.
*/
package check
