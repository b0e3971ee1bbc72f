package integer

import "github.com/zeebo/errs"

var (
	// Error is the class for generic integer errors.
	Error = errs.Class("integer")

	// RadixError is returned when a conversion is asked for a base other
	// than 2, 10 or 16.
	RadixError = errs.Class("unsupported radix")

	// UnsafeError is returned when a native number is outside of the safe
	// integer range.
	UnsafeError = errs.Class("unsafe number")
)
