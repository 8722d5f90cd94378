package formulas

import "errors"

// ErrInvalidArgument is returned when a formula's explicit precondition is
// violated. Match it with errors.Is.
var ErrInvalidArgument = errors.New("invalid argument")
