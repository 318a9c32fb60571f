package builder

import "errors"

// ErrConstructFailed is wrapped into every Constructor failure surfaced
// by BuildGraph, so callers can errors.Is against it regardless of which
// constructor produced the error.
var ErrConstructFailed = errors.New("builder: construct failed")

// ErrNilConstructor is returned when BuildGraph is given a nil
// Constructor in its variadic list.
var ErrNilConstructor = errors.New("builder: nil constructor")
