package http

import "errors"

// ErrUnavailable is returned when a dependency such as the database is unreachable.
var ErrUnavailable = errors.New("service unavailable")
