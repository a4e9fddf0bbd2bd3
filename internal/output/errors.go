package output

import "errors"

// ErrUnsupportedFormat is returned when a report format has no registered formatter.
var ErrUnsupportedFormat = errors.New("unsupported report format")
