package report

import (
	"errors"
	"fmt"
)

// ErrEmptyReport is returned when a summary report with zero departments
// is saved to a file.
var ErrEmptyReport = errors.New("summary report has no departments")

// ConfigError reports an unusable run configuration: bad flags, a bad
// menu selection, or an input file that fails validation.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return e.Msg
}

// Configf builds a *ConfigError from a format string.
func Configf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// FormatError reports a malformed data line. Line is 1-based and counts
// the header.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}
