package geodb

import "github.com/juju/errors"

// IOError is returned if database file cannot be opened or read, or if
// reader has become unusable (closed, corrupted data section etc).
type IOError struct {
	err error
}

func (e *IOError) Error() string {
	if e.err == nil {
		return "geodb i/o failure"
	}

	return "geodb i/o failure: " + e.err.Error()
}

func (e *IOError) Unwrap() error {
	return e.err
}

// IsIOFailure reports whether the cause of err is IOError.
func IsIOFailure(err error) bool {
	_, ok := errors.Cause(err).(*IOError)

	return ok
}

func newIOError(err error, format string, args ...interface{}) error {
	return &IOError{err: errors.Annotatef(err, format, args...)}
}
