package cli

import (
	"errors"
	"fmt"
)

// errCanceled is returned when the user backs out of a picker.
var errCanceled = errors.New("canceled")

type badValueError struct {
	flag  string
	value string
	err   error
}

func (e badValueError) Error() string {
	return fmt.Sprintf("--%s %q: %v", e.flag, e.value, e.err)
}

func (e badValueError) Unwrap() error { return e.err }

func errBadValue(flag, value string, err error) error {
	return badValueError{flag: flag, value: value, err: err}
}

type unknownTokenError struct {
	index int
	token string
}

func (e unknownTokenError) Error() string {
	return fmt.Sprintf("unknown key token %d: %q", e.index, e.token)
}
