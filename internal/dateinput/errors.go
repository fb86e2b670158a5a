package dateinput

import (
	"errors"
	"fmt"
)

var ErrUnknownGranularity = errors.New("unknown granularity")

type UnknownLocaleError struct {
	Key string
}

func (e *UnknownLocaleError) Error() string {
	return fmt.Sprintf("unknown locale: %s", e.Key)
}

// LocaleError reports a malformed locale definition.
type LocaleError struct {
	Key    string
	Reason string
}

func (e *LocaleError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("invalid locale: %s", e.Reason)
	}
	return fmt.Sprintf("invalid locale %s: %s", e.Key, e.Reason)
}
