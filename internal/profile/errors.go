package profile

import (
	"errors"
	"fmt"
)

var (
	// ErrUnreadable indicates the backing source could not be accessed.
	ErrUnreadable = errors.New("source unreadable")
	// ErrMalformed indicates the backing source could not be decoded into profiles.
	ErrMalformed = errors.New("source malformed")
)

// LoadError reports why a source yielded no profiles.
// Kind is ErrUnreadable or ErrMalformed.
type LoadError struct {
	Source string
	Kind   error
	Err    error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("cannot load %s: %v: %v", e.Source, e.Kind, e.Err)
}

func (e *LoadError) Unwrap() []error {
	return []error{e.Kind, e.Err}
}

func unreadable(source string, err error) error {
	return &LoadError{Source: source, Kind: ErrUnreadable, Err: err}
}

func malformed(source string, err error) error {
	return &LoadError{Source: source, Kind: ErrMalformed, Err: err}
}
