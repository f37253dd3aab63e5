package mcp

import (
	"errors"
	"fmt"
)

// ErrUnknownServer is returned when a server selector does not match any
// catalog entry. It is reported before any configuration file is touched.
var ErrUnknownServer = errors.New("unknown server")

// ParseError indicates that an existing configuration file is not valid in
// its declared format. Enable and disable never overwrite a file that fails
// to parse; the status probe maps this error to StatusUnknown.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }
