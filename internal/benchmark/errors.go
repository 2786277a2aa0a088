package benchmark

import (
	"errors"
	"fmt"

	"github.com/kballard/go-shellquote"
)

var (
	// ErrNoSamples is returned when averaging an empty sample set.
	ErrNoSamples = errors.New("no timing samples")

	// ErrNoRecords is returned when persisting an empty record set.
	ErrNoRecords = errors.New("no records to write")

	// ErrEmptyCatalog is returned when the library reports no enabled
	// algorithms for a mechanism family, so nothing can be selected.
	ErrEmptyCatalog = errors.New("no enabled algorithms")
)

// CommandError reports a failed external benchmark command.
type CommandError struct {
	Algorithm string
	Argv      []string
	Err       error
}

// Error implements the error interface
func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: command %q failed: %v", e.Algorithm, shellquote.Join(e.Argv...), e.Err)
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// ParseError reports a malformed line in a results CSV file.
type ParseError struct {
	Path string
	Line int
	Err  error
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Path, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
