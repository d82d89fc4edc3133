package main

import (
	"fmt"
	"io"

	"github.com/pkg/errors"
)

var (
	ErrMissingConfig  = errors.New("missing config file")
	ErrInvalidConfig  = errors.New("invalid config file")
	ErrInvalidCommand = errors.New("invalid command")
	ErrEmptyTitle     = errors.New("title cannot be empty")
	ErrEditorUnset    = errors.New("EDITOR environment variable is not set")
)

// ConfigError ties a config failure to the file it came from
type ConfigError struct {
	Kind error
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	msg := e.Kind.Error()
	if e.Path != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *ConfigError) Is(target error) bool {
	return target == e.Kind
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// WriteError wraps an I/O failure while persisting a post
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("writing %s: %v", e.Path, e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// StepError reports a build or publish process that exited nonzero
type StepError struct {
	Step string
	Code int
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Step, e.Code)
}

// describeError prints a labeled message for err. When bootstrap is non-nil a
// missing config is repaired by calling it, and the outcome goes to stdout.
func describeError(stdout, stderr io.Writer, err error, bootstrap func() (string, error)) {
	var cfgErr *ConfigError
	switch {
	case errors.Is(err, ErrMissingConfig):
		fmt.Fprintln(stderr, "[Error]: Missing config file.")
		fmt.Fprintln(stdout, "-------")
		if errors.As(err, &cfgErr) && cfgErr.Path != "" {
			fmt.Fprintf(stdout, "Not found: %s\n", cfgErr.Path)
		}
		if bootstrap == nil {
			fmt.Fprintln(stdout, "Check that the Zola directory is set and initialized.")
			return
		}
		fmt.Fprintln(stdout, "Attempting to create one...")
		path, werr := bootstrap()
		if werr != nil {
			fmt.Fprintf(stdout, "Error creating config file: %v\n", werr)
			return
		}
		fmt.Fprintf(stdout, "Created: %s\n", path)
	case errors.Is(err, ErrInvalidConfig):
		fmt.Fprintln(stderr, "[Error]: Invalid config file.")
		fmt.Fprintln(stdout, "-------")
		fmt.Fprintln(stdout, "Zola directory isn't set or doesn't exist.")
		if errors.As(err, &cfgErr) && cfgErr.Err != nil {
			fmt.Fprintf(stdout, "Details: %v\n", cfgErr.Err)
		}
	case errors.Is(err, ErrInvalidCommand):
		fmt.Fprintln(stderr, "[Error]: Invalid command")
		fmt.Fprintln(stdout, "-------")
		fmt.Fprintln(stdout, "Available commands:")
		fmt.Fprintln(stdout, "  add      - Adds a new post")
		fmt.Fprintln(stdout)
	default:
		fmt.Fprintf(stderr, "[Error]: %v\n", err)
	}
}
