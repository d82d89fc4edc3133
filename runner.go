package main

import (
	"io"
	"os/exec"

	"github.com/pkg/errors"
)

// ProcessRunner runs an external program and waits for it to exit.
// err is non-nil only when the program could not be started or waited on;
// a program that ran and failed reports its status through code.
type ProcessRunner interface {
	Run(name string, args []string, dir string) (code int, err error)
}

// ExecRunner runs programs with os/exec, attached to the given streams
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

func (r *ExecRunner) Run(name string, args []string, dir string) (int, error) {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	err := cmd.Run()
	if err == nil {
		return 0, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errors.Wrapf(err, "running %s", name)
}
