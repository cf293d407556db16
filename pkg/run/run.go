// Package run wraps external process invocation so callers can swap a
// recording fake for the real thing in tests.
package run

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
)

type Runner interface {
	// Run invokes name with args inside dir and returns an error when
	// the child cannot be started or exits non-zero.
	Run(name string, args []string, dir string) error
}

// ExecRunner runs real processes with the child's stdout and stderr
// wired to the parent's.
type ExecRunner struct{}

func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) Run(name string, args []string, dir string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s failed (exit status %d): %w", name, getExitCode(err), err)
	}

	return nil
}

func getExitCode(err error) int {
	if exitErr, ok := err.(*exec.ExitError); ok {
		if status, ok := exitErr.Sys().(syscall.WaitStatus); ok {
			return status.ExitStatus()
		}
	}
	return -1
}
