// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"bytes"
	"errors"
	"os/exec"
)

// ExecCommandRunner implements CommandRunner using os/exec
type ExecCommandRunner struct{}

// NewExecCommandRunner returns a new instance of ExecCommandRunner
func NewExecCommandRunner() *ExecCommandRunner {
	return &ExecCommandRunner{}
}

// Run starts the named process, waits for it and captures stderr
func (r *ExecCommandRunner) Run(name string, args ...string) (*CommandOutcome, error) {
	stderr := bytes.Buffer{}

	cmd := exec.Command(name, args...)
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError

	if err != nil && !errors.As(err, &exitErr) {
		return nil, err
	}

	return &CommandOutcome{
		ExitCode: cmd.ProcessState.ExitCode(),
		Stderr:   stderr.Bytes(),
	}, nil
}
