// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrCommandFailed matches any *CommandError via errors.Is
	ErrCommandFailed = errors.New("command failed")
	// ErrSocketCreationFailed matches any *SocketError via errors.Is
	ErrSocketCreationFailed = errors.New("failed to create socket")
)

// CommandError returned when an external command could not be started or
// exited with a non-zero status
type CommandError struct {
	Cmd      string
	Msg      string
	ExitCode int
	Err      error // set only when the command could not be started
}

func newSpawnError(cmd string, err error) *CommandError {
	return &CommandError{
		Cmd:      cmd,
		ExitCode: -1,
		Err:      err,
	}
}

func newExitError(cmd string, outcome *CommandOutcome) *CommandError {
	return &CommandError{
		Cmd:      cmd,
		Msg:      strings.TrimSpace(strings.ToValidUTF8(string(outcome.Stderr), "\uFFFD")),
		ExitCode: outcome.ExitCode,
	}
}

func (e *CommandError) Error() string {
	if e.Msg != "" {
		return fmt.Sprintf("command '%s' failed: %s", e.Cmd, e.Msg)
	}

	return fmt.Sprintf("command '%s' failed", e.Cmd)
}

// NotSpawned returns true if the command never started
func (e *CommandError) NotSpawned() bool {
	return e.Err != nil
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

func (e *CommandError) Is(target error) bool {
	return target == ErrCommandFailed
}

// SocketError returned when the OS rejects a socket request
type SocketError struct {
	Err error
}

func (e *SocketError) Error() string {
	return fmt.Sprintf("failed to create socket: %s", e.Err)
}

func (e *SocketError) Unwrap() error {
	return e.Err
}

func (e *SocketError) Is(target error) bool {
	return target == ErrSocketCreationFailed
}
