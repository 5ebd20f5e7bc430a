// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"github.com/robgonnella/framespector/internal/logger"
)

const (
	// IPCommand external network configuration utility
	IPCommand = "ip"
	// VethName name of the first interface in the pair
	VethName = "veth0"
	// VethPeerName name of the peer interface
	VethPeerName = VethName + "-peer"
)

// VethProvisioner implements LinkProvisioner by shelling out to ip(8)
type VethProvisioner struct {
	runner CommandRunner
	debug  logger.DebugLogger
}

// NewVethProvisioner returns a new instance of VethProvisioner
func NewVethProvisioner(options ...ProvisionerOption) *VethProvisioner {
	p := &VethProvisioner{
		runner: NewExecCommandRunner(),
		debug:  logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(p)
	}

	return p
}

// CreateVeth creates the veth0 <-> veth0-peer pair. It is not idempotent,
// a second call fails once the pair exists.
func (p *VethProvisioner) CreateVeth() error {
	// On Linux: man veth
	return p.run(
		IPCommand,
		"link", "add", VethName,
		"type", "veth",
		"peer", "name", VethPeerName,
	)
}

// DeleteVeth removes the pair. Deleting one end removes both.
func (p *VethProvisioner) DeleteVeth() error {
	return p.run(IPCommand, "link", "del", VethName)
}

func (p *VethProvisioner) run(cmd string, args ...string) error {
	p.debug.Debug().Str("cmd", cmd).Strs("args", args).Msg("running command")

	outcome, err := p.runner.Run(cmd, args...)

	if err != nil {
		p.debug.Error().Err(err).Str("cmd", cmd).Msg("failed to start command")
		return newSpawnError(cmd, err)
	}

	if !outcome.Success() {
		p.debug.Error().
			Str("cmd", cmd).
			Int("exitCode", outcome.ExitCode).
			Bytes("stderr", outcome.Stderr).
			Msg("command exited with error")
		return newExitError(cmd, outcome)
	}

	return nil
}
