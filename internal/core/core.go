// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"errors"

	"github.com/robgonnella/framespector/internal/logger"
	"github.com/robgonnella/framespector/pkg/network"
)

// ErrNotInitialized returned when Run is called before Initialize
var ErrNotInitialized = errors.New("runner not initialized")

// Core implements the Runner interface
type Core struct {
	provisioner network.LinkProvisioner
	sockets     network.SocketFactory
	log         logger.Logger
}

// New returns a new instance of Core
func New() *Core {
	return &Core{
		log: logger.Component("core"),
	}
}

// Initialize sets the link provisioner and socket factory used by Run
func (c *Core) Initialize(
	provisioner network.LinkProvisioner,
	sockets network.SocketFactory,
) {
	c.provisioner = provisioner
	c.sockets = sockets
}

// Run creates the veth pair and, only if that succeeds, opens a raw socket.
// A pair created before a socket failure is left in place.
func (c *Core) Run() error {
	if c.provisioner == nil || c.sockets == nil {
		return ErrNotInitialized
	}

	c.log.Info().
		Str("veth", network.VethName).
		Str("peer", network.VethPeerName).
		Msg("creating veth pair")

	if err := c.provisioner.CreateVeth(); err != nil {
		return err
	}

	sock, err := c.sockets.Open()

	if err != nil {
		return err
	}

	defer sock.Close()

	c.log.Info().Int("fd", sock.FD()).Msg("raw socket created")

	return nil
}
