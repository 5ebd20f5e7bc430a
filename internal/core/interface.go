// SPDX-License-Identifier: GPL-3.0-or-later

package core

import (
	"github.com/robgonnella/framespector/pkg/network"
)

//go:generate mockgen -destination=../mock/core/core.go -package=mock_core . Runner

// Runner sequences link provisioning and socket creation
type Runner interface {
	Initialize(
		provisioner network.LinkProvisioner,
		sockets network.SocketFactory,
	)
	Run() error
}
