// SPDX-License-Identifier: GPL-3.0-or-later

package main

import (
	"github.com/robgonnella/framespector/internal/cli"
	"github.com/robgonnella/framespector/internal/core"
	"github.com/robgonnella/framespector/internal/logger"
	"github.com/robgonnella/framespector/pkg/network"
)

func main() {
	log := logger.New()

	runner := core.New()

	cmd := cli.Root(
		runner,
		network.NewVethProvisioner(),
		network.NewSocketFactory(),
		network.NewNetlinkInspector(),
	)

	// every failure exits 1 with a single diagnostic line on stderr
	if err := cmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("framespector failed")
	}
}
