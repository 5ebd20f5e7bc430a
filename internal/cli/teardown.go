// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/framespector/internal/logger"
	"github.com/robgonnella/framespector/pkg/network"
)

func newTeardown(provisioner network.LinkProvisioner) *cobra.Command {
	return &cobra.Command{
		Use:   "teardown",
		Short: "Deletes the veth pair",
		Long: `Deletes veth0 and with it veth0-peer. The root command never
removes the pair on its own, run this once you are done with it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := provisioner.DeleteVeth(); err != nil {
				return err
			}

			logger.New().Info().Str("veth", network.VethName).Msg("veth pair deleted")

			return nil
		},
	}
}
