// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/framespector/internal/core"
	"github.com/robgonnella/framespector/pkg/network"
)

// Root builds the framespector command tree. The root command takes no
// flags or arguments: it creates the veth pair then opens a raw socket.
func Root(
	runner core.Runner,
	provisioner network.LinkProvisioner,
	sockets network.SocketFactory,
	inspector network.LinkInspector,
) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "framespector",
		Short: "Create a veth pair and open a raw packet socket",
		Long: `Creates the virtual ethernet pair veth0 <-> veth0-peer using ip(8)
and opens a link-layer raw socket. Requires CAP_NET_ADMIN and CAP_NET_RAW.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			runner.Initialize(provisioner, sockets)
			return runner.Run()
		},
	}

	cmd.AddCommand(newVersion())
	cmd.AddCommand(newTeardown(provisioner))
	cmd.AddCommand(newStatus(inspector))

	return cmd
}
