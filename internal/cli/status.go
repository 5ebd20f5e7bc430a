// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"strconv"

	"github.com/jedib0t/go-pretty/table"
	"github.com/spf13/cobra"

	"github.com/robgonnella/framespector/pkg/network"
)

func newStatus(inspector network.LinkInspector) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Shows the state of the veth pair",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			infos, err := inspector.Inspect(network.VethName, network.VethPeerName)

			if err != nil {
				return err
			}

			statusTable := table.NewWriter()
			statusTable.SetOutputMirror(cmd.OutOrStdout())
			statusTable.AppendHeader(table.Row{"LINK", "PRESENT", "INDEX", "TYPE", "MAC", "MTU", "STATE"})

			for _, i := range infos {
				if !i.Present {
					statusTable.AppendRow(table.Row{i.Name, "no", "", "", "", "", ""})
					continue
				}

				statusTable.AppendRow(table.Row{
					i.Name,
					"yes",
					strconv.Itoa(i.Index),
					i.Type,
					i.MAC.String(),
					strconv.Itoa(i.MTU),
					i.State,
				})
			}

			statusTable.Render()

			return nil
		},
	}
}
