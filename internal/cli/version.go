// SPDX-License-Identifier: GPL-3.0-or-later

package cli

import (
	"github.com/spf13/cobra"

	"github.com/robgonnella/framespector/internal/info"
	"github.com/robgonnella/framespector/internal/logger"
)

func newVersion() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Prints version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			logger.New().Info().Msgf("framespector: %s", info.VERSION)
		},
	}
}
