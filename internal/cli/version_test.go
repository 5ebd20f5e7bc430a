// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"bytes"
	"testing"

	"github.com/robgonnella/framespector/internal/cli"
	"github.com/robgonnella/framespector/internal/info"
	"github.com/robgonnella/framespector/internal/logger"
	mock_core "github.com/robgonnella/framespector/internal/mock/core"
	mock_network "github.com/robgonnella/framespector/mock/network"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestVersionCommand(t *testing.T) {
	ctrl := gomock.NewController(t)

	defer ctrl.Finish()

	buf := &bytes.Buffer{}

	logger.SetOutput(buf)

	defer logger.Reset()

	t.Run("prints versions to console", func(st *testing.T) {
		mockRunner := mock_core.NewMockRunner(ctrl)
		mockProvisioner := mock_network.NewMockLinkProvisioner(ctrl)
		mockSockets := mock_network.NewMockSocketFactory(ctrl)
		mockInspector := mock_network.NewMockLinkInspector(ctrl)

		cmd := cli.Root(mockRunner, mockProvisioner, mockSockets, mockInspector)

		cmd.SetArgs([]string{"version"})
		err := cmd.Execute()

		assert.NoError(st, err)

		output := buf.String()

		assert.Contains(st, output, info.VERSION)
	})
}
