// SPDX-License-Identifier: GPL-3.0-or-later

package core_test

import (
	"bytes"
	"errors"
	"syscall"
	"testing"

	"github.com/robgonnella/framespector/internal/core"
	"github.com/robgonnella/framespector/internal/logger"
	mock_network "github.com/robgonnella/framespector/mock/network"
	"github.com/robgonnella/framespector/pkg/network"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestCore(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns error if not initialized", func(st *testing.T) {
		runner := core.New()

		err := runner.Run()

		assert.ErrorIs(st, err, core.ErrNotInitialized)
	})

	t.Run("creates veth then opens and releases socket", func(st *testing.T) {
		defer logger.Reset()

		buf := &bytes.Buffer{}
		logger.SetOutput(buf)

		provisioner := mock_network.NewMockLinkProvisioner(ctrl)
		sockets := mock_network.NewMockSocketFactory(ctrl)
		sock := mock_network.NewMockRawSocket(ctrl)

		gomock.InOrder(
			provisioner.EXPECT().CreateVeth().Return(nil),
			sockets.EXPECT().Open().Return(sock, nil),
			sock.EXPECT().FD().Return(5),
			sock.EXPECT().Close(),
		)

		runner := core.New()
		runner.Initialize(provisioner, sockets)

		err := runner.Run()

		assert.NoError(st, err)
		assert.Contains(st, buf.String(), "raw socket created")
	})

	t.Run("does not open socket when veth creation fails", func(st *testing.T) {
		provisioner := mock_network.NewMockLinkProvisioner(ctrl)
		sockets := mock_network.NewMockSocketFactory(ctrl)

		cmdErr := &network.CommandError{
			Cmd:      network.IPCommand,
			ExitCode: -1,
			Err:      errors.New("executable file not found in $PATH"),
		}

		provisioner.EXPECT().CreateVeth().Return(cmdErr)

		runner := core.New()
		runner.Initialize(provisioner, sockets)

		err := runner.Run()

		assert.ErrorIs(st, err, network.ErrCommandFailed)
		assert.Contains(st, err.Error(), network.IPCommand)
	})

	t.Run("leaves veth in place when socket creation fails", func(st *testing.T) {
		provisioner := mock_network.NewMockLinkProvisioner(ctrl)
		sockets := mock_network.NewMockSocketFactory(ctrl)

		provisioner.EXPECT().CreateVeth().Return(nil)
		provisioner.EXPECT().DeleteVeth().Times(0)
		sockets.EXPECT().Open().Return(nil, &network.SocketError{Err: syscall.EPERM})

		runner := core.New()
		runner.Initialize(provisioner, sockets)

		err := runner.Run()

		assert.ErrorIs(st, err, network.ErrSocketCreationFailed)
		assert.ErrorIs(st, err, syscall.EPERM)
	})
}
