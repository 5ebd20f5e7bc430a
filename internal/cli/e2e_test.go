// SPDX-License-Identifier: GPL-3.0-or-later

package cli_test

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/robgonnella/framespector/internal/cli"
	"github.com/robgonnella/framespector/internal/core"
	"github.com/robgonnella/framespector/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestEndToEnd(t *testing.T) {
	t.Run("fails with command name when ip is missing", func(st *testing.T) {
		st.Setenv("PATH", st.TempDir())

		provisioner := network.NewVethProvisioner()

		cmd := cli.Root(
			core.New(),
			provisioner,
			network.NewSocketFactory(),
			network.NewNetlinkInspector(),
		)

		cmd.SetArgs([]string{})

		err := cmd.Execute()

		var cmdErr *network.CommandError

		assert.True(st, errors.As(err, &cmdErr))
		assert.True(st, cmdErr.NotSpawned())
		assert.Contains(st, err.Error(), "'ip'")
	})

	t.Run("creates pair and opens socket with privilege", func(st *testing.T) {
		if os.Getenv("FRAMESPECTOR_PRIVILEGED_TESTS") == "" || os.Geteuid() != 0 {
			st.Skip("set FRAMESPECTOR_PRIVILEGED_TESTS and run as root")
		}

		if _, err := exec.LookPath(network.IPCommand); err != nil {
			st.Skip("requires ip")
		}

		provisioner := network.NewVethProvisioner()

		cmd := cli.Root(
			core.New(),
			provisioner,
			network.NewSocketFactory(),
			network.NewNetlinkInspector(),
		)

		cmd.SetArgs([]string{})

		err := cmd.Execute()

		defer provisioner.DeleteVeth()

		assert.NoError(st, err)

		cmd.SetArgs([]string{"status"})

		assert.NoError(st, cmd.Execute())
	})
}
