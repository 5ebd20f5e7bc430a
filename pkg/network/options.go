// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"github.com/vishvananda/netlink"
)

// ProvisionerOption configures a VethProvisioner
type ProvisionerOption = func(p *VethProvisioner)

// SocketOption configures a Socket before it is opened
type SocketOption = func(s *Socket)

// InspectorOption configures a NetlinkInspector
type InspectorOption = func(i *NetlinkInspector)

// WithCommandRunner replaces the os/exec based runner
func WithCommandRunner(runner CommandRunner) ProvisionerOption {
	return func(p *VethProvisioner) {
		p.runner = runner
	}
}

// WithSyscaller replaces the x/sys/unix based syscaller
func WithSyscaller(sys Syscaller) SocketOption {
	return func(s *Socket) {
		s.sys = sys
	}
}

// WithLinkLookup replaces netlink.LinkByName
func WithLinkLookup(lookup func(name string) (netlink.Link, error)) InspectorOption {
	return func(i *NetlinkInspector) {
		i.lookup = lookup
	}
}
