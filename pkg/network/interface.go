// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"net"
)

//go:generate mockgen -destination=../../mock/network/network.go -package=mock_network . CommandRunner,Syscaller,LinkProvisioner,SocketFactory,RawSocket,LinkInspector

// CommandRunner runs an external process to completion
type CommandRunner interface {
	// Run returns an error only when the process could not be started. A
	// process that starts and exits non-zero is reported through the outcome.
	Run(name string, args ...string) (*CommandOutcome, error)
}

// Syscaller is the OS boundary used by Socket
type Syscaller interface {
	Socket(domain, typ, proto int) (int, error)
	Close(fd int) error
}

// LinkProvisioner creates and removes the virtual ethernet pair
type LinkProvisioner interface {
	CreateVeth() error
	DeleteVeth() error
}

// RawSocket is an open link-layer socket handle
type RawSocket interface {
	FD() int
	Close()
}

// SocketFactory opens raw link-layer sockets
type SocketFactory interface {
	Open() (RawSocket, error)
}

// LinkInspector reports the kernel's view of network links
type LinkInspector interface {
	Inspect(names ...string) ([]*LinkInfo, error)
}

// CommandOutcome result of running an external process
type CommandOutcome struct {
	ExitCode int
	Stderr   []byte
}

// Success returns true if the process exited with status zero
func (o *CommandOutcome) Success() bool {
	return o.ExitCode == 0
}

// LinkInfo represents the state of a single network link
type LinkInfo struct {
	Name    string
	Present bool
	Index   int
	Type    string
	MAC     net.HardwareAddr
	MTU     int
	State   string
}
