// SPDX-License-Identifier: GPL-3.0-or-later

//go:build linux

package network

import (
	"golang.org/x/sys/unix"
)

const (
	packetDomain = unix.AF_PACKET
	rawType      = unix.SOCK_RAW
)

type unixSyscaller struct{}

func (sc *unixSyscaller) Socket(domain, typ, proto int) (int, error) {
	return unix.Socket(domain, typ, proto)
}

func (sc *unixSyscaller) Close(fd int) error {
	return unix.Close(fd)
}
