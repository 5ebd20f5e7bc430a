// SPDX-License-Identifier: GPL-3.0-or-later

//go:build !linux

package network

import (
	"errors"
)

// AF_PACKET only exists on linux
const (
	packetDomain = 17
	rawType      = 3
)

type unixSyscaller struct{}

func (sc *unixSyscaller) Socket(domain, typ, proto int) (int, error) {
	return -1, errors.ErrUnsupported
}

func (sc *unixSyscaller) Close(fd int) error {
	return errors.ErrUnsupported
}
