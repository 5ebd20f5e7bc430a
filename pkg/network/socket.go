// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"runtime"
	"sync"

	"github.com/robgonnella/framespector/internal/logger"
)

// Socket owns a single AF_PACKET raw socket descriptor. The descriptor must
// only be closed through Close.
type Socket struct {
	fd    int
	sys   Syscaller
	once  sync.Once
	debug logger.DebugLogger
}

// NewSocket opens a link-layer raw socket bound to no interface and
// accepting no particular protocol
func NewSocket(options ...SocketOption) (*Socket, error) {
	s := &Socket{
		fd:    -1,
		sys:   &unixSyscaller{},
		debug: logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(s)
	}

	// On Linux: man packet
	fd, err := s.sys.Socket(packetDomain, rawType, 0)

	if err != nil {
		s.debug.Error().Err(err).Msg("socket syscall failed")
		return nil, &SocketError{Err: err}
	}

	s.fd = fd

	// release descriptors dropped without Close
	runtime.SetFinalizer(s, func(s *Socket) {
		s.Close()
	})

	s.debug.Debug().Int("fd", fd).Msg("opened raw socket")

	return s, nil
}

// FD returns the owned descriptor or -1 once closed
func (s *Socket) FD() int {
	return s.fd
}

// Close releases the descriptor. Only the first call reaches the OS and
// close errors are ignored.
func (s *Socket) Close() {
	s.once.Do(func() {
		runtime.SetFinalizer(s, nil)

		if err := s.sys.Close(s.fd); err != nil {
			s.debug.Warn().Err(err).Int("fd", s.fd).Msg("failed to close raw socket")
		}

		s.fd = -1
	})
}

// WithSocket opens a socket, hands it to fn and closes it on every exit path
func WithSocket(fn func(s *Socket) error, options ...SocketOption) error {
	s, err := NewSocket(options...)

	if err != nil {
		return err
	}

	defer s.Close()

	return fn(s)
}

// DefaultSocketFactory implements SocketFactory using NewSocket
type DefaultSocketFactory struct {
	options []SocketOption
}

// NewSocketFactory returns a new instance of DefaultSocketFactory. The
// options are applied to every opened socket.
func NewSocketFactory(options ...SocketOption) *DefaultSocketFactory {
	return &DefaultSocketFactory{options: options}
}

// Open implements SocketFactory
func (f *DefaultSocketFactory) Open() (RawSocket, error) {
	s, err := NewSocket(f.options...)

	if err != nil {
		return nil, err
	}

	return s, nil
}
