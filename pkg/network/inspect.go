// SPDX-License-Identifier: GPL-3.0-or-later

package network

import (
	"errors"

	"github.com/vishvananda/netlink"

	"github.com/robgonnella/framespector/internal/logger"
)

// NetlinkInspector implements LinkInspector by querying the kernel over netlink
type NetlinkInspector struct {
	lookup func(name string) (netlink.Link, error)
	debug  logger.DebugLogger
}

// NewNetlinkInspector returns a new instance of NetlinkInspector
func NewNetlinkInspector(options ...InspectorOption) *NetlinkInspector {
	i := &NetlinkInspector{
		lookup: netlink.LinkByName,
		debug:  logger.NewDebugLogger(),
	}

	for _, o := range options {
		o(i)
	}

	return i
}

// Inspect returns one LinkInfo per name in the order given. A missing link
// is reported with Present set to false rather than as an error.
func (i *NetlinkInspector) Inspect(names ...string) ([]*LinkInfo, error) {
	infos := []*LinkInfo{}

	for _, name := range names {
		link, err := i.lookup(name)

		if err != nil {
			var notFound netlink.LinkNotFoundError

			if errors.As(err, &notFound) {
				i.debug.Debug().Str("link", name).Msg("link not found")
				infos = append(infos, &LinkInfo{Name: name, Present: false})
				continue
			}

			return nil, err
		}

		attrs := link.Attrs()

		infos = append(infos, &LinkInfo{
			Name:    attrs.Name,
			Present: true,
			Index:   attrs.Index,
			Type:    link.Type(),
			MAC:     attrs.HardwareAddr,
			MTU:     attrs.MTU,
			State:   attrs.OperState.String(),
		})
	}

	return infos, nil
}
