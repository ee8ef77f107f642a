package discovery

import (
	"fmt"
	"net"
	"sync"

	"github.com/enbility/zeroconf/v3"
)

// Advertiser publishes one DNS-SD service record for the controller.
type Advertiser struct {
	cfg Config

	mu     sync.Mutex
	server *zeroconf.Server
}

// NewAdvertiser creates an Advertiser. Nothing is published until Start.
func NewAdvertiser(cfg Config) *Advertiser {
	return &Advertiser{cfg: cfg}
}

// getInterfaces returns the network interfaces to advertise on.
// Returns nil to use all multicast-capable interfaces.
func (a *Advertiser) getInterfaces() []net.Interface {
	if a.cfg.Interface == "" {
		return nil
	}

	iface, err := net.InterfaceByName(a.cfg.Interface)
	if err != nil {
		return nil
	}
	return []net.Interface{*iface}
}

// Start begins advertising the controller on the given port. Calling Start
// again replaces the previous advertisement.
func (a *Advertiser) Start(port int, txt []string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}

	server, err := zeroconf.Register(
		a.cfg.Instance,
		a.cfg.Service,
		a.cfg.Domain,
		port,
		txt,
		a.getInterfaces(),
	)
	if err != nil {
		return fmt.Errorf("failed to register mdns service: %w", err)
	}

	a.server = server
	return nil
}

// Stop withdraws the advertisement. Safe to call when not advertising.
func (a *Advertiser) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.server != nil {
		a.server.Shutdown()
		a.server = nil
	}
}
