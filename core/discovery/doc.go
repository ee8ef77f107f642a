// Package discovery advertises the controller on the local network via mDNS.
//
// The controller usually runs headless on DHCP, so clients cannot rely on a
// fixed address. Advertising a DNS-SD service lets them find it with any mDNS
// browser (or the zeroconf stack of their platform).
//
// # Usage
//
//	adv := discovery.NewAdvertiser(cfg.Discovery)
//	err := adv.Start(8080, []string{"range=0-180"})
//	defer adv.Stop()
package discovery
