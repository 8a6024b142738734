// Package netinfo finds the address phones on the same network can reach
package netinfo

import (
	"context"
	"net"
	"slices"
	"strings"

	psnet "github.com/shirou/gopsutil/v4/net"
)

const (
	fallbackIP = "127.0.0.1"
	probeAddr  = "8.8.8.8:80"
)

// InterfaceLister abstracts interface enumeration for testing.
type InterfaceLister interface {
	Interfaces(ctx context.Context) (psnet.InterfaceStatList, error)
}

type gopsutilLister struct{}

func (gopsutilLister) Interfaces(ctx context.Context) (psnet.InterfaceStatList, error) {
	return psnet.InterfacesWithContext(ctx)
}

// Resolver picks the machine's LAN address.
type Resolver struct {
	dial   func(network, address string) (net.Conn, error)
	lister InterfaceLister
}

func NewResolver() *Resolver {
	return &Resolver{dial: net.Dial, lister: gopsutilLister{}}
}

// LocalIP returns the address of the interface that routes to the internet.
// No packet is sent: dialing UDP only selects a route. When that fails it
// falls back to the first non-loopback IPv4 interface, then to 127.0.0.1.
func (r *Resolver) LocalIP(ctx context.Context) string {
	if conn, err := r.dial("udp", probeAddr); err == nil {
		defer conn.Close()
		if addr, ok := conn.LocalAddr().(*net.UDPAddr); ok && !addr.IP.IsUnspecified() {
			return addr.IP.String()
		}
	}

	return r.firstInterfaceIP(ctx)
}

func (r *Resolver) firstInterfaceIP(ctx context.Context) string {
	ifaces, err := r.lister.Interfaces(ctx)
	if err != nil {
		return fallbackIP
	}

	for _, iface := range ifaces {
		if !slices.Contains(iface.Flags, "up") || slices.Contains(iface.Flags, "loopback") {
			continue
		}
		for _, addr := range iface.Addrs {
			ip := parseAddr(addr.Addr)
			if ip != nil && !ip.IsLoopback() && ip.To4() != nil {
				return ip.String()
			}
		}
	}
	return fallbackIP
}

// parseAddr accepts both CIDR ("192.168.1.5/24") and bare addresses.
func parseAddr(s string) net.IP {
	if strings.Contains(s, "/") {
		ip, _, err := net.ParseCIDR(s)
		if err != nil {
			return nil
		}
		return ip
	}
	return net.ParseIP(s)
}

// LocalIP resolves the LAN address with the default resolver.
func LocalIP(ctx context.Context) string {
	return NewResolver().LocalIP(ctx)
}
