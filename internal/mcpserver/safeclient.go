package mcpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"
)

const (
	fetchDialTimeout  = 10 * time.Second
	fetchTotalTimeout = 30 * time.Second
	fetchMaxRedirects = 10
)

// isBlockedIP reports whether an IP falls in a range a document fetch
// must never reach: private, loopback, link-local, or unspecified.
func isBlockedIP(ip net.IP) bool {
	return ip.IsPrivate() || ip.IsLoopback() || ip.IsLinkLocalUnicast() || ip.IsUnspecified()
}

// screenHost resolves host and rejects it if any resolved address is
// blocked. It returns the resolved addresses so the dialer connects to
// exactly what was screened, not a fresh resolution.
func screenHost(ctx context.Context, host string) ([]net.IPAddr, error) {
	ips, err := net.DefaultResolver.LookupIPAddr(ctx, host)
	if err != nil {
		return nil, err
	}
	if len(ips) == 0 {
		return nil, fmt.Errorf("no IP addresses found for host: %s", host)
	}
	for _, addr := range ips {
		if isBlockedIP(addr.IP) {
			return nil, fmt.Errorf("blocked request to private/loopback IP: %s (%s)", host, addr.IP)
		}
	}
	return ips, nil
}

// newSafeHTTPClient builds the HTTP client used to fetch documents named
// by url inputs. Tool callers hand the server arbitrary URLs, so every
// hop is screened against internal address ranges at dial time and again
// on each redirect. Setting NULLSCAN_ALLOW_PRIVATE_IPS skips this client
// entirely and the parser fetches with its stock client.
func newSafeHTTPClient() *http.Client {
	dialer := &net.Dialer{Timeout: fetchDialTimeout}

	return &http.Client{
		Timeout: fetchTotalTimeout,
		Transport: &http.Transport{
			DialContext: func(ctx context.Context, network, addr string) (net.Conn, error) {
				host, port, err := net.SplitHostPort(addr)
				if err != nil {
					return nil, err
				}
				ips, err := screenHost(ctx, host)
				if err != nil {
					return nil, err
				}
				// Dial the screened address, not the hostname.
				return dialer.DialContext(ctx, network, net.JoinHostPort(ips[0].IP.String(), port))
			},
		},
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= fetchMaxRedirects {
				return fmt.Errorf("stopped after %d redirects", fetchMaxRedirects)
			}
			_, err := screenHost(req.Context(), req.URL.Hostname())
			return err
		},
	}
}
