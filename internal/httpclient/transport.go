// Package httpclient provides HTTP transports that identify this tool to remote APIs.
package httpclient

import (
	"fmt"
	"net/http"
	"runtime"

	"labelsmobile/version"
)

// ClientInfo is the value sent in the X-Client-Info header.
func ClientInfo() string {
	return fmt.Sprintf("labelsmobile/%s (%s/%s)", version.Version, runtime.GOOS, runtime.GOARCH)
}

// ClientInfoTransport wraps an http.RoundTripper and injects the X-Client-Info header.
type ClientInfoTransport struct {
	Base http.RoundTripper
}

// RoundTrip implements http.RoundTripper.
func (t *ClientInfoTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone request to avoid mutating the original
	clone := req.Clone(req.Context())
	clone.Header.Set("X-Client-Info", ClientInfo())

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
