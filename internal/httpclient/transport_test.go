package httpclient

import (
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"testing"
	"time"

	"labelsmobile/version"
)

func newClient() *http.Client {
	return &http.Client{Transport: &ClientInfoTransport{}, Timeout: 5 * time.Second}
}

func TestClientInfoTransport_SetsHeader(t *testing.T) {
	var receivedHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeaders = r.Header
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	resp, err := newClient().Get(server.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	got := receivedHeaders.Get("X-Client-Info")
	if !strings.HasPrefix(got, "labelsmobile/"+version.Version) {
		t.Errorf("X-Client-Info = %q, want prefix %q", got, "labelsmobile/"+version.Version)
	}
	if !strings.Contains(got, runtime.GOOS+"/"+runtime.GOARCH) {
		t.Errorf("X-Client-Info = %q, want platform %s/%s", got, runtime.GOOS, runtime.GOARCH)
	}
}

func TestClientInfoTransport_PreservesExistingHeaders(t *testing.T) {
	var receivedHeaders http.Header
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		receivedHeaders = r.Header
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}
	req.Header.Set("apikey", "anon")

	resp, err := newClient().Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if got := receivedHeaders.Get("apikey"); got != "anon" {
		t.Errorf("apikey = %q, want %q", got, "anon")
	}
	if got := receivedHeaders.Get("X-Client-Info"); got != ClientInfo() {
		t.Errorf("X-Client-Info = %q, want %q", got, ClientInfo())
	}
}

func TestClientInfoTransport_DoesNotMutateOriginalRequest(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	req, err := http.NewRequest(http.MethodGet, server.URL, nil)
	if err != nil {
		t.Fatalf("failed to create request: %v", err)
	}

	originalHeaderCount := len(req.Header)

	resp, err := newClient().Do(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	resp.Body.Close()

	if len(req.Header) != originalHeaderCount {
		t.Errorf("original request was mutated: header count changed from %d to %d", originalHeaderCount, len(req.Header))
	}
}
