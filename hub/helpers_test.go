package hub

import (
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

// newTestConfig builds a Config pointed at a httptest server. The request
// delay defaults to zero to keep tests fast; pass WithRequestDelay to
// override.
func newTestConfig(t *testing.T, srv *httptest.Server, opts ...Option) *Config {
	t.Helper()

	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)

	opts = append([]Option{WithRequestDelay(0)}, opts...)
	cfg, err := NewConfig(u.Hostname(), port, opts...)
	require.NoError(t, err)

	return cfg
}

func newTestClient(t *testing.T, srv *httptest.Server, opts ...Option) *Client {
	t.Helper()

	c, err := NewClient(newTestConfig(t, srv, opts...))
	require.NoError(t, err)

	return c
}

// bufferResponse wraps a hex payload in the hub's buffer status envelope,
// appending the two trailer characters the client strips.
func bufferResponse(payload string) string {
	return "<response><BS>" + payload + "00" + "</BS></response>"
}
