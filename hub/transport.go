package hub

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/corvidhq/go-insteon/logger"
)

// transport serializes all HTTP access to the hub.
//
// The hub hardware cannot multiplex connections: only one outstanding request
// may exist at a time, and consecutive requests must be spaced by a minimum
// delay or the hub starts dropping them. The gate enforces both, whatever the
// caller concurrency; the delay is enforced per acquisition of the gate,
// measured from its last release.
type transport struct {
	mu          sync.Mutex
	lastRelease time.Time

	client   *http.Client
	baseURL  string
	username string
	password string
	delay    time.Duration
	logger   logger.Logger
}

func newTransport(cfg *Config) *transport {
	client := cfg.httpClient
	if client == nil {
		client = &http.Client{Timeout: cfg.httpTimeout}
	}

	return &transport{
		client:   client,
		baseURL:  cfg.BaseURL(),
		username: cfg.username,
		password: cfg.password,
		delay:    cfg.requestDelay,
		logger:   cfg.logger,
	}
}

// get issues a serialized basic-auth GET against the hub and returns the
// response body. Any non-2xx status is a transport error; there is no retry
// at this layer.
func (t *transport) get(ctx context.Context, path string) ([]byte, error) {
	t.mu.Lock()
	defer func() {
		t.lastRelease = time.Now()
		t.mu.Unlock()
	}()

	if !t.lastRelease.IsZero() {
		if wait := t.delay - time.Since(t.lastRelease); wait > 0 {
			timer := time.NewTimer(wait)
			defer timer.Stop()
			select {
			case <-timer.C:
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("hub: build request for %s: %w", path, err)
	}
	req.SetBasicAuth(t.username, t.password)

	t.logger.Debug("hub request", "path", path)

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("hub: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: GET %s returned status %d", ErrRequestFailed, path, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("hub: read response for %s: %w", path, err)
	}

	return body, nil
}
