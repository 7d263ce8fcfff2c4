package hub

import (
	"fmt"
	"net/http"
	"time"

	"github.com/corvidhq/go-insteon/logger"
)

// Default configuration values.
const (
	// DefaultPort is the HTTP port of the hub's local interface.
	DefaultPort = 25105

	// DefaultStatusTTL is the minimum quiet interval after which an identical
	// message is re-delivered to subscribers.
	DefaultStatusTTL = 60 * time.Second

	// DefaultRequestDelay is the minimum delay between consecutive hub
	// requests. The hub cannot keep up with back-to-back requests.
	DefaultRequestDelay = 1 * time.Second

	// DefaultHTTPTimeout is the per-request HTTP timeout.
	DefaultHTTPTimeout = 10 * time.Second
)

// Config holds all configuration for a hub [Client].
type Config struct {
	host string
	port int

	// Basic-auth credentials for the hub's local interface.
	username string
	password string

	// statusTTL is the dedup window for the subscribe loop.
	statusTTL time.Duration

	// requestDelay is the minimum spacing between hub requests, enforced per
	// acquisition of the transport gate.
	requestDelay time.Duration

	// pollInterval is an extra pause between subscribe-loop cycles. Zero
	// means the loop is paced only by requestDelay.
	pollInterval time.Duration

	httpTimeout time.Duration
	httpClient  *http.Client

	logger logger.Logger
}

// NewConfig creates a new hub client configuration.
//
// host is the hub's LAN address. port is its HTTP port (usually
// [DefaultPort]). opts are functional options applied in order; see the
// With* functions.
func NewConfig(host string, port int, opts ...Option) (*Config, error) {
	cfg := &Config{
		statusTTL:    DefaultStatusTTL,
		requestDelay: DefaultRequestDelay,
		httpTimeout:  DefaultHTTPTimeout,
		logger:       logger.GetLogger(),
	}

	if host == "" {
		return nil, fmt.Errorf("hub: host must not be empty")
	}
	cfg.host = host

	if port < 1 || port > 65535 {
		return nil, fmt.Errorf("hub: port %d out of range [1, 65535]", port)
	}
	cfg.port = port

	for _, opt := range opts {
		if err := opt.apply(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// --- Getters ---

// Host returns the configured hub address.
func (cfg *Config) Host() string { return cfg.host }

// Port returns the configured HTTP port.
func (cfg *Config) Port() int { return cfg.port }

// BaseURL returns "http://host:port".
func (cfg *Config) BaseURL() string { return fmt.Sprintf("http://%s:%d", cfg.host, cfg.port) }

// Username returns the configured basic-auth username.
func (cfg *Config) Username() string { return cfg.username }

// StatusTTL returns the subscribe-loop dedup window.
func (cfg *Config) StatusTTL() time.Duration { return cfg.statusTTL }

// RequestDelay returns the minimum spacing between hub requests.
func (cfg *Config) RequestDelay() time.Duration { return cfg.requestDelay }

// PollInterval returns the extra pause between subscribe-loop cycles.
func (cfg *Config) PollInterval() time.Duration { return cfg.pollInterval }

// GetLogger returns the configured logger.
func (cfg *Config) GetLogger() logger.Logger { return cfg.logger }

// --- Option ---

// Option is a functional option for configuring a Config.
type Option interface {
	apply(*Config) error
}

type optFunc func(*Config) error

func (f optFunc) apply(cfg *Config) error { return f(cfg) }

// WithCredentials sets the basic-auth credentials for the hub's local
// interface.
func WithCredentials(username, password string) Option {
	return optFunc(func(cfg *Config) error {
		cfg.username = username
		cfg.password = password
		return nil
	})
}

// WithStatusTTL sets the dedup window: the quiet interval after which an
// identical message is delivered to subscribers again.
func WithStatusTTL(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d <= 0 {
			return fmt.Errorf("hub: status TTL %v must be positive", d)
		}
		cfg.statusTTL = d
		return nil
	})
}

// WithRequestDelay sets the minimum spacing between consecutive hub requests.
func WithRequestDelay(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d < 0 {
			return fmt.Errorf("hub: request delay %v must not be negative", d)
		}
		cfg.requestDelay = d
		return nil
	})
}

// WithPollInterval sets an extra pause between subscribe-loop cycles, on top
// of the request delay.
func WithPollInterval(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d < 0 {
			return fmt.Errorf("hub: poll interval %v must not be negative", d)
		}
		cfg.pollInterval = d
		return nil
	})
}

// WithHTTPTimeout sets the per-request HTTP timeout. Ignored when a custom
// HTTP client is supplied.
func WithHTTPTimeout(d time.Duration) Option {
	return optFunc(func(cfg *Config) error {
		if d <= 0 {
			return fmt.Errorf("hub: HTTP timeout %v must be positive", d)
		}
		cfg.httpTimeout = d
		return nil
	})
}

// WithHTTPClient supplies a custom HTTP client for hub requests.
func WithHTTPClient(c *http.Client) Option {
	return optFunc(func(cfg *Config) error {
		if c == nil {
			return fmt.Errorf("hub: HTTP client must not be nil")
		}
		cfg.httpClient = c
		return nil
	})
}

// WithLogger sets the logger for the client.
func WithLogger(l logger.Logger) Option {
	return optFunc(func(cfg *Config) error {
		if l == nil {
			return fmt.Errorf("hub: logger must not be nil")
		}
		cfg.logger = l
		return nil
	})
}
