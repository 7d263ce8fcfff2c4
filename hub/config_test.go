package hub

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvidhq/go-insteon/logger"
)

func TestNewConfig_Defaults(t *testing.T) {
	cfg, err := NewConfig("192.168.1.2", DefaultPort)
	require.NoError(t, err)

	assert.Equal(t, "192.168.1.2", cfg.Host())
	assert.Equal(t, DefaultPort, cfg.Port())
	assert.Equal(t, "http://192.168.1.2:25105", cfg.BaseURL())
	assert.Equal(t, DefaultStatusTTL, cfg.StatusTTL())
	assert.Equal(t, DefaultRequestDelay, cfg.RequestDelay())
	assert.Equal(t, time.Duration(0), cfg.PollInterval())
	assert.NotNil(t, cfg.GetLogger())
}

func TestNewConfig_Options(t *testing.T) {
	log := logger.NewSlog(logger.ErrorLevel, false)
	httpClient := &http.Client{}

	cfg, err := NewConfig("10.0.0.5", 8080,
		WithCredentials("admin", "secret"),
		WithStatusTTL(30*time.Second),
		WithRequestDelay(500*time.Millisecond),
		WithPollInterval(2*time.Second),
		WithHTTPTimeout(5*time.Second),
		WithHTTPClient(httpClient),
		WithLogger(log),
	)
	require.NoError(t, err)

	assert.Equal(t, "admin", cfg.Username())
	assert.Equal(t, "secret", cfg.password)
	assert.Equal(t, 30*time.Second, cfg.StatusTTL())
	assert.Equal(t, 500*time.Millisecond, cfg.RequestDelay())
	assert.Equal(t, 2*time.Second, cfg.PollInterval())
	assert.Equal(t, 5*time.Second, cfg.httpTimeout)
	assert.Same(t, httpClient, cfg.httpClient)
	assert.Same(t, log, cfg.GetLogger())
}

func TestNewConfig_Invalid(t *testing.T) {
	_, err := NewConfig("", DefaultPort)
	assert.Error(t, err, "empty host")

	_, err = NewConfig("192.168.1.2", 0)
	assert.Error(t, err, "port zero")

	_, err = NewConfig("192.168.1.2", 70000)
	assert.Error(t, err, "port out of range")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithStatusTTL(0))
	assert.Error(t, err, "zero TTL")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithRequestDelay(-time.Second))
	assert.Error(t, err, "negative delay")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithPollInterval(-time.Second))
	assert.Error(t, err, "negative poll interval")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithHTTPTimeout(0))
	assert.Error(t, err, "zero HTTP timeout")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithHTTPClient(nil))
	assert.Error(t, err, "nil HTTP client")

	_, err = NewConfig("192.168.1.2", DefaultPort, WithLogger(nil))
	assert.Error(t, err, "nil logger")
}

func TestNewClient_NilConfig(t *testing.T) {
	_, err := NewClient(nil)
	assert.ErrorIs(t, err, ErrConfigNil)
}
