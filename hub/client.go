package hub

import (
	"context"
	"fmt"
	"strings"

	"github.com/patrickmn/go-cache"
	"github.com/puzpuzpuz/xsync/v3"

	"github.com/corvidhq/go-insteon/logger"
	"github.com/corvidhq/go-insteon/plm"
)

// Hub endpoint paths.
const (
	// bufferStatusPath reads back the hub's internal status buffer.
	bufferStatusPath = "/buffstatus.xml"

	// clearBufferPath zeroes the hub's internal status buffer.
	clearBufferPath = "/1?XB=M=1"

	// commandPathFmt submits an encoded pass-through command.
	commandPathFmt = "/3?%s=I=3"
)

// Buffer status envelope.
const (
	bufferOpenTag  = "<BS>"
	bufferCloseTag = "</BS>"

	// bufferTrailerLen is the number of trailing characters stripped from the
	// reported buffer before parsing. The trailing two characters are not
	// frame data; the trim is fixed at exactly two by the hub's interface.
	bufferTrailerLen = 2
)

// Client is a client for the Insteon hub's local HTTP interface.
//
// A Client is safe for concurrent use: all hub access is serialized through
// one transport gate, and the dedup store and device-state registry carry
// their own synchronization.
type Client struct {
	cfg    *Config
	tr     *transport
	logger logger.Logger

	// seen maps message fingerprints to their last observation. Entries
	// expire after the status TTL and are swept by the cache janitor, so the
	// store stays bounded by the set of recently active messages.
	seen *cache.Cache

	// states holds the most recent report per device, fed by subscribe loops.
	states *xsync.MapOf[plm.DeviceID, DeviceState]

	metrics Metrics
}

// NewClient creates a hub client from the given configuration.
func NewClient(cfg *Config) (*Client, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	return &Client{
		cfg:    cfg,
		tr:     newTransport(cfg),
		logger: cfg.logger,
		seen:   cache.New(cfg.statusTTL, 2*cfg.statusTTL),
		states: xsync.NewMapOf[plm.DeviceID, DeviceState](),
	}, nil
}

// Metrics returns the client's counters.
func (c *Client) Metrics() *Metrics {
	return &c.metrics
}

// SendCommand encodes and submits a raw pass-through command. cmd1 and cmd2
// are hex-character pairs; see the plm package Cmd* constants. The hub gives
// no semantic acknowledgement at this layer: a 2xx response is the only
// success signal, and the outcome shows up later in the status buffer.
func (c *Client) SendCommand(ctx context.Context, device plm.DeviceID, cmd1, cmd2 string) error {
	encoded := plm.EncodeCommand(device, cmd1, cmd2)

	if _, err := c.tr.get(ctx, fmt.Sprintf(commandPathFmt, encoded)); err != nil {
		return err
	}
	c.metrics.incCommandSendCount()
	c.logger.Debug("command sent", "device", device, "cmd1", cmd1, "cmd2", cmd2)

	return nil
}

// TurnOn turns a device on at full brightness.
func (c *Client) TurnOn(ctx context.Context, device plm.DeviceID) error {
	return c.TurnOnLevel(ctx, device, 100)
}

// TurnOnLevel turns a device on at the given brightness percentage (0–100).
func (c *Client) TurnOnLevel(ctx context.Context, device plm.DeviceID, percent int) error {
	return c.SendCommand(ctx, device, plm.CmdOn, plm.Cmd2ForLevel(plm.LevelByte(percent)))
}

// TurnOff turns a device off.
func (c *Client) TurnOff(ctx context.Context, device plm.DeviceID) error {
	return c.SendCommand(ctx, device, plm.CmdOff, "00")
}

// FastOn turns a device on at full brightness, skipping the ramp.
func (c *Client) FastOn(ctx context.Context, device plm.DeviceID) error {
	return c.SendCommand(ctx, device, plm.CmdFastOn, "FF")
}

// FastOff turns a device off, skipping the ramp.
func (c *Client) FastOff(ctx context.Context, device plm.DeviceID) error {
	return c.SendCommand(ctx, device, plm.CmdFastOff, "00")
}

// RequestStatus asks a device to report its current state. The report
// arrives asynchronously in the status buffer.
func (c *Client) RequestStatus(ctx context.Context, device plm.DeviceID) error {
	return c.SendCommand(ctx, device, plm.CmdStatusRequest, "00")
}

// ClearBuffer zeroes the hub's internal status buffer.
func (c *Client) ClearBuffer(ctx context.Context) error {
	_, err := c.tr.get(ctx, clearBufferPath)
	return err
}

// Poll reads the hub's status buffer and decodes it.
//
// A transport failure or a missing <BS> envelope is an error; malformed hex
// content inside the envelope is absorbed by the parser and at worst yields
// a short or empty result.
func (c *Client) Poll(ctx context.Context) ([]plm.Ack, error) {
	body, err := c.tr.get(ctx, bufferStatusPath)
	if err != nil {
		c.metrics.incPollErrCount()
		return nil, err
	}

	raw, err := extractBuffer(string(body))
	if err != nil {
		c.metrics.incPollErrCount()
		return nil, err
	}

	acks := plm.ParseBuffer(raw)
	c.metrics.incPollCount()
	c.metrics.addAckCount(len(acks))

	return acks, nil
}

// extractBuffer pulls the hex payload out of the <BS> envelope and strips the
// fixed trailer.
func extractBuffer(body string) (string, error) {
	_, rest, found := strings.Cut(body, bufferOpenTag)
	if !found {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedStatus, bufferOpenTag)
	}
	payload, _, found := strings.Cut(rest, bufferCloseTag)
	if !found {
		return "", fmt.Errorf("%w: missing %s", ErrMalformedStatus, bufferCloseTag)
	}

	if len(payload) <= bufferTrailerLen {
		return "", nil
	}

	return payload[:len(payload)-bufferTrailerLen], nil
}
