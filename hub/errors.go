package hub

import "errors"

var (
	// ErrConfigNil indicates that a nil Config was provided.
	ErrConfigNil = errors.New("hub: config is nil")

	// ErrNilHandler indicates that Subscribe was called without a handler.
	ErrNilHandler = errors.New("hub: subscribe handler is nil")

	// ErrRequestFailed indicates that the hub answered with a non-2xx HTTP
	// status. Transport errors are fatal to the current operation; the client
	// never retries.
	ErrRequestFailed = errors.New("hub: request failed")

	// ErrMalformedStatus indicates that a buffer status response did not
	// contain the expected <BS> envelope.
	ErrMalformedStatus = errors.New("hub: malformed buffer status response")
)
