// Package hub provides a client for the Insteon hub's local HTTP interface.
//
// The hub bridges HTTP requests on the LAN to the power-line command bus. Its
// interface is three GET endpoints: one submits an encoded command, one clears
// the hub's internal status buffer, and one reads the buffer back as a flat
// hex string (see package plm for the wire format).
//
// # Serialization
//
// The hub hardware cannot multiplex connections, so every HTTP call from a
// [Client] passes through a single mutual-exclusion gate with a minimum delay
// between consecutive requests. This holds across goroutines: command
// submission and buffer polling from concurrent callers are globally
// serialized, whatever the caller concurrency.
//
// # Subscribing
//
// [Client.Subscribe] runs a poll-and-deduplicate loop: each cycle reads the
// buffer, parses it, and delivers state-change messages to the handler unless
// an identical message was already delivered within the configured status
// TTL. Malformed buffer content is absorbed by the parser's resynchronization
// and never reaches the handler; a transport failure ends the loop and is
// returned to the caller.
package hub
