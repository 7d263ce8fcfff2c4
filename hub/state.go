package hub

import (
	"time"

	"github.com/corvidhq/go-insteon/plm"
)

// DeviceState is the most recent state report observed for a device.
type DeviceState struct {
	// Level is the reported status byte (0–255). Valid only when LevelKnown.
	Level byte

	// LevelKnown is false when the report carried an unrecognized command
	// byte and the status stayed opaque.
	LevelKnown bool

	// Type classifies the report.
	Type plm.EventType

	// SeenAt is when the report was observed by a poll.
	SeenAt time.Time
}

// recordState updates the registry entry for the message's source device.
// Every parsed message updates state, including ones the dedup window
// suppresses from delivery.
func (c *Client) recordState(msg plm.Message, now time.Time) {
	level, known := msg.Status.Level()
	c.states.Store(msg.From, DeviceState{
		Level:      level,
		LevelKnown: known,
		Type:       msg.Type,
		SeenAt:     now,
	})
}

// DeviceState returns the last state observed for a device by this client's
// subscribe loops. The second return value is false if the device has not
// reported since the client was created.
func (c *Client) DeviceState(device plm.DeviceID) (DeviceState, bool) {
	return c.states.Load(device)
}
