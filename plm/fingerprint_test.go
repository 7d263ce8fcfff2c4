package plm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMessage_Fingerprint(t *testing.T) {
	base := Message{
		From:   "AABBCC",
		To:     "112233",
		Flags:  "2F",
		Status: statusFor(CmdOn, "FF"),
		Type:   eventTypeFor(CmdOn),
	}

	// Deterministic: identical fields, identical fingerprint.
	same := Message{
		From:   "AABBCC",
		To:     "112233",
		Flags:  "2F",
		Status: statusFor(CmdOn, "FF"),
		Type:   eventTypeFor(CmdOn),
	}
	assert.Equal(t, base.Fingerprint(), same.Fingerprint())

	// Any field change must change the fingerprint.
	diff := base
	diff.From = "AABBCD"
	assert.NotEqual(t, base.Fingerprint(), diff.Fingerprint())

	diff = base
	diff.To = "112234"
	assert.NotEqual(t, base.Fingerprint(), diff.Fingerprint())

	diff = base
	diff.Flags = "0F"
	assert.NotEqual(t, base.Fingerprint(), diff.Fingerprint())

	diff = base
	diff.Status = statusFor(CmdOn, "FE")
	assert.NotEqual(t, base.Fingerprint(), diff.Fingerprint())

	diff = base
	diff.Type = eventTypeFor(CmdOff)
	assert.NotEqual(t, base.Fingerprint(), diff.Fingerprint())
}

// Fingerprints of messages decoded from the same wire bytes must match across
// separate parses: the dedup key has to be stable between poll cycles.
func TestMessage_Fingerprint_StableAcrossParses(t *testing.T) {
	buf := ackFrame("AABBCC", CmdStatusRequest, "00") +
		msgFrame("AABBCC", "112233", "2F", CmdStatusRequest, "80")

	first := ParseBuffer(buf)[0].Responses[0]
	second := ParseBuffer(buf)[0].Responses[0]

	assert.Equal(t, first.Fingerprint(), second.Fingerprint())
}
