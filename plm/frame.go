package plm

import (
	"fmt"
	"strconv"
)

// Fixed marker values, as hex-character strings.
const (
	// PassThroughPrefix opens every Ack header (modem "Send INSTEON Message").
	PassThroughPrefix = "0262"

	// AckByte closes every Ack header (modem acknowledgement).
	AckByte = "06"

	// MessageFlag opens every Message frame ("Standard Message Received").
	MessageFlag = "0250"
)

// Frame sizes in hex characters.
const (
	// AckHeaderLen is prefix(4) + device(6) + flags(2) + cmd1(2) + cmd2(2) + ack(2).
	AckHeaderLen = 18

	// MessageFrameLen is flag(4) + from(6) + to(6) + flags(2) + cmd1(2) + cmd2(2).
	MessageFrameLen = 22
)

// Field widths within a frame, in hex characters.
const (
	markerWidth = 4
	flagsWidth  = 2
	cmdWidth    = 2
)

// Ack represents one hub-acknowledged command echoed in the status buffer,
// together with the Message frames reported after it. Responses are in
// arrival order and owned exclusively by the Ack.
type Ack struct {
	Device    DeviceID
	Flags     string
	Command   Command
	Responses []Message
}

// Message represents one state-change report framed under an Ack.
type Message struct {
	From   DeviceID
	To     DeviceID
	Flags  string
	Status Status
	Type   EventType
}

// Status is the decoded status byte of a Message. For recognized commands
// (on, off, status request) it carries the cmd2 byte value; for anything
// else it is an opaque tag preserving the raw command bytes.
type Status struct {
	known bool
	level byte
	cmd1  string
	cmd2  string
}

// statusFor decodes the status of a message with the given command bytes.
func statusFor(cmd1, cmd2 string) Status {
	s := Status{cmd1: cmd1, cmd2: cmd2}
	if kindFor(cmd1) == KindUnknown {
		return s
	}
	v, err := strconv.ParseUint(cmd2, 16, 8)
	if err != nil {
		// The command byte is recognized but cmd2 is not hex; keep the raw
		// bytes opaque instead of guessing a level.
		return s
	}
	s.known = true
	s.level = byte(v)

	return s
}

// Known reports whether the status carries a decoded level byte.
func (s Status) Known() bool {
	return s.known
}

// Level returns the decoded status byte (0–255). The second return value is
// false for opaque statuses.
func (s Status) Level() (byte, bool) {
	return s.level, s.known
}

// String renders the level as a decimal integer, or "unknown[cmd1::cmd2]"
// for opaque statuses.
func (s Status) String() string {
	if s.known {
		return strconv.Itoa(int(s.level))
	}
	return fmt.Sprintf("unknown[%s::%s]", s.cmd1, s.cmd2)
}
