package plm

import "fmt"

// Command byte values (cmd1 field, as hex-character pairs).
//
// Values are from the Insteon standard command set. Only CmdOn, CmdOff and
// CmdStatusRequest are given recognized tags on decode; every other value is
// preserved as an opaque [KindUnknown] command rather than rejected.
const (
	// CmdOn turns a device on; cmd2 carries the on-level (00–FF).
	CmdOn = "11"

	// CmdFastOn turns a device on at full brightness, skipping the ramp.
	CmdFastOn = "12"

	// CmdOff turns a device off; cmd2 is 00.
	CmdOff = "13"

	// CmdFastOff turns a device off, skipping the ramp.
	CmdFastOff = "14"

	// CmdStatusRequest asks a device to report its current state.
	CmdStatusRequest = "19"
)

// CommandKind enumerates the command classes the decoder recognizes.
type CommandKind uint8

const (
	// KindUnknown is the opaque arm: an unrecognized command byte, preserved
	// with its raw cmd1/cmd2 values.
	KindUnknown CommandKind = iota
	// KindOn is an on command (cmd1 11).
	KindOn
	// KindOff is an off command (cmd1 13).
	KindOff
	// KindStatus is a status request or report (cmd1 19).
	KindStatus
)

// Command is the decoded command of an [Ack]. The raw cmd1/cmd2 values are
// always retained, so unrecognized command bytes survive a decode/inspect
// round trip intact.
type Command struct {
	Kind CommandKind
	Cmd1 string
	Cmd2 string
}

// commandFor maps a raw cmd1/cmd2 pair to its tagged command.
func commandFor(cmd1, cmd2 string) Command {
	return Command{Kind: kindFor(cmd1), Cmd1: cmd1, Cmd2: cmd2}
}

func kindFor(cmd1 string) CommandKind {
	switch cmd1 {
	case CmdStatusRequest:
		return KindStatus
	case CmdOn:
		return KindOn
	case CmdOff:
		return KindOff
	default:
		return KindUnknown
	}
}

// String renders the command label: "status_request", "on", "off", or
// "unknown[cmd1::cmd2]" for the opaque arm.
func (c Command) String() string {
	switch c.Kind {
	case KindStatus:
		return "status_request"
	case KindOn:
		return "on"
	case KindOff:
		return "off"
	default:
		return fmt.Sprintf("unknown[%s::%s]", c.Cmd1, c.Cmd2)
	}
}

// EventType classifies a [Message]. Unlike [Command], the opaque arm renders
// as the bare cmd1 byte.
type EventType struct {
	Kind CommandKind
	Cmd1 string
}

func eventTypeFor(cmd1 string) EventType {
	return EventType{Kind: kindFor(cmd1), Cmd1: cmd1}
}

// String renders the event type label: "status", "on", "off", or the raw
// cmd1 value for unrecognized command bytes.
func (t EventType) String() string {
	switch t.Kind {
	case KindStatus:
		return "status"
	case KindOn:
		return "on"
	case KindOff:
		return "off"
	default:
		return t.Cmd1
	}
}
