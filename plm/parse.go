package plm

import (
	"strings"

	"github.com/corvidhq/go-insteon/internal/hexbuf"
)

// scanResult is the outcome of one message-frame scan attempt.
type scanResult uint8

const (
	// scanOK: a well-formed message frame was consumed.
	scanOK scanResult = iota
	// scanFrameErr: the data at the cursor is not a message frame. Nothing
	// was consumed; the remainder is a fresh Ack candidate.
	scanFrameErr
	// scanExhausted: fewer characters remain than a full message frame.
	// This is end-of-data, not corruption.
	scanExhausted
)

// ParseBuffer decodes a raw hub status buffer into its sequence of Acks.
//
// The buffer is scanned with a cursor. Each iteration attempts an 18-character
// Ack header; on validation failure the cursor resynchronizes to the next
// occurrence of the pass-through marker and retries. A resynchronization that
// makes no forward progress stops the parse, which guarantees termination on
// arbitrary garbage. After a valid Ack header, 22-character message frames are
// consumed until one fails validation (the Ack is finalized and the unconsumed
// remainder is rescanned as a new Ack candidate) or too few characters remain
// (the Ack is finalized and the whole parse ends).
//
// ParseBuffer never fails: unparsable content is skipped, and the worst case
// is an empty result.
func ParseBuffer(buf string) []Ack {
	var acks []Ack
	cur := hexbuf.New(buf)

scan:
	for cur.Remaining() > 0 {
		ack, ok := parseAck(cur)
		if !ok {
			skipped, found := cur.SeekTo(PassThroughPrefix)
			if found && skipped == 0 {
				// The marker at the cursor already failed to parse; no
				// forward progress is possible.
				break
			}
			continue
		}

		for {
			msg, res := parseMessage(cur)
			switch res {
			case scanOK:
				ack.Responses = append(ack.Responses, msg)
			case scanFrameErr:
				acks = append(acks, ack)
				continue scan
			case scanExhausted:
				acks = append(acks, ack)
				break scan
			}
		}
	}

	return acks
}

// parseAck attempts to consume an Ack header at the cursor:
//
//	[prefix(4)][device(6)][flags(2)][cmd1(2)][cmd2(2)][ack(2)]
//
// It returns false without consuming anything when the remaining buffer is
// too short, the prefix is not the pass-through marker, or the trailing byte
// is not the modem acknowledgement.
func parseAck(cur *hexbuf.Cursor) (Ack, bool) {
	prefix, ok := cur.Field(0, markerWidth)
	if !ok {
		return Ack{}, false
	}
	device, ok := cur.Field(4, deviceIDLen)
	if !ok {
		return Ack{}, false
	}
	flags, ok := cur.Field(10, flagsWidth)
	if !ok {
		return Ack{}, false
	}
	cmd1, ok := cur.Field(12, cmdWidth)
	if !ok {
		return Ack{}, false
	}
	cmd2, ok := cur.Field(14, cmdWidth)
	if !ok {
		return Ack{}, false
	}
	ackByte, ok := cur.Field(16, cmdWidth)
	if !ok {
		return Ack{}, false
	}

	if prefix != PassThroughPrefix || ackByte != AckByte {
		return Ack{}, false
	}

	cur.Skip(AckHeaderLen)

	return Ack{
		Device:  DeviceID(strings.ToUpper(device)),
		Flags:   flags,
		Command: commandFor(cmd1, cmd2),
	}, true
}

// parseMessage attempts to consume a message frame at the cursor:
//
//	[flag(4)][from(6)][to(6)][flags(2)][cmd1(2)][cmd2(2)]
func parseMessage(cur *hexbuf.Cursor) (Message, scanResult) {
	if cur.Remaining() < MessageFrameLen {
		return Message{}, scanExhausted
	}

	flag, _ := cur.Field(0, markerWidth)
	if flag != MessageFlag {
		return Message{}, scanFrameErr
	}

	from, _ := cur.Field(4, deviceIDLen)
	to, _ := cur.Field(10, deviceIDLen)
	flags, _ := cur.Field(16, flagsWidth)
	cmd1, _ := cur.Field(18, cmdWidth)
	cmd2, _ := cur.Field(20, cmdWidth)

	cur.Skip(MessageFrameLen)

	return Message{
		From:   DeviceID(strings.ToUpper(from)),
		To:     DeviceID(strings.ToUpper(to)),
		Flags:  flags,
		Status: statusFor(cmd1, cmd2),
		Type:   eventTypeFor(cmd1),
	}, scanOK
}
