// Package plm implements the wire protocol of the Insteon power-line modem
// as exposed by the local hub's HTTP buffer interface.
//
// The hub does not speak a structured API: commands are submitted as flat
// strings of hex characters, and the hub's internal ring buffer is read back
// as one opaque hex string that interleaves command acknowledgements with
// zero or more follow-up event frames. This package provides the codec for
// both directions.
//
// # Wire Format
//
// An outbound command is 16 hex characters:
//
//	[0262][device(6)][flags(2)][cmd1(2)][cmd2(2)]
//
// where 0262 is the modem's pass-through prefix ("Send INSTEON Message").
//
// The status buffer echoes each command back as an 18-character Ack header,
// the command followed by the modem's 06 acknowledgement byte, and reports
// device state changes as 22-character Message frames:
//
//	[0250][from(6)][to(6)][flags(2)][cmd1(2)][cmd2(2)]
//
// where 0250 is the "Standard Message Received" marker.
//
// # Parsing
//
// The buffer carries no frame-count or length headers, and may be truncated
// mid-frame or contain stale garbage, so [ParseBuffer] locates frames by
// fixed-width lookahead and resynchronizes on the pass-through marker when
// validation fails. It is guaranteed to terminate on any finite input and
// never returns an error: unparsable content yields a short or empty result.
package plm
