package plm

import (
	"fmt"
	"strings"
)

// DefaultFlags is the message-flags byte used for outbound commands unless
// the caller overrides it: direct message, 3 hops remaining, 3 max hops.
const DefaultFlags = "0F"

// EncodeCommand builds the pass-through command string for a device with the
// default message flags. The result is 16 lower-case hex characters, ready
// to embed in the hub's command endpoint URL.
func EncodeCommand(device DeviceID, cmd1, cmd2 string) string {
	return EncodeCommandFlags(device, DefaultFlags, cmd1, cmd2)
}

// EncodeCommandFlags builds the pass-through command string with explicit
// message flags:
//
//	[0262][device(6)][flags(2)][cmd1(2)][cmd2(2)]
//
// all lower-cased.
func EncodeCommandFlags(device DeviceID, flags, cmd1, cmd2 string) string {
	return strings.ToLower(PassThroughPrefix + string(device) + flags + cmd1 + cmd2)
}

// LevelByte scales a 0–100 brightness percentage to the 0–255 on-level byte
// carried in cmd2 of an on command. Out-of-range input is clamped.
func LevelByte(percent int) byte {
	if percent <= 0 {
		return 0
	}
	if percent >= 100 {
		return 0xFF
	}

	return byte(percent * 255 / 100)
}

// Cmd2ForLevel renders an on-level byte as the two-digit upper-case hex cmd2
// field.
func Cmd2ForLevel(level byte) string {
	return fmt.Sprintf("%02X", level)
}
