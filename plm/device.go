package plm

import (
	"errors"
	"fmt"
	"strings"
)

// deviceIDLen is the width of a device address in hex characters (3 bytes).
const deviceIDLen = 6

// ErrInvalidDeviceID indicates that a device ID is not six hex characters.
var ErrInvalidDeviceID = errors.New("plm: invalid device ID")

// DeviceID is the six-hex-character (3-byte) address of an Insteon device,
// held in canonical upper-case form.
type DeviceID string

// ParseDeviceID validates and canonicalizes a device address.
// Input is case-insensitive; the returned DeviceID is upper-case.
func ParseDeviceID(s string) (DeviceID, error) {
	if len(s) != deviceIDLen {
		return "", fmt.Errorf("%w: %q is not %d characters", ErrInvalidDeviceID, s, deviceIDLen)
	}
	for _, r := range s {
		if !isHexChar(r) {
			return "", fmt.Errorf("%w: %q contains non-hex character %q", ErrInvalidDeviceID, s, r)
		}
	}

	return DeviceID(strings.ToUpper(s)), nil
}

func (d DeviceID) String() string {
	return string(d)
}

func isHexChar(r rune) bool {
	switch {
	case r >= '0' && r <= '9':
		return true
	case r >= 'a' && r <= 'f':
		return true
	case r >= 'A' && r <= 'F':
		return true
	default:
		return false
	}
}
