package registry

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidValue is returned when a token value can't be parsed or doesn't
// fit its declared width.
var ErrInvalidValue = errors.New("invalid token value")

// ParseValue parses a registry token value as a 64-bit quantity.
//
// Hexadecimal ("0x8892"), decimal and negative decimal values are accepted.
// Negative values are returned in two's complement.
func ParseValue(s string) (uint64, error) {
	return parseSized(s, 64)
}

func parseSized(s string, bits int) (uint64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("%w: empty value", ErrInvalidValue)
	}
	if strings.HasPrefix(raw, "-") {
		v, err := strconv.ParseInt(raw, 0, bits)
		if err != nil {
			return 0, fmt.Errorf("%w: %q: %v", ErrInvalidValue, s, err)
		}
		if bits == 32 {
			return uint64(uint32(int32(v))), nil
		}
		return uint64(v), nil
	}
	v, err := strconv.ParseUint(raw, 0, bits)
	if err != nil {
		return 0, fmt.Errorf("%w: %q does not fit %d bits: %v", ErrInvalidValue, s, bits, err)
	}
	return v, nil
}
