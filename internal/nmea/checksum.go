package nmea

import (
	"fmt"
	"strings"
)

// Checksum returns the NMEA checksum of a sentence body (the bytes between
// '$' and '*') as two uppercase hex digits.
func Checksum(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("%02X", sum)
}

// IsValid reports whether a sentence carries a correct checksum.
//
// The line is split on '*'; there must be at least two parts and the part
// after the first '*' must be non-empty. A leading '$' on the body is not
// part of the checksummed payload. The transmitted checksum must equal the
// recomputed one byte for byte: two uppercase hex digits, no trimming, so
// lowercase or trailing characters fail.
func IsValid(sample string) bool {
	parts := strings.Split(sample, "*")
	if len(parts) < 2 || parts[1] == "" {
		return false
	}
	body := strings.TrimPrefix(parts[0], "$")
	return Checksum(body) == parts[1]
}
