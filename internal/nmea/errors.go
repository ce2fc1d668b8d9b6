package nmea

import "errors"

// Every decode failure maps to exactly one of these. Callers processing a
// stream should treat all of them as per-line recoverable: log, skip, and
// move on to the next line.
var (
	// ErrInvalidFormat means the checksum is missing, malformed, or does not
	// match the sentence body.
	ErrInvalidFormat = errors.New("nmea: invalid format")

	// ErrMissingFields means the token count is below the sentence type's
	// minimum, or a required numeric field does not parse.
	ErrMissingFields = errors.New("nmea: missing fields")

	// ErrInvalidDirection means a hemisphere token is empty or not one of
	// the two legal letters for its axis.
	ErrInvalidDirection = errors.New("nmea: invalid direction")

	// ErrUnsupportedType means the talker+type token matches none of the
	// seven supported sentence types.
	ErrUnsupportedType = errors.New("nmea: unsupported sentence type")

	// ErrUnknown covers the defensive case of an empty token sequence after
	// a positive checksum check. Tokenize never produces one, so this should
	// be unreachable.
	ErrUnknown = errors.New("nmea: unknown error")
)
