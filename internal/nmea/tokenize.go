package nmea

import "strings"

// Tokenize splits a raw sentence into its comma-delimited fields.
//
// The line is first split on '*' to cut off the checksum, then the leading
// '$' (a sentence delimiter, not part of any field) is stripped, and the
// remaining payload is split on ','. Token 0 is always the talker+type
// field (e.g. "GNRMC").
//
// Tokenize is total: any input, including the empty string, yields at least
// one token. Malformed lines simply produce degenerate sequences that the
// decoder rejects.
func Tokenize(sample string) []string {
	payload, _, _ := strings.Cut(sample, "*")
	payload = strings.TrimPrefix(payload, "$")
	return strings.Split(payload, ",")
}
