package nmea

import "strconv"

// SpeedUnit selects the output unit of ParseSpeed.
type SpeedUnit int

const (
	// MetersPerSecond converts knots to m/s.
	MetersPerSecond SpeedUnit = iota
	// KilometersPerHour converts knots to km/h.
	KilometersPerHour
)

const (
	knotsToMS  = 0.514444444
	knotsToKMH = 1.85
)

// field is a bounds-checked token accessor. Reading past the end of the
// sequence yields ErrMissingFields rather than a panic; fixed-position
// extraction is too easy to get off by one otherwise.
func field(tokens []string, i int) (string, error) {
	if i < 0 || i >= len(tokens) {
		return "", ErrMissingFields
	}
	return tokens[i], nil
}

// parseLatitude decodes a latitude value/hemisphere token pair. The raw
// value is divided by 100 to normalize to decimal degrees.
func parseLatitude(value, direction string) (Latitude, error) {
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Latitude{}, ErrMissingFields
	}
	if direction == "" || (direction[0] != 'N' && direction[0] != 'S') {
		return Latitude{}, ErrInvalidDirection
	}
	return Latitude{Value: v / 100, Direction: string(direction[0])}, nil
}

// parseLongitude decodes a longitude value/hemisphere token pair. The
// direction is validated first because the sign of the result depends on
// it: western longitudes are negative.
func parseLongitude(value, direction string) (Longitude, error) {
	if direction == "" || (direction[0] != 'E' && direction[0] != 'W') {
		return Longitude{}, ErrInvalidDirection
	}
	v, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return Longitude{}, ErrMissingFields
	}
	if direction[0] == 'W' {
		v = -v
	}
	return Longitude{Value: v / 100, Direction: string(direction[0])}, nil
}

// ParseUTCTime splits an HHMMSS[.sss] time field into its hour, minute and
// second components. Inputs shorter than six characters fail with
// ErrMissingFields.
func ParseUTCTime(utcTime string) (hours, minutes, seconds string, err error) {
	if len(utcTime) < 6 {
		return "", "", "", ErrMissingFields
	}
	return utcTime[0:2], utcTime[2:4], utcTime[4:6], nil
}

// ParseUTCDate splits a DDMMYY date field into its day, month and year
// components. Inputs shorter than six characters fail with ErrMissingFields.
func ParseUTCDate(utcDate string) (day, month, year string, err error) {
	if len(utcDate) < 6 {
		return "", "", "", ErrMissingFields
	}
	return utcDate[0:2], utcDate[2:4], utcDate[4:6], nil
}

// ParseSpeed parses a speed field given in knots and converts it to the
// requested unit. Non-numeric input fails with ErrMissingFields.
func ParseSpeed(speed string, unit SpeedUnit) (float64, error) {
	v, err := strconv.ParseFloat(speed, 64)
	if err != nil {
		return 0, ErrMissingFields
	}
	if unit == MetersPerSecond {
		return v * knotsToMS, nil
	}
	return v * knotsToKMH, nil
}
