package nmea

import (
	"strconv"
	"strings"
)

// Minimum token counts per sentence type. Field extraction only starts once
// the sequence is at least this long; shorter sequences fail with
// ErrMissingFields before any field is read.
const (
	minTokensGGA = 15
	minTokensGLL = 7
	minTokensGSA = 18
	minTokensGSV = 4
	minTokensRMC = 12
	minTokensVTG = 10
	minTokensZDA = 7
)

// Field positions, 0-based into the comma-split payload. Token 0 is always
// the talker+type field.
const (
	ggaUTCTime     = 1
	ggaLatValue    = 2
	ggaLatDir      = 3
	ggaLonValue    = 4
	ggaLonDir      = 5
	ggaQuality     = 6
	ggaSatsUsed    = 7
	ggaHDOP        = 8
	ggaAltitude    = 9
	ggaGeoidalSep  = 11
	ggaDGPS        = 14
	gllLatValue    = 1
	gllLatDir      = 2
	gllLonValue    = 3
	gllLonDir      = 4
	gllUTCTime     = 6
	gllStatus      = 7
	gsaMode        = 1
	gsaFixType     = 2
	gsaSatsBase    = 3
	gsaSatSlots    = 12
	gsaPDOP        = 15
	gsaHDOP        = 16
	gsaVDOP        = 17
	gsvMsgCount    = 1
	gsvSeqNumber   = 2
	gsvSatsInView  = 3
	rmcUTCTime     = 1
	rmcStatus      = 2
	rmcLatValue    = 3
	rmcLatDir      = 4
	rmcLonValue    = 5
	rmcLonDir      = 6
	rmcSpeed       = 7
	rmcCourse      = 8
	rmcUTCDate     = 9
	rmcMode        = 11
	vtgCourse      = 1
	vtgCourseMag   = 3
	vtgSpeedKn     = 5
	vtgSpeedKh     = 7
	vtgMode        = 9
	zdaUTCTime     = 1
	zdaUTCDay      = 2
	zdaUTCMonth    = 3
	zdaUTCYear     = 4
	zdaZoneHours   = 5
	zdaZoneMinutes = 6
)

// Parse decodes one NMEA sentence into its typed record.
//
// The checksum is verified first; a sentence that fails it is rejected with
// ErrInvalidFormat before any field is inspected. The sentence type is
// matched as a substring of token 0, so talker prefixes (GN, GP, GL, ...)
// are accepted transparently.
func Parse(sample string) (Sample, error) {
	if !IsValid(sample) {
		return nil, ErrInvalidFormat
	}

	tokens := Tokenize(sample)
	if len(tokens) == 0 {
		return nil, ErrUnknown
	}

	typ := tokens[0]
	switch {
	case strings.Contains(typ, "GGA"):
		return parseGGA(tokens)
	case strings.Contains(typ, "GLL"):
		return parseGLL(tokens)
	case strings.Contains(typ, "GSA"):
		return parseGSA(tokens)
	case strings.Contains(typ, "GSV"):
		return parseGSV(tokens)
	case strings.Contains(typ, "RMC"):
		return parseRMC(tokens)
	case strings.Contains(typ, "VTG"):
		return parseVTG(tokens)
	case strings.Contains(typ, "ZDA"):
		return parseZDA(tokens)
	default:
		return nil, ErrUnsupportedType
	}
}

func parseGGA(tokens []string) (Sample, error) {
	if len(tokens) < minTokensGGA {
		return nil, ErrMissingFields
	}

	lat, err := parseLatitude(tokens[ggaLatValue], tokens[ggaLatDir])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(tokens[ggaLonValue], tokens[ggaLonDir])
	if err != nil {
		return nil, err
	}

	return GGA{
		Type:              tokens[0],
		UTCTime:           tokens[ggaUTCTime],
		Latitude:          lat,
		Longitude:         lon,
		Quality:           tokens[ggaQuality],
		SatellitesUsed:    tokens[ggaSatsUsed],
		HDOP:              tokens[ggaHDOP],
		Altitude:          tokens[ggaAltitude],
		GeoidalSeparation: tokens[ggaGeoidalSep],
		DGPS:              tokens[ggaDGPS],
	}, nil
}

func parseGLL(tokens []string) (Sample, error) {
	if len(tokens) < minTokensGLL {
		return nil, ErrMissingFields
	}

	lat, err := parseLatitude(tokens[gllLatValue], tokens[gllLatDir])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(tokens[gllLonValue], tokens[gllLonDir])
	if err != nil {
		return nil, err
	}

	// Status sits one past the structural minimum; modern receivers append
	// the mode indicator, stretching the sentence to eight fields.
	status, err := field(tokens, gllStatus)
	if err != nil {
		return nil, err
	}

	return GLL{
		Type:      tokens[0],
		Latitude:  lat,
		Longitude: lon,
		UTCTime:   tokens[gllUTCTime],
		Status:    status,
	}, nil
}

func parseGSA(tokens []string) (Sample, error) {
	if len(tokens) < minTokensGSA {
		return nil, ErrMissingFields
	}

	data := GSA{
		Type:       tokens[0],
		Mode:       tokens[gsaMode],
		FixType:    tokens[gsaFixType],
		Satellites: make([]string, 0, gsaSatSlots),
		PDOP:       tokens[gsaPDOP],
		HDOP:       tokens[gsaHDOP],
		VDOP:       tokens[gsaVDOP],
	}

	// All twelve slots are read, populated or not; an empty slot is an
	// absent satellite, not an error.
	for i := 0; i < gsaSatSlots && gsaSatsBase+i < len(tokens); i++ {
		data.Satellites = append(data.Satellites, tokens[gsaSatsBase+i])
	}

	return data, nil
}

func parseGSV(tokens []string) (Sample, error) {
	if len(tokens) < minTokensGSV {
		return nil, ErrMissingFields
	}

	data := GSV{
		Type:             tokens[0],
		NumberOfMessages: tokens[gsvMsgCount],
		SequenceNumber:   tokens[gsvSeqNumber],
		SatellitesInView: tokens[gsvSatsInView],
	}

	n, err := strconv.Atoi(data.NumberOfMessages)
	if err != nil {
		return nil, ErrMissingFields
	}

	// Satellite groups are four fields wide starting at token 8. The loop
	// stops once the group's last index would fall outside the sequence, so
	// a short sentence yields a truncated list rather than an error.
	for i := 1; i <= n && i*4+7 < len(tokens); i++ {
		data.Satellites = append(data.Satellites, Satellite{
			ID:        tokens[i*4+4],
			Elevation: tokens[i*4+5],
			Azimuth:   tokens[i*4+6],
			SNR:       tokens[i*4+7],
		})
	}

	return data, nil
}

func parseRMC(tokens []string) (Sample, error) {
	if len(tokens) < minTokensRMC {
		return nil, ErrMissingFields
	}

	lat, err := parseLatitude(tokens[rmcLatValue], tokens[rmcLatDir])
	if err != nil {
		return nil, err
	}
	lon, err := parseLongitude(tokens[rmcLonValue], tokens[rmcLonDir])
	if err != nil {
		return nil, err
	}

	// Receivers that emit the magnetic-variation pair (NMEA v2.3) shift the
	// mode indicator one field right; fall back to it when slot 11 is empty.
	mode := tokens[rmcMode]
	if mode == "" && len(tokens) > rmcMode+1 {
		mode = tokens[rmcMode+1]
	}

	return RMC{
		Type:      tokens[0],
		UTCTime:   tokens[rmcUTCTime],
		Status:    tokens[rmcStatus],
		Latitude:  lat,
		Longitude: lon,
		Speed:     tokens[rmcSpeed],
		Course:    tokens[rmcCourse],
		UTCDate:   tokens[rmcUTCDate],
		Mode:      mode,
	}, nil
}

func parseVTG(tokens []string) (Sample, error) {
	if len(tokens) < minTokensVTG {
		return nil, ErrMissingFields
	}

	return VTG{
		Type:           tokens[0],
		Course:         tokens[vtgCourse],
		CourseMagnetic: tokens[vtgCourseMag],
		SpeedKn:        tokens[vtgSpeedKn],
		SpeedKh:        tokens[vtgSpeedKh],
		Mode:           tokens[vtgMode],
	}, nil
}

func parseZDA(tokens []string) (Sample, error) {
	if len(tokens) < minTokensZDA {
		return nil, ErrMissingFields
	}

	return ZDA{
		Type:             tokens[0],
		UTCTime:          tokens[zdaUTCTime],
		UTCDay:           tokens[zdaUTCDay],
		UTCMonth:         tokens[zdaUTCMonth],
		UTCYear:          tokens[zdaUTCYear],
		LocalZoneHours:   tokens[zdaZoneHours],
		LocalZoneMinutes: tokens[zdaZoneMinutes],
	}, nil
}
