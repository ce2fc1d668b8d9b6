package nmea

// Latitude is a parsed latitude in decimal degrees plus the hemisphere
// letter ("N" or "S") as transmitted.
type Latitude struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

// Longitude is a parsed longitude in decimal degrees plus the hemisphere
// letter ("E" or "W"). A western longitude carries a negative Value; the
// Direction letter is retained for display and round-tripping.
type Longitude struct {
	Value     float64 `json:"value"`
	Direction string  `json:"direction"`
}

// Satellite is one satellite block of a GSV sentence. All fields are kept
// as raw strings; receivers routinely leave SNR empty for satellites that
// are tracked but not used.
type Satellite struct {
	ID        string `json:"id"`
	Elevation string `json:"elevation"`
	Azimuth   string `json:"azimuth"`
	SNR       string `json:"snr"`
}

// GGA: Global Positioning System Fix Data.
type GGA struct {
	Type              string    `json:"type"`
	UTCTime           string    `json:"utc_time"`
	Latitude          Latitude  `json:"latitude"`
	Longitude         Longitude `json:"longitude"`
	Quality           string    `json:"quality"`
	SatellitesUsed    string    `json:"satellites_used"`
	HDOP              string    `json:"hdop"`
	Altitude          string    `json:"altitude"`
	GeoidalSeparation string    `json:"geoidal_separation"`
	DGPS              string    `json:"dgps"`
}

// GLL: Geographic Position, Latitude/Longitude.
type GLL struct {
	Type      string    `json:"type"`
	Latitude  Latitude  `json:"latitude"`
	Longitude Longitude `json:"longitude"`
	UTCTime   string    `json:"utc_time"`
	Status    string    `json:"status"`
}

// GSA: DOP and active satellites.
type GSA struct {
	Type       string   `json:"type"`
	Mode       string   `json:"mode"`
	FixType    string   `json:"fix_type"`
	Satellites []string `json:"satellites"`
	PDOP       string   `json:"pdop"`
	HDOP       string   `json:"hdop"`
	VDOP       string   `json:"vdop"`
}

// GSV: satellites in view.
type GSV struct {
	Type             string      `json:"type"`
	NumberOfMessages string      `json:"number_of_messages"`
	SequenceNumber   string      `json:"sequence_number"`
	SatellitesInView string      `json:"satellites_in_view"`
	Satellites       []Satellite `json:"satellites"`
}

// RMC: Recommended Minimum Specific GNSS Data.
type RMC struct {
	Type      string    `json:"type"`
	UTCTime   string    `json:"utc_time"`
	Status    string    `json:"status"`
	Latitude  Latitude  `json:"latitude"`
	Longitude Longitude `json:"longitude"`
	Speed     string    `json:"speed"`
	Course    string    `json:"course"`
	UTCDate   string    `json:"utc_date"`
	Mode      string    `json:"mode"`
}

// VTG: course over ground and ground speed.
type VTG struct {
	Type           string `json:"type"`
	Course         string `json:"course"`
	CourseMagnetic string `json:"course_magnetic"`
	SpeedKn        string `json:"speed_kn"`
	SpeedKh        string `json:"speed_kh"`
	Mode           string `json:"mode"`
}

// ZDA: time and date.
type ZDA struct {
	Type             string `json:"type"`
	UTCTime          string `json:"utc_time"`
	UTCDay           string `json:"utc_day"`
	UTCMonth         string `json:"utc_month"`
	UTCYear          string `json:"utc_year"`
	LocalZoneHours   string `json:"local_zone_hours"`
	LocalZoneMinutes string `json:"local_zone_minutes"`
}

// Sample is the closed union over the seven record types. Parse never
// returns a value outside this set; unrecognized sentence types surface as
// ErrUnsupportedType instead.
type Sample interface {
	// Kind returns the bare three-letter sentence type ("GGA".."ZDA").
	Kind() string

	sealed()
}

func (GGA) Kind() string { return "GGA" }
func (GLL) Kind() string { return "GLL" }
func (GSA) Kind() string { return "GSA" }
func (GSV) Kind() string { return "GSV" }
func (RMC) Kind() string { return "RMC" }
func (VTG) Kind() string { return "VTG" }
func (ZDA) Kind() string { return "ZDA" }

func (GGA) sealed() {}
func (GLL) sealed() {}
func (GSA) sealed() {}
func (GSV) sealed() {}
func (RMC) sealed() {}
func (VTG) sealed() {}
func (ZDA) sealed() {}
