package emit

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"gpsfeed/internal/nmea"
)

// TextWriter writes one human-readable line per sample.
type TextWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func NewTextWriter(w io.Writer) *TextWriter {
	return &TextWriter{w: w}
}

func (t *TextWriter) Consume(_ context.Context, sample nmea.Sample) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, err := io.WriteString(t.w, Format(sample)+"\n")
	return err
}

// Format renders a sample for display.
func Format(sample nmea.Sample) string {
	switch data := sample.(type) {
	case nmea.GGA:
		return fmt.Sprintf("GGA: time=%s lat=%.7f%s lon=%.7f%s quality=%s sats=%s hdop=%s alt=%s geoid=%s",
			data.UTCTime, data.Latitude.Value, data.Latitude.Direction,
			data.Longitude.Value, data.Longitude.Direction,
			data.Quality, data.SatellitesUsed, data.HDOP, data.Altitude, data.GeoidalSeparation)
	case nmea.GLL:
		return fmt.Sprintf("GLL: lat=%.7f%s lon=%.7f%s time=%s status=%s",
			data.Latitude.Value, data.Latitude.Direction,
			data.Longitude.Value, data.Longitude.Direction,
			data.UTCTime, data.Status)
	case nmea.GSA:
		used := make([]string, 0, len(data.Satellites))
		for _, id := range data.Satellites {
			if id != "" {
				used = append(used, id)
			}
		}
		return fmt.Sprintf("GSA: mode=%s fix=%s sats=[%s] pdop=%s hdop=%s vdop=%s",
			data.Mode, data.FixType, strings.Join(used, " "), data.PDOP, data.HDOP, data.VDOP)
	case nmea.GSV:
		var sb strings.Builder
		fmt.Fprintf(&sb, "GSV: msg=%s/%s in_view=%s", data.SequenceNumber, data.NumberOfMessages, data.SatellitesInView)
		for _, sat := range data.Satellites {
			fmt.Fprintf(&sb, " [id=%s el=%s az=%s snr=%s]", sat.ID, sat.Elevation, sat.Azimuth, sat.SNR)
		}
		return sb.String()
	case nmea.RMC:
		return fmt.Sprintf("RMC: time=%s status=%s lat=%.7f%s lon=%.7f%s speed=%s course=%s date=%s mode=%s",
			data.UTCTime, data.Status,
			data.Latitude.Value, data.Latitude.Direction,
			data.Longitude.Value, data.Longitude.Direction,
			data.Speed, data.Course, data.UTCDate, data.Mode)
	case nmea.VTG:
		return fmt.Sprintf("VTG: course=%s magnetic=%s speed_kn=%s speed_kh=%s mode=%s",
			data.Course, data.CourseMagnetic, data.SpeedKn, data.SpeedKh, data.Mode)
	case nmea.ZDA:
		return fmt.Sprintf("ZDA: time=%s date=%s-%s-%s zone=%s:%s",
			data.UTCTime, data.UTCYear, data.UTCMonth, data.UTCDay,
			data.LocalZoneHours, data.LocalZoneMinutes)
	default:
		// The Sample union is sealed; nothing else can get here.
		return fmt.Sprintf("%s: %+v", sample.Kind(), sample)
	}
}
