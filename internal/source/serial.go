package source

import (
	"context"
	"fmt"
	"io"

	"go.bug.st/serial"
)

// Serial reads sentences straight from a GNSS receiver on a serial device.
//
// u-blox receivers typically show up as /dev/ttyACM* or /dev/ttyUSB* and
// talk NMEA at 9600 baud out of the box.
type Serial struct {
	Device string
	Baud   int
}

func (s *Serial) Open(ctx context.Context) (io.ReadCloser, error) {
	if s.Device == "" {
		return nil, fmt.Errorf("source: serial device is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	baud := s.Baud
	if baud == 0 {
		baud = 9600
	}

	port, err := serial.Open(s.Device, &serial.Mode{BaudRate: baud})
	if err != nil {
		return nil, fmt.Errorf("source: open %s baud=%d: %w", s.Device, baud, err)
	}
	return port, nil
}

func (s *Serial) Describe() string {
	baud := s.Baud
	if baud == 0 {
		baud = 9600
	}
	return fmt.Sprintf("serial %s baud=%d", s.Device, baud)
}
