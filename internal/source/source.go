// Package source acquires raw NMEA lines from receivers and recordings.
//
// A Source hands the feed service an io.ReadCloser producing newline-
// terminated sentences; it makes no assumption about content beyond that.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
)

// Source opens a byte stream of NMEA lines.
type Source interface {
	// Open establishes the stream. The context bounds establishment only,
	// not subsequent reads.
	Open(ctx context.Context) (io.ReadCloser, error)

	// Describe identifies the source for logs and status output.
	Describe() string
}

// File replays a recorded NMEA trace from disk.
type File struct {
	Path string
}

func (f *File) Open(ctx context.Context) (io.ReadCloser, error) {
	if f.Path == "" {
		return nil, fmt.Errorf("source: file path is empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fh, err := os.Open(f.Path)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", f.Path, err)
	}
	return fh, nil
}

func (f *File) Describe() string {
	return fmt.Sprintf("file %s", f.Path)
}
