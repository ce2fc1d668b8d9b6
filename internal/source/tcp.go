package source

import (
	"context"
	"fmt"
	"io"
	"net"
	"time"
)

// TCP reads sentences from a receiver exposed over the network, e.g. a
// forwarding daemon on another host.
type TCP struct {
	Addr string

	// DialTimeout bounds connection establishment. Zero means 10s.
	DialTimeout time.Duration
}

func (t *TCP) Open(ctx context.Context) (io.ReadCloser, error) {
	if t.Addr == "" {
		return nil, fmt.Errorf("source: tcp addr is empty")
	}

	timeout := t.DialTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	d := net.Dialer{Timeout: timeout}
	conn, err := d.DialContext(ctx, "tcp", t.Addr)
	if err != nil {
		return nil, fmt.Errorf("source: dial %s: %w", t.Addr, err)
	}
	return conn, nil
}

func (t *TCP) Describe() string {
	return fmt.Sprintf("tcp %s", t.Addr)
}
