// Package udp forwards decoded samples as datagrams, one JSON object each.
package udp

import (
	"context"
	"fmt"
	"net"

	"gpsfeed/internal/emit"
	"gpsfeed/internal/nmea"
)

type Forwarder struct {
	dest string
	conn *net.UDPConn
}

func NewForwarder(dest string) (*Forwarder, error) {
	addr, err := net.ResolveUDPAddr("udp", dest)
	if err != nil {
		return nil, fmt.Errorf("resolve dest: %w", err)
	}

	// DialUDP selects a suitable local address automatically.
	conn, err := net.DialUDP("udp", nil, addr)
	if err != nil {
		return nil, fmt.Errorf("dial udp: %w", err)
	}

	return &Forwarder{
		dest: dest,
		conn: conn,
	}, nil
}

// Consume sends one datagram per decoded sample.
func (f *Forwarder) Consume(_ context.Context, sample nmea.Sample) error {
	payload, err := emit.Marshal(sample)
	if err != nil {
		return err
	}
	_, err = f.conn.Write(payload)
	return err
}

func (f *Forwarder) Close() error {
	if f.conn == nil {
		return nil
	}
	return f.conn.Close()
}
