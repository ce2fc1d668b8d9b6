package udp

import (
	"context"
	"encoding/json"
	"net"
	"testing"
	"time"

	"gpsfeed/internal/nmea"
)

func TestForwarder(t *testing.T) {
	pc, err := net.ListenPacket("udp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer pc.Close()

	fwd, err := NewForwarder(pc.LocalAddr().String())
	if err != nil {
		t.Fatalf("new forwarder: %v", err)
	}
	defer fwd.Close()

	sample, err := nmea.Parse("$GNRMC,211041.00,A,4024.98796,N,00340.22512,W,0.027,,010218,,,D*7B")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if err := fwd.Consume(context.Background(), sample); err != nil {
		t.Fatalf("consume: %v", err)
	}

	buf := make([]byte, 4096)
	_ = pc.SetReadDeadline(time.Now().Add(2 * time.Second))
	n, _, err := pc.ReadFrom(buf)
	if err != nil {
		t.Fatalf("read: %v", err)
	}

	var out struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(buf[:n], &out); err != nil {
		t.Fatalf("unmarshal %q: %v", buf[:n], err)
	}
	if out.Type != "RMC" {
		t.Fatalf("expected RMC, got %q", out.Type)
	}
}

func TestNewForwarder_BadDest(t *testing.T) {
	if _, err := NewForwarder("not-an-addr"); err == nil {
		t.Fatalf("expected error")
	}
}
