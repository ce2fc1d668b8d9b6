package source

import (
	"bufio"
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "trace.nmea")
	content := "$GNRMC,211041.00,A,4024.98796,N,00340.22512,W,0.027,,010218,,,D*7B\n$GPZDA,160012.71,11,03,2004,-1,00*7D\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write trace: %v", err)
	}

	src := &File{Path: path}
	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	var lines []string
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0][:6] != "$GNRMC" {
		t.Fatalf("unexpected first line: %q", lines[0])
	}
}

func TestFileSource_EmptyPath(t *testing.T) {
	src := &File{}
	if _, err := src.Open(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestTCPSource(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		_, _ = conn.Write([]byte("$GNVTG,54.7,T,34.4,M,5.5,N,10.2,K,A*0B\n"))
	}()

	src := &TCP{Addr: ln.Addr().String()}
	rc, err := src.Open(context.Background())
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer rc.Close()

	sc := bufio.NewScanner(rc)
	if !sc.Scan() {
		t.Fatalf("expected a line, got err=%v", sc.Err())
	}
	if got := sc.Text(); got[:6] != "$GNVTG" {
		t.Fatalf("unexpected line: %q", got)
	}
}

func TestTCPSource_EmptyAddr(t *testing.T) {
	src := &TCP{}
	if _, err := src.Open(context.Background()); err == nil {
		t.Fatalf("expected error")
	}
}

func TestDescribe(t *testing.T) {
	if (&File{Path: "a.nmea"}).Describe() != "file a.nmea" {
		t.Fatalf("file describe")
	}
	if (&Serial{Device: "/dev/ttyACM0"}).Describe() != "serial /dev/ttyACM0 baud=9600" {
		t.Fatalf("serial describe")
	}
	if (&TCP{Addr: "127.0.0.1:2947"}).Describe() != "tcp 127.0.0.1:2947" {
		t.Fatalf("tcp describe")
	}
}
