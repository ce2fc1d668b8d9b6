package web

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"gpsfeed/internal/feed"
	"gpsfeed/internal/source"
)

func testService(t *testing.T) *feed.Service {
	t.Helper()
	path := filepath.Join(t.TempDir(), "trace.nmea")
	content := "$GNRMC,211041.00,A,4024.98796,N,00340.22512,W,0.027,,010218,,,D*7B\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write trace: %v", err)
	}
	svc := feed.New(&source.File{Path: path})
	if err := svc.Run(context.Background()); err != nil {
		t.Fatalf("run: %v", err)
	}
	return svc
}

func TestStatusEndpoint(t *testing.T) {
	h := Handler(testService(t))

	req := httptest.NewRequest(http.MethodGet, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d", rec.Code)
	}
	var snap feed.Snapshot
	if err := json.Unmarshal(rec.Body.Bytes(), &snap); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if snap.Decoded != 1 || snap.LastKind != "RMC" {
		t.Fatalf("snapshot: got %+v", snap)
	}
}

func TestStatusEndpoint_MethodNotAllowed(t *testing.T) {
	h := Handler(testService(t))

	req := httptest.NewRequest(http.MethodPost, "/api/status", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status: got %d", rec.Code)
	}
}

func TestHealthz(t *testing.T) {
	h := Handler(testService(t))

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK || rec.Body.String() != "{\"ok\":true}\n" {
		t.Fatalf("got %d %q", rec.Code, rec.Body.String())
	}
}
