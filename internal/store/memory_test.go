package store

import (
	"context"
	"testing"

	"gpsfeed/internal/nmea"
)

func TestMemoryStore(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	if _, err := m.Latest(ctx); err == nil {
		t.Fatalf("expected error on empty store")
	}

	rmc, err := nmea.Parse("$GNRMC,211041.00,A,4024.98796,N,00340.22512,W,0.027,,010218,,,D*7B")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	zda, err := nmea.Parse("$GPZDA,160012.71,11,03,2004,-1,00*7D")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	if err := m.Save(ctx, rmc); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := m.Consume(ctx, zda); err != nil {
		t.Fatalf("consume: %v", err)
	}

	n, err := m.Count(ctx)
	if err != nil || n != 2 {
		t.Fatalf("count: got %d, %v", n, err)
	}

	doc, err := m.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if doc.Type != "ZDA" {
		t.Fatalf("expected latest ZDA, got %s", doc.Type)
	}
	if doc.ReceivedAt.IsZero() {
		t.Fatalf("expected received_at set")
	}
	if _, ok := doc.Data.(nmea.ZDA); !ok {
		t.Fatalf("expected ZDA data, got %T", doc.Data)
	}
}
