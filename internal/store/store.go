// Package store persists decoded samples.
package store

import (
	"context"
	"time"

	"gpsfeed/internal/nmea"
)

// Document is the persisted form of one decoded sample.
type Document struct {
	Type       string      `bson:"type" json:"type"`
	ReceivedAt time.Time   `bson:"received_at" json:"received_at"`
	Data       nmea.Sample `bson:"data" json:"data"`
}

// Store saves decoded samples and answers simple queries over them.
type Store interface {
	Save(ctx context.Context, sample nmea.Sample) error
	Latest(ctx context.Context) (*Document, error)
	Count(ctx context.Context) (int64, error)
}
