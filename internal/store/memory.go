package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gpsfeed/internal/nmea"
)

// Memory keeps documents in a slice. Used in tests and when running
// without a database.
type Memory struct {
	mu   sync.Mutex
	docs []Document
}

func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, sample nmea.Sample) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, Document{
		Type:       sample.Kind(),
		ReceivedAt: time.Now().UTC(),
		Data:       sample,
	})
	return nil
}

func (m *Memory) Latest(_ context.Context) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.docs) == 0 {
		return nil, fmt.Errorf("store: no documents")
	}
	doc := m.docs[len(m.docs)-1]
	return &doc, nil
}

func (m *Memory) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.docs)), nil
}

// Consume lets a Memory store act as a feed sink directly.
func (m *Memory) Consume(ctx context.Context, sample nmea.Sample) error {
	return m.Save(ctx, sample)
}
