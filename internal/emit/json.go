// Package emit renders decoded samples for machine and human consumers.
package emit

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"gpsfeed/internal/nmea"
)

// envelope is the wire shape of one decoded sample: a top-level type tag
// plus the nested record.
type envelope struct {
	Type string      `json:"type"`
	Data nmea.Sample `json:"data"`
}

// JSONWriter writes one JSON object per sample, newline-delimited.
type JSONWriter struct {
	mu  sync.Mutex
	enc *json.Encoder
}

func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{enc: json.NewEncoder(w)}
}

func (j *JSONWriter) Consume(_ context.Context, sample nmea.Sample) error {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.enc.Encode(envelope{Type: sample.Kind(), Data: sample})
}

// Marshal returns the JSON encoding of a single sample, tag included.
func Marshal(sample nmea.Sample) ([]byte, error) {
	return json.Marshal(envelope{Type: sample.Kind(), Data: sample})
}
