// Package feed runs the decode loop: raw lines in, typed samples out.
package feed

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"gpsfeed/internal/nmea"
	"gpsfeed/internal/source"
)

// Sink consumes decoded samples. Implementations must tolerate concurrent
// calls only if they are shared across services; the feed itself calls
// sequentially.
type Sink interface {
	Consume(ctx context.Context, sample nmea.Sample) error
}

// Snapshot is a point-in-time view of the feed for status output.
type Snapshot struct {
	Running bool   `json:"running"`
	Source  string `json:"source,omitempty"`

	Lines    uint64 `json:"lines"`
	Decoded  uint64 `json:"decoded"`
	Rejected uint64 `json:"rejected"`

	ByKind  map[string]uint64 `json:"by_kind,omitempty"`
	ByError map[string]uint64 `json:"by_error,omitempty"`

	LastKind       string `json:"last_kind,omitempty"`
	LastError      string `json:"last_error,omitempty"`
	LastDecodedUTC string `json:"last_decoded_utc,omitempty"`
}

type feedState struct {
	running bool
	source  string

	lines    uint64
	decoded  uint64
	rejected uint64

	byKind  map[string]uint64
	byError map[string]uint64

	lastKind    string
	lastErr     string
	lastDecoded time.Time
}

func (s *feedState) snapshot() Snapshot {
	out := Snapshot{
		Running:   s.running,
		Source:    s.source,
		Lines:     s.lines,
		Decoded:   s.decoded,
		Rejected:  s.rejected,
		LastKind:  s.lastKind,
		LastError: s.lastErr,
	}
	if len(s.byKind) > 0 {
		out.ByKind = make(map[string]uint64, len(s.byKind))
		for k, v := range s.byKind {
			out.ByKind[k] = v
		}
	}
	if len(s.byError) > 0 {
		out.ByError = make(map[string]uint64, len(s.byError))
		for k, v := range s.byError {
			out.ByError[k] = v
		}
	}
	if !s.lastDecoded.IsZero() {
		out.LastDecodedUTC = s.lastDecoded.UTC().Format(time.RFC3339Nano)
	}
	return out
}

// errorLabel names a decode failure for counters. Every error out of
// nmea.Parse is one of the five sentinels.
func errorLabel(err error) string {
	switch {
	case errors.Is(err, nmea.ErrInvalidFormat):
		return "invalid_format"
	case errors.Is(err, nmea.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, nmea.ErrInvalidDirection):
		return "invalid_direction"
	case errors.Is(err, nmea.ErrUnsupportedType):
		return "unsupported_type"
	default:
		return "unknown"
	}
}

// Service reads lines from a source, decodes them, and fans samples out to
// sinks. Every decode failure is per-line recoverable: it is counted and
// remembered, and the loop moves on.
type Service struct {
	src   source.Source
	sinks []Sink

	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu     sync.Mutex
	closer io.Closer

	last atomic.Value // Snapshot
}

func New(src source.Source, sinks ...Sink) *Service {
	s := &Service{src: src, sinks: sinks}
	s.last.Store(Snapshot{Source: src.Describe()})
	return s
}

// Snapshot returns the most recently published state.
func (s *Service) Snapshot() Snapshot {
	return s.last.Load().(Snapshot)
}

// Start launches the decode loop in the background. Use Stop to shut it
// down and wait for it.
func (s *Service) Start(ctx context.Context) error {
	if ctx == nil {
		return fmt.Errorf("feed: ctx is nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return nil
	}

	childCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.Run(childCtx); err != nil && childCtx.Err() == nil {
			log.Printf("feed stopped: %v", err)
		}
	}()
	return nil
}

// Run executes the decode loop synchronously until the source is drained
// or the context is cancelled. It returns nil on clean EOF.
func (s *Service) Run(ctx context.Context) error {
	rc, err := s.src.Open(ctx)
	if err != nil {
		s.last.Store(Snapshot{Source: s.src.Describe(), LastError: err.Error()})
		return err
	}
	s.mu.Lock()
	s.closer = rc
	s.mu.Unlock()
	defer func() {
		_ = rc.Close()
	}()

	log.Printf("feed reading from %s", s.src.Describe())

	reader := bufio.NewScanner(rc)
	// NMEA sentences are typically < 82 chars, but allow some headroom.
	reader.Buffer(make([]byte, 0, 256), 4096)

	st := feedState{
		running: true,
		source:  s.src.Describe(),
		byKind:  make(map[string]uint64),
		byError: make(map[string]uint64),
	}
	s.last.Store(st.snapshot())

	defer func() {
		st.running = false
		s.last.Store(st.snapshot())
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if !reader.Scan() {
			if err := reader.Err(); err != nil {
				st.lastErr = fmt.Sprintf("read stopped: %v", err)
				return err
			}
			return nil
		}

		line := strings.TrimSpace(reader.Text())
		if line == "" {
			continue
		}
		st.lines++

		sample, err := nmea.Parse(line)
		if err != nil {
			st.rejected++
			st.byError[errorLabel(err)]++
			st.lastErr = fmt.Sprintf("%v: %s", err, line)
			s.last.Store(st.snapshot())
			continue
		}

		st.decoded++
		st.byKind[sample.Kind()]++
		st.lastKind = sample.Kind()
		st.lastDecoded = time.Now().UTC()

		for _, sink := range s.sinks {
			if err := sink.Consume(ctx, sample); err != nil {
				// Sink trouble should not stall decoding.
				st.lastErr = fmt.Sprintf("sink: %v", err)
				log.Printf("feed sink failed: %v", err)
			}
		}

		s.last.Store(st.snapshot())
	}
}

// Stop cancels the loop, closes the source, and waits for the goroutine.
func (s *Service) Stop() {
	s.mu.Lock()
	cancel := s.cancel
	closer := s.closer
	s.cancel = nil
	s.closer = nil
	s.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if closer != nil {
		_ = closer.Close()
	}
	s.wg.Wait()
}
