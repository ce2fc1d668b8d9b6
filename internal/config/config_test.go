package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "dev.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
source:
  path: ./trace.nmea
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source.Kind != "file" || cfg.Source.Path != "./trace.nmea" {
		t.Fatalf("source: got %+v", cfg.Source)
	}
	if cfg.Output.Format != "json" {
		t.Fatalf("format: got %q", cfg.Output.Format)
	}
}

func TestLoadSerial(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
source:
  kind: serial
  device: /dev/ttyACM0
output:
  format: text
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Source.Baud != 9600 {
		t.Fatalf("baud default: got %d", cfg.Source.Baud)
	}
	if cfg.Output.Format != "text" {
		t.Fatalf("format: got %q", cfg.Output.Format)
	}
}

func TestLoadStoreDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
source:
  path: ./trace.nmea
store:
  enable: true
  uri: mongodb://localhost:27017
`))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Database != "gpsfeed" || cfg.Store.Collection != "samples" {
		t.Fatalf("store: got %+v", cfg.Store)
	}
}

func TestLoadErrors(t *testing.T) {
	tables := []struct {
		name    string
		content string
	}{
		{"file without path", "source:\n  kind: file\n"},
		{"serial without device", "source:\n  kind: serial\n"},
		{"tcp without addr", "source:\n  kind: tcp\n"},
		{"unknown kind", "source:\n  kind: carrier-pigeon\n"},
		{"unknown format", "source:\n  path: a\noutput:\n  format: xml\n"},
		{"store without uri", "source:\n  path: a\nstore:\n  enable: true\n"},
		{"udp without dest", "source:\n  path: a\nudp:\n  enable: true\n"},
	}

	for _, table := range tables {
		if _, err := Load(writeConfig(t, table.content)); err == nil {
			t.Errorf("%s: expected error", table.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatalf("expected error")
	}
}
