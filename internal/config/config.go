package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
	Store  StoreConfig  `yaml:"store"`
	Web    WebConfig    `yaml:"web"`
	UDP    UDPConfig    `yaml:"udp"`
}

type SourceConfig struct {
	// Kind selects how sentences are ingested: "file", "serial" or "tcp".
	Kind string `yaml:"kind"`

	// Path is the trace file for Kind=="file".
	Path string `yaml:"path"`

	// Device and Baud configure Kind=="serial".
	Device string `yaml:"device"`
	Baud   int    `yaml:"baud"`

	// Addr is host:port for Kind=="tcp".
	Addr string `yaml:"addr"`
}

type OutputConfig struct {
	// Format selects stdout rendering: "json" or "text".
	Format string `yaml:"format"`
}

type StoreConfig struct {
	Enable     bool   `yaml:"enable"`
	URI        string `yaml:"uri"`
	Database   string `yaml:"database"`
	Collection string `yaml:"collection"`
}

type WebConfig struct {
	Enable bool   `yaml:"enable"`
	Addr   string `yaml:"addr"`
}

type UDPConfig struct {
	Enable bool   `yaml:"enable"`
	Dest   string `yaml:"dest"`
}

func Load(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Source.Kind == "" {
		cfg.Source.Kind = "file"
	}
	switch cfg.Source.Kind {
	case "file":
		if cfg.Source.Path == "" {
			return Config{}, fmt.Errorf("source.path is required for kind=file")
		}
	case "serial":
		if cfg.Source.Device == "" {
			return Config{}, fmt.Errorf("source.device is required for kind=serial")
		}
		if cfg.Source.Baud == 0 {
			cfg.Source.Baud = 9600
		}
	case "tcp":
		if cfg.Source.Addr == "" {
			return Config{}, fmt.Errorf("source.addr is required for kind=tcp")
		}
	default:
		return Config{}, fmt.Errorf("unknown source.kind %q", cfg.Source.Kind)
	}

	if cfg.Output.Format == "" {
		cfg.Output.Format = "json"
	}
	if cfg.Output.Format != "json" && cfg.Output.Format != "text" {
		return Config{}, fmt.Errorf("unknown output.format %q", cfg.Output.Format)
	}

	if cfg.Store.Enable {
		if cfg.Store.URI == "" {
			return Config{}, fmt.Errorf("store.uri is required when store is enabled")
		}
		if cfg.Store.Database == "" {
			cfg.Store.Database = "gpsfeed"
		}
		if cfg.Store.Collection == "" {
			cfg.Store.Collection = "samples"
		}
	}

	if cfg.Web.Enable && cfg.Web.Addr == "" {
		cfg.Web.Addr = ":8080"
	}
	if cfg.UDP.Enable && cfg.UDP.Dest == "" {
		return Config{}, fmt.Errorf("udp.dest is required when udp is enabled")
	}

	return cfg, nil
}
