package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"gpsfeed/internal/config"
	"gpsfeed/internal/emit"
	"gpsfeed/internal/feed"
	"gpsfeed/internal/nmea"
	"gpsfeed/internal/source"
	"gpsfeed/internal/store"
	"gpsfeed/internal/udp"
	"gpsfeed/internal/web"
)

func main() {
	var configPath string
	var line string
	flag.StringVar(&configPath, "config", "./dev.yaml", "Path to YAML config")
	flag.StringVar(&line, "line", "", "Decode a single sentence and exit")
	flag.Parse()

	if line != "" {
		if err := decodeOne(line); err != nil {
			log.Fatalf("decode failed: %v", err)
		}
		return
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	src, err := buildSource(cfg.Source)
	if err != nil {
		log.Fatalf("source init failed: %v", err)
	}

	var sinks []feed.Sink
	switch cfg.Output.Format {
	case "text":
		sinks = append(sinks, emit.NewTextWriter(os.Stdout))
	default:
		sinks = append(sinks, emit.NewJSONWriter(os.Stdout))
	}

	if cfg.UDP.Enable {
		fwd, err := udp.NewForwarder(cfg.UDP.Dest)
		if err != nil {
			log.Fatalf("udp forwarder init failed: %v", err)
		}
		defer fwd.Close()
		sinks = append(sinks, fwd)
	}

	if cfg.Store.Enable {
		client, err := store.Connect(ctx, cfg.Store.URI)
		if err != nil {
			log.Fatalf("store init failed: %v", err)
		}
		defer func() {
			_ = client.Disconnect(context.Background())
		}()
		sinks = append(sinks, store.NewMongo(client.Database(cfg.Store.Database), cfg.Store.Collection))
	}

	svc := feed.New(src, sinks...)

	log.Printf("gpsfeed starting")
	log.Printf("source %s output=%s", src.Describe(), cfg.Output.Format)

	if cfg.Web.Enable {
		go func() {
			if err := web.Serve(ctx, cfg.Web.Addr, web.Handler(svc)); err != nil {
				log.Printf("web server stopped: %v", err)
				cancel()
			}
		}()
		log.Printf("status server on %s", cfg.Web.Addr)
	}

	done := make(chan error, 1)
	go func() {
		done <- svc.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		svc.Stop()
	case err := <-done:
		if err != nil && ctx.Err() == nil {
			log.Printf("feed stopped: %v", err)
		}
	}

	snap := svc.Snapshot()
	log.Printf("gpsfeed stopping lines=%d decoded=%d rejected=%d", snap.Lines, snap.Decoded, snap.Rejected)
}

func decodeOne(line string) error {
	sample, err := nmea.Parse(line)
	if err != nil {
		return err
	}
	fmt.Println(emit.Format(sample))
	b, err := emit.Marshal(sample)
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func buildSource(cfg config.SourceConfig) (source.Source, error) {
	switch cfg.Kind {
	case "file":
		return &source.File{Path: cfg.Path}, nil
	case "serial":
		return &source.Serial{Device: cfg.Device, Baud: cfg.Baud}, nil
	case "tcp":
		return &source.TCP{Addr: cfg.Addr}, nil
	default:
		return nil, fmt.Errorf("unknown source kind %q", cfg.Kind)
	}
}
