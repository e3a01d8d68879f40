package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/mowtheair/jicofo/internal/conference"
	"github.com/mowtheair/jicofo/internal/config"
	"github.com/mowtheair/jicofo/internal/events"
	"github.com/mowtheair/jicofo/internal/health"
	"github.com/mowtheair/jicofo/internal/mock"
	"github.com/mowtheair/jicofo/internal/stats"
	"github.com/mowtheair/jicofo/internal/ws"
)

func main() {
	mockMode := flag.Bool("mock", false, "Generate scripted conference activity")
	configPath := flag.String("config", "config.yaml", "Path to config file")
	port := flag.Int("port", 0, "Override server port")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		if !os.IsNotExist(err) || *configPath != "config.yaml" {
			log.Fatalf("Failed to load config: %v", err)
		}
		cfg = config.Default()
	}

	if *port > 0 {
		cfg.Server.Port = *port
	}

	store := conference.NewStore()
	bus := events.NewBus()

	aggregator := stats.New()
	aggregator.SetRegistry(store)

	broadcaster := ws.NewBroadcaster(aggregator, cfg.Stats.SnapshotInterval.Std())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go aggregator.Run(ctx, bus.Subscribe(cfg.Stats.EventBuffer))
	go broadcaster.Run(ctx, bus.Subscribe(cfg.Stats.EventBuffer))

	server := ws.NewServer(aggregator, store, broadcaster, cfg.Server.AllowedOrigins, cfg.Server.AuthToken)

	checker, err := health.NewChecker()
	if err != nil {
		log.Printf("Health checker unavailable: %v", err)
	} else {
		server.SetHealthChecker(checker)
	}

	if *mockMode {
		log.Println("Starting in mock mode")
		gen := mock.NewGenerator(store, bus)
		go gen.Start(ctx)
	}

	mux := http.NewServeMux()
	server.SetupRoutes(mux)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Shutting down...")
		cancel()
		os.Exit(0)
	}()

	if err := ws.ListenAndServe(cfg.Server.Host, cfg.Server.Port, mux); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
