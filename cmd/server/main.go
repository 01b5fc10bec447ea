// Package main runs the HTTP API: token directory, signal views and the
// strategy comparison.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solana-signal-lab/internal/api"
	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/cli"
	"solana-signal-lab/internal/comparison"
	"solana-signal-lab/internal/config"
	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/solana"
	"solana-signal-lab/internal/strategies"
	"solana-signal-lab/internal/tokens"
)

func main() {
	// Load .env file if exists
	cli.LoadEnvFile(".env")

	// Parse flags (env vars as defaults)
	configPath := flag.String("config", cli.EnvOr("SIGNAL_LAB_CONFIG", "config.yaml"), "YAML config file")
	addr := flag.String("addr", "", "HTTP listen address (overrides config)")
	endpoint := flag.String("endpoint", "", "Price API gateway name (sandbox, staging) or URL (overrides config)")
	postgresDSN := flag.String("postgres-dsn", "", "PostgreSQL connection string (overrides config)")
	clickhouseDSN := flag.String("clickhouse-dsn", "", "ClickHouse connection string for the candle archive (overrides config)")
	redisAddr := flag.String("redis-addr", "", "Redis address for the candle cache (overrides config)")
	rpcEndpoint := flag.String("rpc-endpoint", "", "Solana RPC endpoint for token metadata (overrides config)")
	useMemory := flag.Bool("use-memory", false, "Use in-memory storage instead of PostgreSQL")
	useFixtures := flag.Bool("use-fixtures", false, "Serve synthetic candles instead of calling the price API")
	migrate := flag.Bool("migrate", true, "Apply database migrations on startup")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[server] ", log.LstdFlags|log.Lshortfile)

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	overrideString(&cfg.HTTP.Addr, *addr)
	overrideString(&cfg.API.Endpoint, *endpoint)
	overrideString(&cfg.Storage.PostgresDSN, *postgresDSN)
	overrideString(&cfg.Storage.ClickHouseDSN, *clickhouseDSN)
	overrideString(&cfg.Cache.RedisAddr, *redisAddr)
	overrideString(&cfg.Solana.RPCEndpoint, *rpcEndpoint)
	if *useMemory {
		cfg.Storage.UseMemory = true
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("Invalid config: %v (use --use-memory for in-memory storage)", err)
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create stores
	stores, err := cli.OpenStores(ctx, cfg, *migrate)
	if err != nil {
		logger.Fatalf("Failed to create stores: %v", err)
	}
	defer stores.Close()

	gql := cli.NewGraphQLClient(cfg)
	var upstream candles.Source = gql
	if *useFixtures {
		upstream = candles.Fixtures{}
		logger.Println("Serving synthetic candles (--use-fixtures)")
	}
	source, closeCache := cli.NewCandleSource(ctx, cfg, upstream, stores.Candles, log.New(os.Stdout, "[cache] ", log.LstdFlags))
	defer closeCache()

	latest := comparison.NewLatest()

	strategySvc := strategies.NewService(strategies.Options{
		Source:      source,
		Store:       stores.Strategies,
		Latest:      latest,
		Concurrency: cfg.Fetch.Concurrency,
		Logger:      log.New(os.Stdout, "[strategies] ", log.LstdFlags),
	})
	signalSvc := signals.NewService(signals.Options{
		Catalog:     gql,
		Source:      source,
		Latest:      latest,
		Concurrency: cfg.Fetch.Concurrency,
		Logger:      log.New(os.Stdout, "[signals] ", log.LstdFlags),
	})
	resolver := tokens.NewMetadataResolver(
		solana.NewHTTPClient(cfg.Solana.RPCEndpoint),
		stores.Metadata,
		log.New(os.Stdout, "[metadata] ", log.LstdFlags),
	)

	server := api.NewServer(api.Options{
		Strategies:  strategySvc,
		Signals:     signalSvc,
		Metadata:    resolver,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Logger:      log.New(os.Stdout, "[http] ", log.LstdFlags),
	})

	httpServer := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           server.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Channel to signal completion
	done := make(chan error, 1)
	go func() {
		logger.Printf("Starting HTTP server on %s (price API %s)", cfg.HTTP.Addr, gql.Endpoint())
		done <- httpServer.ListenAndServe()
	}()

	// Handle shutdown signals
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logger.Printf("Received signal %v, initiating graceful shutdown...", sig)
	case err := <-done:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server error: %v", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Printf("Graceful shutdown failed: %v", err)
	}
	cancel()

	logger.Println("Shutdown complete")
}

func overrideString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
