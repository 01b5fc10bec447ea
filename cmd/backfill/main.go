// Package main archives candle windows from the price API into ClickHouse.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/cli"
	"solana-signal-lab/internal/config"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/observability"
	"solana-signal-lab/internal/storage"
	chstore "solana-signal-lab/internal/storage/clickhouse"
	"solana-signal-lab/internal/storage/memory"
	"solana-signal-lab/internal/storage/migrations"
	"solana-signal-lab/internal/timerange"
	"solana-signal-lab/internal/tokens"
)

func main() {
	cli.LoadEnvFile(".env")

	// Parse flags (env vars as defaults)
	configPath := flag.String("config", cli.EnvOr("SIGNAL_LAB_CONFIG", "config.yaml"), "YAML config file")
	endpoint := flag.String("endpoint", "", "Price API gateway name (sandbox, staging) or URL (overrides config)")
	clickhouseDSN := flag.String("clickhouse-dsn", os.Getenv("CLICKHOUSE_DSN"), "ClickHouse connection string")
	token := flag.String("token", "", "Comma-separated token symbols or mint addresses")
	intervals := flag.String("intervals", "1H", "Comma-separated candle intervals")
	preset := flag.String("preset", "7D", "Time range preset (1D,7D,1M,3M,1Y)")
	fromTime := flag.String("from-time", "", "Start time (RFC3339), overrides --preset")
	toTime := flag.String("to-time", "", "End time (RFC3339), defaults to now")
	batchSize := flag.Int("batch-size", 1000, "Candles per insert batch")
	dryRun := flag.Bool("dry-run", false, "Archive into memory only")
	useFixtures := flag.Bool("use-fixtures", false, "Use synthetic candles instead of the price API")
	metricsAddr := flag.String("metrics-addr", "", "Prometheus metrics HTTP address (empty to disable)")

	flag.Parse()

	// Setup logger
	logger := log.New(os.Stdout, "[backfill] ", log.LstdFlags|log.Lshortfile)

	if *token == "" {
		logger.Fatal("--token is required")
	}
	if !*dryRun && *clickhouseDSN == "" {
		logger.Fatal("--clickhouse-dsn is required (use --dry-run for in-memory archiving)")
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		logger.Fatalf("Failed to load config: %v", err)
	}
	if *endpoint != "" {
		cfg.API.Endpoint = *endpoint
	}

	rng, err := resolveRange(*preset, *fromTime, *toTime, time.Now())
	if err != nil {
		logger.Fatalf("Invalid range: %v", err)
	}

	// Start metrics server if enabled
	if *metricsAddr != "" {
		go func() {
			mux := http.NewServeMux()
			mux.Handle("/metrics", observability.Handler())
			logger.Printf("Starting metrics server on %s", *metricsAddr)
			if err := http.ListenAndServe(*metricsAddr, mux); err != nil && err != http.ErrServerClosed {
				logger.Printf("Metrics server error: %v", err)
			}
		}()
	}

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logger.Printf("Received signal %v, stopping after current batch...", sig)
		cancel()
	}()

	var store storage.CandleStore
	if *dryRun {
		store = memory.NewCandleStore()
	} else {
		conn, err := migrations.RunClickhouseMigrations(ctx, *clickhouseDSN)
		if err != nil {
			logger.Fatalf("Failed to prepare clickhouse: %v", err)
		}
		defer conn.Close()
		store = chstore.NewCandleStore(conn)
	}

	var upstream candles.Source = cli.NewGraphQLClient(cfg)
	if *useFixtures {
		upstream = candles.Fixtures{}
	}

	backfiller := candles.NewBackfiller(candles.BackfillOptions{
		Upstream:  upstream,
		Store:     store,
		BatchSize: *batchSize,
		Logger:    logger,
	})

	failed := 0
	for _, sym := range cli.SplitList(*token) {
		tok, err := tokens.Resolve(sym)
		if err != nil {
			logger.Printf("WARNING: skipping %s: %v", sym, err)
			failed++
			continue
		}
		for _, iv := range cli.SplitList(*intervals) {
			interval, ok := domain.ParseInterval(iv)
			if !ok {
				logger.Printf("WARNING: skipping unknown interval %s", iv)
				failed++
				continue
			}

			q := candles.Query{Mint: tok.Address, Interval: interval, From: rng.From, To: rng.To}
			result, err := backfiller.Backfill(ctx, q)
			if err != nil {
				if ctx.Err() != nil {
					logger.Println("Interrupted")
					os.Exit(1)
				}
				logger.Printf("ERROR: %s: %v", q, err)
				failed++
				continue
			}
			logger.Printf("%s %s: fetched %d, stored %d, skipped %d in %v",
				sym, interval.Short(), result.Fetched, result.Stored, result.DuplicatesSkipped, result.Duration)
		}
	}

	if failed > 0 {
		logger.Fatalf("Backfill finished with %d failures", failed)
	}
	logger.Println("Backfill complete")
}

// resolveRange prefers explicit times over the preset.
func resolveRange(preset, from, to string, now time.Time) (timerange.Range, error) {
	if from == "" {
		p, err := timerange.ParsePreset(preset)
		if err != nil {
			return timerange.Range{}, err
		}
		return timerange.FromPreset(p, now)
	}

	start, err := time.Parse(time.RFC3339, from)
	if err != nil {
		return timerange.Range{}, fmt.Errorf("--from-time: %w", err)
	}
	end := now
	if to != "" {
		if end, err = time.Parse(time.RFC3339, to); err != nil {
			return timerange.Range{}, fmt.Errorf("--to-time: %w", err)
		}
	}
	return timerange.Custom(start, end)
}
