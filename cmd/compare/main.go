// Package main compares strategy windows or a signal's trigger windows from
// the command line and writes Markdown, CSV and HTML exports.
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"solana-signal-lab/internal/candles"
	"solana-signal-lab/internal/cli"
	"solana-signal-lab/internal/config"
	"solana-signal-lab/internal/domain"
	"solana-signal-lab/internal/reporting"
	"solana-signal-lab/internal/signals"
	"solana-signal-lab/internal/storage/memory"
	"solana-signal-lab/internal/strategies"
	"solana-signal-lab/internal/timerange"
)

func main() {
	cli.LoadEnvFile(".env")

	configPath := flag.String("config", cli.EnvOr("SIGNAL_LAB_CONFIG", "config.yaml"), "YAML config file")
	endpoint := flag.String("endpoint", "", "Price API gateway name (sandbox, staging) or URL (overrides config)")
	token := flag.String("token", "", "Comma-separated token symbols or mint addresses")
	intervals := flag.String("intervals", "1H", "Comma-separated candle intervals (1M,5M,1H,4H,6H,1D,3D,1W)")
	directions := flag.String("directions", "LONG", "Comma-separated directions (LONG,SHORT)")
	preset := flag.String("preset", "1D", "Time range preset (1D,7D,1M,3M,1Y,custom)")
	from := flag.String("from", "", "Range start (RFC3339), with --preset custom")
	to := flag.String("to", "", "Range end (RFC3339), with --preset custom")
	signalID := flag.String("signal", "", "Signal ID to compare trigger windows for (instead of --token)")
	timeframe := flag.String("timeframe", "1D", "Signal timeframe (1D, 1W)")
	outputDir := flag.String("output-dir", "output", "Output directory for generated files")
	useFixtures := flag.Bool("use-fixtures", false, "Use synthetic candles instead of the price API")
	flag.Parse()

	logger := log.New(os.Stderr, "[compare] ", log.LstdFlags)

	if (*token == "") == (*signalID == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of --token or --signal is required")
		flag.Usage()
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *endpoint != "" {
		cfg.API.Endpoint = *endpoint
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	gql := cli.NewGraphQLClient(cfg)
	var upstream candles.Source = gql
	if *useFixtures {
		upstream = candles.Fixtures{}
	}
	source, closeCache := cli.NewCandleSource(ctx, cfg, upstream, nil, logger)
	defer closeCache()

	gen := reporting.NewGenerator()
	var report *reporting.Report

	if *signalID != "" {
		svc := signals.NewService(signals.Options{
			Catalog:     gql,
			Source:      source,
			Concurrency: cfg.Fetch.Concurrency,
			Logger:      logger,
		})
		d, err := svc.Detail(ctx, *signalID, domain.ParseTimeframe(*timeframe))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading signal: %v\n", err)
			os.Exit(1)
		}
		report = gen.FromDetail(d)
	} else {
		rng, err := parseRange(*preset, *from, *to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		svc := strategies.NewService(strategies.Options{
			Source:      source,
			Store:       memory.NewStrategyStore(),
			Concurrency: cfg.Fetch.Concurrency,
			Logger:      logger,
		})
		for _, tok := range cli.SplitList(*token) {
			for _, iv := range cli.SplitList(*intervals) {
				for _, dir := range cli.SplitList(*directions) {
					req := strategies.AddRequest{
						Token:     tok,
						Interval:  domain.Interval(iv),
						Direction: domain.Direction(dir),
						Preset:    rng.preset,
						From:      rng.from,
						To:        rng.to,
					}
					if _, err := svc.Add(ctx, req); err != nil {
						logger.Printf("WARNING: skipping %s %s %s: %v", tok, iv, dir, err)
					}
				}
			}
		}
		c, err := svc.Compare(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error comparing strategies: %v\n", err)
			os.Exit(1)
		}
		report = gen.FromComparison(c)
	}

	fmt.Println(reporting.RenderTable(report))

	paths, err := writeOutputs(*outputDir, report)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error writing outputs: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Comparison written:")
	for _, p := range paths {
		fmt.Printf("  - %s\n", p)
	}
}

type rangeArgs struct {
	preset   timerange.Preset
	from, to time.Time
}

func parseRange(preset, from, to string) (rangeArgs, error) {
	p, err := timerange.ParsePreset(preset)
	if err != nil {
		return rangeArgs{}, err
	}
	r := rangeArgs{preset: p}
	if p != timerange.PresetCustom {
		return r, nil
	}
	if r.from, err = time.Parse(time.RFC3339, from); err != nil {
		return rangeArgs{}, fmt.Errorf("--from: %w", err)
	}
	if r.to, err = time.Parse(time.RFC3339, to); err != nil {
		return rangeArgs{}, fmt.Errorf("--to: %w", err)
	}
	return r, nil
}

func writeOutputs(dir string, r *reporting.Report) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var csvBuf, chartBuf bytes.Buffer
	if err := reporting.WriteCSV(&csvBuf, r); err != nil {
		return nil, err
	}
	if err := reporting.RenderChart(&chartBuf, r); err != nil {
		return nil, err
	}

	files := []struct {
		name string
		data []byte
	}{
		{"COMPARISON.md", []byte(reporting.RenderMarkdown(r))},
		{"comparison.csv", csvBuf.Bytes()},
		{"comparison.html", chartBuf.Bytes()},
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, f.name)
		if err := os.WriteFile(path, f.data, 0o644); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
