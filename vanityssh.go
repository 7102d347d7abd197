package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/opendream/vanityssh/search"
)

func main() {
	var (
		pattern       = flag.String("pattern", "", "Regex pattern to match against the public key body")
		threads       = flag.Int("threads", runtime.NumCPU(), "Number of worker goroutines")
		streaming     = flag.Bool("streaming", false, "Keep finding matches after the first one")
		caseSensitive = flag.Bool("case-sensitive", false, "Match the pattern case-sensitively")
		comment       = flag.String("comment", "", "Comment for the generated keys")
		output        = flag.String("output", "", "Append found keys to a file")
		mnemonic      = flag.Bool("mnemonic", false, "Print a BIP-39 backup phrase for the seed")
		verbose       = flag.Bool("verbose", false, "Verbose logging, also prints the PKCS#8 form")
		metricsAddr   = flag.String("metrics", "", "Serve Prometheus metrics on this address (e.g. :9101)")
		configPath    = flag.String("config", "", "YAML config file; explicit flags override it")
	)
	flag.Parse()

	flagCfg := Config{
		Pattern:       *pattern,
		Threads:       *threads,
		Streaming:     *streaming,
		CaseSensitive: *caseSensitive,
		Comment:       *comment,
		Output:        *output,
		Mnemonic:      *mnemonic,
		Verbose:       *verbose,
		MetricsAddr:   *metricsAddr,
	}

	cfg := flagCfg
	if *configPath != "" {
		fileCfg, err := loadConfig(*configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		set := map[string]bool{}
		flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
		fileCfg.merge(flagCfg, set)
		cfg = fileCfg
	}

	if cfg.Pattern == "" {
		fmt.Println("vanityssh - Vanity SSH Key Generator")
		fmt.Println("\nUsage: vanityssh -pattern <regex>")
		fmt.Println("\nExamples:")
		fmt.Println("vanityssh -pattern cool                       # Find 'cool' anywhere in the key")
		fmt.Println("vanityssh -pattern 'MENG$' -case-sensitive    # Find keys ending in 'MENG'")
		fmt.Println("vanityssh -pattern cool -streaming -output keys.txt")
		flag.PrintDefaults()
		os.Exit(1)
	}

	if cfg.Streaming && cfg.Output == "" {
		fmt.Println("WARNING: consider -output to keep the keys found while streaming.")
	}

	logger := newLogger(cfg.Verbose)

	s, err := search.New(search.Options{
		Pattern:       cfg.Pattern,
		CaseSensitive: cfg.CaseSensitive,
		Threads:       cfg.Threads,
		Streaming:     cfg.Streaming,
		Comment:       cfg.Comment,
		Mnemonic:      cfg.Mnemonic,
		PKCS8:         cfg.Verbose,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.MetricsAddr != "" {
		serveMetrics(ctx, logger, cfg.MetricsAddr, s.Stats())
	}

	fmt.Printf("Hunting %q with %d workers...\n", cfg.Pattern, s.Threads())
	fmt.Println("Press Ctrl+C to stop")
	go reportProgress(ctx, cfg, s.Stats())

	reason, err := s.Run(ctx, func(m search.Match, snap search.Snapshot) {
		printMatch(m, snap)
		if cfg.Output != "" {
			if werr := appendMatch(cfg.Output, m); werr != nil {
				logger.Error("write output file", "path", cfg.Output, "err", werr)
			}
		}
	})
	if err != nil {
		logger.Error("search failed", "err", err)
		os.Exit(1)
	}

	snap := s.Stats().Snapshot()
	logger.Info("search finished",
		"reason", reason.String(),
		"attempts", snap.Attempts,
		"matches", snap.Matches,
		"elapsed", snap.Elapsed.Round(time.Millisecond),
	)
}

func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// serveMetrics exposes the search counters for long streaming runs.
func serveMetrics(ctx context.Context, logger *slog.Logger, addr string, stats *search.Stats) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(search.NewCollector(stats))

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux}

	go func() {
		<-ctx.Done()
		srv.Close()
	}()
	go func() {
		logger.Info("metrics listening", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("metrics server", "err", err)
		}
	}()
}
