// SPDX-License-Identifier: MIT

// Package main generates two random categorical layers, combines them and
// writes the resulting value attribute table.
//
// Usage:
//
//	rastercombine [-config run.yaml] [-rows 2000 -cols 3000] [-format csv|json|yaml]
//	              [-out table.csv] [-db vat.db -name landcover_x_soil] [-verify] [-bench 5] [-v]
//
// Flags override values loaded from -config.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvraster/combine"
	"github.com/katalvlaran/lvraster/grid"
	"github.com/katalvlaran/lvraster/vatstore"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintln(os.Stderr, "rastercombine:", err)
		os.Exit(1)
	}
}

// parseConfig resolves defaults, the optional -config file and explicit flags.
func parseConfig(args []string, stderr io.Writer) (Config, error) {
	fs := flag.NewFlagSet("rastercombine", flag.ContinueOnError)
	fs.SetOutput(stderr)

	def := DefaultConfig()
	configPath := fs.String("config", "", "YAML config file")
	rows := fs.Int("rows", def.Rows, "grid rows")
	cols := fs.Int("cols", def.Cols, "grid columns")
	seed := fs.Int64("seed", def.Seed, "random seed")
	workers := fs.Int("workers", def.Workers, "encode workers (0 = GOMAXPROCS)")
	format := fs.String("format", def.Format, "table format: csv, json or yaml")
	out := fs.String("out", def.Out, "output file (default stdout)")
	db := fs.String("db", def.DB, "sqlite database to store the table in")
	name := fs.String("name", def.Name, "table name in the database")
	verify := fs.Bool("verify", def.Verify, "re-check every cell against the table")
	bench := fs.Int("bench", def.Bench, "benchmark repetitions (serial vs parallel)")
	verbose := fs.Bool("v", def.Verbose, "debug logging")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg := def
	if *configPath != "" {
		var err error
		if cfg, err = LoadConfig(*configPath); err != nil {
			return Config{}, err
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = *rows
		case "cols":
			cfg.Cols = *cols
		case "seed":
			cfg.Seed = *seed
		case "workers":
			cfg.Workers = *workers
		case "format":
			cfg.Format = *format
		case "out":
			cfg.Out = *out
		case "db":
			cfg.DB = *db
		case "name":
			cfg.Name = *name
		case "verify":
			cfg.Verify = *verify
		case "bench":
			cfg.Bench = *bench
		case "v":
			cfg.Verbose = *verbose
		}
	})

	return cfg, cfg.Validate()
}

func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	enc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())

	return zap.New(zapcore.NewCore(enc, zapcore.AddSync(w), level))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, err := parseConfig(args, stderr)
	if err != nil {
		return err
	}
	log := newLogger(stderr, cfg.Verbose)
	defer func() { _ = log.Sync() }()

	rng := rand.New(rand.NewSource(cfg.Seed))
	a, err := grid.Random[uint16](cfg.Rows, cfg.Cols, cfg.First.Lo, cfg.First.Hi, rng)
	if err != nil {
		return err
	}
	b, err := grid.Random[uint16](cfg.Rows, cfg.Cols, cfg.Second.Lo, cfg.Second.Hi, rng)
	if err != nil {
		return err
	}

	opts := []combine.Option{combine.WithWorkers(cfg.Workers), combine.WithLogger(log)}
	res, err := combine.CombineContext(ctx, a, b, opts...)
	if err != nil {
		return err
	}
	sum := res.Table.Summary()
	log.Info("combined",
		zap.Int("rows", cfg.Rows),
		zap.Int("cols", cfg.Cols),
		zap.Int("combinations", sum.Combinations),
		zap.Uint64("dominant", sum.Dominant.Value),
		zap.Float64("entropy", sum.Entropy),
		zap.Float64("evenness", sum.Evenness),
	)

	if cfg.Verify {
		if err := combine.Verify(a, b, res); err != nil {
			return err
		}
		log.Info("verified", zap.Int("cells", res.Table.Total()))
	}
	if cfg.Bench > 0 {
		if err := benchmark(ctx, log, a, b, cfg); err != nil {
			return err
		}
	}
	if cfg.DB != "" {
		if err := persist(ctx, log, cfg, res.Table); err != nil {
			return err
		}
	}

	return writeTable(stdout, cfg, res.Table)
}

// benchmark times the scalar loop against the configured worker count.
func benchmark(ctx context.Context, log *zap.Logger, a, b *grid.Dense[uint16], cfg Config) error {
	nop := zap.NewNop()
	timeIt := func(workers int) (time.Duration, error) {
		start := time.Now()
		for i := 0; i < cfg.Bench; i++ {
			if _, err := combine.CombineContext(ctx, a, b, combine.WithWorkers(workers), combine.WithLogger(nop)); err != nil {
				return 0, err
			}
		}
		return time.Since(start) / time.Duration(cfg.Bench), nil
	}

	serial, err := timeIt(1)
	if err != nil {
		return err
	}
	parallel, err := timeIt(cfg.Workers)
	if err != nil {
		return err
	}
	resolved := combine.ResolveOptions(combine.WithWorkers(cfg.Workers)).Workers()
	log.Info("benchmark",
		zap.Int("repetitions", cfg.Bench),
		zap.Duration("serial", serial),
		zap.Duration("parallel", parallel),
		zap.Int("workers", resolved),
		zap.Float64("speedup", float64(serial)/float64(max(parallel, 1))),
	)

	return nil
}

func persist(ctx context.Context, log *zap.Logger, cfg Config, t *combine.Table) error {
	store, err := vatstore.Open(ctx, cfg.DB, vatstore.WithLogger(log))
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(ctx, cfg.Name, t); err != nil {
		return err
	}
	log.Info("stored", zap.String("db", cfg.DB), zap.String("name", cfg.Name))

	return nil
}

func writeTable(stdout io.Writer, cfg Config, t *combine.Table) (err error) {
	w := stdout
	if cfg.Out != "" && cfg.Out != "-" {
		var f *os.File
		if f, err = os.Create(cfg.Out); err != nil {
			return err
		}
		defer func() {
			if cerr := f.Close(); err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch cfg.Format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(t)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(t); err != nil {
			return err
		}
		return enc.Close()
	default:
		return t.WriteCSV(w)
	}
}
