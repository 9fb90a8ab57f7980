package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvraster/combine"
	"github.com/katalvlaran/lvraster/vatstore"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 90, cfg.Rows)
	require.Equal(t, 100, cfg.Cols)
	require.Equal(t, Range{Lo: 10, Hi: 13}, cfg.First)
	require.Equal(t, Range{Lo: 20, Hi: 23}, cfg.Second)
}

func TestConfigValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"rows", func(c *Config) { c.Rows = 0 }, "rows and cols"},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers"},
		{"range", func(c *Config) { c.First = Range{Lo: 5, Hi: 5} }, "empty value range"},
		{"format", func(c *Config) { c.Format = "xml" }, "unknown format"},
		{"bench", func(c *Config) { c.Bench = -2 }, "bench"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.want)
		})
	}
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfigKeepsDefaults(t *testing.T) {
	path := writeFile(t, "run.yaml", "rows: 12\nsecond:\n  lo: 1\n  hi: 4\nformat: yaml\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Rows)
	require.Equal(t, 100, cfg.Cols)
	require.Equal(t, Range{Lo: 10, Hi: 13}, cfg.First)
	require.Equal(t, Range{Lo: 1, Hi: 4}, cfg.Second)
	require.Equal(t, formatYAML, cfg.Format)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = LoadConfig(writeFile(t, "bad.yaml", "rows: [1"))
	require.Error(t, err)
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	path := writeFile(t, "run.yaml", "rows: 12\ncols: 7\nworkers: 3\n")

	cfg, err := parseConfig([]string{"-config", path, "-cols", "9", "-verify"}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Equal(t, 12, cfg.Rows)
	require.Equal(t, 9, cfg.Cols)
	require.Equal(t, 3, cfg.Workers)
	require.True(t, cfg.Verify)

	_, err = parseConfig([]string{"-format", "xml"}, &bytes.Buffer{})
	require.Error(t, err)
}

func TestRunWritesCSV(t *testing.T) {
	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{"-rows", "30", "-cols", "20", "-verify"}, &stdout, &stderr)
	require.NoError(t, err)

	tab, err := combine.ReadCSV(&stdout)
	require.NoError(t, err)
	require.Equal(t, 600, tab.Total())
	require.LessOrEqual(t, tab.Len(), 9)
	for _, e := range tab.Entries() {
		require.GreaterOrEqual(t, e.First, uint64(10))
		require.Less(t, e.First, uint64(13))
		require.GreaterOrEqual(t, e.Second, uint64(20))
		require.Less(t, e.Second, uint64(23))
	}

	logs := stderr.String()
	require.True(t, strings.Contains(logs, "combined"), logs)
	require.True(t, strings.Contains(logs, "verified"), logs)
}

func TestRunDeterministicForSeed(t *testing.T) {
	args := []string{"-rows", "16", "-cols", "16", "-seed", "42"}
	var first, second bytes.Buffer
	require.NoError(t, run(context.Background(), args, &first, &bytes.Buffer{}))
	require.NoError(t, run(context.Background(), append(args, "-workers", "4"), &second, &bytes.Buffer{}))
	require.Equal(t, first.String(), second.String())
}

func TestRunJSONToFileAndStore(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "vat.json")
	db := filepath.Join(dir, "vat.db")

	var stdout, stderr bytes.Buffer
	err := run(context.Background(), []string{
		"-rows", "25", "-cols", "8",
		"-format", "json", "-out", out,
		"-db", db, "-name", "demo",
		"-bench", "1",
	}, &stdout, &stderr)
	require.NoError(t, err)
	require.Empty(t, stdout.String())
	require.Contains(t, stderr.String(), "benchmark")

	raw, err := os.ReadFile(out)
	require.NoError(t, err)
	var fromFile combine.Table
	require.NoError(t, json.Unmarshal(raw, &fromFile))
	require.Equal(t, 200, fromFile.Total())

	ctx := context.Background()
	store, err := vatstore.Open(ctx, db)
	require.NoError(t, err)
	defer store.Close()

	stored, err := store.Load(ctx, "demo")
	require.NoError(t, err)
	require.Equal(t, fromFile.Entries(), stored.Entries())
}

func TestRunRejectsBadFlags(t *testing.T) {
	var stderr bytes.Buffer
	err := run(context.Background(), []string{"-rows", "-1"}, &bytes.Buffer{}, &stderr)
	require.Error(t, err)

	err = run(context.Background(), []string{"-nope"}, &bytes.Buffer{}, &stderr)
	require.Error(t, err)
}
