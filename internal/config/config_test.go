package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeYAML(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "dictconv.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	return path
}

const validYAML = `
log:
  level: "debug"
  format: "json"

analyzer:
  kind: "http"
  url: "http://morph:9000"
  timeout: "3s"

converter:
  min_length: 3
  progress_every: 500
  encoding: "windows-1251"
  blacklist_path: "/data/blacklist.txt"

database:
  dsn: "postgres://u:p@localhost:5432/dict"
  max_conns: 2
`

func TestLoad_ValidYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Log.Level != "debug" {
		t.Errorf("log.level = %q, want %q", cfg.Log.Level, "debug")
	}
	if cfg.Log.Format != "json" {
		t.Errorf("log.format = %q, want %q", cfg.Log.Format, "json")
	}
	if cfg.Analyzer.Kind != AnalyzerHTTP {
		t.Errorf("analyzer.kind = %q, want %q", cfg.Analyzer.Kind, AnalyzerHTTP)
	}
	if cfg.Analyzer.URL != "http://morph:9000" {
		t.Errorf("analyzer.url = %q", cfg.Analyzer.URL)
	}
	if cfg.Analyzer.Timeout != 3*time.Second {
		t.Errorf("analyzer.timeout = %v, want 3s", cfg.Analyzer.Timeout)
	}
	if cfg.Converter.MinLength != 3 {
		t.Errorf("converter.min_length = %d, want 3", cfg.Converter.MinLength)
	}
	if cfg.Converter.ProgressEvery != 500 {
		t.Errorf("converter.progress_every = %d, want 500", cfg.Converter.ProgressEvery)
	}
	if cfg.Converter.Encoding != "windows-1251" {
		t.Errorf("converter.encoding = %q", cfg.Converter.Encoding)
	}
	if !cfg.Database.Enabled() {
		t.Error("database should be enabled")
	}
	if cfg.Database.MaxConns != 2 {
		t.Errorf("database.max_conns = %d, want 2", cfg.Database.MaxConns)
	}
}

func TestLoad_ENVOverridesYAML(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv("CONVERTER_MIN_LENGTH", "4")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Converter.MinLength != 4 {
		t.Errorf("converter.min_length = %d, want 4 (ENV override)", cfg.Converter.MinLength)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("log.level = %q, want %q (ENV override)", cfg.Log.Level, "warn")
	}
}

func TestLoad_PathFromEnv(t *testing.T) {
	path := writeYAML(t, t.TempDir(), validYAML)
	t.Setenv(PathEnv, path)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Analyzer.Kind != AnalyzerHTTP {
		t.Errorf("analyzer.kind = %q, want %q", cfg.Analyzer.Kind, AnalyzerHTTP)
	}
}

func TestLoad_NoFile_Defaults(t *testing.T) {
	t.Setenv(PathEnv, "")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Converter.MinLength != 2 {
		t.Errorf("converter.min_length = %d, want 2 (default)", cfg.Converter.MinLength)
	}
	if cfg.Converter.ProgressEvery != 1000 {
		t.Errorf("converter.progress_every = %d, want 1000 (default)", cfg.Converter.ProgressEvery)
	}
	if cfg.Converter.Encoding != "utf-8" {
		t.Errorf("converter.encoding = %q, want utf-8 (default)", cfg.Converter.Encoding)
	}
	if cfg.Analyzer.Kind != AnalyzerLexicon {
		t.Errorf("analyzer.kind = %q, want lexicon (default)", cfg.Analyzer.Kind)
	}
	if cfg.Log.Format != "text" {
		t.Errorf("log.format = %q, want text (default)", cfg.Log.Format)
	}
	if cfg.Database.Enabled() {
		t.Error("database should be disabled without DSN")
	}
}

func TestLoad_ExplicitPathNotFound(t *testing.T) {
	_, err := Load("/nonexistent/dictconv.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			Analyzer:  AnalyzerConfig{Kind: "lexicon", Timeout: time.Second},
			Converter: ConverterConfig{MinLength: 2, ProgressEvery: 1000},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "kind is case-insensitive", mutate: func(c *Config) { c.Analyzer.Kind = " EXEC " }},
		{name: "negative min length", mutate: func(c *Config) { c.Converter.MinLength = -1 }, wantErr: "min_length"},
		{name: "zero progress", mutate: func(c *Config) { c.Converter.ProgressEvery = 0 }, wantErr: "progress_every"},
		{name: "unknown analyzer", mutate: func(c *Config) { c.Analyzer.Kind = "natasha" }, wantErr: "analyzer.kind"},
		{name: "zero timeout", mutate: func(c *Config) { c.Analyzer.Timeout = 0 }, wantErr: "timeout"},
		{name: "db without conns", mutate: func(c *Config) {
			c.Database.DSN = "postgres://x"
			c.Database.MaxConns = 0
		}, wantErr: "max_conns"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
