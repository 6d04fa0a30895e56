package config

import "time"

// Config is the root configuration shared by the dictionary tools.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Analyzer  AnalyzerConfig  `yaml:"analyzer"`
	Converter ConverterConfig `yaml:"converter"`
	Database  DatabaseConfig  `yaml:"database"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// AnalyzerConfig selects and configures the morphological analyzer.
//
// Kind is one of:
//
//	lexicon  in-memory TSV lexicon at LexiconPath
//	http     morphology service at URL
//	exec     co-process started from Command/Args
type AnalyzerConfig struct {
	Kind        string        `yaml:"kind"         env:"ANALYZER_KIND"         env-default:"lexicon"`
	LexiconPath string        `yaml:"lexicon_path" env:"ANALYZER_LEXICON_PATH"`
	URL         string        `yaml:"url"          env:"ANALYZER_URL"          env-default:"http://localhost:8090"`
	Timeout     time.Duration `yaml:"timeout"      env:"ANALYZER_TIMEOUT"      env-default:"10s"`
	Command     string        `yaml:"command"      env:"ANALYZER_COMMAND"`
	Args        []string      `yaml:"args"         env:"ANALYZER_ARGS"`
}

// ConverterConfig holds defaults for the conversion pipelines.
// Command-line flags override them.
type ConverterConfig struct {
	MinLength     int    `yaml:"min_length"     env:"CONVERTER_MIN_LENGTH"     env-default:"2"`
	ProgressEvery int    `yaml:"progress_every" env:"CONVERTER_PROGRESS_EVERY" env-default:"1000"`
	Encoding      string `yaml:"encoding"       env:"CONVERTER_ENCODING"       env-default:"utf-8"`
	BlacklistPath string `yaml:"blacklist_path" env:"CONVERTER_BLACKLIST_PATH"`
}

// DatabaseConfig holds PostgreSQL connection settings. The database is
// optional: it is only used when a run is published or exported.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"4"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"0"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// Enabled reports whether a DSN is configured.
func (c DatabaseConfig) Enabled() bool { return c.DSN != "" }
