package config

import (
	"fmt"
	"strings"
)

// Analyzer kinds accepted in AnalyzerConfig.Kind.
const (
	AnalyzerLexicon = "lexicon"
	AnalyzerHTTP    = "http"
	AnalyzerExec    = "exec"
)

// Validate performs business-rule validation on the loaded configuration.
// Load calls it automatically; CLIs call it again after applying flag overrides.
func (c *Config) Validate() error {
	if c.Converter.MinLength < 0 {
		return fmt.Errorf("converter.min_length must be >= 0 (got %d)", c.Converter.MinLength)
	}
	if c.Converter.ProgressEvery <= 0 {
		return fmt.Errorf("converter.progress_every must be > 0 (got %d)", c.Converter.ProgressEvery)
	}

	c.Analyzer.Kind = strings.ToLower(strings.TrimSpace(c.Analyzer.Kind))
	switch c.Analyzer.Kind {
	case AnalyzerLexicon, AnalyzerHTTP, AnalyzerExec:
	default:
		return fmt.Errorf("analyzer.kind must be one of lexicon, http, exec (got %q)", c.Analyzer.Kind)
	}
	if c.Analyzer.Timeout <= 0 {
		return fmt.Errorf("analyzer.timeout must be > 0 (got %v)", c.Analyzer.Timeout)
	}

	if c.Database.Enabled() && c.Database.MaxConns <= 0 {
		return fmt.Errorf("database.max_conns must be > 0 (got %d)", c.Database.MaxConns)
	}

	return nil
}
