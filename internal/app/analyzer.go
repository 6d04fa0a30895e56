package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/RexarX/Contexto/internal/config"
	"github.com/RexarX/Contexto/internal/domain"
	"github.com/RexarX/Contexto/internal/morph"
	"github.com/RexarX/Contexto/internal/morph/execmorph"
	"github.com/RexarX/Contexto/internal/morph/httpmorph"
	"github.com/RexarX/Contexto/internal/morph/lexicon"
)

// NewAnalyzer builds the morphological analyzer selected by cfg.Kind.
// The caller owns the result and must Close it.
func NewAnalyzer(ctx context.Context, cfg config.AnalyzerConfig, logger *slog.Logger) (morph.Analyzer, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	switch cfg.Kind {
	case config.AnalyzerLexicon:
		if cfg.LexiconPath == "" {
			return nil, errors.New("analyzer: lexicon kind requires a lexicon path")
		}
		lex, err := lexicon.Load(cfg.LexiconPath)
		if err != nil {
			return nil, err
		}
		logger.Info("lexicon loaded", slog.String("path", cfg.LexiconPath), slog.Int("forms", lex.Len()))
		return lex, nil

	case config.AnalyzerHTTP:
		if cfg.URL == "" {
			return nil, errors.New("analyzer: http kind requires a url")
		}
		return httpmorph.NewClient(cfg.URL, cfg.Timeout, logger), nil

	case config.AnalyzerExec:
		if cfg.Command == "" {
			return nil, errors.New("analyzer: exec kind requires a command")
		}
		return execmorph.Start(cfg.Command, cfg.Args, logger)

	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownAnalyzer, cfg.Kind)
	}
}
