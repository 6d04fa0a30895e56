package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/RexarX/Contexto/internal/adapter/postgres"
	"github.com/RexarX/Contexto/internal/adapter/postgres/dictentry"
	"github.com/RexarX/Contexto/internal/config"
	"github.com/RexarX/Contexto/internal/converter"
	"github.com/RexarX/Contexto/internal/dictfile"
	"github.com/RexarX/Contexto/internal/domain"
)

// Compile-time interface assertion.
var _ converter.Publisher = (*dictentry.Repo)(nil)

// ConvertJob is one invocation of a converter tool.
type ConvertJob struct {
	Kind   domain.RunKind
	Input  string
	Output string
	Flags  *ConvertFlags
	Config *config.Config
	Log    *slog.Logger
	// Stdout receives the human-readable summary.
	Stdout io.Writer
}

// RunConvert reads the input dictionary, converts it and writes the counted
// output file(s). With Flags.Publish the run is also stored in PostgreSQL.
func RunConvert(ctx context.Context, job ConvertJob) error {
	cfg := job.Config
	logger := job.Log

	output := job.Output
	if output == "" {
		output = dictfile.DefaultOutputPath(job.Input)
	}

	doc, err := dictfile.Read(job.Input, dictfile.ReaderOptions{Encoding: cfg.Converter.Encoding})
	if err != nil {
		return err
	}
	logger.Info("dictionary loaded",
		slog.String("path", job.Input),
		slog.Int("lines", len(doc.Lines)),
		slog.Bool("has_header", doc.HasHeader),
	)
	if doc.CountMismatch() {
		logger.Warn("header count does not match number of lines",
			slog.Int("declared", doc.Declared),
			slog.Int("lines", len(doc.Lines)),
		)
	}

	opts := converter.Options{
		MinLength:     cfg.Converter.MinLength,
		Verbose:       job.Flags.Verbose,
		ProgressEvery: cfg.Converter.ProgressEvery,
		Dedupe:        job.Flags.Dedupe,
	}
	if cfg.Converter.BlacklistPath != "" {
		opts.Blacklist, err = dictfile.LoadBlacklist(cfg.Converter.BlacklistPath, domain.NormalizerFor(job.Kind))
		if err != nil {
			return err
		}
		logger.Info("blacklist loaded", slog.Int("words", len(opts.Blacklist)))
	}
	if opts.AllowedTags, err = domain.ParseTags(job.Flags.POS); err != nil {
		return err
	}

	analyzer, err := NewAnalyzer(ctx, cfg.Analyzer, logger)
	if err != nil {
		return fmt.Errorf("create analyzer: %w", err)
	}
	defer func() {
		if err := analyzer.Close(); err != nil {
			logger.Warn("close analyzer", slog.String("error", err.Error()))
		}
	}()

	var res *converter.Result
	switch job.Kind {
	case domain.RunKindLemmatize:
		res, err = converter.NewLemmatizer(logger, analyzer, opts).Run(ctx, doc)
	case domain.RunKindPostag:
		res, err = converter.NewTagger(logger, analyzer, opts).Run(ctx, doc)
	default:
		return fmt.Errorf("unknown run kind %q", job.Kind)
	}
	if err != nil {
		return fmt.Errorf("convert %s: %w", job.Input, err)
	}

	if err := dictfile.WriteCounted(output, res.Lines()); err != nil {
		return err
	}

	var lemmaPath string
	if job.Kind == domain.RunKindLemmatize {
		lemmaPath = dictfile.LemmaPath(output)
		if err := dictfile.WriteLemmas(lemmaPath, res.Entries); err != nil {
			return err
		}
	}

	if job.Flags.Publish {
		run, err := publish(ctx, cfg.Database, logger, job.Input, res)
		if err != nil {
			return err
		}
		logger.Info("run published", slog.String("run_id", run.ID.String()))
	}

	fmt.Fprintf(job.Stdout, "Conversion complete. %d words processed, %d words skipped.\n", res.Written, res.Skipped)
	if lemmaPath != "" {
		fmt.Fprintf(job.Stdout, "Lemma information written to %s\n", lemmaPath)
	}
	return nil
}

func publish(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger, source string, res *converter.Result) (domain.Run, error) {
	pool, err := postgres.NewPool(ctx, cfg)
	if err != nil {
		return domain.Run{}, err
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool, logger); err != nil {
		return domain.Run{}, err
	}

	return converter.Publish(ctx, dictentry.New(pool), source, res)
}
