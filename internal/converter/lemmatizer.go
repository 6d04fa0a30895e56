package converter

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/RexarX/Contexto/internal/dictfile"
	"github.com/RexarX/Contexto/internal/domain"
	"github.com/RexarX/Contexto/internal/morph"
)

//go:generate moq -out analyzer_mock_test.go -pkg converter -rm ../morph Analyzer:AnalyzerMock

// Lemmatizer keeps every original entry and resolves a lemma for each.
// Words the analyzer does not recognize pass through with the clean word
// as their lemma.
type Lemmatizer struct {
	log      *slog.Logger
	analyzer morph.Analyzer
	opts     Options
	norm     domain.Normalizer
}

// NewLemmatizer creates a Lemmatizer.
func NewLemmatizer(log *slog.Logger, analyzer morph.Analyzer, opts Options) *Lemmatizer {
	return &Lemmatizer{
		log:      log,
		analyzer: analyzer,
		opts:     opts.withDefaults(),
		norm:     domain.NormalizerFor(domain.RunKindLemmatize),
	}
}

// Run converts doc. Analyzer errors abort the run.
func (l *Lemmatizer) Run(ctx context.Context, doc *dictfile.Document) (*Result, error) {
	start := time.Now()
	res := &Result{Kind: domain.RunKindLemmatize, Total: len(doc.Lines)}

	err := eachLine(ctx, l.log, l.opts, doc.Lines, func(line string) error {
		e := l.norm.Normalize(line)
		if reason := skipReason(e, l.opts); reason != "" {
			l.log.Debug("skip", slog.String("line", e.Original), slog.String("reason", reason))
			res.Skipped++
			return nil
		}

		parses, err := l.analyzer.Analyze(ctx, e.Word)
		if err != nil {
			return fmt.Errorf("analyze %q: %w", e.Word, err)
		}

		out := domain.ProcessedEntry{Original: e.Original, Word: e.Word, Lemma: e.Word}
		p, ok := morph.SelectParse(parses, e.ExistingTag)
		if !ok {
			res.Unrecognized++
			res.add(out)
			return nil
		}
		if p.Lemma != "" {
			out.Lemma = domain.NormalizeText(p.Lemma)
		}
		if tag, ok := domain.MapTag(p.Tag); ok {
			out.Tag = tag
		}
		res.add(out)
		return nil
	})
	res.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	l.log.Info("lemmatization finished",
		slog.Int("total", res.Total),
		slog.Int("written", res.Written),
		slog.Int("skipped", res.Skipped),
		slog.Int("unrecognized", res.Unrecognized),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
