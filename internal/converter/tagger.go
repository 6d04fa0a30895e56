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

// Tagger rewrites entries as "word_TAG". Lines that already carry a tag
// are remapped without consulting the analyzer; unrecognized words are
// dropped.
type Tagger struct {
	log      *slog.Logger
	analyzer morph.Analyzer
	opts     Options
	norm     domain.Normalizer
}

// NewTagger creates a Tagger.
func NewTagger(log *slog.Logger, analyzer morph.Analyzer, opts Options) *Tagger {
	return &Tagger{
		log:      log,
		analyzer: analyzer,
		opts:     opts.withDefaults(),
		norm:     domain.NormalizerFor(domain.RunKindPostag),
	}
}

// Run converts doc. Analyzer errors abort the run.
func (t *Tagger) Run(ctx context.Context, doc *dictfile.Document) (*Result, error) {
	start := time.Now()
	res := &Result{Kind: domain.RunKindPostag, Total: len(doc.Lines)}

	var seen map[string]bool
	if t.opts.Dedupe {
		seen = make(map[string]bool)
	}

	err := eachLine(ctx, t.log, t.opts, doc.Lines, func(line string) error {
		e := t.norm.Normalize(line)
		if reason := skipReason(e, t.opts); reason != "" {
			t.log.Debug("skip", slog.String("line", e.Original), slog.String("reason", reason))
			res.Skipped++
			return nil
		}

		out := domain.ProcessedEntry{Original: e.Original, Word: e.Word, Lemma: e.Word}
		nativeTag := e.ExistingTag
		if !e.HasTag() {
			parses, err := t.analyzer.Analyze(ctx, e.Word)
			if err != nil {
				return fmt.Errorf("analyze %q: %w", e.Word, err)
			}
			p, ok := morph.SelectParse(parses, "")
			if !ok {
				t.log.Debug("skip", slog.String("line", e.Original), slog.String("reason", "unrecognized"))
				res.Unrecognized++
				res.Skipped++
				return nil
			}
			nativeTag = p.Tag
			if p.Lemma != "" {
				out.Lemma = domain.NormalizeText(p.Lemma)
			}
		}
		if tag, ok := domain.MapTag(nativeTag); ok {
			out.Tag = tag
		}

		if t.opts.AllowedTags != nil && !t.opts.AllowedTags[out.Tag] {
			t.log.Debug("skip", slog.String("line", e.Original), slog.String("reason", "tag not allowed"))
			res.Skipped++
			return nil
		}

		if seen != nil {
			key := out.TaggedWord()
			if seen[key] {
				res.Duplicates++
				res.Skipped++
				return nil
			}
			seen[key] = true
		}

		res.add(out)
		return nil
	})
	res.Duration = time.Since(start)
	if err != nil {
		return nil, err
	}

	t.log.Info("tagging finished",
		slog.Int("total", res.Total),
		slog.Int("written", res.Written),
		slog.Int("skipped", res.Skipped),
		slog.Int("unrecognized", res.Unrecognized),
		slog.Int("duplicates", res.Duplicates),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
