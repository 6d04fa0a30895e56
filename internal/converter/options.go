// Package converter implements the two dictionary conversion pipelines:
// the lemma path (Lemmatizer) and the tagging path (Tagger).
package converter

import (
	"context"
	"log/slog"
	"time"

	"github.com/RexarX/Contexto/internal/domain"
)

const defaultProgressEvery = 1000

// Options controls a conversion run.
type Options struct {
	// MinLength is the minimum clean word length in characters.
	MinLength int
	// Verbose enables progress logging every ProgressEvery lines.
	Verbose       bool
	ProgressEvery int
	// Blacklist holds normalized words that are always skipped.
	Blacklist map[string]bool
	// AllowedTags limits the tagging path to these tags. Nil allows all,
	// including untagged words.
	AllowedTags map[domain.Tag]bool
	// Dedupe drops repeated output lines on the tagging path.
	Dedupe bool
}

func (o Options) withDefaults() Options {
	if o.ProgressEvery <= 0 {
		o.ProgressEvery = defaultProgressEvery
	}
	if o.MinLength < 0 {
		o.MinLength = 0
	}
	return o
}

// Result is the outcome of a conversion run.
// Total always equals Written + Skipped.
type Result struct {
	Kind    domain.RunKind
	Entries []domain.ProcessedEntry

	Total   int
	Written int
	// Skipped counts every input line that produced no output entry.
	Skipped int
	// Unrecognized counts words the analyzer returned no parse for.
	// On the tagging path they are also counted in Skipped.
	Unrecognized int
	// Duplicates counts lines dropped by Dedupe, included in Skipped.
	Duplicates int
	Duration   time.Duration
}

// Lines renders the main output file body.
func (r *Result) Lines() []string {
	lines := make([]string, len(r.Entries))
	for i, e := range r.Entries {
		lines[i] = e.Line(r.Kind)
	}
	return lines
}

func (r *Result) add(e domain.ProcessedEntry) {
	r.Entries = append(r.Entries, e)
	r.Written++
}

// skipReason reports why an entry is dropped before analysis, or "" to keep it.
func skipReason(e domain.Entry, opts Options) string {
	switch {
	case e.Word == "":
		return "empty"
	case e.Length() < opts.MinLength:
		return "too short"
	case opts.Blacklist[e.Word]:
		return "blacklisted"
	}
	return ""
}

// eachLine iterates lines, checking ctx between entries and logging progress.
func eachLine(ctx context.Context, log *slog.Logger, opts Options, lines []string, fn func(line string) error) error {
	for i, line := range lines {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := fn(line); err != nil {
			return err
		}
		if opts.Verbose && (i+1)%opts.ProgressEvery == 0 {
			log.Info("progress", slog.Int("processed", i+1), slog.Int("total", len(lines)))
		}
	}
	return nil
}
