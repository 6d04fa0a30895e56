package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/RexarX/Contexto/internal/adapter/postgres/dictentry"
	"github.com/RexarX/Contexto/internal/dictfile"
	"github.com/RexarX/Contexto/internal/domain"
)

//go:generate moq -out run_store_mock_test.go -rm . RunStore

// RunStore reads published runs.
type RunStore interface {
	GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error)
	ListRuns(ctx context.Context, limit int) ([]domain.Run, error)
	ListEntries(ctx context.Context, f dictentry.Filter) ([]domain.ProcessedEntry, error)
}

var _ RunStore = (*dictentry.Repo)(nil)

// ExportJob re-exports a published run as counted file(s).
type ExportJob struct {
	RunID  uuid.UUID
	Output string
	// Lemmas also writes the companion lemma file.
	Lemmas bool
	Tags   []domain.Tag
	Log    *slog.Logger
	Stdout io.Writer
}

// RunExport loads the run and its entries concurrently and writes them with
// the same writer the converters use.
func RunExport(ctx context.Context, store RunStore, job ExportJob) error {
	var (
		run     domain.Run
		entries []domain.ProcessedEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		run, err = store.GetRun(gctx, job.RunID)
		return err
	})
	g.Go(func() error {
		var err error
		entries, err = store.ListEntries(gctx, dictentry.Filter{RunID: job.RunID, Tags: job.Tags})
		return err
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("load run %s: %w", job.RunID, err)
	}

	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Line(run.Kind)
	}
	if err := dictfile.WriteCounted(job.Output, lines); err != nil {
		return err
	}

	job.Log.Info("run exported",
		slog.String("run_id", run.ID.String()),
		slog.String("kind", run.Kind.String()),
		slog.Int("entries", len(entries)),
		slog.String("output", job.Output),
	)
	fmt.Fprintf(job.Stdout, "Exported %d entries of run %s to %s\n", len(entries), run.ID, job.Output)

	if job.Lemmas {
		lemmaPath := dictfile.LemmaPath(job.Output)
		if err := dictfile.WriteLemmas(lemmaPath, entries); err != nil {
			return err
		}
		fmt.Fprintf(job.Stdout, "Lemma information written to %s\n", lemmaPath)
	}
	return nil
}

// ListRuns prints the most recent runs, one per line.
func ListRuns(ctx context.Context, store RunStore, limit int, w io.Writer) error {
	runs, err := store.ListRuns(ctx, limit)
	if err != nil {
		return fmt.Errorf("list runs: %w", err)
	}
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d written\t%d skipped\t%s\n",
			r.ID, r.Kind, r.CreatedAt.Format(time.RFC3339), r.Written, r.Skipped, r.Source)
	}
	return nil
}
