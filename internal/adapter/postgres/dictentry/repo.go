// Package dictentry stores published conversion runs and their entries.
package dictentry

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/RexarX/Contexto/internal/adapter/postgres"
	"github.com/RexarX/Contexto/internal/domain"
)

const defaultListLimit = 50

var psql = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Filter narrows ListEntries. Zero fields are ignored.
type Filter struct {
	RunID uuid.UUID
	Tags  []domain.Tag
	Limit int
}

type runRow struct {
	ID        uuid.UUID `db:"id"`
	Kind      string    `db:"kind"`
	Source    string    `db:"source"`
	Written   int       `db:"written"`
	Skipped   int       `db:"skipped"`
	CreatedAt time.Time `db:"created_at"`
}

func (r runRow) toDomain() domain.Run {
	return domain.Run{
		ID:        r.ID,
		Kind:      domain.RunKind(r.Kind),
		Source:    r.Source,
		Written:   r.Written,
		Skipped:   r.Skipped,
		CreatedAt: r.CreatedAt,
	}
}

type entryRow struct {
	Position int     `db:"position"`
	Original string  `db:"original"`
	Word     string  `db:"word"`
	Tag      *string `db:"tag"`
	Lemma    string  `db:"lemma"`
}

func (r entryRow) toDomain() domain.ProcessedEntry {
	e := domain.ProcessedEntry{Original: r.Original, Word: r.Word, Lemma: r.Lemma}
	if r.Tag != nil {
		e.Tag = domain.Tag(*r.Tag)
	}
	return e
}

var runColumns = []string{"id", "kind", "source", "written", "skipped", "created_at"}

// Repo provides run persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
	tx *postgres.TxManager
}

// New creates a new dictentry repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db, tx: postgres.NewTxManager(db)}
}

// SaveRun inserts run and its entries in one transaction. Entries keep
// their order through the position column.
func (r *Repo) SaveRun(ctx context.Context, run domain.Run, entries []domain.ProcessedEntry) error {
	if run.ID == uuid.Nil {
		return domain.NewValidationError("id", "required")
	}
	if !run.Kind.IsValid() {
		return domain.NewValidationError("kind", fmt.Sprintf("unknown run kind %q", run.Kind))
	}

	return r.tx.RunInTx(ctx, func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, r.db)

		_, err := q.Exec(ctx,
			`INSERT INTO dictionary_runs (id, kind, source, written, skipped, created_at)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			run.ID, string(run.Kind), run.Source, run.Written, run.Skipped, run.CreatedAt,
		)
		if err != nil {
			return postgres.MapError(err, "run", run.ID)
		}

		if len(entries) == 0 {
			return nil
		}

		batch := &pgx.Batch{}
		for i, e := range entries {
			var tag *string
			if e.Tag != "" {
				s := string(e.Tag)
				tag = &s
			}
			batch.Queue(
				`INSERT INTO dictionary_entries (run_id, position, original, word, tag, lemma)
				 VALUES ($1, $2, $3, $4, $5, $6)`,
				run.ID, i, e.Original, e.Word, tag, e.Lemma,
			)
		}

		br := q.SendBatch(ctx, batch)
		for range entries {
			if _, err := br.Exec(); err != nil {
				_ = br.Close()
				return postgres.MapError(err, "run entries", run.ID)
			}
		}
		if err := br.Close(); err != nil {
			return fmt.Errorf("close batch: %w", err)
		}
		return nil
	})
}

// GetRun returns the run with the given id or domain.ErrNotFound.
func (r *Repo) GetRun(ctx context.Context, id uuid.UUID) (domain.Run, error) {
	query, args, err := psql.Select(runColumns...).
		From("dictionary_runs").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return domain.Run{}, fmt.Errorf("build get run query: %w", err)
	}

	var row runRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			err = pgx.ErrNoRows
		}
		return domain.Run{}, postgres.MapError(err, "run", id)
	}
	return row.toDomain(), nil
}

// ListRuns returns the most recent runs first.
func (r *Repo) ListRuns(ctx context.Context, limit int) ([]domain.Run, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}

	query, args, err := psql.Select(runColumns...).
		From("dictionary_runs").
		OrderBy("created_at DESC", "id").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list runs query: %w", err)
	}

	var rows []runRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}

	runs := make([]domain.Run, len(rows))
	for i, row := range rows {
		runs[i] = row.toDomain()
	}
	return runs, nil
}

// ListEntries returns the entries of a run in their original order.
func (r *Repo) ListEntries(ctx context.Context, f Filter) ([]domain.ProcessedEntry, error) {
	if f.RunID == uuid.Nil {
		return nil, domain.NewValidationError("run_id", "required")
	}

	sb := psql.Select("position", "original", "word", "tag", "lemma").
		From("dictionary_entries").
		Where(squirrel.Eq{"run_id": f.RunID}).
		OrderBy("position")

	if len(f.Tags) > 0 {
		tags := make([]string, len(f.Tags))
		for i, t := range f.Tags {
			tags[i] = string(t)
		}
		sb = sb.Where(squirrel.Eq{"tag": tags})
	}
	if f.Limit > 0 {
		sb = sb.Limit(uint64(f.Limit))
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list entries query: %w", err)
	}

	var rows []entryRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list entries of run %s: %w", f.RunID, err)
	}

	entries := make([]domain.ProcessedEntry, len(rows))
	for i, row := range rows {
		entries[i] = row.toDomain()
	}
	return entries, nil
}
