package converter

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/RexarX/Contexto/internal/domain"
)

//go:generate moq -out publisher_mock_test.go -rm . Publisher

// Publisher stores a finished run together with its entries.
type Publisher interface {
	SaveRun(ctx context.Context, run domain.Run, entries []domain.ProcessedEntry) error
}

// Publish records res as a new run read from source.
func Publish(ctx context.Context, p Publisher, source string, res *Result) (domain.Run, error) {
	run := domain.Run{
		ID:        uuid.New(),
		Kind:      res.Kind,
		Source:    source,
		Written:   res.Written,
		Skipped:   res.Skipped,
		CreatedAt: time.Now().UTC(),
	}
	if err := p.SaveRun(ctx, run, res.Entries); err != nil {
		return domain.Run{}, fmt.Errorf("publish run: %w", err)
	}
	return run, nil
}
