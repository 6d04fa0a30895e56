package domain

import (
	"time"

	"github.com/google/uuid"
)

// RunKind identifies which converter produced a run.
type RunKind string

const (
	RunKindLemmatize RunKind = "lemmatize"
	RunKindPostag    RunKind = "postag"
)

func (k RunKind) String() string { return string(k) }

func (k RunKind) IsValid() bool {
	switch k {
	case RunKindLemmatize, RunKindPostag:
		return true
	}
	return false
}

// Run describes one published conversion.
type Run struct {
	ID        uuid.UUID
	Kind      RunKind
	Source    string
	Written   int
	Skipped   int
	CreatedAt time.Time
}
