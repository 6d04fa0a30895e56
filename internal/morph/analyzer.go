// Package morph defines the contract between the converters and an external
// morphological analyzer. Implementations live in sub-packages.
package morph

import (
	"context"

	"github.com/RexarX/Contexto/internal/domain"
)

// Parse is one morphological reading of a word.
type Parse struct {
	// Tag is the analyzer-native part-of-speech code ("INFN", "NOUN", ...).
	Tag   string  `json:"tag"`
	Lemma string  `json:"lemma"`
	Score float64 `json:"score,omitempty"`
}

// Analyzer returns ranked parses for a cleaned word, most likely first.
// Zero parses with a nil error means the word was not recognized.
type Analyzer interface {
	Analyze(ctx context.Context, word string) ([]Parse, error)
	Close() error
}

// SelectParse picks the parse to use for an entry. With an existing tag the
// first parse whose remapped tag matches the remapped existing tag wins;
// otherwise, or when nothing matches, the top-ranked parse is used.
func SelectParse(parses []Parse, existingTag string) (Parse, bool) {
	if len(parses) == 0 {
		return Parse{}, false
	}
	if want, ok := domain.MapTag(existingTag); ok {
		for _, p := range parses {
			if got, ok := domain.MapTag(p.Tag); ok && got == want {
				return p, true
			}
		}
	}
	return parses[0], true
}
