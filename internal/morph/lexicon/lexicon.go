// Package lexicon implements an in-memory morphological analyzer backed by a
// tab-separated lexicon file, one reading per line:
//
//	form<TAB>lemma<TAB>TAG[<TAB>score[<TAB>grammemes...]]
//
// Lines starting with '#' and blank lines are ignored. Readings of the same
// form are ranked by score (descending), ties keep file order. A missing or
// non-numeric score counts as 0.
package lexicon

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"github.com/RexarX/Contexto/internal/domain"
	"github.com/RexarX/Contexto/internal/morph"
)

const maxLineSize = 1 << 20

// Lexicon is a read-only form → parses index.
type Lexicon struct {
	forms map[string][]morph.Parse
}

var _ morph.Analyzer = (*Lexicon)(nil)

// Load reads a lexicon file.
func Load(path string) (*Lexicon, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open lexicon: %w", err)
	}
	defer f.Close()

	lex, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse lexicon %s: %w", path, err)
	}
	return lex, nil
}

// Parse reads a lexicon stream.
func Parse(r io.Reader) (*Lexicon, error) {
	lex := &Lexicon{forms: make(map[string][]morph.Parse)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, "\t")
		if len(fields) < 3 {
			return nil, fmt.Errorf("line %d: want at least 3 tab-separated fields, got %d", lineNo, len(fields))
		}

		form := domain.NormalizeText(fields[0])
		if form == "" {
			return nil, fmt.Errorf("line %d: empty form", lineNo)
		}

		p := morph.Parse{
			Lemma: strings.TrimSpace(fields[1]),
			Tag:   strings.TrimSpace(fields[2]),
		}
		if len(fields) > 3 {
			if score, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64); err == nil {
				p.Score = score
			}
		}
		lex.forms[form] = append(lex.forms[form], p)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	for form, parses := range lex.forms {
		slices.SortStableFunc(parses, func(a, b morph.Parse) int {
			switch {
			case a.Score > b.Score:
				return -1
			case a.Score < b.Score:
				return 1
			}
			return 0
		})
		lex.forms[form] = parses
	}

	return lex, nil
}

// Analyze returns a copy of the readings for word. Unknown words yield no parses.
func (l *Lexicon) Analyze(ctx context.Context, word string) ([]morph.Parse, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	parses := l.forms[domain.NormalizeText(word)]
	if len(parses) == 0 {
		return nil, nil
	}
	return slices.Clone(parses), nil
}

// Len returns the number of distinct forms.
func (l *Lexicon) Len() int { return len(l.forms) }

// Close is a no-op.
func (l *Lexicon) Close() error { return nil }
