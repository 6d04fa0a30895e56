package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/RexarX/Contexto/internal/domain"
)

// WriteCounted writes lines to path as a counted file, creating parent
// directories as needed. An existing file is truncated.
func WriteCounted(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output file: %w", err)
	}

	if err := WriteCountedTo(f, lines); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

// WriteCountedTo writes the count line followed by one line per entry.
func WriteCountedTo(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%d\n", len(lines)); err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteLemmas writes the companion lemma file: the count line followed by
// "original lemma" per entry.
func WriteLemmas(path string, entries []domain.ProcessedEntry) error {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.LemmaLine()
	}
	return WriteCounted(path, lines)
}
