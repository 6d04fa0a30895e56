package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/RexarX/Contexto/internal/domain"
)

// LoadBlacklist reads a blacklist file: one word per line, blank lines and
// lines starting with '#' ignored. Words are cleaned with n, the normalizer
// of the run that consumes the list, so lookups use Entry.Word directly.
func LoadBlacklist(path string, n domain.Normalizer) (map[string]bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open blacklist: %w", err)
	}
	defer f.Close()

	words, err := ReadBlacklist(f, n)
	if err != nil {
		return nil, fmt.Errorf("read blacklist %s: %w", path, err)
	}
	return words, nil
}

// ReadBlacklist is the stream form of LoadBlacklist.
func ReadBlacklist(r io.Reader, n domain.Normalizer) (map[string]bool, error) {
	words := make(map[string]bool)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), " \t\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if w := n.Normalize(line).Word; w != "" {
			words[w] = true
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	return words, nil
}
