package dictfile

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/RexarX/Contexto/internal/domain"
)

// maxLineSize bounds a single dictionary line.
const maxLineSize = 1 << 20

// headerRe accepts decimal counts with optional sign and single underscores
// between digits ("1_000").
var headerRe = regexp.MustCompile(`^[+-]?[0-9]+(?:_[0-9]+)*$`)

// ReaderOptions controls how a dictionary file is decoded.
type ReaderOptions struct {
	// Encoding is a WHATWG/IANA label ("utf-8", "windows-1251", "koi8-r").
	// Empty means UTF-8. A leading byte order mark always wins.
	Encoding string
}

// Document is a parsed dictionary file.
type Document struct {
	Path string
	// Lines holds the trimmed, non-blank entry lines. The count header is not included.
	Lines []string
	// Declared is the count from the header line, valid when HasHeader is set.
	Declared  int
	HasHeader bool
}

// CountMismatch reports whether the header count disagrees with the number of lines.
func (d *Document) CountMismatch() bool {
	return d.HasHeader && d.Declared != len(d.Lines)
}

// Read opens path and parses it with ReadFrom.
func Read(path string, opts ReaderOptions) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary: %w", err)
	}
	defer f.Close()

	doc, err := ReadFrom(f, opts)
	if err != nil {
		return nil, fmt.Errorf("read dictionary %s: %w", path, err)
	}
	doc.Path = path
	return doc, nil
}

// ReadFrom parses a dictionary stream. Blank lines are discarded. When the
// first remaining line is a decimal integer it is taken as the count header;
// otherwise every line is an entry.
func ReadFrom(r io.Reader, opts ReaderOptions) (*Document, error) {
	enc, err := LookupEncoding(opts.Encoding)
	if err != nil {
		return nil, err
	}

	sc := bufio.NewScanner(transform.NewReader(r, unicode.BOMOverride(enc.NewDecoder())))
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	var lines []string
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	doc := &Document{}
	if len(lines) > 0 {
		if n, ok := parseHeader(lines[0]); ok {
			doc.Declared = n
			doc.HasHeader = true
			lines = lines[1:]
		}
	}
	doc.Lines = lines

	return doc, nil
}

func parseHeader(s string) (int, bool) {
	if !headerRe.MatchString(s) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.ReplaceAll(s, "_", ""))
	if err != nil {
		return 0, false
	}
	return n, true
}

// LookupEncoding resolves an encoding label. Empty means UTF-8.
func LookupEncoding(label string) (encoding.Encoding, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return unicode.UTF8, nil
	}
	enc, err := htmlindex.Get(label)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownEncoding, label)
	}
	return enc, nil
}
