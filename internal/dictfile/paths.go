package dictfile

import (
	"path/filepath"
	"strings"
)

// DefaultOutputPath returns "<dir>/<stem>_processed<ext>" for an input path.
func DefaultOutputPath(input string) string {
	return withStemSuffix(input, "_processed")
}

// LemmaPath returns the companion lemma file for an output path:
// "<dir>/<stem>_lemmas<ext>".
func LemmaPath(output string) string {
	return withStemSuffix(output, "_lemmas")
}

func withStemSuffix(path, suffix string) string {
	dir, base := filepath.Split(path)
	ext := filepath.Ext(base)
	if ext == base {
		// ".words" is a stem, not an extension.
		ext = ""
	}
	stem := strings.TrimSuffix(base, ext)
	return dir + stem + suffix + ext
}
