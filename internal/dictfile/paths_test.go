package dictfile

import (
	"path/filepath"
	"testing"
)

func TestDefaultOutputPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"words.txt", "words_processed.txt"},
		{filepath.Join("data", "dict", "words.txt"), filepath.Join("data", "dict", "words_processed.txt")},
		{"words", "words_processed"},
		{"archive.tar.gz", "archive.tar_processed.gz"},
		{".words", ".words_processed"},
	}
	for _, tt := range tests {
		if got := DefaultOutputPath(tt.input); got != tt.want {
			t.Errorf("DefaultOutputPath(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestLemmaPath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		output string
		want   string
	}{
		{"words_processed.txt", "words_processed_lemmas.txt"},
		{filepath.Join("out", "ru.dict"), filepath.Join("out", "ru_lemmas.dict")},
		{"plain", "plain_lemmas"},
	}
	for _, tt := range tests {
		if got := LemmaPath(tt.output); got != tt.want {
			t.Errorf("LemmaPath(%q) = %q, want %q", tt.output, got, tt.want)
		}
	}
}
