package domain

// Entry is a single dictionary line after normalization.
type Entry struct {
	// Original is the trimmed input line, tag suffix included.
	Original string
	// Word is the clean lowercased form used for analysis.
	Word string
	// ExistingTag is the tag recovered from a "word_POS" line, verbatim.
	ExistingTag string
}

// HasTag reports whether the input line carried a tag suffix.
func (e Entry) HasTag() bool { return e.ExistingTag != "" }

// ProcessedEntry is the outcome of converting one Entry.
type ProcessedEntry struct {
	Original string
	Word     string
	// Tag is empty when the word has no tag in the reduced vocabulary.
	Tag   Tag
	Lemma string
}

// TaggedWord renders "word_TAG", or just "word" when no tag was assigned.
func (p ProcessedEntry) TaggedWord() string {
	if p.Tag == "" {
		return p.Word
	}
	return p.Word + "_" + string(p.Tag)
}

// Line renders the entry as it appears in the main output file of a run.
func (p ProcessedEntry) Line(kind RunKind) string {
	if kind == RunKindPostag {
		return p.TaggedWord()
	}
	return p.Original
}

// LemmaLine renders "original lemma" with exactly one space.
func (p ProcessedEntry) LemmaLine() string {
	return p.Original + " " + p.Lemma
}
