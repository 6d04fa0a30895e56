package domain

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

var (
	// tagSuffixRe matches a trailing "_POS" tag: "word_VERB", "word_anytext_NOUN".
	tagSuffixRe = regexp.MustCompile(`_([A-Z]+)$`)

	// nonWordRe matches everything that is neither a word character nor
	// whitespace. Combining marks such as stress accents are removed too, so
	// input must be NFC-composed first to keep й and ё intact.
	nonWordRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]+`)
)

// NormalizeText prepares text for comparison:
//   - applies Unicode NFC composition (й, ё stay single code points)
//   - trims leading/trailing whitespace
//   - converts to lowercase
//   - compresses multiple spaces into one
//
// Hyphens and apostrophes are preserved.
func NormalizeText(text string) string {
	text = strings.TrimSpace(norm.NFC.String(text))
	if text == "" {
		return ""
	}
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	prevSpace := false
	for _, r := range text {
		if r == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SplitTag detects a trailing uppercase tag. For "полетели_VERB" it returns
// ("полетели", "VERB", true). The word is everything before the last
// underscore; the tag is returned verbatim.
func SplitTag(s string) (word, tag string, ok bool) {
	m := tagSuffixRe.FindStringSubmatch(s)
	if m == nil {
		return s, "", false
	}
	return s[:strings.LastIndex(s, "_")], m[1], true
}

// Normalizer turns raw dictionary lines into entries.
type Normalizer struct {
	// StripPunctuation removes non-word, non-space characters from untagged
	// lines before lowercasing. Tagged lines are never stripped.
	StripPunctuation bool
}

// Normalize splits off an existing tag and derives the clean word.
func (n Normalizer) Normalize(line string) Entry {
	line = strings.TrimSpace(line)
	e := Entry{Original: line}

	if word, tag, ok := SplitTag(line); ok {
		e.Word = NormalizeText(word)
		e.ExistingTag = tag
		return e
	}

	word := line
	if n.StripPunctuation {
		word = nonWordRe.ReplaceAllString(norm.NFC.String(word), "")
	}
	e.Word = NormalizeText(word)
	return e
}

// Length returns the length of the clean word in characters.
func (e Entry) Length() int {
	return utf8.RuneCountInString(e.Word)
}

// NormalizerFor returns the normalizer a run kind cleans its words with.
// Only the tagging path strips punctuation.
func NormalizerFor(kind RunKind) Normalizer {
	return Normalizer{StripPunctuation: kind == RunKindPostag}
}
