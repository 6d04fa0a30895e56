package domain

import "strings"

// Tag is a part-of-speech category from the reduced output vocabulary.
type Tag string

const (
	TagNoun         Tag = "NOUN"
	TagVerb         Tag = "VERB"
	TagAdjective    Tag = "ADJ"
	TagAdverb       Tag = "ADV"
	TagPronoun      Tag = "PRON"
	TagAdposition   Tag = "ADP"
	TagConjunction  Tag = "CONJ"
	TagParticle     Tag = "PART"
	TagInterjection Tag = "INTJ"
	TagNumeral      Tag = "NUM"
)

func (t Tag) String() string { return string(t) }

func (t Tag) IsValid() bool {
	switch t {
	case TagNoun, TagVerb, TagAdjective, TagAdverb, TagPronoun,
		TagAdposition, TagConjunction, TagParticle, TagInterjection, TagNumeral:
		return true
	}
	return false
}

// tagMap maps analyzer-native POS codes (OpenCorpora/pymorphy2 and Universal
// Dependencies) to the reduced vocabulary. Keys are uppercase.
var tagMap = map[string]Tag{
	// Nouns
	"NOUN":  TagNoun,
	"PROPN": TagNoun,

	// Verbs, infinitives, gerunds, short participles, auxiliaries
	"VERB": TagVerb,
	"INFN": TagVerb,
	"GRND": TagVerb,
	"PRTS": TagVerb,
	"AUX":  TagVerb,

	// Full/short adjectives and full participles
	"ADJ":  TagAdjective,
	"ADJF": TagAdjective,
	"ADJS": TagAdjective,
	"PRTF": TagAdjective,

	// Adverbs, comparatives, predicatives
	"ADV":  TagAdverb,
	"ADVB": TagAdverb,
	"COMP": TagAdverb,
	"PRED": TagAdverb,

	"PRON": TagPronoun,
	"NPRO": TagPronoun,
	"DET":  TagPronoun,

	"ADP":  TagAdposition,
	"PREP": TagAdposition,

	"CONJ":  TagConjunction,
	"CCONJ": TagConjunction,
	"SCONJ": TagConjunction,

	"PART": TagParticle,
	"PRCL": TagParticle,

	"INTJ": TagInterjection,

	"NUM":  TagNumeral,
	"NUMR": TagNumeral,
}

// MapTag converts an analyzer-native POS code to the reduced vocabulary.
// The lookup is case-insensitive. Codes outside the table report ok=false
// and must be dropped by the caller.
func MapTag(native string) (Tag, bool) {
	tag, ok := tagMap[strings.ToUpper(strings.TrimSpace(native))]
	return tag, ok
}

// ParseTags parses a comma-separated list of tags ("NOUN,verb") into a set.
// Analyzer-native codes are accepted and remapped. An empty string or "ANY"
// returns a nil set, meaning every tag is allowed.
func ParseTags(raw string) (map[Tag]bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" || strings.EqualFold(raw, "any") {
		return nil, nil
	}

	set := make(map[Tag]bool)
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if strings.EqualFold(part, "any") {
			return nil, nil
		}
		tag, ok := MapTag(part)
		if !ok {
			return nil, NewValidationError("pos", "unknown tag "+part)
		}
		set[tag] = true
	}
	if len(set) == 0 {
		return nil, nil
	}
	return set, nil
}
