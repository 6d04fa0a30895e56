package dictfile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RexarX/Contexto/internal/domain"
)

func TestLoadBlacklist(t *testing.T) {
	t.Parallel()

	words, err := LoadBlacklist(testdataPath(t, "blacklist.txt"), domain.Normalizer{})
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"и": true, "ну": true}, words)
}

func TestReadBlacklist_CommentsAndCase(t *testing.T) {
	t.Parallel()

	words, err := ReadBlacklist(strings.NewReader("#comment\n  \nЁлка\t\nдом # not a comment\n"), domain.Normalizer{})
	require.NoError(t, err)
	assert.True(t, words["ёлка"])
	assert.True(t, words["дом # not a comment"])
	assert.False(t, words["#comment"])
	assert.Len(t, words, 2)
}

func TestLoadBlacklist_Missing(t *testing.T) {
	t.Parallel()

	_, err := LoadBlacklist("/nonexistent/blacklist.txt", domain.Normalizer{})
	require.Error(t, err)
}

func TestReadBlacklist_MatchesRunNormalizer(t *testing.T) {
	t.Parallel()

	const list = "Кое-как\nмолоко\u0301\n"

	tagging, err := ReadBlacklist(strings.NewReader(list), domain.NormalizerFor(domain.RunKindPostag))
	require.NoError(t, err)
	assert.Equal(t, map[string]bool{"коекак": true, "молоко": true}, tagging)

	// The tagging path sees the same words in the same form.
	n := domain.NormalizerFor(domain.RunKindPostag)
	assert.True(t, tagging[n.Normalize("кое-как!").Word])

	lemma, err := ReadBlacklist(strings.NewReader(list), domain.NormalizerFor(domain.RunKindLemmatize))
	require.NoError(t, err)
	assert.True(t, lemma["кое-как"])
}
