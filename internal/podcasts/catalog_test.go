package podcasts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ids(episodes []Episode) []string {
	out := make([]string, len(episodes))
	for i, e := range episodes {
		out[i] = e.ID
	}
	return out
}

func TestFilterByLanguage(t *testing.T) {
	c := NewCatalog(Episodes)

	assert.Equal(t, []string{"e1", "e2", "e3"}, ids(c.Filter(AllLanguages, "")))
	assert.Equal(t, []string{"e1", "e2"}, ids(c.Filter("en", "")))
	assert.Equal(t, []string{"e3"}, ids(c.Filter("hi", "")))
	assert.Empty(t, c.Filter("bn", ""))
}

func TestFilterByTitleIgnoresCase(t *testing.T) {
	c := NewCatalog(Episodes)

	assert.Equal(t, []string{"e1", "e3"}, ids(c.Filter(AllLanguages, "CONSENT")))
	assert.Equal(t, []string{"e2"}, ids(c.Filter("en", " boundaries ")))
	assert.Equal(t, []string{"e3"}, ids(c.Filter(AllLanguages, "सहमति")))
	assert.Empty(t, c.Filter("hi", "empathy"))
}

func TestParseLanguage(t *testing.T) {
	for _, in := range []string{"", "all", "ALL"} {
		got, err := ParseLanguage(in)
		require.NoError(t, err)
		assert.Equal(t, AllLanguages, got)
	}

	got, err := ParseLanguage("EN")
	require.NoError(t, err)
	assert.Equal(t, "en", got)

	_, err = ParseLanguage("not a language!")
	assert.Error(t, err)
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "English", Label("en"))
	assert.Equal(t, "हिन्दी", Label("hi"))
	assert.Equal(t, "বাংলা", Label("bn"))
	assert.Equal(t, "!!", Label("!!"))
}
