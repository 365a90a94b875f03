package podcasts

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
)

// AllLanguages selects every episode regardless of language.
const AllLanguages = "all"

type Episode struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	Lang       string `json:"lang"`
	Src        string `json:"src"`
	Transcript string `json:"transcript"`
}

type EpisodeView struct {
	Episode
	LangLabel string `json:"lang_label"`
}

type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// Languages are the codes listeners can filter by, in menu order.
var Languages = []string{"en", "hi", "bn", "es"}

var Episodes = []Episode{
	{
		ID:         "e1",
		Title:      "Consent, clearly explained",
		Lang:       "en",
		Src:        "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-1.mp3",
		Transcript: "Consent is an ongoing conversation. It starts with asking, continues with listening, and includes the freedom to change your mind.",
	},
	{
		ID:         "e2",
		Title:      "Boundaries and empathy",
		Lang:       "en",
		Src:        "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-2.mp3",
		Transcript: "Boundaries help us protect our energy and respect others. Empathy is practicing curiosity about another’s experience.",
	},
	{
		ID:         "e3",
		Title:      "सहमति को समझना (Consent in Hindi)",
		Lang:       "hi",
		Src:        "https://www.soundhelix.com/examples/mp3/SoundHelix-Song-3.mp3",
		Transcript: "सहमति का अर्थ है स्पष्ट, स्वेच्छा से दिया गया हाँ। यह किसी भी समय वापस लिया जा सकता है।",
	},
}

type Catalog struct {
	episodes []Episode
}

func NewCatalog(episodes []Episode) *Catalog {
	return &Catalog{episodes: episodes}
}

// ParseLanguage canonicalizes a language filter. Empty and "all" select
// every language.
func ParseLanguage(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" || strings.EqualFold(code, AllLanguages) {
		return AllLanguages, nil
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", err
	}
	return tag.String(), nil
}

// Filter keeps the episodes in lang whose title contains query, ignoring case.
// lang must already be canonical (see ParseLanguage).
func (c *Catalog) Filter(lang, query string) []Episode {
	fold := cases.Fold()
	needle := fold.String(strings.TrimSpace(query))

	out := []Episode{}
	for _, e := range c.episodes {
		if lang != AllLanguages && lang != "" && e.Lang != lang {
			continue
		}
		if !strings.Contains(fold.String(e.Title), needle) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// Label names a language in that language, e.g. "hi" is "हिन्दी".
func Label(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	if name := display.Self.Name(tag); name != "" {
		return name
	}
	return code
}

func views(episodes []Episode) []EpisodeView {
	out := make([]EpisodeView, len(episodes))
	for i, e := range episodes {
		out[i] = EpisodeView{Episode: e, LangLabel: Label(e.Lang)}
	}
	return out
}
