package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
)

func TestScan_FindsGenderedJargon(t *testing.T) {
	findings := Scan("We need a rockstar developer and a ninja marketer.", core.LanguageEnglish)
	require.Len(t, findings, 2)

	terms := []string{findings[0].Term, findings[1].Term}
	assert.Contains(t, terms, "rockstar")
	assert.Contains(t, terms, "ninja")
	for _, f := range findings {
		assert.Equal(t, CategoryGender, f.Category)
		assert.Equal(t, SeverityHigh, f.Severity)
		assert.NotEmpty(t, f.Alternatives)
	}
}

func TestScan_OrderedByPosition(t *testing.T) {
	findings := Scan("Our young team wants a rockstar with perfect english.", core.LanguageEnglish)
	require.GreaterOrEqual(t, len(findings), 3)
	for i := 1; i < len(findings); i++ {
		assert.GreaterOrEqual(t, findings[i].Position, findings[i-1].Position)
	}
}

func TestScan_WordBoundaries(t *testing.T) {
	assert.Empty(t, Scan("younger colleagues mentor everyone", core.LanguageEnglish))
	assert.Len(t, Scan("a young colleague", core.LanguageEnglish), 1)
}

func TestScan_MultibyteLettersAreWordCharacters(t *testing.T) {
	// å/ä/ö neighbors must not count as word boundaries.
	assert.Empty(t, Scan("ådominant profil önskas", core.LanguageSwedish))
	assert.Empty(t, Scan("en dominantä profil", core.LanguageSwedish))
	assert.Len(t, Scan("en dominant säljare", core.LanguageSwedish), 1)
}

func TestScan_StableOrderForOverlappingTerms(t *testing.T) {
	// "young" and "young and dynamic" both match at the same offset; the
	// output order must not depend on map iteration.
	want := Scan("We want a young and dynamic person.", core.LanguageEnglish)
	require.Len(t, want, 2)
	assert.Equal(t, "young and dynamic", want[0].Term)
	assert.Equal(t, "young", want[1].Term)

	for i := 0; i < 100; i++ {
		got := Scan("We want a young and dynamic person.", core.LanguageEnglish)
		require.Equal(t, want, got)
	}
}

func TestScan_CaseInsensitive(t *testing.T) {
	findings := Scan("Must be a NINJA.", core.LanguageEnglish)
	require.Len(t, findings, 1)
	assert.Equal(t, "ninja", findings[0].Term)
}

func TestScan_SwedishPool(t *testing.T) {
	findings := Scan("Vi söker en aggressiv säljare.", core.LanguageSwedish)
	require.Len(t, findings, 1)
	assert.Equal(t, "aggressiv", findings[0].Term)
	assert.Equal(t, CategoryGender, findings[0].Category)
}

func TestScan_GermanTitlesWithoutNotation(t *testing.T) {
	findings := Scan("Wir suchen einen Entwickler für unser Team.", core.LanguageGerman)
	var titles []Finding
	for _, f := range findings {
		if f.Category == CategoryGermanTitle {
			titles = append(titles, f)
		}
	}
	require.Len(t, titles, 1)
	assert.Equal(t, "entwickler", titles[0].Term)
}

func TestScan_GermanTitlesWithNotationPass(t *testing.T) {
	findings := Scan("Wir suchen einen Entwickler (m/w/d) für unser Team.", core.LanguageGerman)
	for _, f := range findings {
		assert.NotEqual(t, CategoryGermanTitle, f.Category)
	}
}

func TestScan_UnknownLanguageEmpty(t *testing.T) {
	assert.Empty(t, Scan("rockstar ninja young", core.Language("fr")))
}

func TestScan_CleanTextEmpty(t *testing.T) {
	assert.Empty(t, Scan("We welcome skilled engineers from every background.", core.LanguageEnglish))
}

func TestReadability_CleanShortText(t *testing.T) {
	score, notes := Readability("We build networks. Join us.")
	assert.Equal(t, 100, score)
	assert.Empty(t, notes)
}

func TestReadability_LongSentencePenalty(t *testing.T) {
	long := "This sentence keeps going on and on with far too many words because it was written without any concern for the poor reader who has to parse every single clause in one breath."
	score, notes := Readability(long)
	assert.Less(t, score, 100)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "25 words")
}

func TestReadability_JargonPenalty(t *testing.T) {
	score, notes := Readability("We leverage synergy across our scalable ecosystem.")
	assert.Equal(t, 90, score)
	require.Len(t, notes, 1)
	assert.Contains(t, notes[0], "jargon")
}

func TestReadability_EmptyText(t *testing.T) {
	score, notes := Readability("")
	assert.Equal(t, 100, score)
	assert.Empty(t, notes)
}
