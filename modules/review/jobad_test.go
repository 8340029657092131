package review

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
)

const completeAd = `We are looking for a Backend Engineer to join our team.

Your tasks:
- Design and build services.

You bring solid experience with Go.

About us: our team values honest feedback.

Apply through our careers page. Our process has two interviews.`

func TestJobAdProcess_CompleteAdScoresWell(t *testing.T) {
	art, err := NewJobAdProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": completeAd}, nil)
	require.NoError(t, err)

	rev, ok := art.(*JobAdReview)
	require.True(t, ok)
	assert.Equal(t, core.ArtifactJobAdReview, rev.Kind())
	assert.Equal(t, 100, rev.StructureScore)
	assert.Equal(t, 100, rev.ComplianceScore)
	assert.Equal(t, completeAd, rev.OriginalText)

	require.Len(t, rev.Sections, 5)
	for _, s := range rev.Sections {
		assert.True(t, s.Present, s.Section)
	}
}

func TestJobAdProcess_MissingSectionsPenalized(t *testing.T) {
	art, err := NewJobAdProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": "Backend role open now."}, nil)
	require.NoError(t, err)

	rev := art.(*JobAdReview)
	assert.Equal(t, 0, rev.StructureScore)
	assert.Contains(t, rev.Recommendations, "Add a team and company section.")
}

func TestJobAdProcess_VagueTermsPenalized(t *testing.T) {
	art, err := NewJobAdProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": completeAd + "\nWe offer a fast-paced and cutting-edge workplace."}, nil)
	require.NoError(t, err)

	rev := art.(*JobAdReview)
	assert.Equal(t, 80, rev.ContentScore)
}

func TestJobAdProcess_BiasedLanguageLowersCompliance(t *testing.T) {
	art, err := NewJobAdProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": completeAd + "\nWe want a rockstar."}, nil)
	require.NoError(t, err)

	rev := art.(*JobAdReview)
	assert.Equal(t, 85, rev.ComplianceScore)

	var found bool
	for _, r := range rev.Recommendations {
		if strings.Contains(r, "rockstar") {
			found = true
		}
	}
	assert.True(t, found, "expected a replacement recommendation for the flagged term")
}

func TestJobAdProcess_EmptyTextFails(t *testing.T) {
	_, err := NewJobAdProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": "  "}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_ad_text")
}

func TestParseLanguage(t *testing.T) {
	assert.Equal(t, core.LanguageEnglish, parseLanguage(""))
	assert.Equal(t, core.LanguageEnglish, parseLanguage("fr"))
	assert.Equal(t, core.LanguageSwedish, parseLanguage("SV"))
	assert.Equal(t, core.LanguageGerman, parseLanguage("de"))
}
