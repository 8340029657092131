package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/language"
)

func TestDIProcess_CleanTextScoresHundred(t *testing.T) {
	text := "We welcome engineers from every background. Remote work is fine."
	art, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": text}, nil)
	require.NoError(t, err)

	rev, ok := art.(*DIReview)
	require.True(t, ok)
	assert.Equal(t, core.ArtifactDIReview, rev.Kind())
	assert.Equal(t, 100, rev.OverallScore)
	assert.Empty(t, rev.FlaggedItems)
	assert.Equal(t, text, rev.OriginalText)
	require.NotEmpty(t, rev.ComplianceNotes)
	assert.Contains(t, rev.ComplianceNotes[0], "No biased")
}

func TestDIProcess_FlagsAndScoresPerCategory(t *testing.T) {
	art, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": "We need a rockstar ninja for our young team."}, nil)
	require.NoError(t, err)

	rev := art.(*DIReview)
	require.Len(t, rev.FlaggedItems, 3)
	assert.Less(t, rev.OverallScore, 100)

	byCat := map[language.Category]CategoryScore{}
	for _, cs := range rev.CategoryScores {
		byCat[cs.Category] = cs
	}
	assert.Equal(t, 2, byCat[language.CategoryGender].IssuesFound)
	assert.Equal(t, 70, byCat[language.CategoryGender].Score)
	assert.Equal(t, 1, byCat[language.CategoryAge].IssuesFound)
	assert.Equal(t, 85, byCat[language.CategoryAge].Score)
	assert.Equal(t, 100, byCat[language.CategoryDisability].Score)
}

func TestDIProcess_OriginalTextNeverModified(t *testing.T) {
	text := "Our young rockstar team wants you."
	art, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": text}, nil)
	require.NoError(t, err)

	rev := art.(*DIReview)
	assert.Equal(t, text, rev.OriginalText)
	require.NotEmpty(t, rev.ComplianceNotes)
	assert.Contains(t, rev.ComplianceNotes[0], "original text is unchanged")
}

func TestDIProcess_ManyIssuesExtraPenalty(t *testing.T) {
	few, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": "rockstar ninja guru hacker superhero dominant"}, nil)
	require.NoError(t, err)

	clean, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": "rockstar"}, nil)
	require.NoError(t, err)

	assert.Less(t, few.(*DIReview).OverallScore, clean.(*DIReview).OverallScore)
}

func TestDIProcess_EmptyTextFails(t *testing.T) {
	_, err := NewDIProcessor().Process(context.Background(),
		map[string]any{"job_ad_text": ""}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "job_ad_text")
}

func TestOverallScore_Bounds(t *testing.T) {
	scores := []CategoryScore{{Category: language.CategoryGender, Score: 0}}
	assert.GreaterOrEqual(t, overallScore(scores, 20), 0)
	assert.Equal(t, 100, overallScore(nil, 0))
}
