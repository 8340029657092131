package screening

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/modules/profile"
)

func testProfile() *profile.Profile {
	return &profile.Profile{
		PositionTitle:           "Backend Engineer",
		MustHaveSkills:          []string{"Go", "Kubernetes", "PostgreSQL", "gRPC"},
		PrimaryResponsibilities: []string{"Design backend services"},
	}
}

func prereqs() map[core.ArtifactKind]core.Artifact {
	return map[core.ArtifactKind]core.Artifact{
		core.ArtifactRequirementProfile: testProfile(),
	}
}

func TestProcess_TAVariant(t *testing.T) {
	art, err := NewProcessor(VariantTA).Process(context.Background(), nil, prereqs())
	require.NoError(t, err)

	tmpl, ok := art.(*Template)
	require.True(t, ok)
	assert.Equal(t, core.ArtifactTAScreeningTemplate, tmpl.Kind())
	assert.Equal(t, VariantTA, tmpl.Variant)
	assert.Equal(t, "Backend Engineer", tmpl.PositionTitle)
	assert.Contains(t, tmpl.RoleIntro, "design backend services")

	require.Len(t, tmpl.SkillSections, 4)
	assert.Equal(t, "Go", tmpl.SkillSections[0].Skill)
	assert.Len(t, tmpl.SkillSections[0].Questions, 1)

	assert.Len(t, tmpl.MotivationQuestions, 2)
	assert.Len(t, tmpl.PracticalQuestions, 3)
}

func TestProcess_HMVariantDigsDeeper(t *testing.T) {
	art, err := NewProcessor(VariantHM).Process(context.Background(), nil, prereqs())
	require.NoError(t, err)

	tmpl := art.(*Template)
	assert.Equal(t, core.ArtifactHMScreeningTemplate, tmpl.Kind())
	assert.Len(t, tmpl.MotivationQuestions, 3)
	for _, sec := range tmpl.SkillSections {
		assert.Len(t, sec.Questions, 2)
		assert.NotEmpty(t, sec.Questions[0].FollowUps)
	}
	assert.Len(t, tmpl.PracticalQuestions, 2)
}

func TestProcess_FocusShowsInIntro(t *testing.T) {
	art, err := NewProcessor(VariantTA).Process(context.Background(),
		map[string]any{"focus": "system design depth"}, prereqs())
	require.NoError(t, err)
	assert.Contains(t, art.(*Template).RoleIntro, "system design depth")
}

func TestProcess_MissingProfileFails(t *testing.T) {
	_, err := NewProcessor(VariantTA).Process(context.Background(), nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "requirement profile")
}
