package calendar

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
)

func baseArgs() map[string]any {
	return map[string]any{
		"position_name":       "Backend Engineer",
		"hiring_manager_name": "Alex Berg",
		"recruiter_name":      "Sam",
		"location_type":       "teams",
		"interview_type":      "ta_screening",
		"duration_minutes":    30,
	}
}

func TestProcess_TeamsInvite(t *testing.T) {
	art, err := NewProcessor().Process(context.Background(), baseArgs(), nil)
	require.NoError(t, err)

	inv, ok := art.(*Invite)
	require.True(t, ok)
	assert.Equal(t, core.ArtifactCalendarInvite, inv.Kind())
	assert.Equal(t, "Screening Call: Backend Engineer - [Candidate Name]", inv.Subject)
	assert.Equal(t, CandidatePlaceholder, inv.CandidatePlaceholder)
	assert.Contains(t, inv.Body, "Hi [Candidate Name]")
	assert.Contains(t, inv.Body, "Microsoft Teams")
	assert.Contains(t, inv.Body, "30 minutes")
	assert.Contains(t, inv.Body, "Alex Berg")
	assert.Contains(t, inv.Body, "Sam")
}

func TestProcess_OnsiteInviteUsesOfficeAddress(t *testing.T) {
	args := baseArgs()
	args["location_type"] = "onsite"
	args["city"] = "Stockholm"
	args["interview_type"] = "hiring_manager"

	art, err := NewProcessor().Process(context.Background(), args, nil)
	require.NoError(t, err)

	inv := art.(*Invite)
	assert.Contains(t, inv.Subject, "Hiring Manager Interview")
	assert.Contains(t, inv.Body, "Solnavägen 3H")
	assert.NotContains(t, inv.Body, "Teams")
}

func TestProcess_OnsiteRequiresKnownCity(t *testing.T) {
	args := baseArgs()
	args["location_type"] = "onsite"

	_, err := NewProcessor().Process(context.Background(), args, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "city is required")

	args["city"] = "Berlin"
	_, err = NewProcessor().Process(context.Background(), args, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stockholm, copenhagen or oslo")
}

func TestProcess_OptionalFields(t *testing.T) {
	args := baseArgs()
	args["date_time"] = "2026-09-01 10:00"
	args["agenda"] = "Intro, case walkthrough, questions"

	art, err := NewProcessor().Process(context.Background(), args, nil)
	require.NoError(t, err)

	inv := art.(*Invite)
	assert.Contains(t, inv.Body, "When: 2026-09-01 10:00")
	assert.Contains(t, inv.Body, "case walkthrough")
}

func TestValidate_Rejections(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(map[string]any)
		wantErr string
	}{
		{"missing position", func(a map[string]any) { a["position_name"] = "" }, "position_name"},
		{"missing hiring manager", func(a map[string]any) { a["hiring_manager_name"] = " " }, "hiring_manager_name"},
		{"missing recruiter", func(a map[string]any) { a["recruiter_name"] = "" }, "recruiter_name"},
		{"bad location type", func(a map[string]any) { a["location_type"] = "phone" }, "location_type"},
		{"bad interview type", func(a map[string]any) { a["interview_type"] = "vibe_check" }, "interview_type"},
		{"zero duration", func(a map[string]any) { a["duration_minutes"] = 0 }, "duration_minutes"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := baseArgs()
			tc.mutate(args)
			_, err := NewProcessor().Process(context.Background(), args, nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
