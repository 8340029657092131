package report

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talentahq/talenta/core"
)

func funnelArgs() map[string]any {
	return map[string]any{
		"position_title": "Backend Engineer",
		"stages": []any{
			map[string]any{"name": "Applications", "count": 120},
			map[string]any{"name": "Screening", "count": 60},
			map[string]any{"name": "Interviews", "count": 12},
			map[string]any{"name": "Offers", "count": 2},
		},
	}
}

func TestFunnelProcess_ComputesConversionRates(t *testing.T) {
	art, err := NewFunnelProcessor().Process(context.Background(), funnelArgs(), nil)
	require.NoError(t, err)

	rep, ok := art.(*FunnelReport)
	require.True(t, ok)
	assert.Equal(t, core.ArtifactFunnelReport, rep.Kind())
	assert.Equal(t, "Backend Engineer", rep.PositionTitle)

	require.Len(t, rep.Stages, 4)
	assert.Equal(t, 100.0, rep.Stages[0].ConversionRate)
	assert.Equal(t, 50.0, rep.Stages[1].ConversionRate)
	assert.Equal(t, 20.0, rep.Stages[2].ConversionRate)
	assert.InDelta(t, 16.7, rep.Stages[3].ConversionRate, 0.01)
}

func TestFunnelProcess_FlagsBottlenecksBelowThreshold(t *testing.T) {
	art, err := NewFunnelProcessor().Process(context.Background(), funnelArgs(), nil)
	require.NoError(t, err)

	rep := art.(*FunnelReport)
	require.Len(t, rep.Bottlenecks, 2)
	assert.Equal(t, "Interviews", rep.Bottlenecks[0].Stage)
	assert.Contains(t, rep.Bottlenecks[0].SuggestedFix, "interviewers")
	assert.Equal(t, "Offers", rep.Bottlenecks[1].Stage)
	assert.Contains(t, rep.Bottlenecks[1].SuggestedFix, "offer")
}

func TestFunnelProcess_ZeroPreviousStage(t *testing.T) {
	art, err := NewFunnelProcessor().Process(context.Background(), map[string]any{
		"position_title": "X",
		"stages": []any{
			map[string]any{"name": "Applications", "count": 0},
			map[string]any{"name": "Screening", "count": 0},
		},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0.0, art.(*FunnelReport).Stages[1].ConversionRate)
}

func TestFunnelProcess_Validation(t *testing.T) {
	_, err := NewFunnelProcessor().Process(context.Background(), map[string]any{
		"position_title": "X",
		"stages":         []any{map[string]any{"name": "Applications", "count": 10}},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least 2")

	_, err = NewFunnelProcessor().Process(context.Background(), map[string]any{
		"position_title": "X",
		"stages": []any{
			map[string]any{"name": "Applications", "count": 10},
			map[string]any{"name": "", "count": 5},
		},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no name")

	_, err = NewFunnelProcessor().Process(context.Background(), map[string]any{
		"position_title": "X",
		"stages": []any{
			map[string]any{"name": "Applications", "count": 10},
			map[string]any{"name": "Screening", "count": -1},
		},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative count")
}

func TestSuggestFix_Fallback(t *testing.T) {
	assert.Contains(t, suggestFix("Reference checks"), "drop off")
}
