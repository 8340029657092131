package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
)

// bottleneckThreshold flags a stage when its conversion rate drops below
// this percentage.
const bottleneckThreshold = 25.0

// FunnelInput is the argument payload for creating a funnel report. Stages
// are ordered pipeline counts, widest first.
type FunnelInput struct {
	PositionTitle string       `json:"position_title"`
	Stages        []StageInput `json:"stages"`
	Notes         string       `json:"notes,omitempty"`
}

// StageInput is one pipeline stage's raw numbers.
type StageInput struct {
	Name        string `json:"name"`
	Count       int    `json:"count"`
	DaysInStage int    `json:"days_in_stage,omitempty"`
}

// Validate checks the input.
func (in FunnelInput) Validate() error {
	if strings.TrimSpace(in.PositionTitle) == "" {
		return fmt.Errorf("position_title is required")
	}
	if len(in.Stages) < 2 {
		return fmt.Errorf("at least 2 funnel stages are required, got %d", len(in.Stages))
	}
	for i, s := range in.Stages {
		if strings.TrimSpace(s.Name) == "" {
			return fmt.Errorf("stage %d has no name", i)
		}
		if s.Count < 0 {
			return fmt.Errorf("stage %q has negative count %d", s.Name, s.Count)
		}
	}
	return nil
}

// Stage is one computed funnel stage.
type Stage struct {
	Name           string  `json:"name"`
	Count          int     `json:"count"`
	ConversionRate float64 `json:"conversion_from_previous"`
	DaysInStage    int     `json:"days_in_stage,omitempty"`
}

// Bottleneck names a stage whose conversion rate falls under the threshold.
type Bottleneck struct {
	Stage          string  `json:"stage"`
	ConversionRate float64 `json:"conversion_rate"`
	SuggestedFix   string  `json:"suggested_fix"`
}

// FunnelReport is the funnel report artifact.
type FunnelReport struct {
	PositionTitle string       `json:"position_title"`
	Stages        []Stage      `json:"stages"`
	Bottlenecks   []Bottleneck `json:"bottlenecks"`
	Notes         string       `json:"notes,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Kind implements core.Artifact.
func (FunnelReport) Kind() core.ArtifactKind { return core.ArtifactFunnelReport }

// FunnelProcessor computes conversion rates and bottlenecks over pipeline
// numbers.
type FunnelProcessor struct{}

// NewFunnelProcessor returns a funnel report processor.
func NewFunnelProcessor() *FunnelProcessor { return &FunnelProcessor{} }

// Process implements dispatch.Processor.
func (p *FunnelProcessor) Process(ctx context.Context, args map[string]any, _ map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in FunnelInput
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("funnel report: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("funnel report: %w", err)
	}

	stages := make([]Stage, len(in.Stages))
	var bottlenecks []Bottleneck
	for i, s := range in.Stages {
		rate := 100.0
		if i > 0 {
			prev := in.Stages[i-1].Count
			if prev > 0 {
				rate = float64(s.Count) / float64(prev) * 100
			} else {
				rate = 0
			}
		}
		stages[i] = Stage{
			Name:           s.Name,
			Count:          s.Count,
			ConversionRate: round1(rate),
			DaysInStage:    s.DaysInStage,
		}
		if i > 0 && rate < bottleneckThreshold {
			bottlenecks = append(bottlenecks, Bottleneck{
				Stage:          s.Name,
				ConversionRate: round1(rate),
				SuggestedFix:   suggestFix(s.Name),
			})
		}
	}

	return &FunnelReport{
		PositionTitle: strings.TrimSpace(in.PositionTitle),
		Stages:        stages,
		Bottlenecks:   bottlenecks,
		Notes:         in.Notes,
		CreatedAt:     time.Now(),
	}, nil
}

// suggestFix offers a generic remediation per stage name.
func suggestFix(stage string) string {
	lower := strings.ToLower(stage)
	switch {
	case strings.Contains(lower, "appli"):
		return "Review the job ad reach and sourcing channels to widen the top of the funnel."
	case strings.Contains(lower, "screen"):
		return "Revisit screening criteria; they may be filtering out qualified candidates."
	case strings.Contains(lower, "interview"):
		return "Align interviewers on the assessment criteria and shorten time between interviews."
	case strings.Contains(lower, "offer"):
		return "Review offer competitiveness and speed; candidates may be accepting elsewhere."
	default:
		return "Investigate why candidates drop off at this stage."
	}
}

func round1(f float64) float64 {
	return float64(int(f*10+0.5)) / 10
}
