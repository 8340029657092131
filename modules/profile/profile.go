// Package profile implements the requirement profile operation. The profile
// is the foundational artifact most other operations build on: it captures
// the must-have skills, responsibilities and role details extracted from
// recruiter-provided notes, and nothing that was not provided.
package profile

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
)

// RequiredMustHaves is the exact number of must-have skills a profile
// carries. Fewer extractable skills is a domain error, never padding.
const RequiredMustHaves = 4

// Input is the argument payload for creating a requirement profile. All
// content fields are recruiter-provided free text.
type Input struct {
	PositionTitle      string `json:"position_title"`
	StartupNotes       string `json:"startup_notes"`
	OldJobAd           string `json:"old_job_ad,omitempty"`
	HiringManagerInput string `json:"hiring_manager_input,omitempty"`
}

// Validate checks the input before any extraction work.
func (in Input) Validate() error {
	if strings.TrimSpace(in.PositionTitle) == "" {
		return fmt.Errorf("position_title is required")
	}
	if strings.TrimSpace(in.StartupNotes) == "" {
		return fmt.Errorf("startup_notes is required")
	}
	return nil
}

// Profile is the requirement profile artifact.
type Profile struct {
	PositionTitle           string    `json:"position_title"`
	MustHaveSkills          []string  `json:"must_have_skills"`
	PrimaryResponsibilities []string  `json:"primary_responsibilities"`
	GoodToHaves             []string  `json:"good_to_haves,omitempty"`
	SoftSkills              []string  `json:"soft_skills,omitempty"`
	CreatedAt               time.Time `json:"created_at"`
}

// Kind implements core.Artifact.
func (Profile) Kind() core.ArtifactKind { return core.ArtifactRequirementProfile }

// Processor builds requirement profiles from recruiter notes.
type Processor struct{}

// NewProcessor returns a profile processor.
func NewProcessor() *Processor { return &Processor{} }

// Process implements dispatch.Processor. Extraction is purely lexical over
// the provided sources; content never gets invented to fill gaps.
func (p *Processor) Process(ctx context.Context, args map[string]any, _ map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in Input
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("requirement profile: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("requirement profile: %w", err)
	}

	combined := combineSources(in)
	skills := extractMustHaves(combined)
	if len(skills) < RequiredMustHaves {
		return nil, fmt.Errorf(
			"requirement profile: found only %d must-have skills, need %d; please provide more detail about required skills",
			len(skills), RequiredMustHaves,
		)
	}

	return &Profile{
		PositionTitle:           strings.TrimSpace(in.PositionTitle),
		MustHaveSkills:          skills[:RequiredMustHaves],
		PrimaryResponsibilities: extractResponsibilities(combined),
		GoodToHaves:             extractByMarkers(combined, goodToHaveMarkers),
		SoftSkills:              extractByMarkers(combined, softSkillMarkers),
		CreatedAt:               time.Now(),
	}, nil
}

// combineSources joins the provided text sources, startup notes first.
func combineSources(in Input) string {
	parts := []string{in.StartupNotes}
	if in.OldJobAd != "" {
		parts = append(parts, in.OldJobAd)
	}
	if in.HiringManagerInput != "" {
		parts = append(parts, in.HiringManagerInput)
	}
	return strings.Join(parts, "\n")
}

var (
	bulletLine = regexp.MustCompile(`^\s*(?:[-*•]|\d+[.)])\s*(.+)$`)

	skillMarkers       = []string{"must have", "required", "requirement", "skill", "experience with", "experience in", "proficient", "knowledge of", "expertise"}
	responsibilityMark = []string{"responsib", "will ", "task", "duties", "role involves", "day-to-day"}
	goodToHaveMarkers  = []string{"good to have", "nice to have", "plus", "bonus", "preferred"}
	softSkillMarkers   = []string{"soft skill", "communication", "team player", "collaborat", "leadership", "interpersonal"}
)

// extractMustHaves collects skill candidates from bullet lines near skill
// markers, deduplicated in first-seen order.
func extractMustHaves(text string) []string {
	var skills []string
	seen := make(map[string]bool)
	inSkillBlock := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, skillMarkers) && !bulletLine.MatchString(line) {
			inSkillBlock = true
			continue
		}
		m := bulletLine.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				inSkillBlock = containsAny(lower, skillMarkers)
			}
			continue
		}
		item := cleanItem(m[1])
		if item == "" {
			continue
		}
		if inSkillBlock || containsAny(strings.ToLower(item), skillMarkers) {
			key := strings.ToLower(item)
			if !seen[key] {
				seen[key] = true
				skills = append(skills, item)
			}
		}
	}
	return skills
}

// extractResponsibilities collects bullet lines under responsibility markers.
func extractResponsibilities(text string) []string {
	var out []string
	seen := make(map[string]bool)
	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, responsibilityMark) && !bulletLine.MatchString(line) {
			inBlock = true
			continue
		}
		m := bulletLine.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				inBlock = containsAny(lower, responsibilityMark)
			}
			continue
		}
		if !inBlock {
			continue
		}
		item := cleanItem(m[1])
		key := strings.ToLower(item)
		if item != "" && !seen[key] {
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

// extractByMarkers collects bullet items from blocks whose heading matches
// one of the markers.
func extractByMarkers(text string, markers []string) []string {
	var out []string
	seen := make(map[string]bool)
	inBlock := false
	for _, line := range strings.Split(text, "\n") {
		lower := strings.ToLower(line)
		if containsAny(lower, markers) && !bulletLine.MatchString(line) {
			inBlock = true
			continue
		}
		m := bulletLine.FindStringSubmatch(line)
		if m == nil {
			if strings.TrimSpace(line) != "" {
				inBlock = false
			}
			continue
		}
		if !inBlock {
			continue
		}
		item := cleanItem(m[1])
		key := strings.ToLower(item)
		if item != "" && !seen[key] {
			seen[key] = true
			out = append(out, item)
		}
	}
	return out
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

// cleanItem normalizes one extracted bullet item.
func cleanItem(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimRight(s, ".,;:")
	if len(s) < 3 {
		return ""
	}
	return s
}
