// Package screening implements the two screening template operations. Both
// variants derive their question sets from the requirement profile: the TA
// variant is a short phone screen, the HM variant digs deeper per skill.
package screening

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/modules/profile"
)

// Variant selects which screening template an operation produces.
type Variant string

const (
	VariantTA Variant = "ta"
	VariantHM Variant = "hm"
)

// Input is the argument payload for creating a screening template.
type Input struct {
	Focus string `json:"focus,omitempty"`
}

// Question is one interview question with space for notes.
type Question struct {
	Text      string   `json:"text"`
	FollowUps []string `json:"follow_ups,omitempty"`
}

// SkillSection groups the questions assessing one must-have skill.
type SkillSection struct {
	Skill     string     `json:"skill"`
	Questions []Question `json:"questions"`
}

// Template is the screening template artifact. Kind depends on the variant,
// so one template type backs both operations.
type Template struct {
	Variant             Variant        `json:"variant"`
	PositionTitle       string         `json:"position_title"`
	RoleIntro           string         `json:"role_intro"`
	MotivationQuestions []Question     `json:"motivation_questions"`
	SkillSections       []SkillSection `json:"skill_sections"`
	PracticalQuestions  []Question     `json:"practical_questions"`
	CreatedAt           time.Time      `json:"created_at"`
}

// Kind implements core.Artifact.
func (t Template) Kind() core.ArtifactKind {
	if t.Variant == VariantHM {
		return core.ArtifactHMScreeningTemplate
	}
	return core.ArtifactTAScreeningTemplate
}

// Processor builds screening templates for one variant.
type Processor struct {
	variant Variant
}

// NewProcessor returns a screening processor for the given variant.
func NewProcessor(variant Variant) *Processor {
	return &Processor{variant: variant}
}

// Process implements dispatch.Processor.
func (p *Processor) Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in Input
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("screening template: %w", err)
	}
	prof, ok := prereqs[core.ArtifactRequirementProfile].(*profile.Profile)
	if !ok {
		return nil, fmt.Errorf("screening template: requirement profile artifact has unexpected shape")
	}

	tmpl := &Template{
		Variant:             p.variant,
		PositionTitle:       prof.PositionTitle,
		RoleIntro:           roleIntro(prof, in),
		MotivationQuestions: motivationQuestions(p.variant),
		SkillSections:       skillSections(prof, p.variant),
		PracticalQuestions:  practicalQuestions(p.variant),
		CreatedAt:           time.Now(),
	}
	return tmpl, nil
}

// roleIntro is the opening the interviewer reads to the candidate.
func roleIntro(prof *profile.Profile, in Input) string {
	intro := fmt.Sprintf("We are hiring a %s.", prof.PositionTitle)
	if len(prof.PrimaryResponsibilities) > 0 {
		intro += fmt.Sprintf(" The role centers on %s.", strings.ToLower(prof.PrimaryResponsibilities[0]))
	}
	if in.Focus != "" {
		intro += " Focus for this screen: " + in.Focus + "."
	}
	return intro
}

// motivationQuestions open every screen; the HM variant probes deeper.
func motivationQuestions(v Variant) []Question {
	qs := []Question{
		{Text: "What attracted you to this role?"},
		{Text: "What are you looking for in your next position?"},
	}
	if v == VariantHM {
		qs = append(qs, Question{
			Text:      "Where do you want to develop professionally over the next few years?",
			FollowUps: []string{"How does this role fit into that?"},
		})
	}
	return qs
}

// skillSections builds one question set per must-have skill.
func skillSections(prof *profile.Profile, v Variant) []SkillSection {
	sections := make([]SkillSection, 0, len(prof.MustHaveSkills))
	for _, skill := range prof.MustHaveSkills {
		var qs []Question
		if v == VariantHM {
			qs = []Question{
				{
					Text:      fmt.Sprintf("Walk me through a project where you applied %s.", skill),
					FollowUps: []string{"What was your specific contribution?", "What would you do differently today?"},
				},
				{Text: fmt.Sprintf("How do you keep your knowledge of %s current?", skill)},
			}
		} else {
			qs = []Question{
				{
					Text:      fmt.Sprintf("Can you describe your experience with %s?", skill),
					FollowUps: []string{"How recently have you worked with it?"},
				},
			}
		}
		sections = append(sections, SkillSection{Skill: skill, Questions: qs})
	}
	return sections
}

// practicalQuestions close the screen.
func practicalQuestions(v Variant) []Question {
	qs := []Question{
		{Text: "What is your notice period?"},
		{Text: "What are your salary expectations?"},
	}
	if v == VariantTA {
		qs = append(qs, Question{Text: "Are you interviewing elsewhere at the moment?"})
	}
	return qs
}
