// Package jobad implements the job advertisement operation. A job ad is
// assembled section by section from the stored requirement profile; the four
// must-have skills are always visible in the requirements section.
package jobad

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/modules/profile"
)

// Input is the argument payload for creating a job ad.
type Input struct {
	CompanyContext string `json:"company_context,omitempty"`
	Location       string `json:"location,omitempty"`
	ApplyBy        string `json:"apply_by,omitempty"`
}

// Ad is the job advertisement artifact. The section list is fixed; empty
// optional sections serialize as empty strings rather than disappearing.
type Ad struct {
	Headline         string    `json:"headline"`
	Intro            string    `json:"intro"`
	RoleDescription  string    `json:"role_description"`
	Responsibilities []string  `json:"responsibilities"`
	MustHaves        []string  `json:"must_haves"`
	GoodToHaves      string    `json:"good_to_haves"`
	SoftSkills       string    `json:"soft_skills"`
	TeamAndCompany   string    `json:"team_and_company"`
	Process          string    `json:"process"`
	Ending           string    `json:"ending"`
	CreatedAt        time.Time `json:"created_at"`
}

// Kind implements core.Artifact.
func (Ad) Kind() core.ArtifactKind { return core.ArtifactJobAd }

// maxResponsibilities caps the responsibilities section of an ad.
const maxResponsibilities = 5

// Processor builds job ads from the requirement profile.
type Processor struct{}

// NewProcessor returns a job ad processor.
func NewProcessor() *Processor { return &Processor{} }

// Process implements dispatch.Processor.
func (p *Processor) Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in Input
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("job ad: %w", err)
	}
	prof, ok := prereqs[core.ArtifactRequirementProfile].(*profile.Profile)
	if !ok {
		return nil, fmt.Errorf("job ad: requirement profile artifact has unexpected shape")
	}

	responsibilities := prof.PrimaryResponsibilities
	if len(responsibilities) > maxResponsibilities {
		responsibilities = responsibilities[:maxResponsibilities]
	}

	ad := &Ad{
		Headline:         prof.PositionTitle,
		Intro:            buildIntro(prof, in),
		RoleDescription:  buildRoleDescription(prof),
		Responsibilities: responsibilities,
		MustHaves:        prof.MustHaveSkills,
		GoodToHaves:      joinSentence(prof.GoodToHaves),
		SoftSkills:       joinSentence(prof.SoftSkills),
		TeamAndCompany:   strings.TrimSpace(in.CompanyContext),
		Process:          buildProcess(in),
		Ending:           "We review applications continuously, so do not wait to apply.",
		CreatedAt:        time.Now(),
	}
	return ad, nil
}

// buildIntro writes the two-sentence opening.
func buildIntro(prof *profile.Profile, in Input) string {
	intro := fmt.Sprintf("We are looking for a %s to join our team", prof.PositionTitle)
	if in.Location != "" {
		intro += " in " + in.Location
	}
	intro += "."
	if len(prof.PrimaryResponsibilities) > 0 {
		intro += fmt.Sprintf(" In this role you will %s.", lowerFirst(prof.PrimaryResponsibilities[0]))
	}
	return intro
}

// buildRoleDescription summarizes the role from the profile.
func buildRoleDescription(prof *profile.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "As our %s you take ownership of the areas below.", prof.PositionTitle)
	if len(prof.MustHaveSkills) > 0 {
		fmt.Fprintf(&b, " You bring solid experience in %s.", humanJoin(prof.MustHaveSkills))
	}
	return b.String()
}

// buildProcess describes the application process section.
func buildProcess(in Input) string {
	process := "Our process starts with a short screening call, followed by interviews with the hiring manager and the team."
	if in.ApplyBy != "" {
		process += " Please apply by " + in.ApplyBy + "."
	}
	return process
}

// joinSentence turns a list of items into one descriptive sentence.
func joinSentence(items []string) string {
	if len(items) == 0 {
		return ""
	}
	return "We value " + humanJoin(items) + "."
}

// humanJoin renders items as "a, b and c".
func humanJoin(items []string) string {
	switch len(items) {
	case 0:
		return ""
	case 1:
		return items[0]
	default:
		return strings.Join(items[:len(items)-1], ", ") + " and " + items[len(items)-1]
	}
}

// lowerFirst lowercases the first rune for mid-sentence use.
func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
