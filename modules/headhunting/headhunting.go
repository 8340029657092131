// Package headhunting implements the outreach message operation. It produces
// three message versions of increasing length from the requirement profile,
// each under the hard word limit LinkedIn outreach tolerates. A stored job ad
// is used opportunistically for extra context but is never required.
package headhunting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/modules/jobad"
	"github.com/talentahq/talenta/modules/profile"
)

// MaxWords is the hard word limit per message version.
const MaxWords = 120

// Input is the argument payload for creating headhunting messages.
type Input struct {
	RecruiterName string `json:"recruiter_name"`
	CompanyName   string `json:"company_name,omitempty"`
}

// Validate checks the input.
func (in Input) Validate() error {
	if strings.TrimSpace(in.RecruiterName) == "" {
		return fmt.Errorf("recruiter_name is required")
	}
	return nil
}

// Message is one outreach message version.
type Message struct {
	Version string `json:"version"`
	Text    string `json:"text"`
	Words   int    `json:"words"`
}

// Messages is the headhunting artifact holding all three versions.
type Messages struct {
	PositionTitle string    `json:"position_title"`
	Versions      []Message `json:"versions"`
	CreatedAt     time.Time `json:"created_at"`
}

// Kind implements core.Artifact.
func (Messages) Kind() core.ArtifactKind { return core.ArtifactHeadhuntingMessages }

// Processor builds outreach messages from the requirement profile.
type Processor struct{}

// NewProcessor returns a headhunting processor.
func NewProcessor() *Processor { return &Processor{} }

// Process implements dispatch.Processor.
func (p *Processor) Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in Input
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("headhunting messages: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("headhunting messages: %w", err)
	}
	prof, ok := prereqs[core.ArtifactRequirementProfile].(*profile.Profile)
	if !ok {
		return nil, fmt.Errorf("headhunting messages: requirement profile artifact has unexpected shape")
	}

	var hook string
	if ad, ok := prereqs[core.ArtifactJobAd].(*jobad.Ad); ok && ad.Intro != "" {
		hook = ad.Intro
	}

	company := in.CompanyName
	if company == "" {
		company = "our company"
	}

	msgs := &Messages{
		PositionTitle: prof.PositionTitle,
		Versions: []Message{
			build("short_direct", shortDirect(prof, in, company)),
			build("value_proposition", valueProposition(prof, in, company, hook)),
			build("detailed", detailed(prof, in, company, hook)),
		},
		CreatedAt: time.Now(),
	}
	for _, m := range msgs.Versions {
		if m.Words > MaxWords {
			return nil, fmt.Errorf("headhunting messages: %s version is %d words, limit is %d", m.Version, m.Words, MaxWords)
		}
	}
	return msgs, nil
}

func build(version, text string) Message {
	return Message{Version: version, Text: text, Words: len(strings.Fields(text))}
}

// shortDirect is the minimal two-line opener.
func shortDirect(prof *profile.Profile, in Input, company string) string {
	return fmt.Sprintf(
		"Hi [First Name], I came across your profile and think you could be a great fit for our %s role at %s. Would you be open to a short chat?\n\nBest regards,\n%s",
		prof.PositionTitle, company, in.RecruiterName,
	)
}

// valueProposition leads with what the role offers the candidate.
func valueProposition(prof *profile.Profile, in Input, company, hook string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi [First Name], your background caught my attention. ")
	if hook != "" {
		b.WriteString(hook)
		b.WriteString(" ")
	} else {
		fmt.Fprintf(&b, "We are hiring a %s at %s. ", prof.PositionTitle, company)
	}
	if len(prof.MustHaveSkills) > 0 {
		fmt.Fprintf(&b, "Your experience with %s is exactly what this role needs. ", prof.MustHaveSkills[0])
	}
	fmt.Fprintf(&b, "Interested in hearing more?\n\nBest regards,\n%s", in.RecruiterName)
	return b.String()
}

// detailed names the responsibilities and two key skills.
func detailed(prof *profile.Profile, in Input, company, hook string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi [First Name], I'm recruiting a %s for %s and your profile stood out. ", prof.PositionTitle, company)
	if len(prof.PrimaryResponsibilities) > 0 {
		fmt.Fprintf(&b, "The role centers on %s. ", strings.ToLower(prof.PrimaryResponsibilities[0]))
	}
	if len(prof.MustHaveSkills) >= 2 {
		fmt.Fprintf(&b, "We are looking for strong experience in %s and %s. ", prof.MustHaveSkills[0], prof.MustHaveSkills[1])
	}
	if hook != "" {
		b.WriteString(hook)
		b.WriteString(" ")
	}
	fmt.Fprintf(&b, "Would you be open to a 15-minute call this week?\n\nBest regards,\n%s", in.RecruiterName)
	return b.String()
}
