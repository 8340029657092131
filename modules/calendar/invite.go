// Package calendar implements the interview invitation operation. It renders
// a subject line and body for a calendar invite, with office addresses for
// on-site interviews and a Teams note for remote ones. The candidate name is
// a placeholder the recruiter substitutes at send time.
package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
)

// CandidatePlaceholder stands in for the candidate's name in subject and
// greeting.
const CandidatePlaceholder = "[Candidate Name]"

// Office is one bookable office address.
type Office struct {
	City    string `json:"city"`
	Address string `json:"address"`
}

// offices maps lowercase city names to bookable office addresses.
var offices = map[string]Office{
	"stockholm":  {City: "Stockholm", Address: "Solnavägen 3H, 113 63 Stockholm"},
	"copenhagen": {City: "Copenhagen", Address: "Havneholmen 6, 2450 København SV"},
	"oslo":       {City: "Oslo", Address: "Snarøyveien 36, 1364 Fornebu"},
}

// interviewTypes maps interview type tags to display names.
var interviewTypes = map[string]string{
	"ta_screening":   "Screening Call",
	"hiring_manager": "Hiring Manager Interview",
	"case":           "Case Interview",
	"team":           "Team Interview",
}

// Input is the argument payload for creating a calendar invite.
type Input struct {
	PositionName      string `json:"position_name"`
	HiringManagerName string `json:"hiring_manager_name"`
	RecruiterName     string `json:"recruiter_name"`
	LocationType      string `json:"location_type"`
	InterviewType     string `json:"interview_type"`
	DurationMinutes   int    `json:"duration_minutes"`
	City              string `json:"city,omitempty"`
	DateTime          string `json:"date_time,omitempty"`
	Agenda            string `json:"agenda,omitempty"`
}

// Validate checks the input, including the conditional city requirement for
// on-site interviews.
func (in Input) Validate() error {
	if strings.TrimSpace(in.PositionName) == "" {
		return fmt.Errorf("position_name is required")
	}
	if strings.TrimSpace(in.HiringManagerName) == "" {
		return fmt.Errorf("hiring_manager_name is required")
	}
	if strings.TrimSpace(in.RecruiterName) == "" {
		return fmt.Errorf("recruiter_name is required")
	}
	switch in.LocationType {
	case "teams":
	case "onsite":
		if _, ok := offices[strings.ToLower(in.City)]; !ok {
			return fmt.Errorf("city is required for on-site interviews and must be one of stockholm, copenhagen or oslo")
		}
	default:
		return fmt.Errorf("location_type must be teams or onsite, got %q", in.LocationType)
	}
	if _, ok := interviewTypes[in.InterviewType]; !ok {
		return fmt.Errorf("interview_type must be one of ta_screening, hiring_manager, case or team, got %q", in.InterviewType)
	}
	if in.DurationMinutes <= 0 {
		return fmt.Errorf("duration_minutes must be positive, got %d", in.DurationMinutes)
	}
	return nil
}

// Invite is the calendar invite artifact.
type Invite struct {
	Subject              string    `json:"subject"`
	Body                 string    `json:"body"`
	CandidatePlaceholder string    `json:"candidate_placeholder"`
	CreatedAt            time.Time `json:"created_at"`
}

// Kind implements core.Artifact.
func (Invite) Kind() core.ArtifactKind { return core.ArtifactCalendarInvite }

// Processor renders calendar invites.
type Processor struct{}

// NewProcessor returns a calendar invite processor.
func NewProcessor() *Processor { return &Processor{} }

// Process implements dispatch.Processor.
func (p *Processor) Process(ctx context.Context, args map[string]any, _ map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in Input
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("calendar invite: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("calendar invite: %w", err)
	}

	return &Invite{
		Subject:              subject(in),
		Body:                 body(in),
		CandidatePlaceholder: CandidatePlaceholder,
		CreatedAt:            time.Now(),
	}, nil
}

// subject renders the invite subject line with the candidate placeholder.
func subject(in Input) string {
	return fmt.Sprintf("%s: %s - %s", interviewTypes[in.InterviewType], in.PositionName, CandidatePlaceholder)
}

// body renders the invitation text.
func body(in Input) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", CandidatePlaceholder)
	fmt.Fprintf(&b, "Thank you for your interest in the %s position. We would like to invite you to a %s with %s.\n\n",
		in.PositionName, strings.ToLower(interviewTypes[in.InterviewType]), in.HiringManagerName)

	fmt.Fprintf(&b, "Duration: %d minutes\n", in.DurationMinutes)
	if in.DateTime != "" {
		fmt.Fprintf(&b, "When: %s\n", in.DateTime)
	}
	if in.LocationType == "onsite" {
		office := offices[strings.ToLower(in.City)]
		fmt.Fprintf(&b, "Where: Our %s office, %s\n", office.City, office.Address)
	} else {
		b.WriteString("Where: Microsoft Teams (link in this invitation)\n")
	}
	if in.Agenda != "" {
		fmt.Fprintf(&b, "\nAgenda:\n%s\n", in.Agenda)
	}
	fmt.Fprintf(&b, "\nIf the time does not work for you, just reply and we will find another slot.\n\nBest regards,\n%s", in.RecruiterName)
	return b.String()
}
