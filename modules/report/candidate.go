// Package report implements the two reporting operations: the candidate
// report produced after a TA screening, and the funnel report over pipeline
// metrics.
package report

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/modules/profile"
	"github.com/talentahq/talenta/modules/screening"
)

// ratingDescriptions maps each 1-5 rating to its meaning.
var ratingDescriptions = map[int]string{
	1: "Does not meet the requirement",
	2: "Partially meets the requirement",
	3: "Meets the requirement",
	4: "Exceeds the requirement",
	5: "Far exceeds the requirement",
}

// CandidateInput is the argument payload for creating a candidate report.
// Ratings map must-have skills to 1-5 scores from the screening call;
// skills absent from the map fall back to transcript keyword evidence.
type CandidateInput struct {
	CandidateName     string         `json:"candidate_name"`
	Transcript        string         `json:"transcript"`
	Ratings           map[string]int `json:"ratings,omitempty"`
	MotivationRating  int            `json:"motivation_rating,omitempty"`
	NoticePeriod      string         `json:"notice_period,omitempty"`
	SalaryExpectation string         `json:"salary_expectation,omitempty"`
}

// Validate checks the input.
func (in CandidateInput) Validate() error {
	if strings.TrimSpace(in.CandidateName) == "" {
		return fmt.Errorf("candidate_name is required")
	}
	if strings.TrimSpace(in.Transcript) == "" {
		return fmt.Errorf("transcript is required")
	}
	for skill, r := range in.Ratings {
		if r < 1 || r > 5 {
			return fmt.Errorf("rating for %q must be between 1 and 5, got %d", skill, r)
		}
	}
	if in.MotivationRating != 0 && (in.MotivationRating < 1 || in.MotivationRating > 5) {
		return fmt.Errorf("motivation_rating must be between 1 and 5, got %d", in.MotivationRating)
	}
	return nil
}

// SkillAssessment is one skill's rating with its explanation.
type SkillAssessment struct {
	Skill       string `json:"skill"`
	Rating      int    `json:"rating"`
	Explanation string `json:"explanation"`
}

// CandidateReport is the candidate report artifact.
type CandidateReport struct {
	CandidateName     string            `json:"candidate_name"`
	PositionTitle     string            `json:"position_title"`
	SkillAssessments  []SkillAssessment `json:"skill_assessments"`
	Motivation        SkillAssessment   `json:"motivation"`
	AverageRating     float64           `json:"average_rating"`
	Recommendation    string            `json:"recommendation"`
	NoticePeriod      string            `json:"notice_period,omitempty"`
	SalaryExpectation string            `json:"salary_expectation,omitempty"`
	CreatedAt         time.Time         `json:"created_at"`
}

// Kind implements core.Artifact.
func (CandidateReport) Kind() core.ArtifactKind { return core.ArtifactCandidateReport }

// CandidateProcessor builds candidate reports from screening outcomes.
type CandidateProcessor struct{}

// NewCandidateProcessor returns a candidate report processor.
func NewCandidateProcessor() *CandidateProcessor { return &CandidateProcessor{} }

// Process implements dispatch.Processor. The report covers every must-have
// skill from the profile: explicitly rated skills keep the recruiter's score,
// the rest are rated from transcript evidence.
func (p *CandidateProcessor) Process(ctx context.Context, args map[string]any, prereqs map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in CandidateInput
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("candidate report: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("candidate report: %w", err)
	}
	prof, ok := prereqs[core.ArtifactRequirementProfile].(*profile.Profile)
	if !ok {
		return nil, fmt.Errorf("candidate report: requirement profile artifact has unexpected shape")
	}
	if _, ok := prereqs[core.ArtifactTAScreeningTemplate].(*screening.Template); !ok {
		return nil, fmt.Errorf("candidate report: screening template artifact has unexpected shape")
	}

	assessments := make([]SkillAssessment, 0, len(prof.MustHaveSkills))
	var sum int
	for _, skill := range prof.MustHaveSkills {
		a := assessSkill(skill, in)
		assessments = append(assessments, a)
		sum += a.Rating
	}

	motivation := assessMotivation(in)
	sum += motivation.Rating
	avg := float64(sum) / float64(len(assessments)+1)

	return &CandidateReport{
		CandidateName:     strings.TrimSpace(in.CandidateName),
		PositionTitle:     prof.PositionTitle,
		SkillAssessments:  assessments,
		Motivation:        motivation,
		AverageRating:     avg,
		Recommendation:    recommend(avg),
		NoticePeriod:      in.NoticePeriod,
		SalaryExpectation: in.SalaryExpectation,
		CreatedAt:         time.Now(),
	}, nil
}

// assessSkill rates one skill from the explicit score or from the transcript.
func assessSkill(skill string, in CandidateInput) SkillAssessment {
	if r, ok := in.Ratings[skill]; ok {
		return SkillAssessment{
			Skill:       skill,
			Rating:      r,
			Explanation: fmt.Sprintf("Recruiter rating from screening: %s.", ratingDescriptions[r]),
		}
	}
	if strings.Contains(strings.ToLower(in.Transcript), strings.ToLower(skill)) {
		return SkillAssessment{
			Skill:       skill,
			Rating:      3,
			Explanation: fmt.Sprintf("Discussed during the screening; transcript mentions %s.", skill),
		}
	}
	return SkillAssessment{
		Skill:       skill,
		Rating:      2,
		Explanation: "Not covered in the screening call; needs follow-up in the next interview.",
	}
}

// assessMotivation rates the candidate's motivation.
func assessMotivation(in CandidateInput) SkillAssessment {
	r := in.MotivationRating
	explanation := fmt.Sprintf("Recruiter rating from screening: %s.", ratingDescriptions[r])
	if r == 0 {
		r = 3
		explanation = "No explicit motivation rating given; defaulted from the screening conversation."
	}
	return SkillAssessment{Skill: "motivation", Rating: r, Explanation: explanation}
}

// recommend maps the average rating to a proceed decision.
func recommend(avg float64) string {
	switch {
	case avg >= 4:
		return "strong_proceed"
	case avg >= 3:
		return "proceed"
	case avg >= 2:
		return "proceed_with_reservations"
	default:
		return "do_not_proceed"
	}
}
