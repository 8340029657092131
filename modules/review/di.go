package review

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/talentahq/talenta/core"
	"github.com/talentahq/talenta/internal/util"
	"github.com/talentahq/talenta/language"
)

// DIInput is the argument payload for a diversity and inclusion review.
type DIInput struct {
	JobAdText string `json:"job_ad_text"`
	Language  string `json:"language,omitempty"`
}

// Validate checks the input.
func (in DIInput) Validate() error {
	if strings.TrimSpace(in.JobAdText) == "" {
		return fmt.Errorf("job_ad_text is required")
	}
	return nil
}

// CategoryScore is one bias category's 0-100 score.
type CategoryScore struct {
	Category    language.Category `json:"category"`
	Score       int               `json:"score"`
	IssuesFound int               `json:"issues_found"`
}

// DIReview is the diversity and inclusion review artifact. The original text
// is carried unchanged; every flagged term only suggests alternatives.
type DIReview struct {
	OverallScore    int                `json:"overall_score"`
	CategoryScores  []CategoryScore    `json:"category_scores"`
	FlaggedItems    []language.Finding `json:"flagged_items"`
	ComplianceNotes []string           `json:"compliance_notes"`
	OriginalText    string             `json:"original_text"`
	CreatedAt       time.Time          `json:"created_at"`
}

// Kind implements core.Artifact.
func (DIReview) Kind() core.ArtifactKind { return core.ArtifactDIReview }

// categoryWeights bias the overall score toward the categories with the most
// impact on who applies.
var categoryWeights = map[language.Category]float64{
	language.CategoryGender:        2.0,
	language.CategoryAge:           2.0,
	language.CategoryDisability:    2.0,
	language.CategoryNationality:   1.5,
	language.CategoryFamily:        1.5,
	language.CategorySocioeconomic: 1.0,
	language.CategoryReadability:   0.5,
	language.CategoryRequirements:  0.5,
	language.CategoryGermanTitle:   1.0,
	language.CategoryLocation:      0.5,
}

// DIProcessor runs the banned-word scan and scores the result.
type DIProcessor struct{}

// NewDIProcessor returns a D&I review processor.
func NewDIProcessor() *DIProcessor { return &DIProcessor{} }

// Process implements dispatch.Processor.
func (p *DIProcessor) Process(ctx context.Context, args map[string]any, _ map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in DIInput
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("di review: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("di review: %w", err)
	}

	lang := parseLanguage(in.Language)
	findings := language.Scan(in.JobAdText, lang)

	issuesPerCategory := make(map[language.Category]int)
	for _, f := range findings {
		issuesPerCategory[f.Category]++
	}
	readability, notes := language.Readability(in.JobAdText)
	if readability < 100 {
		issuesPerCategory[language.CategoryReadability] = (100 - readability) / 15
	}

	scores := make([]CategoryScore, 0, len(language.Categories))
	for _, cat := range language.Categories {
		issues := issuesPerCategory[cat]
		score := 100 - issues*15
		if score < 0 {
			score = 0
		}
		scores = append(scores, CategoryScore{Category: cat, Score: score, IssuesFound: issues})
	}

	return &DIReview{
		OverallScore:    overallScore(scores, len(findings)),
		CategoryScores:  scores,
		FlaggedItems:    findings,
		ComplianceNotes: complianceNotes(findings, notes),
		OriginalText:    in.JobAdText,
		CreatedAt:       time.Now(),
	}, nil
}

// overallScore is the weighted category average with an extra penalty for a
// high total issue count.
func overallScore(scores []CategoryScore, totalIssues int) int {
	var weightedSum, totalWeight float64
	for _, cs := range scores {
		w, ok := categoryWeights[cs.Category]
		if !ok {
			w = 1.0
		}
		weightedSum += float64(cs.Score) * w
		totalWeight += w
	}
	if totalWeight == 0 {
		return 100
	}
	score := weightedSum / totalWeight
	if totalIssues > 10 {
		score -= 10
	} else if totalIssues > 5 {
		score -= 5
	}
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return int(score)
}

// complianceNotes summarizes the scan outcome for the recruiter.
func complianceNotes(findings []language.Finding, readabilityNotes []string) []string {
	var notes []string
	if len(findings) == 0 {
		notes = append(notes, "No biased or exclusionary terms were found.")
	} else {
		notes = append(notes, fmt.Sprintf(
			"%d potentially exclusionary terms were flagged. The original text is unchanged; all suggested edits need your approval.",
			len(findings)))
	}
	notes = append(notes, readabilityNotes...)
	return notes
}
