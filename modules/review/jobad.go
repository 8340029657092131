// Package review implements the two review operations: the job ad quality
// review and the diversity and inclusion review. Both are read-only over the
// submitted text; the original wording is preserved untouched in the artifact
// and all edits remain recruiter decisions.
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

// JobAdInput is the argument payload for reviewing a job ad.
type JobAdInput struct {
	JobAdText string `json:"job_ad_text"`
	Language  string `json:"language,omitempty"`
}

// Validate checks the input.
func (in JobAdInput) Validate() error {
	if strings.TrimSpace(in.JobAdText) == "" {
		return fmt.Errorf("job_ad_text is required")
	}
	return nil
}

// SectionCheck reports whether one expected job ad section is present.
type SectionCheck struct {
	Section string `json:"section"`
	Present bool   `json:"present"`
	Note    string `json:"note,omitempty"`
}

// JobAdReview is the job ad review artifact.
type JobAdReview struct {
	OverallScore    int            `json:"overall_score"`
	StructureScore  int            `json:"structure_score"`
	ContentScore    int            `json:"content_score"`
	ComplianceScore int            `json:"compliance_score"`
	Sections        []SectionCheck `json:"sections"`
	Recommendations []string       `json:"recommendations"`
	OriginalText    string         `json:"original_text"`
	CreatedAt       time.Time      `json:"created_at"`
}

// Kind implements core.Artifact.
func (JobAdReview) Kind() core.ArtifactKind { return core.ArtifactJobAdReview }

// expectedSections lists what a complete job ad contains, with the markers
// that signal each section's presence.
var expectedSections = []struct {
	name    string
	markers []string
}{
	{"introduction", []string{"looking for", "join", "we are", "about the role"}},
	{"responsibilities", []string{"responsib", "you will", "your tasks", "day-to-day"}},
	{"requirements", []string{"require", "must have", "qualifications", "you bring", "experience"}},
	{"team_and_company", []string{"team", "about us", "our company", "culture"}},
	{"process", []string{"process", "apply", "application", "interview"}},
}

// vagueTerms weaken content when a job ad leans on them.
var vagueTerms = []string{"world-class", "best-in-class", "cutting-edge", "dynamic environment", "fast-paced", "wear many hats"}

// JobAdProcessor scores job ads on structure, content and language
// compliance.
type JobAdProcessor struct{}

// NewJobAdProcessor returns a job ad review processor.
func NewJobAdProcessor() *JobAdProcessor { return &JobAdProcessor{} }

// Process implements dispatch.Processor.
func (p *JobAdProcessor) Process(ctx context.Context, args map[string]any, _ map[core.ArtifactKind]core.Artifact) (core.Artifact, error) {
	var in JobAdInput
	if err := util.Rebind(args, &in); err != nil {
		return nil, fmt.Errorf("job ad review: %w", err)
	}
	if err := in.Validate(); err != nil {
		return nil, fmt.Errorf("job ad review: %w", err)
	}

	lower := strings.ToLower(in.JobAdText)

	var recommendations []string
	sections := make([]SectionCheck, 0, len(expectedSections))
	structure := 100
	for _, es := range expectedSections {
		present := containsAny(lower, es.markers)
		check := SectionCheck{Section: es.name, Present: present}
		if !present {
			structure -= 20
			check.Note = "Section not found in the ad."
			recommendations = append(recommendations,
				fmt.Sprintf("Add a %s section.", strings.ReplaceAll(es.name, "_", " ")))
		}
		sections = append(sections, check)
	}

	content := 100
	for _, term := range vagueTerms {
		if strings.Contains(lower, term) {
			content -= 10
			recommendations = append(recommendations,
				fmt.Sprintf("Replace the vague phrase %q with something concrete.", term))
		}
	}
	readability, notes := language.Readability(in.JobAdText)
	if readability < 100 {
		content -= (100 - readability) / 2
		recommendations = append(recommendations, notes...)
	}
	if content < 0 {
		content = 0
	}

	compliance := 100
	findings := language.Scan(in.JobAdText, parseLanguage(in.Language))
	for _, f := range findings {
		switch f.Severity {
		case language.SeverityHigh:
			compliance -= 15
		case language.SeverityMedium:
			compliance -= 10
		default:
			compliance -= 5
		}
		if len(f.Alternatives) > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("Consider replacing %q with %q.", f.Term, f.Alternatives[0]))
		}
	}
	if compliance < 0 {
		compliance = 0
	}

	overall := (structure + content + compliance) / 3

	return &JobAdReview{
		OverallScore:    overall,
		StructureScore:  structure,
		ContentScore:    content,
		ComplianceScore: compliance,
		Sections:        sections,
		Recommendations: recommendations,
		OriginalText:    in.JobAdText,
		CreatedAt:       time.Now(),
	}, nil
}

// parseLanguage maps a request language tag to a known language, defaulting
// to English.
func parseLanguage(tag string) core.Language {
	switch core.Language(strings.ToLower(tag)) {
	case core.LanguageSwedish:
		return core.LanguageSwedish
	case core.LanguageDanish:
		return core.LanguageDanish
	case core.LanguageNorwegian:
		return core.LanguageNorwegian
	case core.LanguageGerman:
		return core.LanguageGerman
	default:
		return core.LanguageEnglish
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}
