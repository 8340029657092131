// Package language scans recruitment text for biased or exclusionary wording
// and offers inclusive alternatives. Matching is case-insensitive, bounded at
// word edges, and reported in document order so callers can render findings
// alongside the original text without re-sorting.
package language

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/talentahq/talenta/core"
)

// Category classifies the kind of bias a finding belongs to.
type Category string

const (
	CategoryGender        Category = "gender"
	CategoryAge           Category = "age"
	CategoryDisability    Category = "disability"
	CategoryNationality   Category = "nationality"
	CategoryFamily        Category = "family"
	CategorySocioeconomic Category = "socioeconomic"
	CategoryReadability   Category = "readability"
	CategoryRequirements  Category = "requirements"
	CategoryGermanTitle   Category = "german_title"
	CategoryLocation      Category = "location"
)

// Categories lists every category in a stable order.
var Categories = []Category{
	CategoryGender,
	CategoryAge,
	CategoryDisability,
	CategoryNationality,
	CategoryFamily,
	CategorySocioeconomic,
	CategoryReadability,
	CategoryRequirements,
	CategoryGermanTitle,
	CategoryLocation,
}

// Severity grades how strongly a finding should be surfaced.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// categorySeverity maps each category to its default severity.
var categorySeverity = map[Category]Severity{
	CategoryGender:        SeverityHigh,
	CategoryAge:           SeverityHigh,
	CategoryDisability:    SeverityHigh,
	CategoryNationality:   SeverityMedium,
	CategoryFamily:        SeverityMedium,
	CategorySocioeconomic: SeverityMedium,
	CategoryReadability:   SeverityLow,
	CategoryRequirements:  SeverityLow,
	CategoryGermanTitle:   SeverityMedium,
	CategoryLocation:      SeverityLow,
}

// Finding is one flagged term with its inclusive alternatives. Position is the
// byte offset of the match in the scanned text.
type Finding struct {
	Term         string   `json:"text"`
	Category     Category `json:"category"`
	Severity     Severity `json:"severity"`
	Explanation  string   `json:"explanation"`
	Alternatives []string `json:"alternatives"`
	Position     int      `json:"position"`
}

// entry is one pool term with its explanation and replacements.
type entry struct {
	explanation  string
	alternatives []string
}

// pool maps lowercase terms to their entries for one language.
type pool map[string]entry

// Scan checks the text against every category pool for the language and
// returns findings ordered by position. German text additionally gets the
// gendered job title check. Unknown languages yield no findings.
func Scan(text string, lang core.Language) []Finding {
	var findings []Finding
	for _, cat := range Categories {
		pools, ok := categoryPools[cat]
		if !ok {
			continue
		}
		p, ok := pools[lang]
		if !ok {
			continue
		}
		findings = append(findings, scanPool(text, cat, p)...)
	}
	if lang == core.LanguageGerman {
		findings = append(findings, scanGermanTitles(text)...)
	}
	sort.SliceStable(findings, func(i, j int) bool {
		if findings[i].Position != findings[j].Position {
			return findings[i].Position < findings[j].Position
		}
		// Longest match first when two terms start at the same offset.
		return len(findings[i].Term) > len(findings[j].Term)
	})
	return findings
}

// scanPool finds every word-bounded occurrence of each pool term.
func scanPool(text string, cat Category, p pool) []Finding {
	lower := strings.ToLower(text)
	severity := categorySeverity[cat]

	var findings []Finding
	for _, term := range sortedTerms(p) {
		e := p[term]
		for _, pos := range occurrences(lower, term) {
			findings = append(findings, Finding{
				Term:         term,
				Category:     cat,
				Severity:     severity,
				Explanation:  e.explanation,
				Alternatives: e.alternatives,
				Position:     pos,
			})
		}
	}
	return findings
}

// sortedTerms returns the pool's terms in lexical order so scan output never
// depends on map iteration order.
func sortedTerms(p pool) []string {
	terms := make([]string, 0, len(p))
	for term := range p {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// scanGermanTitles flags German job titles lacking a gender notation such as
// (m/w/d) or the :in suffix nearby.
func scanGermanTitles(text string) []Finding {
	lower := strings.ToLower(text)

	var findings []Finding
	for _, title := range sortedTerms(germanTitlePool) {
		e := germanTitlePool[title]
		for _, pos := range occurrences(lower, title) {
			end := pos + len(title) + 15
			if end > len(lower) {
				end = len(lower)
			}
			context := lower[pos:end]
			if strings.Contains(context, "(m/w/d)") ||
				strings.Contains(context, "(m/w)") ||
				strings.Contains(context, "(w/m/d)") ||
				strings.Contains(context, ":in") ||
				strings.Contains(context, "*in") ||
				strings.Contains(context, "_in") {
				continue
			}
			findings = append(findings, Finding{
				Term:         title,
				Category:     CategoryGermanTitle,
				Severity:     SeverityMedium,
				Explanation:  e.explanation,
				Alternatives: e.alternatives,
				Position:     pos,
			})
		}
	}
	return findings
}

// occurrences returns the byte offsets of every word-bounded match of term in
// the lowercased text.
func occurrences(lower, term string) []int {
	var positions []int
	start := 0
	for {
		idx := strings.Index(lower[start:], term)
		if idx < 0 {
			return positions
		}
		pos := start + idx
		if boundedAt(lower, pos, len(term)) {
			positions = append(positions, pos)
		}
		start = pos + 1
	}
}

// boundedAt reports whether the match at pos of the given length sits on word
// boundaries, so "young" does not match inside "younger". Neighbors are decoded
// as runes; the pools carry å/ä/ö/ü and those must count as word characters.
func boundedAt(s string, pos, length int) bool {
	if pos > 0 {
		r, _ := utf8.DecodeLastRuneInString(s[:pos])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	end := pos + length
	if end < len(s) {
		r, _ := utf8.DecodeRuneInString(s[end:])
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
