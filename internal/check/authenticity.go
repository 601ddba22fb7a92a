package check

import (
	"fmt"
	"regexp"
	"strings"
)

// Default pattern lists for the authenticity scan. All matching is
// case-insensitive on whole words or phrases.
var (
	DefaultVagueQuantifiers = []string{
		"many", "several", "various", "numerous", "multiple",
		"some", "a lot", "plenty", "countless",
	}
	DefaultSuperlatives = []string{
		"best", "world-class", "leading", "cutting-edge", "state-of-the-art",
		"revolutionary", "groundbreaking", "innovative", "next-generation",
	}
	DefaultFutureTense = []string{
		"will", "going to", "planning to", "intending to", "expect to",
	}
)

// DefaultSimilarityThreshold flags likely copy-paste above this word-set
// overlap with the source text.
const DefaultSimilarityThreshold = 0.7

var (
	placeholderRes = []*regexp.Regexp{
		regexp.MustCompile(`\[.*?\]`),
		regexp.MustCompile(`\{.*?\}`),
		regexp.MustCompile(`\bTBD\b`),
		regexp.MustCompile(`\bTODO\b`),
		regexp.MustCompile(`\bFIXME\b`),
	}
	wordRe = regexp.MustCompile(`\w+`)

	defaultVaguePatterns       = compileTerms(DefaultVagueQuantifiers)
	defaultSuperlativePatterns = compileTerms(DefaultSuperlatives)
	defaultFutureTensePatterns = compileTerms(DefaultFutureTense)
)

// termPattern pairs a term with its whole-word, case-insensitive matcher.
type termPattern struct {
	term string
	re   *regexp.Regexp
}

func compileTerms(terms []string) []termPattern {
	ps := make([]termPattern, 0, len(terms))
	for _, t := range terms {
		ps = append(ps, termPattern{
			term: t,
			re:   regexp.MustCompile(`(?i)\b` + regexp.QuoteMeta(t) + `\b`),
		})
	}
	return ps
}

// AuthenticityOptions tune the pattern scan. Empty lists fall back to the
// defaults; a zero threshold falls back to DefaultSimilarityThreshold.
type AuthenticityOptions struct {
	VagueQuantifiers    []string
	Superlatives        []string
	FutureTense         []string
	SimilarityThreshold float64
}

// DefaultAuthenticityOptions returns the standard pattern lists.
func DefaultAuthenticityOptions() AuthenticityOptions {
	return AuthenticityOptions{
		VagueQuantifiers:    DefaultVagueQuantifiers,
		Superlatives:        DefaultSuperlatives,
		FutureTense:         DefaultFutureTense,
		SimilarityThreshold: DefaultSimilarityThreshold,
	}
}

// patterns resolves the options into compiled matchers. Default lists
// reuse the package-level precompiled patterns; only custom lists compile.
type patterns struct {
	vague       []termPattern
	superlative []termPattern
	futureTense []termPattern
	threshold   float64
}

func (o AuthenticityOptions) patterns() patterns {
	p := patterns{
		vague:       defaultVaguePatterns,
		superlative: defaultSuperlativePatterns,
		futureTense: defaultFutureTensePatterns,
		threshold:   o.SimilarityThreshold,
	}
	if o.VagueQuantifiers != nil {
		p.vague = compileTerms(o.VagueQuantifiers)
	}
	if o.Superlatives != nil {
		p.superlative = compileTerms(o.Superlatives)
	}
	if o.FutureTense != nil {
		p.futureTense = compileTerms(o.FutureTense)
	}
	if p.threshold == 0 {
		p.threshold = DefaultSimilarityThreshold
	}
	return p
}

// Authenticity scans free text for patterns associated with fabricated or
// low-value content. sourceText, when non-empty, is the originating
// job-description text used for copy-paste detection. Every finding is
// advisory; the final gate is human review.
func Authenticity(text, sourceText string, opts AuthenticityOptions) []Finding {
	p := opts.patterns()
	var findings []Finding

	if found := matchTerms(text, p.vague); len(found) > 0 {
		findings = append(findings, Finding{
			Class:      ClassVagueQuantifier,
			Match:      strings.Join(found, ", "),
			Suggestion: "vague quantifiers detected, be more specific",
		})
	}

	if found := matchTerms(text, p.superlative); len(found) > 0 {
		findings = append(findings, Finding{
			Class:      ClassSuperlative,
			Match:      strings.Join(found, ", "),
			Suggestion: "unverifiable claims detected, provide concrete, measurable details instead",
		})
	}

	for _, re := range placeholderRes {
		if m := re.FindString(text); m != "" {
			findings = append(findings, Finding{
				Class:      ClassPlaceholder,
				Match:      m,
				Suggestion: "placeholder text detected, complete the example with specific details",
			})
			break
		}
	}

	if sourceText != "" {
		if sim := Similarity(text, sourceText); sim > p.threshold {
			findings = append(findings, Finding{
				Class:      ClassCopyPaste,
				Match:      fmt.Sprintf("%.0f%%", sim*100),
				Suggestion: "high similarity to the job description, use your own words and specific examples",
			})
		}
	}

	if found := matchTerms(text, p.futureTense); len(found) > 0 {
		findings = append(findings, Finding{
			Class:      ClassFutureTense,
			Match:      strings.Join(found, ", "),
			Suggestion: "future tense detected, describe what you've already done, not what you plan to do",
		})
	}

	return findings
}

// matchTerms returns the terms appearing in text as whole words or
// phrases, case-insensitive.
func matchTerms(text string, terms []termPattern) []string {
	var found []string
	for _, t := range terms {
		if t.re.MatchString(text) {
			found = append(found, t.term)
		}
	}
	return found
}

// Similarity is the word-set Jaccard overlap between two texts: 1.0 for
// identical vocabulary, 0.0 for disjoint. Robust to reordering and minor
// rewording, which is all copy-paste detection needs.
func Similarity(a, b string) float64 {
	wa := wordSet(a)
	wb := wordSet(b)
	if len(wa) == 0 || len(wb) == 0 {
		return 0
	}
	overlap := 0
	for w := range wa {
		if wb[w] {
			overlap++
		}
	}
	union := len(wa) + len(wb) - overlap
	return float64(overlap) / float64(union)
}

func wordSet(text string) map[string]bool {
	set := make(map[string]bool)
	for _, w := range wordRe.FindAllString(strings.ToLower(text), -1) {
		set[w] = true
	}
	return set
}
