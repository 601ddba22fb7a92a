package check

import (
	"testing"
)

func classes(findings []Finding) map[Class]bool {
	set := make(map[Class]bool)
	for _, f := range findings {
		set[f.Class] = true
	}
	return set
}

func TestVagueAndSuperlativeTogether(t *testing.T) {
	text := "Used cutting-edge ML on various projects with many successes"
	got := classes(Authenticity(text, "", DefaultAuthenticityOptions()))

	if !got[ClassVagueQuantifier] {
		t.Error("expected a vague-quantifier warning")
	}
	if !got[ClassSuperlative] {
		t.Error("expected an unverifiable-superlative warning")
	}
	if len(got) < 2 {
		t.Errorf("expected at least two distinct warning classes, got %v", got)
	}
}

func TestWholeWordMatching(t *testing.T) {
	// "Germany" contains "many" but must not trip the whole-word match.
	got := classes(Authenticity("Rolled out the platform for customers in Germany", "", DefaultAuthenticityOptions()))
	if got[ClassVagueQuantifier] {
		t.Error("substring inside a word must not match a vague quantifier")
	}
}

func TestPlaceholderDetection(t *testing.T) {
	cases := []string{
		"Improved [relevant area] by a measurable amount last quarter",
		"Delivered the {example} integration for enterprise clients",
		"Shipped the reporting dashboard, TBD add the numbers here",
	}
	for _, text := range cases {
		if !classes(Authenticity(text, "", DefaultAuthenticityOptions()))[ClassPlaceholder] {
			t.Errorf("expected placeholder warning for %q", text)
		}
	}
}

func TestFutureTenseDetection(t *testing.T) {
	got := classes(Authenticity("I will implement the caching layer for the search API", "", DefaultAuthenticityOptions()))
	if !got[ClassFutureTense] {
		t.Error("expected future-tense warning")
	}

	got = classes(Authenticity("Implemented the caching layer for the search API in production", "", DefaultAuthenticityOptions()))
	if got[ClassFutureTense] {
		t.Error("completed work must not trip the future-tense check")
	}
}

func TestCopyPasteDetection(t *testing.T) {
	source := "We are seeking an engineer to build scalable data pipelines using Python and Kafka in a cloud environment"

	// Identical text is a certain copy-paste hit.
	got := classes(Authenticity(source, source, DefaultAuthenticityOptions()))
	if !got[ClassCopyPaste] {
		t.Error("identical text must trigger a copy-paste warning")
	}

	// A substantial rewording of the same facts must not.
	reworded := "Designed streaming ingestion for clickstream events, cutting processing latency from hours to minutes"
	got = classes(Authenticity(reworded, source, DefaultAuthenticityOptions()))
	if got[ClassCopyPaste] {
		t.Error("reworded text must not trigger a copy-paste warning")
	}

	// No source text, no similarity check.
	got = classes(Authenticity(source, "", DefaultAuthenticityOptions()))
	if got[ClassCopyPaste] {
		t.Error("similarity check requires a source text")
	}
}

func TestSimilarityBounds(t *testing.T) {
	if got := Similarity("alpha beta gamma", "alpha beta gamma"); got != 1.0 {
		t.Errorf("identical text similarity = %v, want 1.0", got)
	}
	if got := Similarity("alpha beta gamma", "delta epsilon zeta"); got != 0.0 {
		t.Errorf("disjoint text similarity = %v, want 0.0", got)
	}
	if got := Similarity("", "anything"); got != 0.0 {
		t.Errorf("empty text similarity = %v, want 0.0", got)
	}

	// Monotonic in overlap: more shared vocabulary, higher score.
	low := Similarity("alpha beta gamma delta", "alpha epsilon zeta eta")
	high := Similarity("alpha beta gamma delta", "alpha beta gamma eta")
	if high <= low {
		t.Errorf("expected similarity to grow with overlap: low=%v high=%v", low, high)
	}
}

func TestCleanTextHasNoFindings(t *testing.T) {
	text := "Migrated 14 microservices to Kubernetes, reducing deploy time from 40 minutes to 6"
	if findings := Authenticity(text, "", DefaultAuthenticityOptions()); len(findings) != 0 {
		t.Errorf("expected no findings, got %+v", findings)
	}
}

func TestCustomPatternLists(t *testing.T) {
	opts := AuthenticityOptions{
		VagueQuantifiers: []string{"oodles"},
	}
	got := classes(Authenticity("Delivered oodles of value to many teams", "", opts))
	if !got[ClassVagueQuantifier] {
		t.Error("custom vague-quantifier list should match")
	}
	// "many" is not in the custom list, so only the custom term counts.
	findings := Authenticity("Worked with many teams", "", opts)
	if classes(findings)[ClassVagueQuantifier] {
		t.Error("default list must not apply when a custom list is set")
	}
}
