// Package check provides the pure admission checkers: consistency against
// the existing store and content-authenticity pattern scanning. Checkers
// never mutate the store; they map a candidate to findings.
package check

// Class identifies the kind of finding a checker produced.
type Class string

const (
	// Consistency classes.
	ClassFutureDate      Class = "future_date"
	ClassOutsideJobRange Class = "outside_job_range"
	ClassUnknownCompany  Class = "unknown_company"
	ClassDuplicateSkill  Class = "duplicate_skill"
	ClassStaleExperience Class = "stale_experience"

	// Authenticity classes.
	ClassVagueQuantifier Class = "vague_quantifier"
	ClassSuperlative     Class = "unverifiable_superlative"
	ClassPlaceholder     Class = "placeholder"
	ClassCopyPaste       Class = "copy_paste"
	ClassFutureTense     Class = "future_tense"
)

// Finding is a single checker result: the pattern class, the text that
// matched, and a human-readable suggestion. Findings inform the human
// review decision; they are data, not errors.
type Finding struct {
	Class      Class  `json:"class"`
	Match      string `json:"match,omitempty"`
	Suggestion string `json:"suggestion"`
}
