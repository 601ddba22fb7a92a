package model

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// SchemaViolation reports a field that failed a structural or range rule.
// Field is a JSON-ish path into the aggregate ("skills[2].name").
type SchemaViolation struct {
	Field string
	Rule  string
	Value string
}

func (e *SchemaViolation) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Rule)
	}
	return fmt.Sprintf("%s: %s (got %q)", e.Field, e.Rule, e.Value)
}

func violation(field, rule, value string) *SchemaViolation {
	return &SchemaViolation{Field: field, Rule: rule, Value: value}
}

// DefaultSkillDenylist rejects generic filler phrases as skill names.
var DefaultSkillDenylist = []string{
	"team player",
	"hard worker",
	"quick learner",
	"detail oriented",
	"self motivated",
	"go-getter",
	"results driven",
	"passionate",
	"self-starter",
}

// Field bounds shared with the document schema in the store package.
const (
	MinDescriptionLen   = 20
	MaxDescriptionLen   = 500
	MinDescriptionWords = 5
	MaxResultLen        = 200
	MinSkillNameLen     = 2
	MaxSkillNameLen     = 100
)

var skillNameRe = regexp.MustCompile(`^[A-Za-z0-9\s\.\-\+#&/]+$`)

// ValidateOptions tune the range rules. The zero value is not usable;
// start from DefaultValidateOptions.
type ValidateOptions struct {
	// MinYear is the earliest plausible year for any historical date.
	MinYear int
	// Now anchors "no future dates" checks.
	Now time.Time
	// SkillDenylist is matched case-insensitively against skill names.
	SkillDenylist []string
}

// DefaultValidateOptions returns the standard rule set anchored at now.
func DefaultValidateOptions(now time.Time) ValidateOptions {
	return ValidateOptions{
		MinYear:       1950,
		Now:           now,
		SkillDenylist: DefaultSkillDenylist,
	}
}

func equalFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

func (o ValidateOptions) checkYearMonth(field string, ym YearMonth, allowPresent bool) *SchemaViolation {
	if allowPresent && ym.IsPresent() {
		return nil
	}
	if !ym.Valid() {
		return violation(field, "must be a YYYY-MM date token", string(ym))
	}
	if ym.Year() < o.MinYear {
		return violation(field, fmt.Sprintf("year must not be before %d", o.MinYear), string(ym))
	}
	if ym.After(CurrentYearMonth(o.Now)) {
		return violation(field, "must not be in the future", string(ym))
	}
	return nil
}

func (o ValidateOptions) checkTimeframe(field string, tf Timeframe) *SchemaViolation {
	if !tf.Valid() {
		return violation(field, `must be "YYYY-MM", "YYYY-MM to YYYY-MM" or "YYYY-MM to Present"`, string(tf))
	}
	start, end := tf.Bounds()
	if v := o.checkYearMonth(field, start, false); v != nil {
		return v
	}
	if v := o.checkYearMonth(field, end, true); v != nil {
		return v
	}
	if end.Before(start) {
		return violation(field, "end must not be before start", string(tf))
	}
	return nil
}

// Validate checks the contact fields. Placeholder phone numbers and
// malformed emails are rejected.
func (c ContactInfo) Validate(field string) error {
	if strings.TrimSpace(c.Name) == "" {
		return violation(field+".name", "must not be empty", "")
	}
	if !strings.Contains(c.Email, "@") || !strings.Contains(c.Email, ".") {
		return violation(field+".email", "must be a valid email address", c.Email)
	}
	if strings.Contains(c.Phone, "555-555") || strings.Contains(c.Phone, "XXX") {
		return violation(field+".phone", "placeholder phone number", c.Phone)
	}
	return nil
}

// Validate checks description quality, company, timeframe and result bounds.
func (a Achievement) Validate(field string, opts ValidateOptions) error {
	desc := strings.TrimSpace(a.Description)
	if len(desc) < MinDescriptionLen || len(desc) > MaxDescriptionLen {
		return violation(field+".description",
			fmt.Sprintf("must be %d-%d characters", MinDescriptionLen, MaxDescriptionLen), desc)
	}
	if len(strings.Fields(desc)) < MinDescriptionWords {
		return violation(field+".description",
			fmt.Sprintf("too short, provide specific context (minimum %d words)", MinDescriptionWords), desc)
	}
	if strings.TrimSpace(a.Company) == "" {
		return violation(field+".company", "must not be empty", "")
	}
	if v := opts.checkTimeframe(field+".timeframe", a.Timeframe); v != nil {
		return v
	}
	if len(a.Result) > MaxResultLen {
		return violation(field+".result", fmt.Sprintf("must be at most %d characters", MaxResultLen), a.Result)
	}
	return nil
}

// Validate checks the skill name, enums, last-used date and examples.
func (s Skill) Validate(field string, opts ValidateOptions) error {
	name := strings.TrimSpace(s.Name)
	if len(name) < MinSkillNameLen || len(name) > MaxSkillNameLen {
		return violation(field+".name",
			fmt.Sprintf("must be %d-%d characters", MinSkillNameLen, MaxSkillNameLen), name)
	}
	if !skillNameRe.MatchString(name) {
		return violation(field+".name", "contains invalid characters", name)
	}
	for _, banned := range opts.SkillDenylist {
		if equalFold(name, banned) {
			return violation(field+".name", "too generic, specify a concrete technical or domain skill", name)
		}
	}
	if !ValidCategories[s.Category] {
		return violation(field+".category", "must be one of technical, soft, domain", s.Category)
	}
	if !ValidProficiencies[s.Proficiency] {
		return violation(field+".proficiency", "must be one of beginner, intermediate, advanced, expert", s.Proficiency)
	}
	if v := opts.checkYearMonth(field+".last_used", s.LastUsed, false); v != nil {
		return v
	}
	if len(s.Examples) == 0 {
		return violation(field+".examples", "a skill needs at least one achievement example", "")
	}
	for i, ex := range s.Examples {
		if err := ex.Validate(fmt.Sprintf("%s.examples[%d]", field, i), opts); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks the job fields and date ordering.
func (j Job) Validate(field string, opts ValidateOptions) error {
	if strings.TrimSpace(j.Company) == "" {
		return violation(field+".company", "must not be empty", "")
	}
	if strings.TrimSpace(j.Title) == "" {
		return violation(field+".title", "must not be empty", "")
	}
	if v := opts.checkYearMonth(field+".start_date", j.StartDate, false); v != nil {
		return v
	}
	if j.EndDate != "" {
		if v := opts.checkYearMonth(field+".end_date", j.EndDate, true); v != nil {
			return v
		}
		if j.EndDate.Before(j.StartDate) {
			return violation(field+".end_date", "must not be before start_date", string(j.EndDate))
		}
	}
	for i, a := range j.Achievements {
		if err := a.Validate(fmt.Sprintf("%s.achievements[%d]", field, i), opts); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks an education entry.
func (e Education) Validate(field string) error {
	if strings.TrimSpace(e.Degree) == "" {
		return violation(field+".degree", "must not be empty", "")
	}
	if strings.TrimSpace(e.School) == "" {
		return violation(field+".school", "must not be empty", "")
	}
	return nil
}

// Validate checks a certification entry.
func (c Certification) Validate(field string) error {
	if strings.TrimSpace(c.Title) == "" {
		return violation(field+".title", "must not be empty", "")
	}
	if strings.TrimSpace(c.Organization) == "" {
		return violation(field+".organization", "must not be empty", "")
	}
	return nil
}

// Validate checks a project entry.
func (p Project) Validate(field string, opts ValidateOptions) error {
	if strings.TrimSpace(p.Title) == "" {
		return violation(field+".title", "must not be empty", "")
	}
	if strings.TrimSpace(p.Description) == "" {
		return violation(field+".description", "must not be empty", "")
	}
	return opts.checkTimeframe(field+".timeframe", p.Timeframe)
}

// Validate checks a personal value entry.
func (p PersonalValue) Validate(field string) error {
	if len(strings.TrimSpace(p.Content)) < 10 {
		return violation(field+".content", "must be at least 10 characters", p.Content)
	}
	if !ValidValueCategories[p.Category] {
		return violation(field+".category", "must be one of values, personal_story, motivation", p.Category)
	}
	return nil
}

// Validate checks the candidate entry with the same rules an accepted
// skill and achievement will have to satisfy.
func (d DiscoveredEntry) Validate(opts ValidateOptions) error {
	name := strings.TrimSpace(d.Name)
	if len(name) < MinSkillNameLen || len(name) > MaxSkillNameLen {
		return violation("name", fmt.Sprintf("must be %d-%d characters", MinSkillNameLen, MaxSkillNameLen), name)
	}
	if !skillNameRe.MatchString(name) {
		return violation("name", "contains invalid characters", name)
	}
	for _, banned := range opts.SkillDenylist {
		if equalFold(name, banned) {
			return violation("name", "too generic, specify a concrete technical or domain skill", name)
		}
	}
	if strings.TrimSpace(d.Company) == "" {
		return violation("company", "must not be empty", "")
	}
	if !d.Timeframe.Valid() {
		return violation("timeframe", `must be "YYYY-MM", "YYYY-MM to YYYY-MM" or "YYYY-MM to Present"`, string(d.Timeframe))
	}
	example := strings.TrimSpace(d.Example)
	if len(example) < MinDescriptionLen || len(example) > MaxDescriptionLen {
		return violation("example", fmt.Sprintf("must be %d-%d characters", MinDescriptionLen, MaxDescriptionLen), example)
	}
	if len(strings.Fields(example)) < MinDescriptionWords {
		return violation("example", fmt.Sprintf("too short, provide specific context (minimum %d words)", MinDescriptionWords), example)
	}
	if len(d.Result) > MaxResultLen {
		return violation("result", fmt.Sprintf("must be at most %d characters", MaxResultLen), d.Result)
	}
	if d.Category != "" && !ValidCategories[d.Category] {
		return violation("category", "must be one of technical, soft, domain", d.Category)
	}
	return nil
}

// Validate walks the whole aggregate. The first violation found is
// returned with its full field path.
func (s *CareerStore) Validate(opts ValidateOptions) error {
	if !SupportedVersions[s.Version] {
		return violation("version", "unsupported store version", s.Version)
	}
	if err := s.ContactInfo.Validate("contact_info"); err != nil {
		return err
	}
	for i, j := range s.Jobs {
		if err := j.Validate(fmt.Sprintf("jobs[%d]", i), opts); err != nil {
			return err
		}
	}
	seen := make(map[string]int, len(s.Skills))
	for i, sk := range s.Skills {
		field := fmt.Sprintf("skills[%d]", i)
		if err := sk.Validate(field, opts); err != nil {
			return err
		}
		key := strings.ToLower(strings.TrimSpace(sk.Name))
		if prev, dup := seen[key]; dup {
			return violation(field+".name",
				fmt.Sprintf("duplicate skill name, already declared at skills[%d]", prev), sk.Name)
		}
		seen[key] = i
	}
	// Weak skill references on jobs must resolve once the skill list is known.
	for i, j := range s.Jobs {
		for k, ref := range j.SkillsUsed {
			if _, ok := seen[strings.ToLower(strings.TrimSpace(ref))]; !ok {
				return violation(fmt.Sprintf("jobs[%d].skills_used[%d]", i, k),
					"does not resolve to any skill name", ref)
			}
		}
	}
	for i, e := range s.Education {
		if err := e.Validate(fmt.Sprintf("education[%d]", i)); err != nil {
			return err
		}
	}
	for i, c := range s.Certifications {
		if err := c.Validate(fmt.Sprintf("certifications[%d]", i)); err != nil {
			return err
		}
	}
	for i, p := range s.Projects {
		if err := p.Validate(fmt.Sprintf("projects[%d]", i), opts); err != nil {
			return err
		}
	}
	for i, p := range s.PersonalValues {
		if err := p.Validate(fmt.Sprintf("personal_values[%d]", i)); err != nil {
			return err
		}
	}
	return nil
}
