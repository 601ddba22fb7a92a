package check

import (
	"fmt"
	"time"

	"github.com/rcliao/career-vault/internal/model"
)

// ConsistencyOptions tune the cross-reference checks.
type ConsistencyOptions struct {
	// Now anchors the future-date and staleness checks.
	Now time.Time
	// YearsBack is the reasonability bound: a newly introduced skill whose
	// timeframe starts more than this many years ago draws a warning.
	YearsBack int
}

// DefaultConsistencyOptions returns the standard bounds anchored at now.
func DefaultConsistencyOptions(now time.Time) ConsistencyOptions {
	return ConsistencyOptions{Now: now, YearsBack: 10}
}

// ConsistencyResult separates fatal errors from advisory warnings and
// carries the duplicate-skill signal for the enrichment write.
type ConsistencyResult struct {
	Errors   []Finding
	Warnings []Finding

	// ExistingSkill is the name of an already-stored skill matching the
	// candidate case-insensitively, or "" when the candidate is new.
	ExistingSkill string
}

// Consistency cross-references a candidate against the current store:
// timeframe plausibility, company resolution, duplicate detection, and
// the staleness bound. Pure function of (candidate, store).
func Consistency(cand model.DiscoveredEntry, cs *model.CareerStore, opts ConsistencyOptions) ConsistencyResult {
	var res ConsistencyResult
	start, end := cand.Timeframe.Bounds()
	current := model.CurrentYearMonth(opts.Now)

	// Future dates are the only fatal findings here.
	if start.After(current) {
		res.Errors = append(res.Errors, Finding{
			Class:      ClassFutureDate,
			Match:      string(start),
			Suggestion: fmt.Sprintf("start date (%s) is in the future", start),
		})
	}
	if !end.IsPresent() && end.After(current) {
		res.Errors = append(res.Errors, Finding{
			Class:      ClassFutureDate,
			Match:      string(end),
			Suggestion: fmt.Sprintf("end date (%s) is in the future", end),
		})
	}

	job := cs.FindJob(cand.Company)
	if job == nil {
		// Legitimate side projects and unlisted work exist, so an unknown
		// company cannot be verified but is not an error.
		res.Warnings = append(res.Warnings, Finding{
			Class:      ClassUnknownCompany,
			Match:      cand.Company,
			Suggestion: fmt.Sprintf("company %q is not in your job history; is this a side project or freelance work?", cand.Company),
		})
	} else if len(res.Errors) == 0 {
		jobEnd := job.EndDate
		if jobEnd == "" || jobEnd.IsPresent() {
			jobEnd = current
		}
		outside := start.Before(job.StartDate)
		if !end.IsPresent() && end.After(jobEnd) {
			outside = true
		}
		if outside {
			res.Warnings = append(res.Warnings, Finding{
				Class: ClassOutsideJobRange,
				Match: string(cand.Timeframe),
				Suggestion: fmt.Sprintf("timeframe (%s) is outside your employment at %s (%s to %s); is this from a side project?",
					cand.Timeframe, job.Company, job.StartDate, job.EndDate),
			})
		}
	}

	if existing := cs.FindSkill(cand.Name); existing != nil {
		res.ExistingSkill = existing.Name
		res.Warnings = append(res.Warnings, Finding{
			Class: ClassDuplicateSkill,
			Match: existing.Name,
			Suggestion: fmt.Sprintf("you already have %q listed with %d example(s); add this as another example?",
				existing.Name, len(existing.Examples)),
		})
	} else if opts.YearsBack > 0 {
		// Stale claims are a lower-value signal for a skill being newly
		// introduced; existing skills already carry fresher evidence.
		if years := cand.Timeframe.YearsBefore(opts.Now); years > float64(opts.YearsBack) {
			res.Warnings = append(res.Warnings, Finding{
				Class:      ClassStaleExperience,
				Match:      string(cand.Timeframe),
				Suggestion: fmt.Sprintf("this experience is from %.1f years ago; is this skill still relevant?", years),
			})
		}
	}

	return res
}
