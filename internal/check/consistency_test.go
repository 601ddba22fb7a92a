package check

import (
	"testing"
	"time"

	"github.com/rcliao/career-vault/internal/model"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func testStore() *model.CareerStore {
	return &model.CareerStore{
		Version: model.CurrentVersion,
		ContactInfo: model.ContactInfo{
			Name: "Jane Doe", Email: "jane@example.com", Phone: "303-555-0100",
		},
		Jobs: []model.Job{{
			Company:   "Acme",
			Title:     "Software Engineer",
			StartDate: "2020-01",
			EndDate:   "2022-06",
		}},
		Skills: []model.Skill{{
			Name:        "Go",
			Category:    "technical",
			Proficiency: "advanced",
			LastUsed:    "2022-06",
			Examples: []model.Achievement{{
				Description: "Built the order ingestion service in Go handling 2k requests per second",
				Company:     "Acme",
				Timeframe:   "2021-05",
			}},
		}},
	}
}

func candidate(name, company string, tf model.Timeframe) model.DiscoveredEntry {
	return model.DiscoveredEntry{
		Name:      name,
		Company:   company,
		Timeframe: tf,
		Example:   "Tuned the service mesh configuration reducing tail latency by forty percent",
	}
}

func hasClass(findings []Finding, class Class) bool {
	for _, f := range findings {
		if f.Class == class {
			return true
		}
	}
	return false
}

func TestTimeframeWithinJobRange(t *testing.T) {
	res := Consistency(candidate("Kubernetes", "Acme", "2021-05"), testStore(), DefaultConsistencyOptions(testNow))

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", res.Errors)
	}
	if len(res.Warnings) != 0 {
		t.Fatalf("expected no warnings, got %+v", res.Warnings)
	}
}

func TestTimeframeOutsideJobRange(t *testing.T) {
	res := Consistency(candidate("Kubernetes", "Acme", "2023-01"), testStore(), DefaultConsistencyOptions(testNow))

	if len(res.Errors) != 0 {
		t.Fatalf("expected no errors, got %+v", res.Errors)
	}
	if !hasClass(res.Warnings, ClassOutsideJobRange) {
		t.Errorf("expected outside-job-range warning, got %+v", res.Warnings)
	}
}

func TestFutureTimeframeIsError(t *testing.T) {
	res := Consistency(candidate("Kubernetes", "Acme", "2026-01"), testStore(), DefaultConsistencyOptions(testNow))

	if !hasClass(res.Errors, ClassFutureDate) {
		t.Fatalf("expected future-date error, got %+v", res.Errors)
	}
}

func TestUnknownCompanyIsWarning(t *testing.T) {
	res := Consistency(candidate("Kubernetes", "Initech", "2021-05"), testStore(), DefaultConsistencyOptions(testNow))

	if len(res.Errors) != 0 {
		t.Fatalf("unknown company must not be an error, got %+v", res.Errors)
	}
	if !hasClass(res.Warnings, ClassUnknownCompany) {
		t.Errorf("expected unknown-company warning, got %+v", res.Warnings)
	}
}

func TestDuplicateSkillSignal(t *testing.T) {
	res := Consistency(candidate("go", "Acme", "2021-05"), testStore(), DefaultConsistencyOptions(testNow))

	if res.ExistingSkill != "Go" {
		t.Errorf("expected existing skill %q, got %q", "Go", res.ExistingSkill)
	}
	if !hasClass(res.Warnings, ClassDuplicateSkill) {
		t.Errorf("expected duplicate-skill warning, got %+v", res.Warnings)
	}
	if len(res.Errors) != 0 {
		t.Errorf("a duplicate is never an error, got %+v", res.Errors)
	}
}

func TestStaleExperienceWarning(t *testing.T) {
	// Store the skill under a side project so only the staleness check fires.
	res := Consistency(candidate("COBOL", "Initech", "2010-03"), testStore(), DefaultConsistencyOptions(testNow))

	if !hasClass(res.Warnings, ClassStaleExperience) {
		t.Errorf("expected stale-experience warning, got %+v", res.Warnings)
	}

	// A duplicate of an existing skill is exempt from the staleness bound.
	res = Consistency(candidate("Go", "Acme", "2010-03"), testStore(), DefaultConsistencyOptions(testNow))
	if hasClass(res.Warnings, ClassStaleExperience) {
		t.Errorf("existing skill should not draw a staleness warning, got %+v", res.Warnings)
	}
}
