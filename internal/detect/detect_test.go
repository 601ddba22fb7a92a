package detect

import (
	"testing"

	"github.com/rcliao/career-vault/internal/model"
)

func testStore() *model.CareerStore {
	return &model.CareerStore{
		Version: model.CurrentVersion,
		Skills: []model.Skill{{
			Name:        "Python",
			Category:    "technical",
			Proficiency: "advanced",
			LastUsed:    "2024-01",
			Examples: []model.Achievement{{
				Description: "Automated the nightly reconciliation reports with Python and pandas",
				Company:     "Acme",
				Timeframe:   "2023-05",
			}},
		}},
		SkippedSkills: []string{"Terraform"},
	}
}

func contains(names []string, want string) bool {
	for _, n := range names {
		if n == want {
			return true
		}
	}
	return false
}

func TestMissingSkills(t *testing.T) {
	desc := "We need someone strong in Python, Kubernetes and Terraform. " +
		"Experience with Kubernetes operators and AWS is a plus."

	got := MissingSkills(desc, testStore(), 5)

	if contains(got, "Python") {
		t.Error("existing skills must not be proposed")
	}
	if contains(got, "Terraform") {
		t.Error("skipped skills must not be proposed")
	}
	if !contains(got, "Kubernetes") {
		t.Errorf("expected Kubernetes in %v", got)
	}
	if !contains(got, "AWS") {
		t.Errorf("expected AWS in %v", got)
	}
}

func TestFrequencyOrdering(t *testing.T) {
	desc := "Kafka pipelines everywhere: Kafka consumers, Kafka producers, and a bit of Redis."

	got := MissingSkills(desc, testStore(), 5)
	if len(got) < 2 {
		t.Fatalf("expected at least two detections, got %v", got)
	}
	if got[0] != "Kafka" {
		t.Errorf("expected Kafka first by frequency, got %v", got)
	}
}

func TestMaxLimit(t *testing.T) {
	desc := "Python Java Ruby Rust Scala Kotlin Swift PHP"

	got := MissingSkills(desc, testStore(), 3)
	if len(got) != 3 {
		t.Errorf("expected 3 results, got %v", got)
	}
}

func TestAcronymDetection(t *testing.T) {
	desc := "You will design JSON APIs over HTTP."

	got := MissingSkills(desc, testStore(), 5)
	if !contains(got, "JSON") {
		t.Errorf("expected JSON in %v", got)
	}
	if !contains(got, "HTTP") {
		t.Errorf("expected HTTP in %v", got)
	}
}

func TestProperCapitalization(t *testing.T) {
	desc := "Looking for sql and postgresql experience."

	got := MissingSkills(desc, testStore(), 5)
	if !contains(got, "SQL") {
		t.Errorf("expected SQL in %v", got)
	}
	if !contains(got, "PostgreSQL") {
		t.Errorf("expected PostgreSQL in %v", got)
	}
}

func TestNoMatches(t *testing.T) {
	got := MissingSkills("We value kindness and punctuality.", testStore(), 5)
	if len(got) != 0 {
		t.Errorf("expected no detections, got %v", got)
	}
}
