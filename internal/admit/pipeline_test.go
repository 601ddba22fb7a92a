package admit

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcliao/career-vault/internal/check"
	"github.com/rcliao/career-vault/internal/model"
	"github.com/rcliao/career-vault/internal/store"
)

var testNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func seedStore() *model.CareerStore {
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
			LastUsed:    "2021-03",
			Examples: []model.Achievement{{
				Description: "Built the order ingestion service in Go handling 2k requests per second",
				Company:     "Acme",
				Timeframe:   "2021-03",
			}},
		}},
	}
}

func newTestPipeline(t *testing.T) (*Pipeline, store.Store) {
	t.Helper()
	s, err := store.New(store.Options{
		Path:          filepath.Join(t.TempDir(), "career_data.json"),
		BackupEnabled: true,
		CacheEnabled:  true,
	})
	if err != nil {
		t.Fatalf("create store: %v", err)
	}
	if err := s.Save(seedStore()); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	p := New(s, Options{
		Consistency: check.DefaultConsistencyOptions(testNow),
	})
	return p, s
}

func validCandidate() model.DiscoveredEntry {
	return model.DiscoveredEntry{
		Name:      "Kubernetes",
		Company:   "Acme",
		Timeframe: "2021-05",
		Example:   "Deployed the payments service to a managed Kubernetes cluster with rolling upgrades",
	}
}

func TestSubmitReachesReview(t *testing.T) {
	p, _ := newTestPipeline(t)

	run, err := p.Submit(context.Background(), validCandidate(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.State != StateAwaitingReview {
		t.Fatalf("expected %s, got %s", StateAwaitingReview, run.State)
	}
	if run.ID == "" {
		t.Error("expected a run ID")
	}
	if len(run.Errors) != 0 {
		t.Errorf("expected no errors, got %+v", run.Errors)
	}
}

func TestSubmitSchemaFailureReturnsToDrafting(t *testing.T) {
	p, _ := newTestPipeline(t)

	cand := validCandidate()
	cand.Name = "x"
	run, err := p.Submit(context.Background(), cand, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.State != StateDrafting {
		t.Fatalf("expected %s, got %s", StateDrafting, run.State)
	}
	if len(run.FieldErrors) == 0 {
		t.Fatal("expected field errors")
	}
	if run.FieldErrors[0].Field != "name" {
		t.Errorf("expected violation on name, got %q", run.FieldErrors[0].Field)
	}
}

func TestWarningsNeverBlockReview(t *testing.T) {
	p, _ := newTestPipeline(t)

	cand := validCandidate()
	cand.Company = "Initech" // unknown company, warning only
	cand.Example = "Used cutting-edge tooling on various initiatives across many internal teams"
	run, err := p.Submit(context.Background(), cand, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.State != StateAwaitingReview {
		t.Fatalf("expected %s despite warnings, got %s", StateAwaitingReview, run.State)
	}
	if len(run.Warnings) == 0 {
		t.Fatal("expected warnings")
	}
}

func TestApproveCreatesNewSkill(t *testing.T) {
	p, s := newTestPipeline(t)

	run, err := p.Submit(context.Background(), validCandidate(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := p.Approve(context.Background(), run); err != nil {
		t.Fatalf("approve: %v", err)
	}
	if run.State != StateAccepted {
		t.Fatalf("expected %s, got %s", StateAccepted, run.State)
	}

	cs, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cs.Skills) != 2 {
		t.Fatalf("expected 2 skills, got %d", len(cs.Skills))
	}
	added := cs.FindSkill("Kubernetes")
	if added == nil {
		t.Fatal("expected Kubernetes skill")
	}
	if added.Category != "technical" || added.Proficiency != "intermediate" {
		t.Errorf("unexpected defaults: %+v", added)
	}
	if added.LastUsed != "2021-05" {
		t.Errorf("expected last_used 2021-05, got %s", added.LastUsed)
	}
	if len(added.Examples) != 1 {
		t.Errorf("expected 1 example, got %d", len(added.Examples))
	}
}

func TestApproveAppendsToExistingSkill(t *testing.T) {
	p, s := newTestPipeline(t)

	cand := validCandidate()
	cand.Name = "go" // case-insensitive duplicate
	cand.Timeframe = "2022-01"
	run, err := p.Submit(context.Background(), cand, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.ExistingSkill != "Go" {
		t.Fatalf("expected duplicate signal for Go, got %q", run.ExistingSkill)
	}
	if err := p.Approve(context.Background(), run); err != nil {
		t.Fatalf("approve: %v", err)
	}

	cs, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cs.Skills) != 1 {
		t.Fatalf("expected skill count unchanged at 1, got %d", len(cs.Skills))
	}
	existing := cs.FindSkill("Go")
	if len(existing.Examples) != 2 {
		t.Fatalf("expected 2 examples, got %d", len(existing.Examples))
	}
	if existing.LastUsed != "2022-01" {
		t.Errorf("expected last_used bumped to 2022-01, got %s", existing.LastUsed)
	}
}

func TestApproveRefusedWithErrors(t *testing.T) {
	p, s := newTestPipeline(t)

	cand := validCandidate()
	cand.Timeframe = "2026-01" // future relative to testNow
	run, err := p.Submit(context.Background(), cand, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if len(run.Errors) == 0 {
		t.Fatal("expected a future-date error")
	}
	if err := p.Approve(context.Background(), run); err == nil {
		t.Fatal("expected approve to be refused")
	}

	cs, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cs.Skills) != 1 {
		t.Errorf("store must be unchanged, got %d skills", len(cs.Skills))
	}
}

func TestDiscardWithSkip(t *testing.T) {
	p, s := newTestPipeline(t)

	run, err := p.Submit(context.Background(), validCandidate(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := p.Discard(context.Background(), run, true); err != nil {
		t.Fatalf("discard: %v", err)
	}
	if run.State != StateDiscarded {
		t.Fatalf("expected %s, got %s", StateDiscarded, run.State)
	}

	cs, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cs.Skills) != 1 {
		t.Errorf("discard must not add skills, got %d", len(cs.Skills))
	}
	if !cs.HasSkipped("Kubernetes") {
		t.Error("expected skill recorded as skipped")
	}
}

func TestDiscardWithoutSkipLeavesStoreUntouched(t *testing.T) {
	p, s := newTestPipeline(t)

	run, err := p.Submit(context.Background(), validCandidate(), "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	before, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	updated := before.LastUpdated

	if err := p.Discard(context.Background(), run, false); err != nil {
		t.Fatalf("discard: %v", err)
	}
	after, err := s.Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !after.LastUpdated.Equal(updated) {
		t.Error("plain discard must not write the store")
	}
}

func TestEditResubmits(t *testing.T) {
	p, _ := newTestPipeline(t)

	cand := validCandidate()
	cand.Example = "too short"
	run, err := p.Submit(context.Background(), cand, "")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if run.State != StateDrafting {
		t.Fatalf("expected %s, got %s", StateDrafting, run.State)
	}

	fixed := validCandidate()
	next, err := p.Edit(context.Background(), run, fixed)
	if err != nil {
		t.Fatalf("edit: %v", err)
	}
	if next.ID != run.ID {
		t.Error("edit should keep the run ID")
	}
	if next.State != StateAwaitingReview {
		t.Fatalf("expected %s, got %s", StateAwaitingReview, next.State)
	}
}

func TestCopyPasteWarningFromSource(t *testing.T) {
	p, _ := newTestPipeline(t)

	cand := validCandidate()
	source := cand.Example
	run, err := p.Submit(context.Background(), cand, source)
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	found := false
	for _, w := range run.Warnings {
		if w.Class == check.ClassCopyPaste {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a copy-paste warning, got %+v", run.Warnings)
	}
}
