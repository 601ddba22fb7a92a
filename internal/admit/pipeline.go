// Package admit implements the admission pipeline gating new career data:
// Drafting -> Validating -> AwaitingReview -> {Accepted | Discarded}.
// Each candidate is an independent run; nothing is persisted before an
// explicit approval.
package admit

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/rcliao/career-vault/internal/check"
	"github.com/rcliao/career-vault/internal/model"
	"github.com/rcliao/career-vault/internal/store"
)

// State of an admission run.
type State string

const (
	StateDrafting       State = "drafting"
	StateValidating     State = "validating"
	StateAwaitingReview State = "awaiting_review"
	StateAccepted       State = "accepted"
	StateDiscarded      State = "discarded"
)

// Run is one pass of a candidate through the pipeline. A run in
// StateDrafting with FieldErrors set was rejected by schema validation
// and can be edited and resubmitted.
type Run struct {
	ID         string
	State      State
	Candidate  model.DiscoveredEntry
	SourceText string

	// FieldErrors are fatal schema violations on the candidate itself.
	FieldErrors []*model.SchemaViolation
	// Errors are fatal consistency findings (future dates).
	Errors []check.Finding
	// Warnings are advisory findings from both checkers, surfaced for
	// the human review decision.
	Warnings []check.Finding

	// ExistingSkill is set when the candidate duplicates a stored skill;
	// approval then appends an example instead of creating a new skill.
	ExistingSkill string
}

// Options configure a pipeline.
type Options struct {
	Validate     model.ValidateOptions
	Consistency  check.ConsistencyOptions
	Authenticity check.AuthenticityOptions
	Logger       *zap.Logger
}

// Pipeline validates candidates and performs the enrichment write on
// approval. It holds no state between runs.
type Pipeline struct {
	store   store.Store
	opts    Options
	log     *zap.Logger
	entropy *rand.Rand
}

// New creates a pipeline over the given store.
func New(s store.Store, opts Options) *Pipeline {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Validate.MinYear == 0 {
		opts.Validate = model.DefaultValidateOptions(time.Now())
	}
	if opts.Consistency.YearsBack == 0 {
		opts.Consistency.YearsBack = check.DefaultConsistencyOptions(time.Now()).YearsBack
	}
	return &Pipeline{
		store:   s,
		opts:    opts,
		log:     opts.Logger,
		entropy: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (p *Pipeline) newID() string {
	return ulid.MustNew(ulid.Timestamp(time.Now()), p.entropy).String()
}

// Submit runs a candidate through schema validation and, if that passes,
// both checkers. Schema failures return the run to StateDrafting with
// FieldErrors set; otherwise the run reaches StateAwaitingReview no
// matter how many warnings were found.
func (p *Pipeline) Submit(ctx context.Context, cand model.DiscoveredEntry, sourceText string) (*Run, error) {
	run := &Run{
		ID:         p.newID(),
		State:      StateValidating,
		Candidate:  cand,
		SourceText: sourceText,
	}
	return p.validate(ctx, run)
}

// Edit re-enters a discarded or rejected run at Drafting with a revised
// candidate and resubmits it, keeping the run ID.
func (p *Pipeline) Edit(ctx context.Context, run *Run, cand model.DiscoveredEntry) (*Run, error) {
	if run.State == StateAccepted {
		return nil, fmt.Errorf("run %s is already accepted", run.ID)
	}
	next := &Run{
		ID:         run.ID,
		State:      StateValidating,
		Candidate:  cand,
		SourceText: run.SourceText,
	}
	return p.validate(ctx, next)
}

func (p *Pipeline) validate(ctx context.Context, run *Run) (*Run, error) {
	if err := run.Candidate.Validate(p.validateOpts()); err != nil {
		var sv *model.SchemaViolation
		if !errors.As(err, &sv) {
			return nil, err
		}
		run.State = StateDrafting
		run.FieldErrors = append(run.FieldErrors, sv)
		p.log.Debug("candidate rejected by schema validation",
			zap.String("run", run.ID), zap.String("field", sv.Field))
		return run, nil
	}

	cs, err := p.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load store for validation: %w", err)
	}

	// Both checkers are pure and order-independent.
	var (
		consistency  check.ConsistencyResult
		authenticity []check.Finding
	)
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		consistency = check.Consistency(run.Candidate, cs, p.consistencyOpts())
		return nil
	})
	g.Go(func() error {
		authenticity = check.Authenticity(run.Candidate.Example, run.SourceText, p.opts.Authenticity)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	run.Errors = consistency.Errors
	run.Warnings = append(append(run.Warnings, consistency.Warnings...), authenticity...)
	run.ExistingSkill = consistency.ExistingSkill
	run.State = StateAwaitingReview

	p.log.Debug("candidate awaiting review",
		zap.String("run", run.ID),
		zap.Int("errors", len(run.Errors)),
		zap.Int("warnings", len(run.Warnings)))
	return run, nil
}

// Approve performs the enrichment write: append the achievement to the
// existing skill (bumping its last-used date) or create a new skill with
// this single example, then save through the validated path.
func (p *Pipeline) Approve(ctx context.Context, run *Run) error {
	if run.State != StateAwaitingReview {
		return fmt.Errorf("run %s is %s, not awaiting review", run.ID, run.State)
	}
	if len(run.Errors) > 0 {
		return fmt.Errorf("run %s has %d unresolved consistency error(s)", run.ID, len(run.Errors))
	}

	cs, err := p.store.Load()
	if err != nil {
		return fmt.Errorf("load store for enrichment: %w", err)
	}

	cand := run.Candidate
	lastUsed := lastUsedFor(cand.Timeframe, p.consistencyOpts().Now)

	if existing := cs.FindSkill(cand.Name); existing != nil {
		existing.Examples = append(existing.Examples, cand.Achievement())
		if lastUsed.After(existing.LastUsed) {
			existing.LastUsed = lastUsed
		}
	} else {
		category := cand.Category
		if category == "" {
			category = "technical"
		}
		cs.Skills = append(cs.Skills, model.Skill{
			Name:        cand.Name,
			Category:    category,
			Proficiency: "intermediate",
			LastUsed:    lastUsed,
			Examples:    []model.Achievement{cand.Achievement()},
		})
	}

	if err := p.store.Save(cs); err != nil {
		return err
	}
	run.State = StateAccepted
	p.log.Info("candidate accepted",
		zap.String("run", run.ID), zap.String("skill", cand.Name))
	return nil
}

// Discard rejects a run without touching the store. When skip is true the
// skill name is recorded so discovery stops proposing it; that is the only
// mutation, and it goes through the validated save path.
func (p *Pipeline) Discard(ctx context.Context, run *Run, skip bool) error {
	if run.State == StateAccepted {
		return fmt.Errorf("run %s is already accepted", run.ID)
	}
	run.State = StateDiscarded
	if !skip {
		return nil
	}

	cs, err := p.store.Load()
	if err != nil {
		return fmt.Errorf("load store: %w", err)
	}
	if cs.HasSkipped(run.Candidate.Name) {
		return nil
	}
	cs.SkippedSkills = append(cs.SkippedSkills, run.Candidate.Name)
	if err := p.store.Save(cs); err != nil {
		return err
	}
	p.log.Info("skill marked as skipped",
		zap.String("run", run.ID), zap.String("skill", run.Candidate.Name))
	return nil
}

func (p *Pipeline) validateOpts() model.ValidateOptions {
	v := p.opts.Validate
	v.Now = time.Now()
	return v
}

func (p *Pipeline) consistencyOpts() check.ConsistencyOptions {
	c := p.opts.Consistency
	if c.Now.IsZero() {
		c.Now = time.Now()
	}
	return c
}

// lastUsedFor derives a skill's last-used month from the candidate
// timeframe: the concrete end month, or the current month for Present.
func lastUsedFor(tf model.Timeframe, now time.Time) model.YearMonth {
	_, end := tf.Bounds()
	if end.IsPresent() {
		return model.CurrentYearMonth(now)
	}
	return end
}
