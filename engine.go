package triage

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/medha-scaler/triage/classify"
	"github.com/medha-scaler/triage/internal/catalog"
	"github.com/medha-scaler/triage/internal/hooks"
	"github.com/medha-scaler/triage/internal/logger"
	"github.com/medha-scaler/triage/internal/metrics"
	"github.com/medha-scaler/triage/score"
	"github.com/medha-scaler/triage/skillmap"
)

// Engine triages issues: it classifies them, derives the skills they call
// for, and assigns them to the most suitable registered user.
//
// Engine is the main entry point of the triage library. It handles:
//   - User registration with skills and capacity
//   - Keyword classification of issue text
//   - Label-to-skill expansion
//   - Candidate scoring and deterministic selection
//   - Workload reservation with capacity enforcement
//
// Thread Safety:
//   - All public methods are safe for concurrent use
//   - Candidate selection and reservation happen under one lock, so two
//     concurrent Assign calls cannot both seat a user's last free slot
//
// Testing:
// Consumers can define minimal interfaces for mocking:
//
//	type Triager interface {
//	    Assign(ctx context.Context, issue triage.IssueDraft) (triage.Decision, error)
//	}
type Engine struct {
	cfg Config

	classifier Classifier
	mapper     SkillMapper
	scorer     Scorer
	source     RosterSource

	users   *catalog.Catalog
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	// mu serializes candidate selection and reservation in Assign
	mu sync.Mutex
}

// Stats is a point-in-time view of the roster and its workload distribution.
type Stats struct {
	// RosterSize is the number of registered users.
	RosterSize int `json:"roster_size"`

	// Assignable is the number of users with remaining capacity.
	Assignable int `json:"assignable"`

	// TotalWorkload is the sum of all user workloads.
	TotalWorkload int `json:"total_workload"`

	// TotalCapacity is the sum of all user capacities.
	TotalCapacity int `json:"total_capacity"`

	// Users holds per-user snapshots in registration order.
	Users []Profile `json:"users"`
}

// New creates a new Engine instance with the provided configuration.
//
// Returns a concrete *Engine struct following the "accept interfaces,
// return structs" principle. Consumers can define their own interfaces
// for testing if needed.
//
// Parameters:
//   - cfg: Runtime configuration (weights, default capacity)
//   - opts: Optional configuration (classifier, mapper, scorer, roster
//     source, hooks, metrics, logger)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: Validation error if configuration is invalid
//
// Example:
//
//	cfg := triage.DefaultConfig()
//	eng, err := triage.New(&cfg)
//	if err != nil { /* handle */ }
//	_ = eng.Register("alice", []string{"frontend", "ui"}, 3)
//	decision, err := eng.Assign(ctx, triage.IssueDraft{Title: "UI is broken"})
func New(cfg *Config, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	// Log warnings for valid but non-recommended configuration values
	cfg.ValidateWithWarnings(loggerInstance)

	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	classifierInstance := options.classifier
	if classifierInstance == nil {
		classifierInstance = classify.NewKeyword()
	}

	mapperInstance := options.mapper
	if mapperInstance == nil {
		mapperInstance = skillmap.New()
	}

	scorerInstance := options.scorer
	if scorerInstance == nil {
		scorerInstance = score.NewWeighted(
			score.WithWeights(cfg.SkillWeight, cfg.WorkloadWeight),
			score.WithLogger(loggerInstance),
		)
	}

	return &Engine{
		cfg:        *cfg,
		classifier: classifierInstance,
		mapper:     mapperInstance,
		scorer:     scorerInstance,
		source:     options.source,
		users:      catalog.New(cfg.DefaultCapacity),
		hooks:      hooksInstance,
		metrics:    metricsCollector,
		logger:     loggerInstance,
	}, nil
}

// Register creates or replaces a user profile.
//
// Re-registering an existing user replaces the whole profile and resets
// the workload to zero. Duplicate skills collapse. A capacity below one
// falls back to the configured DefaultCapacity.
//
// Parameters:
//   - userID: Unique user identifier (must be non-empty)
//   - skills: Declared skill set (may be empty)
//   - capacity: Maximum concurrent assignments
//
// Returns:
//   - error: ErrInvalidUserID if userID is empty
func (e *Engine) Register(userID string, skills []string, capacity int) error {
	if userID == "" {
		return fmt.Errorf("register: %w", ErrInvalidUserID)
	}

	replaced := e.users.Register(userID, skills, capacity)

	profile, _ := e.users.Profile(userID)
	e.metrics.RecordRegistration(replaced)
	e.metrics.RecordRosterSize(e.users.Len())
	e.metrics.RecordWorkload(userID, profile.Workload, profile.Capacity)
	e.logger.Info("user registered",
		"user_id", userID,
		"skills", profile.Skills,
		"capacity", profile.Capacity,
		"replaced", replaced,
	)

	e.dispatchUserRegistered(profile)

	return nil
}

// Assign triages one issue and reserves a slot on the selected user.
//
// The pipeline:
//  1. Classify the issue text into labels
//  2. Expand labels into required skills
//  3. Collect candidates with remaining capacity (saturated users are
//     never scored), narrowed by the roster source when one is set
//  4. Score candidates; the highest score wins, ties go to the earliest
//     registered candidate
//  5. Reserve a workload slot on the winner
//
// An empty roster or a fully saturated one is a valid outcome: the
// returned decision carries labels but no assignee, and the error is nil.
//
// Parameters:
//   - ctx: Context for roster source lookups and hook dispatch
//   - issue: Issue to triage
//
// Returns:
//   - Decision: Labels plus the selected assignee and score, if any
//   - error: ErrRosterSource if the roster source fails; reservation
//     errors (ErrUnknownUser, ErrCapacityExceeded) only on logic bugs or
//     out-of-band catalog interference
func (e *Engine) Assign(ctx context.Context, issue IssueDraft) (Decision, error) {
	start := time.Now()

	labels := e.classifier.Classify(issue.Title, issue.Description)
	fallback := len(labels) == 1 && labels[0] == classify.FallbackLabel
	e.metrics.RecordClassification(len(labels), fallback)

	required := e.mapper.Required(labels)
	e.logger.Debug("issue classified",
		"title", issue.Title,
		"labels", labels,
		"required_skills", required,
	)

	e.mu.Lock()
	defer e.mu.Unlock()

	candidates := e.users.Candidates()
	if e.source != nil {
		members, err := e.source.Members(ctx)
		if err != nil {
			return Decision{Labels: labels}, fmt.Errorf("%w: %w", ErrRosterSource, err)
		}
		candidates = filterByMembers(candidates, members)
	}

	if len(candidates) == 0 {
		decision := Decision{Labels: labels}
		e.metrics.RecordUnassignable()
		e.logger.Info("no assignable users", "labels", labels, "roster_size", e.users.Len())
		e.dispatchUnassignable(ctx, decision)

		return decision, nil
	}

	// Candidates arrive in registration order; keeping the first best
	// score makes ties deterministic in favor of the earliest user.
	best := candidates[0]
	bestScore := e.scorer.Score(best, required)
	for _, candidate := range candidates[1:] {
		if s := e.scorer.Score(candidate, required); s > bestScore {
			best, bestScore = candidate, s
		}
	}

	if err := e.users.Reserve(best.UserID); err != nil {
		reason := "unknown_user"
		if errors.Is(err, ErrCapacityExceeded) {
			reason = "capacity_exceeded"
		}
		e.metrics.RecordReserveFailure(reason)
		e.logger.Error("reservation failed after candidate selection",
			"user_id", best.UserID,
			"reason", reason,
			"error", err,
		)

		return Decision{Labels: labels}, fmt.Errorf("assign to %q: %w", best.UserID, err)
	}

	decision := Decision{Labels: labels, Assignee: best.UserID, Score: bestScore}

	workload, capacity, _ := e.users.Workload(best.UserID)
	e.metrics.RecordAssignment(best.UserID, bestScore, time.Since(start).Seconds())
	e.metrics.RecordWorkload(best.UserID, workload, capacity)
	e.logger.Info("issue assigned",
		"user_id", best.UserID,
		"score", bestScore,
		"labels", labels,
		"workload", workload,
		"capacity", capacity,
	)
	e.dispatchAssigned(ctx, best.UserID, decision)

	return decision, nil
}

// Classify returns the labels the engine's classifier derives for the
// given issue text, without assigning anything.
//
// Useful for previewing labels or routing decisions outside the
// assignment path. Preview runs are not recorded in metrics.
//
// Parameters:
//   - title: Issue title (may be empty)
//   - description: Issue description (may be empty)
//
// Returns:
//   - []string: Labels in deterministic order, never empty
func (e *Engine) Classify(title, description string) []string {
	return e.classifier.Classify(title, description)
}

// Profile returns a snapshot of one registered user.
//
// Parameters:
//   - userID: User to look up
//
// Returns:
//   - Profile: Copy of the stored profile (zero value if absent)
//   - bool: true if the user is registered
func (e *Engine) Profile(userID string) (Profile, bool) {
	return e.users.Profile(userID)
}

// Profiles returns snapshots of all registered users in registration order.
//
// Returns:
//   - []Profile: Copies of every registered profile
func (e *Engine) Profiles() []Profile {
	return e.users.Profiles()
}

// Workload returns a user's current workload and capacity.
//
// Parameters:
//   - userID: User to look up
//
// Returns:
//   - int: Current workload
//   - int: Capacity
//   - error: ErrUnknownUser if the user is not registered
func (e *Engine) Workload(userID string) (int, int, error) {
	return e.users.Workload(userID)
}

// Stats returns a point-in-time view of the roster and workload distribution.
//
// Returns:
//   - Stats: Aggregate counters plus per-user snapshots
func (e *Engine) Stats() Stats {
	profiles := e.users.Profiles()

	stats := Stats{RosterSize: len(profiles), Users: profiles}
	for _, p := range profiles {
		stats.TotalWorkload += p.Workload
		stats.TotalCapacity += p.Capacity
		if !p.AtCapacity() {
			stats.Assignable++
		}
	}

	return stats
}

// dispatchAssigned triggers the OnAssigned hook asynchronously.
func (e *Engine) dispatchAssigned(ctx context.Context, userID string, decision Decision) {
	if e.hooks.OnAssigned == nil {
		return
	}
	go func() {
		if err := e.hooks.OnAssigned(ctx, userID, decision); err != nil {
			e.logger.Warn("OnAssigned hook failed", "user_id", userID, "error", err)
		}
	}()
}

// dispatchUserRegistered triggers the OnUserRegistered hook asynchronously.
// Register has no caller context, so the hook gets a background one.
func (e *Engine) dispatchUserRegistered(profile Profile) {
	if e.hooks.OnUserRegistered == nil {
		return
	}
	go func() {
		if err := e.hooks.OnUserRegistered(context.Background(), profile); err != nil {
			e.logger.Warn("OnUserRegistered hook failed", "user_id", profile.UserID, "error", err)
		}
	}()
}

// dispatchUnassignable triggers the OnUnassignable hook asynchronously.
func (e *Engine) dispatchUnassignable(ctx context.Context, decision Decision) {
	if e.hooks.OnUnassignable == nil {
		return
	}
	go func() {
		if err := e.hooks.OnUnassignable(ctx, decision); err != nil {
			e.logger.Warn("OnUnassignable hook failed", "labels", decision.Labels, "error", err)
		}
	}()
}

// filterByMembers keeps candidates whose IDs appear in members,
// preserving candidate order.
func filterByMembers(candidates []Profile, members []string) []Profile {
	allowed := make(map[string]struct{}, len(members))
	for _, m := range members {
		allowed[m] = struct{}{}
	}

	filtered := candidates[:0]
	for _, c := range candidates {
		if _, ok := allowed[c.UserID]; ok {
			filtered = append(filtered, c)
		}
	}

	return filtered
}
