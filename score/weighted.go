// Package score provides built-in candidate scorer implementations.
//
// Scorers rank candidates against the skills an issue calls for. The
// package includes one built-in scorer:
//
//   - Weighted: Linear combination of skill match ratio and free capacity
//
// Custom scorers can be implemented by satisfying the types.Scorer interface.
package score

import (
	"github.com/medha-scaler/triage/internal/logger"
	"github.com/medha-scaler/triage/types"
)

const (
	// DefaultSkillWeight is the default weight of the skill match component.
	DefaultSkillWeight = 0.7

	// DefaultWorkloadWeight is the default weight of the free capacity component.
	DefaultWorkloadWeight = 0.3

	// neutralSkillScore is used when an issue demands no particular skill.
	neutralSkillScore = 0.5
)

// Weighted implements weighted suitability scoring.
//
// The combined score is
//
//	SkillWeight*skill + WorkloadWeight*workload
//
// where skill is the fraction of required skills the candidate declares
// (neutralSkillScore when nothing is required) and workload is the
// fraction of capacity still free. With non-negative weights both
// components, and therefore the combined score, are monotonic: more
// matching skills or more free capacity never lowers a candidate's score.
type Weighted struct {
	skillWeight    float64
	workloadWeight float64
	logger         types.Logger
}

var _ types.Scorer = (*Weighted)(nil)

// Option configures a Weighted scorer.
type Option func(*Weighted)

// WithWeights overrides the component weights.
//
// Negative weights or a non-positive sum are replaced by the defaults.
// Weights are used as given and not normalized; only relative magnitude
// matters because scores are compared, never displayed.
func WithWeights(skill, workload float64) Option {
	return func(w *Weighted) {
		w.skillWeight = skill
		w.workloadWeight = workload
	}
}

// WithLogger sets the logger used for configuration warnings.
func WithLogger(log types.Logger) Option {
	return func(w *Weighted) {
		w.logger = log
	}
}

// NewWeighted creates a new weighted scorer.
//
// Parameters:
//   - opts: Optional configuration (WithWeights, WithLogger)
//
// Returns:
//   - *Weighted: Initialized scorer ready for concurrent use
//
// Example:
//
//	scorer := score.NewWeighted(score.WithWeights(0.9, 0.1))
//	s := scorer.Score(profile, []string{"backend", "api"})
func NewWeighted(opts ...Option) *Weighted {
	w := &Weighted{
		skillWeight:    DefaultSkillWeight,
		workloadWeight: DefaultWorkloadWeight,
		logger:         logger.NewNop(),
	}

	for _, opt := range opts {
		if opt != nil {
			opt(w)
		}
	}

	w.normalizeConfig()

	return w
}

// Score computes the candidate's combined suitability.
//
// Parameters:
//   - profile: Candidate snapshot
//   - required: Skills the issue calls for (deduplicated)
//
// Returns:
//   - float64: Weighted combination of skill match and free capacity
func (w *Weighted) Score(profile types.Profile, required []string) float64 {
	return w.skillWeight*skillScore(profile, required) + w.workloadWeight*workloadScore(profile)
}

// normalizeConfig replaces invalid weights with defaults.
func (w *Weighted) normalizeConfig() {
	if w.logger == nil {
		w.logger = logger.NewNop()
	}

	if w.skillWeight < 0 || w.workloadWeight < 0 || w.skillWeight+w.workloadWeight <= 0 {
		w.logger.Warn("invalid scoring weights; using defaults",
			"skill_weight", w.skillWeight,
			"workload_weight", w.workloadWeight,
			"default_skill_weight", DefaultSkillWeight,
			"default_workload_weight", DefaultWorkloadWeight,
		)
		w.skillWeight = DefaultSkillWeight
		w.workloadWeight = DefaultWorkloadWeight
	}
}

// skillScore returns the fraction of required skills the candidate declares.
func skillScore(profile types.Profile, required []string) float64 {
	if len(required) == 0 {
		return neutralSkillScore
	}

	matched := 0
	for _, skill := range required {
		if profile.HasSkill(skill) {
			matched++
		}
	}

	return float64(matched) / float64(len(required))
}

// workloadScore returns the fraction of capacity still free.
func workloadScore(profile types.Profile) float64 {
	if profile.Capacity <= 0 {
		return 0
	}

	return float64(profile.Capacity-profile.Workload) / float64(profile.Capacity)
}
