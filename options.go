package triage

// Option configures an Engine with optional dependencies.
type Option func(*engineOptions)

// engineOptions holds optional Engine configuration.
type engineOptions struct {
	classifier Classifier
	mapper     SkillMapper
	scorer     Scorer
	source     RosterSource
	hooks      *Hooks
	metrics    MetricsCollector
	logger     Logger
}

// WithClassifier sets a custom issue classifier.
//
// Parameters:
//   - classifier: Classifier implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	clf := classify.NewKeyword(classify.WithRules(myRules...))
//	eng, err := triage.New(cfg, triage.WithClassifier(clf))
func WithClassifier(classifier Classifier) Option {
	return func(o *engineOptions) {
		o.classifier = classifier
	}
}

// WithSkillMapper sets a custom label-to-skills mapper.
//
// Parameters:
//   - mapper: SkillMapper implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	mapper := skillmap.New(skillmap.WithTable(myTable))
//	eng, err := triage.New(cfg, triage.WithSkillMapper(mapper))
func WithSkillMapper(mapper SkillMapper) Option {
	return func(o *engineOptions) {
		o.mapper = mapper
	}
}

// WithScorer sets a custom candidate scorer.
//
// When set, the Config weights are ignored; they only configure the
// built-in weighted scorer.
//
// Parameters:
//   - scorer: Scorer implementation
//
// Returns:
//   - Option: Functional option for New
func WithScorer(scorer Scorer) Option {
	return func(o *engineOptions) {
		o.scorer = scorer
	}
}

// WithRosterSource sets a roster source that narrows assignable users.
//
// When set, Assign only considers candidates whose IDs the source
// returns. Member IDs unknown to the catalog are ignored; a source
// failure aborts the assignment with ErrRosterSource.
//
// Parameters:
//   - source: RosterSource implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	oncall := roster.NewStatic([]string{"alice", "bob"})
//	eng, err := triage.New(cfg, triage.WithRosterSource(oncall))
func WithRosterSource(source RosterSource) Option {
	return func(o *engineOptions) {
		o.source = source
	}
}

// WithHooks sets lifecycle event hooks.
//
// Parameters:
//   - hooks: Hooks structure with callback functions
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	hooks := &triage.Hooks{
//	    OnAssigned: func(ctx context.Context, userID string, d triage.Decision) error {
//	        return notify(userID, d)
//	    },
//	}
//	eng, err := triage.New(cfg, triage.WithHooks(hooks))
func WithHooks(hooks *Hooks) Option {
	return func(o *engineOptions) {
		o.hooks = hooks
	}
}

// WithMetrics sets a metrics collector.
//
// Parameters:
//   - metrics: MetricsCollector implementation
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	collector := metrics.NewPrometheus(nil, "triage")
//	eng, err := triage.New(cfg, triage.WithMetrics(collector))
func WithMetrics(metrics MetricsCollector) Option {
	return func(o *engineOptions) {
		o.metrics = metrics
	}
}

// WithLogger sets a logger.
//
// Parameters:
//   - logger: Logger implementation (compatible with slog-style loggers)
//
// Returns:
//   - Option: Functional option for New
//
// Example:
//
//	logger := logging.NewSlogDefault()
//	eng, err := triage.New(cfg, triage.WithLogger(logger))
func WithLogger(logger Logger) Option {
	return func(o *engineOptions) {
		o.logger = logger
	}
}
