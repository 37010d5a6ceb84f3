package triage

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/medha-scaler/triage/internal/logging"
)

// Mock implementations for testing

type recordingLogger struct {
	mu       sync.Mutex
	debugs   []string
	infos    []string
	warnings []string
	errs     []string
}

func (l *recordingLogger) Debug(msg string, _ ...any) { l.append(&l.debugs, msg) }
func (l *recordingLogger) Info(msg string, _ ...any)  { l.append(&l.infos, msg) }
func (l *recordingLogger) Warn(msg string, _ ...any)  { l.append(&l.warnings, msg) }
func (l *recordingLogger) Error(msg string, _ ...any) { l.append(&l.errs, msg) }

func (l *recordingLogger) append(dst *[]string, msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	*dst = append(*dst, msg)
}

func (l *recordingLogger) warnCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.warnings)
}

type recordingMetrics struct {
	mu              sync.Mutex
	classifications int
	fallbacks       int
	assignments     map[string]float64
	unassignable    int
	reserveFailures []string
	registrations   int
	replaced        int
	rosterSize      int
	workloads       map[string][2]int
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{
		assignments: make(map[string]float64),
		workloads:   make(map[string][2]int),
	}
}

func (m *recordingMetrics) RecordClassification(_ /* labels */ int, fallback bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.classifications++
	if fallback {
		m.fallbacks++
	}
}

func (m *recordingMetrics) RecordAssignment(userID string, score float64, _ /* duration */ float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.assignments[userID] = score
}

func (m *recordingMetrics) RecordUnassignable() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unassignable++
}

func (m *recordingMetrics) RecordReserveFailure(reason string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.reserveFailures = append(m.reserveFailures, reason)
}

func (m *recordingMetrics) RecordIngest(_ /* kind */ string) {}

func (m *recordingMetrics) RecordIngestDropped(_ /* kind */ string, _ /* reason */ string) {}

func (m *recordingMetrics) RecordRegistration(replaced bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.registrations++
	if replaced {
		m.replaced++
	}
}

func (m *recordingMetrics) RecordRosterSize(size int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rosterSize = size
}

func (m *recordingMetrics) RecordWorkload(userID string, workload, capacity int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.workloads[userID] = [2]int{workload, capacity}
}

type failingSource struct {
	err error
}

func (s *failingSource) Members(_ /* ctx */ context.Context) ([]string, error) {
	return nil, s.err
}

type staticSource struct {
	members []string
}

func (s *staticSource) Members(_ /* ctx */ context.Context) ([]string, error) {
	return s.members, nil
}

// newTestEngine builds an engine with default components and the standard
// three-user roster used across assignment tests.
func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	cfg := DefaultConfig()
	eng, err := New(&cfg, opts...)
	require.NoError(t, err)

	require.NoError(t, eng.Register("alice", []string{"frontend", "ui", "mobile", "senior"}, 3))
	require.NoError(t, eng.Register("bob", []string{"backend", "api", "debugging"}, 4))
	require.NoError(t, eng.Register("charlie", []string{"testing", "mobile", "general"}, 5))

	return eng
}

func TestNew_NilSafety(t *testing.T) {
	t.Run("without optional dependencies", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)

		require.NoError(t, err)
		require.NotNil(t, eng)

		// Verify optional fields get safe defaults (not nil)
		require.NotNil(t, eng.hooks)      // defaults to NopHooks
		require.NotNil(t, eng.metrics)    // defaults to nop metrics
		require.NotNil(t, eng.logger)     // defaults to nop logger
		require.NotNil(t, eng.classifier) // defaults to keyword classifier
		require.NotNil(t, eng.mapper)     // defaults to table mapper
		require.NotNil(t, eng.scorer)     // defaults to weighted scorer
		require.Nil(t, eng.source)        // roster source stays nil unless configured
	})

	t.Run("accepts optional hooks", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg, WithHooks(&Hooks{}))

		require.NoError(t, err)
		require.NotNil(t, eng)
	})
}

func TestNew_InvalidConfig(t *testing.T) {
	t.Run("nil config", func(t *testing.T) {
		eng, err := New(nil)

		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, eng)
	})

	t.Run("negative weight", func(t *testing.T) {
		cfg := Config{SkillWeight: -1, WorkloadWeight: 0.3, DefaultCapacity: 5}
		eng, err := New(&cfg)

		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidConfig)
		require.Nil(t, eng)
	})

	t.Run("empty config gets defaults", func(t *testing.T) {
		cfg := Config{}
		eng, err := New(&cfg)

		require.NoError(t, err)
		require.NotNil(t, eng)
		require.Equal(t, 0.7, cfg.SkillWeight)
		require.Equal(t, 0.3, cfg.WorkloadWeight)
		require.Equal(t, 5, cfg.DefaultCapacity)
	})
}

func TestEngine_Register(t *testing.T) {
	t.Run("rejects empty user id", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)

		err = eng.Register("", []string{"backend"}, 3)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrInvalidUserID)
		require.Equal(t, 0, eng.Stats().RosterSize)
	})

	t.Run("stores declared profile", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)

		require.NoError(t, eng.Register("alice", []string{"frontend", "ui", "frontend"}, 3))

		profile, ok := eng.Profile("alice")
		require.True(t, ok)
		require.Equal(t, "alice", profile.UserID)
		require.Equal(t, []string{"frontend", "ui"}, profile.Skills) // duplicates collapse
		require.Equal(t, 3, profile.Capacity)
		require.Equal(t, 0, profile.Workload)
	})

	t.Run("applies default capacity", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.DefaultCapacity = 7
		eng, err := New(&cfg)
		require.NoError(t, err)

		require.NoError(t, eng.Register("alice", nil, 0))

		profile, ok := eng.Profile("alice")
		require.True(t, ok)
		require.Equal(t, 7, profile.Capacity)
	})

	t.Run("replacement resets workload and keeps roster position", func(t *testing.T) {
		eng := newTestEngine(t)

		// Give alice one assignment
		decision, err := eng.Assign(context.Background(), IssueDraft{
			Title:       "App crashes when opening camera",
			Description: "A critical bug: the mobile app crashes on Android when the camera opens.",
		})
		require.NoError(t, err)
		require.Equal(t, "alice", decision.Assignee)

		// Re-register alice with a new profile
		require.NoError(t, eng.Register("alice", []string{"devops"}, 2))

		profile, ok := eng.Profile("alice")
		require.True(t, ok)
		require.Equal(t, []string{"devops"}, profile.Skills)
		require.Equal(t, 2, profile.Capacity)
		require.Equal(t, 0, profile.Workload)

		// Roster order is unchanged
		profiles := eng.Profiles()
		require.Len(t, profiles, 3)
		require.Equal(t, "alice", profiles[0].UserID)
		require.Equal(t, "bob", profiles[1].UserID)
		require.Equal(t, "charlie", profiles[2].UserID)
	})
}

func TestEngine_Assign_Scenario(t *testing.T) {
	eng := newTestEngine(t)
	ctx := context.Background()

	// First issue: classification produces bug, urgent and mobile, which
	// expand to six required skills. Alice and charlie both match two of
	// six and tie; alice registered first and wins.
	decision, err := eng.Assign(ctx, IssueDraft{
		Title:       "App crashes when opening camera",
		Description: "A critical bug: the mobile app crashes on Android when the camera opens.",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"bug", "urgent", "mobile"}, decision.Labels)
	require.Equal(t, "alice", decision.Assignee)
	require.True(t, decision.Assigned())
	require.InDelta(t, 0.7*(2.0/6.0)+0.3, decision.Score, 1e-9)

	workload, capacity, err := eng.Workload("alice")
	require.NoError(t, err)
	require.Equal(t, 1, workload)
	require.Equal(t, 3, capacity)

	// Second issue: backend only. Bob matches both required skills at
	// full free capacity and scores a perfect 1.0.
	decision, err = eng.Assign(ctx, IssueDraft{
		Title:       "Server returns 500 on the /users endpoint",
		Description: "The backend rejects valid payloads.",
	})
	require.NoError(t, err)
	require.Equal(t, []string{"backend"}, decision.Labels)
	require.Equal(t, "bob", decision.Assignee)
	require.InDelta(t, 1.0, decision.Score, 1e-9)

	workload, _, err = eng.Workload("bob")
	require.NoError(t, err)
	require.Equal(t, 1, workload)

	// Charlie was never selected
	workload, _, err = eng.Workload("charlie")
	require.NoError(t, err)
	require.Equal(t, 0, workload)
}

func TestEngine_Assign_NoCandidates(t *testing.T) {
	t.Run("empty roster", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)

		decision, err := eng.Assign(context.Background(), IssueDraft{Title: "anything"})
		require.NoError(t, err)
		require.NotEmpty(t, decision.Labels)
		require.Empty(t, decision.Assignee)
		require.False(t, decision.Assigned())
	})

	t.Run("saturated roster", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)
		require.NoError(t, eng.Register("alice", []string{"backend"}, 1))

		decision, err := eng.Assign(context.Background(), IssueDraft{Title: "server error"})
		require.NoError(t, err)
		require.Equal(t, "alice", decision.Assignee)

		decision, err = eng.Assign(context.Background(), IssueDraft{Title: "server error"})
		require.NoError(t, err)
		require.False(t, decision.Assigned())
	})
}

func TestEngine_Assign_CapacityInvariant(t *testing.T) {
	cfg := DefaultConfig()
	eng, err := New(&cfg)
	require.NoError(t, err)
	require.NoError(t, eng.Register("alice", []string{"backend"}, 3))

	assigned := 0
	for range 5 {
		decision, err := eng.Assign(context.Background(), IssueDraft{Title: "api is broken"})
		require.NoError(t, err)
		if decision.Assigned() {
			assigned++
		}

		workload, capacity, err := eng.Workload("alice")
		require.NoError(t, err)
		require.LessOrEqual(t, workload, capacity)
	}

	require.Equal(t, 3, assigned)

	workload, _, err := eng.Workload("alice")
	require.NoError(t, err)
	require.Equal(t, 3, workload)
}

func TestEngine_Assign_TieBreak(t *testing.T) {
	issue := IssueDraft{Title: "server error in the api"}

	t.Run("earliest registration wins", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)
		require.NoError(t, eng.Register("yara", []string{"backend", "api"}, 3))
		require.NoError(t, eng.Register("adam", []string{"backend", "api"}, 3))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.Equal(t, "yara", decision.Assignee)
	})

	t.Run("registration order decides, not user id", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)
		require.NoError(t, eng.Register("adam", []string{"backend", "api"}, 3))
		require.NoError(t, eng.Register("yara", []string{"backend", "api"}, 3))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.Equal(t, "adam", decision.Assignee)
	})

	t.Run("deterministic across repeated calls", func(t *testing.T) {
		cfg := DefaultConfig()
		eng, err := New(&cfg)
		require.NoError(t, err)
		require.NoError(t, eng.Register("yara", []string{"backend", "api"}, 10))
		require.NoError(t, eng.Register("adam", []string{"backend", "api"}, 10))

		// Re-registering both users before each call recreates the same
		// tie; it must resolve the same way every time.
		for range 10 {
			require.NoError(t, eng.Register("yara", []string{"backend", "api"}, 10))
			require.NoError(t, eng.Register("adam", []string{"backend", "api"}, 10))

			decision, err := eng.Assign(context.Background(), issue)
			require.NoError(t, err)
			require.Equal(t, "yara", decision.Assignee)
		}
	})
}

func TestEngine_Assign_RosterSource(t *testing.T) {
	issue := IssueDraft{
		Title:       "App crashes when opening camera",
		Description: "A critical bug: the mobile app crashes on Android when the camera opens.",
	}

	t.Run("narrows candidates to members", func(t *testing.T) {
		eng := newTestEngine(t, WithRosterSource(&staticSource{members: []string{"bob"}}))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.Equal(t, "bob", decision.Assignee) // alice outscores bob but is not a member
	})

	t.Run("ignores unknown member ids", func(t *testing.T) {
		eng := newTestEngine(t, WithRosterSource(&staticSource{members: []string{"ghost", "alice"}}))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.Equal(t, "alice", decision.Assignee)
	})

	t.Run("empty membership is a no-candidate outcome", func(t *testing.T) {
		eng := newTestEngine(t, WithRosterSource(&staticSource{}))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.False(t, decision.Assigned())
		require.Equal(t, []string{"bug", "urgent", "mobile"}, decision.Labels)
	})

	t.Run("source failure aborts the call", func(t *testing.T) {
		cause := errors.New("membership service unavailable")
		eng := newTestEngine(t, WithRosterSource(&failingSource{err: cause}))

		decision, err := eng.Assign(context.Background(), issue)
		require.Error(t, err)
		require.ErrorIs(t, err, ErrRosterSource)
		require.ErrorIs(t, err, cause)
		require.False(t, decision.Assigned())
		require.Equal(t, []string{"bug", "urgent", "mobile"}, decision.Labels)

		// Nothing was reserved
		workload, _, err := eng.Workload("alice")
		require.NoError(t, err)
		require.Equal(t, 0, workload)
	})
}

func TestEngine_Hooks(t *testing.T) {
	issue := IssueDraft{Title: "server error in the api"}

	t.Run("OnAssigned receives the decision", func(t *testing.T) {
		type event struct {
			userID   string
			decision Decision
		}
		events := make(chan event, 1)

		hooks := &Hooks{
			OnAssigned: func(_ context.Context, userID string, decision Decision) error {
				events <- event{userID: userID, decision: decision}
				return nil
			},
		}
		eng := newTestEngine(t, WithHooks(hooks))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.Equal(t, "bob", decision.Assignee)

		select {
		case got := <-events:
			require.Equal(t, "bob", got.userID)
			require.Equal(t, decision, got.decision)
		case <-time.After(2 * time.Second):
			t.Fatal("OnAssigned hook was not called")
		}
	})

	t.Run("OnUnassignable fires on empty roster", func(t *testing.T) {
		decisions := make(chan Decision, 1)
		hooks := &Hooks{
			OnUnassignable: func(_ context.Context, decision Decision) error {
				decisions <- decision
				return nil
			},
		}

		cfg := DefaultConfig()
		eng, err := New(&cfg, WithHooks(hooks))
		require.NoError(t, err)

		_, err = eng.Assign(context.Background(), issue)
		require.NoError(t, err)

		select {
		case got := <-decisions:
			require.False(t, got.Assigned())
			require.NotEmpty(t, got.Labels)
		case <-time.After(2 * time.Second):
			t.Fatal("OnUnassignable hook was not called")
		}
	})

	t.Run("OnUserRegistered receives the profile", func(t *testing.T) {
		profiles := make(chan Profile, 1)
		hooks := &Hooks{
			OnUserRegistered: func(_ context.Context, profile Profile) error {
				profiles <- profile
				return nil
			},
		}

		cfg := DefaultConfig()
		eng, err := New(&cfg, WithHooks(hooks))
		require.NoError(t, err)
		require.NoError(t, eng.Register("alice", []string{"frontend"}, 3))

		select {
		case got := <-profiles:
			require.Equal(t, "alice", got.UserID)
			require.Equal(t, []string{"frontend"}, got.Skills)
			require.Equal(t, 3, got.Capacity)
		case <-time.After(2 * time.Second):
			t.Fatal("OnUserRegistered hook was not called")
		}
	})

	t.Run("hook errors are logged, not returned", func(t *testing.T) {
		logger := &recordingLogger{}
		hooks := &Hooks{
			OnAssigned: func(_ context.Context, _ string, _ Decision) error {
				return errors.New("notification failed")
			},
		}
		eng := newTestEngine(t, WithHooks(hooks), WithLogger(logger))

		decision, err := eng.Assign(context.Background(), issue)
		require.NoError(t, err)
		require.True(t, decision.Assigned())

		require.Eventually(t, func() bool {
			return logger.warnCount() > 0
		}, 2*time.Second, 10*time.Millisecond)
	})
}

func TestEngine_SlogLogging(t *testing.T) {
	var buf bytes.Buffer
	handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})

	cfg := DefaultConfig()
	eng, err := New(&cfg, WithLogger(logging.NewSlog(slog.New(handler))))
	require.NoError(t, err)

	require.NoError(t, eng.Register("alice", []string{"backend"}, 3))

	_, err = eng.Assign(context.Background(), IssueDraft{Title: "server error"})
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "user registered")
	require.Contains(t, out, "issue classified")
	require.Contains(t, out, "issue assigned")
	require.Contains(t, out, "user_id=alice")
}

func TestEngine_Classify(t *testing.T) {
	cfg := DefaultConfig()
	eng, err := New(&cfg)
	require.NoError(t, err)

	labels := eng.Classify("App crashes when opening camera", "Android only")
	require.Equal(t, []string{"bug", "urgent", "mobile"}, labels)

	// Preview does not touch the roster
	require.Equal(t, 0, eng.Stats().TotalWorkload)

	labels = eng.Classify("", "")
	require.Equal(t, []string{"general"}, labels)
}

func TestEngine_Stats(t *testing.T) {
	eng := newTestEngine(t)

	stats := eng.Stats()
	require.Equal(t, 3, stats.RosterSize)
	require.Equal(t, 3, stats.Assignable)
	require.Equal(t, 0, stats.TotalWorkload)
	require.Equal(t, 12, stats.TotalCapacity)
	require.Len(t, stats.Users, 3)

	// Saturate bob
	for range 4 {
		decision, err := eng.Assign(context.Background(), IssueDraft{Title: "server error in the api"})
		require.NoError(t, err)
		require.Equal(t, "bob", decision.Assignee)
	}

	stats = eng.Stats()
	require.Equal(t, 3, stats.RosterSize)
	require.Equal(t, 2, stats.Assignable)
	require.Equal(t, 4, stats.TotalWorkload)
}

func TestEngine_Metrics(t *testing.T) {
	t.Run("assignment path", func(t *testing.T) {
		metrics := newRecordingMetrics()
		eng := newTestEngine(t, WithMetrics(metrics))

		decision, err := eng.Assign(context.Background(), IssueDraft{Title: "server error in the api"})
		require.NoError(t, err)
		require.Equal(t, "bob", decision.Assignee)

		metrics.mu.Lock()
		defer metrics.mu.Unlock()
		require.Equal(t, 1, metrics.classifications)
		require.Equal(t, 0, metrics.fallbacks)
		require.InDelta(t, decision.Score, metrics.assignments["bob"], 1e-9)
		require.Equal(t, [2]int{1, 4}, metrics.workloads["bob"])
		require.Equal(t, 3, metrics.registrations)
		require.Equal(t, 3, metrics.rosterSize)
	})

	t.Run("unassignable path", func(t *testing.T) {
		metrics := newRecordingMetrics()
		cfg := DefaultConfig()
		eng, err := New(&cfg, WithMetrics(metrics))
		require.NoError(t, err)

		_, err = eng.Assign(context.Background(), IssueDraft{Title: "nothing matches here"})
		require.NoError(t, err)

		metrics.mu.Lock()
		defer metrics.mu.Unlock()
		require.Equal(t, 1, metrics.unassignable)
		require.Equal(t, 1, metrics.fallbacks)
	})
}

func TestEngine_ConcurrentAssign(t *testing.T) {
	cfg := DefaultConfig()
	eng, err := New(&cfg)
	require.NoError(t, err)
	require.NoError(t, eng.Register("alice", []string{"backend"}, 2))
	require.NoError(t, eng.Register("bob", []string{"backend"}, 3))
	require.NoError(t, eng.Register("charlie", []string{"backend"}, 5))

	const calls = 25
	var wg sync.WaitGroup
	assigned := make(chan string, calls)
	failures := make(chan error, calls)

	for range calls {
		wg.Go(func() {
			decision, err := eng.Assign(context.Background(), IssueDraft{Title: "server error"})
			if err != nil {
				failures <- err
				return
			}
			if decision.Assigned() {
				assigned <- decision.Assignee
			}
		})
	}
	wg.Wait()
	close(assigned)
	close(failures)

	for err := range failures {
		require.NoError(t, err)
	}

	// Exactly as many assignments as total capacity, never more
	count := 0
	for range assigned {
		count++
	}
	require.Equal(t, 10, count)

	for _, userID := range []string{"alice", "bob", "charlie"} {
		workload, capacity, err := eng.Workload(userID)
		require.NoError(t, err)
		require.Equal(t, capacity, workload)
	}
}
