package ingest

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/nats-io/nats.go"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/medha-scaler/triage"
	"github.com/medha-scaler/triage/internal/fingerprint"
	"github.com/medha-scaler/triage/internal/natsutil"
	"github.com/medha-scaler/triage/types"
)

// Subject suffixes under the configured prefix.
const (
	issueSubmitSuffix        = ".issue.submit"
	userDeclareSuffix        = ".user.declare"
	decisionAssignedSuffix   = ".decision.assigned."
	decisionUnassignedSuffix = ".decision.unassigned"
)

// Metric label values.
const (
	kindIssue = "issue"
	kindUser  = "user"

	reasonMalformed = "malformed"
	reasonDuplicate = "duplicate"
	reasonInvalid   = "invalid"
)

// issueSubmission is the wire format of <prefix>.issue.submit messages.
type issueSubmission struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// userDeclaration is the wire format of <prefix>.user.declare messages.
type userDeclaration struct {
	UserID   string   `json:"user_id"`
	Skills   []string `json:"skills"`
	Capacity int      `json:"capacity"`
}

// Ingestor consumes triage traffic from NATS subjects.
//
// It queue-subscribes to issue submissions and user declarations, drives
// the engine, and publishes every assignment decision back to NATS:
//
//	<prefix>.issue.submit             -> Engine.Assign
//	<prefix>.user.declare             -> Engine.Register
//	<prefix>.decision.assigned.<user> <- assigned decisions
//	<prefix>.decision.unassigned      <- decisions without an assignee
//
// Issue submissions are deduplicated by fingerprint: an explicit "id"
// field wins, otherwise the title/description content is hashed.
// Duplicates and malformed payloads are dropped without reply so a
// poison message can never wedge the subscriber.
type Ingestor struct {
	cfg     Config
	engine  *triage.Engine
	conn    *nats.Conn
	logger  types.Logger
	metrics types.MetricsCollector

	seen *xsync.Map[uint64, struct{}]

	mu      sync.Mutex
	started bool
	subs    []*nats.Subscription
}

// New creates a new Ingestor with the provided configuration.
//
// Parameters:
//   - cfg: Ingestor configuration (Conn and Engine are required)
//
// Returns:
//   - *Ingestor: Initialized ingestor, not yet subscribed
//   - error: Configuration error if required fields are missing
//
// Example:
//
//	ing, err := ingest.New(ingest.Config{Conn: nc, Engine: eng})
//	if err != nil { /* handle */ }
//	if err := ing.Start(ctx); err != nil { /* handle */ }
//	defer ing.Stop(context.Background())
func New(cfg Config) (*Ingestor, error) {
	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Ingestor{
		cfg:     cfg,
		engine:  cfg.Engine,
		conn:    cfg.Conn,
		logger:  cfg.Logger,
		metrics: cfg.Metrics,
		seen:    xsync.NewMap[uint64, struct{}](),
	}, nil
}

// Start subscribes to the ingest subjects.
//
// Both subscriptions join the configured queue group, so running several
// ingestors spreads submissions across instances without duplication.
// Start flushes the connection before returning, guaranteeing the server
// has seen the subscriptions.
//
// Parameters:
//   - ctx: Context bounding the subscription flush
//
// Returns:
//   - error: ErrAlreadyStarted if running, subscription or flush errors otherwise
func (i *Ingestor) Start(ctx context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.started {
		return ErrAlreadyStarted
	}

	issueSub, err := i.conn.QueueSubscribe(i.cfg.SubjectPrefix+issueSubmitSuffix, i.cfg.QueueGroup, i.handleIssue)
	if err != nil {
		return fmt.Errorf("failed to subscribe to issue submissions: %w", err)
	}

	userSub, err := i.conn.QueueSubscribe(i.cfg.SubjectPrefix+userDeclareSuffix, i.cfg.QueueGroup, i.handleUser)
	if err != nil {
		_ = issueSub.Unsubscribe()

		return fmt.Errorf("failed to subscribe to user declarations: %w", err)
	}

	// Make sure the server registered both subscriptions before Start returns
	if err := i.conn.FlushWithContext(ctx); err != nil {
		_ = issueSub.Unsubscribe()
		_ = userSub.Unsubscribe()

		return fmt.Errorf("failed to flush subscriptions: %w", err)
	}

	i.subs = []*nats.Subscription{issueSub, userSub}
	i.started = true
	i.logger.Info("ingestor started",
		"prefix", i.cfg.SubjectPrefix,
		"queue_group", i.cfg.QueueGroup,
	)

	return nil
}

// Stop drains the subscriptions.
//
// Draining lets in-flight handlers finish before the subscriptions close.
// Safe to call multiple times; subsequent calls return ErrNotStarted.
//
// Parameters:
//   - ctx: Reserved for symmetry with Start; draining is asynchronous
//
// Returns:
//   - error: ErrNotStarted if not running, first drain error otherwise
func (i *Ingestor) Stop(_ /* ctx */ context.Context) error {
	i.mu.Lock()
	defer i.mu.Unlock()

	if !i.started {
		return ErrNotStarted
	}

	var firstErr error
	for _, sub := range i.subs {
		if err := sub.Drain(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("failed to drain %s: %w", sub.Subject, err)
		}
	}

	i.subs = nil
	i.started = false
	i.logger.Info("ingestor stopped")

	return firstErr
}

// handleIssue processes one issue submission message.
func (i *Ingestor) handleIssue(msg *nats.Msg) {
	var sub issueSubmission
	if err := json.Unmarshal(msg.Data, &sub); err != nil {
		i.logger.Warn("dropping malformed issue submission", "subject", msg.Subject, "error", err)
		i.metrics.RecordIngestDropped(kindIssue, reasonMalformed)

		return
	}

	fp := fingerprint.Issue(sub.Title, sub.Description)
	if sub.ID != "" {
		fp = fingerprint.ID(sub.ID)
	}

	if _, loaded := i.seen.LoadOrStore(fp, struct{}{}); loaded {
		i.logger.Debug("dropping duplicate issue submission", "id", sub.ID, "fingerprint", fp)
		i.metrics.RecordIngestDropped(kindIssue, reasonDuplicate)

		return
	}
	i.metrics.RecordIngest(kindIssue)

	decision, err := i.engine.Assign(context.Background(), types.IssueDraft{
		Title:       sub.Title,
		Description: sub.Description,
	})
	if err != nil {
		// The decision is not trustworthy on error; nothing is published
		i.logger.Error("assignment failed", "id", sub.ID, "error", err)

		return
	}

	i.publishDecision(sub.ID, decision)
}

// handleUser processes one user declaration message.
func (i *Ingestor) handleUser(msg *nats.Msg) {
	var decl userDeclaration
	if err := json.Unmarshal(msg.Data, &decl); err != nil {
		i.logger.Warn("dropping malformed user declaration", "subject", msg.Subject, "error", err)
		i.metrics.RecordIngestDropped(kindUser, reasonMalformed)

		return
	}

	if err := i.engine.Register(decl.UserID, decl.Skills, decl.Capacity); err != nil {
		i.logger.Warn("rejecting user declaration", "user_id", decl.UserID, "error", err)
		i.metrics.RecordIngestDropped(kindUser, reasonInvalid)

		return
	}
	i.metrics.RecordIngest(kindUser)
}

// publishDecision publishes a decision to the subject matching its outcome.
func (i *Ingestor) publishDecision(id string, decision types.Decision) {
	subject := i.cfg.SubjectPrefix + decisionUnassignedSuffix
	if decision.Assigned() {
		subject = i.cfg.SubjectPrefix + decisionAssignedSuffix + decision.Assignee
	}

	payload, err := json.Marshal(decision)
	if err != nil {
		i.logger.Error("failed to encode decision", "id", id, "error", err)

		return
	}

	if err := i.conn.Publish(subject, payload); err != nil {
		// Connectivity failures resolve themselves on reconnect; anything
		// else needs operator attention
		if natsutil.IsConnectivityError(err) {
			i.logger.Warn("decision publish deferred by connectivity", "subject", subject, "error", err)
		} else {
			i.logger.Error("failed to publish decision", "subject", subject, "error", err)
		}

		return
	}

	i.logger.Debug("decision published", "subject", subject, "assignee", decision.Assignee)
}
