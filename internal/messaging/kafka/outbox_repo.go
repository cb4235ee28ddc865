package kafka

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"time"
)

const (
	OutboxStatusPending = "pending"
	OutboxStatusSent    = "sent"
	OutboxStatusFailed  = "failed"
	// OutboxStatusDead is terminal: the event used up MaxOutboxRetries.
	OutboxStatusDead = "dead"
)

// MaxOutboxRetries is the number of failed publishes after which an event is dead.
const MaxOutboxRetries = 10

const (
	defaultClaimLimit = 50
	// claimLease hides a claimed event from other workers until it is marked.
	claimLease  = time.Minute
	retryStep   = 15 * time.Second
	maxErrorLen = 500
)

var (
	ErrOutboxIDRequired        = errors.New("outbox id is required")
	ErrOutboxTopicRequired     = errors.New("outbox topic is required")
	ErrOutboxEventTypeRequired = errors.New("outbox event type is required")
	ErrOutboxPayloadRequired   = errors.New("outbox payload is required")
	ErrOutboxEventNotFound     = errors.New("outbox event not found")
)

// OutboxEvent is one salary lifecycle message waiting to reach kafka.
type OutboxEvent struct {
	ID            string
	RequestID     string
	AggregateType string
	AggregateID   string
	EventType     string
	Topic         string
	Payload       []byte
	Status        string
	RetryCount    int
	NextRetryAt   time.Time
}

//go:generate mockgen -source=outbox_repo.go -destination=mock/outbox_repo_mock.go -package=mock
type OutboxRepository interface {
	WithTx(tx *sql.Tx) OutboxRepository
	Create(ctx context.Context, event OutboxEvent) error
	ClaimPending(ctx context.Context, limit int) ([]OutboxEvent, error)
	MarkSent(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, reason string) error
}

type sqlRunner interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

type outboxRepository struct {
	db *sql.DB
	tx *sql.Tx
}

func NewOutboxRepository(db *sql.DB) OutboxRepository {
	return &outboxRepository{db: db}
}

func (r *outboxRepository) WithTx(tx *sql.Tx) OutboxRepository {
	return &outboxRepository{db: r.db, tx: tx}
}

func (r *outboxRepository) runner() sqlRunner {
	if r.tx != nil {
		return r.tx
	}
	return r.db
}

// Create stores the event in the caller's transaction. An empty status means pending.
func (r *outboxRepository) Create(ctx context.Context, event OutboxEvent) error {
	if event.Status == "" {
		event.Status = OutboxStatusPending
	}
	if err := ValidateOutboxEvent(event); err != nil {
		return err
	}

	const insertEvent = `
INSERT INTO outbox_events (
	id, request_id, aggregate_type, aggregate_id, event_type, topic, payload, status
) VALUES ($1, NULLIF($2, ''), $3, $4, $5, $6, $7, $8)
`
	_, err := r.runner().ExecContext(ctx, insertEvent,
		event.ID, event.RequestID, event.AggregateType, event.AggregateID,
		event.EventType, event.Topic, event.Payload, event.Status,
	)
	if err != nil {
		return fmt.Errorf("insert outbox event %s: %w", event.ID, err)
	}
	return nil
}

// ClaimPending leases up to limit due events, oldest first. Rows locked by a
// concurrent worker are skipped, so two workers never publish the same claim.
func (r *outboxRepository) ClaimPending(ctx context.Context, limit int) ([]OutboxEvent, error) {
	if limit <= 0 {
		limit = defaultClaimLimit
	}

	const claimDue = `
WITH due AS (
	SELECT id
	FROM outbox_events
	WHERE status IN ($1, $2)
		AND (next_retry_at IS NULL OR next_retry_at <= NOW())
	ORDER BY created_at ASC
	LIMIT $3
	FOR UPDATE SKIP LOCKED
)
UPDATE outbox_events o
SET next_retry_at = NOW() + make_interval(secs => $4), updated_at = NOW()
FROM due
WHERE o.id = due.id
RETURNING
	o.id::text, COALESCE(o.request_id, ''), o.aggregate_type, o.aggregate_id,
	o.event_type, o.topic, o.payload, o.status, o.retry_count, o.next_retry_at, o.created_at
`
	rows, err := r.runner().QueryContext(ctx, claimDue,
		OutboxStatusPending, OutboxStatusFailed, limit, claimLease.Seconds(),
	)
	if err != nil {
		return nil, fmt.Errorf("claim outbox events: %w", err)
	}
	defer rows.Close()

	type claimed struct {
		event     OutboxEvent
		createdAt time.Time
	}
	var batch []claimed
	for rows.Next() {
		var c claimed
		e := &c.event
		if err := rows.Scan(
			&e.ID, &e.RequestID, &e.AggregateType, &e.AggregateID,
			&e.EventType, &e.Topic, &e.Payload, &e.Status, &e.RetryCount, &e.NextRetryAt, &c.createdAt,
		); err != nil {
			return nil, fmt.Errorf("scan outbox event: %w", err)
		}
		batch = append(batch, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("claim outbox events: %w", err)
	}

	// RETURNING order is unspecified; publish in creation order.
	slices.SortStableFunc(batch, func(a, b claimed) int { return a.createdAt.Compare(b.createdAt) })
	events := make([]OutboxEvent, len(batch))
	for i, c := range batch {
		events[i] = c.event
	}
	return events, nil
}

func (r *outboxRepository) MarkSent(ctx context.Context, id string) error {
	const markSent = `
UPDATE outbox_events
SET status = $2, processed_at = NOW(), error_message = NULL, next_retry_at = NULL, updated_at = NOW()
WHERE id = $1
`
	res, err := r.runner().ExecContext(ctx, markSent, id, OutboxStatusSent)
	return affectedOne(res, err, id)
}

// MarkFailed schedules the next attempt retryStep further out per failure and
// turns the event dead once it reaches MaxOutboxRetries.
func (r *outboxRepository) MarkFailed(ctx context.Context, id string, reason string) error {
	if len(reason) > maxErrorLen {
		reason = reason[:maxErrorLen]
	}

	const markFailed = `
UPDATE outbox_events
SET
	retry_count = retry_count + 1,
	status = CASE WHEN retry_count + 1 >= $3 THEN $4 ELSE $2 END,
	error_message = $5,
	next_retry_at = NOW() + (retry_count + 1) * make_interval(secs => $6),
	updated_at = NOW()
WHERE id = $1
`
	res, err := r.runner().ExecContext(ctx, markFailed,
		id, OutboxStatusFailed, MaxOutboxRetries, OutboxStatusDead, reason, retryStep.Seconds(),
	)
	return affectedOne(res, err, id)
}

func affectedOne(res sql.Result, err error, id string) error {
	if err != nil {
		return fmt.Errorf("update outbox event %s: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update outbox event %s: %w", id, err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrOutboxEventNotFound, id)
	}
	return nil
}

func ValidateOutboxEvent(event OutboxEvent) error {
	switch {
	case event.ID == "":
		return ErrOutboxIDRequired
	case event.Topic == "":
		return ErrOutboxTopicRequired
	case event.EventType == "":
		return ErrOutboxEventTypeRequired
	case len(event.Payload) == 0:
		return ErrOutboxPayloadRequired
	}

	switch event.Status {
	case OutboxStatusPending, OutboxStatusSent, OutboxStatusFailed, OutboxStatusDead:
		return nil
	default:
		return fmt.Errorf("invalid outbox status: %s", event.Status)
	}
}
