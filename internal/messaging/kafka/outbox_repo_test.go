package kafka_test

import (
	"context"
	"regexp"
	"strings"
	"testing"
	"time"

	"go-tutorcenter/internal/messaging/kafka"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validEvent() kafka.OutboxEvent {
	return kafka.OutboxEvent{
		ID:            "2f8b7f8e-6d43-4f57-9b1a-1f1d1d8a0a01",
		RequestID:     "rid-1",
		AggregateType: "salary_calculation",
		AggregateID:   "1b4e28ba-2fa1-11d2-883f-0016d3cca427",
		EventType:     "salary_calculation_approved",
		Topic:         "tutor.salary.calculation.lifecycle.v1",
		Payload:       []byte(`{"calculation_id":"1b4e28ba-2fa1-11d2-883f-0016d3cca427"}`),
		Status:        kafka.OutboxStatusPending,
	}
}

func TestValidateOutboxEvent(t *testing.T) {
	assert.NoError(t, kafka.ValidateOutboxEvent(validEvent()))

	missingTopic := validEvent()
	missingTopic.Topic = ""
	assert.ErrorIs(t, kafka.ValidateOutboxEvent(missingTopic), kafka.ErrOutboxTopicRequired)

	emptyPayload := validEvent()
	emptyPayload.Payload = nil
	assert.ErrorIs(t, kafka.ValidateOutboxEvent(emptyPayload), kafka.ErrOutboxPayloadRequired)

	dead := validEvent()
	dead.Status = kafka.OutboxStatusDead
	assert.NoError(t, kafka.ValidateOutboxEvent(dead))

	badStatus := validEvent()
	badStatus.Status = "queued"
	assert.EqualError(t, kafka.ValidateOutboxEvent(badStatus), "invalid outbox status: queued")
}

func TestOutboxRepository_CreateInTx(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := validEvent()
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO outbox_events")).
		WithArgs(event.ID, event.RequestID, event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, event.Status).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.Begin()
	require.NoError(t, err)

	repo := kafka.NewOutboxRepository(db)
	require.NoError(t, repo.WithTx(tx).Create(context.Background(), event))
	require.NoError(t, tx.Commit())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateRejectsInvalid(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := validEvent()
	event.ID = ""

	err = kafka.NewOutboxRepository(db).Create(context.Background(), event)

	assert.ErrorIs(t, err, kafka.ErrOutboxIDRequired)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_CreateDefaultsToPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	event := validEvent()
	event.Status = ""
	event.RequestID = ""
	mock.ExpectExec(regexp.QuoteMeta("NULLIF($2, '')")).
		WithArgs(event.ID, "", event.AggregateType, event.AggregateID, event.EventType, event.Topic, event.Payload, kafka.OutboxStatusPending).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_ClaimPending(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	lease := time.Date(2026, 1, 16, 9, 1, 0, 0, time.UTC)
	older := time.Date(2026, 1, 15, 8, 0, 0, 0, time.UTC)
	newer := older.Add(time.Hour)
	topic := "tutor.salary.calculation.lifecycle.v1"
	rows := sqlmock.NewRows([]string{
		"id", "request_id", "aggregate_type", "aggregate_id", "event_type", "topic", "payload", "status", "retry_count", "next_retry_at", "created_at",
	}).
		AddRow("e2", "", "salary_calculation", "c2", "salary_calculation_reopened", topic, []byte(`{}`), kafka.OutboxStatusPending, 0, lease, newer).
		AddRow("e1", "rid-1", "salary_calculation", "c1", "salary_calculation_approved", topic, []byte(`{}`), kafka.OutboxStatusFailed, 2, lease, older)

	mock.ExpectQuery(regexp.QuoteMeta("FOR UPDATE SKIP LOCKED")).
		WithArgs(kafka.OutboxStatusPending, kafka.OutboxStatusFailed, 50, float64(60)).
		WillReturnRows(rows)

	events, err := kafka.NewOutboxRepository(db).ClaimPending(context.Background(), 0)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "e1", events[0].ID)
	assert.Equal(t, "rid-1", events[0].RequestID)
	assert.Equal(t, 2, events[0].RetryCount)
	assert.Equal(t, lease, events[0].NextRetryAt)
	assert.Equal(t, "e2", events[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentAndFailed(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e1", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("THEN $4 ELSE $2 END")).
		WithArgs("e2", kafka.OutboxStatusFailed, kafka.MaxOutboxRetries, kafka.OutboxStatusDead, "broker down", float64(15)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := kafka.NewOutboxRepository(db)
	require.NoError(t, repo.MarkSent(context.Background(), "e1"))
	require.NoError(t, repo.MarkFailed(context.Background(), "e2", "broker down"))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkFailedTruncatesReason(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	long := strings.Repeat("x", 600)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("e1", kafka.OutboxStatusFailed, kafka.MaxOutboxRetries, kafka.OutboxStatusDead, long[:500], float64(15)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, kafka.NewOutboxRepository(db).MarkFailed(context.Background(), "e1", long))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOutboxRepository_MarkSentMissingEvent(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE outbox_events")).
		WithArgs("gone", kafka.OutboxStatusSent).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = kafka.NewOutboxRepository(db).MarkSent(context.Background(), "gone")

	assert.ErrorIs(t, err, kafka.ErrOutboxEventNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
