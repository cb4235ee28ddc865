package consumer

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go-tutorcenter/internal/events"
	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"
	"go-tutorcenter/internal/shared/contextutil"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageReader is satisfied by *kafkago.Reader.
type MessageReader interface {
	FetchMessage(ctx context.Context) (kafkago.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafkago.Message) error
}

// RetryBackoff is the first wait before a failed event is handled again; each
// further attempt waits one more step, capped at MaxRetryBackoff.
var (
	RetryBackoff    = 2 * time.Second
	MaxRetryBackoff = 30 * time.Second
)

type StatementService interface {
	GenerateStatement(ctx context.Context, companyID, id string) error
	ClearStatement(ctx context.Context, companyID, id string) error
}

func ConsumeSalaryCalculationLifecycle(
	ctx context.Context,
	reader MessageReader,
	statementService StatementService,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.salary_calculation_lifecycle")
	log.Info("salary calculation lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("salary calculation lifecycle consumer stopped")
				return
			}
			log.Error("fetch salary calculation lifecycle message failed", zap.Error(err))
			continue
		}

		if !handleWithRetry(ctx, msg, statementService, log) {
			log.Info("salary calculation lifecycle consumer stopped", zap.Int64("uncommitted_offset", msg.Offset))
			return
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit salary calculation lifecycle message failed", zap.Error(err))
		}
	}
}

// handleWithRetry keeps handling msg until it may be committed. A later commit
// would move the group offset past msg, so it is never skipped; false means ctx
// ended first and msg is redelivered after restart.
func handleWithRetry(
	ctx context.Context,
	msg kafkago.Message,
	statementService StatementService,
	log *zap.Logger,
) bool {
	for attempt := 1; ; attempt++ {
		if HandleLifecycleMessage(ctx, msg, statementService, log) {
			return true
		}

		wait := min(time.Duration(attempt)*RetryBackoff, MaxRetryBackoff)
		log.Warn("retrying salary calculation lifecycle event",
			zap.Int64("offset", msg.Offset),
			zap.Int("attempt", attempt),
			zap.Duration("backoff", wait),
		)

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return false
		case <-timer.C:
		}
	}
}

// HandleLifecycleMessage applies one event and reports whether its offset may
// be committed. Undecodable and unknown events are committed and dropped.
func HandleLifecycleMessage(
	ctx context.Context,
	msg kafkago.Message,
	statementService StatementService,
	log *zap.Logger,
) bool {
	var event events.SalaryCalculationLifecycleEvent
	if err := json.Unmarshal(msg.Value, &event); err != nil {
		log.Error("decode salary calculation lifecycle event failed",
			zap.Int64("offset", msg.Offset),
			zap.Error(err),
		)
		return true
	}

	if event.RequestID != "" {
		ctx = contextutil.WithRequestID(ctx, event.RequestID)
	}
	fields := []zap.Field{
		zap.String("request_id", event.RequestID),
		zap.String("event_type", event.EventType),
		zap.String("calculation_id", event.CalculationID),
		zap.String("company_id", event.CompanyID),
	}

	var err error
	switch event.EventType {
	case events.SalaryCalculationApproved:
		err = statementService.GenerateStatement(ctx, event.CompanyID, event.CalculationID)
	case events.SalaryCalculationReopened:
		err = statementService.ClearStatement(ctx, event.CompanyID, event.CalculationID)
	default:
		log.Warn("unknown salary calculation lifecycle event, skipping", fields...)
		return true
	}

	if err != nil {
		if errors.Is(err, salarycalcerrors.ErrCalculationNotFound) {
			log.Warn("salary calculation not found for event, skipping", fields...)
			return true
		}
		log.Error("handle salary calculation lifecycle event failed", append(fields, zap.Error(err))...)
		return false
	}

	log.Info("salary calculation lifecycle event handled", fields...)
	return true
}
