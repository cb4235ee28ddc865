package salarycalc

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go-tutorcenter/internal/events"
	"go-tutorcenter/internal/messaging/kafka"
	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"
	"go-tutorcenter/internal/shared/apperror"
	"go-tutorcenter/internal/shared/contextutil"
	"go-tutorcenter/internal/shared/counter"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const referencePrefix = "SC"

type Service interface {
	Generate(ctx context.Context, companyID, actorID, teacherID string, req GenerateCalculationRequest) (CalculationDetailResponse, error)
	GetAll(ctx context.Context, companyID, teacherID string, filter ListCalculationsFilter) ([]CalculationSummaryResponse, error)
	GetByID(ctx context.Context, companyID, teacherID, id string) (CalculationDetailResponse, error)
	GetAuditLogs(ctx context.Context, companyID, teacherID, id string) ([]AuditLogResponse, error)
	Approve(ctx context.Context, companyID, actorID, teacherID, id string, req ApproveCalculationRequest) (CalculationDetailResponse, error)
	Reopen(ctx context.Context, companyID, actorID, teacherID, id string, req ReopenCalculationRequest) (CalculationDetailResponse, error)
	Recalculate(ctx context.Context, companyID, actorID, teacherID, id string) (CalculationDetailResponse, error)
	UpdateBaseSalary(ctx context.Context, companyID, actorID, teacherID, id string, req UpdateBaseSalaryRequest) (CalculationDetailResponse, error)
	AddAdjustment(ctx context.Context, companyID, actorID, teacherID, id string, req AddAdjustmentRequest) (CalculationDetailResponse, error)
	RemoveAdjustment(ctx context.Context, companyID, actorID, teacherID, id, adjustmentID string) (CalculationDetailResponse, error)
	GetStatement(ctx context.Context, companyID, teacherID, id string) (Statement, error)
	GenerateStatement(ctx context.Context, companyID, id string) error
	ClearStatement(ctx context.Context, companyID, id string) error
	Export(ctx context.Context, companyID string, filter ExportCalculationsFilter) ([]byte, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	logger  *zap.Logger
	now     func() time.Time
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counter, nil, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counter counter.Repository,
	outboxRepo kafka.OutboxRepository,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("salarycalc.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("salarycalc.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		outbox:  outboxRepo,
		logger:  l,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

func (s *service) Generate(
	ctx context.Context,
	companyID, actorID, teacherID string,
	req GenerateCalculationRequest,
) (CalculationDetailResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate salary calculation requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("teacher_id", teacherID),
		zap.String("period_start", req.PeriodStart),
		zap.String("period_end", req.PeriodEnd),
	)

	params, err := validateGenerateRequest(companyID, actorID, teacherID, req)
	if err != nil {
		s.logger.Warn("generate salary calculation invalid request",
			zap.String("request_id", rid),
			zap.Error(err),
		)
		return CalculationDetailResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate salary calculation begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.TeacherBelongsToCompany(ctx, companyID, teacherID)
	if err != nil {
		s.logger.Error("generate salary calculation teacher lookup failed", zap.Error(err))
		return CalculationDetailResponse{}, err
	}
	if !belongs {
		s.logger.Warn("generate salary calculation teacher not in company",
			zap.String("company_id", companyID),
			zap.String("teacher_id", teacherID),
		)
		return CalculationDetailResponse{}, salarycalcerrors.ErrTeacherNotInCompany
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, companyID, teacherID, params.PeriodStart, params.PeriodEnd, nil)
	if err != nil {
		s.logger.Error("generate salary calculation overlap check failed", zap.Error(err))
		return CalculationDetailResponse{}, err
	}
	if overlap {
		s.logger.Warn("generate salary calculation overlapping period",
			zap.String("teacher_id", teacherID),
			zap.Time("period_start", params.PeriodStart),
			zap.Time("period_end", params.PeriodEnd),
		)
		return CalculationDetailResponse{}, salarycalcerrors.ErrCalculationOverlap
	}

	breakdown, err := s.computeBreakdown(ctx, qtx, companyID, teacherID, params.PeriodStart, params.PeriodEnd)
	if err != nil {
		return CalculationDetailResponse{}, err
	}

	nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeSalaryCalculation)
	if err != nil {
		s.logger.Error("generate salary calculation reference number failed", zap.Error(err))
		return CalculationDetailResponse{}, err
	}
	params.ReferenceNumber = counter.FormatReference(referencePrefix, nextVal)

	calc, err := NewSalaryCalculation(params, breakdown, s.now())
	if err != nil {
		return CalculationDetailResponse{}, err
	}

	if err := qtx.Create(ctx, calc); err != nil {
		s.logger.Error("generate salary calculation persist failed", zap.Error(err))
		return CalculationDetailResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationDetailResponse{}, err
	}

	if len(breakdown.Warnings) > 0 {
		s.logger.Warn("generate salary calculation partial breakdown",
			zap.String("calculation_id", calc.ID.String()),
			zap.Strings("warnings", breakdown.Warnings),
		)
	}
	s.logger.Info("generate salary calculation success",
		zap.String("request_id", rid),
		zap.String("calculation_id", calc.ID.String()),
		zap.String("reference_number", calc.ReferenceNumber),
		zap.String("calculated_amount", calc.CalculatedAmount.StringFixed(2)),
	)

	return mapToDetailResponse(calc), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID, teacherID string,
	filter ListCalculationsFilter,
) ([]CalculationSummaryResponse, error) {
	s.logger.Debug("get salary calculations requested",
		zap.String("company_id", companyID),
		zap.String("teacher_id", teacherID),
		zap.String("status", filter.Status),
	)

	if _, err := uuid.Parse(teacherID); err != nil {
		return nil, salarycalcerrors.ErrInvalidTeacherID
	}
	if err := validateStatusFilter(filter.Status); err != nil {
		return nil, err
	}

	calcs, err := s.repo.FindAllByTeacher(ctx, companyID, teacherID, CalculationQueryFilter{Status: filter.Status})
	if err != nil {
		s.logger.Error("get salary calculations failed", zap.Error(err))
		return nil, err
	}

	return mapToSummaryList(calcs), nil
}

func (s *service) GetByID(ctx context.Context, companyID, teacherID, id string) (CalculationDetailResponse, error) {
	calc, err := s.load(ctx, s.repo, companyID, teacherID, id)
	if err != nil {
		return CalculationDetailResponse{}, err
	}
	return mapToDetailResponse(calc), nil
}

func (s *service) GetAuditLogs(ctx context.Context, companyID, teacherID, id string) ([]AuditLogResponse, error) {
	calc, err := s.load(ctx, s.repo, companyID, teacherID, id)
	if err != nil {
		return nil, err
	}
	return mapToAuditLogList(calc.History()), nil
}

func (s *service) Approve(
	ctx context.Context,
	companyID, actorID, teacherID, id string,
	req ApproveCalculationRequest,
) (CalculationDetailResponse, error) {
	if req.ApprovedAmount == nil {
		return CalculationDetailResponse{}, apperror.RequiredField("approved_amount")
	}

	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name:  "approve salary calculation",
		event: events.SalaryCalculationApproved,
		apply: func(_ context.Context, _ Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			return calc.Approve(*req.ApprovedAmount, req.AdjustmentReason, actor, now)
		},
	})
}

func (s *service) Reopen(
	ctx context.Context,
	companyID, actorID, teacherID, id string,
	req ReopenCalculationRequest,
) (CalculationDetailResponse, error) {
	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name:  "reopen salary calculation",
		event: events.SalaryCalculationReopened,
		apply: func(_ context.Context, _ Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			return calc.Reopen(req.Reason, actor, now)
		},
	})
}

func (s *service) Recalculate(ctx context.Context, companyID, actorID, teacherID, id string) (CalculationDetailResponse, error) {
	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name: "recalculate salary calculation",
		apply: func(ctx context.Context, qtx Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			if !calc.IsEditable() {
				return salarycalcerrors.ErrRecalculateNotAllowed
			}
			breakdown, err := s.computeBreakdown(ctx, qtx, companyID, teacherID, calc.PeriodStart, calc.PeriodEnd)
			if err != nil {
				return err
			}
			return calc.Recalculate(breakdown, actor, now)
		},
		persist: func(ctx context.Context, qtx Repository, calc *SalaryCalculation) error {
			return qtx.ReplaceItems(ctx, calc.ID, calc.Items)
		},
	})
}

func (s *service) UpdateBaseSalary(
	ctx context.Context,
	companyID, actorID, teacherID, id string,
	req UpdateBaseSalaryRequest,
) (CalculationDetailResponse, error) {
	if req.BaseSalaryAmount == nil {
		return CalculationDetailResponse{}, apperror.RequiredField("base_salary_amount")
	}

	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name: "update base salary",
		apply: func(_ context.Context, _ Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			return calc.UpdateBaseSalary(*req.BaseSalaryAmount, actor, now)
		},
	})
}

func (s *service) AddAdjustment(
	ctx context.Context,
	companyID, actorID, teacherID, id string,
	req AddAdjustmentRequest,
) (CalculationDetailResponse, error) {
	if req.Amount == nil {
		return CalculationDetailResponse{}, apperror.RequiredField("amount")
	}

	var added SalaryAdjustment
	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name: "add salary adjustment",
		apply: func(_ context.Context, _ Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			adj, err := calc.AddAdjustment(AdjustmentInput{
				AdjustmentType: req.AdjustmentType,
				Description:    req.Description,
				Amount:         *req.Amount,
				Actor:          actor,
				At:             now,
			})
			if err != nil {
				return err
			}
			added = adj
			return nil
		},
		persist: func(ctx context.Context, qtx Repository, _ *SalaryCalculation) error {
			return qtx.CreateAdjustment(ctx, &added)
		},
	})
}

func (s *service) RemoveAdjustment(
	ctx context.Context,
	companyID, actorID, teacherID, id, adjustmentID string,
) (CalculationDetailResponse, error) {
	adjUUID, err := uuid.Parse(adjustmentID)
	if err != nil {
		return CalculationDetailResponse{}, salarycalcerrors.ErrInvalidAdjustmentID
	}

	return s.mutate(ctx, companyID, actorID, teacherID, id, mutation{
		name: "remove salary adjustment",
		apply: func(_ context.Context, _ Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error {
			_, err := calc.RemoveAdjustment(adjUUID, actor, now)
			return err
		},
		persist: func(ctx context.Context, qtx Repository, calc *SalaryCalculation) error {
			if err := qtx.DeleteAdjustment(ctx, calc.ID, adjUUID); err != nil {
				if errors.Is(mapRepositoryError(err), salarycalcerrors.ErrCalculationNotFound) {
					return salarycalcerrors.ErrAdjustmentNotFound
				}
				return err
			}
			return nil
		},
	})
}

func (s *service) GetStatement(ctx context.Context, companyID, teacherID, id string) (Statement, error) {
	calc, err := s.load(ctx, s.repo, companyID, teacherID, id)
	if err != nil {
		return Statement{}, err
	}

	if calc.Status == StatusApproved && len(calc.StatementPDF) > 0 {
		return Statement{Filename: statementFilename(calc), Data: calc.StatementPDF}, nil
	}

	name, err := s.repo.FindTeacherName(ctx, companyID, teacherID)
	if err != nil {
		s.logger.Error("get salary statement teacher lookup failed", zap.Error(err))
		return Statement{}, err
	}

	return Statement{
		Filename: statementFilename(calc),
		Data:     buildStatementPDF(statementLines(calc, name)),
	}, nil
}

// GenerateStatement stores a rendered statement on an approved calculation.
// Calculations that were reopened before the event arrived are skipped.
func (s *service) GenerateStatement(ctx context.Context, companyID, id string) error {
	calc, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if calc.Status != StatusApproved {
		s.logger.Info("generate salary statement skipped",
			zap.String("calculation_id", id),
			zap.String("status", calc.Status),
		)
		return nil
	}

	name, err := s.repo.FindTeacherName(ctx, companyID, calc.TeacherID.String())
	if err != nil {
		return err
	}

	pdf := buildStatementPDF(statementLines(calc, name))
	now := s.now()
	if err := s.repo.UpdateStatement(ctx, companyID, id, pdf, &now); err != nil {
		s.logger.Error("generate salary statement persist failed", zap.String("calculation_id", id), zap.Error(err))
		return err
	}

	s.logger.Info("generate salary statement success",
		zap.String("calculation_id", id),
		zap.Int("size_bytes", len(pdf)),
	)
	return nil
}

func (s *service) ClearStatement(ctx context.Context, companyID, id string) error {
	if err := s.repo.UpdateStatement(ctx, companyID, id, nil, nil); err != nil {
		s.logger.Error("clear salary statement failed", zap.String("calculation_id", id), zap.Error(err))
		return err
	}
	s.logger.Info("clear salary statement success", zap.String("calculation_id", id))
	return nil
}

func (s *service) Export(ctx context.Context, companyID string, filter ExportCalculationsFilter) ([]byte, error) {
	if err := validateStatusFilter(filter.Status); err != nil {
		return nil, err
	}

	query := CalculationQueryFilter{Status: filter.Status}
	if filter.PeriodFrom != "" {
		from, err := parseDate(filter.PeriodFrom)
		if err != nil {
			return nil, err
		}
		query.PeriodFrom = &from
	}
	if filter.PeriodTo != "" {
		to, err := parseDate(filter.PeriodTo)
		if err != nil {
			return nil, err
		}
		query.PeriodTo = &to
	}
	if query.PeriodFrom != nil && query.PeriodTo != nil && query.PeriodFrom.After(*query.PeriodTo) {
		return nil, salarycalcerrors.ErrInvalidDateRange
	}

	calcs, err := s.repo.FindAllByCompany(ctx, companyID, query)
	if err != nil {
		s.logger.Error("export salary calculations failed", zap.Error(err))
		return nil, err
	}

	data, err := buildCalculationsWorkbook(calcs)
	if err != nil {
		s.logger.Error("export salary calculations workbook failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("export salary calculations success",
		zap.String("company_id", companyID),
		zap.Int("rows", len(calcs)),
	)
	return data, nil
}

type mutation struct {
	name    string
	event   string
	apply   func(ctx context.Context, qtx Repository, calc *SalaryCalculation, actor uuid.UUID, now time.Time) error
	persist func(ctx context.Context, qtx Repository, calc *SalaryCalculation) error
}

// mutate loads the calculation inside one transaction, applies a domain
// command and writes the scalar row, the new audit entries and any child
// rows the command touched.
func (s *service) mutate(
	ctx context.Context,
	companyID, actorID, teacherID, id string,
	m mutation,
) (CalculationDetailResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug(m.name+" requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("calculation_id", id),
	)

	actor, err := uuid.Parse(actorID)
	if err != nil {
		return CalculationDetailResponse{}, salarycalcerrors.ErrInvalidActorID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error(m.name+" begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationDetailResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	calc, err := s.load(ctx, qtx, companyID, teacherID, id)
	if err != nil {
		return CalculationDetailResponse{}, err
	}
	recorded := len(calc.AuditLogs)

	if err := m.apply(ctx, qtx, calc, actor, s.now()); err != nil {
		s.logWarnOrError(m.name+" refused", err,
			zap.String("request_id", rid),
			zap.String("calculation_id", id),
			zap.String("status", calc.Status),
		)
		return CalculationDetailResponse{}, err
	}

	if err := qtx.Update(ctx, calc); err != nil {
		s.logger.Error(m.name+" persist failed", zap.String("calculation_id", id), zap.Error(err))
		return CalculationDetailResponse{}, mapRepositoryError(err)
	}
	if m.persist != nil {
		if err := m.persist(ctx, qtx, calc); err != nil {
			s.logger.Error(m.name+" persist children failed", zap.String("calculation_id", id), zap.Error(err))
			return CalculationDetailResponse{}, err
		}
	}
	if err := qtx.AppendAuditLogs(ctx, calc.AuditLogs[recorded:]); err != nil {
		s.logger.Error(m.name+" audit persist failed", zap.String("calculation_id", id), zap.Error(err))
		return CalculationDetailResponse{}, err
	}

	if m.event != "" && s.outbox != nil {
		if err := s.enqueueLifecycleEvent(ctx, tx, rid, m.event, calc); err != nil {
			s.logger.Error(m.name+" outbox persist failed", zap.String("calculation_id", id), zap.Error(err))
			return CalculationDetailResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return CalculationDetailResponse{}, err
	}

	s.logger.Info(m.name+" success",
		zap.String("request_id", rid),
		zap.String("calculation_id", id),
		zap.String("status", calc.Status),
		zap.String("calculated_amount", calc.CalculatedAmount.StringFixed(2)),
	)

	return mapToDetailResponse(calc), nil
}

func (s *service) enqueueLifecycleEvent(ctx context.Context, tx *sql.Tx, rid, eventType string, calc *SalaryCalculation) error {
	amount := calc.CalculatedAmount
	if eventType == events.SalaryCalculationApproved && calc.ApprovedAmount != nil {
		amount = *calc.ApprovedAmount
	}

	payload, err := json.Marshal(events.SalaryCalculationLifecycleEvent{
		EventType:     eventType,
		RequestID:     rid,
		CalculationID: calc.ID.String(),
		CompanyID:     calc.CompanyID.String(),
		TeacherID:     calc.TeacherID.String(),
		Amount:        amount.StringFixed(2),
		OccurredAt:    s.now(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.NewString(),
		RequestID:     rid,
		AggregateType: "salary_calculation",
		AggregateID:   calc.ID.String(),
		EventType:     eventType,
		Topic:         events.SalaryCalculationLifecycleTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) load(ctx context.Context, repo Repository, companyID, teacherID, id string) (*SalaryCalculation, error) {
	if _, err := uuid.Parse(companyID); err != nil {
		return nil, salarycalcerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(teacherID); err != nil {
		return nil, salarycalcerrors.ErrInvalidTeacherID
	}
	if _, err := uuid.Parse(id); err != nil {
		return nil, salarycalcerrors.ErrInvalidCalculationID
	}

	calc, err := repo.FindByIDAndTeacher(ctx, companyID, teacherID, id)
	if err != nil {
		mapped := mapRepositoryError(err)
		if !errors.Is(mapped, salarycalcerrors.ErrCalculationNotFound) {
			s.logger.Error("find salary calculation failed", zap.String("calculation_id", id), zap.Error(err))
		}
		return nil, mapped
	}
	return calc, nil
}

func (s *service) computeBreakdown(
	ctx context.Context,
	repo Repository,
	companyID, teacherID string,
	periodStart, periodEnd time.Time,
) (Breakdown, error) {
	facts, err := repo.FindLessonFacts(ctx, companyID, teacherID, periodStart, periodEnd)
	if err != nil {
		s.logger.Error("load lesson facts failed", zap.String("teacher_id", teacherID), zap.Error(err))
		return Breakdown{}, err
	}

	rules, err := repo.FindRateRules(ctx, companyID, teacherID, periodEnd)
	if err != nil {
		s.logger.Error("load rate rules failed", zap.String("teacher_id", teacherID), zap.Error(err))
		return Breakdown{}, err
	}

	return ComputeBreakdown(facts, rules), nil
}

func (s *service) logWarnOrError(msg string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	var appErr *apperror.AppError
	if errors.As(err, &appErr) && appErr.HTTPStatus < 500 {
		s.logger.Warn(msg, fields...)
		return
	}
	s.logger.Error(msg, fields...)
}

func validateGenerateRequest(companyID, actorID, teacherID string, req GenerateCalculationRequest) (NewCalculationParams, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidActorID
	}
	teacherUUID, err := uuid.Parse(teacherID)
	if err != nil {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidTeacherID
	}

	periodStart, err := parseDate(req.PeriodStart)
	if err != nil {
		return NewCalculationParams{}, err
	}
	periodEnd, err := parseDate(req.PeriodEnd)
	if err != nil {
		return NewCalculationParams{}, err
	}
	if periodStart.After(periodEnd) {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidDateRange
	}

	academicPeriod := strings.TrimSpace(req.AcademicPeriod)
	if academicPeriod == "" || len(academicPeriod) > 40 {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidAcademicPeriod
	}

	base := decimal.Zero
	if req.BaseSalaryAmount != nil {
		base = *req.BaseSalaryAmount
	}
	if base.IsNegative() || !hasMoneyPrecision(base) {
		return NewCalculationParams{}, salarycalcerrors.ErrInvalidBaseSalary
	}

	return NewCalculationParams{
		CompanyID:        companyUUID,
		TeacherID:        teacherUUID,
		AcademicPeriod:   academicPeriod,
		PeriodStart:      periodStart,
		PeriodEnd:        periodEnd,
		BaseSalaryAmount: base,
		CreatedBy:        actorUUID,
	}, nil
}

func validateStatusFilter(status string) error {
	switch status {
	case "", StatusPending, StatusApproved, StatusReopened:
		return nil
	}
	return salarycalcerrors.ErrInvalidStatusFilter
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse(dateLayout, v)
	if err != nil {
		return time.Time{}, salarycalcerrors.ErrInvalidDateFormat
	}
	return t, nil
}
