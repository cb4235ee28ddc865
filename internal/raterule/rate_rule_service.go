package raterule

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	rateruleerrors "go-tutorcenter/internal/raterule/errors"
	"go-tutorcenter/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	RateRuleAllKeyPrefix = "rate_rules:"
	rateRuleCacheTTL     = 30 * time.Minute
	dateLayout           = "2006-01-02"
)

func GetRateRuleAllKey(companyID, teacherID string) string {
	return RateRuleAllKeyPrefix + companyID + ":" + teacherID
}

type Service interface {
	Create(ctx context.Context, companyID, actorID, teacherID string, req CreateRateRuleRequest) (RateRuleResponse, error)
	GetAll(ctx context.Context, companyID, teacherID string) ([]RateRuleResponse, error)
	GetByID(ctx context.Context, companyID, teacherID, id string) (RateRuleResponse, error)
	Delete(ctx context.Context, companyID, teacherID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	rdb    *redis.Client
	sf     *singleflight.Group
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("raterule.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("raterule.service")
	}
	return &service{db: db, repo: repo, rdb: rdb, sf: &singleflight.Group{}, logger: l}
}

func validateCreateRequest(req CreateRateRuleRequest) (int, decimal.Decimal, time.Time, error) {
	if req.MinStudents == nil || *req.MinStudents < 0 {
		return 0, decimal.Zero, time.Time{}, rateruleerrors.ErrInvalidMinStudents
	}
	if req.RatePerLesson == nil || !req.RatePerLesson.IsPositive() ||
		!req.RatePerLesson.Equal(req.RatePerLesson.Round(2)) {
		return 0, decimal.Zero, time.Time{}, rateruleerrors.ErrInvalidRatePerLesson
	}
	effectiveFrom, err := time.Parse(dateLayout, req.EffectiveFrom)
	if err != nil {
		return 0, decimal.Zero, time.Time{}, rateruleerrors.ErrInvalidEffectiveFrom
	}
	return *req.MinStudents, *req.RatePerLesson, effectiveFrom, nil
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID, teacherID string,
	req CreateRateRuleRequest,
) (RateRuleResponse, error) {
	rid := contextutil.GetRequestID(ctx)

	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return RateRuleResponse{}, rateruleerrors.ErrTeacherNotInCompany
	}
	teacherUUID, err := uuid.Parse(teacherID)
	if err != nil {
		return RateRuleResponse{}, rateruleerrors.ErrInvalidTeacherID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		actorUUID = uuid.Nil
	}

	minStudents, rate, effectiveFrom, err := validateCreateRequest(req)
	if err != nil {
		s.logger.Warn("create rate rule invalid request",
			zap.String("request_id", rid),
			zap.String("teacher_id", teacherID),
			zap.Error(err),
		)
		return RateRuleResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create rate rule begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return RateRuleResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.TeacherBelongsToCompany(ctx, companyID, teacherID)
	if err != nil {
		return RateRuleResponse{}, err
	}
	if !belongs {
		return RateRuleResponse{}, rateruleerrors.ErrTeacherNotInCompany
	}

	rule := &TeacherRateRule{
		ID:            uuid.New(),
		CompanyID:     companyUUID,
		TeacherID:     teacherUUID,
		MinStudents:   minStudents,
		RatePerLesson: rate,
		EffectiveFrom: effectiveFrom,
		CreatedBy:     actorUUID,
	}

	if err := qtx.Create(ctx, rule); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Warn("create rate rule failed",
			zap.String("request_id", rid),
			zap.String("teacher_id", teacherID),
			zap.Error(mapped),
		)
		return RateRuleResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create rate rule commit failed", zap.String("request_id", rid), zap.Error(err))
		return RateRuleResponse{}, err
	}

	s.invalidate(ctx, companyID, teacherID)

	s.logger.Info("rate rule created",
		zap.String("request_id", rid),
		zap.String("teacher_id", teacherID),
		zap.String("rate_rule_id", rule.ID.String()),
		zap.Int("min_students", rule.MinStudents),
	)
	return mapToResponse(*rule), nil
}

func (s *service) GetAll(ctx context.Context, companyID, teacherID string) ([]RateRuleResponse, error) {
	if _, err := uuid.Parse(teacherID); err != nil {
		return nil, rateruleerrors.ErrInvalidTeacherID
	}

	cacheKey := GetRateRuleAllKey(companyID, teacherID)

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil {
			var resp []RateRuleResponse
			if err := json.Unmarshal([]byte(cached), &resp); err == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		rules, err := s.repo.FindAllByTeacher(ctx, companyID, teacherID)
		if err != nil {
			return nil, err
		}

		resp := mapToListResponse(rules)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, rateRuleCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		s.logger.Error("list rate rules failed", zap.String("teacher_id", teacherID), zap.Error(err))
		return nil, err
	}

	return v.([]RateRuleResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, teacherID, id string) (RateRuleResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return RateRuleResponse{}, rateruleerrors.ErrInvalidRateRuleID
	}

	rule, err := s.repo.FindByIDAndTeacher(ctx, companyID, teacherID, id)
	if err != nil {
		return RateRuleResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*rule), nil
}

func (s *service) Delete(ctx context.Context, companyID, teacherID, id string) error {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return rateruleerrors.ErrInvalidRateRuleID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, teacherID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidate(ctx, companyID, teacherID)

	s.logger.Info("rate rule deleted",
		zap.String("request_id", rid),
		zap.String("teacher_id", teacherID),
		zap.String("rate_rule_id", id),
	)
	return nil
}

func (s *service) invalidate(ctx context.Context, companyID, teacherID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetRateRuleAllKey(companyID, teacherID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Warn("failed to invalidate rate rule cache",
			zap.String("key", cacheKey),
			zap.Error(err),
		)
	}
}

func mapToResponse(rule TeacherRateRule) RateRuleResponse {
	return RateRuleResponse{
		ID:            rule.ID.String(),
		TeacherID:     rule.TeacherID.String(),
		MinStudents:   rule.MinStudents,
		RatePerLesson: rule.RatePerLesson.StringFixed(2),
		EffectiveFrom: rule.EffectiveFrom.Format(dateLayout),
		CreatedBy:     rule.CreatedBy.String(),
		CreatedAt:     rule.CreatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(rules []TeacherRateRule) []RateRuleResponse {
	resp := make([]RateRuleResponse, 0, len(rules))
	for _, r := range rules {
		resp = append(resp, mapToResponse(r))
	}
	return resp
}
