package teacher

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"go-tutorcenter/internal/shared/contextutil"
	"go-tutorcenter/internal/shared/counter"
	teachererrors "go-tutorcenter/internal/teacher/errors"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	TeacherOptionsKeyPrefix = "teachers:options:"
	teacherNumberPrefix     = "TCH"
	optionsCacheTTL         = 1 * time.Hour
)

func GetTeacherOptionsKey(companyID string) string {
	return TeacherOptionsKeyPrefix + companyID
}

type Service interface {
	Create(ctx context.Context, companyID string, req CreateTeacherRequest) (TeacherResponse, error)
	GetAll(ctx context.Context, companyID string) ([]TeacherResponse, error)
	GetOptions(ctx context.Context, companyID string) ([]TeacherResponse, error)
	GetByID(ctx context.Context, companyID, id string) (TeacherResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateTeacherRequest) (TeacherResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(db *sql.DB, repo Repository, counter counter.Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("teacher.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("teacher.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counter,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func normalizeStatus(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", StatusActive:
		return StatusActive, nil
	case StatusInactive:
		return StatusInactive, nil
	default:
		return "", teachererrors.ErrInvalidStatus
	}
}

func (s *service) Create(
	ctx context.Context,
	companyID string,
	req CreateTeacherRequest,
) (TeacherResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create teacher requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("email", req.Email),
	)

	hireDate, err := time.Parse("2006-01-02", req.HireDate)
	if err != nil {
		s.logger.Warn("create teacher invalid hire_date", zap.String("hire_date", req.HireDate))
		return TeacherResponse{}, teachererrors.ErrInvalidHireDate
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return TeacherResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create teacher begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if req.TeacherNumber == "" {
		nextVal, err := s.counter.WithTx(tx).GetNextValue(ctx, companyID, counter.TypeTeacherNumber)
		if err != nil {
			s.logger.Error("create teacher generate number failed", zap.Error(err))
			return TeacherResponse{}, err
		}
		req.TeacherNumber = counter.FormatReference(teacherNumberPrefix, nextVal)
	}

	t := &Teacher{
		ID:            uuid.New(),
		CompanyID:     uuid.MustParse(companyID),
		TeacherNumber: req.TeacherNumber,
		FullName:      strings.TrimSpace(req.FullName),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:         req.Phone,
		Subjects:      req.Subjects,
		HireDate:      hireDate,
		Status:        status,
	}

	if err := qtx.Create(ctx, t); err != nil {
		s.logger.Error("create teacher persist failed", zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return TeacherResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)

	s.logger.Info("create teacher success",
		zap.String("request_id", rid),
		zap.String("teacher_id", t.ID.String()),
		zap.String("teacher_number", t.TeacherNumber),
	)
	return mapToResponse(*t), nil
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]TeacherResponse, error) {
	teachers, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all teachers failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, mapRepositoryError(err)
	}
	return mapToListResponse(teachers), nil
}

func (s *service) GetOptions(ctx context.Context, companyID string) ([]TeacherResponse, error) {
	cacheKey := GetTeacherOptionsKey(companyID)

	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, cacheKey).Result(); err == nil {
			var resp []TeacherResponse
			if json.Unmarshal([]byte(cached), &resp) == nil {
				return resp, nil
			}
		}
	}

	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		teachers, err := s.repo.FindOptionsByCompany(ctx, companyID)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		resp := mapToListResponse(teachers)

		if s.rdb != nil {
			if jsonData, err := json.Marshal(resp); err == nil {
				s.rdb.Set(ctx, cacheKey, jsonData, optionsCacheTTL)
			}
		}

		return resp, nil
	})
	if err != nil {
		return nil, err
	}

	return v.([]TeacherResponse), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (TeacherResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return TeacherResponse{}, teachererrors.ErrInvalidTeacherID
	}
	t, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TeacherResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*t), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, id string,
	req UpdateTeacherRequest,
) (TeacherResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return TeacherResponse{}, teachererrors.ErrInvalidTeacherID
	}
	status, err := normalizeStatus(req.Status)
	if err != nil {
		return TeacherResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return TeacherResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	t, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return TeacherResponse{}, mapRepositoryError(err)
	}

	t.FullName = strings.TrimSpace(req.FullName)
	t.Email = strings.ToLower(strings.TrimSpace(req.Email))
	t.Phone = req.Phone
	t.Subjects = req.Subjects
	t.Status = status

	if err := qtx.Update(ctx, t); err != nil {
		s.logger.Warn("update teacher failed", zap.String("teacher_id", id), zap.Error(err))
		return TeacherResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return TeacherResponse{}, err
	}

	s.invalidateOptions(ctx, companyID)

	s.logger.Info("update teacher success",
		zap.String("request_id", rid),
		zap.String("teacher_id", id),
	)
	return mapToResponse(*t), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return teachererrors.ErrInvalidTeacherID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.invalidateOptions(ctx, companyID)
	return nil
}

func (s *service) invalidateOptions(ctx context.Context, companyID string) {
	if s.rdb == nil {
		return
	}
	cacheKey := GetTeacherOptionsKey(companyID)
	if err := s.rdb.Del(ctx, cacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate teacher options cache",
			zap.Error(err),
			zap.String("key", cacheKey),
		)
	}
}

func mapToResponse(t Teacher) TeacherResponse {
	subjects := []string(t.Subjects)
	if subjects == nil {
		subjects = []string{}
	}
	resp := TeacherResponse{
		ID:            t.ID.String(),
		CompanyID:     t.CompanyID.String(),
		TeacherNumber: t.TeacherNumber,
		FullName:      t.FullName,
		Email:         t.Email,
		Phone:         t.Phone,
		Subjects:      subjects,
		Status:        t.Status,
	}
	if !t.HireDate.IsZero() {
		resp.HireDate = t.HireDate.Format("2006-01-02")
	}
	return resp
}

func mapToListResponse(teachers []Teacher) []TeacherResponse {
	res := make([]TeacherResponse, len(teachers))
	for i, t := range teachers {
		res[i] = mapToResponse(t)
	}
	return res
}
