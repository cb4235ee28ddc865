package raterule

import (
	"context"
	"database/sql"

	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=rate_rule_repo.go -destination=mock/rate_rule_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, rule *TeacherRateRule) error
	FindAllByTeacher(ctx context.Context, companyID string, teacherID string) ([]TeacherRateRule, error)
	FindByIDAndTeacher(ctx context.Context, companyID string, teacherID string, id string) (*TeacherRateRule, error)
	Delete(ctx context.Context, companyID string, teacherID string, id string) error
	TeacherBelongsToCompany(ctx context.Context, companyID string, teacherID string) (bool, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, rule *TeacherRateRule) error {
	return r.conn(ctx).Create(rule).Error
}

func (r *repository) FindAllByTeacher(ctx context.Context, companyID string, teacherID string) ([]TeacherRateRule, error) {
	var rules []TeacherRateRule
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("teacher_id = ?", teacherID).
		Order("effective_from DESC, min_students ASC").
		Find(&rules).Error
	return rules, err
}

func (r *repository) FindByIDAndTeacher(ctx context.Context, companyID string, teacherID string, id string) (*TeacherRateRule, error) {
	var rule TeacherRateRule
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("teacher_id = ?", teacherID).
		First(&rule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rule, nil
}

func (r *repository) Delete(ctx context.Context, companyID string, teacherID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("teacher_id = ? AND id = ?", teacherID, id).
		Delete(&TeacherRateRule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) TeacherBelongsToCompany(ctx context.Context, companyID string, teacherID string) (bool, error) {
	var count int64
	err := r.conn(ctx).
		Table("teachers").
		Scopes(tenant.Scope(companyID)).
		Where("id = ? AND deleted_at IS NULL", teacherID).
		Count(&count).Error
	return count > 0, err
}
