package teacher

import (
	"context"
	"database/sql"

	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=teacher_repo.go -destination=mock/teacher_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *Teacher) error
	FindAllByCompany(ctx context.Context, companyID string) ([]Teacher, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Teacher, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Teacher, error)
	Update(ctx context.Context, record *Teacher) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) conn(ctx context.Context) *gorm.DB {
	return connection.BindTx(r.db, r.tx).WithContext(ctx)
}

func (r *repository) Create(ctx context.Context, record *Teacher) error {
	return r.conn(ctx).Create(record).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]Teacher, error) {
	var teachers []Teacher
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("full_name").
		Find(&teachers).Error
	return teachers, err
}

// FindOptionsByCompany returns active teachers only, for select inputs.
func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Teacher, error) {
	var teachers []Teacher
	err := r.conn(ctx).
		Select("id", "company_id", "teacher_number", "full_name", "email", "status").
		Scopes(tenant.Scope(companyID)).
		Where("status = ?", StatusActive).
		Order("full_name").
		Find(&teachers).Error
	return teachers, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Teacher, error) {
	var teacher Teacher
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&teacher, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &teacher, nil
}

func (r *repository) Update(ctx context.Context, record *Teacher) error {
	return r.conn(ctx).Save(record).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Teacher{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
