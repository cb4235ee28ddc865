package class

import (
	"context"
	"database/sql"

	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/tenant"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

//go:generate mockgen -source=class_repo.go -destination=mock/class_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, record *Class) error
	FindAllByCompany(ctx context.Context, companyID string, teacherID string) ([]Class, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Class, error)
	Update(ctx context.Context, record *Class) error
	ReplaceSchedules(ctx context.Context, classID uuid.UUID, slots []ClassSchedule) error
	Delete(ctx context.Context, companyID string, id string) error
	TeacherBelongsToCompany(ctx context.Context, companyID string, teacherID string) (bool, error)
	CreateLesson(ctx context.Context, lesson *ClassLesson) error
	FindEnrollment(ctx context.Context, classID string, studentID string) (*ClassEnrollment, error)
	SaveEnrollment(ctx context.Context, enrollment *ClassEnrollment) error
	CountActiveEnrollments(ctx context.Context, classID string) (int64, error)
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

func preloadSchedules(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

func (r *repository) Create(ctx context.Context, record *Class) error {
	return r.conn(ctx).Create(record).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, teacherID string) ([]Class, error) {
	var classes []Class
	db := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Schedules", preloadSchedules)
	if teacherID != "" {
		db = db.Where("teacher_id = ?", teacherID)
	}
	err := db.Order("name").Find(&classes).Error
	return classes, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Class, error) {
	var class Class
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Schedules", preloadSchedules).
		First(&class, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &class, nil
}

func (r *repository) Update(ctx context.Context, record *Class) error {
	return r.conn(ctx).Omit("Schedules").Save(record).Error
}

func (r *repository) ReplaceSchedules(ctx context.Context, classID uuid.UUID, slots []ClassSchedule) error {
	db := r.conn(ctx)
	if err := db.Where("class_id = ?", classID).Delete(&ClassSchedule{}).Error; err != nil {
		return err
	}
	if len(slots) == 0 {
		return nil
	}
	return db.Create(&slots).Error
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	res := r.conn(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Class{}, "id = ?", id)
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
		Where("id = ?", teacherID).
		Scopes(tenant.Scope(companyID)).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateLesson(ctx context.Context, lesson *ClassLesson) error {
	return r.conn(ctx).Create(lesson).Error
}

func (r *repository) FindEnrollment(ctx context.Context, classID string, studentID string) (*ClassEnrollment, error) {
	var enrollment ClassEnrollment
	err := r.conn(ctx).
		Where("class_id = ? AND student_id = ?", classID, studentID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

func (r *repository) SaveEnrollment(ctx context.Context, enrollment *ClassEnrollment) error {
	return r.conn(ctx).Save(enrollment).Error
}

func (r *repository) CountActiveEnrollments(ctx context.Context, classID string) (int64, error) {
	var count int64
	err := r.conn(ctx).
		Model(&ClassEnrollment{}).
		Where("class_id = ? AND status = ?", classID, EnrollmentActive).
		Count(&count).Error
	return count, err
}
