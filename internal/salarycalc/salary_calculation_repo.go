package salarycalc

import (
	"context"
	"database/sql"
	"time"

	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/tenant"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CalculationQueryFilter struct {
	Status     string
	PeriodFrom *time.Time
	PeriodTo   *time.Time
}

type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, calc *SalaryCalculation) error
	Update(ctx context.Context, calc *SalaryCalculation) error
	FindAllByTeacher(ctx context.Context, companyID string, teacherID string, filter CalculationQueryFilter) ([]SalaryCalculation, error)
	FindAllByCompany(ctx context.Context, companyID string, filter CalculationQueryFilter) ([]SalaryCalculation, error)
	FindByIDAndTeacher(ctx context.Context, companyID string, teacherID string, id string) (*SalaryCalculation, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryCalculation, error)
	ReplaceItems(ctx context.Context, calculationID uuid.UUID, items []SalaryCalculationItem) error
	CreateAdjustment(ctx context.Context, adj *SalaryAdjustment) error
	DeleteAdjustment(ctx context.Context, calculationID uuid.UUID, adjustmentID uuid.UUID) error
	AppendAuditLogs(ctx context.Context, logs []SalaryAuditLog) error
	UpdateStatement(ctx context.Context, companyID string, id string, pdf []byte, generatedAt *time.Time) error
	TeacherBelongsToCompany(ctx context.Context, companyID string, teacherID string) (bool, error)
	FindTeacherName(ctx context.Context, companyID string, teacherID string) (string, error)
	HasOverlappingPeriod(ctx context.Context, companyID string, teacherID string, periodStart time.Time, periodEnd time.Time, excludeID *string) (bool, error)
	FindLessonFacts(ctx context.Context, companyID string, teacherID string, periodStart time.Time, periodEnd time.Time) ([]ClassFacts, error)
	FindRateRules(ctx context.Context, companyID string, teacherID string, asOf time.Time) ([]RateRule, error)
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

func (r *repository) Create(ctx context.Context, calc *SalaryCalculation) error {
	return r.conn(ctx).Create(calc).Error
}

// Update writes scalar columns only; child rows have their own methods.
func (r *repository) Update(ctx context.Context, calc *SalaryCalculation) error {
	return r.conn(ctx).
		Model(calc).
		Select(
			"base_salary_amount",
			"calculated_amount",
			"approved_amount",
			"status",
			"approved_at",
			"approved_by",
			"warnings",
			"updated_at",
		).
		Updates(calc).Error
}

func (r *repository) FindAllByTeacher(ctx context.Context, companyID string, teacherID string, filter CalculationQueryFilter) ([]SalaryCalculation, error) {
	var calcs []SalaryCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), filterScope(filter)).
		Where("teacher_id = ?", teacherID).
		Order("period_start DESC").
		Find(&calcs).Error
	return calcs, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter CalculationQueryFilter) ([]SalaryCalculation, error) {
	var calcs []SalaryCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), filterScope(filter)).
		Order("period_start DESC, reference_number").
		Find(&calcs).Error
	return calcs, err
}

func (r *repository) FindByIDAndTeacher(ctx context.Context, companyID string, teacherID string, id string) (*SalaryCalculation, error) {
	var calc SalaryCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), withChildren).
		Where("teacher_id = ?", teacherID).
		First(&calc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryCalculation, error) {
	var calc SalaryCalculation
	err := r.conn(ctx).
		Scopes(tenant.Scope(companyID), withChildren).
		First(&calc, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &calc, nil
}

func (r *repository) ReplaceItems(ctx context.Context, calculationID uuid.UUID, items []SalaryCalculationItem) error {
	db := r.conn(ctx)
	if err := db.Where("calculation_id = ?", calculationID).Delete(&SalaryCalculationItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return db.Create(&items).Error
}

func (r *repository) CreateAdjustment(ctx context.Context, adj *SalaryAdjustment) error {
	return r.conn(ctx).Create(adj).Error
}

func (r *repository) DeleteAdjustment(ctx context.Context, calculationID uuid.UUID, adjustmentID uuid.UUID) error {
	res := r.conn(ctx).
		Where("calculation_id = ? AND id = ?", calculationID, adjustmentID).
		Delete(&SalaryAdjustment{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *repository) AppendAuditLogs(ctx context.Context, logs []SalaryAuditLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.conn(ctx).Create(&logs).Error
}

func (r *repository) UpdateStatement(ctx context.Context, companyID string, id string, pdf []byte, generatedAt *time.Time) error {
	return r.conn(ctx).
		Model(&SalaryCalculation{}).
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", id).
		Updates(map[string]any{
			"statement_pdf":          pdf,
			"statement_generated_at": generatedAt,
		}).Error
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

func (r *repository) FindTeacherName(ctx context.Context, companyID string, teacherID string) (string, error) {
	var name string
	err := r.conn(ctx).
		Table("teachers").
		Select("full_name").
		Where("id = ?", teacherID).
		Scopes(tenant.Scope(companyID)).
		Scan(&name).Error
	return name, err
}

func (r *repository) HasOverlappingPeriod(
	ctx context.Context,
	companyID string,
	teacherID string,
	periodStart time.Time,
	periodEnd time.Time,
	excludeID *string,
) (bool, error) {
	db := r.conn(ctx).
		Model(&SalaryCalculation{}).
		Scopes(tenant.Scope(companyID)).
		Where("teacher_id = ?", teacherID).
		Where("NOT (period_end < ? OR period_start > ?)", periodStart, periodEnd)

	if excludeID != nil && *excludeID != "" {
		db = db.Where("id <> ?", *excludeID)
	}

	var count int64
	err := db.Count(&count).Error
	return count > 0, err
}

type lessonFactRow struct {
	ClassID        uuid.UUID
	ClassName      string
	ActiveStudents int
	LessonDate     time.Time
	StudentCount   *int
}

func (r *repository) FindLessonFacts(
	ctx context.Context,
	companyID string,
	teacherID string,
	periodStart time.Time,
	periodEnd time.Time,
) ([]ClassFacts, error) {
	var rows []lessonFactRow
	err := r.conn(ctx).Raw(`
		SELECT c.id AS class_id,
		       c.name AS class_name,
		       (SELECT COUNT(*) FROM class_enrollments e
		         WHERE e.class_id = c.id AND e.status = 'active') AS active_students,
		       l.lesson_date,
		       l.student_count
		FROM class_lessons l
		JOIN classes c ON c.id = l.class_id
		WHERE l.company_id = ?
		  AND l.teacher_id = ?
		  AND l.status = 'conducted'
		  AND l.lesson_date BETWEEN ? AND ?
		  AND c.deleted_at IS NULL
		ORDER BY c.name, c.id, l.lesson_date
	`, companyID, teacherID, periodStart, periodEnd).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return groupLessonRows(rows), nil
}

type rateRuleRow struct {
	ID            uuid.UUID
	MinStudents   int
	RatePerLesson decimal.Decimal
	EffectiveFrom time.Time
}

func (r *repository) FindRateRules(ctx context.Context, companyID string, teacherID string, asOf time.Time) ([]RateRule, error) {
	var rows []rateRuleRow
	err := r.conn(ctx).
		Table("teacher_rate_rules").
		Select("id, min_students, rate_per_lesson, effective_from").
		Scopes(tenant.Scope(companyID)).
		Where("teacher_id = ?", teacherID).
		Where("effective_from <= ?", asOf).
		Where("deleted_at IS NULL").
		Order("min_students, effective_from").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	rules := make([]RateRule, len(rows))
	for i, row := range rows {
		rules[i] = RateRule(row)
	}
	return rules, nil
}

func groupLessonRows(rows []lessonFactRow) []ClassFacts {
	out := make([]ClassFacts, 0)
	index := map[uuid.UUID]int{}
	for _, row := range rows {
		i, ok := index[row.ClassID]
		if !ok {
			out = append(out, ClassFacts{
				ClassID:        row.ClassID,
				ClassName:      row.ClassName,
				ActiveStudents: row.ActiveStudents,
			})
			i = len(out) - 1
			index[row.ClassID] = i
		}
		out[i].Lessons = append(out[i].Lessons, LessonFact{
			LessonDate:   row.LessonDate,
			StudentCount: row.StudentCount,
		})
	}
	return out
}

func withChildren(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Adjustments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("AuditLogs", func(db *gorm.DB) *gorm.DB {
			return db.Order("sequence ASC")
		})
}

func filterScope(filter CalculationQueryFilter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			db = db.Where("status = ?", filter.Status)
		}
		if filter.PeriodFrom != nil {
			db = db.Where("period_end >= ?", *filter.PeriodFrom)
		}
		if filter.PeriodTo != nil {
			db = db.Where("period_start <= ?", *filter.PeriodTo)
		}
		return db
	}
}
