package raterule

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// TeacherRateRule is one effective-dated tier. Rules are never updated in
// place; a new rate is a new row.
type TeacherRateRule struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	TeacherID     uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_teacher_rate_rule_tier,where:deleted_at IS NULL"`
	MinStudents   int             `gorm:"not null;default:0;uniqueIndex:uq_teacher_rate_rule_tier,where:deleted_at IS NULL"`
	RatePerLesson decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	EffectiveFrom time.Time       `gorm:"type:date;not null;uniqueIndex:uq_teacher_rate_rule_tier,where:deleted_at IS NULL"`
	CreatedBy     uuid.UUID       `gorm:"type:uuid;not null"`
	CreatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}
