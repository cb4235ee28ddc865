package teacher

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

type Teacher struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID                   `gorm:"type:uuid;not null;index;uniqueIndex:uq_teacher_number;uniqueIndex:uq_teacher_email"`
	TeacherNumber string                      `gorm:"size:32;not null;uniqueIndex:uq_teacher_number"`
	FullName      string                      `gorm:"size:255;not null"`
	Email         string                      `gorm:"size:255;not null;uniqueIndex:uq_teacher_email"`
	Phone         string                      `gorm:"size:32"`
	Subjects      datatypes.JSONSlice[string] `gorm:"type:jsonb"`
	HireDate      time.Time                   `gorm:"type:date"`
	Status        string                      `gorm:"size:16;not null;default:active"`
	CreatedAt     time.Time                   `gorm:"autoCreateTime"`
	UpdatedAt     time.Time                   `gorm:"autoUpdateTime"`
	DeletedAt     gorm.DeletedAt              `gorm:"index"`
}
