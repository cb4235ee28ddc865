package class

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	LessonConducted = "conducted"
	LessonCancelled = "cancelled"

	EnrollmentActive    = "active"
	EnrollmentWithdrawn = "withdrawn"
)

type Class struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TeacherID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name      string          `gorm:"size:255;not null"`
	Subject   string          `gorm:"size:120"`
	Capacity  int             `gorm:"not null;default:0"`
	Schedules []ClassSchedule `gorm:"foreignKey:ClassID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time       `gorm:"autoCreateTime"`
	UpdatedAt time.Time       `gorm:"autoUpdateTime"`
	DeletedAt gorm.DeletedAt  `gorm:"index"`
}

type ClassSchedule struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClassID   uuid.UUID `gorm:"type:uuid;not null;index"`
	DayOfWeek int       `gorm:"not null"`
	StartTime string    `gorm:"size:5;not null"`
	EndTime   string    `gorm:"size:5;not null"`
	Position  int       `gorm:"not null"`
}

// ClassLesson is the fact the salary engine prices. StudentCount is nil on
// rows recorded before attendance counts were captured.
type ClassLesson struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index:idx_class_lessons_teacher_date,priority:1"`
	ClassID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_lesson_slot,priority:1"`
	TeacherID    uuid.UUID `gorm:"type:uuid;not null;index:idx_class_lessons_teacher_date,priority:2"`
	LessonDate   time.Time `gorm:"type:date;not null;uniqueIndex:uq_class_lesson_slot,priority:2;index:idx_class_lessons_teacher_date,priority:3"`
	// HH:MM; a class meeting twice a day records one lesson per start time.
	StartTime    string    `gorm:"size:5;not null;default:'00:00';uniqueIndex:uq_class_lesson_slot,priority:3"`
	Status       string    `gorm:"size:16;not null;default:conducted"`
	StudentCount *int
	Notes        string    `gorm:"size:500"`
	CreatedBy    uuid.UUID `gorm:"type:uuid"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

type ClassEnrollment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	ClassID     uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_enrollment_student"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_enrollment_student"`
	Status      string    `gorm:"size:16;not null;default:active"`
	EnrolledAt  time.Time `gorm:"not null"`
	WithdrawnAt *time.Time
}
