package class

import "go-tutorcenter/internal/schedule"

type ScheduleSlotRequest struct {
	DayOfWeek *int   `json:"day_of_week" binding:"required,min=0,max=6"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type CreateClassRequest struct {
	TeacherID string                `json:"teacher_id" binding:"required,uuid"`
	Name      string                `json:"name" binding:"required"`
	Subject   string                `json:"subject"`
	Capacity  int                   `json:"capacity" binding:"min=0"`
	Schedules []ScheduleSlotRequest `json:"schedules" binding:"dive"`
}

type UpdateClassRequest struct {
	TeacherID string                `json:"teacher_id" binding:"required,uuid"`
	Name      string                `json:"name" binding:"required"`
	Subject   string                `json:"subject"`
	Capacity  int                   `json:"capacity" binding:"min=0"`
	Schedules []ScheduleSlotRequest `json:"schedules" binding:"dive"`
}

type CheckConflictsRequest struct {
	Schedules []ScheduleSlotRequest `json:"schedules" binding:"required,dive"`
}

type RecordLessonRequest struct {
	LessonDate   string `json:"lesson_date" binding:"required"`
	StartTime    string `json:"start_time"`
	Status       string `json:"status"`
	StudentCount *int   `json:"student_count"`
	Notes        string `json:"notes" binding:"max=500"`
}

type EnrollStudentRequest struct {
	StudentID string `json:"student_id" binding:"required,uuid"`
}

type ScheduleSlotResponse struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type ClassResponse struct {
	ID        string                 `json:"id"`
	CompanyID string                 `json:"company_id"`
	TeacherID string                 `json:"teacher_id"`
	Name      string                 `json:"name"`
	Subject   string                 `json:"subject"`
	Capacity  int                    `json:"capacity"`
	Schedules []ScheduleSlotResponse `json:"schedules"`
	Warnings  []string               `json:"warnings,omitempty"`
	CreatedAt string                 `json:"created_at"`
	UpdatedAt string                 `json:"updated_at"`
}

type ConflictsResponse struct {
	Conflicts []schedule.Conflict `json:"conflicts"`
	Warnings  []string            `json:"warnings"`
}

type LessonResponse struct {
	ID           string `json:"id"`
	ClassID      string `json:"class_id"`
	TeacherID    string `json:"teacher_id"`
	LessonDate   string `json:"lesson_date"`
	StartTime    string `json:"start_time"`
	Status       string `json:"status"`
	StudentCount *int   `json:"student_count"`
	Notes        string `json:"notes,omitempty"`
}

type EnrollmentResponse struct {
	ID         string `json:"id"`
	ClassID    string `json:"class_id"`
	StudentID  string `json:"student_id"`
	Status     string `json:"status"`
	EnrolledAt string `json:"enrolled_at"`
}
