package class

import (
	"time"

	"go-tutorcenter/internal/schedule"
)

func slotsOf(c Class) []schedule.Slot {
	slots := make([]schedule.Slot, len(c.Schedules))
	for i, s := range c.Schedules {
		slots[i] = schedule.Slot{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return slots
}

func mapToResponse(c Class) ClassResponse {
	schedules := make([]ScheduleSlotResponse, len(c.Schedules))
	for i, s := range c.Schedules {
		schedules[i] = ScheduleSlotResponse{DayOfWeek: s.DayOfWeek, StartTime: s.StartTime, EndTime: s.EndTime}
	}
	return ClassResponse{
		ID:        c.ID.String(),
		CompanyID: c.CompanyID.String(),
		TeacherID: c.TeacherID.String(),
		Name:      c.Name,
		Subject:   c.Subject,
		Capacity:  c.Capacity,
		Schedules: schedules,
		CreatedAt: c.CreatedAt.Format(time.RFC3339),
		UpdatedAt: c.UpdatedAt.Format(time.RFC3339),
	}
}

func mapToListResponse(classes []Class) []ClassResponse {
	res := make([]ClassResponse, len(classes))
	for i, c := range classes {
		res[i] = mapToResponse(c)
	}
	return res
}

func mapToLessonResponse(l ClassLesson) LessonResponse {
	return LessonResponse{
		ID:           l.ID.String(),
		ClassID:      l.ClassID.String(),
		TeacherID:    l.TeacherID.String(),
		LessonDate:   l.LessonDate.Format(dateLayout),
		StartTime:    l.StartTime,
		Status:       l.Status,
		StudentCount: l.StudentCount,
		Notes:        l.Notes,
	}
}

func mapToEnrollmentResponse(e ClassEnrollment) EnrollmentResponse {
	return EnrollmentResponse{
		ID:         e.ID.String(),
		ClassID:    e.ClassID.String(),
		StudentID:  e.StudentID.String(),
		Status:     e.Status,
		EnrolledAt: e.EnrolledAt.Format(time.RFC3339),
	}
}
