package classerrors

import (
	"net/http"

	"go-tutorcenter/internal/shared/apperror"
)

var (
	ErrClassNotFound = apperror.New(
		apperror.CodeNotFound,
		"Class not found",
		http.StatusNotFound,
	)
	ErrInvalidClassID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid class ID",
		http.StatusBadRequest,
	)
	ErrInvalidTeacherID = apperror.NewField(
		apperror.CodeInvalidInput,
		"teacher_id",
		"Invalid teacher ID",
		http.StatusBadRequest,
	)
	ErrTeacherNotInCompany = apperror.NewField(
		apperror.CodeNotFound,
		"teacher_id",
		"Teacher not found",
		http.StatusNotFound,
	)
	ErrInvalidLessonDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"lesson_date",
		"lesson_date must use YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidLessonStatus = apperror.NewField(
		apperror.CodeInvalidInput,
		"status",
		"status must be conducted or cancelled",
		http.StatusBadRequest,
	)
	ErrInvalidStudentCount = apperror.NewField(
		apperror.CodeInvalidInput,
		"student_count",
		"student_count must be zero or greater",
		http.StatusBadRequest,
	)
	ErrLessonAlreadyRecorded = apperror.New(
		apperror.CodeConflict,
		"A lesson for this class, date and start time is already recorded",
		http.StatusConflict,
	)
	ErrInvalidLessonStartTime = apperror.NewField(
		apperror.CodeInvalidInput,
		"start_time",
		"start_time must use HH:MM",
		http.StatusBadRequest,
	)

	ErrInvalidStudentID = apperror.NewField(
		apperror.CodeInvalidInput,
		"student_id",
		"Invalid student ID",
		http.StatusBadRequest,
	)
	ErrAlreadyEnrolled = apperror.New(
		apperror.CodeConflict,
		"Student is already enrolled in this class",
		http.StatusConflict,
	)
	ErrClassFull = apperror.New(
		apperror.CodeInvalidState,
		"Class has reached its capacity",
		http.StatusConflict,
	)
	ErrEnrollmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"Enrollment not found",
		http.StatusNotFound,
	)
)
