package teachererrors

import (
	"net/http"

	"go-tutorcenter/internal/shared/apperror"
)

var (
	ErrTeacherNotFound = apperror.New(
		apperror.CodeNotFound,
		"Teacher not found",
		http.StatusNotFound,
	)
	ErrTeacherEmailAlreadyExists = apperror.NewField(
		apperror.CodeConflict,
		"email",
		"Teacher with the same email already exists",
		http.StatusConflict,
	)
	ErrTeacherNumberAlreadyExists = apperror.NewField(
		apperror.CodeConflict,
		"teacher_number",
		"Teacher number already exists in this company",
		http.StatusConflict,
	)
	ErrInvalidTeacherID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid teacher ID",
		http.StatusBadRequest,
	)
	ErrInvalidHireDate = apperror.NewField(
		apperror.CodeInvalidInput,
		"hire_date",
		"Invalid hire_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.NewField(
		apperror.CodeInvalidInput,
		"status",
		"Status must be active or inactive",
		http.StatusBadRequest,
	)
)
