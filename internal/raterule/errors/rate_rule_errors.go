package rateruleerrors

import (
	"net/http"

	"go-tutorcenter/internal/shared/apperror"
)

var (
	ErrInvalidTeacherID = apperror.NewField(
		apperror.CodeInvalidInput,
		"teacher_id",
		"invalid teacher id",
		http.StatusBadRequest,
	)

	ErrInvalidRateRuleID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid rate rule id",
		http.StatusBadRequest,
	)

	ErrInvalidMinStudents = apperror.NewField(
		apperror.CodeInvalidInput,
		"min_students",
		"min students must be zero or greater",
		http.StatusBadRequest,
	)

	ErrInvalidRatePerLesson = apperror.NewField(
		apperror.CodeInvalidInput,
		"rate_per_lesson",
		"rate per lesson must be greater than zero with at most 2 decimals",
		http.StatusBadRequest,
	)

	ErrInvalidEffectiveFrom = apperror.NewField(
		apperror.CodeInvalidInput,
		"effective_from",
		"effective from must use YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrTeacherNotInCompany = apperror.NewField(
		apperror.CodeNotFound,
		"teacher_id",
		"teacher not found",
		http.StatusNotFound,
	)

	ErrRateRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"rate rule not found",
		http.StatusNotFound,
	)

	ErrRateRuleAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"rate rule for this tier and effective date already exists",
		http.StatusConflict,
	)
)
