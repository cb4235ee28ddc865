package salarycalcerrors

import (
	"net/http"

	"go-tutorcenter/internal/shared/apperror"
)

// Input errors.
var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidTeacherID = apperror.NewField(
		apperror.CodeInvalidInput,
		"teacher_id",
		"invalid teacher id",
		http.StatusBadRequest,
	)
	ErrInvalidCalculationID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid salary calculation id",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid adjustment id",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.NewField(
		apperror.CodeInvalidInput,
		"period_end",
		"period_start must be before or equal period_end",
		http.StatusBadRequest,
	)
	ErrInvalidAcademicPeriod = apperror.NewField(
		apperror.CodeInvalidInput,
		"academic_period",
		"academic_period is required and must be at most 40 characters",
		http.StatusBadRequest,
	)
	ErrInvalidBaseSalary = apperror.NewField(
		apperror.CodeInvalidInput,
		"base_salary_amount",
		"base_salary_amount must be a non-negative amount with at most 2 decimals",
		http.StatusBadRequest,
	)
	ErrInvalidApprovedAmount = apperror.NewField(
		apperror.CodeInvalidInput,
		"approved_amount",
		"approved_amount must be a non-negative amount with at most 2 decimals",
		http.StatusBadRequest,
	)
	ErrApprovalReasonRequired = apperror.NewField(
		apperror.CodeInvalidInput,
		"adjustment_reason",
		"adjustment_reason of at least 10 characters is required when approved amount differs from calculated amount",
		http.StatusBadRequest,
	)
	ErrReopenReasonRequired = apperror.NewField(
		apperror.CodeInvalidInput,
		"reason",
		"reason is required to reopen a calculation",
		http.StatusBadRequest,
	)
	ErrReasonTooLong = apperror.NewField(
		apperror.CodeInvalidInput,
		"reason",
		"reason must be at most 500 characters",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentType = apperror.NewField(
		apperror.CodeInvalidInput,
		"adjustment_type",
		"adjustment_type must be addition or deduction",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentDescription = apperror.NewField(
		apperror.CodeInvalidInput,
		"description",
		"description must be between 3 and 200 characters",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustmentAmount = apperror.NewField(
		apperror.CodeInvalidInput,
		"amount",
		"amount must be greater than 0 and at most 999999.99 with at most 2 decimals",
		http.StatusBadRequest,
	)
	ErrUnknownAuditAction = apperror.New(
		apperror.CodeInvalidInput,
		"unknown salary audit action",
		http.StatusBadRequest,
	)
	ErrInvalidStatusFilter = apperror.NewField(
		apperror.CodeInvalidInput,
		"status",
		"invalid salary calculation status filter",
		http.StatusBadRequest,
	)
	ErrTeacherNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"teacher does not belong to this company",
		http.StatusBadRequest,
	)
)

// State errors.
var (
	ErrApproveNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"calculation can only be approved while pending or reopened",
		http.StatusBadRequest,
	)
	ErrReopenNotApproved = apperror.New(
		apperror.CodeInvalidState,
		"Cannot reopen a calculation that is not approved",
		http.StatusBadRequest,
	)
	ErrRecalculateNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"calculation can only be recalculated while pending or reopened",
		http.StatusBadRequest,
	)
	ErrAdjustmentNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"adjustments cannot be changed on an approved calculation",
		http.StatusBadRequest,
	)
	ErrBaseSalaryNotAllowed = apperror.New(
		apperror.CodeInvalidState,
		"base salary cannot be changed on an approved calculation",
		http.StatusBadRequest,
	)
)

// Lookup and conflict errors.
var (
	ErrCalculationNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary calculation not found",
		http.StatusNotFound,
	)
	ErrAdjustmentNotFound = apperror.New(
		apperror.CodeNotFound,
		"salary adjustment not found",
		http.StatusNotFound,
	)
	ErrCalculationOverlap = apperror.New(
		apperror.CodeConflict,
		"salary calculation already exists in overlapping period",
		http.StatusConflict,
	)
)
