package salarycalc

import (
	"errors"
	"strings"

	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const periodExclusionConstraint = "ex_salary_calculation_teacher_period"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return salarycalcerrors.ErrCalculationNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23P01" && pgErr.ConstraintName == periodExclusionConstraint {
			return salarycalcerrors.ErrCalculationOverlap
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "conflicting key value") && strings.Contains(errMsg, periodExclusionConstraint) {
		return salarycalcerrors.ErrCalculationOverlap
	}

	return err
}
