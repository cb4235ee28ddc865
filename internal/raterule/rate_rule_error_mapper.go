package raterule

import (
	"errors"
	"strings"

	rateruleerrors "go-tutorcenter/internal/raterule/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const tierUniqueConstraint = "uq_teacher_rate_rule_tier"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return rateruleerrors.ErrRateRuleNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == tierUniqueConstraint {
			return rateruleerrors.ErrRateRuleAlreadyExists
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, tierUniqueConstraint) {
		return rateruleerrors.ErrRateRuleAlreadyExists
	}

	return err
}
