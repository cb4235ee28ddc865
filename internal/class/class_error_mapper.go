package class

import (
	"errors"
	"strings"

	classerrors "go-tutorcenter/internal/class/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return classerrors.ErrClassNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_class_lesson_slot":
			return classerrors.ErrLessonAlreadyRecorded
		case "uq_class_enrollment_student":
			return classerrors.ErrAlreadyEnrolled
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_class_lesson_slot") {
		return classerrors.ErrLessonAlreadyRecorded
	}

	return err
}
