package app

import (
	"fmt"

	"go-tutorcenter/internal/auth"
	"go-tutorcenter/internal/class"
	"go-tutorcenter/internal/config"
	"go-tutorcenter/internal/raterule"
	"go-tutorcenter/internal/salarycalc"
	"go-tutorcenter/internal/shared/connection"
	"go-tutorcenter/internal/teacher"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// supportTables are managed as raw SQL; their repositories use hand written queries.
var supportTables = []string{
	`CREATE TABLE IF NOT EXISTS company_counters (
		company_id uuid NOT NULL,
		counter_type varchar(40) NOT NULL,
		last_value bigint NOT NULL DEFAULT 0,
		updated_at timestamptz NOT NULL DEFAULT now(),
		PRIMARY KEY (company_id, counter_type)
	)`,
	`CREATE TABLE IF NOT EXISTS outbox_events (
		id uuid PRIMARY KEY,
		request_id varchar(64),
		aggregate_type varchar(60) NOT NULL,
		aggregate_id varchar(64) NOT NULL,
		event_type varchar(60) NOT NULL,
		topic varchar(120) NOT NULL,
		payload jsonb NOT NULL,
		status varchar(20) NOT NULL DEFAULT 'pending',
		retry_count int NOT NULL DEFAULT 0,
		next_retry_at timestamptz,
		error_message varchar(500),
		processed_at timestamptz,
		created_at timestamptz NOT NULL DEFAULT now(),
		updated_at timestamptz NOT NULL DEFAULT now()
	)`,
	`CREATE INDEX IF NOT EXISTS idx_outbox_events_pending ON outbox_events (status, next_retry_at, created_at)`,
	`CREATE TABLE IF NOT EXISTS roles (
		id uuid PRIMARY KEY,
		company_id uuid NOT NULL,
		name varchar(60) NOT NULL,
		UNIQUE (company_id, name)
	)`,
	`CREATE TABLE IF NOT EXISTS user_roles (
		user_id uuid NOT NULL,
		role_id uuid NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		PRIMARY KEY (user_id, role_id)
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id uuid PRIMARY KEY,
		resource varchar(60) NOT NULL,
		action varchar(60) NOT NULL,
		UNIQUE (resource, action)
	)`,
	`CREATE TABLE IF NOT EXISTS role_permissions (
		role_id uuid NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
		permission_id uuid NOT NULL REFERENCES permissions(id) ON DELETE CASCADE,
		PRIMARY KEY (role_id, permission_id)
	)`,
}

// periodExclusion keeps one calculation per teacher per overlapping period.
var periodExclusion = []string{
	`CREATE EXTENSION IF NOT EXISTS btree_gist`,
	`DO $$
	BEGIN
		IF NOT EXISTS (
			SELECT 1 FROM pg_constraint WHERE conname = 'ex_salary_calculation_teacher_period'
		) THEN
			ALTER TABLE salary_calculations
				ADD CONSTRAINT ex_salary_calculation_teacher_period
				EXCLUDE USING gist (
					company_id WITH =,
					teacher_id WITH =,
					daterange(period_start, period_end, '[]') WITH &&
				);
		END IF;
	END $$`,
}

// retiredIndexes were replaced by wider keys and are dropped after AutoMigrate.
var retiredIndexes = []string{
	`DROP INDEX IF EXISTS uq_class_lesson_date`,
}

func RunMigrations(cfg config.Config) error {
	logger := zap.L().Named("app.migrate")

	gormDB, err := connection.ConnectGORMWithRetry(cfg.Database, cfg.ConnectRetries)
	if err != nil {
		return err
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if err := migrate(gormDB); err != nil {
		return err
	}

	logger.Info("migrations applied")
	return nil
}

func migrate(db *gorm.DB) error {
	for _, stmt := range supportTables {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("support table: %w", err)
		}
	}

	err := db.AutoMigrate(
		&auth.User{},
		&teacher.Teacher{},
		&raterule.TeacherRateRule{},
		&class.Class{},
		&class.ClassSchedule{},
		&class.ClassLesson{},
		&class.ClassEnrollment{},
		&salarycalc.SalaryCalculation{},
		&salarycalc.SalaryCalculationItem{},
		&salarycalc.SalaryAdjustment{},
		&salarycalc.SalaryAuditLog{},
	)
	if err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	for _, stmt := range retiredIndexes {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("retired index: %w", err)
		}
	}

	for _, stmt := range periodExclusion {
		if err := db.Exec(stmt).Error; err != nil {
			return fmt.Errorf("period exclusion: %w", err)
		}
	}
	return nil
}
