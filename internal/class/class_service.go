package class

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	classerrors "go-tutorcenter/internal/class/errors"
	"go-tutorcenter/internal/schedule"
	"go-tutorcenter/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type Service interface {
	Create(ctx context.Context, companyID string, req CreateClassRequest) (ClassResponse, error)
	GetAll(ctx context.Context, companyID, teacherID string) ([]ClassResponse, error)
	GetByID(ctx context.Context, companyID, id string) (ClassResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateClassRequest) (ClassResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	CheckConflicts(ctx context.Context, req CheckConflictsRequest) (ConflictsResponse, error)
	RecordLesson(ctx context.Context, companyID, actorID, classID string, req RecordLessonRequest) (LessonResponse, error)
	Enroll(ctx context.Context, companyID, classID string, req EnrollStudentRequest) (EnrollmentResponse, error)
	Unenroll(ctx context.Context, companyID, classID, studentID string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("class.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("class.service")
	}
	return &service{
		db:     db,
		repo:   repo,
		logger: l,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func toSlots(reqs []ScheduleSlotRequest) ([]schedule.Slot, error) {
	slots := make([]schedule.Slot, 0, len(reqs))
	for _, r := range reqs {
		if r.DayOfWeek == nil {
			return nil, schedule.ErrInvalidSlot
		}
		slot := schedule.Slot{DayOfWeek: *r.DayOfWeek, StartTime: r.StartTime, EndTime: r.EndTime}
		if err := slot.Validate(); err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

// conflictWarnings reports overlapping slots. Overlaps never block a save.
func conflictWarnings(slots []schedule.Slot) []string {
	conflicts := schedule.FindConflicts(slots)
	warnings := make([]string, 0, len(conflicts))
	for _, c := range conflicts {
		warnings = append(warnings, schedule.Describe(slots, c))
	}
	return warnings
}

func scheduleRows(classID uuid.UUID, slots []schedule.Slot) []ClassSchedule {
	rows := make([]ClassSchedule, len(slots))
	for i, s := range slots {
		rows[i] = ClassSchedule{
			ID:        uuid.New(),
			ClassID:   classID,
			DayOfWeek: s.DayOfWeek,
			StartTime: s.StartTime,
			EndTime:   s.EndTime,
			Position:  i,
		}
	}
	return rows
}

func (s *service) Create(ctx context.Context, companyID string, req CreateClassRequest) (ClassResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create class requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("teacher_id", req.TeacherID),
	)

	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return ClassResponse{}, classerrors.ErrInvalidTeacherID
	}
	slots, err := toSlots(req.Schedules)
	if err != nil {
		s.logger.Warn("create class invalid schedule", zap.String("request_id", rid), zap.Error(err))
		return ClassResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create class begin tx failed", zap.String("request_id", rid), zap.Error(err))
		return ClassResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.TeacherBelongsToCompany(ctx, companyID, req.TeacherID)
	if err != nil {
		return ClassResponse{}, err
	}
	if !belongs {
		return ClassResponse{}, classerrors.ErrTeacherNotInCompany
	}

	c := &Class{
		ID:        uuid.New(),
		CompanyID: uuid.MustParse(companyID),
		TeacherID: teacherID,
		Name:      strings.TrimSpace(req.Name),
		Subject:   strings.TrimSpace(req.Subject),
		Capacity:  req.Capacity,
	}
	c.Schedules = scheduleRows(c.ID, slots)

	if err := qtx.Create(ctx, c); err != nil {
		s.logger.Error("create class persist failed", zap.Error(err))
		return ClassResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("commit failed", zap.String("request_id", rid), zap.Error(err))
		return ClassResponse{}, err
	}

	resp := mapToResponse(*c)
	resp.Warnings = conflictWarnings(slots)
	if len(resp.Warnings) > 0 {
		s.logger.Info("class saved with schedule conflicts",
			zap.String("class_id", c.ID.String()),
			zap.Strings("warnings", resp.Warnings),
		)
	}
	s.logger.Info("create class success",
		zap.String("request_id", rid),
		zap.String("class_id", c.ID.String()),
	)
	return resp, nil
}

func (s *service) GetAll(ctx context.Context, companyID, teacherID string) ([]ClassResponse, error) {
	if teacherID != "" {
		if _, err := uuid.Parse(teacherID); err != nil {
			return nil, classerrors.ErrInvalidTeacherID
		}
	}
	classes, err := s.repo.FindAllByCompany(ctx, companyID, teacherID)
	if err != nil {
		s.logger.Error("get all classes failed", zap.String("company_id", companyID), zap.Error(err))
		return nil, err
	}
	return mapToListResponse(classes), nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (ClassResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return ClassResponse{}, classerrors.ErrInvalidClassID
	}
	c, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}
	resp := mapToResponse(*c)
	resp.Warnings = conflictWarnings(slotsOf(*c))
	return resp, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateClassRequest) (ClassResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(id); err != nil {
		return ClassResponse{}, classerrors.ErrInvalidClassID
	}
	teacherID, err := uuid.Parse(req.TeacherID)
	if err != nil {
		return ClassResponse{}, classerrors.ErrInvalidTeacherID
	}
	slots, err := toSlots(req.Schedules)
	if err != nil {
		return ClassResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ClassResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}

	if teacherID != c.TeacherID {
		belongs, err := qtx.TeacherBelongsToCompany(ctx, companyID, req.TeacherID)
		if err != nil {
			return ClassResponse{}, err
		}
		if !belongs {
			return ClassResponse{}, classerrors.ErrTeacherNotInCompany
		}
	}

	c.TeacherID = teacherID
	c.Name = strings.TrimSpace(req.Name)
	c.Subject = strings.TrimSpace(req.Subject)
	c.Capacity = req.Capacity
	c.Schedules = scheduleRows(c.ID, slots)

	if err := qtx.Update(ctx, c); err != nil {
		return ClassResponse{}, mapRepositoryError(err)
	}
	if err := qtx.ReplaceSchedules(ctx, c.ID, c.Schedules); err != nil {
		s.logger.Error("update class schedules failed", zap.String("class_id", id), zap.Error(err))
		return ClassResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return ClassResponse{}, err
	}

	resp := mapToResponse(*c)
	resp.Warnings = conflictWarnings(slots)
	s.logger.Info("update class success",
		zap.String("request_id", rid),
		zap.String("class_id", id),
		zap.Int("schedule_conflicts", len(resp.Warnings)),
	)
	return resp, nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return classerrors.ErrInvalidClassID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := s.repo.WithTx(tx).Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) CheckConflicts(_ context.Context, req CheckConflictsRequest) (ConflictsResponse, error) {
	slots, err := toSlots(req.Schedules)
	if err != nil {
		return ConflictsResponse{}, err
	}
	return ConflictsResponse{
		Conflicts: schedule.FindConflicts(slots),
		Warnings:  conflictWarnings(slots),
	}, nil
}

func (s *service) RecordLesson(
	ctx context.Context,
	companyID, actorID, classID string,
	req RecordLessonRequest,
) (LessonResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	if _, err := uuid.Parse(classID); err != nil {
		return LessonResponse{}, classerrors.ErrInvalidClassID
	}
	lessonDate, err := time.Parse(dateLayout, req.LessonDate)
	if err != nil {
		return LessonResponse{}, classerrors.ErrInvalidLessonDate
	}
	status := strings.ToLower(strings.TrimSpace(req.Status))
	switch status {
	case "":
		status = LessonConducted
	case LessonConducted, LessonCancelled:
	default:
		return LessonResponse{}, classerrors.ErrInvalidLessonStatus
	}
	if req.StudentCount != nil && *req.StudentCount < 0 {
		return LessonResponse{}, classerrors.ErrInvalidStudentCount
	}
	startTime := strings.TrimSpace(req.StartTime)
	if startTime != "" {
		if _, err := schedule.ParseClock(startTime); err != nil {
			return LessonResponse{}, classerrors.ErrInvalidLessonStartTime
		}
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		actorUUID = uuid.Nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return LessonResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndCompany(ctx, companyID, classID)
	if err != nil {
		return LessonResponse{}, mapRepositoryError(err)
	}

	if startTime == "" {
		startTime = defaultLessonStart(c.Schedules, lessonDate.Weekday())
	}

	lesson := &ClassLesson{
		ID:           uuid.New(),
		CompanyID:    c.CompanyID,
		ClassID:      c.ID,
		TeacherID:    c.TeacherID,
		LessonDate:   lessonDate,
		StartTime:    startTime,
		Status:       status,
		StudentCount: req.StudentCount,
		Notes:        strings.TrimSpace(req.Notes),
		CreatedBy:    actorUUID,
	}

	if err := qtx.CreateLesson(ctx, lesson); err != nil {
		mapped := mapRepositoryError(err)
		s.logger.Warn("record lesson failed",
			zap.String("request_id", rid),
			zap.String("class_id", classID),
			zap.Error(mapped),
		)
		return LessonResponse{}, mapped
	}

	if err := tx.Commit(); err != nil {
		return LessonResponse{}, err
	}

	s.logger.Info("lesson recorded",
		zap.String("request_id", rid),
		zap.String("class_id", classID),
		zap.String("lesson_date", req.LessonDate),
		zap.String("start_time", startTime),
		zap.String("status", status),
	)
	return mapToLessonResponse(*lesson), nil
}

func (s *service) Enroll(
	ctx context.Context,
	companyID, classID string,
	req EnrollStudentRequest,
) (EnrollmentResponse, error) {
	if _, err := uuid.Parse(classID); err != nil {
		return EnrollmentResponse{}, classerrors.ErrInvalidClassID
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return EnrollmentResponse{}, classerrors.ErrInvalidStudentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EnrollmentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	c, err := qtx.FindByIDAndCompany(ctx, companyID, classID)
	if err != nil {
		return EnrollmentResponse{}, mapRepositoryError(err)
	}

	enrollment, err := qtx.FindEnrollment(ctx, classID, req.StudentID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return EnrollmentResponse{}, err
	}
	if enrollment != nil && enrollment.Status == EnrollmentActive {
		return EnrollmentResponse{}, classerrors.ErrAlreadyEnrolled
	}

	if c.Capacity > 0 {
		active, err := qtx.CountActiveEnrollments(ctx, classID)
		if err != nil {
			return EnrollmentResponse{}, err
		}
		if active >= int64(c.Capacity) {
			s.logger.Warn("enroll refused, class full",
				zap.String("class_id", classID),
				zap.Int("capacity", c.Capacity),
			)
			return EnrollmentResponse{}, classerrors.ErrClassFull
		}
	}

	now := s.now()
	if enrollment == nil {
		enrollment = &ClassEnrollment{
			ID:        uuid.New(),
			CompanyID: c.CompanyID,
			ClassID:   c.ID,
			StudentID: studentID,
		}
	}
	enrollment.Status = EnrollmentActive
	enrollment.EnrolledAt = now
	enrollment.WithdrawnAt = nil

	if err := qtx.SaveEnrollment(ctx, enrollment); err != nil {
		return EnrollmentResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EnrollmentResponse{}, err
	}

	s.logger.Info("student enrolled",
		zap.String("class_id", classID),
		zap.String("student_id", req.StudentID),
	)
	return mapToEnrollmentResponse(*enrollment), nil
}

func (s *service) Unenroll(ctx context.Context, companyID, classID, studentID string) error {
	if _, err := uuid.Parse(classID); err != nil {
		return classerrors.ErrInvalidClassID
	}
	if _, err := uuid.Parse(studentID); err != nil {
		return classerrors.ErrInvalidStudentID
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, classID); err != nil {
		return mapRepositoryError(err)
	}

	enrollment, err := qtx.FindEnrollment(ctx, classID, studentID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return classerrors.ErrEnrollmentNotFound
	}
	if err != nil {
		return err
	}
	if enrollment.Status != EnrollmentActive {
		return classerrors.ErrEnrollmentNotFound
	}

	now := s.now()
	enrollment.Status = EnrollmentWithdrawn
	enrollment.WithdrawnAt = &now

	if err := qtx.SaveEnrollment(ctx, enrollment); err != nil {
		return err
	}

	return tx.Commit()
}

// defaultLessonStart picks the earliest slot of the weekday, or 00:00 when
// the class has no slot that day.
func defaultLessonStart(slots []ClassSchedule, weekday time.Weekday) string {
	start, best := "00:00", -1
	for _, slot := range slots {
		if slot.DayOfWeek != int(weekday) {
			continue
		}
		minutes, err := schedule.ParseClock(slot.StartTime)
		if err != nil {
			continue
		}
		if best < 0 || minutes < best {
			start, best = slot.StartTime, minutes
		}
	}
	return start
}
