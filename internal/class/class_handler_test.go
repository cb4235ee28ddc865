package class_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-tutorcenter/internal/class"
	classerrors "go-tutorcenter/internal/class/errors"
	"go-tutorcenter/internal/schedule"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type fakeClassService struct {
	class.Service
	checkConflictsFn func(ctx context.Context, req class.CheckConflictsRequest) (class.ConflictsResponse, error)
	recordLessonFn   func(ctx context.Context, companyID, actorID, classID string, req class.RecordLessonRequest) (class.LessonResponse, error)
	unenrollFn       func(ctx context.Context, companyID, classID, studentID string) error
}

func (f *fakeClassService) CheckConflicts(ctx context.Context, req class.CheckConflictsRequest) (class.ConflictsResponse, error) {
	return f.checkConflictsFn(ctx, req)
}

func (f *fakeClassService) RecordLesson(ctx context.Context, companyID, actorID, classID string, req class.RecordLessonRequest) (class.LessonResponse, error) {
	return f.recordLessonFn(ctx, companyID, actorID, classID, req)
}

func (f *fakeClassService) Unenroll(ctx context.Context, companyID, classID, studentID string) error {
	return f.unenrollFn(ctx, companyID, classID, studentID)
}

func newClassContext(method, target, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestClassHandler_CheckConflicts(t *testing.T) {
	svc := &fakeClassService{
		checkConflictsFn: func(ctx context.Context, req class.CheckConflictsRequest) (class.ConflictsResponse, error) {
			require.Len(t, req.Schedules, 2)
			assert.Equal(t, 0, *req.Schedules[0].DayOfWeek)
			return class.ConflictsResponse{Conflicts: []schedule.Conflict{{A: 0, B: 1}}, Warnings: []string{"w"}}, nil
		},
	}

	h := class.NewHandler(svc)
	w, c := newClassContext(http.MethodPost, "/classes/schedule-conflicts", `{"schedules":[
		{"day_of_week":0,"start_time":"09:00","end_time":"10:00"},
		{"day_of_week":0,"start_time":"09:30","end_time":"10:30"}]}`)

	h.CheckConflicts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data class.ConflictsResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, []schedule.Conflict{{A: 0, B: 1}}, data.Conflicts)
}

func TestClassHandler_CheckConflicts_DayOutOfRange(t *testing.T) {
	h := class.NewHandler(&fakeClassService{})
	w, c := newClassContext(http.MethodPost, "/classes/schedule-conflicts",
		`{"schedules":[{"day_of_week":9,"start_time":"09:00","end_time":"10:00"}]}`)

	h.CheckConflicts(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClassHandler_RecordLesson(t *testing.T) {
	svc := &fakeClassService{
		recordLessonFn: func(ctx context.Context, companyID, actorID, classID string, req class.RecordLessonRequest) (class.LessonResponse, error) {
			assert.Equal(t, "c-1", classID)
			assert.Equal(t, "u-1", actorID)
			assert.Nil(t, req.StudentCount)
			return class.LessonResponse{ClassID: classID, LessonDate: req.LessonDate, Status: class.LessonConducted}, nil
		},
	}

	h := class.NewHandler(svc)
	w, c := newClassContext(http.MethodPost, "/classes/c-1/lessons", `{"lesson_date":"2026-01-05"}`)
	c.Params = gin.Params{{Key: "id", Value: "c-1"}}
	c.Set("user_id", "u-1")

	h.RecordLesson(c)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestClassHandler_Unenroll_NotFound(t *testing.T) {
	svc := &fakeClassService{
		unenrollFn: func(ctx context.Context, companyID, classID, studentID string) error {
			assert.Equal(t, "s-1", studentID)
			return classerrors.ErrEnrollmentNotFound
		},
	}

	h := class.NewHandler(svc)
	w, c := newClassContext(http.MethodDelete, "/classes/c-1/enrollments/s-1", "")
	c.Params = gin.Params{{Key: "id", Value: "c-1"}, {Key: "studentId", Value: "s-1"}}

	h.Unenroll(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "NOT_FOUND", env.Error.Code)
}
