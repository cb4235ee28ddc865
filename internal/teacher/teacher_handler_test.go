package teacher_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-tutorcenter/internal/teacher"
	teachererrors "go-tutorcenter/internal/teacher/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *struct {
		Code string `json:"code"`
	} `json:"error"`
}

type fakeTeacherService struct {
	teacher.Service
	getAllFn  func(ctx context.Context, companyID string) ([]teacher.TeacherResponse, error)
	createFn  func(ctx context.Context, companyID string, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error)
	getByIDFn func(ctx context.Context, companyID, id string) (teacher.TeacherResponse, error)
}

func (f *fakeTeacherService) GetAll(ctx context.Context, companyID string) ([]teacher.TeacherResponse, error) {
	return f.getAllFn(ctx, companyID)
}

func (f *fakeTeacherService) Create(ctx context.Context, companyID string, req teacher.CreateTeacherRequest) (teacher.TeacherResponse, error) {
	return f.createFn(ctx, companyID, req)
}

func (f *fakeTeacherService) GetByID(ctx context.Context, companyID, id string) (teacher.TeacherResponse, error) {
	return f.getByIDFn(ctx, companyID, id)
}

func newTeacherContext(method, target, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestTeacherHandler_GetAll_FilterSortPaginate(t *testing.T) {
	svc := &fakeTeacherService{
		getAllFn: func(ctx context.Context, companyID string) ([]teacher.TeacherResponse, error) {
			return []teacher.TeacherResponse{
				{ID: "1", FullName: "Citra", Email: "citra@example.com", Status: "active"},
				{ID: "2", FullName: "Andi", Email: "andi@example.com", Status: "active"},
				{ID: "3", FullName: "Bayu", Email: "bayu@example.com", Status: "inactive"},
				{ID: "4", FullName: "Dewi", Email: "dewi@other.org", Status: "active"},
			}, nil
		},
	}

	h := teacher.NewHandler(svc)
	w, c := newTeacherContext(http.MethodGet, "/teachers?q=example.com&status=active&sort_by=name&page=1&page_size=1", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	var data []teacher.TeacherResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data, 1)
	assert.Equal(t, "Andi", data[0].FullName)
	assert.Contains(t, string(env.Meta), `"total":2`)
}

func TestTeacherHandler_Create_InvalidEmail(t *testing.T) {
	svc := &fakeTeacherService{}
	h := teacher.NewHandler(svc)
	w, c := newTeacherContext(http.MethodPost, "/teachers", `{"full_name":"A","email":"nope","hire_date":"2025-01-01"}`)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestTeacherHandler_GetByID_NotFound(t *testing.T) {
	svc := &fakeTeacherService{
		getByIDFn: func(ctx context.Context, companyID, id string) (teacher.TeacherResponse, error) {
			assert.Equal(t, "abc", id)
			return teacher.TeacherResponse{}, teachererrors.ErrTeacherNotFound
		},
	}
	h := teacher.NewHandler(svc)
	w, c := newTeacherContext(http.MethodGet, "/teachers/abc", "")
	c.Params = gin.Params{{Key: "teacherId", Value: "abc"}}

	h.GetByID(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
