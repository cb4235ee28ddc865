package salarycalc_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-tutorcenter/internal/salarycalc"
	salarycalcerrors "go-tutorcenter/internal/salarycalc/errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

func mustDecodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeCalculationService struct {
	generateFn          func(ctx context.Context, companyID, actorID, teacherID string, req salarycalc.GenerateCalculationRequest) (salarycalc.CalculationDetailResponse, error)
	getAllFn            func(ctx context.Context, companyID, teacherID string, filter salarycalc.ListCalculationsFilter) ([]salarycalc.CalculationSummaryResponse, error)
	getByIDFn           func(ctx context.Context, companyID, teacherID, id string) (salarycalc.CalculationDetailResponse, error)
	getAuditLogsFn      func(ctx context.Context, companyID, teacherID, id string) ([]salarycalc.AuditLogResponse, error)
	approveFn           func(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.ApproveCalculationRequest) (salarycalc.CalculationDetailResponse, error)
	reopenFn            func(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.ReopenCalculationRequest) (salarycalc.CalculationDetailResponse, error)
	recalculateFn       func(ctx context.Context, companyID, actorID, teacherID, id string) (salarycalc.CalculationDetailResponse, error)
	updateBaseSalaryFn  func(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.UpdateBaseSalaryRequest) (salarycalc.CalculationDetailResponse, error)
	addAdjustmentFn     func(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.AddAdjustmentRequest) (salarycalc.CalculationDetailResponse, error)
	removeAdjustmentFn  func(ctx context.Context, companyID, actorID, teacherID, id, adjustmentID string) (salarycalc.CalculationDetailResponse, error)
	getStatementFn      func(ctx context.Context, companyID, teacherID, id string) (salarycalc.Statement, error)
	generateStatementFn func(ctx context.Context, companyID, id string) error
	clearStatementFn    func(ctx context.Context, companyID, id string) error
	exportFn            func(ctx context.Context, companyID string, filter salarycalc.ExportCalculationsFilter) ([]byte, error)
}

func (f *fakeCalculationService) Generate(ctx context.Context, companyID, actorID, teacherID string, req salarycalc.GenerateCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
	return f.generateFn(ctx, companyID, actorID, teacherID, req)
}

func (f *fakeCalculationService) GetAll(ctx context.Context, companyID, teacherID string, filter salarycalc.ListCalculationsFilter) ([]salarycalc.CalculationSummaryResponse, error) {
	return f.getAllFn(ctx, companyID, teacherID, filter)
}

func (f *fakeCalculationService) GetByID(ctx context.Context, companyID, teacherID, id string) (salarycalc.CalculationDetailResponse, error) {
	return f.getByIDFn(ctx, companyID, teacherID, id)
}

func (f *fakeCalculationService) GetAuditLogs(ctx context.Context, companyID, teacherID, id string) ([]salarycalc.AuditLogResponse, error) {
	return f.getAuditLogsFn(ctx, companyID, teacherID, id)
}

func (f *fakeCalculationService) Approve(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.ApproveCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
	return f.approveFn(ctx, companyID, actorID, teacherID, id, req)
}

func (f *fakeCalculationService) Reopen(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.ReopenCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
	return f.reopenFn(ctx, companyID, actorID, teacherID, id, req)
}

func (f *fakeCalculationService) Recalculate(ctx context.Context, companyID, actorID, teacherID, id string) (salarycalc.CalculationDetailResponse, error) {
	return f.recalculateFn(ctx, companyID, actorID, teacherID, id)
}

func (f *fakeCalculationService) UpdateBaseSalary(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.UpdateBaseSalaryRequest) (salarycalc.CalculationDetailResponse, error) {
	return f.updateBaseSalaryFn(ctx, companyID, actorID, teacherID, id, req)
}

func (f *fakeCalculationService) AddAdjustment(ctx context.Context, companyID, actorID, teacherID, id string, req salarycalc.AddAdjustmentRequest) (salarycalc.CalculationDetailResponse, error) {
	return f.addAdjustmentFn(ctx, companyID, actorID, teacherID, id, req)
}

func (f *fakeCalculationService) RemoveAdjustment(ctx context.Context, companyID, actorID, teacherID, id, adjustmentID string) (salarycalc.CalculationDetailResponse, error) {
	return f.removeAdjustmentFn(ctx, companyID, actorID, teacherID, id, adjustmentID)
}

func (f *fakeCalculationService) GetStatement(ctx context.Context, companyID, teacherID, id string) (salarycalc.Statement, error) {
	return f.getStatementFn(ctx, companyID, teacherID, id)
}

func (f *fakeCalculationService) GenerateStatement(ctx context.Context, companyID, id string) error {
	return f.generateStatementFn(ctx, companyID, id)
}

func (f *fakeCalculationService) ClearStatement(ctx context.Context, companyID, id string) error {
	return f.clearStatementFn(ctx, companyID, id)
}

func (f *fakeCalculationService) Export(ctx context.Context, companyID string, filter salarycalc.ExportCalculationsFilter) ([]byte, error) {
	return f.exportFn(ctx, companyID, filter)
}

func newHandlerContext(method, target, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func TestCalculationHandler_Generate(t *testing.T) {
	companyID := uuid.New().String()
	actorID := uuid.New().String()
	teacherID := uuid.New().String()

	svc := &fakeCalculationService{
		generateFn: func(ctx context.Context, cid, aid, tid string, req salarycalc.GenerateCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
			assert.Equal(t, companyID, cid)
			assert.Equal(t, actorID, aid)
			assert.Equal(t, teacherID, tid)
			assert.Equal(t, "2026-01-01", req.PeriodStart)
			require.NotNil(t, req.BaseSalaryAmount)
			assert.Equal(t, "250.00", req.BaseSalaryAmount.StringFixed(2))
			resp := salarycalc.CalculationDetailResponse{}
			resp.ReferenceNumber = "SC-000001"
			resp.Status = salarycalc.StatusPending
			return resp, nil
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodPost, "/teachers/"+teacherID+"/salary-calculations",
		`{"period_start":"2026-01-01","period_end":"2026-01-15","academic_period":"2026-T1","base_salary_amount":"250"}`)
	c.Params = gin.Params{{Key: "teacherId", Value: teacherID}}
	c.Set("company_id", companyID)
	c.Set("user_id", actorID)

	h.Generate(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.True(t, env.Ok)
	var data salarycalc.CalculationDetailResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "SC-000001", data.ReferenceNumber)
}

func TestCalculationHandler_Generate_MissingField(t *testing.T) {
	svc := &fakeCalculationService{
		generateFn: func(ctx context.Context, cid, aid, tid string, req salarycalc.GenerateCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
			t.Fatal("service must not be called")
			return salarycalc.CalculationDetailResponse{}, nil
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodPost, "/teachers/x/salary-calculations", `{"period_start":"2026-01-01"}`)

	h.Generate(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.False(t, env.Ok)
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestCalculationHandler_Approve_InvalidState(t *testing.T) {
	svc := &fakeCalculationService{
		approveFn: func(ctx context.Context, cid, aid, tid, id string, req salarycalc.ApproveCalculationRequest) (salarycalc.CalculationDetailResponse, error) {
			assert.Equal(t, "4800.00", req.ApprovedAmount.StringFixed(2))
			return salarycalc.CalculationDetailResponse{}, salarycalcerrors.ErrApproveNotAllowed
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodPatch, "/approve", `{"approved_amount":4800}`)
	c.Set("user_id_validated", uuid.New().String())

	h.Approve(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestCalculationHandler_Reopen_RequiresReason(t *testing.T) {
	svc := &fakeCalculationService{}
	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodPatch, "/reopen", `{}`)

	h.Reopen(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	assert.Equal(t, "INVALID_INPUT", env.Error.Code)
}

func TestCalculationHandler_AddAdjustment(t *testing.T) {
	calcID := uuid.New().String()

	t.Run("created", func(t *testing.T) {
		svc := &fakeCalculationService{
			addAdjustmentFn: func(ctx context.Context, cid, aid, tid, id string, req salarycalc.AddAdjustmentRequest) (salarycalc.CalculationDetailResponse, error) {
				assert.Equal(t, calcID, id)
				assert.Equal(t, salarycalc.AdjustmentDeduction, req.AdjustmentType)
				resp := salarycalc.CalculationDetailResponse{}
				resp.CalculatedAmount = "4800.00"
				return resp, nil
			},
		}

		h := salarycalc.NewHandler(svc)
		w, c := newHandlerContext(http.MethodPost, "/adjustments",
			`{"adjustment_type":"deduction","description":"late fee","amount":"200"}`)
		c.Params = gin.Params{{Key: "calcId", Value: calcID}}

		h.AddAdjustment(c)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown type", func(t *testing.T) {
		h := salarycalc.NewHandler(&fakeCalculationService{})
		w, c := newHandlerContext(http.MethodPost, "/adjustments",
			`{"adjustment_type":"bonus","description":"late fee","amount":"200"}`)

		h.AddAdjustment(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestCalculationHandler_RemoveAdjustment_NotFound(t *testing.T) {
	svc := &fakeCalculationService{
		removeAdjustmentFn: func(ctx context.Context, cid, aid, tid, id, adjID string) (salarycalc.CalculationDetailResponse, error) {
			return salarycalc.CalculationDetailResponse{}, salarycalcerrors.ErrAdjustmentNotFound
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodDelete, "/adjustments/x", "")

	h.RemoveAdjustment(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCalculationHandler_GetAll_Paginates(t *testing.T) {
	svc := &fakeCalculationService{
		getAllFn: func(ctx context.Context, cid, tid string, filter salarycalc.ListCalculationsFilter) ([]salarycalc.CalculationSummaryResponse, error) {
			assert.Equal(t, salarycalc.StatusApproved, filter.Status)
			out := make([]salarycalc.CalculationSummaryResponse, 3)
			for i := range out {
				out[i].ID = uuid.New().String()
			}
			return out, nil
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodGet, "/salary-calculations?status=approved&page=2&page_size=2", "")

	h.GetAll(c)

	assert.Equal(t, http.StatusOK, w.Code)
	env := mustDecodeEnvelope(t, w.Body.Bytes())
	var data []salarycalc.CalculationSummaryResponse
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Len(t, data, 1)
}

func TestCalculationHandler_DownloadStatement(t *testing.T) {
	svc := &fakeCalculationService{
		getStatementFn: func(ctx context.Context, cid, tid, id string) (salarycalc.Statement, error) {
			return salarycalc.Statement{Filename: "salary-statement-SC-000001.pdf", Data: []byte("%PDF-1.4")}, nil
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodGet, "/statement", "")

	h.DownloadStatement(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "salary-statement-SC-000001.pdf")
	assert.Equal(t, "%PDF-1.4", w.Body.String())
}

func TestCalculationHandler_Export_BadFilter(t *testing.T) {
	svc := &fakeCalculationService{
		exportFn: func(ctx context.Context, cid string, filter salarycalc.ExportCalculationsFilter) ([]byte, error) {
			assert.Equal(t, "paid", filter.Status)
			return nil, salarycalcerrors.ErrInvalidStatusFilter
		},
	}

	h := salarycalc.NewHandler(svc)
	w, c := newHandlerContext(http.MethodGet, "/salary-calculations/export?status=paid", "")

	h.Export(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
