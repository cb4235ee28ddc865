package rbac_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-tutorcenter/internal/domain"
	"go-tutorcenter/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct{}

func (f *fakeService) LoadCompanyPolicy(companyID string) error {
	return nil
}

func (f *fakeService) Enforce(req domain.EnforceRequest) (bool, error) {
	return req.Resource == "salary" && req.Action == "read", nil
}

type enforceEnvelope struct {
	Ok   bool                   `json:"ok"`
	Data domain.EnforceResponse `json:"data"`
}

func newRouter(companyID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := rbac.NewHandler(&fakeService{})

	router := gin.New()
	router.POST("/rbac/enforce", func(c *gin.Context) {
		if companyID != "" {
			c.Set("company_id", companyID)
		}
		c.Next()
	}, handler.Enforce)
	return router
}

func doEnforce(router *gin.Engine, body any) *httptest.ResponseRecorder {
	jsonBody, _ := json.Marshal(body)
	req, _ := http.NewRequest(http.MethodPost, "/rbac/enforce", bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestHandler_Enforce(t *testing.T) {
	t.Run("allowed", func(t *testing.T) {
		w := doEnforce(newRouter("company-1"), domain.EnforceRequest{
			UserID:    "user-1",
			CompanyID: "company-1",
			Resource:  "salary",
			Action:    "read",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp enforceEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Ok)
		assert.True(t, resp.Data.Allowed)
	})

	t.Run("denied", func(t *testing.T) {
		w := doEnforce(newRouter("company-1"), domain.EnforceRequest{
			UserID:    "user-1",
			CompanyID: "company-1",
			Resource:  "salary",
			Action:    "approve",
		})

		assert.Equal(t, http.StatusOK, w.Code)

		var resp enforceEnvelope
		assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.False(t, resp.Data.Allowed)
	})

	t.Run("missing fields", func(t *testing.T) {
		w := doEnforce(newRouter(""), map[string]string{"user_id": "user-1"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("other company", func(t *testing.T) {
		w := doEnforce(newRouter("company-2"), domain.EnforceRequest{
			UserID:    "user-1",
			CompanyID: "company-1",
			Resource:  "salary",
			Action:    "read",
		})
		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}
