package auth_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-tutorcenter/internal/auth"
	autherrors "go-tutorcenter/internal/auth/errors"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type apiError struct {
	Code string `json:"code"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Error *apiError       `json:"error"`
}

type fakeAuthService struct {
	auth.Service
	loginFn    func(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error)
	refreshFn  func(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error)
	getMeFn    func(ctx context.Context, userID string) (auth.AuthResponse, error)
	registerFn func(ctx context.Context, companyID string, req auth.RegisterRequest) (auth.AuthResponse, error)
}

func (f *fakeAuthService) Login(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error) {
	return f.loginFn(ctx, email, password)
}

func (f *fakeAuthService) RefreshToken(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error) {
	return f.refreshFn(ctx, token)
}

func (f *fakeAuthService) GetMe(ctx context.Context, userID string) (auth.AuthResponse, error) {
	return f.getMeFn(ctx, userID)
}

func (f *fakeAuthService) Register(ctx context.Context, companyID string, req auth.RegisterRequest) (auth.AuthResponse, error) {
	return f.registerFn(ctx, companyID, req)
}

func newAuthContext(method, body string) (*httptest.ResponseRecorder, *gin.Context) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, "/api/v1/auth", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return w, c
}

func decode(t *testing.T, w *httptest.ResponseRecorder) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return env
}

func TestAuthHandler_Login(t *testing.T) {
	pair := auth.TokenPair{AccessToken: "acc", RefreshToken: "ref"}
	svc := &fakeAuthService{
		loginFn: func(ctx context.Context, email, password string) (auth.TokenPair, auth.AuthResponse, error) {
			if password != "password123" {
				return auth.TokenPair{}, auth.AuthResponse{}, autherrors.ErrInvalidCredentials
			}
			return pair, auth.AuthResponse{ID: "u1", Email: email}, nil
		},
	}
	h := auth.NewHandler(svc, false)

	t.Run("api client gets tokens in body", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"admin@center.test","password":"password123"}`)
		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Empty(t, w.Result().Cookies())

		var data auth.LoginResponse
		require.NoError(t, json.Unmarshal(decode(t, w).Data, &data))
		assert.Equal(t, "acc", data.AccessToken)
		assert.Equal(t, "u1", data.User.ID)
	})

	t.Run("web client gets cookies", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"admin@center.test","password":"password123"}`)
		c.Request.Header.Set("X-Client-Type", "web")
		h.Login(c)

		assert.Equal(t, http.StatusOK, w.Code)
		names := map[string]string{}
		for _, ck := range w.Result().Cookies() {
			names[ck.Name] = ck.Value
		}
		assert.Equal(t, "acc", names["access_token"])
		assert.Equal(t, "ref", names["refresh_token"])
	})

	t.Run("bad credentials", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"admin@center.test","password":"nope"}`)
		h.Login(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Equal(t, "UNAUTHORIZED", decode(t, w).Error.Code)
	})

	t.Run("invalid email", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"nope","password":"x"}`)
		h.Login(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "INVALID_INPUT", decode(t, w).Error.Code)
	})
}

func TestAuthHandler_RefreshToken(t *testing.T) {
	svc := &fakeAuthService{
		refreshFn: func(ctx context.Context, token string) (auth.TokenPair, auth.AuthResponse, error) {
			assert.Equal(t, "ref-from-cookie", token)
			return auth.TokenPair{AccessToken: "acc2", RefreshToken: "ref2"}, auth.AuthResponse{ID: "u1"}, nil
		},
	}
	h := auth.NewHandler(svc, true)

	t.Run("web client without cookie", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, "")
		c.Request.Header.Set("X-Client-Type", "web")
		h.RefreshToken(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("web client with cookie", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, "")
		c.Request.Header.Set("X-Client-Type", "web")
		c.Request.AddCookie(&http.Cookie{Name: "refresh_token", Value: "ref-from-cookie"})
		h.RefreshToken(c)

		assert.Equal(t, http.StatusOK, w.Code)
		for _, ck := range w.Result().Cookies() {
			assert.True(t, ck.Secure)
		}
	})
}

func TestAuthHandler_Me(t *testing.T) {
	svc := &fakeAuthService{
		getMeFn: func(ctx context.Context, userID string) (auth.AuthResponse, error) {
			return auth.AuthResponse{ID: userID}, nil
		},
	}
	h := auth.NewHandler(svc, false)

	t.Run("missing auth context", func(t *testing.T) {
		w, c := newAuthContext(http.MethodGet, "")
		h.Me(c)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("ok", func(t *testing.T) {
		w, c := newAuthContext(http.MethodGet, "")
		c.Set("user_id", "u1")
		h.Me(c)
		assert.Equal(t, http.StatusOK, w.Code)
	})
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &fakeAuthService{
		registerFn: func(ctx context.Context, companyID string, req auth.RegisterRequest) (auth.AuthResponse, error) {
			assert.Equal(t, "c1", companyID)
			return auth.AuthResponse{ID: "u2", CompanyID: companyID, Role: req.Role}, nil
		},
	}
	h := auth.NewHandler(svc, false)

	t.Run("created", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"f@center.test","name":"Finance","password":"password123","role":"FINANCE"}`)
		c.Set("company_id", "c1")
		h.Register(c)
		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("unknown role", func(t *testing.T) {
		w, c := newAuthContext(http.MethodPost, `{"email":"f@center.test","name":"Finance","password":"password123","role":"ROOT"}`)
		c.Set("company_id", "c1")
		h.Register(c)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	h := auth.NewHandler(&fakeAuthService{}, false)
	w, c := newAuthContext(http.MethodPost, "")
	h.Logout(c)

	assert.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.Len(t, cookies, 2)
	for _, ck := range cookies {
		assert.Equal(t, -1, ck.MaxAge)
	}
}
