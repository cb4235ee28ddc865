package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go-tutorcenter/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	idempCacheKey = "idemp:/calcs:user-1:key-1"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempotencyRouter(rdb *redis.Client, hits *int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/calcs", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, middleware.Idempotency(rdb), func(c *gin.Context) {
		*hits++
		c.JSON(http.StatusCreated, gin.H{
			"cache": c.GetString(middleware.IdempotencyCacheKey),
			"lock":  c.GetString(middleware.IdempotencyLockKey),
		})
	})
	return r
}

func postCalc(r *gin.Engine, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/calcs", nil)
	if key != "" {
		req.Header.Set("Idempotency-Key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency(t *testing.T) {
	t.Run("no key passes through", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		hits := 0
		w := postCalc(newIdempotencyRouter(db, &hits), "")

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("cached response is replayed", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).SetVal(`{"id":"calc-1"}`)
		hits := 0
		w := postCalc(newIdempotencyRouter(db, &hits), "key-1")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "true", w.Header().Get("Idempotent-Replay"))
		assert.Contains(t, w.Body.String(), "calc-1")
		assert.Equal(t, 0, hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("in-flight request is rejected", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(false)
		hits := 0
		w := postCalc(newIdempotencyRouter(db, &hits), "key-1")

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Equal(t, 0, hits)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first request takes the lock", func(t *testing.T) {
		db, mock := redismock.NewClientMock()
		mock.ExpectGet(idempCacheKey).RedisNil()
		mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
		hits := 0
		w := postCalc(newIdempotencyRouter(db, &hits), "key-1")

		require.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, hits)
		assert.Contains(t, w.Body.String(), idempLockKey)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIdempotency_ReplayStatus(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet(idempCacheKey).SetVal(`{"id":"calc-1"}`)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/calcs", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, middleware.Idempotency(db, http.StatusCreated), func(c *gin.Context) {
		t.Fatal("handler must not run on replay")
	})

	w := postCalc(r, "key-1")
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIdempotency_ReleasesLockWhenLaterMiddlewareAborts(t *testing.T) {
	db, mock := redismock.NewClientMock()
	mock.ExpectGet(idempCacheKey).RedisNil()
	mock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
	mock.ExpectDel(idempLockKey).SetVal(1)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/calcs", func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	}, middleware.Idempotency(db), func(c *gin.Context) {
		c.AbortWithStatus(http.StatusForbidden)
	}, func(c *gin.Context) {
		t.Fatal("handler must not run after abort")
	})

	w := postCalc(r, "key-1")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
