package middleware

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go-tutorcenter/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	IdempotencyCacheKey = "idempotency_cache_key"
	IdempotencyLockKey  = "idempotency_lock_key"

	idempotencyLockTTL = 30 * time.Second
)

// Idempotency replays the cached response of a POST that carried the same
// Idempotency-Key for the same user and route, with replayStatus (default 200).
// Handlers store the response under IdempotencyCacheKey and release
// IdempotencyLockKey when done; the lock is released here when a later
// middleware aborts before the handler runs.
func Idempotency(rdb *redis.Client, replayStatus ...int) gin.HandlerFunc {
	logger := zap.L().Named("middleware.idempotency")
	status := http.StatusOK
	if len(replayStatus) > 0 && replayStatus[0] != 0 {
		status = replayStatus[0]
	}
	return func(c *gin.Context) {
		idempKey := c.GetHeader("Idempotency-Key")
		if idempKey == "" || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		userID := c.GetString("user_id")
		cacheKey := fmt.Sprintf("idemp:%s:%s:%s", c.FullPath(), userID, idempKey)
		lockKey := cacheKey + ":lock"
		ctx := c.Request.Context()

		if val, err := rdb.Get(ctx, cacheKey).Result(); err == nil {
			var cached any
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				logger.Debug("idempotent replay", zap.String("key", cacheKey))
				c.Header("Idempotent-Replay", "true")
				response.Success(c, status, cached, nil)
				c.Abort()
				return
			}
		}

		isNew, err := rdb.SetNX(ctx, lockKey, "locked", idempotencyLockTTL).Result()
		if err != nil {
			logger.Warn("idempotency lock unavailable, continuing without it", zap.Error(err))
			c.Next()
			return
		}
		if !isNew {
			response.FromError(c, ErrRequestInProgress)
			c.Abort()
			return
		}

		c.Set(IdempotencyCacheKey, cacheKey)
		c.Set(IdempotencyLockKey, lockKey)

		c.Next()

		if c.IsAborted() {
			if err := rdb.Del(ctx, lockKey).Err(); err != nil {
				logger.Warn("release idempotency lock failed", zap.String("key", lockKey), zap.Error(err))
			}
		}
	}
}
