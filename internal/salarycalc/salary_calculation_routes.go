package salarycalc

import (
	"net/http"

	"go-tutorcenter/internal/domain"
	"go-tutorcenter/internal/middleware"
	"go-tutorcenter/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

const rbacResource = domain.ResourceSalary

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	rdb ...*redis.Client,
) {
	var redisClient *redis.Client
	if len(rdb) > 0 {
		redisClient = rdb[0]
	}

	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbacResource, action)
	}

	calcs := r.Group("/teachers/:teacherId/salary-calculations")
	calcs.Use(middleware.AuthMiddleware(), middleware.ExtractUserID())
	{
		calcs.GET("", authorize("read"), handler.GetAll)
		calcs.GET("/:calcId", authorize("read"), handler.GetByID)
		calcs.GET("/:calcId/audit-logs", authorize("read"), handler.GetAuditLogs)
		calcs.GET("/:calcId/statement", authorize("read"), handler.DownloadStatement)

		if redisClient != nil {
			calcs.POST("", authorize("create"), middleware.Idempotency(redisClient, http.StatusCreated), handler.Generate)
		} else {
			calcs.POST("", authorize("create"), handler.Generate)
		}
		calcs.POST("/:calcId/recalculate", authorize("create"), handler.Recalculate)
		calcs.POST("/:calcId/approve", authorize("approve"), handler.Approve)
		calcs.POST("/:calcId/reopen", authorize("reopen"), handler.Reopen)
		calcs.PUT("/:calcId/base-salary", authorize("adjust"), handler.UpdateBaseSalary)
		calcs.POST("/:calcId/adjustments", authorize("adjust"), handler.AddAdjustment)
		calcs.DELETE("/:calcId/adjustments/:adjId", authorize("adjust"), handler.RemoveAdjustment)
	}

	exports := r.Group("/salary-calculations")
	exports.Use(middleware.AuthMiddleware())
	{
		exports.GET("/export", authorize("export"), handler.Export)
	}
}
