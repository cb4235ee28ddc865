package raterule

import (
	"go-tutorcenter/internal/domain"
	"go-tutorcenter/internal/middleware"
	"go-tutorcenter/internal/rbac"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

const rbacResource = domain.ResourceRateRule

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	rules := r.Group("/teachers/:teacherId/rate-rules")
	rules.Use(middleware.AuthMiddleware())
	{
		rules.GET("", middleware.RBACAuthorize(rbacService, rbacResource, "read"), handler.GetAll)
		rules.GET("/:ruleId", middleware.RBACAuthorize(rbacService, rbacResource, "read"), handler.GetByID)
		rules.POST("",
			middleware.RateLimitByUser(rate.Limit(2), 5),
			middleware.RBACAuthorize(rbacService, rbacResource, "create"),
			handler.Create,
		)
		rules.DELETE("/:ruleId", middleware.RBACAuthorize(rbacService, rbacResource, "delete"), handler.Delete)
	}
}
