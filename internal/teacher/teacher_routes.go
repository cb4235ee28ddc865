package teacher

import (
	"go-tutorcenter/internal/domain"
	"go-tutorcenter/internal/middleware"
	"go-tutorcenter/internal/rbac"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	logger *zap.Logger,
) {
	teachers := r.Group("/teachers")
	teachers.Use(middleware.AuthMiddleware())
	teachers.Use(middleware.ContextLogger(logger))
	{
		teachers.GET("",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "read"),
			handler.GetAll,
		)

		teachers.GET("/options",
			middleware.RateLimitByUser(5, 20),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "read"),
			handler.GetOptions,
		)

		teachers.GET("/:teacherId",
			middleware.RateLimitByUser(3, 10),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "read"),
			handler.GetByID,
		)

		teachers.POST("",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "create"),
			handler.Create,
		)

		teachers.PUT("/:teacherId",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "update"),
			handler.Update,
		)

		teachers.DELETE("/:teacherId",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, domain.ResourceTeacher, "delete"),
			handler.Delete,
		)
	}
}
