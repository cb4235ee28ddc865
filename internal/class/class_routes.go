package class

import (
	"go-tutorcenter/internal/domain"
	"go-tutorcenter/internal/middleware"
	"go-tutorcenter/internal/rbac"

	"github.com/gin-gonic/gin"
)

const rbacResource = domain.ResourceClass

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, rbacService rbac.Service) {
	authorize := func(action string) gin.HandlerFunc {
		return middleware.RBACAuthorize(rbacService, rbacResource, action)
	}

	classes := r.Group("/classes")
	classes.Use(middleware.AuthMiddleware())
	{
		classes.GET("", authorize("read"), handler.GetAll)
		classes.GET("/:id", authorize("read"), handler.GetByID)
		classes.POST("", authorize("create"), handler.Create)
		classes.POST("/schedule-conflicts", authorize("read"), handler.CheckConflicts)
		classes.PUT("/:id", authorize("update"), handler.Update)
		classes.DELETE("/:id", authorize("delete"), handler.Delete)

		classes.POST("/:id/lessons",
			middleware.RateLimitByUser(2, 10),
			authorize("record_lesson"),
			handler.RecordLesson,
		)
		classes.POST("/:id/enrollments", authorize("enroll"), handler.Enroll)
		classes.DELETE("/:id/enrollments/:studentId", authorize("enroll"), handler.Unenroll)
	}
}
