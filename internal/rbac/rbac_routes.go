package rbac

import (
	"go-tutorcenter/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	group := r.Group("/rbac")
	group.Use(middleware.AuthMiddleware())
	{
		// cek izin arbitrer hanya untuk admin
		group.POST("/enforce", middleware.RoleMiddleware("ADMIN", "SUPERADMIN"), handler.Enforce)
	}
}
