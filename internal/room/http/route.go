package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/rooms")
	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)

		admin := group.Group("")
		admin.Use(adminMiddleware)
		{
			admin.POST("", h.Create)
			admin.PATCH("/:id", h.Update)
			admin.PATCH("/:id/deactivate", h.Deactivate)
		}
	}
}
