package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/bookings")
	group.Use(authMiddleware)
	{
		group.POST("", h.Create)
		group.GET("/my-bookings", h.MyBookings)
		group.GET("/my-stats", h.MyStats)
		group.GET("/search", h.Search)
		group.GET("/calendar", h.Calendar)
		group.GET("/availability", h.Availability)
		group.PATCH("/:id/cancel", h.Cancel)

		admin := group.Group("")
		admin.Use(adminMiddleware)
		{
			admin.GET("/all", h.ListAll)
			admin.GET("/dashboard", h.Dashboard)
			admin.PATCH("/:id/status", h.UpdateStatus)
		}
	}
}
