package view

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r gin.IRouter, h *Handler) {
	r.GET("/", h.Session(), h.Index)

	ui := r.Group("/ui", h.Session())
	{
		ui.POST("/select/:id", h.Select)
		ui.POST("/apply", h.Apply)
		ui.POST("/back", h.Back)
		ui.POST("/popstate", h.PopState)
		ui.POST("/manage", h.Manage)
		ui.POST("/scroll", h.Scroll)
		ui.POST("/form", h.UpdateForm)
		ui.POST("/submit", h.Submit)
		ui.POST("/cancel", h.Cancel)
		ui.POST("/delete/:id", h.Delete)
	}
}
