package leave

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	leaves := r.Group("/leaves")
	{
		leaves.GET("", handler.GetAll)
		leaves.GET("/:id", handler.GetByID)
		leaves.POST("", handler.Create)
		leaves.POST("/duration", handler.Duration)
		leaves.DELETE("/:id", handler.Delete)
	}
}
