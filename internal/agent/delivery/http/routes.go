package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	agents := rg.Group("/agents")
	{
		agents.GET("/status", h.Status)
		agents.GET("/list", h.List)
		agents.POST("/process", h.Process)
		agents.POST("/process-best", h.ProcessBest)
		agents.POST("/suggest", h.Suggest)
	}
}
