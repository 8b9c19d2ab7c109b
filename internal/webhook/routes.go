package webhook

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the webhook endpoints under /webhooks.
func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	g := r.Group("/webhooks")
	g.GET("/chatwoot/status", h.ChatwootStatus)
	g.GET("/n8n/status", h.N8NStatus)

	guarded := g.Group("", h.Guard())
	guarded.POST("/chatwoot", h.HandleChatwootWebhook)
	guarded.POST("/n8n", h.HandleN8NWebhook)
	guarded.POST("/test", h.HandleTestWebhook)
}
