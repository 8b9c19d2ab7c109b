package httpserver

import "time"

const (
	APIPrefix = "/api/v1"

	AppDescription = "Sistema de automação de vendas com agentes inteligentes usando AgentOS e AWS Bedrock"
	AppAuthor      = "DOM-360"

	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"
	StatusDegraded  = "degraded"
	StatusUnknown   = "unknown"

	readHeaderTimeout = 10 * time.Second
	shutdownTimeout   = 15 * time.Second
)

// Features lists the capabilities reported by /info.
var Features = []string{
	"AgentOS Integration",
	"AWS Bedrock Models",
	"N8N Workflow Integration",
	"Chatwoot Integration",
	"MrDom Qualification Logic",
	"Health Monitoring",
	"Dispatch Metrics",
}
