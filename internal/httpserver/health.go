package httpserver

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/pkg/response"
)

var (
	errAgentsNotAvailable = errors.New("Agentes não disponíveis")
	errNoAWSCredentials   = errors.New("AWS credentials não configuradas")
)

type healthResp struct {
	Status      string            `json:"status"`
	Timestamp   response.DateTime `json:"timestamp"`
	Version     string            `json:"version"`
	Environment string            `json:"environment"`
	Uptime      float64           `json:"uptime"`
}

type componentStatus struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type detailedHealthResp struct {
	healthResp
	Components map[string]componentStatus `json:"components"`
}

func (srv *HTTPServer) uptime() float64 {
	return time.Since(srv.startedAt).Seconds()
}

func (srv *HTTPServer) newHealthResp(status string) healthResp {
	return healthResp{
		Status:      status,
		Timestamp:   response.Now(),
		Version:     srv.info.Version,
		Environment: srv.environment,
		Uptime:      srv.uptime(),
	}
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} healthResp "API is healthy"
// @Router /api/v1/health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.Raw(c, srv.newHealthResp(StatusHealthy))
}

// detailedHealthCheck reports each component; any unhealthy one degrades the whole.
// @Summary Detailed Health Check
// @Description Component level health: api, bedrock_agent, aws_credentials, chatwoot, n8n
// @Tags Health
// @Produce json
// @Success 200 {object} detailedHealthResp
// @Router /api/v1/health/detailed [get]
func (srv *HTTPServer) detailedHealthCheck(c *gin.Context) {
	components := srv.components(c.Request.Context())

	status := StatusHealthy
	for _, comp := range components {
		if comp.Status == StatusUnhealthy {
			status = StatusDegraded
			break
		}
	}

	response.Raw(c, detailedHealthResp{
		healthResp: srv.newHealthResp(status),
		Components: components,
	})
}

func (srv *HTTPServer) components(ctx context.Context) map[string]componentStatus {
	components := map[string]componentStatus{
		"api": {Status: StatusHealthy, Message: "API funcionando"},
	}

	if srv.agentUC.Available() {
		components["bedrock_agent"] = componentStatus{
			Status:  StatusHealthy,
			Message: fmt.Sprintf("Agentes disponíveis: %d", srv.agentUC.Status(ctx).TotalAgents),
		}
	} else {
		components["bedrock_agent"] = componentStatus{Status: StatusUnhealthy, Message: "Agentes não disponíveis"}
	}

	if srv.info.AWSCredentials {
		components["aws_credentials"] = componentStatus{Status: StatusHealthy, Message: "Credenciais AWS configuradas"}
	} else {
		components["aws_credentials"] = componentStatus{Status: StatusUnhealthy, Message: "Credenciais AWS não configuradas"}
	}

	components["chatwoot"] = integrationStatus(srv.info.ChatwootEnabled, "Chatwoot")
	components["n8n"] = integrationStatus(srv.info.N8NEnabled, "N8N")

	return components
}

// Optional integrations are unknown rather than unhealthy when not configured.
func integrationStatus(enabled bool, name string) componentStatus {
	if enabled {
		return componentStatus{Status: StatusHealthy, Message: name + " configurado"}
	}
	return componentStatus{Status: StatusUnknown, Message: name + " não configurado"}
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Ready once agents are registered and AWS credentials are configured
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is ready"
// @Failure 503 {object} response.Resp "Not ready"
// @Router /api/v1/ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if !srv.agentUC.Available() {
		response.ServiceUnavailable(c, errAgentsNotAvailable)
		return
	}
	if !srv.info.AWSCredentials {
		response.ServiceUnavailable(c, errNoAWSCredentials)
		return
	}

	response.Raw(c, gin.H{
		"status":    "ready",
		"timestamp": response.Now(),
		"message":   "Sistema pronto para receber tráfego",
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API is alive
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "API is alive"
// @Router /api/v1/live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.Raw(c, gin.H{
		"status":    "alive",
		"timestamp": response.Now(),
		"uptime":    srv.uptime(),
	})
}

// metrics reports uptime, agents, configuration and dispatch counters
// @Summary Metrics
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/metrics [get]
func (srv *HTTPServer) metrics(c *gin.Context) {
	status := srv.agentUC.Status(c.Request.Context())
	stats := srv.agentUC.Stats()

	perAgent := make(map[string]int64, len(stats.PerAgent))
	for id, n := range stats.PerAgent {
		perAgent[string(id)] = n
	}
	available := make([]string, len(status.AvailableAgents))
	for i, id := range status.AvailableAgents {
		available[i] = string(id)
	}

	response.Raw(c, gin.H{
		"timestamp":      response.Now(),
		"uptime_seconds": srv.uptime(),
		"version":        srv.info.Version,
		"environment":    srv.environment,
		"agents": gin.H{
			"total":     status.TotalAgents,
			"available": available,
		},
		"configuration": gin.H{
			"bedrock_model":   srv.info.BedrockModel,
			"aws_region":      srv.info.AWSRegion,
			"agentos_enabled": srv.info.AgentOSEnabled,
		},
		"dispatch": gin.H{
			"total":     stats.Total,
			"failed":    stats.Failed,
			"per_agent": perAgent,
		},
	})
}

// systemInfo describes the service
// @Summary System Info
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /api/v1/info [get]
func (srv *HTTPServer) systemInfo(c *gin.Context) {
	response.Raw(c, gin.H{
		"name":        srv.info.Name,
		"version":     srv.info.Version,
		"description": AppDescription,
		"author":      AppAuthor,
		"environment": srv.environment,
		"debug":       srv.info.Debug,
		"features":    Features,
	})
}
