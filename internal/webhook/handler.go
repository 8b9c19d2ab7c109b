package webhook

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/internal/model"
	pkgResponse "mrdom-sdr/pkg/response"
)

// HandleChatwootWebhook godoc
// @Summary     Chatwoot webhook
// @Description Verifies the HMAC signature, skips outgoing and empty messages, then answers with the best agent.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       X-Chatwoot-Signature header string false "hex(HMAC-SHA256(secret, body))"
// @Success     200 {object} WebhookResponse
// @Failure     401 {object} pkgResponse.Resp "Invalid signature"
// @Failure     429 {object} pkgResponse.Resp "Rate limit exceeded (opt-in)"
// @Failure     503 {object} pkgResponse.Resp "Agents unavailable"
// @Router      /api/v1/webhooks/chatwoot [POST]
func (h *Handler) HandleChatwootWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to read webhook body: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	signature := c.GetHeader(HeaderChatwootSignature)
	if err := h.security.ValidateChatwootSignature(body, signature); err != nil {
		h.l.Warnf(ctx, "Chatwoot signature verification failed: %v", err)
		pkgResponse.ErrorWithStatus(c, http.StatusUnauthorized, ErrSignatureInvalid, nil)
		return
	}

	msg, err := parseChatwootPayload(body)
	if err != nil {
		h.l.Errorf(ctx, "Failed to parse Chatwoot payload: %v", err)
		pkgResponse.Error(c, ErrInvalidPayload, nil)
		return
	}

	if !msg.Dispatchable() {
		reason := ResponseEmptyIgnored
		if msg.Outgoing {
			reason = ResponseOutgoingIgnored
		}
		pkgResponse.Raw(c, ignored(reason))
		return
	}
	if containsEscalation(msg.Text, h.cfg.EscalationKeywords) {
		h.l.Infof(ctx, "Chatwoot conversation %s escalated to a human", msg.ConversationID)
		pkgResponse.Raw(c, ignored(ResponseEscalated))
		return
	}

	resp, err := h.dispatch(ctx, msg)
	if err != nil {
		h.dispatchFailed(c, msg.Source, err)
		return
	}

	if resp.Success && resp.Response != nil {
		h.replyToChatwoot(ctx, msg.ConversationID, *resp.Response)
	}

	pkgResponse.Raw(c, resp)
}

// HandleN8NWebhook godoc
// @Summary     N8N webhook
// @Description Answers a workflow message with the best agent.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message and optional context"
// @Success     200 {object} WebhookResponse
// @Failure     400 {object} pkgResponse.Resp "Missing message"
// @Failure     503 {object} pkgResponse.Resp "Agents unavailable"
// @Router      /api/v1/webhooks/n8n [POST]
func (h *Handler) HandleN8NWebhook(c *gin.Context) {
	h.handleMessage(c, model.SourceN8N)
}

// HandleTestWebhook godoc
// @Summary     Test webhook
// @Description Same contract as the N8N webhook, for manual checks.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       body body messageReq true "Message and optional context"
// @Success     200 {object} WebhookResponse
// @Failure     400 {object} pkgResponse.Resp "Missing message"
// @Failure     503 {object} pkgResponse.Resp "Agents unavailable"
// @Router      /api/v1/webhooks/test [POST]
func (h *Handler) HandleTestWebhook(c *gin.Context) {
	h.handleMessage(c, model.SourceTest)
}

// ChatwootStatus godoc
// @Summary     Chatwoot integration status
// @Tags        Webhooks
// @Produce     json
// @Success     200 {object} chatwootStatusResp
// @Router      /api/v1/webhooks/chatwoot/status [GET]
func (h *Handler) ChatwootStatus(c *gin.Context) {
	pkgResponse.Raw(c, chatwootStatusResp{
		Enabled:              h.cfg.ChatwootEnabled,
		BaseURL:              h.cfg.ChatwootBaseURL,
		AccountID:            h.cfg.ChatwootAccountID,
		HMACSecretConfigured: h.security.SignatureRequired(),
		WebhookURL:           ChatwootWebhookURL,
	})
}

// N8NStatus godoc
// @Summary     N8N integration status
// @Tags        Webhooks
// @Produce     json
// @Success     200 {object} n8nStatusResp
// @Router      /api/v1/webhooks/n8n/status [GET]
func (h *Handler) N8NStatus(c *gin.Context) {
	pkgResponse.Raw(c, n8nStatusResp{
		Enabled:    h.cfg.N8NEnabled,
		BaseURL:    h.cfg.N8NBaseURL,
		WebhookURL: N8NWebhookURL,
	})
}

// Guard rejects clients outside the allowlist and enforces the per-client rate limit.
func (h *Handler) Guard() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		if err := h.security.ValidateIPAddress(c.Request); err != nil {
			h.l.Warnf(ctx, "Webhook rejected: %v", err)
			pkgResponse.Forbidden(c)
			c.Abort()
			return
		}

		if err := h.security.CheckRateLimit(extractIP(c.Request)); err != nil {
			h.l.Warnf(ctx, "Rate limit exceeded: %v", err)
			pkgResponse.TooManyRequests(c)
			c.Abort()
			return
		}

		c.Next()
	}
}

func (h *Handler) handleMessage(c *gin.Context, source model.MessageSource) {
	ctx := c.Request.Context()

	var req messageReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		h.l.Warnf(ctx, "Failed to bind %s webhook body: %v", source, err)
		pkgResponse.Error(c, ErrInvalidPayload, nil)
		return
	}

	msg := model.InboundMessage{
		Source:     source,
		Text:       strings.TrimSpace(req.Message),
		Context:    req.Context,
		ReceivedAt: time.Now(),
	}
	if msg.Text == "" {
		pkgResponse.Error(c, ErrMessageRequired, nil)
		return
	}

	resp, err := h.dispatch(ctx, msg)
	if err != nil {
		h.dispatchFailed(c, source, err)
		return
	}

	pkgResponse.Raw(c, resp)
}

// dispatch sends the message to the best agent and shapes the webhook answer.
func (h *Handler) dispatch(ctx context.Context, msg model.InboundMessage) (WebhookResponse, error) {
	if !h.agentUC.Available() {
		return WebhookResponse{}, agent.ErrAgentsUnavailable
	}

	output, err := h.agentUC.DispatchBest(ctx, agent.DispatchBestInput{
		Message: msg.Text,
		Context: msg.Context,
	})
	if err != nil {
		return WebhookResponse{}, err
	}

	if !output.Success {
		errMsg := output.Error
		if errMsg == "" {
			errMsg = ErrorUnknown
		}
		return WebhookResponse{Success: false, Error: &errMsg}, nil
	}

	response := output.Response
	agentUsed := string(output.SelectedAgent)
	h.l.Infof(ctx, "Webhook %s answered by %s", msg.Source, agentUsed)
	return WebhookResponse{Success: true, Response: &response, AgentUsed: &agentUsed}, nil
}

func (h *Handler) dispatchFailed(c *gin.Context, source model.MessageSource, err error) {
	ctx := c.Request.Context()

	switch {
	case errors.Is(err, agent.ErrAgentsUnavailable):
		h.l.Warnf(ctx, "%s webhook: %v", source, err)
		pkgResponse.ServiceUnavailable(c, ErrAgentsUnavailable)
	case errors.Is(err, agent.ErrMissingField), errors.Is(err, agent.ErrInvalidContext):
		h.l.Warnf(ctx, "%s webhook: %v", source, err)
		pkgResponse.Error(c, err, nil)
	default:
		h.l.Errorf(ctx, "%s dispatch failed: %v", source, err)
		pkgResponse.InternalError(c, err)
	}
}

// replyToChatwoot posts the agent reply back; failures only get logged.
func (h *Handler) replyToChatwoot(ctx context.Context, conversationID, text string) {
	if !h.cfg.AutoResponseEnabled || h.replier == nil || !h.replier.Enabled() || conversationID == "" {
		return
	}

	if err := h.replier.SendMessage(ctx, conversationID, text); err != nil {
		h.l.Errorf(ctx, "Failed to post reply to Chatwoot conversation %s: %v", conversationID, err)
	}
}

func ignored(reason string) WebhookResponse {
	return WebhookResponse{Success: true, Response: &reason}
}
