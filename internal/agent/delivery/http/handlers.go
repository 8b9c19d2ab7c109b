package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"mrdom-sdr/internal/agent"
	"mrdom-sdr/pkg/response"
)

// Status godoc
// @Summary     Agent registry status
// @Description Reports whether agents are available and which model backs them.
// @Tags        Agents
// @Produce     json
// @Success     200 {object} statusResp
// @Router      /api/v1/agents/status [GET]
func (h *handler) Status(c *gin.Context) {
	response.Raw(c, h.newStatusResp(h.uc.Status(c.Request.Context())))
}

// List godoc
// @Summary     List agents
// @Description Lists the registered agents with their descriptions.
// @Tags        Agents
// @Produce     json
// @Success     200 {object} listResp
// @Failure     503 {object} response.Resp "Agents unavailable"
// @Router      /api/v1/agents/list [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	agents, err := h.uc.List(ctx)
	if err != nil {
		status, herr := h.mapError(err)
		response.ErrorWithStatus(c, status, herr, nil)
		return
	}

	response.Raw(c, h.newListResp(agents))
}

// Process godoc
// @Summary     Dispatch to a specific agent
// @Description Sends the message, with optional context, to the named agent.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body processReq true "Agent type, message and optional context"
// @Success     200 {object} processResp
// @Failure     400 {object} response.Resp "Missing field or unknown agent"
// @Failure     500 {object} response.Resp "Model backend failure"
// @Failure     503 {object} response.Resp "Agents unavailable"
// @Router      /api/v1/agents/process [POST]
func (h *handler) Process(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.uc.Available() {
		response.ServiceUnavailable(c, errAgentsUnavailable)
		return
	}

	req, err := h.processProcessReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Dispatch(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Dispatch: %v", err)
		status, herr := h.mapError(err)
		if errors.Is(err, agent.ErrBackend) {
			herr = errors.New(output.Error)
		}
		response.ErrorWithStatus(c, status, herr, nil)
		return
	}

	response.Raw(c, h.newProcessResp(req, output))
}

// ProcessBest godoc
// @Summary     Dispatch to the best agent
// @Description Classifies the message by keywords and dispatches it to the selected agent.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body processBestReq true "Message and optional context"
// @Success     200 {object} processBestResp
// @Failure     400 {object} response.Resp "Missing message"
// @Failure     503 {object} response.Resp "Agents unavailable"
// @Router      /api/v1/agents/process-best [POST]
func (h *handler) ProcessBest(c *gin.Context) {
	ctx := c.Request.Context()

	if !h.uc.Available() {
		response.ServiceUnavailable(c, errAgentsUnavailable)
		return
	}

	req, err := h.processProcessBestReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.DispatchBest(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.DispatchBest: %v", err)
		status, herr := h.mapError(err)
		response.ErrorWithStatus(c, status, herr, nil)
		return
	}

	response.Raw(c, h.newProcessBestResp(output))
}

// Suggest godoc
// @Summary     Suggest an agent
// @Description Returns the agent the keyword classifier would pick. Works without credentials.
// @Tags        Agents
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Message"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Missing message"
// @Router      /api/v1/agents/suggest [POST]
func (h *handler) Suggest(c *gin.Context) {
	req, err := h.processSuggestReq(c)
	if err != nil {
		response.Error(c, errMessageRequired, nil)
		return
	}

	response.Raw(c, h.newSuggestResp(h.uc.Suggest(c.Request.Context(), req.Message)))
}
