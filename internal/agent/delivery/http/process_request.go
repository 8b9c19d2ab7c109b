package http

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

// processProcessReq binds the direct dispatch request body.
func (h *handler) processProcessReq(c *gin.Context) (processReq, error) {
	var req processReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processProcessBestReq binds the process-best body. An empty body is a missing message.
func (h *handler) processProcessBestReq(c *gin.Context) (processBestReq, error) {
	var req processBestReq
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		return req, err
	}
	return req, req.validate()
}

func (h *handler) processSuggestReq(c *gin.Context) (suggestReq, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
