package http

import (
	"github.com/gin-gonic/gin"
)

// processExtractReq binds and validates the dry-run extraction request body.
func (h *handler) processExtractReq(c *gin.Context) (extractReq, error) {
	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processIngestReq binds and validates the ingest request body.
func (h *handler) processIngestReq(c *gin.Context) (ingestReq, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processListReq binds and validates the list query parameters.
func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
