package http

import (
	"github.com/gin-gonic/gin"

	"task-extraction/internal/model"
	"task-extraction/pkg/response"
)

// Extract godoc
// @Summary     Extract tasks from next-step text
// @Description Runs the extraction pipeline on raw next-step text without persisting anything.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body extractReq true "Next-step text"
// @Success     200  {object} extractResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processExtractReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Ingest godoc
// @Summary     Ingest a summary
// @Description Extracts tasks from a call/space/manual summary and stores the ones not seen before. Safe to repeat: previously stored tasks come back flagged as duplicates.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body ingestReq true "Summary to ingest"
// @Success     200  {object} ingestResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks/ingest [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ingest(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newIngestResp(output))
}

// List godoc
// @Summary     List stored tasks
// @Description Returns stored tasks, newest ingestion first, with optional source and priority filters.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       source_type query string false "Filter by source type (call/space/manual)"
// @Param       source_id   query string false "Filter by source id"
// @Param       priority    query string false "Filter by priority (low/medium/high)"
// @Param       limit       query int    false "Page size (default: 20)"
// @Param       offset      query int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.List(ctx, h.scope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newListResp(output))
}

// scope builds the request scope from middleware-populated values.
func (h *handler) scope(c *gin.Context) model.Scope {
	return model.Scope{
		RequestID: c.GetString("request_id"),
		ClientIP:  c.ClientIP(),
	}
}
