package webhook

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"task-extraction/internal/extractor"
	"task-extraction/internal/model"
	"task-extraction/internal/task"
	"task-extraction/pkg/response"
)

// HandleSummaryWebhook godoc
// @Summary     Receive a summary-ready notification
// @Description Validates the request signature and ingests the attached next-step summary.
// @Tags        Webhooks
// @Accept      json
// @Produce     json
// @Param       X-Signature-256 header string false "HMAC of the body as sha256=<hex>"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     403 {object} response.Resp "Forbidden"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Router      /webhook/summaries [POST]
func (h *Handler) HandleSummaryWebhook(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.security.ValidateIPAddress(c.Request); err != nil {
		h.l.Warnf(ctx, "webhook IP rejected: %v", err)
		response.Forbidden(c)
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.Error(c, fmt.Errorf("failed to read body: %w", err))
		return
	}

	if h.security.config.Secret != "" {
		if err := h.security.ValidateSignature(body, c.GetHeader(SignatureHeader)); err != nil {
			h.l.Warnf(ctx, "webhook signature rejected: %v", err)
			response.Forbidden(c)
			return
		}
	}

	event, err := parseSummaryEvent(body)
	if err != nil {
		h.l.Warnf(ctx, "webhook payload rejected: %v", err)
		response.Error(c, err)
		return
	}

	if err := h.security.CheckRateLimit(string(event.SourceType) + ":" + event.SourceID); err != nil {
		h.l.Warnf(ctx, "webhook rate limited: %v", err)
		response.TooManyRequests(c)
		return
	}

	out, err := h.taskUC.Ingest(ctx, model.Scope{ClientIP: c.ClientIP()}, task.IngestInput{
		SourceType: event.SourceType,
		SourceID:   event.SourceID,
		NextStep:   event.NextStep,
		Outcome:    event.Outcome,
	})
	if err != nil {
		h.l.Errorf(ctx, "webhook ingest failed: %v", err)
		response.Error(c, err)
		return
	}

	response.OK(c, gin.H{
		"created": out.CreatedCount,
		"skipped": out.SkippedCount,
	})
}

// parseSummaryEvent maps the wire payload onto a SummaryEvent, deriving the
// source from the event type.
func parseSummaryEvent(body []byte) (model.SummaryEvent, error) {
	var payload summaryPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		return model.SummaryEvent{}, fmt.Errorf("failed to parse summary event: %w", err)
	}

	event := model.SummaryEvent{
		NextStep:   payload.Summary.NextStep,
		Outcome:    payload.Summary.Outcome,
		ReceivedAt: time.Now(),
	}

	switch payload.EventType {
	case EventCallSummaryReady:
		event.SourceType = extractor.SourceCall
		event.SourceID = payload.CallID
	case EventSpaceSummaryReady:
		event.SourceType = extractor.SourceSpace
		event.SourceID = payload.SessionID
	default:
		return model.SummaryEvent{}, fmt.Errorf("unknown event type %q", payload.EventType)
	}

	if event.SourceID == "" {
		return model.SummaryEvent{}, fmt.Errorf("missing source id for %s", payload.EventType)
	}

	return event, nil
}
